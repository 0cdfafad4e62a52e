package blogService

import (
	"context"
	"mime/multipart"

	blogs "BlogNest/internal/api/blog"
	blogsRepository "BlogNest/internal/api/blog/repository"
	"BlogNest/internal/entity"
	"BlogNest/pkg/s3"
	"BlogNest/pkg/utils"

	"github.com/sirupsen/logrus"
)

type IBlogsService interface {
	CreateBlog(ctx context.Context, req blogs.CreateBlogRequest, userID string, imageFile *multipart.FileHeader) error
	GetBlogByID(ctx context.Context, id string) (entity.Blog, error)
	GetAllBlogs(ctx context.Context, search string, page, limit int) (*blogs.BlogListResponse, error)
	GetBlogsByAuthor(ctx context.Context, userID string, page, limit int) (*blogs.BlogListResponse, error)
	UpdateBlog(ctx context.Context, id string, req blogs.UpdateBlogRequest, userID string, imageFile *multipart.FileHeader) error
	DeleteBlog(ctx context.Context, id string, userID string) error
	GetAllCategories(ctx context.Context) (*blogs.CategoryListResponse, error)

	AddComment(ctx context.Context, blogID string, userID string, req blogs.CreateCommentRequest) error
	GetCommentsByBlog(ctx context.Context, blogID string) (*blogs.CommentListResponse, error)
	DeleteComment(ctx context.Context, commentID string, userID string) error
}

type blogsService struct {
	log       *logrus.Logger
	blogsRepo blogsRepository.Repository
	s3Client  s3.ItfS3
	utils     utils.IUtils
}

func NewBlogsService(
	log *logrus.Logger,
	blogsRepo blogsRepository.Repository,
	s3Client s3.ItfS3,
	utils utils.IUtils,
) IBlogsService {
	return &blogsService{
		log:       log,
		blogsRepo: blogsRepo,
		s3Client:  s3Client,
		utils:     utils,
	}
}

package blogService

import (
	"errors"
	"mime/multipart"
	"time"

	blogs "BlogNest/internal/api/blog"
	"BlogNest/internal/entity"
	contextPkg "BlogNest/pkg/context"
	s3Pkg "BlogNest/pkg/s3"
	"BlogNest/pkg/utils"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

func (s *blogsService) CreateBlog(ctx context.Context, req blogs.CreateBlogRequest, userID string, imageFile *multipart.FileHeader) error {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.blogsRepo.NewClient(true)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return err
	}
	defer repo.Rollback()

	_, err = repo.Categories.GetCategoryByID(ctx, req.BlogCategory)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id":  requestID,
			"category_id": req.BlogCategory,
			"error":       err.Error(),
		}).Warn("Blog category not found")
		return blogs.ErrCategoryNotFound
	}

	var thumbnailURL string
	if imageFile != nil {
		if err := s.validateImageFile(imageFile); err != nil {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      err.Error(),
			}).Warn("Invalid image file")
			return err
		}

		// A storage outage must not block post creation: the upload error
		// is swallowed and the post goes in without a thumbnail.
		uploadedURL, err := s.s3Client.UploadFile(imageFile)
		if err != nil {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      err.Error(),
			}).Warn("Thumbnail upload failed, creating blog without thumbnail")
		} else {
			thumbnailURL = uploadedURL
		}
	}

	blogID, err := s.utils.NewULIDFromTimestamp(time.Now())
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to generate ULID")
		return err
	}

	now := time.Now()

	blog := entity.Blog{
		ID:           blogID,
		Title:        req.Title,
		Body:         req.Body,
		ThumbnailURL: thumbnailURL,
		Author:       userID,
		BlogCategory: req.BlogCategory,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := repo.Blogs.CreateBlog(ctx, blog); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create blog")
		return blogs.ErrCreateBlog
	}

	if err := repo.Commit(); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to commit transaction")
		return blogs.ErrCreateBlog
	}

	return nil
}

func (s *blogsService) GetBlogByID(ctx context.Context, id string) (entity.Blog, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.blogsRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return entity.Blog{}, err
	}

	blog, err := repo.Blogs.GetBlogByID(ctx, id)
	if err != nil {
		if errors.Is(err, blogs.ErrBlogNotFound) {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"id":         id,
			}).Warn("Blog not found")
		} else {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"id":         id,
				"error":      err.Error(),
			}).Error("Failed to get blog")
		}
		return entity.Blog{}, err
	}

	blog.ThumbnailURL = s.presignThumbnail(ctx, blog.ID, blog.ThumbnailURL)

	return blog, nil
}

func (s *blogsService) GetAllBlogs(ctx context.Context, search string, page, limit int) (*blogs.BlogListResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.blogsRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return nil, err
	}

	page, limit = clampPage(page, limit)
	offset := (page - 1) * limit

	blogsList, total, err := repo.Blogs.GetAllBlogs(ctx, search, limit, offset)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"search":     search,
			"page":       page,
			"limit":      limit,
			"error":      err.Error(),
		}).Error("Failed to get blogs")
		return nil, err
	}

	return s.makeBlogList(ctx, blogsList, total), nil
}

func (s *blogsService) GetBlogsByAuthor(ctx context.Context, userID string, page, limit int) (*blogs.BlogListResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.blogsRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return nil, err
	}

	page, limit = clampPage(page, limit)
	offset := (page - 1) * limit

	blogsList, total, err := repo.Blogs.GetBlogsByAuthor(ctx, userID, limit, offset)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"author":     userID,
			"error":      err.Error(),
		}).Error("Failed to get blogs by author")
		return nil, err
	}

	return s.makeBlogList(ctx, blogsList, total), nil
}

func (s *blogsService) UpdateBlog(ctx context.Context, id string, req blogs.UpdateBlogRequest, userID string, imageFile *multipart.FileHeader) error {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.blogsRepo.NewClient(true)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return err
	}
	defer repo.Rollback()

	existingBlog, err := repo.Blogs.GetBlogByID(ctx, id)
	if err != nil {
		if errors.Is(err, blogs.ErrBlogNotFound) {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"id":         id,
			}).Warn("Blog not found")
		} else {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"id":         id,
				"error":      err.Error(),
			}).Error("Failed to get blog")
		}
		return err
	}

	if existingBlog.Author != userID {
		s.log.WithFields(logrus.Fields{
			"request_id":   requestID,
			"id":           id,
			"blog_author":  existingBlog.Author,
			"request_user": userID,
		}).Warn("User is not the author of the blog")
		return blogs.ErrBlogNotOwned
	}

	if req.BlogCategory != "" && req.BlogCategory != existingBlog.BlogCategory {
		_, err = repo.Categories.GetCategoryByID(ctx, req.BlogCategory)
		if err != nil {
			s.log.WithFields(logrus.Fields{
				"request_id":  requestID,
				"category_id": req.BlogCategory,
				"error":       err.Error(),
			}).Warn("Blog category not found")
			return blogs.ErrCategoryNotFound
		}
	}

	thumbnailURL := existingBlog.ThumbnailURL

	if imageFile != nil {
		if err := s.validateImageFile(imageFile); err != nil {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      err.Error(),
			}).Warn("Invalid image file")
			return err
		}

		// Upload the replacement first; the old blob is only deleted once
		// the new one exists, so the record never points at a blob this
		// service deleted.
		uploadedURL, err := s.s3Client.UploadFile(imageFile)
		if err != nil {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      err.Error(),
			}).Error("Failed to upload image")
			return blogs.ErrFailedToUpload
		}

		s.deleteThumbnailBlob(requestID, existingBlog.ThumbnailURL)
		thumbnailURL = uploadedURL
	} else if req.ThumbnailURL == "remove" && existingBlog.ThumbnailURL != "" {
		s.deleteThumbnailBlob(requestID, existingBlog.ThumbnailURL)
		thumbnailURL = ""
	}

	blog := entity.Blog{
		ID:           id,
		Title:        req.Title,
		Body:         req.Body,
		ThumbnailURL: thumbnailURL,
		BlogCategory: req.BlogCategory,
		UpdatedAt:    time.Now(),
	}

	if err := repo.Blogs.UpdateBlog(ctx, blog); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"id":         id,
			"error":      err.Error(),
		}).Error("Failed to update blog")
		return blogs.ErrUpdateBlog
	}

	if err := repo.Commit(); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to commit transaction")
		return blogs.ErrUpdateBlog
	}

	return nil
}

func (s *blogsService) DeleteBlog(ctx context.Context, id string, userID string) error {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.blogsRepo.NewClient(true)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return err
	}
	defer repo.Rollback()

	existingBlog, err := repo.Blogs.GetBlogByID(ctx, id)
	if err != nil {
		if errors.Is(err, blogs.ErrBlogNotFound) {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"id":         id,
			}).Warn("Blog not found")
		} else {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"id":         id,
				"error":      err.Error(),
			}).Error("Failed to get blog")
		}
		return err
	}

	if existingBlog.Author != userID {
		s.log.WithFields(logrus.Fields{
			"request_id":   requestID,
			"id":           id,
			"blog_author":  existingBlog.Author,
			"request_user": userID,
		}).Warn("User is not the author of the blog")
		return blogs.ErrBlogNotOwned
	}

	// Comments go in the same transaction as the blog row.
	if err := repo.Comments.DeleteCommentsByBlog(ctx, id); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"id":         id,
			"error":      err.Error(),
		}).Error("Failed to delete comments for blog")
		return blogs.ErrDeleteBlog
	}

	if err := repo.Blogs.DeleteBlog(ctx, id); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"id":         id,
			"error":      err.Error(),
		}).Error("Failed to delete blog")
		return blogs.ErrDeleteBlog
	}

	// Best-effort: a failed blob delete is logged and the row delete
	// stands. The blob may leak; the reference to it is gone.
	s.deleteThumbnailBlob(requestID, existingBlog.ThumbnailURL)

	if err := repo.Commit(); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to commit transaction")
		return blogs.ErrDeleteBlog
	}

	return nil
}

func (s *blogsService) GetAllCategories(ctx context.Context) (*blogs.CategoryListResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.blogsRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return nil, err
	}

	categories, err := repo.Categories.GetAllCategories(ctx)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to get categories")
		return nil, err
	}

	response := &blogs.CategoryListResponse{
		Categories: make([]blogs.CategoryResponse, 0, len(categories)),
	}

	for _, category := range categories {
		response.Categories = append(response.Categories, blogs.CategoryResponse{
			ID:        category.ID,
			Name:      category.Name,
			CreatedAt: category.CreatedAt,
		})
	}

	return response, nil
}

func (s *blogsService) makeBlogList(ctx context.Context, blogsList []entity.Blog, total int) *blogs.BlogListResponse {
	response := &blogs.BlogListResponse{
		Blogs: make([]blogs.BlogResponse, 0, len(blogsList)),
		Total: total,
	}

	for _, blog := range blogsList {
		response.Blogs = append(response.Blogs, blogs.BlogResponse{
			ID:             blog.ID,
			Title:          blog.Title,
			Body:           blog.Body,
			ThumbnailURL:   s.presignThumbnail(ctx, blog.ID, blog.ThumbnailURL),
			Author:         blog.Author,
			AuthorUsername: blog.AuthorUsername,
			BlogCategory:   blog.BlogCategory,
			CreatedAt:      blog.CreatedAt,
			UpdatedAt:      blog.UpdatedAt,
		})
	}

	return response
}

func (s *blogsService) presignThumbnail(ctx context.Context, blogID, thumbnailURL string) string {
	if thumbnailURL == "" {
		return ""
	}

	presignedURL, err := s.s3Client.PresignUrl(thumbnailURL)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id":    contextPkg.GetRequestID(ctx),
			"id":            blogID,
			"thumbnail_url": thumbnailURL,
			"error":         err.Error(),
		}).Warn("Failed to create presigned URL for thumbnail")
		return thumbnailURL
	}

	return presignedURL
}

func (s *blogsService) deleteThumbnailBlob(requestID, thumbnailURL string) {
	if thumbnailURL == "" {
		return
	}

	fileName := s3Pkg.KeyFromURL(thumbnailURL)
	if err := s.s3Client.DeleteFile(fileName); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"file_name":  fileName,
			"error":      err.Error(),
		}).Warn("Failed to delete thumbnail blob")
	}
}

func (s *blogsService) validateImageFile(file *multipart.FileHeader) error {
	if file == nil {
		return nil
	}

	if err := s.utils.ValidateImageFile(file); err != nil {
		switch {
		case errors.Is(err, utils.ErrFileSizeExceeded):
			return blogs.ErrFileTooLarge
		default:
			return blogs.ErrInvalidFileType
		}
	}

	return nil
}

func clampPage(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 10
	}
	return page, limit
}

package blogService

import (
	"context"
	"errors"
	"strings"
	"time"

	blogs "BlogNest/internal/api/blog"
	"BlogNest/internal/entity"
	contextPkg "BlogNest/pkg/context"

	"github.com/sirupsen/logrus"
)

func (s *blogsService) AddComment(ctx context.Context, blogID string, userID string, req blogs.CreateCommentRequest) error {
	requestID := contextPkg.GetRequestID(ctx)

	body := strings.TrimSpace(req.Body)
	if body == "" {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"blog_id":    blogID,
		}).Warn("Rejected empty comment body")
		return blogs.ErrEmptyComment
	}

	repo, err := s.blogsRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return err
	}

	_, err = repo.Blogs.GetBlogByID(ctx, blogID)
	if err != nil {
		if errors.Is(err, blogs.ErrBlogNotFound) {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"blog_id":    blogID,
			}).Warn("Cannot comment on missing blog")
		} else {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"blog_id":    blogID,
				"error":      err.Error(),
			}).Error("Failed to get blog")
		}
		return err
	}

	commentID, err := s.utils.NewULIDFromTimestamp(time.Now())
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to generate ULID")
		return err
	}

	comment := entity.Comment{
		ID:        commentID,
		Body:      body,
		Author:    userID,
		BlogID:    blogID,
		CreatedAt: time.Now(),
	}

	if err := repo.Comments.CreateComment(ctx, comment); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"blog_id":    blogID,
			"error":      err.Error(),
		}).Error("Failed to create comment")
		return blogs.ErrCreateComment
	}

	return nil
}

func (s *blogsService) GetCommentsByBlog(ctx context.Context, blogID string) (*blogs.CommentListResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.blogsRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return nil, err
	}

	_, err = repo.Blogs.GetBlogByID(ctx, blogID)
	if err != nil {
		if errors.Is(err, blogs.ErrBlogNotFound) {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"blog_id":    blogID,
			}).Warn("Blog not found")
		} else {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"blog_id":    blogID,
				"error":      err.Error(),
			}).Error("Failed to get blog")
		}
		return nil, err
	}

	comments, err := repo.Comments.GetCommentsByBlog(ctx, blogID)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"blog_id":    blogID,
			"error":      err.Error(),
		}).Error("Failed to get comments")
		return nil, err
	}

	response := &blogs.CommentListResponse{
		Comments: make([]blogs.CommentResponse, 0, len(comments)),
	}

	for _, comment := range comments {
		response.Comments = append(response.Comments, blogs.CommentResponse{
			ID:             comment.ID,
			Body:           comment.Body,
			Author:         comment.Author,
			AuthorUsername: comment.AuthorUsername,
			BlogID:         comment.BlogID,
			CreatedAt:      comment.CreatedAt,
		})
	}

	return response, nil
}

func (s *blogsService) DeleteComment(ctx context.Context, commentID string, userID string) error {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.blogsRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return err
	}

	comment, err := repo.Comments.GetCommentByID(ctx, commentID)
	if err != nil {
		if errors.Is(err, blogs.ErrCommentNotFound) {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"comment_id": commentID,
			}).Warn("Comment not found")
		} else {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"comment_id": commentID,
				"error":      err.Error(),
			}).Error("Failed to get comment")
		}
		return err
	}

	if comment.Author != userID {
		s.log.WithFields(logrus.Fields{
			"request_id":     requestID,
			"comment_id":     commentID,
			"comment_author": comment.Author,
			"request_user":   userID,
		}).Warn("User is not the author of the comment")
		return blogs.ErrCommentNotOwned
	}

	if err := repo.Comments.DeleteComment(ctx, commentID); err != nil {
		if errors.Is(err, blogs.ErrCommentNotFound) {
			return err
		}
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"comment_id": commentID,
			"error":      err.Error(),
		}).Error("Failed to delete comment")
		return blogs.ErrDeleteComment
	}

	return nil
}

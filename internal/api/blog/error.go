package blogs

import (
	"net/http"

	"BlogNest/pkg/response"
)

var (
	ErrBlogNotFound     = response.NewError(http.StatusNotFound, "blog not found")
	ErrCategoryNotFound = response.NewError(http.StatusNotFound, "blog category not found")
	ErrCommentNotFound  = response.NewError(http.StatusNotFound, "comment not found")
	ErrCreateBlog       = response.NewError(http.StatusInternalServerError, "failed to create blog")
	ErrUpdateBlog       = response.NewError(http.StatusInternalServerError, "failed to update blog")
	ErrDeleteBlog       = response.NewError(http.StatusInternalServerError, "failed to delete blog")
	ErrCreateComment    = response.NewError(http.StatusInternalServerError, "failed to create comment")
	ErrDeleteComment    = response.NewError(http.StatusInternalServerError, "failed to delete comment")
	ErrInvalidFileType  = response.NewError(http.StatusBadRequest, "invalid file type")
	ErrFileTooLarge     = response.NewError(http.StatusBadRequest, "file too large")
	ErrFailedToUpload   = response.NewError(http.StatusInternalServerError, "failed to upload file")
	ErrBlogNotOwned     = response.NewError(http.StatusForbidden, "blog does not belong to user")
	ErrCommentNotOwned  = response.NewError(http.StatusForbidden, "comment does not belong to user")
	ErrInvalidBlogData  = response.NewError(http.StatusBadRequest, "invalid blog data")
	ErrEmptyComment     = response.NewError(http.StatusBadRequest, "comment body must not be empty")
)

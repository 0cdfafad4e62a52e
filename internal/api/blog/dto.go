package blogs

import "time"

type CreateBlogRequest struct {
	Title        string `json:"title" validate:"required,min=3,max=256"`
	Body         string `json:"body" validate:"required"`
	BlogCategory string `json:"blog_category" validate:"required"`
}

type UpdateBlogRequest struct {
	Title        string `json:"title" validate:"omitempty,min=3,max=256"`
	Body         string `json:"body" validate:"omitempty"`
	BlogCategory string `json:"blog_category" validate:"omitempty"`
	// ThumbnailURL carries the sentinel "remove" when the caller wants the
	// thumbnail dropped without uploading a replacement.
	ThumbnailURL string `json:"thumbnail_url" validate:"omitempty"`
}

type BlogResponse struct {
	ID             string    `json:"id"`
	Title          string    `json:"title"`
	Body           string    `json:"body"`
	ThumbnailURL   string    `json:"thumbnail_url,omitempty"`
	Author         string    `json:"author"`
	AuthorUsername string    `json:"author_username"`
	BlogCategory   string    `json:"blog_category"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

type BlogListResponse struct {
	Blogs []BlogResponse `json:"blogs"`
	Total int            `json:"total"`
}

type CategoryResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

type CategoryListResponse struct {
	Categories []CategoryResponse `json:"categories"`
}

type CreateCommentRequest struct {
	Body string `json:"body" validate:"required"`
}

type CommentResponse struct {
	ID             string    `json:"id"`
	Body           string    `json:"body"`
	Author         string    `json:"author"`
	AuthorUsername string    `json:"author_username"`
	BlogID         string    `json:"blog_id"`
	CreatedAt      time.Time `json:"created_at"`
}

type CommentListResponse struct {
	Comments []CommentResponse `json:"comments"`
}

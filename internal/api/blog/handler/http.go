package blogHandler

import (
	"os"
	"strconv"

	blogService "BlogNest/internal/api/blog/service"
	"BlogNest/internal/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type BlogHandler struct {
	log         *logrus.Logger
	blogService blogService.IBlogsService
	validator   *validator.Validate
	middleware  middleware.Middleware
}

func New(
	log *logrus.Logger,
	bs blogService.IBlogsService,
	validate *validator.Validate,
	middleware middleware.Middleware,
) *BlogHandler {
	return &BlogHandler{
		log:         log,
		blogService: bs,
		validator:   validate,
		middleware:  middleware,
	}
}

func (h *BlogHandler) Start(srv fiber.Router) {
	viewMiddleware := h.middleware.NewOptionalTokenMiddleware
	if !postViewPublic() {
		viewMiddleware = h.middleware.NewTokenMiddleware
	}

	blog := srv.Group("/blogs")
	blog.Get("/", viewMiddleware, h.HandleGetAllBlogs)
	blog.Get("/categories", viewMiddleware, h.HandleGetAllCategories)
	blog.Get("/mine", h.middleware.NewTokenMiddleware, h.HandleGetMyBlogs)
	blog.Get("/:id", viewMiddleware, h.HandleGetBlogByID)
	blog.Post("/", h.middleware.NewTokenMiddleware, h.HandleCreateBlog)
	blog.Put("/:id", h.middleware.NewTokenMiddleware, h.HandleUpdateBlog)
	blog.Delete("/:id", h.middleware.NewTokenMiddleware, h.HandleDeleteBlog)

	blog.Get("/:id/comments", viewMiddleware, h.HandleGetComments)
	blog.Post("/:id/comments", h.middleware.NewTokenMiddleware, h.HandleAddComment)

	comment := srv.Group("/comments")
	comment.Delete("/:id", h.middleware.NewTokenMiddleware, h.HandleDeleteComment)
}

// postViewPublic decides whether read endpoints require a login.
// Defaults to public reads.
func postViewPublic() bool {
	v, err := strconv.ParseBool(os.Getenv("POST_VIEW_PUBLIC"))
	if err != nil {
		return true
	}
	return v
}

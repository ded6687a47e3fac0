package handler

import (
	"github.com/deppfellow/go-blog/internal/model"
	"github.com/deppfellow/go-blog/internal/server"
	"github.com/deppfellow/go-blog/internal/service"
	"github.com/labstack/echo/v4"
)

type PostHandler struct {
	Handler
	postService *service.PostService
}

func NewPostHandler(s *server.Server, postService *service.PostService) *PostHandler {
	return &PostHandler{
		Handler:     NewHandler(s),
		postService: postService,
	}
}

func (h *PostHandler) CreatePost(c echo.Context, req *model.CreatePostRequest) (*model.Post, error) {
	return h.postService.CreatePost(c.Request().Context(), req)
}

func (h *PostHandler) ListPosts(c echo.Context, req *model.ListPostsRequest) ([]model.Post, error) {
	return h.postService.ListPosts(c.Request().Context(), req)
}

// GetPost answers with the post and an embedded "author" object.
func (h *PostHandler) GetPost(c echo.Context, req *model.PostIDRequest) (*model.PostWithAuthor, error) {
	return h.postService.GetPost(c.Request().Context(), req.ID)
}

func (h *PostHandler) UpdatePost(c echo.Context, req *model.UpdatePostRequest) (*model.Post, error) {
	return h.postService.UpdatePost(c.Request().Context(), req)
}

func (h *PostHandler) DeletePost(c echo.Context, req *model.PostIDRequest) (*model.MessageResponse, error) {
	return h.postService.DeletePost(c.Request().Context(), req.ID)
}

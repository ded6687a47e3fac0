package handler

import (
	"github.com/deppfellow/go-blog/internal/model"
	"github.com/deppfellow/go-blog/internal/server"
	"github.com/deppfellow/go-blog/internal/service"
	"github.com/labstack/echo/v4"
)

type AuthorHandler struct {
	Handler
	authorService *service.AuthorService
}

func NewAuthorHandler(s *server.Server, authorService *service.AuthorService) *AuthorHandler {
	return &AuthorHandler{
		Handler:       NewHandler(s),
		authorService: authorService,
	}
}

func (h *AuthorHandler) CreateAuthor(c echo.Context, req *model.CreateAuthorRequest) (*model.Author, error) {
	return h.authorService.CreateAuthor(c.Request().Context(), req)
}

func (h *AuthorHandler) ListAuthors(c echo.Context, _ *model.ListAuthorsRequest) ([]model.Author, error) {
	return h.authorService.ListAuthors(c.Request().Context())
}

func (h *AuthorHandler) GetAuthor(c echo.Context, req *model.AuthorIDRequest) (*model.Author, error) {
	return h.authorService.GetAuthor(c.Request().Context(), req.ID)
}

func (h *AuthorHandler) UpdateAuthor(c echo.Context, req *model.UpdateAuthorRequest) (*model.Author, error) {
	return h.authorService.UpdateAuthor(c.Request().Context(), req)
}

func (h *AuthorHandler) DeleteAuthor(c echo.Context, req *model.AuthorIDRequest) (*model.MessageResponse, error) {
	return h.authorService.DeleteAuthor(c.Request().Context(), req.ID)
}

func (h *AuthorHandler) ListAuthorPosts(c echo.Context, req *model.AuthorIDRequest) ([]model.Post, error) {
	return h.authorService.ListAuthorPosts(c.Request().Context(), req.ID)
}

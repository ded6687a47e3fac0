package router

import (
	"net/http"

	"github.com/deppfellow/go-blog/internal/handler"
	"github.com/deppfellow/go-blog/internal/model"
	"github.com/labstack/echo/v4"
)

func registerAuthorRoutes(r *echo.Echo, h *handler.Handlers) {
	authors := r.Group("/authors")
	a := h.Author

	authors.POST("", handler.Handle(a.Handler, a.CreateAuthor, http.StatusCreated, &model.CreateAuthorRequest{}))
	authors.GET("", handler.Handle(a.Handler, a.ListAuthors, http.StatusOK, &model.ListAuthorsRequest{}))
	authors.GET("/:id", handler.Handle(a.Handler, a.GetAuthor, http.StatusOK, &model.AuthorIDRequest{}))
	authors.PUT("/:id", handler.Handle(a.Handler, a.UpdateAuthor, http.StatusOK, &model.UpdateAuthorRequest{}))
	authors.DELETE("/:id", handler.Handle(a.Handler, a.DeleteAuthor, http.StatusOK, &model.AuthorIDRequest{}))
	authors.GET("/:id/posts", handler.Handle(a.Handler, a.ListAuthorPosts, http.StatusOK, &model.AuthorIDRequest{}))
}

func registerPostRoutes(r *echo.Echo, h *handler.Handlers) {
	posts := r.Group("/posts")
	p := h.Post

	posts.POST("", handler.Handle(p.Handler, p.CreatePost, http.StatusCreated, &model.CreatePostRequest{}))
	posts.GET("", handler.Handle(p.Handler, p.ListPosts, http.StatusOK, &model.ListPostsRequest{}))
	posts.GET("/:id", handler.Handle(p.Handler, p.GetPost, http.StatusOK, &model.PostIDRequest{}))
	posts.PUT("/:id", handler.Handle(p.Handler, p.UpdatePost, http.StatusOK, &model.UpdatePostRequest{}))
	posts.DELETE("/:id", handler.Handle(p.Handler, p.DeletePost, http.StatusOK, &model.PostIDRequest{}))
}

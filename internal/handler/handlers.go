// Package handler is the HTTP entry point for business logic after the
// router.
//
// Handlers receive requests that the typed pipeline in base.go has
// already bound and validated, call the service layer and return the
// response body.
package handler

import (
	"github.com/deppfellow/go-blog/internal/server"
	"github.com/deppfellow/go-blog/internal/service"
)

// Handlers groups every HTTP handler for the router.
type Handlers struct {
	Health  *HealthHandler
	OpenAPI *OpenAPIHandler
	Author  *AuthorHandler
	Post    *PostHandler
}

func NewHandlers(s *server.Server, services *service.Services) *Handlers {
	return &Handlers{
		Health:  NewHealthHandler(s),
		OpenAPI: NewOpenAPIHandler(s),
		Author:  NewAuthorHandler(s, services.Author),
		Post:    NewPostHandler(s, services.Post),
	}
}

package service

import (
	"github.com/deppfellow/go-blog/internal/lib/job"
	"github.com/deppfellow/go-blog/internal/repository"
	"github.com/deppfellow/go-blog/internal/server"
)

type Services struct {
	Author *AuthorService
	Post   *PostService
	Job    *job.JobService
}

func NewServices(s *server.Server, repos *repository.Repositories) *Services {
	return &Services{
		Author: NewAuthorService(s, repos.Author),
		Post:   NewPostService(s, repos.Post),
		Job:    s.Job,
	}
}

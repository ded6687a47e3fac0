package service

import (
	"context"

	"github.com/deppfellow/go-blog/internal/model"
	"github.com/deppfellow/go-blog/internal/repository"
	"github.com/deppfellow/go-blog/internal/server"
	"github.com/rs/zerolog"
)

// welcomeEnqueuer schedules the welcome email of a new author.
type welcomeEnqueuer interface {
	EnqueueAuthorWelcome(ctx context.Context, to, authorName string) error
}

type AuthorService struct {
	server     *server.Server
	authorRepo *repository.AuthorRepository
	welcome    welcomeEnqueuer
}

func NewAuthorService(s *server.Server, authorRepo *repository.AuthorRepository) *AuthorService {
	svc := &AuthorService{
		server:     s,
		authorRepo: authorRepo,
	}
	// Background jobs only exist when Redis is configured.
	if s.Job != nil {
		svc.welcome = s.Job
	}
	return svc
}

func (s *AuthorService) CreateAuthor(ctx context.Context, req *model.CreateAuthorRequest) (*model.Author, error) {
	logger := zerolog.Ctx(ctx)

	author, err := s.authorRepo.CreateAuthor(ctx, req)
	if err != nil {
		return nil, err
	}

	logger.Info().Int64("author_id", author.ID).Msg("author created")

	// The author exists at this point; a failed enqueue only costs the email.
	if s.welcome != nil {
		if err := s.welcome.EnqueueAuthorWelcome(ctx, author.Email, author.Name); err != nil {
			logger.Error().Err(err).Int64("author_id", author.ID).Msg("failed to enqueue author welcome email")
		}
	}

	return author, nil
}

func (s *AuthorService) ListAuthors(ctx context.Context) ([]model.Author, error) {
	return s.authorRepo.ListAuthors(ctx)
}

func (s *AuthorService) GetAuthor(ctx context.Context, id int64) (*model.Author, error) {
	return s.authorRepo.GetAuthorByID(ctx, id)
}

func (s *AuthorService) UpdateAuthor(ctx context.Context, req *model.UpdateAuthorRequest) (*model.Author, error) {
	return s.authorRepo.UpdateAuthor(ctx, req)
}

// DeleteAuthor deletes the author and, through the foreign key cascade,
// every post it owns.
func (s *AuthorService) DeleteAuthor(ctx context.Context, id int64) (*model.MessageResponse, error) {
	deletedPosts, err := s.authorRepo.DeleteAuthor(ctx, id)
	if err != nil {
		return nil, err
	}

	zerolog.Ctx(ctx).Info().
		Int64("author_id", id).
		Int64("deleted_posts", deletedPosts).
		Msg("author deleted")

	res := model.AuthorDeleted(deletedPosts)
	return &res, nil
}

// ListAuthorPosts fails with not found when the author does not exist and
// returns an empty list for an author without posts.
func (s *AuthorService) ListAuthorPosts(ctx context.Context, authorID int64) ([]model.Post, error) {
	return s.authorRepo.ListAuthorPosts(ctx, authorID)
}

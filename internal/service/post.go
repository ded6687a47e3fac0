package service

import (
	"context"

	"github.com/deppfellow/go-blog/internal/model"
	"github.com/deppfellow/go-blog/internal/repository"
	"github.com/deppfellow/go-blog/internal/server"
	"github.com/rs/zerolog"
)

type PostService struct {
	server   *server.Server
	postRepo *repository.PostRepository
}

func NewPostService(s *server.Server, postRepo *repository.PostRepository) *PostService {
	return &PostService{
		server:   s,
		postRepo: postRepo,
	}
}

// CreatePost stores a new post. A post for an author that does not exist
// is rejected by the database and surfaces as a bad request.
func (s *PostService) CreatePost(ctx context.Context, req *model.CreatePostRequest) (*model.Post, error) {
	post, err := s.postRepo.CreatePost(ctx, req)
	if err != nil {
		return nil, err
	}

	zerolog.Ctx(ctx).Info().
		Int64("post_id", post.ID).
		Int64("author_id", post.AuthorID).
		Msg("post created")

	return post, nil
}

func (s *PostService) ListPosts(ctx context.Context, req *model.ListPostsRequest) ([]model.Post, error) {
	var authorID *int64
	if req.AuthorID != 0 {
		authorID = &req.AuthorID
	}
	return s.postRepo.ListPosts(ctx, authorID)
}

// GetPost returns the post with its author loaded in the same query.
func (s *PostService) GetPost(ctx context.Context, id int64) (*model.PostWithAuthor, error) {
	return s.postRepo.GetPostWithAuthor(ctx, id)
}

func (s *PostService) UpdatePost(ctx context.Context, req *model.UpdatePostRequest) (*model.Post, error) {
	return s.postRepo.UpdatePost(ctx, req)
}

func (s *PostService) DeletePost(ctx context.Context, id int64) (*model.MessageResponse, error) {
	if err := s.postRepo.DeletePost(ctx, id); err != nil {
		return nil, err
	}

	zerolog.Ctx(ctx).Info().Int64("post_id", id).Msg("post deleted")

	return &model.MessageResponse{Message: "Post deleted"}, nil
}

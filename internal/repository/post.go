package repository

import (
	"context"
	"fmt"

	"github.com/deppfellow/go-blog/internal/model"
	"github.com/deppfellow/go-blog/internal/sqlerr"
	"github.com/jackc/pgx/v5"
)

const postColumns = "id, title, content, author_id, created_at, updated_at"

type PostRepository struct {
	db Querier
}

func NewPostRepository(db Querier) *PostRepository {
	return &PostRepository{db: db}
}

// CreatePost inserts a post. An unknown author is rejected by the
// posts_author_id_fkey constraint, not by a lookup beforehand.
func (r *PostRepository) CreatePost(ctx context.Context, req *model.CreatePostRequest) (*model.Post, error) {
	stmt := `
		INSERT INTO posts (title, content, author_id)
		VALUES ($1, $2, $3)
		RETURNING ` + postColumns

	rows, err := r.db.Query(ctx, stmt, req.Title, req.Content, req.AuthorID)
	if err != nil {
		return nil, fmt.Errorf("failed to execute create post query: %w", err)
	}

	post, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Post])
	if err != nil {
		return nil, fmt.Errorf("failed to collect row from table:posts: %w", err)
	}

	return &post, nil
}

// ListPosts returns every post, or only those of authorID when it is set.
func (r *PostRepository) ListPosts(ctx context.Context, authorID *int64) ([]model.Post, error) {
	var (
		rows pgx.Rows
		err  error
	)
	if authorID != nil {
		rows, err = r.db.Query(ctx, `SELECT `+postColumns+` FROM posts WHERE author_id = $1 ORDER BY id`, *authorID)
	} else {
		rows, err = r.db.Query(ctx, `SELECT `+postColumns+` FROM posts ORDER BY id`)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to execute list posts query: %w", err)
	}

	posts, err := pgx.CollectRows(rows, pgx.RowToStructByName[model.Post])
	if err != nil {
		return nil, fmt.Errorf("failed to collect rows from table:posts: %w", err)
	}

	return posts, nil
}

// GetPostWithAuthor loads a post and its author with one INNER JOIN.
func (r *PostRepository) GetPostWithAuthor(ctx context.Context, id int64) (*model.PostWithAuthor, error) {
	stmt := `
		SELECT
			p.id, p.title, p.content, p.author_id, p.created_at, p.updated_at,
			a.id, a.name, a.email, a.created_at, a.updated_at
		FROM posts p
		JOIN authors a ON a.id = p.author_id
		WHERE p.id = $1`

	var post model.PostWithAuthor
	err := r.db.QueryRow(ctx, stmt, id).Scan(
		&post.ID, &post.Title, &post.Content, &post.AuthorID, &post.CreatedAt, &post.UpdatedAt,
		&post.Author.ID, &post.Author.Name, &post.Author.Email, &post.Author.CreatedAt, &post.Author.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get post %d: %w", id, sqlerr.WithTable("posts", err))
	}

	return &post, nil
}

// UpdatePost replaces the title and content of a post. The author is
// never changed.
func (r *PostRepository) UpdatePost(ctx context.Context, req *model.UpdatePostRequest) (*model.Post, error) {
	stmt := `
		UPDATE posts
		SET title = $2, content = $3, updated_at = now()
		WHERE id = $1
		RETURNING ` + postColumns

	rows, err := r.db.Query(ctx, stmt, req.ID, req.Title, req.Content)
	if err != nil {
		return nil, fmt.Errorf("failed to execute update post query: %w", err)
	}

	post, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Post])
	if err != nil {
		return nil, fmt.Errorf("failed to update post %d: %w", req.ID, sqlerr.WithTable("posts", err))
	}

	return &post, nil
}

func (r *PostRepository) DeletePost(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM posts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete post %d: %w", id, err)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("failed to delete post %d: %w", id, sqlerr.WithTable("posts", pgx.ErrNoRows))
	}

	return nil
}

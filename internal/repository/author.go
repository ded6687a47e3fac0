package repository

import (
	"context"
	"fmt"

	"github.com/deppfellow/go-blog/internal/database"
	"github.com/deppfellow/go-blog/internal/model"
	"github.com/deppfellow/go-blog/internal/sqlerr"
	"github.com/jackc/pgx/v5"
)

const authorColumns = "id, name, email, created_at, updated_at"

type AuthorRepository struct {
	db Querier
}

func NewAuthorRepository(db Querier) *AuthorRepository {
	return &AuthorRepository{db: db}
}

func (r *AuthorRepository) CreateAuthor(ctx context.Context, req *model.CreateAuthorRequest) (*model.Author, error) {
	stmt := `
		INSERT INTO authors (name, email)
		VALUES ($1, $2)
		RETURNING ` + authorColumns

	rows, err := r.db.Query(ctx, stmt, req.Name, req.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to execute create author query: %w", err)
	}

	author, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Author])
	if err != nil {
		return nil, fmt.Errorf("failed to collect row from table:authors: %w", err)
	}

	return &author, nil
}

func (r *AuthorRepository) ListAuthors(ctx context.Context) ([]model.Author, error) {
	rows, err := r.db.Query(ctx, `SELECT `+authorColumns+` FROM authors ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to execute list authors query: %w", err)
	}

	authors, err := pgx.CollectRows(rows, pgx.RowToStructByName[model.Author])
	if err != nil {
		return nil, fmt.Errorf("failed to collect rows from table:authors: %w", err)
	}

	return authors, nil
}

func (r *AuthorRepository) GetAuthorByID(ctx context.Context, id int64) (*model.Author, error) {
	rows, err := r.db.Query(ctx, `SELECT `+authorColumns+` FROM authors WHERE id = $1`, id)
	if err != nil {
		return nil, fmt.Errorf("failed to execute get author query: %w", err)
	}

	author, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Author])
	if err != nil {
		return nil, fmt.Errorf("failed to get author %d: %w", id, sqlerr.WithTable("authors", err))
	}

	return &author, nil
}

// UpdateAuthor replaces the name and email of an existing author.
func (r *AuthorRepository) UpdateAuthor(ctx context.Context, req *model.UpdateAuthorRequest) (*model.Author, error) {
	stmt := `
		UPDATE authors
		SET name = $2, email = $3, updated_at = now()
		WHERE id = $1
		RETURNING ` + authorColumns

	rows, err := r.db.Query(ctx, stmt, req.ID, req.Name, req.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to execute update author query: %w", err)
	}

	author, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Author])
	if err != nil {
		return nil, fmt.Errorf("failed to update author %d: %w", req.ID, sqlerr.WithTable("authors", err))
	}

	return &author, nil
}

// DeleteAuthor removes an author together with its posts and reports how
// many posts went with it. The author row is locked first so the count
// matches what the cascade deletes.
func (r *AuthorRepository) DeleteAuthor(ctx context.Context, id int64) (int64, error) {
	var deletedPosts int64

	err := database.WithTx(ctx, r.db, func(tx pgx.Tx) error {
		var locked int64
		err := tx.QueryRow(ctx, `SELECT id FROM authors WHERE id = $1 FOR UPDATE`, id).Scan(&locked)
		if err != nil {
			return fmt.Errorf("failed to lock author %d: %w", id, sqlerr.WithTable("authors", err))
		}

		err = tx.QueryRow(ctx, `SELECT COUNT(*) FROM posts WHERE author_id = $1`, id).Scan(&deletedPosts)
		if err != nil {
			return fmt.Errorf("failed to count posts of author %d: %w", id, err)
		}

		if _, err := tx.Exec(ctx, `DELETE FROM authors WHERE id = $1`, id); err != nil {
			return fmt.Errorf("failed to delete author %d: %w", id, err)
		}

		return nil
	})
	if err != nil {
		return 0, err
	}

	return deletedPosts, nil
}

// ListAuthorPosts returns the posts of one author. The author and its posts
// come from a single LEFT JOIN, so an author without posts yields one row
// with an empty post (id 0) and a missing author yields no rows at all.
func (r *AuthorRepository) ListAuthorPosts(ctx context.Context, authorID int64) ([]model.Post, error) {
	stmt := `
		SELECT
			COALESCE(p.id, 0),
			COALESCE(p.title, ''),
			COALESCE(p.content, ''),
			a.id,
			COALESCE(p.created_at, a.created_at),
			COALESCE(p.updated_at, a.updated_at)
		FROM authors a
		LEFT JOIN posts p ON p.author_id = a.id
		WHERE a.id = $1
		ORDER BY p.id`

	rows, err := r.db.Query(ctx, stmt, authorID)
	if err != nil {
		return nil, fmt.Errorf("failed to execute list author posts query: %w", err)
	}
	defer rows.Close()

	found := false
	posts := []model.Post{}
	for rows.Next() {
		found = true

		var post model.Post
		err := rows.Scan(&post.ID, &post.Title, &post.Content, &post.AuthorID, &post.CreatedAt, &post.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan row from table:posts: %w", err)
		}

		if post.ID == 0 {
			continue
		}
		posts = append(posts, post)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list posts of author %d: %w", authorID, err)
	}

	if !found {
		return nil, fmt.Errorf("failed to list posts of author %d: %w", authorID, sqlerr.WithTable("authors", pgx.ErrNoRows))
	}

	return posts, nil
}

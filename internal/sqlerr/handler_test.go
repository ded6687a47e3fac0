package sqlerr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/deppfellow/go-blog/internal/errs"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func asHTTPError(t *testing.T, err error) *errs.HTTPError {
	t.Helper()
	var httpErr *errs.HTTPError
	require.True(t, errors.As(err, &httpErr), "expected *errs.HTTPError, got %T", err)
	return httpErr
}

func TestHandleError(t *testing.T) {
	t.Run("UniqueViolationIsConflict", func(t *testing.T) {
		err := fmt.Errorf("insert author: %w", &pgconn.PgError{
			Severity:       "ERROR",
			Code:           "23505",
			Message:        `duplicate key value violates unique constraint "authors_email_key"`,
			TableName:      "authors",
			ConstraintName: "authors_email_key",
		})

		httpErr := asHTTPError(t, HandleError(err))
		assert.Equal(t, http.StatusConflict, httpErr.Status)
		assert.Equal(t, "AUTHOR_ALREADY_EXISTS", httpErr.Code)
		assert.Equal(t, "An Author with this Email already exists", httpErr.Message)
		assert.True(t, httpErr.Override)
	})

	t.Run("ForeignKeyViolationIsBadRequest", func(t *testing.T) {
		err := &pgconn.PgError{
			Severity:       "ERROR",
			Code:           "23503",
			Message:        `insert or update on table "posts" violates foreign key constraint "posts_author_id_fkey"`,
			TableName:      "posts",
			ConstraintName: "posts_author_id_fkey",
		}

		httpErr := asHTTPError(t, HandleError(err))
		assert.Equal(t, http.StatusBadRequest, httpErr.Status)
		assert.Equal(t, "AUTHOR_NOT_FOUND", httpErr.Code)
		assert.Equal(t, "The referenced Author does not exist", httpErr.Message)
	})

	t.Run("NotNullViolationCarriesFieldError", func(t *testing.T) {
		err := &pgconn.PgError{Code: "23502", TableName: "posts", ColumnName: "title"}

		httpErr := asHTTPError(t, HandleError(err))
		assert.Equal(t, http.StatusBadRequest, httpErr.Status)
		assert.Equal(t, "POST_REQUIRED", httpErr.Code)
		require.Len(t, httpErr.Errors, 1)
		assert.Equal(t, "title", httpErr.Errors[0].Field)
	})

	t.Run("NoRowsWithTableIsNamedNotFound", func(t *testing.T) {
		httpErr := asHTTPError(t, HandleError(WithTable("posts", pgx.ErrNoRows)))
		assert.Equal(t, http.StatusNotFound, httpErr.Status)
		assert.Equal(t, "Post not found", httpErr.Message)

		httpErr = asHTTPError(t, HandleError(fmt.Errorf("get author: %w", WithTable("authors", pgx.ErrNoRows))))
		assert.Equal(t, "Author not found", httpErr.Message)
	})

	t.Run("NoRowsWithoutTable", func(t *testing.T) {
		httpErr := asHTTPError(t, HandleError(pgx.ErrNoRows))
		assert.Equal(t, http.StatusNotFound, httpErr.Status)
		assert.Equal(t, "Resource not found", httpErr.Message)
	})

	t.Run("HTTPErrorPassesThrough", func(t *testing.T) {
		original := errs.NewNotFoundError("Author not found", true, nil)
		assert.Same(t, original, HandleError(original))
	})

	t.Run("UnknownErrorsDoNotLeak", func(t *testing.T) {
		httpErr := asHTTPError(t, HandleError(errors.New("dial tcp 10.0.0.1:5432: connection refused")))
		assert.Equal(t, http.StatusInternalServerError, httpErr.Status)
		assert.Equal(t, "Internal Server Error", httpErr.Message)

		httpErr = asHTTPError(t, HandleError(&pgconn.PgError{Code: "42P01", Message: `relation "authors" does not exist`}))
		assert.Equal(t, http.StatusInternalServerError, httpErr.Status)
		assert.NotContains(t, httpErr.Message, "relation")
	})
}

func TestMapCode(t *testing.T) {
	assert.Equal(t, UniqueViolation, MapCode("23505"))
	assert.Equal(t, ForeignKeyViolation, MapCode("23503"))
	assert.Equal(t, ConnectionFailure, MapCode("08006"))
	assert.Equal(t, Other, MapCode("42P01"))
}

func TestErrCode(t *testing.T) {
	converted := ConvertPgError(&pgconn.PgError{Code: "23505", Severity: "ERROR"})
	assert.Equal(t, UniqueViolation, ErrCode(fmt.Errorf("wrapped: %w", converted)))
	assert.Equal(t, SeverityError, converted.Severity)
	assert.Equal(t, Other, ErrCode(errors.New("plain")))
}

func TestExtractColumns(t *testing.T) {
	assert.Equal(t, "email", extractColumnForUniqueViolation("authors_email_key"))
	assert.Equal(t, "email", extractColumnForUniqueViolation("unique_authors_email"))
	assert.Equal(t, "", extractColumnForUniqueViolation(""))
	assert.Equal(t, "author_id", extractColumnForForeignKey("posts_author_id_fkey"))
	assert.Equal(t, "", extractColumnForForeignKey("posts_pkey"))
}

package errs

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConstructors(t *testing.T) {
	notFound := NewNotFoundError("Author not found", true, nil)
	assert.Equal(t, http.StatusNotFound, notFound.Status)
	assert.Equal(t, "NOT_FOUND", notFound.Code)
	assert.Equal(t, "Author not found", notFound.Error())

	code := "AUTHOR_ALREADY_EXISTS"
	conflict := NewConflictError("An Author with this Email already exists", true, &code)
	assert.Equal(t, http.StatusConflict, conflict.Status)
	assert.Equal(t, code, conflict.Code)

	badRequest := NewBadRequestError("Validation failed", true, nil, []FieldError{{Field: "email", Error: "is required"}})
	assert.Equal(t, "BAD_REQUEST", badRequest.Code)
	assert.Len(t, badRequest.Errors, 1)

	internal := NewInternalServerError()
	assert.Equal(t, "INTERNAL_SERVER_ERROR", internal.Code)
	assert.False(t, internal.Override)
}

func TestIsMatchesByStatus(t *testing.T) {
	wrapped := fmt.Errorf("loading author: %w", NewNotFoundError("Author not found", true, nil))

	assert.True(t, errors.Is(wrapped, ErrNotFound))
	assert.False(t, errors.Is(wrapped, ErrConflict))
	assert.True(t, errors.Is(wrapped, &HTTPError{}))
	assert.False(t, errors.Is(errors.New("plain"), ErrNotFound))
}

func TestWithMessage(t *testing.T) {
	base := NewNotFoundError("Resource not found", false, nil)
	custom := base.WithMessage("Post not found")

	assert.Equal(t, "Resource not found", base.Message)
	assert.Equal(t, "Post not found", custom.Message)
	assert.Equal(t, base.Status, custom.Status)
}

func TestMakeUpperCaseWithUnderscores(t *testing.T) {
	assert.Equal(t, "BAD_REQUEST", MakeUpperCaseWithUnderscores("Bad Request"))
	assert.Equal(t, "CONFLICT", MakeUpperCaseWithUnderscores(http.StatusText(http.StatusConflict)))
}

package model

import (
	"errors"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthorDeleted(t *testing.T) {
	assert.Equal(t, "Author deleted", AuthorDeleted(0).Message)
	assert.Equal(t, "Author and 1 associated post deleted", AuthorDeleted(1).Message)
	assert.Equal(t, "Author and 3 associated posts deleted", AuthorDeleted(3).Message)
}

func failedFields(t *testing.T, err error) []string {
	t.Helper()

	var verrs validator.ValidationErrors
	require.True(t, errors.As(err, &verrs), "expected validation errors, got %v", err)

	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, fe.Field()+":"+fe.Tag())
	}
	return fields
}

func TestCreateAuthorRequestValidate(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		req := &CreateAuthorRequest{Name: "Alice", Email: "alice@example.com"}
		assert.NoError(t, req.Validate())
	})

	t.Run("missing fields use wire names", func(t *testing.T) {
		err := (&CreateAuthorRequest{}).Validate()
		assert.ElementsMatch(t, []string{"name:required", "email:required"}, failedFields(t, err))
	})

	t.Run("bad email and long name", func(t *testing.T) {
		req := &CreateAuthorRequest{Name: strings.Repeat("a", 101), Email: "not-an-email"}
		assert.ElementsMatch(t, []string{"name:max", "email:email"}, failedFields(t, req.Validate()))
	})
}

func TestPostRequestsValidate(t *testing.T) {
	t.Run("create needs positive author_id", func(t *testing.T) {
		req := &CreatePostRequest{Title: "Hi", Content: "Body"}
		assert.Equal(t, []string{"author_id:required"}, failedFields(t, req.Validate()))
	})

	t.Run("title length", func(t *testing.T) {
		req := &CreatePostRequest{Title: strings.Repeat("t", 256), Content: "Body", AuthorID: 1}
		assert.Equal(t, []string{"title:max"}, failedFields(t, req.Validate()))
	})

	t.Run("list filter is optional", func(t *testing.T) {
		assert.NoError(t, (&ListPostsRequest{}).Validate())
		assert.NoError(t, (&ListPostsRequest{AuthorID: 7}).Validate())
		assert.Equal(t, []string{"author_id:min"}, failedFields(t, (&ListPostsRequest{AuthorID: -1}).Validate()))
	})

	t.Run("path id reported by param name", func(t *testing.T) {
		assert.Equal(t, []string{"id:min"}, failedFields(t, (&PostIDRequest{}).Validate()))
	})
}

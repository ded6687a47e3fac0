package model

import "strconv"

// Author owns zero or more posts. Deleting an author deletes its posts.
type Author struct {
	Base
	Name  string `json:"name" db:"name"`
	Email string `json:"email" db:"email"`
}

// CreateAuthorRequest is the body of POST /authors.
type CreateAuthorRequest struct {
	Name  string `json:"name" validate:"required,max=100"`
	Email string `json:"email" validate:"required,email,max=100"`
}

func (r *CreateAuthorRequest) Validate() error {
	return validate.Struct(r)
}

// UpdateAuthorRequest is the body of PUT /authors/:id. Both fields are
// replaced.
type UpdateAuthorRequest struct {
	ID    int64  `param:"id" json:"-" validate:"min=1"`
	Name  string `json:"name" validate:"required,max=100"`
	Email string `json:"email" validate:"required,email,max=100"`
}

func (r *UpdateAuthorRequest) Validate() error {
	return validate.Struct(r)
}

// AuthorIDRequest addresses a single author by path parameter.
type AuthorIDRequest struct {
	ID int64 `param:"id" validate:"min=1"`
}

func (r *AuthorIDRequest) Validate() error {
	return validate.Struct(r)
}

// ListAuthorsRequest has no parameters.
type ListAuthorsRequest struct{}

func (r *ListAuthorsRequest) Validate() error {
	return nil
}

// AuthorDeleted builds the confirmation for a deleted author, mentioning
// the cascade when posts went with it.
func AuthorDeleted(deletedPosts int64) MessageResponse {
	switch deletedPosts {
	case 0:
		return MessageResponse{Message: "Author deleted"}
	case 1:
		return MessageResponse{Message: "Author and 1 associated post deleted"}
	default:
		return MessageResponse{Message: "Author and " + strconv.FormatInt(deletedPosts, 10) + " associated posts deleted"}
	}
}

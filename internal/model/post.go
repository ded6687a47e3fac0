package model

// Post belongs to exactly one author through AuthorID.
type Post struct {
	Base
	Title    string `json:"title" db:"title"`
	Content  string `json:"content" db:"content"`
	AuthorID int64  `json:"author_id" db:"author_id"`
}

// PostWithAuthor is a post with its author resolved by the same query.
// The author is never stored on the post row.
type PostWithAuthor struct {
	Post
	Author Author `json:"author"`
}

// CreatePostRequest is the body of POST /posts.
type CreatePostRequest struct {
	Title    string `json:"title" validate:"required,max=255"`
	Content  string `json:"content" validate:"required"`
	AuthorID int64  `json:"author_id" validate:"required,min=1"`
}

func (r *CreatePostRequest) Validate() error {
	return validate.Struct(r)
}

// UpdatePostRequest is the body of PUT /posts/:id. The author of a post
// cannot be changed, so any author_id in the body is ignored.
type UpdatePostRequest struct {
	ID      int64  `param:"id" json:"-" validate:"min=1"`
	Title   string `json:"title" validate:"required,max=255"`
	Content string `json:"content" validate:"required"`
}

func (r *UpdatePostRequest) Validate() error {
	return validate.Struct(r)
}

// PostIDRequest addresses a single post by path parameter.
type PostIDRequest struct {
	ID int64 `param:"id" validate:"min=1"`
}

func (r *PostIDRequest) Validate() error {
	return validate.Struct(r)
}

// ListPostsRequest optionally filters GET /posts by author. Zero means
// no filter.
type ListPostsRequest struct {
	AuthorID int64 `query:"author_id" validate:"omitempty,min=1"`
}

func (r *ListPostsRequest) Validate() error {
	return validate.Struct(r)
}

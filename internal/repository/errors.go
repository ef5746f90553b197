package repository

import "errors"

// Errors shared by all repositories. Implementations map their driver errors
// onto these sentinels so that services never inspect gorm errors directly.
var (
	// ErrNotFound means the requested record does not exist.
	ErrNotFound = errors.New("repository: record not found")
	// ErrDuplicateEntry means the write violated a unique constraint.
	ErrDuplicateEntry = errors.New("repository: duplicate entry")
)

// Per-resource aliases, kept so call sites read naturally.
var (
	ErrUserNotFound    = ErrNotFound
	ErrBlogNotFound    = ErrNotFound
	ErrCommentNotFound = ErrNotFound
	ErrContactNotFound = ErrNotFound
)

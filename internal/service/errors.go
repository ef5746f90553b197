package service

import "errors"

// Business errors returned by the services. The HTTP layer owns the mapping
// onto status codes; the message text is what clients surface.
var (
	ErrInvalidInput         = errors.New("invalid input")
	ErrAuthenticationFailed = errors.New("invalid email or password")
	ErrUnauthenticated      = errors.New("authentication required")
	ErrRegistrationFailed   = errors.New("registration failed: username or email already exists")
	ErrForbidden            = errors.New("not authorized to perform this action")
	ErrUserNotFound         = errors.New("user not found")
	ErrBlogNotFound         = errors.New("blog not found")
	ErrCommentNotFound      = errors.New("comment not found")
	ErrContactNotFound      = errors.New("contact message not found")
	ErrSlugTaken            = errors.New("slug already exists")
	ErrInternalServer       = errors.New("internal server error")
)

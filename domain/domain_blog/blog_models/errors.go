package blog_models

import "errors"

var (
	ErrPostNotFound       = errors.New("blog post not found")
	ErrMangaNotFound      = errors.New("manga not found")
	ErrPostExists         = errors.New("blog post already exists for this manga")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrLLMUnavailable     = errors.New("completion service unavailable")
)

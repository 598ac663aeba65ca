package service

import (
	"errors"
)

var (
	ErrUsernameTaken       = errors.New("username already exists")
	ErrInvalidCredentials  = errors.New("invalid username or password")
	ErrPreferencesNotFound = errors.New("preferences not found")
	ErrSessionNotFound     = errors.New("chat session not found or inactive")
	ErrEmptyMessage        = errors.New("message must not be empty")
)

package auth

import (
	"net/http"

	"BlogNest/pkg/response"
)

var (
	ErrMissingCredentials = response.NewError(http.StatusBadRequest, "username and password are required")
	ErrPasswordMismatch   = response.NewError(http.StatusBadRequest, "passwords do not match")
	ErrWeakPassword       = response.NewError(http.StatusBadRequest, "password must be at least 8 characters")
	ErrUsernameTaken      = response.NewError(http.StatusConflict, "username already taken")
	// Unknown username and wrong password collapse into this one error so
	// callers cannot enumerate accounts.
	ErrInvalidCredentials = response.NewError(http.StatusBadRequest, "invalid username or password")
	ErrUserNotFound       = response.NewError(http.StatusNotFound, "user not found")
)

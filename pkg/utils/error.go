package utils

import "errors"

var (
	ErrNoFileUploaded   = errors.New("no file uploaded")
	ErrFileSizeExceeded = errors.New("file size exceeds limit")
	ErrNotAnImage       = errors.New("uploaded file is not an image")
)

package utils

import (
	"mime/multipart"
	"net/textproto"
	"testing"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewULIDFromTimestamp(t *testing.T) {
	u := New()

	now := time.Now()
	id, err := u.NewULIDFromTimestamp(now)
	require.NoError(t, err)

	parsed, err := ulid.Parse(id)
	require.NoError(t, err)
	assert.Equal(t, ulid.Timestamp(now), parsed.Time())
}

func TestValidateImageFile(t *testing.T) {
	u := New()

	valid := &multipart.FileHeader{
		Filename: "photo.jpg",
		Size:     1024,
		Header:   textproto.MIMEHeader{"Content-Type": []string{"image/jpeg"}},
	}
	assert.NoError(t, u.ValidateImageFile(valid))

	assert.ErrorIs(t, u.ValidateImageFile(nil), ErrNoFileUploaded)

	tooBig := &multipart.FileHeader{
		Filename: "photo.jpg",
		Size:     6 * 1024 * 1024,
		Header:   textproto.MIMEHeader{"Content-Type": []string{"image/jpeg"}},
	}
	assert.ErrorIs(t, u.ValidateImageFile(tooBig), ErrFileSizeExceeded)

	wrongExt := &multipart.FileHeader{
		Filename: "document.pdf",
		Size:     1024,
		Header:   textproto.MIMEHeader{"Content-Type": []string{"image/jpeg"}},
	}
	assert.ErrorIs(t, u.ValidateImageFile(wrongExt), ErrNotAnImage)

	wrongType := &multipart.FileHeader{
		Filename: "photo.jpg",
		Size:     1024,
		Header:   textproto.MIMEHeader{"Content-Type": []string{"application/octet-stream"}},
	}
	assert.ErrorIs(t, u.ValidateImageFile(wrongType), ErrNotAnImage)
}

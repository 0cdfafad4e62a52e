package s3

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeyFromURL(t *testing.T) {
	assert.Equal(t,
		"thumbnails/01J0ABC.png",
		KeyFromURL("https://my-bucket.s3.amazonaws.com/thumbnails/01J0ABC.png"))

	// A bare key passes through untouched.
	assert.Equal(t, "thumbnails/01J0ABC.png", KeyFromURL("thumbnails/01J0ABC.png"))
}

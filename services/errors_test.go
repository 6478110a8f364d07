package services

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidationError_Message(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "missing required fields: communityId, title",
		(&ValidationError{Fields: []string{"communityId", "title"}}).Error())
	assert.Equal(t, "contentType must be an image type",
		(&ValidationError{Fields: []string{"contentType"}, Message: "contentType must be an image type"}).Error())
}

func TestRequireFields(t *testing.T) {
	t.Parallel()

	assert.NoError(t, requireFields("a", "x", "b", "y"))

	err := requireFields("a", "", "b", "y", "c", "")
	var verr *ValidationError
	if assert.True(t, errors.As(err, &verr)) {
		assert.Equal(t, []string{"a", "c"}, verr.Fields)
	}
}

func TestBlobUploadError_Unwrap(t *testing.T) {
	t.Parallel()
	cause := errors.New("denied")

	err := &BlobUploadError{Key: "k", Err: cause}
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "k")
}

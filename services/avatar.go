package services

import (
	"encoding/base64"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// InlineAvatarLimit is DynamoDB's item size ceiling. With blob storage disabled the encoded
// avatar lives inside the user item, so a payload near this size makes the whole write fail.
const InlineAvatarLimit = 400 * 1024

const inlineImagePrefix = "data:image"

var dataURLPattern = regexp.MustCompile(`^data:image/([A-Za-z-+/]+);base64,(.+)$`)

var errMalformedDataURL = errors.New("malformed image data URL")

// InlineImage is an avatar sent as a base64 data URL.
type InlineImage struct {
	Format string // png, jpeg, svg+xml, ...
	Data   []byte
}

func (img InlineImage) ContentType() string {
	return "image/" + img.Format
}

// IsInlineImage reports whether an avatar value is an embedded image rather than a URL.
func IsInlineImage(avatarURL string) bool {
	return strings.HasPrefix(avatarURL, inlineImagePrefix)
}

// DecodeInlineImage parses data:image/<format>;base64,<payload>.
func DecodeInlineImage(avatarURL string) (*InlineImage, error) {
	matches := dataURLPattern.FindStringSubmatch(avatarURL)
	if matches == nil {
		return nil, errMalformedDataURL
	}

	data, err := base64.StdEncoding.DecodeString(matches[2])
	if err != nil {
		return nil, fmt.Errorf("failed to decode image payload: %w", err)
	}

	return &InlineImage{Format: matches[1], Data: data}, nil
}

// AvatarObjectKey names an avatar object: <communityId>/<username>-<unix millis>.<format>.
func AvatarObjectKey(communityID, username, format string, at time.Time) string {
	return communityID + "/" + username + "-" + strconv.FormatInt(at.UnixMilli(), 10) + "." + format
}

// Package datauri converts binary attachment payloads to and from
// self-describing data-URI strings ("data:<media-type>;base64,<data>").
// The store persists the encoded form as an opaque string field.
package datauri

import (
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
)

var ErrInvalidDataURI = errors.New("datauri: malformed data URI")

const (
	prefix           = "data:"
	base64Marker     = ";base64,"
	defaultMediaType = "application/octet-stream"
)

// Encode wraps data into a base64 data URI. An empty mediaType falls
// back to application/octet-stream.
func Encode(mediaType string, data []byte) string {
	if mediaType == "" {
		mediaType = defaultMediaType
	}
	return fmt.Sprintf("%s%s%s%s", prefix, mediaType, base64Marker, base64.StdEncoding.EncodeToString(data))
}

// Decode is the inverse of Encode. Only base64-encoded data URIs are
// accepted, matching what Encode produces.
func Decode(s string) (mediaType string, data []byte, err error) {
	if !strings.HasPrefix(s, prefix) {
		return "", nil, ErrInvalidDataURI
	}
	rest := strings.TrimPrefix(s, prefix)

	idx := strings.Index(rest, base64Marker)
	if idx < 0 {
		return "", nil, ErrInvalidDataURI
	}

	mediaType = rest[:idx]
	if mediaType == "" {
		mediaType = defaultMediaType
	}

	data, err = base64.StdEncoding.DecodeString(rest[idx+len(base64Marker):])
	if err != nil {
		return "", nil, fmt.Errorf("%w: %v", ErrInvalidDataURI, err)
	}

	return mediaType, data, nil
}

package utils

import (
	"net/url"
	"strings"
)

// ValidImageRef accepts the image references the admin panel sends: empty,
// an inline data URI, or a fetchable URL.
func ValidImageRef(ref string) bool {
	if ref == "" {
		return true
	}
	if strings.HasPrefix(ref, "data:image/") {
		return true
	}
	u, err := url.Parse(ref)
	if err != nil {
		return false
	}
	return u.Scheme == "http" || u.Scheme == "https"
}

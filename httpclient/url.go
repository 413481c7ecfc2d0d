package httpclient

import (
	"regexp"
	"strings"
)

// baseURLPattern accepts an optional http(s) scheme, a dotted host with an
// alphabetic top-level label, and an optional path.
var baseURLPattern = regexp.MustCompile(`^(https?://)?([a-zA-Z0-9-]+\.)+[a-zA-Z]{2,}(/.*)?$`)

// ValidBaseURL reports whether s is accepted as a base URL by New.
func ValidBaseURL(s string) bool {
	return baseURLPattern.MatchString(s)
}

// JoinURL appends path to base. When base ends with "/" or path starts with
// "/" the two are concatenated as is, so a trailing and a leading slash
// produce "//". Otherwise a single "/" is inserted.
func JoinURL(base, path string) string {
	if strings.HasSuffix(base, "/") || strings.HasPrefix(path, "/") {
		return base + path
	}
	return base + "/" + path
}

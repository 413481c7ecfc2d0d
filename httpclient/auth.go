package httpclient

import "encoding/base64"

// DefaultAPIKeyHeader is the header name used by APIKey when none is given.
const DefaultAPIKeyHeader = "X-API-Key"

// BearerAuth returns an Authorization header carrying a bearer token.
func BearerAuth(token string) Header {
	return Header{Name: "Authorization", Value: "Bearer " + token}
}

// BasicAuth returns an Authorization header for HTTP Basic authentication.
func BasicAuth(username, password string) Header {
	creds := base64.StdEncoding.EncodeToString([]byte(username + ":" + password))
	return Header{Name: "Authorization", Value: "Basic " + creds}
}

// APIKey returns an API key header. An empty name uses DefaultAPIKeyHeader.
func APIKey(name, key string) Header {
	if name == "" {
		name = DefaultAPIKeyHeader
	}
	return Header{Name: name, Value: key}
}

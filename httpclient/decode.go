package httpclient

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/kbukum/neto/errors"
)

// DecodeJSON reads resp's body into a T and closes it.
func DecodeJSON[T any](resp *http.Response) (T, error) {
	var out T
	defer func() { _ = resp.Body.Close() }()
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return out, errors.New(errors.ErrCodeInvalidFormat, "decode response body").WithCause(err)
	}
	return out, nil
}

// ReadBody reads resp's body fully and closes it.
func ReadBody(resp *http.Response) ([]byte, error) {
	defer func() { _ = resp.Body.Close() }()
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Transport(err)
	}
	return data, nil
}

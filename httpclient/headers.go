package httpclient

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/kbukum/neto/logger"
)

// Header is a single default header. Names are stored verbatim and
// compared case-insensitively on the wire.
//
// Printing a Header with fmt, or encoding it as JSON, masks its value.
type Header struct {
	Name  string
	Value string
}

// String renders the header with its value masked.
func (h Header) String() string {
	return h.Name + ": " + logger.Mask
}

// Format masks the value for every fmt verb.
func (h Header) Format(f fmt.State, _ rune) {
	_, _ = io.WriteString(f, h.String())
}

// MarshalJSON encodes the header with its value masked.
func (h Header) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Name  string        `json:"name"`
		Value logger.Secret `json:"value"`
	}{h.Name, logger.Secret(h.Value)})
}

// Headers is an ordered list of default headers. Duplicates are allowed and
// keep their insertion order.
type Headers []Header

// Clone returns a copy that shares no backing array with h.
func (h Headers) Clone() Headers {
	if h == nil {
		return nil
	}
	out := make(Headers, len(h))
	copy(out, h)
	return out
}

// Names returns the header names in order.
func (h Headers) Names() []string {
	names := make([]string, len(h))
	for i, hdr := range h {
		names[i] = hdr.Name
	}
	return names
}

// Redacted renders every header as "Name: [REDACTED]" for log fields.
func (h Headers) Redacted() []string {
	out := make([]string, len(h))
	for i, hdr := range h {
		out[i] = hdr.String()
	}
	return out
}

// collapse keeps one entry per case-insensitive name. The last value wins and
// takes the position of the name's first occurrence.
func (h Headers) collapse() Headers {
	index := make(map[string]int, len(h))
	out := make(Headers, 0, len(h))
	for _, hdr := range h {
		key := http.CanonicalHeaderKey(hdr.Name)
		if i, ok := index[key]; ok {
			out[i].Value = hdr.Value
			continue
		}
		index[key] = len(out)
		out = append(out, hdr)
	}
	return out
}

// secrets returns the headers with each value wrapped as a logger.Secret.
func (h Headers) secrets() []secretHeader {
	out := make([]secretHeader, len(h))
	for i, hdr := range h {
		out[i] = secretHeader{name: hdr.Name, value: logger.Secret(hdr.Value)}
	}
	return out
}

type secretHeader struct {
	name  string
	value logger.Secret
}

package httpclient

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/textproto"
	"net/url"

	"github.com/kbukum/neto/errors"
)

const (
	contentTypeJSON  = "application/json"
	contentTypeText  = "text/plain; charset=utf-8"
	contentTypeForm  = "application/x-www-form-urlencoded"
	contentTypeOctet = "application/octet-stream"
)

// Encode attaches body to rb. A nil body or NoBody returns rb itself.
// Any other kind returns a new builder and leaves rb unchanged. Kinds
// missing from caps fail with an UNSUPPORTED_CAPABILITY error.
func Encode(rb *RequestBuilder, body Body, caps Capabilities) (*RequestBuilder, error) {
	kind := kindOf(body)
	if kind == KindNone {
		return rb, nil
	}
	if !caps.Has(kind) {
		return nil, errors.UnsupportedCapability(kind.String(), unsupportedHint(kind))
	}

	switch b := body.(type) {
	case JSONBody:
		data, err := encodeJSON(b.Value)
		if err != nil {
			return nil, errors.InvalidBody(kind.String(), err)
		}
		return rb.withBody(data, contentTypeJSON), nil
	case BytesBody:
		return rb.withBody(append([]byte{}, b...), ""), nil
	case TextBody:
		return rb.withBody([]byte(b), contentTypeText), nil
	case FormBody:
		return rb.withBody([]byte(encodeForm(b)), contentTypeForm), nil
	case MultipartBody:
		data, contentType, err := encodeMultipart(b)
		if err != nil {
			return nil, errors.InvalidBody(kind.String(), err)
		}
		return rb.withBody(data, contentType), nil
	default:
		return nil, errors.UnsupportedCapability(kind.String(), "")
	}
}

// encodeJSON marshals v without HTML escaping or a trailing newline.
func encodeJSON(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

// encodeForm emits keys in sorted order.
func encodeForm(form FormBody) string {
	values := make(url.Values, len(form))
	for k, v := range form {
		values.Set(k, v)
	}
	return values.Encode()
}

// encodeMultipart writes one section per part, in order.
func encodeMultipart(parts MultipartBody) ([]byte, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	for _, p := range parts {
		header := make(textproto.MIMEHeader)
		disposition := `form-data; name="` + escapeQuotes(p.Name) + `"`
		if p.FileName != "" {
			disposition += `; filename="` + escapeQuotes(p.FileName) + `"`
			contentType := p.ContentType
			if contentType == "" {
				contentType = contentTypeOctet
			}
			header.Set("Content-Type", contentType)
		}
		header.Set("Content-Disposition", disposition)

		section, err := w.CreatePart(header)
		if err != nil {
			return nil, "", err
		}
		if _, err := section.Write(p.Content); err != nil {
			return nil, "", err
		}
	}

	if err := w.Close(); err != nil {
		return nil, "", err
	}
	return buf.Bytes(), w.FormDataContentType(), nil
}

// escapeQuotes backslash-escapes quotes and backslashes in header parameters.
func escapeQuotes(s string) string {
	var buf bytes.Buffer
	for _, b := range []byte(s) {
		if b == '"' || b == '\\' {
			buf.WriteByte('\\')
		}
		buf.WriteByte(b)
	}
	return buf.String()
}

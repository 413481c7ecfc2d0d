package httpclient

// BodyKind identifies a request body variant.
type BodyKind uint8

const (
	KindNone BodyKind = iota
	KindJSON
	KindBytes
	KindText
	KindForm
	KindMultipart
)

var bodyKindNames = [...]string{
	KindNone:      "none",
	KindJSON:      "json",
	KindBytes:     "bytes",
	KindText:      "text",
	KindForm:      "form",
	KindMultipart: "multipart",
}

// String returns the lower-case kind name.
func (k BodyKind) String() string {
	if int(k) < len(bodyKindNames) {
		return bodyKindNames[k]
	}
	return "unknown"
}

// Body is a request payload. The set of variants is closed: NoBody,
// JSONBody, BytesBody, TextBody, FormBody and MultipartBody.
type Body interface {
	Kind() BodyKind
	sealed()
}

// NoBody sends no payload. A nil Body behaves the same.
type NoBody struct{}

// JSONBody is serialized with encoding/json.
type JSONBody struct {
	Value any
}

// BytesBody is attached verbatim without a content type.
type BytesBody []byte

// TextBody is attached verbatim as text/plain.
type TextBody string

// FormBody is sent as application/x-www-form-urlencoded.
type FormBody map[string]string

// MultipartBody is sent as multipart/form-data, one section per part in order.
type MultipartBody []Part

// Part is one multipart section. A part with an empty FileName is written as
// a plain form field: its Content-Disposition has no filename parameter and
// it carries no Content-Type. Set FileName to send the part as a file.
type Part struct {
	Name     string
	Content  []byte
	FileName string
	// ContentType overrides the section type of file parts.
	// Defaults to application/octet-stream.
	ContentType string
}

func (NoBody) Kind() BodyKind        { return KindNone }
func (JSONBody) Kind() BodyKind      { return KindJSON }
func (BytesBody) Kind() BodyKind     { return KindBytes }
func (TextBody) Kind() BodyKind      { return KindText }
func (FormBody) Kind() BodyKind      { return KindForm }
func (MultipartBody) Kind() BodyKind { return KindMultipart }

func (NoBody) sealed()        {}
func (JSONBody) sealed()      {}
func (BytesBody) sealed()     {}
func (TextBody) sealed()      {}
func (FormBody) sealed()      {}
func (MultipartBody) sealed() {}

// kindOf treats a nil Body as KindNone.
func kindOf(b Body) BodyKind {
	if b == nil {
		return KindNone
	}
	return b.Kind()
}

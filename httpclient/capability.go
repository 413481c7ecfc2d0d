package httpclient

import "strings"

// Capabilities is the set of body kinds the running build can encode.
// KindNone is always supported.
type Capabilities struct {
	kinds uint8
}

// NewCapabilities returns a set holding exactly the given kinds.
func NewCapabilities(kinds ...BodyKind) Capabilities {
	return Capabilities{}.With(kinds...)
}

// AllCapabilities returns a set holding every body kind.
func AllCapabilities() Capabilities {
	return NewCapabilities(KindJSON, KindBytes, KindText, KindForm, KindMultipart)
}

// Has reports whether kind can be encoded.
func (c Capabilities) Has(kind BodyKind) bool {
	return kind == KindNone || c.kinds&(1<<kind) != 0
}

// With returns a copy of c with kinds added.
func (c Capabilities) With(kinds ...BodyKind) Capabilities {
	for _, k := range kinds {
		c.kinds |= 1 << k
	}
	return c
}

// Without returns a copy of c with kinds removed.
func (c Capabilities) Without(kinds ...BodyKind) Capabilities {
	for _, k := range kinds {
		c.kinds &^= 1 << k
	}
	return c
}

// Kinds lists the supported kinds in declaration order, KindNone excluded.
func (c Capabilities) Kinds() []BodyKind {
	var out []BodyKind
	for k := KindJSON; k <= KindMultipart; k++ {
		if c.Has(k) {
			out = append(out, k)
		}
	}
	return out
}

// String renders the set as "{json,bytes,...}".
func (c Capabilities) String() string {
	kinds := c.Kinds()
	names := make([]string, len(kinds))
	for i, k := range kinds {
		names[i] = k.String()
	}
	return "{" + strings.Join(names, ",") + "}"
}

// unsupportedHint suggests an alternative path for a kind missing from the build.
func unsupportedHint(kind BodyKind) string {
	switch kind {
	case KindJSON:
		return "JSON encoding is disabled in this build; marshal the value yourself and send it as BytesBody"
	case KindMultipart:
		return "multipart bodies need a native platform; in a browser build the form with the platform FormData API instead"
	default:
		return ""
	}
}

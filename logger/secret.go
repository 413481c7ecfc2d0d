package logger

import (
	"encoding/json"
	"fmt"
	"io"
)

// Mask replaces every Secret in rendered output.
const Mask = "[REDACTED]"

// Secret is a string that renders as Mask through fmt, JSON, text
// marshaling and zerolog. Reveal returns the plaintext.
type Secret string

// Reveal returns the underlying value.
func (s Secret) Reveal() string { return string(s) }

// String implements fmt.Stringer.
func (s Secret) String() string { return Mask }

// GoString implements fmt.GoStringer so %#v stays masked.
func (s Secret) GoString() string { return Mask }

// Format implements fmt.Formatter; every verb prints Mask.
func (s Secret) Format(f fmt.State, _ rune) { _, _ = io.WriteString(f, Mask) }

// MarshalJSON implements json.Marshaler.
func (s Secret) MarshalJSON() ([]byte, error) { return json.Marshal(Mask) }

// MarshalText implements encoding.TextMarshaler.
func (s Secret) MarshalText() ([]byte, error) { return []byte(Mask), nil }

//go:build js || wasip1

package httpclient

// DefaultCapabilities returns the capability set of the running platform.
// WebAssembly builds cannot construct multipart bodies.
func DefaultCapabilities() Capabilities {
	return AllCapabilities().Without(KindMultipart)
}

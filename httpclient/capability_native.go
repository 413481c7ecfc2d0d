//go:build !js && !wasip1

package httpclient

// DefaultCapabilities returns the capability set of the running platform.
// Native builds encode every body kind.
func DefaultCapabilities() Capabilities {
	return AllCapabilities()
}

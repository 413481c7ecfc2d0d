package errors

// ErrorCode represents a machine-readable error code.
type ErrorCode string

// Build-time errors, raised while validating a configuration.
const (
	// ErrCodeMissingField indicates a required field was never set.
	ErrCodeMissingField ErrorCode = "MISSING_FIELD"
	// ErrCodeInvalidURL indicates the base URL does not have the accepted shape.
	ErrCodeInvalidURL ErrorCode = "INVALID_URL"
	// ErrCodeInvalidInput indicates an input value failed validation.
	ErrCodeInvalidInput ErrorCode = "INVALID_INPUT"
	// ErrCodeInvalidFormat indicates a field has an invalid format.
	ErrCodeInvalidFormat ErrorCode = "INVALID_FORMAT"
)

// Configuration errors, raised while building a transport client.
const (
	// ErrCodeClientBuildFailed indicates the transport client could not be constructed.
	ErrCodeClientBuildFailed ErrorCode = "CLIENT_BUILD_FAILED"
)

// Request-time errors.
const (
	// ErrCodeUnsupportedCapability indicates a body kind this build or platform cannot encode.
	ErrCodeUnsupportedCapability ErrorCode = "UNSUPPORTED_CAPABILITY"
	// ErrCodeInvalidBody indicates a body payload could not be serialized.
	ErrCodeInvalidBody ErrorCode = "INVALID_BODY"
	// ErrCodeTransport indicates the transport failed to deliver the request.
	ErrCodeTransport ErrorCode = "TRANSPORT_ERROR"
)

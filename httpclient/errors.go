package httpclient

import (
	"net/http"

	"github.com/kbukum/neto/errors"
)

// IsMissingField reports whether err is a MISSING_FIELD build error.
func IsMissingField(err error) bool {
	return errors.HasCode(err, errors.ErrCodeMissingField)
}

// IsInvalidURL reports whether err is an INVALID_URL build error.
func IsInvalidURL(err error) bool {
	return errors.HasCode(err, errors.ErrCodeInvalidURL)
}

// IsClientBuildFailed reports whether err came from Configure.
func IsClientBuildFailed(err error) bool {
	return errors.HasCode(err, errors.ErrCodeClientBuildFailed)
}

// IsUnsupportedCapability reports whether a body kind was rejected by the encoder.
func IsUnsupportedCapability(err error) bool {
	return errors.HasCode(err, errors.ErrCodeUnsupportedCapability)
}

// IsInvalidBody reports whether a body failed to serialize.
func IsInvalidBody(err error) bool {
	return errors.HasCode(err, errors.ErrCodeInvalidBody)
}

// IsTransport reports whether the client failed to deliver a request.
func IsTransport(err error) bool {
	return errors.HasCode(err, errors.ErrCodeTransport)
}

// IsSuccess reports whether resp carries a 2xx status.
func IsSuccess(resp *http.Response) bool {
	return resp != nil && resp.StatusCode >= 200 && resp.StatusCode < 300
}

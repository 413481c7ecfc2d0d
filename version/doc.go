// Package version reports the neto build version.
//
// Version is set at link time:
//
//	go build -ldflags "-X github.com/kbukum/neto/version.Version=1.2.0"
//
// Without it, VCS details come from the embedded build info.
package version

// Package security holds the TLS settings applied to outbound HTTP transports.
//
//	cfg := security.TLSConfig{
//	    CAFile:     "/etc/neto/ca.pem",
//	    MinVersion: "1.3",
//	}
//	tlsConfig, err := cfg.Build()
package security

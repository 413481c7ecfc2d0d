// Package httpclient is a validated configuration layer over an HTTP
// transport. It owns a base URL, ordered default headers and request
// construction, and hands each request to a Doer (an *http.Client by
// default) for sending.
//
// # Building a Configuration
//
//	cfg, err := httpclient.New(
//	    httpclient.WithBaseURL("https://api.example.com"),
//	    httpclient.WithHeaders(httpclient.BearerAuth(token)),
//	    httpclient.WithClient(nil),
//	)
//	if err != nil {
//	    return err // MISSING_FIELD or INVALID_URL
//	}
//	if err := cfg.Configure(); err != nil {
//	    return err // CLIENT_BUILD_FAILED
//	}
//
// # Sending
//
//	resp, err := cfg.Put(ctx, "/item", []httpclient.Param{{Name: "id", Value: "7"}},
//	    httpclient.TextBody("hello"))
//
// Bodies are one of NoBody, JSONBody, BytesBody, TextBody, FormBody and
// MultipartBody. Kinds missing from the Configuration's Capabilities fail
// with UNSUPPORTED_CAPABILITY before anything is sent. WebAssembly builds
// omit multipart by default.
//
// Default header values never appear in logs, spans or fmt output.
package httpclient

package httpclient

import (
	stderrors "errors"
	"net/http"
	"time"

	"github.com/kbukum/neto/errors"
	"github.com/kbukum/neto/logger"
	"github.com/kbukum/neto/observability"
	"github.com/kbukum/neto/security"
	"github.com/kbukum/neto/validation"
)

// Doer sends a request. *http.Client satisfies it.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// ErrNotConfigured is the transport error returned by a Configuration whose
// client was set to nil and never built with Configure.
var ErrNotConfigured = stderrors.New("client not configured")

type unconfiguredClient struct{}

func (unconfiguredClient) Do(*http.Request) (*http.Response, error) {
	return nil, ErrNotConfigured
}

// Configuration holds a validated base URL, ordered default headers and the
// client requests are sent through.
//
// Configure is the only mutator. Call it before sharing a Configuration
// between goroutines, or serialize calls externally.
type Configuration struct {
	name    string
	baseURL string
	headers Headers
	client  Doer
	caps    Capabilities
	tls     *security.TLSConfig
	timeout time.Duration
	log     *logger.Logger
	metrics *observability.ClientMetrics
}

type options struct {
	name       string
	baseURL    string
	baseURLSet bool
	headers    Headers
	headersSet bool
	client     Doer
	clientSet  bool
	caps       Capabilities
	tls        *security.TLSConfig
	timeout    time.Duration
	log        *logger.Logger
	metrics    *observability.ClientMetrics
}

// Option configures New.
type Option func(*options)

// WithBaseURL sets the base URL every request path is joined onto.
func WithBaseURL(baseURL string) Option {
	return func(o *options) {
		o.baseURL = baseURL
		o.baseURLSet = true
	}
}

// WithHeaders sets the default headers. Calling it with no headers still
// marks the field as set.
func WithHeaders(headers ...Header) Option {
	return func(o *options) {
		o.headers = Headers(headers).Clone()
		o.headersSet = true
	}
}

// WithClient sets the client requests are sent through. A nil client marks
// the field as set and leaves the Configuration unusable until Configure.
func WithClient(client Doer) Option {
	return func(o *options) {
		o.client = client
		o.clientSet = true
	}
}

// WithCapabilities overrides the body kinds the encoder accepts.
func WithCapabilities(caps Capabilities) Option {
	return func(o *options) { o.caps = caps }
}

// WithTLS sets the TLS settings applied by Configure.
func WithTLS(tls *security.TLSConfig) Option {
	return func(o *options) { o.tls = tls }
}

// WithTimeout sets the client timeout applied by Configure. Zero means none.
func WithTimeout(d time.Duration) Option {
	return func(o *options) { o.timeout = d }
}

// WithLogger sets the logger. Defaults to logger.Get("httpclient").
func WithLogger(l *logger.Logger) Option {
	return func(o *options) { o.log = l }
}

// WithName names the Configuration in logs and component summaries.
func WithName(name string) Option {
	return func(o *options) { o.name = name }
}

// WithMetrics sets the request instruments. Defaults to instruments on the
// global meter provider.
func WithMetrics(m *observability.ClientMetrics) Option {
	return func(o *options) { o.metrics = m }
}

// New validates the options and returns a Configuration.
//
// Base URL, headers and client must all be given, otherwise New fails with
// MISSING_FIELD naming the first absent field. A base URL that does not
// match the accepted shape fails with INVALID_URL.
func New(opts ...Option) (*Configuration, error) {
	o := options{name: "httpclient", caps: DefaultCapabilities()}
	for _, opt := range opts {
		opt(&o)
	}

	v := validation.New().
		Present("base_url", o.baseURLSet).
		Present("headers", o.headersSet).
		Present("client", o.clientSet)
	if err := v.Validate(); err != nil {
		return nil, err
	}
	if !ValidBaseURL(o.baseURL) {
		return nil, errors.InvalidURL(o.baseURL)
	}

	client := o.client
	if isNilClient(client) {
		client = unconfiguredClient{}
	}

	log := o.log
	if log == nil {
		log = logger.Get("httpclient")
	}

	metrics := o.metrics
	if metrics == nil {
		m, err := observability.NewClientMetrics(observability.Meter(observability.TracerName))
		if err != nil {
			log.Warn("request metrics disabled", logger.ErrorFields("new", err))
		}
		metrics = m
	}

	return &Configuration{
		name:    o.name,
		baseURL: o.baseURL,
		headers: o.headers,
		client:  client,
		caps:    o.caps,
		tls:     o.tls,
		timeout: o.timeout,
		log:     log,
		metrics: metrics,
	}, nil
}

func isNilClient(d Doer) bool {
	if d == nil {
		return true
	}
	hc, ok := d.(*http.Client)
	return ok && hc == nil
}

// Name returns the configured name.
func (c *Configuration) Name() string { return c.name }

// BaseURL returns the validated base URL.
func (c *Configuration) BaseURL() string { return c.baseURL }

// Headers returns a copy of the default headers.
func (c *Configuration) Headers() Headers { return c.headers.Clone() }

// Client returns the current client.
func (c *Configuration) Client() Doer { return c.client }

// Capabilities returns the body kinds the encoder accepts.
func (c *Configuration) Capabilities() Capabilities { return c.caps }

// Configured reports whether the Configuration holds a usable client.
func (c *Configuration) Configured() bool {
	_, placeholder := c.client.(unconfiguredClient)
	return !placeholder
}

// URL joins path onto the base URL.
func (c *Configuration) URL(path string) string {
	return JoinURL(c.baseURL, path)
}

package httpclient

import (
	"fmt"
	"sort"
	"time"

	"github.com/kbukum/neto/security"
	"github.com/kbukum/neto/validation"
)

const defaultTimeout = 30 * time.Second

// Settings is the file and environment friendly form of a Configuration.
// Load it with config.Load and pass it to NewFromSettings.
type Settings struct {
	// Name identifies the client in logs. Defaults to "httpclient".
	Name string `yaml:"name" mapstructure:"name" validate:"omitempty,max=64"`

	// BaseURL is the endpoint every request path is joined onto.
	BaseURL string `yaml:"base_url" mapstructure:"base_url" validate:"omitempty,max=2048"`

	// Headers are default headers sent with every request, in name order.
	Headers map[string]string `yaml:"headers" mapstructure:"headers" validate:"omitempty,dive,keys,required,endkeys"`

	// Timeout bounds each request. Defaults to 30s.
	Timeout time.Duration `yaml:"timeout" mapstructure:"timeout" validate:"gte=0"`

	// TLS configures the transport built by Configure.
	TLS *security.TLSConfig `yaml:"tls" mapstructure:"tls"`
}

// ApplyDefaults fills in zero-value fields.
func (s *Settings) ApplyDefaults() {
	if s.Name == "" {
		s.Name = "httpclient"
	}
	if s.Timeout == 0 {
		s.Timeout = defaultTimeout
	}
}

// Validate checks struct constraints and TLS consistency.
func (s *Settings) Validate() error {
	if err := validation.Validate(s); err != nil {
		return err
	}
	if err := s.TLS.Validate(); err != nil {
		return fmt.Errorf("httpclient: %w", err)
	}
	return nil
}

// headerList returns the header map as Headers sorted by name.
func (s *Settings) headerList() Headers {
	names := make([]string, 0, len(s.Headers))
	for name := range s.Headers {
		names = append(names, name)
	}
	sort.Strings(names)

	headers := make(Headers, 0, len(names))
	for _, name := range names {
		headers = append(headers, Header{Name: name, Value: s.Headers[name]})
	}
	return headers
}

// NewFromSettings applies defaults, validates s and builds a Configuration
// with a nil client. Call Configure before sending, or pass WithClient in
// opts. opts are applied after the settings and may override them.
func NewFromSettings(s Settings, opts ...Option) (*Configuration, error) {
	s.ApplyDefaults()
	if err := s.Validate(); err != nil {
		return nil, err
	}

	base := []Option{
		WithName(s.Name),
		WithHeaders(s.headerList()...),
		WithClient(nil),
		WithTLS(s.TLS),
		WithTimeout(s.Timeout),
	}
	if s.BaseURL != "" {
		base = append(base, WithBaseURL(s.BaseURL))
	}
	return New(append(base, opts...)...)
}

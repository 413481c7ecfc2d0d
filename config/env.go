package config

import (
	"os"
	"strings"

	"github.com/spf13/viper"
)

// bindEnv copies every environment variable into v under all of its key variants.
func bindEnv(v *viper.Viper) {
	for _, env := range os.Environ() {
		key, value, ok := strings.Cut(env, "=")
		if !ok || key == "" {
			continue
		}
		for _, variant := range envKeyVariants(key) {
			v.Set(variant, value)
		}
	}
}

// envKeyVariants maps an environment variable name onto the dotted keys it
// may address. A split point becomes a nesting boundary, and segments on
// either side keep their underscores:
//
//	CLIENT_BASE_URL -> client_base_url, client.base.url, client.base_url, client_base.url
//	HTTP_CLIENT_BASE_URL -> ..., http_client.base_url, http.client.base_url, ...
func envKeyVariants(envKey string) []string {
	lower := strings.ToLower(envKey)
	parts := strings.Split(lower, "_")
	if len(parts) <= 1 {
		return []string{lower}
	}

	variants := []string{lower, strings.Join(parts, ".")}
	for i := 1; i < len(parts); i++ {
		head, tail := parts[:i], strings.Join(parts[i:], "_")
		variants = append(variants,
			strings.Join(head, "_")+"."+tail,
			strings.Join(head, ".")+"."+tail,
		)
	}
	return dedupe(variants)
}

func dedupe(items []string) []string {
	seen := make(map[string]struct{}, len(items))
	out := items[:0]
	for _, item := range items {
		if _, ok := seen[item]; ok {
			continue
		}
		seen[item] = struct{}{}
		out = append(out, item)
	}
	return out
}

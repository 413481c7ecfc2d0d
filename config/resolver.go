package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// FileSystem abstracts file lookups so resolution can be tested without disk access.
type FileSystem interface {
	Exists(path string) bool
	LoadEnv(path string) error
}

// OSFileSystem implements FileSystem on top of the operating system.
type OSFileSystem struct{}

// Exists reports whether path can be stat'ed.
func (OSFileSystem) Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// LoadEnv loads a .env file into the process environment without
// overriding variables that are already set.
func (OSFileSystem) LoadEnv(path string) error {
	return godotenv.Load(path)
}

// Resolver finds the config and env files for a service.
type Resolver struct {
	FileSystem FileSystem
}

// Files holds resolved config and env file paths. Empty means not found.
type Files struct {
	ConfigFile string
	EnvFile    string
}

// Resolve returns explicit paths from opts when given and searches the
// standard locations for the rest.
func (r *Resolver) Resolve(serviceName string, opts LoaderConfig) Files {
	files := Files{ConfigFile: opts.ConfigFile, EnvFile: opts.EnvFile}
	if files.ConfigFile == "" {
		files.ConfigFile = r.first(configCandidates(serviceName))
	}
	if files.EnvFile == "" {
		files.EnvFile = r.first(envCandidates(serviceName))
	}
	return files
}

func (r *Resolver) first(paths []string) string {
	for _, p := range paths {
		if r.FileSystem.Exists(p) {
			return p
		}
	}
	return ""
}

// configCandidates lists config file locations in priority order.
func configCandidates(serviceName string) []string {
	var paths []string
	for _, name := range serviceNames(serviceName) {
		for _, ext := range []string{"yml", "yaml"} {
			paths = append(paths,
				fmt.Sprintf("./config/%s.%s", name, ext),
				fmt.Sprintf("../config/%s.%s", name, ext),
			)
		}
	}
	return append(paths, "./config/config.yml", "./config.yml", "./config.yaml")
}

// envCandidates lists .env locations in priority order.
func envCandidates(serviceName string) []string {
	var paths []string
	for _, name := range serviceNames(serviceName) {
		paths = append(paths, ".env."+name, "./config/.env."+name)
	}
	return append(paths, ".env", "./config/.env", "../.env")
}

// serviceNames returns the full name and, for dashed names, its last segment.
func serviceNames(serviceName string) []string {
	if serviceName == "" {
		return nil
	}
	names := []string{serviceName}
	if idx := strings.LastIndex(serviceName, "-"); idx != -1 && idx < len(serviceName)-1 {
		names = append(names, serviceName[idx+1:])
	}
	return names
}

package reverse

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v2"
)

// Manifest is the YAML route table consumed by the revex CLI and by
// NewResolverFromManifest.
type Manifest struct {
	// Package is the Go package name for generated reversal code.
	Package string `yaml:"package"`
	// Routes lists the named URL patterns in declaration order.
	Routes []ManifestRoute `yaml:"routes"`
}

// ManifestRoute is one named pattern in a manifest.
type ManifestRoute struct {
	Name    string `yaml:"name"`
	Pattern string `yaml:"pattern"`
}

// DecodeManifest reads a YAML manifest.
func DecodeManifest(r io.Reader) (*Manifest, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading manifest: %w", err)
	}
	var m Manifest
	if err := yaml.UnmarshalStrict(data, &m); err != nil {
		return nil, fmt.Errorf("decoding manifest: %w", err)
	}
	if len(m.Routes) == 0 {
		return nil, fmt.Errorf("manifest declares no routes")
	}
	for i, route := range m.Routes {
		if route.Name == "" || route.Pattern == "" {
			return nil, fmt.Errorf("route %d: name and pattern are required", i)
		}
	}
	return &m, nil
}

// LoadManifest reads a YAML manifest from a file.
func LoadManifest(path string) (*Manifest, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return DecodeManifest(f)
}

// NewResolverFromManifest builds a resolver holding every route of the
// manifest.
func NewResolverFromManifest(m *Manifest) (*Resolver, error) {
	r := NewResolver()
	for _, route := range m.Routes {
		if err := r.Add(route.Name, route.Pattern); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Package schemas embeds the JSON Schemas for the site's configuration and data files.
package schemas

import (
	"embed"
	"fmt"
)

//go:embed *.schema.json
var files embed.FS

// Schema file names.
const (
	Companies = "companies.schema.json"
	Config    = "config.schema.json"
)

// Get returns the content of the named schema.
func Get(name string) (string, error) {
	data, err := files.ReadFile(name)
	if err != nil {
		return "", fmt.Errorf("schema %q not found: %w", name, err)
	}
	return string(data), nil
}

// MustGet returns the named schema, panicking if it is not embedded.
func MustGet(name string) string {
	s, err := Get(name)
	if err != nil {
		panic(err)
	}
	return s
}

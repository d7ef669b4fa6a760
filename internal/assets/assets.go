// Package assets embeds the site's images, stylesheet and client script.
package assets

import (
	"embed"
	"io/fs"
	"mime"
	"path"
	"strings"
)

//go:embed images static
var files embed.FS

// PlaceholderImage is served in place of any image that is not embedded.
const PlaceholderImage = "placeholder.svg"

// PlaceholderPath is the public URL of the placeholder image.
const PlaceholderPath = "/images/" + PlaceholderImage

// Asset is one embedded file ready to be served.
type Asset struct {
	Name        string
	ContentType string
	Data        []byte
}

// Image returns the named image from images/. Unknown or unsafe names
// resolve to the placeholder, with found reporting false.
func Image(name string) (asset Asset, found bool) {
	if a, ok := load("images", name); ok {
		return a, true
	}
	a, _ := load("images", PlaceholderImage)
	return a, false
}

// Static returns the named file from static/.
func Static(name string) (Asset, bool) {
	return load("static", name)
}

// Stylesheet returns the site CSS.
func Stylesheet() string {
	a, _ := load("static", "site.css")
	return string(a.Data)
}

// Images lists the embedded image names.
func Images() ([]string, error) {
	entries, err := fs.ReadDir(files, "images")
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if !e.IsDir() {
			names = append(names, e.Name())
		}
	}
	return names, nil
}

func load(dir, name string) (Asset, bool) {
	if name == "" || strings.Contains(name, "/") || strings.Contains(name, "..") {
		return Asset{}, false
	}
	p := path.Join(dir, name)
	data, err := files.ReadFile(p)
	if err != nil {
		return Asset{}, false
	}
	ct := mime.TypeByExtension(path.Ext(name))
	if ct == "" {
		ct = "application/octet-stream"
	}
	return Asset{Name: name, ContentType: ct, Data: data}, true
}

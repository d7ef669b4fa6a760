// Package companies provides the subsidiary catalog shown on the companies page.
// The default catalog is embedded; an override file may replace it.
package companies

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"

	"github.com/databonnd/site/internal/schemas"
	"github.com/databonnd/site/internal/types"
	rootschemas "github.com/databonnd/site/schemas"
)

//go:embed companies.json
var defaultCatalog []byte

const embeddedSource = "embedded"

type catalogFile struct {
	Companies []types.Company `json:"companies"`
}

// Default returns the embedded catalog in declaration order.
func Default() []types.Company {
	list, err := Parse(embeddedSource, defaultCatalog)
	if err != nil {
		panic(fmt.Sprintf("embedded company catalog is invalid: %v", err))
	}
	return list
}

// Load reads a catalog file, validating it against the companies schema
// and each entry's field rules. An empty path returns the default catalog.
func Load(path string) ([]types.Company, error) {
	if path == "" {
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &CatalogError{Source: path, Message: "failed to read catalog", Cause: err}
	}
	return Parse(path, data)
}

// Parse decodes and validates catalog JSON. source names the data in errors.
func Parse(source string, data []byte) ([]types.Company, error) {
	if err := schemas.ValidateJSONString(rootschemas.MustGet(rootschemas.Companies), string(data)); err != nil {
		return nil, &CatalogError{Source: source, Message: "catalog does not match schema", Cause: err}
	}

	var file catalogFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, &CatalogError{Source: source, Message: "failed to parse catalog JSON", Cause: err}
	}

	for i := range file.Companies {
		if err := file.Companies[i].Validate(); err != nil {
			return nil, &CatalogError{
				Source:  source,
				Message: fmt.Sprintf("company %d (%q) is invalid", i, file.Companies[i].Name),
				Cause:   err,
			}
		}
	}
	return file.Companies, nil
}

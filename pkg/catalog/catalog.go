// pkg/catalog/catalog.go
package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"guidance-workers/internal/models"

	"github.com/xeipuuv/gojsonschema"
)

// Load reads and validates a catalog file. Documents that fail schema
// validation are rejected wholesale; a catalog with a malformed entry is
// worse than no catalog because the matchers would score against it.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	if err := Validate(data); err != nil {
		return nil, fmt.Errorf("catalog %s: %w", filepath.Base(path), err)
	}

	var cat Catalog
	if err := json.Unmarshal(data, &cat); err != nil {
		return nil, err
	}
	return &cat, nil
}

// Validate checks a raw catalog document against the catalog schema.
func Validate(data []byte) error {
	schemaLoader := gojsonschema.NewGoLoader(catalogSchema)
	documentLoader := gojsonschema.NewBytesLoader(data)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return fmt.Errorf("schema validation: %w", err)
	}
	if !result.Valid() {
		details := make([]string, 0, len(result.Errors()))
		for _, desc := range result.Errors() {
			details = append(details, desc.String())
		}
		return fmt.Errorf("invalid catalog document: %s", strings.Join(details, "; "))
	}
	return nil
}

// Save writes the catalog, stamping LastUpdated.
func Save(cat *Catalog, path string) error {
	cat.LastUpdated = time.Now().UTC().Format(time.RFC3339)

	data, err := json.MarshalIndent(cat, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal catalog: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create directory: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write catalog file: %w", err)
	}
	return nil
}

// FindCareer returns the career with the given id.
func (c *Catalog) FindCareer(id string) (models.CareerCatalogEntry, bool) {
	for _, entry := range c.Careers {
		if entry.ID == id {
			return entry, true
		}
	}
	return models.CareerCatalogEntry{}, false
}

// FindProgram returns the program with the given id.
func (c *Catalog) FindProgram(id string) (models.ProgramCatalogEntry, bool) {
	for _, entry := range c.Programs {
		if entry.ID == id {
			return entry, true
		}
	}
	return models.ProgramCatalogEntry{}, false
}

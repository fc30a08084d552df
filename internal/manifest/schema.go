package manifest

import (
	"encoding/json"
	"errors"
	"strings"

	"github.com/reqfile/reqfile-cli/internal/assets"
	"github.com/reqfile/reqfile-cli/internal/requirement"
	"github.com/xeipuuv/gojsonschema"
)

var schemaJSON = assets.ManifestSchema()

// ValidateAgainstSchema checks the structured rendering of a requirement
// set against the embedded JSON Schema.
func ValidateAgainstSchema(reqs []requirement.Requirement) error {
	if len(schemaJSON) == 0 {
		return errors.New("schema not embedded")
	}
	b, err := json.Marshal(NewExport(reqs))
	if err != nil {
		return err
	}
	schemaLoader := gojsonschema.NewBytesLoader(schemaJSON)
	docLoader := gojsonschema.NewBytesLoader(b)
	res, err := gojsonschema.Validate(schemaLoader, docLoader)
	if err != nil {
		return err
	}
	if res.Valid() {
		return nil
	}
	var msgs []string
	for _, e := range res.Errors() {
		msgs = append(msgs, e.String())
	}
	return errors.New("schema validation failed: " + strings.Join(msgs, "; "))
}

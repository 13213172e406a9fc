package schema

import (
	_ "embed"
	"encoding/json"
	"fmt"

	"github.com/xeipuuv/gojsonschema"
	"gopkg.in/yaml.v3"

	"github.com/dshills/careeriq/internal/snapshot"
)

//go:embed snapshot.schema.json
var snapshotSchema []byte

var snapshotSchemaLoader = gojsonschema.NewBytesLoader(snapshotSchema)

// ValidateDocument checks a raw snapshot document against the snapshot JSON
// Schema. It catches unknown keys and wrong value types, which decoding
// silently drops or rejects without a path. Enum values are left to
// ValidateSnapshot.
func ValidateDocument(data []byte, format snapshot.Format) ([]ValidationError, error) {
	var doc any
	var err error
	if format == snapshot.FormatYAML {
		err = yaml.Unmarshal(data, &doc)
	} else {
		err = json.Unmarshal(data, &doc)
	}
	if err != nil {
		return nil, fmt.Errorf("schema.ValidateDocument: %w", err)
	}

	result, err := gojsonschema.Validate(snapshotSchemaLoader, gojsonschema.NewGoLoader(doc))
	if err != nil {
		return nil, fmt.Errorf("schema.ValidateDocument: %w", err)
	}
	if result.Valid() {
		return nil, nil
	}

	errs := make([]ValidationError, 0, len(result.Errors()))
	for _, desc := range result.Errors() {
		field := desc.Field()
		if field == "" {
			field = "(root)"
		}
		errs = append(errs, ValidationError{Path: field, Message: desc.Description()})
	}
	return errs, nil
}

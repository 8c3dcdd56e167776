// Package catalog supplies listing collections to the search engine.
//
// Every collection, whether bundled or read from disk, passes through Decode:
// the raw document is validated against an embedded JSON Schema before it is
// decoded into domain listings, so a structural violation anywhere in the
// collection rejects the whole collection with domain.ErrInvalidInput.
package catalog

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"

	"github.com/pgnest/pg-listing-search/internal/domain"
	"github.com/pgnest/pg-listing-search/internal/infrastructure/timeutil"
)

const schemaURL = "listings.schema.json"

//go:embed data/listings.schema.json
var listingsSchema []byte

// listingSchema is compiled once; a broken embedded schema is a build defect.
var listingSchema = mustCompileSchema()

func mustCompileSchema() *jsonschema.Schema {
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource(schemaURL, bytes.NewReader(listingsSchema)); err != nil {
		panic(fmt.Sprintf("catalog: failed to add schema %s: %v", schemaURL, err))
	}
	schema, err := compiler.Compile(schemaURL)
	if err != nil {
		panic(fmt.Sprintf("catalog: failed to compile schema %s: %v", schemaURL, err))
	}
	return schema
}

// Decode validates a JSON array of listing records and decodes it.
// Returns a wrapped domain.ErrInvalidInput if data is not valid JSON, violates
// the listing schema, contains an impossible date or repeats an id.
func Decode(data []byte) ([]domain.Listing, error) {
	var doc interface{}
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: records are not valid JSON: %v", domain.ErrInvalidInput, err)
	}

	if err := listingSchema.Validate(doc); err != nil {
		return nil, schemaError(err)
	}

	var listings []domain.Listing
	if err := json.Unmarshal(data, &listings); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	if err := domain.ValidateListings(listings); err != nil {
		return nil, err
	}

	if listings == nil {
		listings = []domain.Listing{}
	}
	return listings, nil
}

// DecodeYAML converts a YAML document to JSON and runs it through Decode,
// so YAML catalogs are held to the same schema.
func DecodeYAML(data []byte) ([]domain.Listing, error) {
	var doc interface{}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: records are not valid YAML: %v", domain.ErrInvalidInput, err)
	}

	converted, err := json.Marshal(jsonCompatible(doc))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	return Decode(converted)
}

// jsonCompatible rewrites YAML-only shapes (non-string keys, timestamps) into
// values encoding/json can marshal.
func jsonCompatible(v interface{}) interface{} {
	switch t := v.(type) {
	case map[string]interface{}:
		for k, val := range t {
			t[k] = jsonCompatible(val)
		}
		return t
	case map[interface{}]interface{}:
		m := make(map[string]interface{}, len(t))
		for k, val := range t {
			m[fmt.Sprint(k)] = jsonCompatible(val)
		}
		return m
	case []interface{}:
		for i := range t {
			t[i] = jsonCompatible(t[i])
		}
		return t
	case time.Time:
		return t.UTC().Format(timeutil.DateLayout)
	default:
		return v
	}
}

// schemaError reduces a schema validation failure to its first leaf cause.
func schemaError(err error) error {
	var ve *jsonschema.ValidationError
	if !errors.As(err, &ve) {
		return fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	leaf := ve
	for len(leaf.Causes) > 0 {
		leaf = leaf.Causes[0]
	}

	location := leaf.InstanceLocation
	if location == "" {
		location = "/"
	}
	return fmt.Errorf("%w: %s: %s", domain.ErrInvalidInput, location, leaf.Message)
}

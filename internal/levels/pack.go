package levels

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"golang.org/x/mod/semver"
)

// PackMajor is the level pack format major version this build understands.
const PackMajor = "v1"

// Pack is the on-disk level pack document.
type Pack struct {
	Version string `json:"version"`
	Levels  []Spec `json:"levels"`
}

var (
	compileOnce    sync.Once
	compiledSchema *jsonschema.Schema
	compileErr     error
)

// LoadPack parses, schema-validates, and registers a JSON level pack.
// Schema or shape violations surface as ErrConfig before any registry
// exists; an incompatible pack version is likewise fatal.
func LoadPack(data []byte) (*Registry, error) {
	var parsed any
	if err := json.Unmarshal(data, &parsed); err != nil {
		return nil, fmt.Errorf("%w: invalid JSON: %v", ErrConfig, err)
	}

	schema, err := packValidator()
	if err != nil {
		return nil, fmt.Errorf("compile pack schema: %w", err)
	}
	if err := schema.Validate(parsed); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfig, err)
	}

	var pack Pack
	if err := json.Unmarshal(data, &pack); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfig, err)
	}

	if major := semver.Major("v" + pack.Version); major != PackMajor {
		return nil, fmt.Errorf("%w: pack version %q is not compatible with %s", ErrConfig, pack.Version, PackMajor)
	}

	return Load(pack.Levels)
}

// packValidator compiles the pack schema once and caches it.
func packValidator() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		// The jsonschema library expects a parsed JSON value (any), not raw
		// bytes. Marshal then unmarshal to get a clean any representation.
		raw, err := json.Marshal(packSchema)
		if err != nil {
			compileErr = fmt.Errorf("marshal schema: %w", err)
			return
		}
		var parsed any
		if err := json.Unmarshal(raw, &parsed); err != nil {
			compileErr = fmt.Errorf("parse schema: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		const url = "schema://level-pack.json"
		if err := c.AddResource(url, parsed); err != nil {
			compileErr = fmt.Errorf("add schema resource: %w", err)
			return
		}
		compiledSchema, compileErr = c.Compile(url)
	})
	return compiledSchema, compileErr
}

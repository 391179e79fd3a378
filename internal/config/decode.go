package config

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/BurntSushi/toml"
	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"
)

//go:embed form.schema.json
var schemaJSON []byte

const schemaURL = "form.schema.json"

var formSchema = sync.OnceValues(func() (*jsonschema.Schema, error) {
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource(schemaURL, bytes.NewReader(schemaJSON)); err != nil {
		return nil, fmt.Errorf("add schema resource: %w", err)
	}
	return compiler.Compile(schemaURL)
})

// LoadFile reads and validates the form at path.
func LoadFile(path string) (*Form, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read form: %w", err)
	}
	return Parse(data, filepath.Ext(path))
}

// Parse decodes data in the format named by ext (".toml", ".yaml", ".yml"
// or ".json"), checks it against the form schema and validates it.
func Parse(data []byte, ext string) (*Form, error) {
	var (
		doc    any
		decode func([]byte) (*Form, error)
	)
	switch strings.ToLower(ext) {
	case ".toml":
		var m map[string]any
		if _, err := toml.Decode(string(data), &m); err != nil {
			return nil, fmt.Errorf("decode TOML: %w", err)
		}
		doc, decode = m, decodeTOML
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("decode YAML: %w", err)
		}
		decode = decodeYAML
	case ".json":
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("decode JSON: %w", err)
		}
		decode = decodeJSON
	default:
		return nil, fmt.Errorf("unsupported form format %q", ext)
	}

	schema, err := formSchema()
	if err != nil {
		return nil, fmt.Errorf("compile schema: %w", err)
	}
	if err := schema.Validate(normalize(doc)); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSchema, err)
	}

	form, err := decode(data)
	if err != nil {
		return nil, err
	}
	if err := form.Validate(); err != nil {
		return nil, fmt.Errorf("validate form: %w", err)
	}
	return form, nil
}

func decodeTOML(data []byte) (*Form, error) {
	var raw struct {
		Title    string           `toml:"title"`
		Keyboard string           `toml:"keyboard"`
		Fields   []toml.Primitive `toml:"fields"`
	}
	md, err := toml.Decode(string(data), &raw)
	if err != nil {
		return nil, fmt.Errorf("decode TOML: %w", err)
	}

	form := &Form{Title: raw.Title, Keyboard: raw.Keyboard}
	for _, p := range raw.Fields {
		var h header
		if err := md.PrimitiveDecode(p, &h); err != nil {
			return nil, fmt.Errorf("decode TOML: %w", err)
		}
		in, err := h.input()
		if err != nil {
			return nil, err
		}
		if err := md.PrimitiveDecode(p, &in.Field); err != nil {
			return nil, fmt.Errorf("decode TOML input %q: %w", h.Name, err)
		}
		form.Inputs = append(form.Inputs, in)
	}
	return form, nil
}

func decodeYAML(data []byte) (*Form, error) {
	var raw struct {
		Title    string      `yaml:"title"`
		Keyboard string      `yaml:"keyboard"`
		Fields   []yaml.Node `yaml:"fields"`
	}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decode YAML: %w", err)
	}

	form := &Form{Title: raw.Title, Keyboard: raw.Keyboard}
	for i := range raw.Fields {
		node := &raw.Fields[i]
		var h header
		if err := node.Decode(&h); err != nil {
			return nil, fmt.Errorf("decode YAML: %w", err)
		}
		in, err := h.input()
		if err != nil {
			return nil, err
		}
		if err := node.Decode(&in.Field); err != nil {
			return nil, fmt.Errorf("decode YAML input %q: %w", h.Name, err)
		}
		form.Inputs = append(form.Inputs, in)
	}
	return form, nil
}

func decodeJSON(data []byte) (*Form, error) {
	var raw struct {
		Title    string            `json:"title"`
		Keyboard string            `json:"keyboard"`
		Fields   []json.RawMessage `json:"fields"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decode JSON: %w", err)
	}

	form := &Form{Title: raw.Title, Keyboard: raw.Keyboard}
	for _, msg := range raw.Fields {
		var h header
		if err := json.Unmarshal(msg, &h); err != nil {
			return nil, fmt.Errorf("decode JSON: %w", err)
		}
		in, err := h.input()
		if err != nil {
			return nil, err
		}
		if err := json.Unmarshal(msg, &in.Field); err != nil {
			return nil, fmt.Errorf("decode JSON input %q: %w", h.Name, err)
		}
		form.Inputs = append(form.Inputs, in)
	}
	return form, nil
}

// normalize converts decoder output to the value types the schema
// validator understands.
func normalize(v any) any {
	switch v := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(v))
		for k, e := range v {
			out[k] = normalize(e)
		}
		return out
	case map[any]any:
		out := make(map[string]any, len(v))
		for k, e := range v {
			out[fmt.Sprint(k)] = normalize(e)
		}
		return out
	case []map[string]any:
		out := make([]any, len(v))
		for i, e := range v {
			out[i] = normalize(e)
		}
		return out
	case []any:
		out := make([]any, len(v))
		for i, e := range v {
			out[i] = normalize(e)
		}
		return out
	case int:
		return float64(v)
	case int64:
		return float64(v)
	case uint64:
		return float64(v)
	default:
		return v
	}
}

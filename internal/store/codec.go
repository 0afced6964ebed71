package store

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"math"
	"path/filepath"
	"strings"

	"cuelang.org/go/cue"
	cueyaml "cuelang.org/go/encoding/yaml"
	"gopkg.in/yaml.v3"

	"github.com/flarebyte/workers/internal/roster"
)

type codec interface {
	extract(ctx *cue.Context, path string, data []byte) (cue.Value, error)
	decode(data []byte, r *roster.Roster) error
	encode(r roster.Roster) ([]byte, error)
}

// codecFor picks YAML for .yaml/.yml files and JSON for everything else.
func codecFor(path string) codec {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return yamlCodec{}
	default:
		return jsonCodec{}
	}
}

type jsonCodec struct{}

// JSON is read with encoding/json rules rather than as CUE source: a
// repeated key keeps its last value and whole floats such as 2015.0 count
// as integers.
func (jsonCodec) extract(ctx *cue.Context, _ string, data []byte) (cue.Value, error) {
	doc, err := decodeJSON(data)
	if err != nil {
		return cue.Value{}, err
	}
	return ctx.Encode(doc), nil
}

func (jsonCodec) decode(data []byte, r *roster.Roster) error {
	doc, err := decodeJSON(data)
	if err != nil {
		return err
	}
	b, err := json.Marshal(doc)
	if err != nil {
		return err
	}
	return json.Unmarshal(b, r)
}

func decodeJSON(data []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var doc any
	if err := dec.Decode(&doc); err != nil {
		return nil, err
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, errors.New("unexpected data after JSON document")
	}
	return normalizeNumbers(doc), nil
}

// normalizeNumbers turns integral json.Numbers into int64 and the rest
// into float64.
func normalizeNumbers(v any) any {
	switch x := v.(type) {
	case []any:
		for i := range x {
			x[i] = normalizeNumbers(x[i])
		}
		return x
	case map[string]any:
		for k, vv := range x {
			x[k] = normalizeNumbers(vv)
		}
		return x
	case json.Number:
		if i, err := x.Int64(); err == nil {
			return i
		}
		f, err := x.Float64()
		if err != nil {
			return x.String()
		}
		if f == math.Trunc(f) && math.Abs(f) < 1<<53 {
			return int64(f)
		}
		return f
	default:
		return v
	}
}

func (jsonCodec) encode(r roster.Roster) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	if err := enc.Encode(nonNil(r)); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

type yamlCodec struct{}

func (yamlCodec) extract(ctx *cue.Context, path string, data []byte) (cue.Value, error) {
	f, err := cueyaml.Extract(path, data)
	if err != nil {
		return cue.Value{}, err
	}
	return ctx.BuildFile(f), nil
}

func (yamlCodec) decode(data []byte, r *roster.Roster) error {
	return yaml.Unmarshal(data, r)
}

func (yamlCodec) encode(r roster.Roster) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(nonNil(r)); err != nil {
		_ = enc.Close()
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// nonNil makes an empty roster serialise as an empty list instead of null.
func nonNil(r roster.Roster) roster.Roster {
	if r == nil {
		return roster.Roster{}
	}
	return r
}

package graphio

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/marois/cdk/core"
)

// ReadJSON decodes a JSON Document from r into a graph.
// Unknown fields are rejected.
func ReadJSON(r io.Reader) (*core.Graph, error) {
	var d Document
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&d); err != nil {
		return nil, fmt.Errorf("decode json: %w", err)
	}

	return d.Graph()
}

// ReadTOML decodes a TOML Document from r into a graph.
// Unknown keys are rejected.
func ReadTOML(r io.Reader) (*core.Graph, error) {
	var d Document
	md, err := toml.NewDecoder(r).Decode(&d)
	if err != nil {
		return nil, fmt.Errorf("decode toml: %w", err)
	}
	if un := md.Undecoded(); len(un) > 0 {
		return nil, fmt.Errorf("decode toml: unknown key %q", un[0].String())
	}

	return d.Graph()
}

// Load reads a graph file, picking the decoder from its extension
// (.json or .toml).
func Load(path string) (*core.Graph, error) {
	var read func(io.Reader) (*core.Graph, error)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		read = ReadJSON
	case ".toml":
		read = ReadTOML
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownFormat, path)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	g, err := read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return g, nil
}

// WriteJSON writes g as an indented JSON Document.
func WriteJSON(g *core.Graph, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(FromGraph(g)); err != nil {
		return fmt.Errorf("encode: %w", err)
	}

	return nil
}

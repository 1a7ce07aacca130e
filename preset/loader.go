package preset

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
)

//go:embed presets.hcl
var defaultPresets []byte

// hclPresetFile is the top-level structure of a preset file for decoding.
type hclPresetFile struct {
	Computers []*hclComputer `hcl:"computer,block"`
}

type hclComputer struct {
	Name    string  `hcl:"name,label"`
	CPU     *string `hcl:"cpu,optional"`
	RAM     *string `hcl:"ram,optional"`
	Storage *string `hcl:"storage,optional"`
	GPU     *string `hcl:"gpu,optional"`
}

// Default returns the built-in presets, "basic" and "gaming".
func Default() Set {
	s, err := Parse(defaultPresets, "presets.hcl")
	if err != nil {
		panic(err)
	}

	return s
}

// Load reads and parses the preset file at path.
func Load(path string) (Set, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return Set{}, fmt.Errorf("failed to read preset file %s: %w", path, err)
	}

	return Parse(src, path)
}

// Parse parses HCL preset declarations. The filename is only used in
// diagnostics.
func Parse(src []byte, filename string) (Set, error) {
	parser := hclparse.NewParser()

	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return Set{}, fmt.Errorf(
			"failed to parse preset file %s: %w", filename, diags)
	}

	var parsed hclPresetFile
	diags = gohcl.DecodeBody(file.Body, evalContext(), &parsed)
	if diags.HasErrors() {
		return Set{}, fmt.Errorf(
			"failed to decode preset file %s: %w", filename, diags)
	}

	s := newSet()
	for _, c := range parsed.Computers {
		err := s.add(Preset{
			Name:    c.Name,
			CPU:     c.CPU,
			RAM:     c.RAM,
			Storage: c.Storage,
			GPU:     c.GPU,
		})
		if err != nil {
			return Set{}, fmt.Errorf("preset file %s: %w", filename, err)
		}
	}

	return s, nil
}

// evalContext exposes the process environment as the env object.
func evalContext() *hcl.EvalContext {
	env := make(map[string]cty.Value)

	for _, kv := range os.Environ() {
		key, value, found := strings.Cut(kv, "=")
		if !found || key == "" {
			continue
		}

		env[key] = cty.StringVal(value)
	}

	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"env": cty.ObjectVal(env),
		},
	}
}

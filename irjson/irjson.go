// Package irjson moves trees between their in-memory form and
// interchange documents. JSON is the canonical interchange encoding;
// YAML is offered as a human-editable veneer over the same shape, and
// RFC 6902 patches can be applied to the serialized form to edit trees
// without hand-writing traversal code.
package irjson

import (
	"encoding/json"
	"fmt"

	jsonpatch "github.com/evanphx/json-patch"
	"github.com/goccy/go-yaml"

	"github.com/gramlang/gram/ir"
)

// ToJSON serializes the tree as indented JSON.
func ToJSON(n *ir.Node) ([]byte, error) {
	return json.MarshalIndent(n, "", "  ")
}

// FromJSON rebuilds a tree from its JSON form.
func FromJSON(data []byte) (*ir.Node, error) {
	var n ir.Node
	if err := json.Unmarshal(data, &n); err != nil {
		return nil, err
	}
	return &n, nil
}

// ToYAML serializes the tree as YAML with the same document shape as
// the JSON encoding.
func ToYAML(n *ir.Node) ([]byte, error) {
	d, err := json.Marshal(n)
	if err != nil {
		return nil, err
	}
	return yaml.JSONToYAML(d)
}

// FromYAML rebuilds a tree from its YAML form.
func FromYAML(data []byte) (*ir.Node, error) {
	d, err := yaml.YAMLToJSON(data)
	if err != nil {
		return nil, fmt.Errorf("decoding yaml: %w", err)
	}
	return FromJSON(d)
}

// ApplyPatch applies an RFC 6902 patch document to the tree's JSON
// form and rebuilds the result. A patch that produces a document that
// is not a valid tree fails with ir.ErrBadIR wrapped in the error.
func ApplyPatch(n *ir.Node, patch []byte) (*ir.Node, error) {
	p, err := jsonpatch.DecodePatch(patch)
	if err != nil {
		return nil, fmt.Errorf("decoding patch: %w", err)
	}
	doc, err := json.Marshal(n)
	if err != nil {
		return nil, err
	}
	patched, err := p.Apply(doc)
	if err != nil {
		return nil, fmt.Errorf("applying patch: %w", err)
	}
	return FromJSON(patched)
}

package ir

import (
	"encoding/json"
	"fmt"
)

// The serialized IR is the interchange form between external front-ends
// (which produce the initial tree), this core, and external backends.
// Kinds travel by stable name so the wire form survives reordering of
// the Kind enum.

type jsonProp struct {
	S *string `json:"s,omitempty"`
	I *int64  `json:"i,omitempty"`
	B *bool   `json:"b,omitempty"`
}

type jsonMeta struct {
	File    string `json:"file,omitempty"`
	Line    int    `json:"line,omitempty"`
	Col     int    `json:"col,omitempty"`
	EndLine int    `json:"endLine,omitempty"`
	EndCol  int    `json:"endCol,omitempty"`
	Comment string `json:"comment,omitempty"`
}

type jsonNode struct {
	Kind     string              `json:"kind"`
	Children []*Node             `json:"children,omitempty"`
	Props    map[string]jsonProp `json:"props,omitempty"`
	Meta     *jsonMeta           `json:"meta,omitempty"`
	Prune    bool                `json:"prune,omitempty"`
}

func (n *Node) MarshalJSON() ([]byte, error) {
	base := &jsonNode{
		Kind:     n.kind.String(),
		Children: n.children,
		Prune:    n.pruneWalk,
	}
	if n.props.Len() > 0 {
		base.Props = make(map[string]jsonProp, n.props.Len())
		for _, name := range n.props.Names() {
			v, _ := n.props.Get(name)
			var p jsonProp
			switch v.kind {
			case ValueString:
				s := v.s
				p.S = &s
			case ValueInt:
				i := v.i
				p.I = &i
			case ValueBool:
				b := v.b
				p.B = &b
			}
			base.Props[name] = p
		}
	}
	if loc := n.meta.Location(); loc.IsValid() || n.meta.Comment() != "" {
		base.Meta = &jsonMeta{
			File:    loc.File,
			Line:    loc.Line,
			Col:     loc.Col,
			EndLine: loc.EndLine,
			EndCol:  loc.EndCol,
			Comment: n.meta.Comment(),
		}
	}
	return json.Marshal(base)
}

func (n *Node) UnmarshalJSON(d []byte) error {
	tmp := &jsonNode{}
	if err := json.Unmarshal(d, tmp); err != nil {
		return err
	}
	kind, ok := KindFromString(tmp.Kind)
	if !ok {
		return fmt.Errorf("%w: unknown kind %q", ErrBadIR, tmp.Kind)
	}
	n.kind = kind
	n.children = tmp.Children
	n.pruneWalk = tmp.Prune
	n.props = Properties{}
	for name, p := range tmp.Props {
		switch {
		case p.S != nil:
			n.props.set(name, StringValue(*p.S))
		case p.I != nil:
			n.props.set(name, IntValue(*p.I))
		case p.B != nil:
			n.props.set(name, BoolValue(*p.B))
		default:
			return fmt.Errorf("%w: property %q of %s node has no payload", ErrBadIR, name, kind)
		}
	}
	n.meta = Meta{}
	if tmp.Meta != nil {
		m := NewMeta(Location{
			File:    tmp.Meta.File,
			Line:    tmp.Meta.Line,
			Col:     tmp.Meta.Col,
			EndLine: tmp.Meta.EndLine,
			EndCol:  tmp.Meta.EndCol,
		})
		n.meta = m.WithComment(tmp.Meta.Comment)
	}
	for _, c := range n.children {
		if c == nil {
			return fmt.Errorf("%w: null child of %s node", ErrBadIR, kind)
		}
	}
	// Passes index children by the kind's fixed layout, so a wrong
	// arity must not cross the interchange boundary.
	if !kind.arityOK(len(n.children)) {
		return fmt.Errorf("%w: %s node has %d children", ErrBadIR, kind, len(n.children))
	}
	return nil
}

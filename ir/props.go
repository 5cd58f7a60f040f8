package ir

import (
	"fmt"
	"maps"
	"slices"
	"strconv"
)

// Well-known property names. Property payloads are how kinds carry
// their scalar data without subclassing the node type; passes and
// tooling agree on these keys.
const (
	PropID          = "id"          // identifier of a declaration or name
	PropValue       = "value"       // literal payload of a constant
	PropText        = "text"        // source text of a real literal
	PropOp          = "op"          // operator symbol of unary/binary ops
	PropBinding     = "binding"     // symbol index filled in by resolution
	PropSymbol      = "symbol"      // operator declaration symbol
	PropDoc         = "doc"         // operator documentation string
	PropCommutative = "commutative" // operand order insignificant
	PropConst       = "const"       // compile-time evaluable
	PropMessage     = "message"     // error placeholder message
)

// ValueKind tags the payload variant of a property value.
type ValueKind uint8

const (
	ValueString ValueKind = iota
	ValueInt
	ValueBool
)

// Value is a small tagged scalar: string, int64 or bool. Absent
// properties have no Value at all; a Value always holds a payload.
type Value struct {
	kind ValueKind
	s    string
	i    int64
	b    bool
}

// StringValue makes a string property value.
func StringValue(v string) Value { return Value{kind: ValueString, s: v} }

// IntValue makes an integer property value.
func IntValue(v int64) Value { return Value{kind: ValueInt, i: v} }

// BoolValue makes a boolean property value.
func BoolValue(v bool) Value { return Value{kind: ValueBool, b: v} }

// Kind returns the payload variant.
func (v Value) Kind() ValueKind { return v.kind }

// AsString returns the string payload, with ok false for other variants.
func (v Value) AsString() (string, bool) { return v.s, v.kind == ValueString }

// AsInt returns the integer payload, with ok false for other variants.
func (v Value) AsInt() (int64, bool) { return v.i, v.kind == ValueInt }

// AsBool returns the boolean payload, with ok false for other variants.
func (v Value) AsBool() (bool, bool) { return v.b, v.kind == ValueBool }

// String renders the payload for dumps and diagnostics.
func (v Value) String() string {
	switch v.kind {
	case ValueString:
		return strconv.Quote(v.s)
	case ValueInt:
		return strconv.FormatInt(v.i, 10)
	case ValueBool:
		return strconv.FormatBool(v.b)
	}
	return fmt.Sprintf("invalid(%d)", v.kind)
}

// Properties maps property names to tagged scalar values. Keys are
// unique and listed in sorted order so every consumer sees the same
// sequence. The zero Properties is empty and usable.
type Properties struct {
	m map[string]Value
}

// Get returns the value under name, with ok false when absent.
func (p Properties) Get(name string) (Value, bool) {
	v, ok := p.m[name]
	return v, ok
}

// Has reports whether name is present.
func (p Properties) Has(name string) bool {
	_, ok := p.m[name]
	return ok
}

// Len returns the number of properties.
func (p Properties) Len() int { return len(p.m) }

// Names returns the property names in sorted order.
func (p Properties) Names() []string {
	return slices.Sorted(maps.Keys(p.m))
}

// Equal reports whether p and o hold the same names and values.
func (p Properties) Equal(o Properties) bool {
	if len(p.m) != len(o.m) {
		return false
	}
	for k, v := range p.m {
		ov, ok := o.m[k]
		if !ok || ov != v {
			return false
		}
	}
	return true
}

func (p *Properties) set(name string, v Value) {
	if p.m == nil {
		p.m = make(map[string]Value, 2)
	}
	p.m[name] = v
}

func (p Properties) clone() Properties {
	if len(p.m) == 0 {
		return Properties{}
	}
	return Properties{m: maps.Clone(p.m)}
}

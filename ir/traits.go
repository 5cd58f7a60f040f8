package ir

import "fmt"

// Capability names an interface a node kind may satisfy beyond the
// universal "is a node". Membership is decided per kind in the kind
// table and never changes per instance.
type Capability uint8

const (
	CapType Capability = iota
	CapExpression
	CapDeclaration
	CapStatement
	CapConstant
	CapResolvable
	CapOperator

	numCapabilities
)

var capNames = [numCapabilities]string{
	CapType:        "type",
	CapExpression:  "expression",
	CapDeclaration: "declaration",
	CapStatement:   "statement",
	CapConstant:    "constant",
	CapResolvable:  "resolvable",
	CapOperator:    "operator",
}

func (c Capability) String() string {
	if c >= numCapabilities {
		return "invalid"
	}
	return capNames[c]
}

// Capabilities returns every capability in definition order.
func Capabilities() []Capability {
	res := make([]Capability, 0, numCapabilities)
	for c := Capability(0); c < numCapabilities; c++ {
		res = append(res, c)
	}
	return res
}

type capSet uint8

func caps(cs ...Capability) capSet {
	var s capSet
	for _, c := range cs {
		s |= 1 << c
	}
	return s
}

func (s capSet) has(c Capability) bool { return s&(1<<c) != 0 }

// The typed views below are the sole supported substitute for
// downcasting. Each view borrows the underlying node storage; it stays
// valid exactly as long as the owning node. A failed query is a normal
// absent result, never a panic.

// Type views a node whose kind satisfies CapType.
type Type struct{ *Node }

// Expression views a node whose kind satisfies CapExpression.
type Expression struct{ *Node }

// Declaration views a node whose kind satisfies CapDeclaration.
type Declaration struct{ *Node }

// Statement views a node whose kind satisfies CapStatement.
type Statement struct{ *Node }

// Constant views a node whose kind satisfies CapConstant.
type Constant struct{ *Node }

// Resolvable views a node whose kind satisfies CapResolvable.
type Resolvable struct{ *Node }

// Operator views a node whose kind satisfies CapOperator.
type Operator struct{ *Node }

// AsType returns a Type view of n if its kind satisfies CapType.
func (n *Node) AsType() (Type, bool) {
	if n.kind.Implements(CapType) {
		return Type{n}, true
	}
	return Type{}, false
}

// AsExpression returns an Expression view of n if its kind satisfies
// CapExpression.
func (n *Node) AsExpression() (Expression, bool) {
	if n.kind.Implements(CapExpression) {
		return Expression{n}, true
	}
	return Expression{}, false
}

// AsDeclaration returns a Declaration view of n if its kind satisfies
// CapDeclaration.
func (n *Node) AsDeclaration() (Declaration, bool) {
	if n.kind.Implements(CapDeclaration) {
		return Declaration{n}, true
	}
	return Declaration{}, false
}

// AsStatement returns a Statement view of n if its kind satisfies
// CapStatement.
func (n *Node) AsStatement() (Statement, bool) {
	if n.kind.Implements(CapStatement) {
		return Statement{n}, true
	}
	return Statement{}, false
}

// AsConstant returns a Constant view of n if its kind satisfies
// CapConstant.
func (n *Node) AsConstant() (Constant, bool) {
	if n.kind.Implements(CapConstant) {
		return Constant{n}, true
	}
	return Constant{}, false
}

// AsResolvable returns a Resolvable view of n if its kind satisfies
// CapResolvable.
func (n *Node) AsResolvable() (Resolvable, bool) {
	if n.kind.Implements(CapResolvable) {
		return Resolvable{n}, true
	}
	return Resolvable{}, false
}

// AsOperator returns an Operator view of n if its kind satisfies
// CapOperator.
func (n *Node) AsOperator() (Operator, bool) {
	if n.kind.Implements(CapOperator) {
		return Operator{n}, true
	}
	return Operator{}, false
}

// Implements reports whether the node's kind satisfies c.
func (n *Node) Implements(c Capability) bool { return n.kind.Implements(c) }

// viewOf hooks each view type into Range dereferencing.

func (Type) viewOf(n *Node) (Type, bool)               { return n.AsType() }
func (Expression) viewOf(n *Node) (Expression, bool)   { return n.AsExpression() }
func (Declaration) viewOf(n *Node) (Declaration, bool) { return n.AsDeclaration() }
func (Statement) viewOf(n *Node) (Statement, bool)     { return n.AsStatement() }
func (Constant) viewOf(n *Node) (Constant, bool)       { return n.AsConstant() }
func (Resolvable) viewOf(n *Node) (Resolvable, bool)   { return n.AsResolvable() }
func (Operator) viewOf(n *Node) (Operator, bool)       { return n.AsOperator() }

// Binding returns the symbol index a resolution pass recorded on the
// node, or false if the node is still unresolved.
func (r Resolvable) Binding() (int64, bool) {
	v, ok := r.Prop(PropBinding)
	if !ok {
		return 0, false
	}
	return v.AsInt()
}

// ID returns the identifier a resolvable node refers to.
func (r Resolvable) ID() string {
	v, _ := r.Prop(PropID)
	s, _ := v.AsString()
	return s
}

// ID returns the declared identifier.
func (d Declaration) ID() string {
	v, _ := d.Prop(PropID)
	s, _ := v.AsString()
	return s
}

// Symbol returns the operator's source symbol, e.g. "+".
func (o Operator) Symbol() string {
	v, _ := o.Prop(PropSymbol)
	s, _ := v.AsString()
	return s
}

// Doc returns the operator's documentation string.
func (o Operator) Doc() string {
	v, _ := o.Prop(PropDoc)
	s, _ := v.AsString()
	return s
}

// Commutative reports whether operand order is insignificant.
func (o Operator) Commutative() bool {
	v, _ := o.Prop(PropCommutative)
	b, _ := v.AsBool()
	return b
}

// Const reports whether the operator can be evaluated at compile time.
func (o Operator) Const() bool {
	v, _ := o.Prop(PropConst)
	b, _ := v.AsBool()
	return b
}

// Operands views the operator's operand declarations; the final child
// is the result type and is excluded.
func (o Operator) Operands() Range[Declaration] {
	n := o.NumChildren()
	if n == 0 {
		return Range[Declaration]{}
	}
	return ChildSpan[Declaration](o.Node, 0, n-1)
}

// Result views the operator's result type.
func (o Operator) Result() Type {
	return assertView[Type](o.Child(o.NumChildren() - 1))
}

// assertView recovers a T view of n and fails loudly when the node does
// not satisfy T's capability. Range dereferencing funnels through here;
// a mismatch means the caller chose the wrong range type for the span,
// which is a precondition violation rather than a recoverable error.
func assertView[T view[T]](n *Node) T {
	var z T
	t, ok := z.viewOf(n)
	if !ok {
		panic(fmt.Sprintf("ir: %s node does not satisfy %T", n.kind, z))
	}
	return t
}

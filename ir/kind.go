package ir

// Kind discriminates the closed set of node variants. A node's kind is
// fixed at construction; rewriting a construct means building a
// replacement node and substituting it into the parent's child slot.
type Kind uint8

const (
	KindInvalid Kind = iota

	// Declarations.
	KindModule
	KindUnitDecl
	KindFieldDecl
	KindFunctionDecl
	KindOperatorDecl
	KindConstDecl
	KindLocalDecl
	KindParamDecl

	// Types.
	KindTypeBool
	KindTypeBytes
	KindTypeString
	KindTypeReal
	KindTypeInt8
	KindTypeInt16
	KindTypeInt32
	KindTypeInt64
	KindTypeUInt8
	KindTypeUInt16
	KindTypeUInt32
	KindTypeUInt64
	KindTypeVector
	KindTypeOptional
	KindTypeUnit
	KindTypeFunction
	KindTypeAuto
	KindTypeError

	// Expressions.
	KindIntLit
	KindBoolLit
	KindStringLit
	KindRealLit
	KindName
	KindCall
	KindUnaryOp
	KindBinaryOp
	KindConditional
	KindMember
	KindGrouping

	// Statements.
	KindBlock
	KindExprStmt
	KindIf
	KindWhile
	KindReturn
	KindAssert
	KindPrint
	KindNop

	// Placeholder substituted for a subtree a pass could not process,
	// so traversal can continue while diagnostics accumulate.
	KindError

	numKinds
)

// kindInfo is the definition-time record for one kind: its name, the
// capability set its nodes satisfy, the presentation namespace it is
// grouped under and the child count it admits. The zero arity means
// exactly no children; maxKids of many means unbounded.
type kindInfo struct {
	name      string
	caps      capSet
	namespace string
	minKids   int
	maxKids   int
}

// many marks an unbounded maxKids.
const many = -1

var kindTab = [numKinds]kindInfo{
	KindInvalid: {name: "invalid"},

	KindModule:       {name: "module", caps: caps(CapDeclaration), maxKids: many},
	KindUnitDecl:     {name: "unit-decl", caps: caps(CapDeclaration), maxKids: many},
	KindFieldDecl:    {name: "field-decl", caps: caps(CapDeclaration), minKids: 1, maxKids: 1},
	KindFunctionDecl: {name: "function-decl", caps: caps(CapDeclaration), minKids: 2, maxKids: many},
	KindOperatorDecl: {name: "operator-decl", caps: caps(CapDeclaration, CapOperator), minKids: 1, maxKids: many},
	KindConstDecl:    {name: "const-decl", caps: caps(CapDeclaration), minKids: 1, maxKids: 1},
	KindLocalDecl:    {name: "local-decl", caps: caps(CapDeclaration), maxKids: 2},
	KindParamDecl:    {name: "param-decl", caps: caps(CapDeclaration), minKids: 1, maxKids: 1},

	KindTypeBool:     {name: "type-bool", caps: caps(CapType), namespace: "bool"},
	KindTypeBytes:    {name: "type-bytes", caps: caps(CapType), namespace: "bytes"},
	KindTypeString:   {name: "type-string", caps: caps(CapType), namespace: "string"},
	KindTypeReal:     {name: "type-real", caps: caps(CapType), namespace: "real"},
	KindTypeInt8:     {name: "type-int8", caps: caps(CapType), namespace: "integer"},
	KindTypeInt16:    {name: "type-int16", caps: caps(CapType), namespace: "integer"},
	KindTypeInt32:    {name: "type-int32", caps: caps(CapType), namespace: "integer"},
	KindTypeInt64:    {name: "type-int64", caps: caps(CapType), namespace: "integer"},
	KindTypeUInt8:    {name: "type-uint8", caps: caps(CapType), namespace: "integer"},
	KindTypeUInt16:   {name: "type-uint16", caps: caps(CapType), namespace: "integer"},
	KindTypeUInt32:   {name: "type-uint32", caps: caps(CapType), namespace: "integer"},
	KindTypeUInt64:   {name: "type-uint64", caps: caps(CapType), namespace: "integer"},
	KindTypeVector:   {name: "type-vector", caps: caps(CapType), namespace: "vector", minKids: 1, maxKids: 1},
	KindTypeOptional: {name: "type-optional", caps: caps(CapType), namespace: "optional", minKids: 1, maxKids: 1},
	KindTypeUnit:     {name: "type-unit", caps: caps(CapType), namespace: "unit"},
	KindTypeFunction: {name: "type-function", caps: caps(CapType), namespace: "function", maxKids: many},
	KindTypeAuto:     {name: "type-auto", caps: caps(CapType, CapResolvable), namespace: "auto"},
	KindTypeError:    {name: "type-error", caps: caps(CapType), namespace: "error"},

	KindIntLit:      {name: "int-lit", caps: caps(CapExpression, CapConstant)},
	KindBoolLit:     {name: "bool-lit", caps: caps(CapExpression, CapConstant)},
	KindStringLit:   {name: "string-lit", caps: caps(CapExpression, CapConstant)},
	KindRealLit:     {name: "real-lit", caps: caps(CapExpression, CapConstant)},
	KindName:        {name: "name", caps: caps(CapExpression, CapResolvable)},
	KindCall:        {name: "call", caps: caps(CapExpression), minKids: 1, maxKids: many},
	KindUnaryOp:     {name: "unary-op", caps: caps(CapExpression), minKids: 1, maxKids: 1},
	KindBinaryOp:    {name: "binary-op", caps: caps(CapExpression), minKids: 2, maxKids: 2},
	KindConditional: {name: "conditional", caps: caps(CapExpression), minKids: 3, maxKids: 3},
	KindMember:      {name: "member", caps: caps(CapExpression, CapResolvable), minKids: 1, maxKids: 1},
	KindGrouping:    {name: "grouping", caps: caps(CapExpression), minKids: 1, maxKids: 1},

	KindBlock:    {name: "block", caps: caps(CapStatement), maxKids: many},
	KindExprStmt: {name: "expr-stmt", caps: caps(CapStatement), minKids: 1, maxKids: 1},
	KindIf:       {name: "if", caps: caps(CapStatement), minKids: 2, maxKids: 3},
	KindWhile:    {name: "while", caps: caps(CapStatement), minKids: 2, maxKids: 2},
	KindReturn:   {name: "return", caps: caps(CapStatement), maxKids: 1},
	KindAssert:   {name: "assert", caps: caps(CapStatement), minKids: 1, maxKids: 1},
	KindPrint:    {name: "print", caps: caps(CapStatement), maxKids: many},
	KindNop:      {name: "nop", caps: caps(CapStatement)},

	KindError: {name: "error", caps: caps(CapExpression, CapStatement), maxKids: many},
}

// arityOK reports whether a node of this kind may own n children.
func (k Kind) arityOK(n int) bool {
	if k >= numKinds {
		return false
	}
	info := kindTab[k]
	if n < info.minKids {
		return false
	}
	return info.maxKids == many || n <= info.maxKids
}

var kindByName = func() map[string]Kind {
	m := make(map[string]Kind, numKinds)
	for k := Kind(0); k < numKinds; k++ {
		m[kindTab[k].name] = k
	}
	return m
}()

// String returns the kind's stable name, as used in dumps and in the
// serialized IR.
func (k Kind) String() string {
	if k >= numKinds {
		return "invalid"
	}
	return kindTab[k].name
}

// KindFromString maps a stable kind name back to its Kind. The second
// result is false for unknown names.
func KindFromString(name string) (Kind, bool) {
	k, ok := kindByName[name]
	return k, ok
}

// Implements reports whether nodes of this kind satisfy the capability.
// The answer is a pure function of the kind, fixed at definition time.
func (k Kind) Implements(c Capability) bool {
	if k >= numKinds {
		return false
	}
	return kindTab[k].caps.has(c)
}

// Namespace returns the presentation namespace the kind is grouped
// under for documentation and dispatch lookup. Kinds without a declared
// namespace group under their own name. All signed and unsigned integer
// type kinds share the "integer" namespace.
func (k Kind) Namespace() string {
	if k >= numKinds {
		return "invalid"
	}
	if ns := kindTab[k].namespace; ns != "" {
		return ns
	}
	return kindTab[k].name
}

// Kinds returns every kind in definition order, excluding KindInvalid.
func Kinds() []Kind {
	res := make([]Kind, 0, numKinds-1)
	for k := KindModule; k < numKinds; k++ {
		res = append(res, k)
	}
	return res
}

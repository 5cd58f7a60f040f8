package ir

// Constructors for the common tree shapes. Front-ends and passes may
// also build nodes directly with New plus WithProp; these helpers fix
// the child layout each kind expects.

// IntLit builds an integer literal expression.
func IntLit(v int64) *Node {
	return New(KindIntLit).WithProp(PropValue, IntValue(v))
}

// BoolLit builds a boolean literal expression.
func BoolLit(v bool) *Node {
	return New(KindBoolLit).WithProp(PropValue, BoolValue(v))
}

// StringLit builds a string literal expression.
func StringLit(v string) *Node {
	return New(KindStringLit).WithProp(PropValue, StringValue(v))
}

// RealLit builds a real literal expression carrying its source text.
func RealLit(text string) *Node {
	return New(KindRealLit).WithProp(PropText, StringValue(text))
}

// Name builds an unresolved identifier expression.
func Name(id string) *Node {
	return New(KindName).WithProp(PropID, StringValue(id))
}

// UnaryOp builds a unary operator expression over one operand.
func UnaryOp(op string, operand *Node) *Node {
	return New(KindUnaryOp, operand).WithProp(PropOp, StringValue(op))
}

// BinaryOp builds a binary operator expression; child order is operand
// order.
func BinaryOp(op string, left, right *Node) *Node {
	return New(KindBinaryOp, left, right).WithProp(PropOp, StringValue(op))
}

// Conditional builds cond ? then : else with exactly three children.
func Conditional(cond, then, els *Node) *Node {
	return New(KindConditional, cond, then, els)
}

// Call builds a call expression; the callee is child 0, arguments
// follow.
func Call(callee *Node, args ...*Node) *Node {
	return New(KindCall, append([]*Node{callee}, args...)...)
}

// Member builds a member access on a target.
func Member(target *Node, id string) *Node {
	return New(KindMember, target).WithProp(PropID, StringValue(id))
}

// Grouping builds a parenthesized expression.
func Grouping(e *Node) *Node { return New(KindGrouping, e) }

// Block builds a statement block; child order is statement order.
func Block(stmts ...*Node) *Node { return New(KindBlock, stmts...) }

// ExprStmt wraps an expression as a statement.
func ExprStmt(e *Node) *Node { return New(KindExprStmt, e) }

// If builds an if statement; els may be nil for a two-child form.
func If(cond, then, els *Node) *Node {
	if els == nil {
		return New(KindIf, cond, then)
	}
	return New(KindIf, cond, then, els)
}

// While builds a while statement.
func While(cond, body *Node) *Node { return New(KindWhile, cond, body) }

// Return builds a return statement; e may be nil for a bare return.
func Return(e *Node) *Node {
	if e == nil {
		return New(KindReturn)
	}
	return New(KindReturn, e)
}

// Assert builds an assert statement.
func Assert(e *Node) *Node { return New(KindAssert, e) }

// Print builds a print statement over its arguments.
func Print(args ...*Node) *Node { return New(KindPrint, args...) }

// Nop builds a statement with no effect.
func Nop() *Node { return New(KindNop) }

// Module builds a module declaration owning its declarations.
func Module(id string, decls ...*Node) *Node {
	return New(KindModule, decls...).WithProp(PropID, StringValue(id))
}

// ConstDecl builds a constant declaration with its value expression.
func ConstDecl(id string, value *Node) *Node {
	return New(KindConstDecl, value).WithProp(PropID, StringValue(id))
}

// LocalDecl builds a local variable declaration; typ and init may be
// nil.
func LocalDecl(id string, typ, init *Node) *Node {
	var children []*Node
	if typ != nil {
		children = append(children, typ)
	}
	if init != nil {
		children = append(children, init)
	}
	return New(KindLocalDecl, children...).WithProp(PropID, StringValue(id))
}

// ParamDecl builds a parameter declaration with its type.
func ParamDecl(id string, typ *Node) *Node {
	return New(KindParamDecl, typ).WithProp(PropID, StringValue(id))
}

// FunctionDecl builds a function declaration: parameters, then result
// type, then body block.
func FunctionDecl(id string, params []*Node, result, body *Node) *Node {
	children := append([]*Node{}, params...)
	children = append(children, result, body)
	return New(KindFunctionDecl, children...).WithProp(PropID, StringValue(id))
}

// UnitDecl builds a unit (format) declaration owning its field
// declarations.
func UnitDecl(id string, fields ...*Node) *Node {
	return New(KindUnitDecl, fields...).WithProp(PropID, StringValue(id))
}

// FieldDecl builds a unit field declaration with its parse type.
func FieldDecl(id string, typ *Node) *Node {
	return New(KindFieldDecl, typ).WithProp(PropID, StringValue(id))
}

// OperatorDecl builds an operator declaration: operand parameter
// declarations followed by the result type. The symbol names the
// source-level operator; doc, commutativity and constness feed the
// documentation dump.
func OperatorDecl(symbol string, operands []*Node, result *Node) *Node {
	children := append([]*Node{}, operands...)
	children = append(children, result)
	return New(KindOperatorDecl, children...).
		WithProp(PropSymbol, StringValue(symbol)).
		WithProp(PropID, StringValue(symbol))
}

// ErrorNode builds the placeholder a pass substitutes for a subtree it
// could not process.
func ErrorNode(msg string) *Node {
	return New(KindError).WithProp(PropMessage, StringValue(msg))
}

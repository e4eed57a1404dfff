package expr

import (
	"strconv"
	"strings"
)

// Node is one element of a compiled expression tree. Nodes are immutable
// once the parser returns them.
type Node interface {
	// Eval evaluates the node against a scope
	Eval(s *Scope) (interface{}, error)
	// String renders the node back to source form
	String() string
}

// Literal is a constant value
type Literal struct {
	Value interface{}
}

// Ident references a variable bound in the scope
type Ident struct {
	Name string
}

// Unary applies ! or - to one operand
type Unary struct {
	Operator TokenType
	Operand  Node
}

// Binary applies an arithmetic or comparison operator
type Binary struct {
	Left     Node
	Operator TokenType
	Right    Node
}

// Logical applies && or || with short-circuit evaluation
type Logical struct {
	Left     Node
	Operator TokenType // TokenAnd or TokenOr
	Right    Node
}

// Conditional is the ternary cond ? then : else
type Conditional struct {
	Cond Node
	Then Node
	Else Node
}

// Call invokes a built-in function resolved at compile time
type Call struct {
	Name string
	Fn   Function
	Args []Node
}

func (l *Literal) String() string {
	switch v := l.Value.(type) {
	case string:
		return strconv.Quote(v)
	case uint64:
		return strconv.FormatUint(v, 10) + "u"
	case float64:
		s := strconv.FormatFloat(v, 'g', -1, 64)
		if !strings.ContainsAny(s, ".eEIN") {
			s += ".0"
		}
		return s
	default:
		return valueToString(v)
	}
}

func (i *Ident) String() string {
	return i.Name
}

func (u *Unary) String() string {
	return u.Operator.String() + u.Operand.String()
}

func (b *Binary) String() string {
	return "(" + b.Left.String() + " " + b.Operator.String() + " " + b.Right.String() + ")"
}

func (l *Logical) String() string {
	return "(" + l.Left.String() + " " + l.Operator.String() + " " + l.Right.String() + ")"
}

func (c *Conditional) String() string {
	return "(" + c.Cond.String() + " ? " + c.Then.String() + " : " + c.Else.String() + ")"
}

func (c *Call) String() string {
	args := make([]string, len(c.Args))
	for i, arg := range c.Args {
		args[i] = arg.String()
	}
	return c.Name + "(" + strings.Join(args, ", ") + ")"
}

// walk visits n and all of its descendants depth first
func walk(n Node, visit func(Node)) {
	visit(n)
	switch node := n.(type) {
	case *Unary:
		walk(node.Operand, visit)
	case *Binary:
		walk(node.Left, visit)
		walk(node.Right, visit)
	case *Logical:
		walk(node.Left, visit)
		walk(node.Right, visit)
	case *Conditional:
		walk(node.Cond, visit)
		walk(node.Then, visit)
		walk(node.Else, visit)
	case *Call:
		for _, arg := range node.Args {
			walk(arg, visit)
		}
	}
}

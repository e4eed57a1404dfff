package expr

import (
	"errors"
	"fmt"
)

// fail attaches the failing node to err unless a deeper node already did
func fail(n Node, err error) error {
	var evalErr *EvalError
	if errors.As(err, &evalErr) {
		return err
	}
	return &EvalError{Expr: n.String(), Err: err}
}

// Eval returns the literal value
func (l *Literal) Eval(_ *Scope) (interface{}, error) {
	return l.Value, nil
}

// Eval looks the variable up in the scope
func (i *Ident) Eval(s *Scope) (interface{}, error) {
	value, ok := s.Lookup(i.Name)
	if !ok {
		return nil, fail(i, fmt.Errorf("%w: %s", ErrUnknownVariable, i.Name))
	}
	return value, nil
}

// Eval evaluates a unary expression
func (u *Unary) Eval(s *Scope) (interface{}, error) {
	operand, err := u.Operand.Eval(s)
	if err != nil {
		return nil, err
	}

	switch u.Operator {
	case TokenNot:
		b, ok := operand.(bool)
		if !ok {
			return nil, fail(u, fmt.Errorf("%w: ! requires bool, got %s", ErrTypeMismatch, TypeName(operand)))
		}
		return !b, nil
	case TokenMinus:
		result, err := negate(operand)
		if err != nil {
			return nil, fail(u, err)
		}
		return result, nil
	default:
		return nil, fail(u, fmt.Errorf("unsupported unary operator: %v", u.Operator))
	}
}

// Eval evaluates an arithmetic or comparison expression
func (b *Binary) Eval(s *Scope) (interface{}, error) {
	left, err := b.Left.Eval(s)
	if err != nil {
		return nil, err
	}

	right, err := b.Right.Eval(s)
	if err != nil {
		return nil, err
	}

	if b.Operator.isComparison() {
		match, err := compare(left, b.Operator, right)
		if err != nil {
			return nil, fail(b, err)
		}
		return match, nil
	}

	result, err := arithmetic(b.Operator, left, right)
	if err != nil {
		return nil, fail(b, err)
	}
	return result, nil
}

// Eval evaluates a logical expression, skipping the right operand when the
// left one decides the result
func (l *Logical) Eval(s *Scope) (interface{}, error) {
	left, err := l.evalOperand(l.Left, s)
	if err != nil {
		return nil, err
	}

	if l.Operator == TokenAnd && !left {
		return false, nil
	}
	if l.Operator == TokenOr && left {
		return true, nil
	}

	return l.evalOperand(l.Right, s)
}

func (l *Logical) evalOperand(n Node, s *Scope) (bool, error) {
	value, err := n.Eval(s)
	if err != nil {
		return false, err
	}
	b, ok := value.(bool)
	if !ok {
		return false, fail(l, fmt.Errorf("%w: %s requires bool operands, got %s", ErrTypeMismatch, l.Operator, TypeName(value)))
	}
	return b, nil
}

// Eval evaluates the condition and then exactly one branch
func (c *Conditional) Eval(s *Scope) (interface{}, error) {
	cond, err := c.Cond.Eval(s)
	if err != nil {
		return nil, err
	}

	b, ok := cond.(bool)
	if !ok {
		return nil, fail(c, fmt.Errorf("%w: condition must be bool, got %s", ErrTypeMismatch, TypeName(cond)))
	}
	if b {
		return c.Then.Eval(s)
	}
	return c.Else.Eval(s)
}

// Eval evaluates the arguments and calls the function
func (c *Call) Eval(s *Scope) (interface{}, error) {
	args := make([]interface{}, len(c.Args))
	for i, arg := range c.Args {
		value, err := arg.Eval(s)
		if err != nil {
			return nil, err
		}
		args[i] = value
	}

	result, err := c.Fn.Evaluate(args)
	if err != nil {
		return nil, fail(c, err)
	}

	normalized, ok := Normalize(result)
	if !ok {
		return nil, fail(c, fmt.Errorf("%w: %s returned %T", ErrUnsupportedType, c.Name, result))
	}
	return normalized, nil
}

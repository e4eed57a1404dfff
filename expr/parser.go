package expr

import (
	"fmt"
	"strconv"
	"strings"
)

// Parser parses expression tokens into an AST
type Parser struct {
	ctx          *Context
	tokens       []Token
	pos          int
	depthCounter *ExpressionDepthCounter
}

// NewParser creates a new parser resolving function calls against ctx
func NewParser(ctx *Context, tokens []Token) *Parser {
	return &Parser{
		ctx:          ctx,
		tokens:       tokens,
		pos:          0,
		depthCounter: NewExpressionDepthCounter(),
	}
}

// current returns the current token
func (p *Parser) current() Token {
	if p.pos >= len(p.tokens) {
		return Token{Type: TokenEOF, Value: ""}
	}
	return p.tokens[p.pos]
}

// peek returns the next token without advancing
func (p *Parser) peek() Token {
	if p.pos+1 >= len(p.tokens) {
		return Token{Type: TokenEOF, Value: ""}
	}
	return p.tokens[p.pos+1]
}

// advance moves to the next token
func (p *Parser) advance() {
	p.pos++
}

// parseError builds a syntax error anchored at the current token
func (p *Parser) parseError(format string, args ...interface{}) error {
	return &parseError{pos: p.current().Pos, err: fmt.Errorf("%w: "+format, append([]interface{}{ErrSyntax}, args...)...)}
}

// unexpected reports the current token as out of place
func (p *Parser) unexpected(want string) error {
	tok := p.current()
	switch tok.Type {
	case TokenError:
		if tok.Value == "=" {
			return p.parseError("unexpected '=', use == for equality")
		}
		if tok.Value == "unterminated string" {
			return p.parseError("unterminated string literal")
		}
		if tok.Value == "&" || tok.Value == "|" {
			return p.parseError("unexpected %q, use %s%s", tok.Value, tok.Value, tok.Value)
		}
		return p.parseError("invalid token %q", tok.Value)
	case TokenEOF:
		return p.parseError("expected %s, got end of expression", want)
	default:
		return p.parseError("expected %s, got %q", want, tok.Value)
	}
}

// expect checks if current token matches expected type and advances
func (p *Parser) expect(tokType TokenType) error {
	if p.current().Type != tokType {
		return p.unexpected(fmt.Sprintf("%q", tokType.String()))
	}
	p.advance()
	return nil
}

// parseError carries a position out of the recursive descent
type parseError struct {
	pos int
	err error
}

func (e *parseError) Error() string { return e.err.Error() }
func (e *parseError) Unwrap() error { return e.err }

// Parse parses a complete expression
func (p *Parser) Parse() (Node, error) {
	node, err := p.parseExpression()
	if err != nil {
		return nil, err
	}

	if p.current().Type != TokenEOF {
		return nil, p.unexpected("operator or end of expression")
	}
	return node, nil
}

// parseExpression parses a conditional expression (lowest precedence)
func (p *Parser) parseExpression() (Node, error) {
	if err := p.depthCounter.Enter(); err != nil {
		return nil, &parseError{pos: p.current().Pos, err: err}
	}
	defer p.depthCounter.Exit()

	cond, err := p.parseOr()
	if err != nil {
		return nil, err
	}

	if p.current().Type != TokenQuestion {
		return cond, nil
	}
	p.advance()

	then, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if err := p.expect(TokenColon); err != nil {
		return nil, err
	}
	otherwise, err := p.parseExpression()
	if err != nil {
		return nil, err
	}

	return &Conditional{Cond: cond, Then: then, Else: otherwise}, nil
}

// parseOr parses || expressions
func (p *Parser) parseOr() (Node, error) {
	left, err := p.parseAnd()
	if err != nil {
		return nil, err
	}

	for p.current().Type == TokenOr {
		p.advance()
		right, err := p.parseAnd()
		if err != nil {
			return nil, err
		}
		left = &Logical{
			Left:     left,
			Operator: TokenOr,
			Right:    right,
		}
	}

	return left, nil
}

// parseAnd parses && expressions (higher precedence than ||)
func (p *Parser) parseAnd() (Node, error) {
	left, err := p.parseComparison()
	if err != nil {
		return nil, err
	}

	for p.current().Type == TokenAnd {
		p.advance()
		right, err := p.parseComparison()
		if err != nil {
			return nil, err
		}
		left = &Logical{
			Left:     left,
			Operator: TokenAnd,
			Right:    right,
		}
	}

	return left, nil
}

// parseComparison parses a single, non-associative relational expression
func (p *Parser) parseComparison() (Node, error) {
	left, err := p.parseAdditive()
	if err != nil {
		return nil, err
	}

	operator := p.current().Type
	if !operator.isComparison() {
		return left, nil
	}
	p.advance()

	right, err := p.parseAdditive()
	if err != nil {
		return nil, err
	}

	if p.current().Type.isComparison() {
		return nil, p.parseError("comparisons cannot be chained, combine them with &&")
	}

	return &Binary{Left: left, Operator: operator, Right: right}, nil
}

// parseAdditive parses + and -
func (p *Parser) parseAdditive() (Node, error) {
	left, err := p.parseMultiplicative()
	if err != nil {
		return nil, err
	}

	for p.current().Type == TokenPlus || p.current().Type == TokenMinus {
		operator := p.current().Type
		p.advance()
		right, err := p.parseMultiplicative()
		if err != nil {
			return nil, err
		}
		left = &Binary{Left: left, Operator: operator, Right: right}
	}

	return left, nil
}

// parseMultiplicative parses *, / and %
func (p *Parser) parseMultiplicative() (Node, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}

	for p.current().Type == TokenStar || p.current().Type == TokenSlash || p.current().Type == TokenPercent {
		operator := p.current().Type
		p.advance()
		right, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		left = &Binary{Left: left, Operator: operator, Right: right}
	}

	return left, nil
}

// parseUnary parses ! and unary minus. A minus directly before a signed
// number literal folds into the literal so the full int range is writable.
func (p *Parser) parseUnary() (Node, error) {
	switch p.current().Type {
	case TokenNot, TokenMinus:
		if err := p.depthCounter.Enter(); err != nil {
			return nil, &parseError{pos: p.current().Pos, err: err}
		}
		defer p.depthCounter.Exit()

		operator := p.current().Type
		if operator == TokenMinus && (p.peek().Type == TokenInt || p.peek().Type == TokenFloat) {
			p.advance()
			return p.parseNumber("-")
		}

		p.advance()
		operand, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return &Unary{Operator: operator, Operand: operand}, nil
	}
	return p.parsePrimary()
}

// parsePrimary parses literals, identifiers, calls and parenthesized
// expressions
func (p *Parser) parsePrimary() (Node, error) {
	tok := p.current()

	switch tok.Type {
	case TokenInt, TokenUint, TokenFloat:
		return p.parseNumber("")
	case TokenString:
		p.advance()
		return &Literal{Value: tok.Value}, nil
	case TokenTrue, TokenFalse:
		p.advance()
		return &Literal{Value: tok.Type == TokenTrue}, nil
	case TokenLeftParen:
		p.advance()
		inner, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		if err := p.expect(TokenRightParen); err != nil {
			return nil, err
		}
		return inner, nil
	case TokenIdent:
		if err := ValidateIdentifier(tok.Value); err != nil {
			return nil, &parseError{pos: tok.Pos, err: err}
		}
		if p.peek().Type == TokenLeftParen {
			return p.parseCall()
		}
		p.advance()
		return &Ident{Name: tok.Value}, nil
	default:
		return nil, p.unexpected("value, variable or '('")
	}
}

// parseNumber converts the current number token, with an optional sign
func (p *Parser) parseNumber(sign string) (Node, error) {
	tok := p.current()
	text := sign + tok.Value

	var value interface{}
	switch tok.Type {
	case TokenInt:
		i, err := strconv.ParseInt(text, 10, 64)
		if err != nil {
			return nil, p.parseError("integer literal %s out of range", text)
		}
		value = i
	case TokenUint:
		u, err := strconv.ParseUint(text, 10, 64)
		if err != nil {
			return nil, p.parseError("unsigned literal %su out of range", text)
		}
		value = u
	default:
		f, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return nil, p.parseError("invalid float literal %s", text)
		}
		value = f
	}

	p.advance()
	return &Literal{Value: value}, nil
}

// parseCall parses name(arg, ...) and resolves the function statically
func (p *Parser) parseCall() (Node, error) {
	nameTok := p.current()
	fn, ok := p.ctx.Function(nameTok.Value)
	if !ok {
		return nil, &parseError{
			pos: nameTok.Pos,
			err: fmt.Errorf("%w: %s (available: %s)", ErrUnknownFunction, nameTok.Value, strings.Join(p.ctx.FunctionNames(), ", ")),
		}
	}
	p.advance() // name
	p.advance() // (

	var args []Node
	if p.current().Type != TokenRightParen {
		for {
			arg, err := p.parseExpression()
			if err != nil {
				return nil, err
			}
			args = append(args, arg)

			if p.current().Type == TokenComma {
				p.advance()
				continue
			}
			break
		}
	}
	if err := p.expect(TokenRightParen); err != nil {
		return nil, err
	}

	if err := checkArity(fn, len(args)); err != nil {
		return nil, &parseError{pos: nameTok.Pos, err: err}
	}

	return &Call{Name: strings.ToLower(nameTok.Value), Fn: fn, Args: args}, nil
}

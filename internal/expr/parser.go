package expr

import "strconv"

// Parser builds an expression tree from tokens.
//
// Grammar, loosest binding first:
//
//	expr    = ternary
//	ternary = cmp [ "?" ternary ":" ternary ]
//	cmp     = add { ("<" | "<=" | ">" | ">=" | "==" | "!=") add }
//	add     = mul { ("+" | "-") mul }
//	mul     = unary { ("*" | "/") unary }
//	unary   = "-" unary | primary
//	primary = number | "(" expr ")" | ref | call
//	ref     = ident "." ident | "#" id "." ident
//	call    = ident "(" [ arg { "," arg } ] ")"
//	arg     = ternary [ ":" ternary ]
type Parser struct {
	source string
	lexer  *Lexer
	cur    Token
	peek   Token
}

// Parse parses source into an expression tree, without interning.
func Parse(source string) (*Parsed, error) {
	p := &Parser{source: source, lexer: NewLexer(source)}
	p.advance()
	p.advance()

	root, err := p.parseTernary()
	if err != nil {
		return nil, err
	}
	if p.cur.Type != TokenEOF {
		return nil, p.errorf("unexpected %s", p.cur.Type)
	}
	return &Parsed{Source: source, Root: root}, nil
}

// advance shifts the token window forward by one.
func (p *Parser) advance() {
	p.cur = p.peek
	p.peek = p.lexer.Next()
}

// expect consumes the current token if it matches typ, or fails.
func (p *Parser) expect(typ TokenType) error {
	if p.cur.Type != typ {
		return p.errorf("expected %s, found %s", typ, p.cur.Type)
	}
	p.advance()
	return nil
}

func (p *Parser) errorf(format string, args ...any) *SyntaxError {
	return syntaxErrorf(p.source, p.cur.Offset, format, args...)
}

func (p *Parser) parseTernary() (Node, error) {
	cond, err := p.parseComparison()
	if err != nil {
		return nil, err
	}
	if p.cur.Type != TokenQuestion {
		return cond, nil
	}
	p.advance()
	then, err := p.parseTernary()
	if err != nil {
		return nil, err
	}
	if err := p.expect(TokenColon); err != nil {
		return nil, err
	}
	els, err := p.parseTernary()
	if err != nil {
		return nil, err
	}
	return &Ternary{Cond: cond, Then: then, Else: els}, nil
}

func (p *Parser) parseComparison() (Node, error) {
	left, err := p.parseAdditive()
	if err != nil {
		return nil, err
	}
	for {
		var op BinOp
		switch p.cur.Type {
		case TokenLess:
			op = OpLT
		case TokenLessEq:
			op = OpLE
		case TokenGreater:
			op = OpGT
		case TokenGreaterEq:
			op = OpGE
		case TokenEqEq:
			op = OpEQ
		case TokenBangEq:
			op = OpNE
		default:
			return left, nil
		}
		p.advance()
		right, err := p.parseAdditive()
		if err != nil {
			return nil, err
		}
		left = &Binary{Op: op, X: left, Y: right}
	}
}

func (p *Parser) parseAdditive() (Node, error) {
	left, err := p.parseMultiplicative()
	if err != nil {
		return nil, err
	}
	for p.cur.Type == TokenPlus || p.cur.Type == TokenMinus {
		op := OpAdd
		if p.cur.Type == TokenMinus {
			op = OpSub
		}
		p.advance()
		right, err := p.parseMultiplicative()
		if err != nil {
			return nil, err
		}
		left = &Binary{Op: op, X: left, Y: right}
	}
	return left, nil
}

func (p *Parser) parseMultiplicative() (Node, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for p.cur.Type == TokenStar || p.cur.Type == TokenSlash {
		op := OpMul
		if p.cur.Type == TokenSlash {
			op = OpDiv
		}
		p.advance()
		right, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		left = &Binary{Op: op, X: left, Y: right}
	}
	return left, nil
}

func (p *Parser) parseUnary() (Node, error) {
	if p.cur.Type == TokenMinus {
		p.advance()
		x, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return &Unary{X: x}, nil
	}
	return p.parsePrimary()
}

func (p *Parser) parsePrimary() (Node, error) {
	switch p.cur.Type {
	case TokenNumber:
		v, err := strconv.ParseFloat(p.cur.Literal, 64)
		if err != nil {
			return nil, p.errorf("malformed number %q", p.cur.Literal)
		}
		p.advance()
		return &Literal{Value: v}, nil

	case TokenLParen:
		p.advance()
		inner, err := p.parseTernary()
		if err != nil {
			return nil, err
		}
		if err := p.expect(TokenRParen); err != nil {
			return nil, err
		}
		return inner, nil

	case TokenHashIdent:
		id := p.cur.Literal
		offset := p.cur.Offset
		p.advance()
		metric, err := p.parseMetric()
		if err != nil {
			return nil, err
		}
		return &Ref{Space: RefSibling, ID: id, Metric: metric, Offset: offset}, nil

	case TokenIdent:
		name := p.cur.Literal
		offset := p.cur.Offset
		p.advance()
		switch p.cur.Type {
		case TokenLParen:
			return p.parseCall(name, offset)
		case TokenDot:
			metric, err := p.parseMetric()
			if err != nil {
				return nil, err
			}
			space := lookupSpace(name)
			return &Ref{Space: space, ID: name, Metric: metric, Offset: offset}, nil
		default:
			return nil, p.errorf("expected '(' or '.' after %q", name)
		}

	case TokenError:
		return nil, p.errorf("unexpected character %q", p.cur.Literal)

	default:
		return nil, p.errorf("unexpected %s", p.cur.Type)
	}
}

// parseMetric consumes ".ident" and returns the metric name. The metric is
// validated against the namespace at resolution time, not here.
func (p *Parser) parseMetric() (string, error) {
	if err := p.expect(TokenDot); err != nil {
		return "", err
	}
	if p.cur.Type != TokenIdent {
		return "", p.errorf("expected metric name, found %s", p.cur.Type)
	}
	metric := p.cur.Literal
	p.advance()
	return metric, nil
}

// parseCall consumes "(args)" after a function name. Arguments may be
// threshold:value pairs, which only steps(...) accepts during resolution.
func (p *Parser) parseCall(name string, offset int) (Node, error) {
	if err := p.expect(TokenLParen); err != nil {
		return nil, err
	}
	call := &Call{Name: name, Offset: offset}
	if p.cur.Type == TokenRParen {
		p.advance()
		return call, nil
	}
	for {
		arg, err := p.parseArg()
		if err != nil {
			return nil, err
		}
		call.Args = append(call.Args, arg)
		if p.cur.Type == TokenComma {
			p.advance()
			continue
		}
		break
	}
	if err := p.expect(TokenRParen); err != nil {
		return nil, err
	}
	return call, nil
}

func (p *Parser) parseArg() (Node, error) {
	first, err := p.parseTernary()
	if err != nil {
		return nil, err
	}
	if p.cur.Type != TokenColon {
		return first, nil
	}
	p.advance()
	value, err := p.parseTernary()
	if err != nil {
		return nil, err
	}
	return &Pair{Threshold: first, Value: value}, nil
}

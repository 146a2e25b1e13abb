package evaluator

import (
	"fmt"
	"strings"
)

type parser struct {
	l   lexer
	cur token
}

func parse(text string) (node, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrEmpty
	}
	p := &parser{l: lexer{s: text}}
	p.next()
	n, err := p.parseSum()
	if err != nil {
		return nil, err
	}
	if p.cur.kind != tokEOF {
		return nil, p.unexpected()
	}
	return n, nil
}

func (p *parser) next() { p.cur = p.l.next() }

func (p *parser) unexpected() error {
	switch p.cur.kind {
	case tokEOF:
		return fmt.Errorf("%w: unexpected end of input", ErrParse)
	case tokIllegal:
		return fmt.Errorf("%w: invalid character %q at %d", ErrParse, p.cur.text, p.cur.pos)
	default:
		return fmt.Errorf("%w: unexpected %q at %d", ErrParse, p.cur.text, p.cur.pos)
	}
}

func (p *parser) parseSum() (node, error) {
	left, err := p.parseProduct()
	if err != nil {
		return nil, err
	}
	for p.cur.kind == tokPlus || p.cur.kind == tokMinus {
		op := p.cur.text[0]
		p.next()
		right, err := p.parseProduct()
		if err != nil {
			return nil, err
		}
		left = nodeBinary{op: op, left: left, right: right}
	}
	return left, nil
}

// parseProduct also handles implicit multiplication: a factor directly
// followed by an identifier or an opening parenthesis, as in 4i or 2(1+i).
func (p *parser) parseProduct() (node, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for {
		var op byte
		switch p.cur.kind {
		case tokStar, tokSlash:
			op = p.cur.text[0]
			p.next()
		case tokIdent, tokLParen:
			op = '*'
		default:
			return left, nil
		}
		right, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		left = nodeBinary{op: op, left: left, right: right}
	}
}

// parseUnary binds looser than ^, so -2^2 is -(2^2).
func (p *parser) parseUnary() (node, error) {
	if p.cur.kind == tokPlus || p.cur.kind == tokMinus {
		op := p.cur.text[0]
		p.next()
		x, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return nodeUnary{op: op, x: x}, nil
	}
	return p.parsePower()
}

func (p *parser) parsePower() (node, error) {
	base, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}
	if p.cur.kind != tokCaret {
		return base, nil
	}
	p.next()
	exp, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	return nodeBinary{op: '^', left: base, right: exp}, nil
}

func (p *parser) parsePrimary() (node, error) {
	switch p.cur.kind {
	case tokNumber:
		v := p.cur.num
		p.next()
		return nodeNumber{v: v}, nil
	case tokIdent:
		name := p.cur.text
		p.next()
		if p.cur.kind != tokLParen {
			return nodeIdent{name: name}, nil
		}
		p.next()
		var args []node
		if p.cur.kind != tokRParen {
			for {
				arg, err := p.parseSum()
				if err != nil {
					return nil, err
				}
				args = append(args, arg)
				if p.cur.kind != tokComma {
					break
				}
				p.next()
			}
		}
		if p.cur.kind != tokRParen {
			return nil, fmt.Errorf("%w: expected ')' after arguments to %s", ErrParse, name)
		}
		p.next()
		return nodeCall{name: name, args: args}, nil
	case tokLParen:
		p.next()
		inner, err := p.parseSum()
		if err != nil {
			return nil, err
		}
		if p.cur.kind != tokRParen {
			return nil, fmt.Errorf("%w: expected ')'", ErrParse)
		}
		p.next()
		return inner, nil
	default:
		return nil, p.unexpected()
	}
}

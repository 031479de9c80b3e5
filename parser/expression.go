package parser

import (
	"fmt"
	"strconv"

	"github.com/voltsql/voltsql/ast"
	"github.com/voltsql/voltsql/token"
)

// predicatePriority is the binding priority DOMAIN predicates (IS NULL, IN,
// BETWEEN, LIKE) occupy — the same level as the comparison operators in
// SPEC_FULL.md §4.3.
const predicatePriority = 110

// parseExpression is the Pratt/precedence-climbing loop from spec §4.3:
// optionally consume a prefix unary, parse an operand, then repeatedly
// fold in binary operators (and the DOMAIN postfix predicates) whose
// priority exceeds minPrio. Strict '>' yields left-associative folding.
func (p *Parser) parseExpression(minPrio int) (ast.Expr, error) {
	startPos := p.cur().Pos

	var unaryOp *ast.UnaryOperator
	switch {
	case p.curIs(token.PLUS):
		op := ast.UnaryPlus
		unaryOp = &op
		p.advance()
	case p.curIs(token.MINUS):
		op := ast.UnaryMinus
		unaryOp = &op
		p.advance()
	case p.curIsKeyword(token.NOT):
		op := ast.UnaryNot
		unaryOp = &op
		p.advance()
	}

	operand, err := p.parseOperand()
	if err != nil {
		return nil, err
	}
	if unaryOp != nil {
		operand = &ast.UnaryExpr{StartPos: startPos, EndPos: operand.End(), Op: *unaryOp, Operand: operand}
	}

	for {
		if binOp, ok := binaryOpFor(p.cur()); ok && binOp.Priority() > minPrio {
			p.advance()
			right, err := p.parseExpression(binOp.Priority())
			if err != nil {
				return nil, err
			}
			operand = &ast.BinaryExpr{StartPos: startPos, EndPos: right.End(), Left: operand, Op: binOp, Right: right}
			continue
		}
		if predicatePriority > minPrio {
			handled, next, err := p.tryPostfixPredicate(startPos, operand)
			if err != nil {
				return nil, err
			}
			if handled {
				operand = next
				continue
			}
		}
		break
	}
	return operand, nil
}

func binaryOpFor(t token.Token) (ast.BinaryOperator, bool) {
	switch t.Kind {
	case token.EQ:
		return ast.OpEq, true
	case token.NEQ:
		return ast.OpNeq, true
	case token.GT:
		return ast.OpGt, true
	case token.LT:
		return ast.OpLt, true
	case token.GE:
		return ast.OpGe, true
	case token.LE:
		return ast.OpLe, true
	case token.PLUS:
		return ast.OpPlus, true
	case token.MINUS:
		return ast.OpMinus, true
	case token.STAR:
		return ast.OpMul, true
	case token.SLASH:
		return ast.OpDiv, true
	case token.KEYWORD:
		switch t.Keyword {
		case token.AND:
			return ast.OpAnd, true
		case token.OR:
			return ast.OpOr, true
		}
	}
	return 0, false
}

// tryPostfixPredicate recognizes the DOMAIN-extension predicates that
// follow an already-parsed operand: IS [NOT] NULL, [NOT] IN (...),
// [NOT] BETWEEN x AND y, [NOT] LIKE pattern.
func (p *Parser) tryPostfixPredicate(startPos token.Pos, operand ast.Expr) (bool, ast.Expr, error) {
	if p.curIsKeyword(token.IS) {
		p.advance()
		not := false
		if p.curIsKeyword(token.NOT) {
			not = true
			p.advance()
		}
		nullTok, err := p.expectKeyword(token.NULL)
		if err != nil {
			return false, nil, err
		}
		return true, &ast.IsNullExpr{StartPos: startPos, EndPos: nullTok.Pos, Operand: operand, Not: not}, nil
	}

	not := false
	if p.curIsKeyword(token.NOT) {
		nxt := p.peek()
		isPredicateNot := nxt.Kind == token.KEYWORD && (nxt.Keyword == token.IN || nxt.Keyword == token.BETWEEN || nxt.Keyword == token.LIKE)
		if !isPredicateNot {
			return false, operand, nil
		}
		not = true
		p.advance()
	}

	switch {
	case p.curIsKeyword(token.IN):
		return p.parseInPredicate(startPos, operand, not)
	case p.curIsKeyword(token.BETWEEN):
		return p.parseBetweenPredicate(startPos, operand, not)
	case p.curIsKeyword(token.LIKE):
		return p.parseLikePredicate(startPos, operand, not)
	}
	if not {
		// We consumed NOT speculatively only when followed by IN/BETWEEN/LIKE,
		// so reaching here is unreachable; kept defensive.
		return false, nil, p.errorf(p.cur().Pos, "expected IN, BETWEEN, or LIKE after NOT")
	}
	return false, operand, nil
}

func (p *Parser) parseInPredicate(startPos token.Pos, operand ast.Expr, not bool) (bool, ast.Expr, error) {
	p.advance() // IN
	if _, err := p.expect(token.LPAREN); err != nil {
		return false, nil, err
	}
	list := *ast.GetExprSlice()
	for {
		e, err := p.parseExpression(0)
		if err != nil {
			return false, nil, err
		}
		list = append(list, e)
		if p.curIs(token.COMMA) {
			p.advance()
			continue
		}
		break
	}
	rparen, err := p.expect(token.RPAREN)
	if err != nil {
		return false, nil, err
	}
	return true, &ast.InExpr{StartPos: startPos, EndPos: rparen.Pos, Operand: operand, Not: not, List: list}, nil
}

func (p *Parser) parseBetweenPredicate(startPos token.Pos, operand ast.Expr, not bool) (bool, ast.Expr, error) {
	p.advance() // BETWEEN
	low, err := p.parseExpression(predicatePriority)
	if err != nil {
		return false, nil, err
	}
	if _, err := p.expectKeyword(token.AND); err != nil {
		return false, nil, err
	}
	high, err := p.parseExpression(predicatePriority)
	if err != nil {
		return false, nil, err
	}
	return true, &ast.BetweenExpr{StartPos: startPos, EndPos: high.End(), Operand: operand, Not: not, Low: low, High: high}, nil
}

func (p *Parser) parseLikePredicate(startPos token.Pos, operand ast.Expr, not bool) (bool, ast.Expr, error) {
	p.advance() // LIKE
	pattern, err := p.parseExpression(predicatePriority)
	if err != nil {
		return false, nil, err
	}
	return true, &ast.LikeExpr{StartPos: startPos, EndPos: pattern.End(), Operand: operand, Not: not, Pattern: pattern}, nil
}

// parseOperand dispatches on the current token per spec §4.3's Operand
// table.
func (p *Parser) parseOperand() (ast.Expr, error) {
	cur := p.cur()
	switch {
	case cur.Kind == token.KEYWORD && cur.Keyword == token.SELECT:
		sel, err := p.parseSelectCore(cur.Pos)
		if err != nil {
			return nil, err
		}
		return &ast.SubQueryExpr{StartPos: sel.StartPos, EndPos: sel.EndPos, Select: *sel}, nil

	case cur.Kind == token.IDENT:
		return p.parseIdentifierOrCall()

	case cur.Kind == token.STRING_LITERAL:
		p.advance()
		return &ast.Literal{StartPos: cur.Pos, EndPos: cur.Pos, Kind: ast.LiteralString, Str: cur.Value}, nil

	case cur.Kind == token.INTEGER:
		return p.parseNumber()

	case cur.Kind == token.STAR:
		p.advance()
		return &ast.Wildcard{StartPos: cur.Pos, EndPos: cur.Pos}, nil

	case cur.Kind == token.LPAREN:
		lparen := p.advance()
		inner, err := p.parseExpression(0)
		if err != nil {
			return nil, err
		}
		rparen, err := p.expect(token.RPAREN)
		if err != nil {
			return nil, err
		}
		if sub, ok := inner.(*ast.SubQueryExpr); ok {
			sub.StartPos, sub.EndPos = lparen.Pos, rparen.Pos
			return sub, nil
		}
		return inner, nil

	default:
		return nil, p.errorf(cur.Pos, "unexpected token")
	}
}

// parseIdentifier parses a (possibly dot-qualified, possibly
// wildcard-suffixed) identifier starting at the current IDENT token.
func (p *Parser) parseIdentifier() (ast.Identifier, error) {
	first, err := p.expect(token.IDENT)
	if err != nil {
		return nil, err
	}
	parts := []string{first.Value}
	endPos := first.Pos
	for p.curIs(token.DOT) {
		p.advance()
		if p.curIs(token.STAR) {
			star := p.advance()
			return &ast.WithWildcardIdent{StartPos: first.Pos, EndPos: star.Pos, Parts: parts}, nil
		}
		next, err := p.expect(token.IDENT)
		if err != nil {
			return nil, err
		}
		parts = append(parts, next.Value)
		endPos = next.Pos
	}
	if len(parts) == 1 {
		return &ast.SingleIdent{StartPos: first.Pos, EndPos: endPos, Name: parts[0]}, nil
	}
	return &ast.CombinedIdent{StartPos: first.Pos, EndPos: endPos, Parts: parts}, nil
}

func (p *Parser) parseIdentifierOrCall() (ast.Expr, error) {
	startPos := p.cur().Pos
	ident, err := p.parseIdentifier()
	if err != nil {
		return nil, err
	}
	if !p.curIs(token.LPAREN) {
		return ident, nil
	}
	p.advance() // consume (

	name := "?"
	if s, ok := ident.(fmt.Stringer); ok {
		name = s.String()
	}
	fn := &ast.FunctionCall{StartPos: startPos, Name: name}

	if p.curIsKeyword(token.DISTINCT) {
		p.advance()
		fn.Distinct = true
	}
	if !p.curIs(token.RPAREN) {
		fn.Args = *ast.GetExprSlice()
		for {
			arg, err := p.parseExpression(0)
			if err != nil {
				return nil, err
			}
			fn.Args = append(fn.Args, arg)
			if p.curIs(token.COMMA) {
				p.advance()
				continue
			}
			break
		}
	}
	rparen, err := p.expect(token.RPAREN)
	if err != nil {
		return nil, err
	}
	fn.EndPos = rparen.Pos
	return fn, nil
}

// parseNumber assembles an integer-or-float literal per spec §4.3's
// "Number assembly" rule, using the IntegerLiteral(leading_zeros, value?)
// encoding produced by the lexer.
func (p *Parser) parseNumber() (ast.Expr, error) {
	first := p.advance()
	integer := first.Num

	if p.curIs(token.DOT) && p.peek().Kind == token.INTEGER {
		p.advance() // consume '.'
		second := p.advance()

		var floatVal float64
		if second.HasNum {
			s := fmt.Sprintf("%d.%s%d", integer, zeros(second.Zeros), second.Num)
			fv, err := strconv.ParseFloat(s, 64)
			if err != nil {
				return nil, p.errorf(second.Pos, "invalid float literal")
			}
			floatVal = fv
		} else {
			floatVal = float64(integer)
		}
		return &ast.Literal{StartPos: first.Pos, EndPos: second.Pos, Kind: ast.LiteralFloat, Float: floatVal}, nil
	}

	return &ast.Literal{StartPos: first.Pos, EndPos: first.Pos, Kind: ast.LiteralInteger, Int: integer}, nil
}

func zeros(n uint16) string {
	if n == 0 {
		return ""
	}
	b := make([]byte, n)
	for i := range b {
		b[i] = '0'
	}
	return string(b)
}

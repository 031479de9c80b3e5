package parser

import (
	"github.com/voltsql/voltsql/ast"
	"github.com/voltsql/voltsql/token"
)

// parseSelect parses a SELECT statement at the top level.
func (p *Parser) parseSelect() (ast.Statement, error) {
	return p.parseSelectCore(p.cur().Pos)
}

// parseSelectCore parses a SELECT, usable both at the statement level and
// as a subquery operand (§4.3's "Operand" SELECT case).
func (p *Parser) parseSelectCore(startPos token.Pos) (*ast.Select, error) {
	if _, err := p.expectKeyword(token.SELECT); err != nil {
		return nil, err
	}

	items, err := p.parseSelectItems()
	if err != nil {
		return nil, err
	}
	sel := &ast.Select{StartPos: startPos, Items: items, EndPos: items[len(items)-1].End()}

	if p.curIsKeyword(token.FROM) {
		p.advance()
		from, err := p.parseFromItems()
		if err != nil {
			return nil, err
		}
		sel.From = from
		sel.EndPos = from[len(from)-1].End()
	}

	if p.curIsKeyword(token.WHERE) {
		p.advance()
		w, err := p.parseExpression(0)
		if err != nil {
			return nil, err
		}
		sel.Where = w
		sel.EndPos = w.End()
	}

	if p.curIsKeyword(token.GROUP) {
		p.advance()
		if _, err := p.expectKeyword(token.BY); err != nil {
			return nil, err
		}
		ids, err := p.parseIdentifierList()
		if err != nil {
			return nil, err
		}
		sel.GroupBy = ids
		sel.EndPos = ids[len(ids)-1].End()
	}

	if p.curIsKeyword(token.HAVING) {
		p.advance()
		h, err := p.parseExpression(0)
		if err != nil {
			return nil, err
		}
		sel.Having = h
		sel.EndPos = h.End()
	}

	if p.curIsKeyword(token.ORDER) {
		p.advance()
		if _, err := p.expectKeyword(token.BY); err != nil {
			return nil, err
		}
		obs, err := p.parseOrderByList()
		if err != nil {
			return nil, err
		}
		sel.OrderBy = obs
		sel.EndPos = obs[len(obs)-1].End()
	}

	if p.curIsKeyword(token.LIMIT) {
		p.advance()
		limTok, err := p.expect(token.INTEGER)
		if err != nil {
			return nil, err
		}
		sel.Limit = &ast.Limit{StartPos: limTok.Pos, EndPos: limTok.Pos, Value: limTok.Num}
		sel.EndPos = limTok.Pos
	}

	if p.curIsKeyword(token.OFFSET) {
		p.advance()
		offTok, err := p.expect(token.INTEGER)
		if err != nil {
			return nil, err
		}
		sel.Offset = &ast.Offset{StartPos: offTok.Pos, EndPos: offTok.Pos, Value: offTok.Num}
		sel.EndPos = offTok.Pos
	}

	return sel, nil
}

// isSelectItemStop reports whether kw is one of the clause-starting
// keywords that ends the select-item list (spec §4.3).
func isSelectItemStop(kw token.Keyword) bool {
	switch kw {
	case token.FROM, token.WHERE, token.HAVING, token.GROUP, token.ORDER:
		return true
	default:
		return false
	}
}

func (p *Parser) parseSelectItems() ([]ast.SelectItem, error) {
	items := *ast.GetSelectItemSlice()
	for {
		item, err := p.parseSelectItem()
		if err != nil {
			return nil, err
		}
		items = append(items, item)
		if p.curIs(token.COMMA) {
			p.advance()
			continue
		}
		break
	}
	return items, nil
}

func (p *Parser) parseSelectItem() (ast.SelectItem, error) {
	startPos := p.cur().Pos
	expr, err := p.parseExpression(0)
	if err != nil {
		return nil, err
	}

	if p.curIsKeyword(token.AS) {
		p.advance()
		nameTok, err := p.expect(token.IDENT)
		if err != nil {
			return nil, err
		}
		return &ast.AliasItem{StartPos: startPos, EndPos: nameTok.Pos, Expr: expr, Name: nameTok.Value}, nil
	}

	if p.curIs(token.IDENT) {
		nameTok := p.advance()
		return &ast.AliasItem{StartPos: startPos, EndPos: nameTok.Pos, Expr: expr, Name: nameTok.Value}, nil
	}

	if p.curIs(token.KEYWORD) && !isSelectItemStop(p.cur().Keyword) {
		return nil, p.errorf(p.cur().Pos, "unexpected keyword %s in select list", p.cur().Keyword)
	}

	return &ast.ExprItem{StartPos: startPos, EndPos: expr.End(), Expr: expr}, nil
}

func (p *Parser) parseFromItems() ([]*ast.FromItem, error) {
	var items []*ast.FromItem
	for {
		startPos := p.cur().Pos
		expr, err := p.parseExpression(0)
		if err != nil {
			return nil, err
		}
		item := &ast.FromItem{StartPos: startPos, EndPos: expr.End(), Expr: expr}
		if p.curIsKeyword(token.AS) {
			p.advance()
			nameTok, err := p.expect(token.IDENT)
			if err != nil {
				return nil, err
			}
			item.Alias = nameTok.Value
			item.EndPos = nameTok.Pos
		}
		items = append(items, item)
		if p.curIs(token.COMMA) {
			p.advance()
			continue
		}
		break
	}
	return items, nil
}

func (p *Parser) parseIdentifierList() ([]ast.Identifier, error) {
	var ids []ast.Identifier
	for {
		id, err := p.parseIdentifier()
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
		if p.curIs(token.COMMA) {
			p.advance()
			continue
		}
		break
	}
	return ids, nil
}

// parseOrderByList implements SPEC_FULL.md §4.3's SUPPLEMENT fix: a comma
// is required between order terms; the loop stops as soon as the next
// token isn't a comma, leaving clause keywords / LIMIT / OFFSET / ';' /
// end-of-input for the caller.
func (p *Parser) parseOrderByList() ([]*ast.OrderByItem, error) {
	items := *ast.GetOrderBySlice()
	for {
		startPos := p.cur().Pos
		id, err := p.parseIdentifier()
		if err != nil {
			return nil, err
		}
		asc := true
		endPos := id.End()
		switch {
		case p.curIsKeyword(token.ASC):
			endPos = p.advance().Pos
		case p.curIsKeyword(token.DESC):
			asc = false
			endPos = p.advance().Pos
		}
		items = append(items, &ast.OrderByItem{StartPos: startPos, EndPos: endPos, Identifier: id, Asc: asc})
		if p.curIs(token.COMMA) {
			p.advance()
			continue
		}
		break
	}
	return items, nil
}

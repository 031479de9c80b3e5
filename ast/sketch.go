package ast

import "github.com/voltsql/voltsql/token"

// The statement shapes below are recognized by the tokenizer's keyword
// table and given a node shape here (so the AST package has the same
// "sketched, not wired" surface for non-core statements that the teacher
// repository itself has), but the parser's statement loop never
// constructs them — see SPEC_FULL.md §4.3. They exist purely so a future
// planner/executor (out of scope, external collaborator) has a stable
// interface to target; this module itself returns a ParseError naming
// them unsupported.

// InsertStmt is the sketched shape of INSERT INTO ... VALUES ... .
type InsertStmt struct {
	StartPos token.Pos
	EndPos   token.Pos
	Table    string
	Columns  []string
	Values   [][]Expr
}

func (*InsertStmt) statementNode()   {}
func (n *InsertStmt) Pos() token.Pos { return n.StartPos }
func (n *InsertStmt) End() token.Pos { return n.EndPos }

// UpdateExpr is one "column = expr" assignment within an UpdateStmt.
type UpdateExpr struct {
	Column string
	Value  Expr
}

// UpdateStmt is the sketched shape of UPDATE ... SET ... WHERE ... .
type UpdateStmt struct {
	StartPos token.Pos
	EndPos   token.Pos
	Table    string
	Set      []UpdateExpr
	Where    Expr
}

func (*UpdateStmt) statementNode()   {}
func (n *UpdateStmt) Pos() token.Pos { return n.StartPos }
func (n *UpdateStmt) End() token.Pos { return n.EndPos }

// DeleteStmt is the sketched shape of DELETE FROM ... WHERE ... .
type DeleteStmt struct {
	StartPos token.Pos
	EndPos   token.Pos
	Table    string
	Where    Expr
}

func (*DeleteStmt) statementNode()   {}
func (n *DeleteStmt) Pos() token.Pos { return n.StartPos }
func (n *DeleteStmt) End() token.Pos { return n.EndPos }

// ColumnDef is one column definition within a CreateTableStmt.
type ColumnDef struct {
	Name     string
	DataType string
	Nullable bool
}

// CreateTableStmt is the sketched shape of CREATE TABLE ... ( ... ) .
// Execution (actually materializing the table) is out of scope; only the
// AST shape is carried, per SPEC_FULL.md §1/§3.
type CreateTableStmt struct {
	StartPos token.Pos
	EndPos   token.Pos
	Table    string
	Columns  []ColumnDef
}

func (*CreateTableStmt) statementNode()   {}
func (n *CreateTableStmt) Pos() token.Pos { return n.StartPos }
func (n *CreateTableStmt) End() token.Pos { return n.EndPos }

// DropTableStmt is the sketched shape of DROP TABLE ... .
type DropTableStmt struct {
	StartPos token.Pos
	EndPos   token.Pos
	Table    string
}

func (*DropTableStmt) statementNode()   {}
func (n *DropTableStmt) Pos() token.Pos { return n.StartPos }
func (n *DropTableStmt) End() token.Pos { return n.EndPos }

// CreateIndexStmt is the sketched shape of CREATE INDEX ... ON ... ( ... ).
type CreateIndexStmt struct {
	StartPos token.Pos
	EndPos   token.Pos
	Name     string
	Table    string
	Columns  []string
}

func (*CreateIndexStmt) statementNode()   {}
func (n *CreateIndexStmt) Pos() token.Pos { return n.StartPos }
func (n *CreateIndexStmt) End() token.Pos { return n.EndPos }

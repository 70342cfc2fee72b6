package ast

import "github.com/freeeve/machparse/token"

// QuoteStyle records which delimiter, if any, an identifier was written
// with in the source. A zero value means unquoted.
type QuoteStyle byte

const (
	NoQuote         QuoteStyle = 0
	DoubleQuote     QuoteStyle = '"'
	Backtick        QuoteStyle = '`'
	BracketQuote    QuoteStyle = '['
	closingBracket             = ']'
)

// Close returns the closing delimiter for a quote style: ']' for
// BracketQuote, the opening character itself for '"' and '`', and 0 when
// unquoted.
func (q QuoteStyle) Close() byte {
	if q == BracketQuote {
		return closingBracket
	}
	return byte(q)
}

// String renders the quote style's opening delimiter, or "" if unquoted.
func (q QuoteStyle) String() string {
	if q == NoQuote {
		return ""
	}
	return string(byte(q))
}

// Ident is a single SQL name: a value plus the quote style it was written
// with, if any. Quoted identifiers preserve case and may contain arbitrary
// characters; unquoted ones are compared case-insensitively per dialect.
type Ident struct {
	Value      string
	QuoteStyle QuoteStyle
}

// NewIdent builds an unquoted identifier.
func NewIdent(value string) Ident {
	return Ident{Value: value}
}

// QuotedIdent builds an identifier recorded with the given quote style.
func QuotedIdent(value string, style QuoteStyle) Ident {
	return Ident{Value: value, QuoteStyle: style}
}

// Quoted reports whether this identifier carries a recorded quote style.
func (i Ident) Quoted() bool {
	return i.QuoteStyle != NoQuote
}

// ObjectName is a dotted path of identifiers naming a table, type, or other
// schema object: e.g. catalog.schema.table.
type ObjectName struct {
	Parts []Ident
}

func (o ObjectName) String() string {
	s := ""
	for i, p := range o.Parts {
		if i > 0 {
			s += "."
		}
		s += p.Value
	}
	return s
}

// Name returns the last (unqualified) part.
func (o ObjectName) Name() string { return partAt(o.Parts, 1) }

// Schema returns the schema qualifier (second-to-last part), or "".
func (o ObjectName) Schema() string { return partAt(o.Parts, 2) }

// Catalog returns the catalog qualifier (third-to-last part), or "".
func (o ObjectName) Catalog() string { return partAt(o.Parts, 3) }

func partAt(parts []Ident, fromEnd int) string {
	if len(parts) < fromEnd {
		return ""
	}
	return parts[len(parts)-fromEnd].Value
}

// Identifier is a bare, single-part name used as an expression: a column
// reference, a table alias reference inside an expression, etc.
//
// Identifier and a single-element CompoundIdentifier are deliberately
// distinct types: the parser never constructs a one-element
// CompoundIdentifier, it always emits Identifier for an unqualified name.
type Identifier struct {
	StartPos token.Pos
	EndPos   token.Pos
	Ident    Ident
}

func (*Identifier) exprNode()        {}
func (i *Identifier) Pos() token.Pos { return i.StartPos }
func (i *Identifier) End() token.Pos { return i.EndPos }

// Name returns the identifier's textual value.
func (i *Identifier) Name() string { return i.Ident.Value }

// CompoundIdentifier is a dotted chain of two or more identifiers used as
// an expression, e.g. table.column or schema.table.column.
type CompoundIdentifier struct {
	StartPos token.Pos
	EndPos   token.Pos
	Parts    []Ident
}

func (*CompoundIdentifier) exprNode()        {}
func (c *CompoundIdentifier) Pos() token.Pos { return c.StartPos }
func (c *CompoundIdentifier) End() token.Pos { return c.EndPos }

// Name returns the last (unqualified) part.
func (c *CompoundIdentifier) Name() string { return partAt(c.Parts, 1) }

// Table returns the second-to-last part, or "".
func (c *CompoundIdentifier) Table() string { return partAt(c.Parts, 2) }

// Schema returns the third-to-last part, or "".
func (c *CompoundIdentifier) Schema() string { return partAt(c.Parts, 3) }

// Catalog returns the fourth-to-last part, or "".
func (c *CompoundIdentifier) Catalog() string { return partAt(c.Parts, 4) }

// JSONPathElem is one step of a Redshift-style JSON path suffix attached to
// an identifier or table factor, e.g. the [0] and .o_orderkey in
// cust.c_orders[0].o_orderkey.
type JSONPathElem interface {
	jsonPathElemNode()
}

// JSONPathBracket is a [index] path step.
type JSONPathBracket struct {
	Index Expr
}

func (JSONPathBracket) jsonPathElemNode() {}

// JSONPathDot is a .name path step.
type JSONPathDot struct {
	Name string
}

func (JSONPathDot) jsonPathElemNode() {}

// JSONAccess represents a Redshift/BigQuery-style JSON path access chain
// rooted at an arbitrary expression, e.g. cust.c_orders[0].o_orderkey.
type JSONAccess struct {
	StartPos token.Pos
	EndPos   token.Pos
	Base     Expr
	Path     []JSONPathElem
}

func (*JSONAccess) exprNode()        {}
func (j *JSONAccess) Pos() token.Pos { return j.StartPos }
func (j *JSONAccess) End() token.Pos { return j.EndPos }

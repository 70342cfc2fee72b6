// Package machparse provides a high-performance SQL parser.
//
// machparse parses SQL under a selectable dialect (see package dialect:
// Generic, PostgreSQL, MySQL, Snowflake, Redshift, ClickHouse, BigQuery,
// MSSQL, SQLite, Hive); Parse and ParseAll use the generic dialect. It
// provides Parse, Walk, and Rewrite functionality similar to vitess-sqlparser.
//
// Basic usage:
//
//	stmt, err := machparse.Parse("SELECT * FROM users WHERE id = 1")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(machparse.String(stmt))
//
// Walking the AST:
//
//	machparse.Walk(stmt, func(node ast.Node) bool {
//	    if col, ok := node.(*ast.Identifier); ok {
//	        fmt.Printf("Found column: %s\n", col.Name())
//	    }
//	    return true
//	})
//
// Rewriting nodes:
//
//	rewritten := machparse.Rewrite(stmt, func(n ast.Node) ast.Node {
//	    // Transform nodes as needed
//	    return n
//	})
package machparse

import (
	"github.com/sirupsen/logrus"

	"github.com/freeeve/machparse/ast"
	"github.com/freeeve/machparse/dialect"
	"github.com/freeeve/machparse/format"
	"github.com/freeeve/machparse/parser"
	"github.com/freeeve/machparse/visitor"
)

// Parse parses a single SQL statement using the generic/ANSI dialect.
// The parser uses internal pooling for efficiency.
// For maximum performance when parsing many queries, call Repool(stmt)
// when done with the statement (optional, see Repool).
func Parse(sql string) (ast.Statement, error) {
	return ParseDialect(sql, dialect.Generic{})
}

// ParseDialect parses a single SQL statement under the given dialect, e.g.
// dialect.Postgres{}, dialect.MySQL{}, or dialect.Lookup("snowflake").
func ParseDialect(sql string, d dialect.Dialect) (ast.Statement, error) {
	p := parser.GetWithDialect(sql, d)
	stmt, err := p.Parse()
	parser.Put(p)
	return stmt, err
}

// ParseAll parses all statements in the input using the generic/ANSI dialect.
// For maximum performance, call Repool on each statement when done (optional).
func ParseAll(sql string) ([]ast.Statement, error) {
	return ParseAllDialect(sql, dialect.Generic{})
}

// ParseAllDialect parses all statements in the input under the given dialect.
func ParseAllDialect(sql string, d dialect.Dialect) ([]ast.Statement, error) {
	p := parser.GetWithDialect(sql, d)
	stmts, err := p.ParseAll()
	parser.Put(p)
	return stmts, err
}

// ParseDialectTraced is ParseDialect but logs statement-dispatch decisions
// to log at debug level, e.g. for diagnosing which dialect hook or grammar
// production handled a given statement. Pass logrus.NewEntry(logrus.New())
// for a default stderr logger.
func ParseDialectTraced(sql string, d dialect.Dialect, log *logrus.Entry) (ast.Statement, error) {
	p := parser.GetWithDialect(sql, d)
	p.SetLogger(log)
	stmt, err := p.Parse()
	parser.Put(p)
	return stmt, err
}

// Repool returns AST nodes to internal pools for reuse.
// This is optional - if not called, nodes are garbage collected normally.
// Calling Repool after you're done with a statement improves performance
// when parsing many queries by reducing allocations.
//
// Example:
//
//	stmt, err := machparse.Parse(sql)
//	if err != nil {
//	    return err
//	}
//	defer machparse.Repool(stmt)
//	// ... use stmt ...
func Repool(stmt Statement) {
	ast.ReleaseAST(stmt)
}

// NewIdent builds an unquoted identifier.
func NewIdent(value string) Ident {
	return ast.NewIdent(value)
}

// String formats an AST node back to SQL.
func String(node ast.Node) string {
	return format.String(node)
}

// Walk traverses the AST calling the function for each node.
// If the function returns false, children are not visited.
func Walk(node ast.Node, fn func(ast.Node) bool) {
	visitor.WalkFunc(node, fn)
}

// Rewrite traverses the AST allowing node replacement.
// The function is called in post-order (children first, then parent).
// Return the replacement node or the original to keep it.
func Rewrite(node ast.Node, fn func(ast.Node) ast.Node) ast.Node {
	return visitor.Rewrite(node, fn)
}

// Statement is the interface for all SQL statements.
type Statement = ast.Statement

// Expr is the interface for all expressions.
type Expr = ast.Expr

// Node is the base interface for all AST nodes.
type Node = ast.Node

// Common type aliases for convenience.
type (
	SelectStmt       = ast.SelectStmt
	InsertStmt       = ast.InsertStmt
	UpdateStmt       = ast.UpdateStmt
	DeleteStmt       = ast.DeleteStmt
	CreateTableStmt  = ast.CreateTableStmt
	AlterTableStmt   = ast.AlterTableStmt
	DropTableStmt    = ast.DropTableStmt
	CreateIndexStmt  = ast.CreateIndexStmt
	DropIndexStmt    = ast.DropIndexStmt
	TruncateStmt     = ast.TruncateStmt
	ExplainStmt      = ast.ExplainStmt
	ColName          = ast.ColName
	TableName        = ast.TableName
	Ident            = ast.Ident
	ObjectName       = ast.ObjectName
	Identifier       = ast.Identifier
	CompoundIdentifier = ast.CompoundIdentifier
	JSONAccess       = ast.JSONAccess
	SetOp            = ast.SetOp
	Literal          = ast.Literal
	BinaryExpr       = ast.BinaryExpr
	UnaryExpr        = ast.UnaryExpr
	FuncExpr         = ast.FuncExpr
	CaseExpr         = ast.CaseExpr
	CastExpr         = ast.CastExpr
	Subquery         = ast.Subquery
	JoinExpr         = ast.JoinExpr
	AliasedExpr      = ast.AliasedExpr
	AliasedTableExpr = ast.AliasedTableExpr
	StarExpr         = ast.StarExpr
	ParenExpr        = ast.ParenExpr
	InExpr           = ast.InExpr
	BetweenExpr      = ast.BetweenExpr
	LikeExpr         = ast.LikeExpr
	IsExpr           = ast.IsExpr
	ExistsExpr       = ast.ExistsExpr
	OrderByExpr      = ast.OrderByExpr
	Limit            = ast.Limit
	WithClause       = ast.WithClause
	CTE              = ast.CTE
)

// Join types
const (
	JoinInner = ast.JoinInner
	JoinLeft  = ast.JoinLeft
	JoinRight = ast.JoinRight
	JoinFull  = ast.JoinFull
	JoinCross = ast.JoinCross
)

// Literal types
const (
	LiteralNull   = ast.LiteralNull
	LiteralInt    = ast.LiteralInt
	LiteralFloat  = ast.LiteralFloat
	LiteralString = ast.LiteralString
	LiteralBool   = ast.LiteralBool
)

// Package dialect defines the capability-bundle strategy used to
// parameterize the tokenizer and parser for one SQL vendor's grammar:
// quoting rules, the reserved/unreserved partition of the shared keyword
// table, ~40 supports-X feature predicates, and hooks that let a dialect
// intercept precedence resolution, statement dispatch, or expression
// parsing before the default grammar runs.
//
// A dialect hook that does not want to claim a production returns its
// "not handled" zero value (false, or an empty result alongside false) so
// the parser falls through to its default behavior. No hook raises; every
// hook is a pure query against the current parser state.
package dialect

import (
	"github.com/freeeve/machparse/ast"
	"github.com/freeeve/machparse/token"
)

// ParserAPI is the subset of *parser.Parser's behavior exposed to dialect
// hooks. It exists so dialect implementations can live in their own
// package without the parser package importing back into dialect: parser
// depends on dialect, and *parser.Parser satisfies this interface
// structurally.
type ParserAPI interface {
	CurToken() token.Item
	PeekToken() token.Item
	Advance()
	CurIs(t token.Token) bool
	PeekIs(t token.Token) bool
	Expect(t token.Token) bool
	ParseExpr() ast.Expr
	ParseExprPrec(minPrec int) ast.Expr
	ParseSelect() ast.Statement
	Errorf(format string, args ...any)
}

// Dialect is a capability bundle for a parser/tokenizer. The parser calls
// the four hooks, SupportsRedshiftJSONPath and
// SupportsStringLiteralBackslashEscape; the quoting methods,
// IsReservedForIdentifier and the other feature predicates are not called
// by the parser or lexer. See package doc for the hook failure-mode contract.
type Dialect interface {
	// Name identifies the dialect for CLI/registry lookup, e.g. "postgres".
	Name() string

	// Quoting.
	IsIdentifierStart(c byte) bool
	IsIdentifierPart(c byte) bool
	IsDelimitedIdentifierStart(c byte) bool
	// IdentifierQuoteClose returns the closing delimiter for an opening
	// quote character this dialect recognizes, and whether it recognizes it.
	IdentifierQuoteClose(open byte) (byte, bool)

	// Reserved-word policy: true if keyword (already uppercased) cannot be
	// used as an unquoted identifier in this dialect.
	IsReservedForIdentifier(keyword string) bool

	// Feature predicates.
	SupportsStringLiteralBackslashEscape() bool
	SupportsFilterDuringAggregation() bool
	SupportsWindowClause() bool
	SupportsQualifyClause() bool
	SupportsMatchRecognize() bool
	SupportsTrailingCommas() bool
	SupportsGroupByExpr() bool
	SupportsGroupByAll() bool
	SupportsNumericLiteralUnderscores() bool
	SupportsDollarQuotedStrings() bool
	SupportsEscapeStringLiteral() bool // PostgreSQL E'...'
	SupportsNationalStringLiteral() bool
	SupportsHexStringLiteral() bool
	SupportsArrayLiterals() bool
	SupportsArraySubscript() bool
	SupportsJSONOperators() bool
	SupportsRedshiftJSONPath() bool
	SupportsILike() bool
	SupportsSimilarTo() bool
	SupportsUnsignedIntegers() bool
	SupportsUserVariables() bool
	SupportsHashComments() bool
	SupportsCreateTableLikeClause() bool
	SupportsCreateTableCloneClause() bool
	SupportsVolatileTables() bool
	SupportsIcebergTables() bool
	SupportsIndexHints() bool
	SupportsLimitCommaSyntax() bool
	SupportsLimitFetchClause() bool
	SupportsOnDuplicateKeyUpdate() bool
	SupportsOnConflict() bool
	SupportsReturningClause() bool
	SupportsBracketedIdentifiers() bool
	SupportsBacktickIdentifiers() bool
	SupportsDoubleQuotedIdentifiers() bool
	SupportsColumnAliasListInTableAlias() bool
	SupportsNamedWindows() bool
	SupportsLateralDerivedTables() bool
	SupportsSemiAntiJoin() bool
	SupportsTopClause() bool // MSSQL SELECT TOP n
	SupportsOuterJoinOperator() bool // Oracle/MSSQL (+) style - not implemented, predicate only
	SupportsNestedBlockComments() bool

	// Precedence hook: a dialect may override operator precedence or
	// recognize a new infix operator before the default table runs.
	GetNextPrecedence(p ParserAPI) (level int, handled bool)

	// Statement hook: a dialect may claim a leading keyword and produce a
	// fully custom statement before the default dispatch switch runs.
	ParseStatement(p ParserAPI) (stmt ast.Statement, handled bool)

	// Prefix/infix expression hooks: analogous intercepts for expression
	// parsing, consulted before the default prefix/infix productions.
	ParsePrefix(p ParserAPI) (expr ast.Expr, handled bool)
	ParseInfix(p ParserAPI, left ast.Expr, prec int) (expr ast.Expr, handled bool)
}

// BaseDialect supplies conservative, ANSI-ish defaults for every predicate
// and a neutral ("not handled") response for every hook. Concrete dialects
// embed BaseDialect and override only what differs, per the "keep HOW,
// replace WHAT" strategy of generalizing one flagship grammar into many.
type BaseDialect struct{}

func (BaseDialect) IsIdentifierStart(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || c >= 0x80
}

func (BaseDialect) IsIdentifierPart(c byte) bool {
	return BaseDialect{}.IsIdentifierStart(c) || (c >= '0' && c <= '9') || c == '$'
}

func (BaseDialect) IsDelimitedIdentifierStart(c byte) bool {
	return c == '"'
}

func (BaseDialect) IdentifierQuoteClose(open byte) (byte, bool) {
	if open == '"' {
		return '"', true
	}
	return 0, false
}

func (BaseDialect) IsReservedForIdentifier(keyword string) bool {
	return isBaseReserved(keyword)
}

func (BaseDialect) SupportsStringLiteralBackslashEscape() bool  { return false }
func (BaseDialect) SupportsFilterDuringAggregation() bool       { return true }
func (BaseDialect) SupportsWindowClause() bool                  { return true }
func (BaseDialect) SupportsQualifyClause() bool                 { return false }
func (BaseDialect) SupportsMatchRecognize() bool                { return false }
func (BaseDialect) SupportsTrailingCommas() bool                { return false }
func (BaseDialect) SupportsGroupByExpr() bool                   { return true }
func (BaseDialect) SupportsGroupByAll() bool                    { return false }
func (BaseDialect) SupportsNumericLiteralUnderscores() bool     { return false }
func (BaseDialect) SupportsDollarQuotedStrings() bool           { return false }
func (BaseDialect) SupportsEscapeStringLiteral() bool           { return false }
func (BaseDialect) SupportsNationalStringLiteral() bool         { return true }
func (BaseDialect) SupportsHexStringLiteral() bool              { return true }
func (BaseDialect) SupportsArrayLiterals() bool                 { return false }
func (BaseDialect) SupportsArraySubscript() bool                { return false }
func (BaseDialect) SupportsJSONOperators() bool                 { return false }
func (BaseDialect) SupportsRedshiftJSONPath() bool              { return false }
func (BaseDialect) SupportsILike() bool                         { return false }
func (BaseDialect) SupportsSimilarTo() bool                     { return true }
func (BaseDialect) SupportsUnsignedIntegers() bool              { return false }
func (BaseDialect) SupportsUserVariables() bool                 { return false }
func (BaseDialect) SupportsHashComments() bool                  { return false }
func (BaseDialect) SupportsCreateTableLikeClause() bool         { return true }
func (BaseDialect) SupportsCreateTableCloneClause() bool        { return false }
func (BaseDialect) SupportsVolatileTables() bool                { return false }
func (BaseDialect) SupportsIcebergTables() bool                 { return false }
func (BaseDialect) SupportsIndexHints() bool                    { return false }
func (BaseDialect) SupportsLimitCommaSyntax() bool               { return false }
func (BaseDialect) SupportsLimitFetchClause() bool              { return true }
func (BaseDialect) SupportsOnDuplicateKeyUpdate() bool          { return false }
func (BaseDialect) SupportsOnConflict() bool                    { return false }
func (BaseDialect) SupportsReturningClause() bool               { return false }
func (BaseDialect) SupportsBracketedIdentifiers() bool          { return false }
func (BaseDialect) SupportsBacktickIdentifiers() bool           { return false }
func (BaseDialect) SupportsDoubleQuotedIdentifiers() bool       { return true }
func (BaseDialect) SupportsColumnAliasListInTableAlias() bool   { return true }
func (BaseDialect) SupportsNamedWindows() bool                  { return true }
func (BaseDialect) SupportsLateralDerivedTables() bool          { return false }
func (BaseDialect) SupportsSemiAntiJoin() bool                  { return false }
func (BaseDialect) SupportsTopClause() bool                     { return false }
func (BaseDialect) SupportsOuterJoinOperator() bool             { return false }
func (BaseDialect) SupportsNestedBlockComments() bool           { return false }

func (BaseDialect) GetNextPrecedence(ParserAPI) (int, bool)               { return 0, false }
func (BaseDialect) ParseStatement(ParserAPI) (ast.Statement, bool)        { return nil, false }
func (BaseDialect) ParsePrefix(ParserAPI) (ast.Expr, bool)                { return nil, false }
func (BaseDialect) ParseInfix(ParserAPI, ast.Expr, int) (ast.Expr, bool)  { return nil, false }

// Registry maps lowercase dialect names to instances, for the CLI demo
// driver and tests that select a dialect by name.
var Registry = map[string]Dialect{
	"generic":    Generic{},
	"ansi":       Generic{},
	"postgres":   Postgres{},
	"postgresql": Postgres{},
	"mysql":      MySQL{},
	"snowflake":  Snowflake{},
	"redshift":   Redshift{},
	"clickhouse": ClickHouse{},
	"bigquery":   BigQuery{},
	"mssql":      MSSQL{},
	"sqlserver":  MSSQL{},
	"sqlite":     SQLite{},
	"hive":       Hive{},
}

// Lookup returns the registered dialect for name (case-insensitive), and
// Generic{} if the name is unknown.
func Lookup(name string) Dialect {
	if d, ok := Registry[lower(name)]; ok {
		return d
	}
	return Generic{}
}

func lower(s string) string {
	b := make([]byte, len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c >= 'A' && c <= 'Z' {
			c += 'a' - 'A'
		}
		b[i] = c
	}
	return string(b)
}

package machparse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/freeeve/machparse/ast"
	"github.com/freeeve/machparse/dialect"
)

// TestScenarioS1RedshiftBracketQuoting covers spec scenario S1: bracketed
// identifiers under Redshift round-trip byte-for-byte and parse as
// bracket-quoted idents, not a dialect-specific array syntax.
func TestScenarioS1RedshiftBracketQuoting(t *testing.T) {
	src := "SELECT [col1] FROM [test_schema].[test_table]"
	stmt, err := ParseDialect(src, dialect.Redshift{})
	require.NoError(t, err)

	sel, ok := stmt.(*SelectStmt)
	require.True(t, ok)
	require.Len(t, sel.Columns, 1)

	aliased, ok := sel.Columns[0].(*AliasedExpr)
	require.True(t, ok)
	ident, ok := aliased.Expr.(*Identifier)
	require.True(t, ok)
	assert.Equal(t, "col1", ident.Name())
	assert.Equal(t, ast.BracketQuote, ident.Ident.QuoteStyle)

	table, ok := sel.From.(*TableName)
	require.True(t, ok)
	require.Len(t, table.Parts, 2)
	assert.Equal(t, "test_schema", table.Parts[0].Value)
	assert.Equal(t, "test_table", table.Parts[1].Value)
	assert.Equal(t, ast.BracketQuote, table.Parts[0].QuoteStyle)
	assert.Equal(t, ast.BracketQuote, table.Parts[1].QuoteStyle)

	assert.Equal(t, src, String(stmt))
}

// TestScenarioS2RedshiftJSONPath covers spec scenario S2: a JSON path chain
// rooted at a compound identifier in the projection list.
func TestScenarioS2RedshiftJSONPath(t *testing.T) {
	src := "SELECT cust.c_orders[0].o_orderkey FROM customer_orders_lineitem"
	stmt, err := ParseDialect(src, dialect.Redshift{})
	require.NoError(t, err)

	sel := stmt.(*SelectStmt)
	require.Len(t, sel.Columns, 1)
	aliased := sel.Columns[0].(*AliasedExpr)
	access, ok := aliased.Expr.(*JSONAccess)
	require.True(t, ok)

	base, ok := access.Base.(*CompoundIdentifier)
	require.True(t, ok)
	assert.Equal(t, "cust", base.Parts[0].Value)
	assert.Equal(t, "c_orders", base.Parts[1].Value)

	require.Len(t, access.Path, 2)
	bracket, ok := access.Path[0].(ast.JSONPathBracket)
	require.True(t, ok)
	lit, ok := bracket.Index.(*Literal)
	require.True(t, ok)
	assert.Equal(t, "0", lit.Value)
	dot, ok := access.Path[1].(ast.JSONPathDot)
	require.True(t, ok)
	assert.Equal(t, "o_orderkey", dot.Name)
}

// TestScenarioS3RedshiftJSONPathInFrom covers spec scenario S3: a JSON path
// suffix attached to a table factor in the FROM clause.
func TestScenarioS3RedshiftJSONPathInFrom(t *testing.T) {
	src := "SELECT * FROM src[0].a AS a"
	stmt, err := ParseDialect(src, dialect.Redshift{})
	require.NoError(t, err)

	sel := stmt.(*SelectStmt)
	aliasedTable, ok := sel.From.(*AliasedTableExpr)
	require.True(t, ok)
	assert.Equal(t, "a", aliasedTable.Alias)

	table, ok := aliasedTable.Expr.(*TableName)
	require.True(t, ok)
	assert.Equal(t, "src", table.Name())
	require.Len(t, table.JSONPath, 2)
	_, isBracket := table.JSONPath[0].(ast.JSONPathBracket)
	assert.True(t, isBracket)
	dot, isDot := table.JSONPath[1].(ast.JSONPathDot)
	require.True(t, isDot)
	assert.Equal(t, "a", dot.Name)
}

// TestScenarioS4CreateTableBuilder covers spec scenario S4: a builder with
// IfNotExists and a single column serializes to the minimal expected form.
func TestScenarioS4CreateTableBuilder(t *testing.T) {
	stmt, err := ast.NewCreateTableBuilder(&ast.TableName{Parts: []ast.Ident{ast.NewIdent("table_name")}}).
		IfNotExists(true).
		Columns([]*ast.ColumnDef{{Name: "c1", Type: &ast.DataType{Name: "INT"}}}).
		Build()
	require.NoError(t, err)

	assert.Equal(t, "CREATE TABLE IF NOT EXISTS table_name (c1 INT)", String(stmt))
}

// TestScenarioS5CreateTableBuilderValidation covers spec scenario S5: a
// builder built from a non-CREATE-TABLE statement fails with a message
// naming the expected statement type.
func TestScenarioS5CreateTableBuilderValidation(t *testing.T) {
	_, err := ast.NewCreateTableBuilderFromStatement(&ast.SelectStmt{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Expected create table statement")
}

// TestScenarioS6AlterTableDropConstraintCascade covers spec scenario S6:
// ALTER TABLE ... DROP CONSTRAINT IF EXISTS ... CASCADE round-trips with an
// explicit (not merely truthy) drop behavior.
func TestScenarioS6AlterTableDropConstraintCascade(t *testing.T) {
	src := "ALTER TABLE t DROP CONSTRAINT IF EXISTS c CASCADE"
	stmt, err := Parse(src)
	require.NoError(t, err)

	alter, ok := stmt.(*AlterTableStmt)
	require.True(t, ok)
	require.Len(t, alter.Actions, 1)
	drop, ok := alter.Actions[0].(*ast.DropConstraint)
	require.True(t, ok)
	assert.True(t, drop.IfExists)
	assert.Equal(t, "c", drop.Name)
	assert.Equal(t, ast.DropCascade, drop.Behavior)

	assert.Equal(t, src, String(stmt))
}

// TestScenarioS6AlterTableDropConstraintRestrictIsDistinct confirms RESTRICT
// and "unspecified" don't collapse into the same boolean the way a bare
// Cascade bool would have.
func TestScenarioS6AlterTableDropConstraintRestrictIsDistinct(t *testing.T) {
	restrict, err := Parse("ALTER TABLE t DROP CONSTRAINT c RESTRICT")
	require.NoError(t, err)
	unspecified, err := Parse("ALTER TABLE t DROP CONSTRAINT c")
	require.NoError(t, err)

	restrictAction := restrict.(*AlterTableStmt).Actions[0].(*ast.DropConstraint)
	unspecifiedAction := unspecified.(*AlterTableStmt).Actions[0].(*ast.DropConstraint)

	assert.Equal(t, ast.DropRestrict, restrictAction.Behavior)
	assert.Equal(t, ast.DropBehaviorUnspecified, unspecifiedAction.Behavior)
	assert.NotEqual(t, restrictAction.Behavior, unspecifiedAction.Behavior)
}

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/freeeve/machparse"
	"github.com/freeeve/machparse/dialect"
)

var formatCmd = &cobra.Command{
	Use:   "format [file]",
	Short: "parse SQL and print it back out, formatted",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runFormat,
}

func runFormat(cmd *cobra.Command, args []string) error {
	sql, err := readSource(args)
	if err != nil {
		return err
	}
	d := dialect.Lookup(dialectName)
	log := configureLogger()
	stmts, err := machparse.ParseAllDialect(sql, d)
	if err != nil {
		return err
	}
	for _, stmt := range stmts {
		fmt.Println(machparse.String(stmt) + ";")
	}
	log.Debugf("formatted %d statement(s) under dialect %q", len(stmts), dialectName)
	return nil
}

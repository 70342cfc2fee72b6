package main

import (
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/repr"
	"github.com/spf13/cobra"

	"github.com/freeeve/machparse"
	"github.com/freeeve/machparse/dialect"
)

var parseCmd = &cobra.Command{
	Use:   "parse [file]",
	Short: "parse SQL and dump the resulting AST",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runParse,
}

func runParse(cmd *cobra.Command, args []string) error {
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
		repr.Println(stmt)
	}
	log.Debugf("parsed %d statement(s) under dialect %q", len(stmts), dialectName)
	return nil
}

func readSource(args []string) (string, error) {
	var r io.Reader = os.Stdin
	if len(args) == 1 {
		f, err := os.Open(args[0])
		if err != nil {
			return "", fmt.Errorf("open %s: %w", args[0], err)
		}
		defer f.Close()
		r = f
	}
	b, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("read input: %w", err)
	}
	return string(b), nil
}

// Command machparse is a small demo driver over the machparse library: it
// parses SQL from stdin or a file under a chosen dialect and either prints
// the AST or round-trips it back to formatted SQL.
package main

import "os"

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

package main

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var (
	dialectName string
	verbose     bool

	log = logrus.New()

	rootCmd = &cobra.Command{
		Use:          "machparse",
		Short:        "machparse",
		Long:         "machparse parses and formats SQL across multiple dialects.",
		SilenceUsage: true,
	}
)

func init() {
	flags := rootCmd.PersistentFlags()
	registerCommonFlags(flags)
	rootCmd.AddCommand(parseCmd, formatCmd)
}

func registerCommonFlags(flags *pflag.FlagSet) {
	flags.StringVarP(&dialectName, "dialect", "d", "generic",
		"SQL dialect: generic, postgres, mysql, snowflake, redshift, clickhouse, bigquery, mssql, sqlite, hive")
	flags.BoolVarP(&verbose, "verbose", "v", false, "log a debug summary line (statement count, dialect) to stderr")
}

func configureLogger() *logrus.Entry {
	log.SetLevel(logrus.InfoLevel)
	if verbose {
		log.SetLevel(logrus.DebugLevel)
	}
	return logrus.NewEntry(log)
}

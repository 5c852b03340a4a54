// Command arff2sql converts an ARFF dataset into a relational schema plus
// insertion statements, streamed as SQL text or materialized as a SQLite
// database or workbook.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/darianmavgo/arff2sql/arff"
	"github.com/darianmavgo/arff2sql/config"
	"github.com/darianmavgo/arff2sql/formatters"
	_ "github.com/darianmavgo/arff2sql/formatters/all"
)

// Version is set at build time.
var Version = "0.1.0"

var (
	outputPath  string
	formatName  string
	dialectPath string
	verbose     bool
)

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "arff2sql <dataset.arff>",
		Short: "Convert an ARFF dataset to SQL",
		Long: `arff2sql reads an ARFF dataset description and emits a CREATE TABLE
statement followed by one INSERT per data row. Alternate targets write a
SQLite database or an xlsx workbook instead of SQL text.`,
		Version:       Version,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(args[0])
		},
	}

	rootCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file (default: stdout)")
	rootCmd.Flags().StringVarP(&formatName, "format", "f", "sql", "Output format (sql|sqlite|xlsx)")
	rootCmd.Flags().StringVar(&dialectPath, "dialect", "", "Dialect HCL file (default: built-in mysql dialect)")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")

	rootCmd.AddCommand(newDialectCmd())
	rootCmd.AddCommand(newFormatsCmd())

	return rootCmd
}

func runConvert(inputPath string) error {
	dialect, err := loadDialect()
	if err != nil {
		return err
	}

	input, err := os.Open(inputPath)
	if err != nil {
		return fmt.Errorf("cannot read file %s: %w", inputPath, err)
	}
	defer input.Close()

	var writer io.Writer
	if outputPath != "" {
		out, err := os.Create(outputPath)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer out.Close()
		writer = out
	} else {
		if formatName == "xlsx" {
			return fmt.Errorf("format %s requires -o, it cannot stream to stdout", formatName)
		}
		writer = os.Stdout
	}

	formatter, err := formatters.Open(formatName, writer, dialect)
	if err != nil {
		return fmt.Errorf("failed to initialize formatter: %w", err)
	}

	if err := arff.Parse(input, formatter, &arff.Options{Verbose: verbose}); err != nil {
		formatter.Close()
		return err
	}
	return formatter.Close()
}

// loadDialect resolves the dialect: an explicit file wins, otherwise the
// format picks its built-in default.
func loadDialect() (*config.Dialect, error) {
	if dialectPath != "" {
		return config.Load(dialectPath)
	}
	if formatName == "sqlite" {
		return config.SQLiteDialect(), nil
	}
	return config.DefaultDialect(), nil
}

func newDialectCmd() *cobra.Command {
	dialectCmd := &cobra.Command{
		Use:   "dialect",
		Short: "Manage dialect configuration files",
	}
	dialectCmd.AddCommand(&cobra.Command{
		Use:   "init [path]",
		Short: "Write the default dialect to an HCL file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "arff2sql.hcl"
			if len(args) > 0 {
				path = args[0]
			}
			if err := config.Export(path, config.DefaultDialect()); err != nil {
				return err
			}
			fmt.Printf("Wrote default dialect to %s\n", path)
			return nil
		},
	})
	return dialectCmd
}

func newFormatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "formats",
		Short: "List the registered output formats",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range formatters.Drivers() {
				fmt.Println(name)
			}
			return nil
		},
	}
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

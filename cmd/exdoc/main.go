// Command exdoc collects documentation from a Go package and prints it as
// JSON or YAML, ready to feed a template renderer.
package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"reflect"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/example/exdoc"
	"github.com/example/exdoc/gosource"
)

var (
	inputDir   string
	outputFile string
	format     string
	verbose    bool
)

var rootCmd = &cobra.Command{
	Use:   "exdoc [name...]",
	Short: "Extract structured documentation from a Go package",
	Long: `Parses a Go package directory and prints documentation for the named
objects (functions, types, Type.Method, Type.Field, or the package itself)
as one JSON or YAML mapping. With no names, every exported top-level
object is documented.`,
	RunE: run,
}

func init() {
	rootCmd.Flags().StringVarP(&inputDir, "input", "i", ".", "Package directory to parse")
	rootCmd.Flags().StringVarP(&outputFile, "output", "o", "-", "Output file path, - for stdout")
	rootCmd.Flags().StringVarP(&format, "format", "f", "json", "Output format (json or yaml)")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
}

func run(cmd *cobra.Command, args []string) error {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	pkg, err := gosource.Load(inputDir)
	if err != nil {
		return err
	}

	names := args
	if len(names) == 0 {
		for _, name := range pkg.Names() {
			if exdoc.Exported(name, reflect.Value{}) {
				names = append(names, name)
			}
		}
	}

	docs := make(map[string]*exdoc.ObjectDoc, len(names))
	for _, name := range names {
		doc, err := pkg.Doc(name)
		if err != nil {
			return err
		}
		docs[name] = doc
		slog.Debug("documented", "name", name, "signature", doc.Signature)
	}

	data, err := encode(docs)
	if err != nil {
		return err
	}

	if outputFile == "-" || outputFile == "" {
		_, err = os.Stdout.Write(data)
		return err
	}
	return os.WriteFile(outputFile, data, 0o644)
}

func encode(docs map[string]*exdoc.ObjectDoc) ([]byte, error) {
	switch format {
	case "json":
		data, err := json.MarshalIndent(docs, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("failed to encode JSON: %w", err)
		}
		return append(data, '\n'), nil
	case "yaml", "yml":
		data, err := yaml.Marshal(docs)
		if err != nil {
			return nil, fmt.Errorf("failed to encode YAML: %w", err)
		}
		return data, nil
	default:
		return nil, fmt.Errorf("unsupported format: %s (expected json or yaml)", format)
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

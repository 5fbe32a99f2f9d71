package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/schemalattice/subschema"
	"github.com/schemalattice/subschema/internal/ontology"
	"github.com/schemalattice/subschema/semantic"
)

// config holds the parsed flag values for a single invocation.
type config struct {
	ontologyPath string
	triOutput    bool
	format       string
}

// falseResultError is returned by runner functions to request the "does
// not hold" exit code without printing an error message — the caller has
// already written any diagnostics to stderr and, with --tri, the
// tri-valued result (Yes/No/Unknown) to stdout. The boolean CLI surface
// collapses Unknown into this same
// exit code, matching the façade's own Unknown-to-false collapse; a
// resolver that answered Unknown is still visible via the accompanying
// "resolver-unknown" diagnostic and the --tri flag.
type falseResultError struct{}

func (falseResultError) Error() string { return "" }

// exitCodeFor maps an error returned by Execute to a process exit code:
// 0 the decision holds, 1 it does not hold (including an Unknown
// collapsed to false), 2 the input itself was invalid (a malformed
// schema, an unresolved $ref, an unreadable file), 3 the query needed a
// construct this system cannot decide exactly (*UnsupportedError).
func exitCodeFor(err error) int {
	switch {
	case err == nil:
		return 0
	case isFalseResult(err):
		return 1
	case isUnsupported(err):
		return 3
	default:
		return 2
	}
}

func isFalseResult(err error) bool {
	_, ok := err.(falseResultError)
	return ok
}

func isUnsupported(err error) bool {
	var unsupported *subschema.UnsupportedError
	return errors.As(err, &unsupported)
}

func newRootCmd() *cobra.Command {
	cfg := &config{format: "text"}

	root := &cobra.Command{
		Use:           "subschemacheck",
		Short:         "Decide subtype, meet, join, and equivalence between JSON Schema documents",
		SilenceErrors: true,
		SilenceUsage:  true,
	}
	root.PersistentFlags().StringVar(&cfg.ontologyPath, "ontology", "", "path to a YAML ontology fixture (defaults to the built-in quantitykind graph)")
	root.PersistentFlags().BoolVar(&cfg.triOutput, "tri", false, "print Yes/No/Unknown instead of using exit codes alone")
	root.PersistentFlags().StringVar(&cfg.format, "format", "text", "output format for meet/join: text or json")

	root.AddCommand(newSubtypeCmd(cfg))
	root.AddCommand(newMeetCmd(cfg))
	root.AddCommand(newJoinCmd(cfg))
	root.AddCommand(newEquivalentCmd(cfg))
	return root
}

func (cfg *config) resolver() (semantic.Resolver, error) {
	if cfg.ontologyPath == "" {
		return ontology.LoadBuiltin()
	}
	data, err := os.ReadFile(cfg.ontologyPath)
	if err != nil {
		return nil, fmt.Errorf("reading ontology file: %w", err)
	}
	var f ontology.Fixture
	if err := loadYAMLFixture(data, &f); err != nil {
		return nil, fmt.Errorf("parsing ontology file: %w", err)
	}
	return ontology.NewGraph(f), nil
}

func (cfg *config) checker() (*subschema.Checker, error) {
	r, err := cfg.resolver()
	if err != nil {
		return nil, err
	}
	return subschema.NewChecker(r), nil
}

func readSchema(path string) (*subschema.Schema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	s, err := subschema.ParseSchema(data)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return s, nil
}

package main

import (
	"fmt"
	"os"

	"github.com/goccy/go-json"
	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"

	"github.com/schemalattice/subschema"
	"github.com/schemalattice/subschema/semantic"
)

func loadYAMLFixture(data []byte, out any) error {
	return yaml.Unmarshal(data, out)
}

func newSubtypeCmd(cfg *config) *cobra.Command {
	return &cobra.Command{
		Use:   "subtype <schema1> <schema2>",
		Short: "Decide whether schema1 is a subtype of schema2",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTriDecision(cfg, args[0], args[1], func(c *subschema.Checker, s1, s2 *subschema.Schema) (subschema.Result, error) {
				return c.IsSubschema(s1, s2)
			})
		},
	}
}

func newEquivalentCmd(cfg *config) *cobra.Command {
	return &cobra.Command{
		Use:   "equivalent <schema1> <schema2>",
		Short: "Decide whether schema1 and schema2 are equivalent",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTriDecision(cfg, args[0], args[1], func(c *subschema.Checker, s1, s2 *subschema.Schema) (subschema.Result, error) {
				return c.IsEquivalent(s1, s2)
			})
		},
	}
}

func runTriDecision(cfg *config, path1, path2 string, decide func(*subschema.Checker, *subschema.Schema, *subschema.Schema) (subschema.Result, error)) error {
	c, err := cfg.checker()
	if err != nil {
		return err
	}
	s1, err := readSchema(path1)
	if err != nil {
		return err
	}
	s2, err := readSchema(path2)
	if err != nil {
		return err
	}
	result, err := decide(c, s1, s2)
	if err != nil {
		return err
	}

	printDiagnostics(result.Diagnostics)
	if cfg.triOutput {
		fmt.Println(result.Tri.String())
	}

	if result.Tri == semantic.Yes {
		return nil
	}
	return falseResultError{}
}

func newMeetCmd(cfg *config) *cobra.Command {
	return &cobra.Command{
		Use:   "meet <schema1> <schema2>",
		Short: "Print the canonical meet (intersection) of two schemas",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCombine(cfg, args[0], args[1], func(c *subschema.Checker, s1, s2 *subschema.Schema) (*subschema.Atoms, []subschema.Diagnostic, error) {
				return c.Meet(s1, s2)
			})
		},
	}
}

func newJoinCmd(cfg *config) *cobra.Command {
	return &cobra.Command{
		Use:   "join <schema1> <schema2>",
		Short: "Print the canonical join (union) of two schemas",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCombine(cfg, args[0], args[1], func(c *subschema.Checker, s1, s2 *subschema.Schema) (*subschema.Atoms, []subschema.Diagnostic, error) {
				return c.Join(s1, s2)
			})
		},
	}
}

func runCombine(cfg *config, path1, path2 string, combine func(*subschema.Checker, *subschema.Schema, *subschema.Schema) (*subschema.Atoms, []subschema.Diagnostic, error)) error {
	c, err := cfg.checker()
	if err != nil {
		return err
	}
	s1, err := readSchema(path1)
	if err != nil {
		return err
	}
	s2, err := readSchema(path2)
	if err != nil {
		return err
	}
	result, diags, err := combine(c, s1, s2)
	if err != nil {
		return err
	}
	printDiagnostics(diags)

	if cfg.format == "json" {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(summarizeAtoms(result))
	}
	fmt.Println(describeAtoms(result))
	return nil
}

func printDiagnostics(diags []subschema.Diagnostic) {
	for _, d := range diags {
		fmt.Fprintf(os.Stderr, "warning: %s: %s\n", d.Kind, d.Message)
	}
}

// summarizeAtoms produces a JSON-friendly view of a canonical schema: one
// entry per disjunct naming its base kind.
func summarizeAtoms(a *subschema.Atoms) map[string]any {
	kinds := make([]string, 0, len(a.Disjuncts))
	for _, d := range a.Disjuncts {
		kinds = append(kinds, d.Kind.String())
	}
	return map[string]any{
		"bottom":    a.IsBottom(),
		"disjuncts": len(a.Disjuncts),
		"kinds":     kinds,
	}
}

func describeAtoms(a *subschema.Atoms) string {
	if a.IsBottom() {
		return "⊥ (no value satisfies this schema)"
	}
	kinds := make([]string, 0, len(a.Disjuncts))
	for _, d := range a.Disjuncts {
		kinds = append(kinds, d.Kind.String())
	}
	return fmt.Sprintf("%d disjunct(s): %v", len(a.Disjuncts), kinds)
}

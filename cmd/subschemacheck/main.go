// Command subschemacheck compares two JSON Schema documents from the
// command line and reports whether the first is a subtype of the second,
// or prints their meet/join, under an optional semantic-type ontology.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		if err.Error() != "" {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(exitCodeFor(err))
	}
}

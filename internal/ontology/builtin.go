package ontology

import (
	_ "embed"

	"github.com/goccy/go-yaml"
)

//go:embed builtin.yaml
var builtinFixture []byte

// LoadBuiltin parses the fixture shipped with this package (a small
// quantity-kind hierarchy, matching the sort of unit ontology a schema's
// "stype" annotation would point into) and builds a Graph from it.
func LoadBuiltin() (*Graph, error) {
	var f Fixture
	if err := yaml.Unmarshal(builtinFixture, &f); err != nil {
		return nil, err
	}
	return NewGraph(f), nil
}

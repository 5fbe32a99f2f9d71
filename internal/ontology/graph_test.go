package ontology

import (
	"testing"

	"github.com/schemalattice/subschema/semantic"
)

func TestBuiltinTransitiveClosure(t *testing.T) {
	g, err := LoadBuiltin()
	if err != nil {
		t.Fatalf("LoadBuiltin: %v", err)
	}

	celsius := g.Normalize("qk:Celsius")
	quantity := g.Normalize("qk:Quantity")
	if g.IsSubconcept(celsius, quantity) != semantic.Yes {
		t.Errorf("expected Celsius to transitively subsume under Quantity")
	}

	mass := g.Normalize("qk:Mass")
	if g.IsSubconcept(celsius, mass) != semantic.No {
		t.Errorf("expected Celsius and Mass to be unrelated")
	}

	unknown := g.Normalize("qk:NotInGraph")
	if g.IsSubconcept(unknown, quantity) != semantic.Unknown {
		t.Errorf("expected an unseen concept to answer Unknown")
	}
}

func TestPrefixExpansion(t *testing.T) {
	g, err := LoadBuiltin()
	if err != nil {
		t.Fatalf("LoadBuiltin: %v", err)
	}
	full := g.Normalize("https://schemalattice.example/quantitykind#Celsius")
	short := g.Normalize("qk:Celsius")
	if full != short {
		t.Errorf("expected compact and full IRI forms to normalize identically, got %q vs %q", short, full)
	}
}

// Package semantic defines the pluggable ontology-subsumption oracle that
// the subtype driver consults for the "stype" annotation, and the
// three-valued logic shared between the resolver contract and the
// driver's Kleene combinators.
package semantic

// Tri is a three-valued logic result: Yes, No, or Unknown. Kernels and the
// resolver both return Tri so the driver can combine partial information
// with Kleene (strong) logic instead of collapsing "don't know" into
// "false" before combination.
type Tri int

const (
	// Unknown means the decision cannot be made from available information
	// (e.g. the resolver has no opinion on a concept pair).
	Unknown Tri = iota
	// Yes means the decision holds.
	Yes
	// No means the decision does not hold.
	No
)

func (t Tri) String() string {
	switch t {
	case Yes:
		return "yes"
	case No:
		return "no"
	default:
		return "unknown"
	}
}

// Bool converts Tri to a plain bool, treating Unknown as false — the
// conservative collapse applied wherever a caller wants a plain boolean
// instead of the full three-valued result.
func (t Tri) Bool() bool { return t == Yes }

// FromBool lifts a plain bool into Tri.
func FromBool(b bool) Tri {
	if b {
		return Yes
	}
	return No
}

// And is Kleene conjunction: No dominates, then Unknown, then Yes.
func And(a, b Tri) Tri {
	if a == No || b == No {
		return No
	}
	if a == Unknown || b == Unknown {
		return Unknown
	}
	return Yes
}

// Or is Kleene disjunction: Yes dominates, then Unknown, then No.
func Or(a, b Tri) Tri {
	if a == Yes || b == Yes {
		return Yes
	}
	if a == Unknown || b == Unknown {
		return Unknown
	}
	return No
}

// AndAll folds And across a slice, short-circuiting on the first No.
func AndAll(ts ...Tri) Tri {
	result := Yes
	for _, t := range ts {
		result = And(result, t)
		if result == No {
			return No
		}
	}
	return result
}

// OrAll folds Or across a slice, short-circuiting on the first Yes.
func OrAll(ts ...Tri) Tri {
	result := No
	for _, t := range ts {
		result = Or(result, t)
		if result == Yes {
			return Yes
		}
	}
	return result
}

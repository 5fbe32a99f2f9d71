package pattern

import "testing"

func mustCompile(t *testing.T, expr string) *Pattern {
	t.Helper()
	p, err := Compile(expr)
	if err != nil {
		t.Fatalf("Compile(%q): %v", expr, err)
	}
	return p
}

func TestContainsNarrowerCharClass(t *testing.T) {
	broad := mustCompile(t, "[a-z]+")
	narrow := mustCompile(t, "[a-m]+")
	if !Contains(narrow, broad) {
		t.Errorf("expected [a-m]+ contained in [a-z]+")
	}
	if Contains(broad, narrow) {
		t.Errorf("did not expect [a-z]+ contained in [a-m]+")
	}
}

func TestEqualDifferentSyntax(t *testing.T) {
	p := mustCompile(t, "a(b|c)d")
	q := mustCompile(t, "ab?d") // not equal: missing the "c" branch entirely differs
	if Equal(p, q) {
		t.Errorf("ab?d should not equal a(b|c)d")
	}

	r := mustCompile(t, "(ab|ac)d")
	if !Equal(p, r) {
		t.Errorf("a(b|c)d should equal (ab|ac)d")
	}
}

func TestIntersectionEmpty(t *testing.T) {
	digits := mustCompile(t, "[0-9]+")
	letters := mustCompile(t, "[a-z]+")
	if !IntersectionEmpty(digits, letters) {
		t.Errorf("expected disjoint languages")
	}

	mixed := mustCompile(t, "[a-z0-9]+")
	if IntersectionEmpty(digits, mixed) {
		t.Errorf("expected non-empty intersection")
	}
}

func TestUnionEmpty(t *testing.T) {
	nothing := mustCompile(t, "[^\x00-\U0010FFFF]")
	other := mustCompile(t, "x")
	if !UnionEmpty(nothing, nothing) {
		t.Errorf("expected both-empty union to be empty")
	}
	if UnionEmpty(nothing, other) {
		t.Errorf("expected union with a non-empty pattern to be non-empty")
	}
}

func TestEmpty(t *testing.T) {
	p := mustCompile(t, "abc")
	if p.Empty() {
		t.Errorf("abc should not be empty")
	}
}

func TestUnsupportedWordBoundary(t *testing.T) {
	_, err := Compile(`\bfoo\b`)
	if err == nil {
		t.Fatalf("expected an error for word-boundary anchors")
	}
	if _, ok := err.(*UnsupportedPatternError); !ok {
		t.Errorf("expected *UnsupportedPatternError, got %T: %v", err, err)
	}
}

func TestStarContainment(t *testing.T) {
	star := mustCompile(t, "a*")
	plus := mustCompile(t, "a+")
	if !Contains(plus, star) {
		t.Errorf("a+ should be contained in a*")
	}
	if Contains(star, plus) {
		t.Errorf("a* should not be contained in a+ (empty string)")
	}
}

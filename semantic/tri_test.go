package semantic

import "testing"

func TestAndKleene(t *testing.T) {
	cases := []struct {
		a, b Tri
		want Tri
	}{
		{Yes, Yes, Yes},
		{Yes, No, No},
		{No, Unknown, No},
		{Yes, Unknown, Unknown},
		{Unknown, Unknown, Unknown},
	}
	for _, c := range cases {
		if got := And(c.a, c.b); got != c.want {
			t.Errorf("And(%v, %v) = %v, want %v", c.a, c.b, got, c.want)
		}
	}
}

func TestOrKleene(t *testing.T) {
	cases := []struct {
		a, b Tri
		want Tri
	}{
		{No, No, No},
		{No, Yes, Yes},
		{Yes, Unknown, Yes},
		{No, Unknown, Unknown},
		{Unknown, Unknown, Unknown},
	}
	for _, c := range cases {
		if got := Or(c.a, c.b); got != c.want {
			t.Errorf("Or(%v, %v) = %v, want %v", c.a, c.b, got, c.want)
		}
	}
}

func TestAndAllShortCircuitsOnNo(t *testing.T) {
	if got := AndAll(Yes, Unknown, No, Yes); got != No {
		t.Errorf("AndAll with a No anywhere = %v, want No", got)
	}
	if got := AndAll(Yes, Yes, Unknown); got != Unknown {
		t.Errorf("AndAll(Yes, Yes, Unknown) = %v, want Unknown", got)
	}
	if got := AndAll(); got != Yes {
		t.Errorf("AndAll() of nothing = %v, want Yes (identity)", got)
	}
}

func TestOrAllShortCircuitsOnYes(t *testing.T) {
	if got := OrAll(No, Unknown, Yes, No); got != Yes {
		t.Errorf("OrAll with a Yes anywhere = %v, want Yes", got)
	}
	if got := OrAll(No, No, Unknown); got != Unknown {
		t.Errorf("OrAll(No, No, Unknown) = %v, want Unknown", got)
	}
	if got := OrAll(); got != No {
		t.Errorf("OrAll() of nothing = %v, want No (identity)", got)
	}
}

func TestBoolCollapsesUnknownToFalse(t *testing.T) {
	if Yes.Bool() != true {
		t.Errorf("Yes.Bool() should be true")
	}
	if No.Bool() != false {
		t.Errorf("No.Bool() should be false")
	}
	if Unknown.Bool() != false {
		t.Errorf("Unknown.Bool() should be false")
	}
}

func TestFromBool(t *testing.T) {
	if FromBool(true) != Yes {
		t.Errorf("FromBool(true) should be Yes")
	}
	if FromBool(false) != No {
		t.Errorf("FromBool(false) should be No")
	}
}

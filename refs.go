package subschema

import "strings"

// refTable resolves "$ref" strings against the $defs/definitions visible
// from a document's root. Only local fragment references ("#/$defs/Foo")
// are supported; anything else is UnresolvedReference, since fetching
// remote schemas over a network is out of scope.
type refTable struct {
	root *Schema
}

func newRefTable(root *Schema) *refTable {
	return &refTable{root: root}
}

// lookup resolves ref to the *Schema it names.
func (t *refTable) lookup(ref string) (*Schema, error) {
	if ref == "#" || ref == "" {
		return t.root, nil
	}
	if !strings.HasPrefix(ref, "#/") {
		return nil, &UnresolvedReferenceError{Ref: ref}
	}

	segments := strings.Split(strings.TrimPrefix(ref, "#/"), "/")
	cur := t.root
	for i := 0; i < len(segments); i++ {
		seg := unescapeRefSegment(segments[i])
		switch seg {
		case "$defs", "definitions":
			if i+1 >= len(segments) || cur.Defs == nil {
				return nil, &UnresolvedReferenceError{Ref: ref}
			}
			next, ok := cur.Defs[segments[i+1]]
			if !ok {
				return nil, &UnresolvedReferenceError{Ref: ref}
			}
			cur = next
			i++
		default:
			return nil, &UnresolvedReferenceError{Ref: ref}
		}
	}
	return cur, nil
}

func unescapeRefSegment(seg string) string {
	seg = strings.ReplaceAll(seg, "~1", "/")
	seg = strings.ReplaceAll(seg, "~0", "~")
	return seg
}

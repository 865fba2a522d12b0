package fetch

import "github.com/datapipe/spfetch/internal/graph"

// entryRef is the minimal view of a listing entry the resolver needs.
// Drive and item listings both reduce to it.
type entryRef struct {
	id   string
	name string
}

// resolveID returns the identifier of the first entry whose name equals name
// exactly (case-sensitive), in listing order. The second return is false when
// no entry matches — a normal outcome, not an error.
//
// With duplicate names at one level, first-match-wins. The Graph API does not
// guarantee a stable listing order, so which duplicate wins is up to the
// backend; README documents this for users.
func resolveID(entries []entryRef, name string) (string, bool) {
	for _, e := range entries {
		if e.name == name {
			return e.id, true
		}
	}

	return "", false
}

func driveRefs(drives []graph.Drive) []entryRef {
	refs := make([]entryRef, 0, len(drives))
	for _, d := range drives {
		refs = append(refs, entryRef{id: d.ID, name: d.Name})
	}

	return refs
}

func itemRefs(items []graph.Item) []entryRef {
	refs := make([]entryRef, 0, len(items))
	for _, it := range items {
		refs = append(refs, entryRef{id: it.ID, name: it.Name})
	}

	return refs
}

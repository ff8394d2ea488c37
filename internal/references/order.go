// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package references builds the References section appended to a
// manuscript.
package references

import "sort"

// Order returns the distinct ids in byte-wise lexicographic order. This is
// the order the References section is printed in; where an id was first
// cited does not matter.
func Order(ids []string) []string {
	seen := make(map[string]bool, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

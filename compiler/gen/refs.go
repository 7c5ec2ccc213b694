package gen

import "sort"

// CollectRefs walks a definition's schema tree and returns the distinct
// sibling definitions it references through $ref markers, excluding the
// definition itself. Registration correctness only needs the set to be
// complete, but the walk visits fields in sorted key order so the result is
// stable for emission.
func CollectRefs(id string, raw map[string]any) []string {
	seen := make(map[string]bool)
	var refs []string
	var walk func(m map[string]any)
	walk = func(m map[string]any) {
		keys := make([]string, 0, len(m))
		for k := range m {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			switch v := m[k].(type) {
			case string:
				if k != "$ref" {
					continue
				}
				ref := stripRefPrefix(v)
				if ref == id || seen[ref] {
					continue
				}
				seen[ref] = true
				refs = append(refs, ref)
			case map[string]any:
				// Arrays in this dialect carry their element schema in the
				// structured "items" field, so only maps are recursed into.
				walk(v)
			}
		}
	}
	walk(raw)
	return refs
}

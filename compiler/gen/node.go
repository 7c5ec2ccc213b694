package gen

import "sort"

// Kind enumerates the schema node variants the compiler understands.
type Kind int

const (
	// KindUnknown covers unrecognized type values and shapes with no
	// recognizable structure. It synthesizes to an unconstrained type.
	KindUnknown Kind = iota
	// KindReference is a node carrying a $ref marker.
	KindReference
	// KindObject is a structural record, possibly with an index signature.
	KindObject
	// KindString includes the int-or-string format special case.
	KindString
	// KindNumber covers both "number" and "integer" declarations.
	KindNumber
	// KindBoolean is a boolean node.
	KindBoolean
	// KindArray is a homogeneous sequence parameterized by its items node.
	KindArray
	// KindNull is the null type.
	KindNull
)

// refPrefix is the document-pointer prefix used by $ref values in the input
// document. Stripping it yields the referenced definition's dotted name.
const refPrefix = "#/definitions/"

// Node is the classified view of a raw schema map. Classification is total:
// every raw map yields a node, falling back to KindUnknown.
type Node struct {
	Kind Kind

	// Raw is the map the node was classified from.
	Raw map[string]any

	// Ref is the referenced definition's dotted name, set for KindReference.
	Ref string

	// Format is the declared format, set for KindString.
	Format string

	// Description is the node's documentation text, if any.
	Description string

	// Properties lists the object's declared fields in name order,
	// set for KindObject.
	Properties []Property

	// AdditionalProperties is the raw index-signature schema for KindObject.
	// It is nil when additionalProperties is absent or false, and empty
	// (but non-nil) when additionalProperties is true.
	AdditionalProperties map[string]any

	// Items is the raw element schema for KindArray.
	Items map[string]any
}

// Property is one declared field of an object node.
type Property struct {
	Name        string
	Raw         map[string]any
	Required    bool
	Description string
}

// Classify maps a raw schema map onto its node variant. Nodes with a $ref
// marker classify as references regardless of any other fields; untyped
// non-reference nodes default to objects, matching how the input dialect
// declares bare records.
func Classify(raw map[string]any) Node {
	n := Node{Kind: KindUnknown, Raw: raw}
	if raw == nil {
		return n
	}
	if desc, ok := raw["description"].(string); ok {
		n.Description = desc
	}
	if ref, ok := raw["$ref"].(string); ok && ref != "" {
		n.Kind = KindReference
		n.Ref = stripRefPrefix(ref)
		return n
	}
	typ, _ := raw["type"].(string)
	switch typ {
	case "object", "":
		n.Kind = KindObject
		n.Properties = objectProperties(raw)
		n.AdditionalProperties = additionalProperties(raw)
	case "string":
		n.Kind = KindString
		n.Format, _ = raw["format"].(string)
	case "number", "integer":
		n.Kind = KindNumber
	case "boolean":
		n.Kind = KindBoolean
	case "array":
		n.Kind = KindArray
		n.Items, _ = raw["items"].(map[string]any)
	case "null":
		n.Kind = KindNull
	default:
		n.Kind = KindUnknown
	}
	return n
}

// stripRefPrefix reduces a document-pointer reference to the dotted name of
// the definition it points at.
func stripRefPrefix(ref string) string {
	if len(ref) >= len(refPrefix) && ref[:len(refPrefix)] == refPrefix {
		return ref[len(refPrefix):]
	}
	return ref
}

// objectProperties extracts the declared fields of an object node, sorted by
// name. The input document stores properties in an unordered map, so name
// order is what keeps generated output deterministic across runs.
func objectProperties(raw map[string]any) []Property {
	props, ok := raw["properties"].(map[string]any)
	if !ok || len(props) == 0 {
		return nil
	}
	required := requiredSet(raw)
	names := make([]string, 0, len(props))
	for name := range props {
		names = append(names, name)
	}
	sort.Strings(names)
	out := make([]Property, 0, len(names))
	for _, name := range names {
		p := Property{Name: name, Required: required[name]}
		if child, ok := props[name].(map[string]any); ok {
			p.Raw = child
			p.Description, _ = child["description"].(string)
		}
		out = append(out, p)
	}
	return out
}

// requiredSet collects the object's required field names.
func requiredSet(raw map[string]any) map[string]bool {
	list, ok := raw["required"].([]any)
	if !ok {
		return nil
	}
	set := make(map[string]bool, len(list))
	for _, v := range list {
		if name, ok := v.(string); ok {
			set[name] = true
		}
	}
	return set
}

// additionalProperties normalizes the additionalProperties field: a schema
// map is returned as-is, true becomes an empty map, false and absence become
// nil.
func additionalProperties(raw map[string]any) map[string]any {
	switch v := raw["additionalProperties"].(type) {
	case map[string]any:
		return v
	case bool:
		if v {
			return map[string]any{}
		}
	}
	return nil
}

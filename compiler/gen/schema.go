package gen

import (
	"strings"

	json "github.com/goccy/go-json"
)

const (
	// vendorPrefix marks vendor-extension fields stripped from registry
	// documents.
	vendorPrefix = "x-kubernetes-"

	// registryRefSuffix turns a stripped definition name into the flat key
	// the registry resolves references by.
	registryRefSuffix = "#"

	// intOrStringName is the well-known utility definition whose declared
	// shape (a plain string) does not match its runtime semantics. Its
	// registry document is fixed rather than derived from the source.
	intOrStringName = "io.k8s.apimachinery.pkg.util.intstr.IntOrString"
)

// intOrStringSchema is the hard-coded registry document for the IntOrString
// utility type.
var intOrStringSchema = map[string]any{
	"oneOf": []any{
		map[string]any{"type": "string"},
		map[string]any{"type": "integer", "format": "int32"},
	},
}

// RewriteSchema produces the registry-safe schema document for a definition:
// a deep copy of the source node with description and vendor-extension
// fields removed and every $ref rewritten from document-pointer form to the
// registry's flat key form.
func RewriteSchema(id string, raw map[string]any) map[string]any {
	if id == intOrStringName {
		return rewriteMap(intOrStringSchema)
	}
	return rewriteMap(raw)
}

// MarshalSchema renders a registry document as JSON with stable key order.
func MarshalSchema(doc map[string]any) ([]byte, error) {
	return json.Marshal(doc)
}

func rewriteMap(m map[string]any) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		if k == "description" || strings.HasPrefix(k, vendorPrefix) {
			continue
		}
		if k == "$ref" {
			if ref, ok := v.(string); ok {
				out[k] = stripRefPrefix(ref) + registryRefSuffix
				continue
			}
		}
		out[k] = rewriteValue(v)
	}
	return out
}

func rewriteValue(v any) any {
	switch v := v.(type) {
	case map[string]any:
		return rewriteMap(v)
	case []any:
		out := make([]any, len(v))
		for i, e := range v {
			out[i] = rewriteValue(e)
		}
		return out
	default:
		return v
	}
}

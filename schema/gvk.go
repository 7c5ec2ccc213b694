package schema

// GroupVersionKind identifies an API resource by its group, version and kind,
// mirroring the x-kubernetes-group-version-kind annotation on a definition.
type GroupVersionKind struct {
	Group   string `json:"group"`
	Version string `json:"version"`
	Kind    string `json:"kind"`
}

// APIVersion returns the apiVersion string for the resource, "group/version"
// or just "version" for the core group.
func (gvk GroupVersionKind) APIVersion() string {
	if gvk.Group == "" {
		return gvk.Version
	}
	return gvk.Group + "/" + gvk.Version
}

// TypeDescriptor ties a generated type back to its schema entry. Generated
// packages export one descriptor value per definition so consumers can look
// up the originating schema name and trigger its registration without
// knowing the definition's package layout.
type TypeDescriptor struct {
	// ID is the fully-qualified dotted definition name,
	// e.g. "io.k8s.api.core.v1.Pod".
	ID string

	// GroupVersionKind is set for definitions carrying the
	// x-kubernetes-group-version-kind annotation with a single entry.
	GroupVersionKind *GroupVersionKind

	// AddToSchema registers the definition's schema document, and
	// transitively every schema it references, into the shared registry.
	AddToSchema func()
}

// Register invokes the descriptor's registration function.
func (d TypeDescriptor) Register() {
	if d.AddToSchema != nil {
		d.AddToSchema()
	}
}

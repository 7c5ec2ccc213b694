// Package schema is the runtime support library imported by generated code.
//
// It provides the shared validation registry that generated registration
// functions load schema documents into, the GroupVersionKind descriptor
// attached to API resource types, and the IntOrString union type used by
// fields declared with the "int-or-string" format.
package schema

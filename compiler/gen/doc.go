// Package gen compiles OpenAPI definitions into generated Go source.
//
// For every definition in the input document the compiler emits one file
// containing a structural Go type, a registry-safe schema constant, a
// registration function that loads the schema (and transitively every schema
// it references) into the shared registry, a type descriptor value, and
// short-name aliases. Definitions are compiled independently and in parallel;
// once all of them are written, a second pass flattens the accumulated module
// tree into per-directory index packages.
package gen

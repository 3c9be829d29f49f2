// Package path provides the segment sequences used to address fields.
//
// A Path is an ordered list of segments. A string segment selects a named
// field of a map, an int segment selects an element of a sequence. The same
// type names a logical field (a composite key such as ["address", "public"])
// and a concrete location inside one document (["status", "addresses", 0]).
//
// # Path Syntax
//
// Parse accepts dotted paths with optional bracketed indexes:
//   - Simple fields: "id"
//   - Nested fields: "metadata.name"
//   - Sequence elements: "containers.0.name" or "containers[0].name"
//
// Numeric segments always parse as indexes. Keys that contain dots or are
// purely numeric names must be built with New instead.
package path

// Package mapping provides YAML mapping table definitions, parsing,
// validation, and the immutable tables consumed by the engine.
//
// A mapping table pairs each descriptor field (a composite key) with the
// ordered list of paths it occupies in the foreign document. The same table
// drives both directions: forward translation writes the field's value to
// every path, reverse translation reads every path and combines the values.
//
// # Schema Overview
//
// The mapping file has the following structure:
//
//	version: "1"
//	tables:
//	  - name: pod
//	    direction: both          # both | to | from
//	    fields:
//	      - key: image
//	        paths: containers.0.image
//	      - key: volumes         # 1:N, reverse needs a conversion
//	        paths:
//	          - containers.0.volumeMounts
//	          - volumes
//	      - key: [address, public]
//	        paths: [status.addresses.0]
//
// # Key and Path Syntax
//
// Keys and paths accept a dotted string ("metadata.name",
// "containers[0].name") or an explicit list of segments
// (["metadata", "labels", "cs-node-id"]). A path may also be written as a
// nested list when a segment contains a dot.
//
// # Cardinality Support
//
//   - 1:1 - one key, one path (identity-resolvable in both directions)
//   - 1:N - one key, several paths: fan-out forward, fan-in reverse
//
// # Validation
//
// Validate runs once when tables are built. It reports structural problems
// (empty keys, bad segments, duplicate keys and tables) and fan-in fields
// that lack a reverse conversion, and notes paths written by more than one
// key, where the last key processed wins.
package mapping

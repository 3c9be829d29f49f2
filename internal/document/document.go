// Package document reads and writes nested document trees by path.
//
// A document is a tree of map[string]any and []any with scalar leaves, the
// shape produced by decoding JSON or YAML into an untyped value. Every writer
// in this package is copy-on-write: the input tree is never modified and the
// result shares untouched subtrees with it.
package document

import (
	"maps"

	"k8s-translator/internal/path"
)

// Document is the root of a document tree.
type Document = map[string]any

// Get returns the value at p. It reports false if any segment is missing,
// reaches a nil, or has the wrong type for the node it indexes.
func Get(doc any, p path.Path) (any, bool) {
	cur := doc

	for _, seg := range p {
		if cur == nil {
			return nil, false
		}

		if n, ok := path.Index(seg); ok {
			seq, ok := cur.([]any)
			if !ok || n < 0 || n >= len(seq) {
				return nil, false
			}

			cur = seq[n]

			continue
		}

		key, ok := seg.(string)
		if !ok {
			return nil, false
		}

		m, ok := cur.(map[string]any)
		if !ok {
			return nil, false
		}

		cur, ok = m[key]
		if !ok {
			return nil, false
		}
	}

	if cur == nil {
		return nil, false
	}

	return cur, true
}

// Has reports whether Get would find a non-nil value at p.
func Has(doc any, p path.Path) bool {
	_, ok := Get(doc, p)
	return ok
}

// Merge deep-merges value into target at p and returns the new tree.
//
// Missing intermediate nodes are created: maps for string segments and
// sequences, padded with nils, for int segments. A node of the wrong type on
// the way is replaced. At p the two values are combined by DeepMerge.
func Merge(target any, p path.Path, value any) any {
	return write(target, p, value, DeepMerge)
}

// Set writes value at p, replacing whatever was there.
func Set(target any, p path.Path, value any) any {
	return write(target, p, value, func(_, v any) any { return Clone(v) })
}

// MergeInto is Merge for a document root.
func MergeInto(doc Document, p path.Path, value any) Document {
	return asDocument(Merge(doc, p, value))
}

// SetIn is Set for a document root.
func SetIn(doc Document, p path.Path, value any) Document {
	return asDocument(Set(doc, p, value))
}

func asDocument(v any) Document {
	if m, ok := v.(map[string]any); ok {
		return m
	}

	return Document{}
}

func write(target any, p path.Path, value any, leaf func(old, v any) any) any {
	if len(p) == 0 {
		return leaf(target, value)
	}

	seg, rest := p[0], p[1:]

	if n, ok := path.Index(seg); ok {
		if n < 0 {
			return target
		}

		seq, _ := target.([]any)
		out := make([]any, max(len(seq), n+1))
		copy(out, seq)
		out[n] = write(out[n], rest, value, leaf)

		return out
	}

	key, ok := seg.(string)
	if !ok {
		return target
	}

	m, _ := target.(map[string]any)
	out := make(map[string]any, len(m)+1)
	maps.Copy(out, m)
	out[key] = write(m[key], rest, value, leaf)

	return out
}

// DeepMerge combines dst and src. Two maps merge key by key, recursively.
// In every other case src wins: scalars and sequences are replaced whole.
func DeepMerge(dst, src any) any {
	sm, ok := src.(map[string]any)
	if !ok {
		return Clone(src)
	}

	dm, ok := dst.(map[string]any)
	if !ok {
		return Clone(src)
	}

	out := make(map[string]any, len(dm)+len(sm))
	maps.Copy(out, dm)

	for k, v := range sm {
		out[k] = DeepMerge(dm[k], v)
	}

	return out
}

// MergeDocuments deep-merges src over dst.
func MergeDocuments(dst, src Document) Document {
	return asDocument(DeepMerge(dst, src))
}

// Clone returns a deep copy of the maps and sequences in v.
func Clone(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, e := range t {
			out[k] = Clone(e)
		}

		return out
	case []any:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = Clone(e)
		}

		return out
	default:
		return v
	}
}

// CloneDocument returns a deep copy of doc. A nil doc yields an empty one.
func CloneDocument(doc Document) Document {
	if doc == nil {
		return Document{}
	}

	return asDocument(Clone(doc))
}

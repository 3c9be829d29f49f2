// Package conversion holds the per-field value conversions applied while
// translating documents.
//
// A field may register a Forward conversion, called once per destination path
// the field is written to, and a Reverse conversion, called once with every
// (value, path) pair read for the field. Fields without a registration use
// the identity conversion.
package conversion

import (
	"k8s-translator/internal/keyed"
	"k8s-translator/internal/path"
)

// Forward converts a source value for one destination path. Returning nil
// omits that destination.
type Forward func(value any, dst path.Path) (any, error)

// Arg is one (value, source path) pair passed to a Reverse conversion.
// Value is nil when nothing was found at Path.
type Arg struct {
	Value any
	Path  path.Path
}

// Reverse combines the values read from every source path of a field into
// one value. Args come in table order. Returning nil omits the field.
type Reverse func(args ...Arg) (any, error)

// IdentityForward passes the value through unchanged.
func IdentityForward(value any, _ path.Path) (any, error) {
	return value, nil
}

// IdentityReverse returns the value of the first argument. It is only
// meaningful for fields read from a single path.
func IdentityReverse(args ...Arg) (any, error) {
	if len(args) == 0 {
		return nil, nil
	}

	return args[0].Value, nil
}

// Coalesce returns the first present value among args. It suits fields
// written to several paths with the same value.
func Coalesce(args ...Arg) (any, error) {
	for _, arg := range args {
		if arg.Value != nil {
			return arg.Value, nil
		}
	}

	return nil, nil
}

// Registry maps field keys to conversions.
type Registry struct {
	forward *keyed.Store[Forward]
	reverse *keyed.Store[Reverse]
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		forward: keyed.NewStore[Forward](),
		reverse: keyed.NewStore[Reverse](),
	}
}

// RegisterForward sets the forward conversion for key.
func (r *Registry) RegisterForward(key path.Path, fn Forward) *Registry {
	r.forward.Set(key, fn)
	return r
}

// RegisterReverse sets the reverse conversion for key.
func (r *Registry) RegisterReverse(key path.Path, fn Reverse) *Registry {
	r.reverse.Set(key, fn)
	return r
}

// Forward returns the forward conversion for key, or IdentityForward.
func (r *Registry) Forward(key path.Path) Forward {
	if r == nil {
		return IdentityForward
	}

	if fn, ok := r.forward.Get(key); ok && fn != nil {
		return fn
	}

	return IdentityForward
}

// Reverse returns the reverse conversion for key, or IdentityReverse.
func (r *Registry) Reverse(key path.Path) Reverse {
	if r == nil {
		return IdentityReverse
	}

	if fn, ok := r.reverse.Get(key); ok && fn != nil {
		return fn
	}

	return IdentityReverse
}

// HasForward reports whether key has a registered forward conversion.
func (r *Registry) HasForward(key path.Path) bool {
	return r != nil && r.forward.Has(key)
}

// HasReverse reports whether key has a registered reverse conversion.
func (r *Registry) HasReverse(key path.Path) bool {
	return r != nil && r.reverse.Has(key)
}

// Keys returns every key with a forward or reverse conversion.
func (r *Registry) Keys() []path.Path {
	if r == nil {
		return nil
	}

	seen := map[keyed.ID]bool{}

	var out []path.Path

	for key := range r.forward.Entries() {
		seen[keyed.IDOf(key)] = true
		out = append(out, key)
	}

	for key := range r.reverse.Entries() {
		if !seen[keyed.IDOf(key)] {
			out = append(out, key)
		}
	}

	return out
}

package path

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidSegment is returned when a segment is neither a string nor an int.
var ErrInvalidSegment = errors.New("invalid path segment")

// Path is an ordered sequence of string or int segments.
type Path []any

// New builds a Path from segments. Any integer type is normalized to int.
func New(segments ...any) (Path, error) {
	p := make(Path, 0, len(segments))

	for i, seg := range segments {
		norm, ok := normalize(seg)
		if !ok {
			return nil, fmt.Errorf("segment %d (%T): %w", i, seg, ErrInvalidSegment)
		}

		p = append(p, norm)
	}

	return p, nil
}

// Of is New for segments known to be valid. It panics otherwise.
func Of(segments ...any) Path {
	p, err := New(segments...)
	if err != nil {
		panic(err)
	}

	return p
}

// Parse parses a dotted path string into a Path.
// Supports: "id", "metadata.name", "containers.0.name", "containers[0].name".
func Parse(s string) (Path, error) {
	if s == "" {
		return nil, errors.New("empty path")
	}

	var p Path

	for part := range strings.SplitSeq(s, ".") {
		if part == "" {
			return nil, fmt.Errorf("invalid path %q: empty segment", s)
		}

		name, indexes, err := splitIndexes(part)
		if err != nil {
			return nil, fmt.Errorf("invalid path %q: %w", s, err)
		}

		if name != "" {
			if n, err := strconv.Atoi(name); err == nil && n >= 0 {
				p = append(p, n)
			} else {
				p = append(p, name)
			}
		}

		for _, idx := range indexes {
			p = append(p, idx)
		}
	}

	return p, nil
}

// MustParse is like Parse but panics on error. Intended for static tables.
func MustParse(s string) Path {
	p, err := Parse(s)
	if err != nil {
		panic(err)
	}

	return p
}

// splitIndexes splits "containers[0][1]" into "containers" and [0 1].
func splitIndexes(part string) (string, []int, error) {
	open := strings.IndexByte(part, '[')
	if open < 0 {
		if strings.IndexByte(part, ']') >= 0 {
			return "", nil, fmt.Errorf("unbalanced bracket in %q", part)
		}

		return part, nil, nil
	}

	name := part[:open]
	rest := part[open:]

	var indexes []int

	for rest != "" {
		if rest[0] != '[' {
			return "", nil, fmt.Errorf("unexpected %q after index in %q", rest, part)
		}

		end := strings.IndexByte(rest, ']')
		if end < 0 {
			return "", nil, fmt.Errorf("unbalanced bracket in %q", part)
		}

		n, err := strconv.Atoi(rest[1:end])
		if err != nil || n < 0 {
			return "", nil, fmt.Errorf("invalid index %q in %q", rest[1:end], part)
		}

		indexes = append(indexes, n)
		rest = rest[end+1:]
	}

	return name, indexes, nil
}

// normalize converts a raw segment to string or int.
func normalize(seg any) (any, bool) {
	switch v := seg.(type) {
	case string:
		return v, true
	case int:
		return v, true
	case int8:
		return int(v), true
	case int16:
		return int(v), true
	case int32:
		return int(v), true
	case int64:
		return int(v), true
	case uint:
		return int(v), true
	case uint8:
		return int(v), true
	case uint16:
		return int(v), true
	case uint32:
		return int(v), true
	case uint64:
		return int(v), true
	default:
		return nil, false
	}
}

// Index reports whether seg is an integer index and returns it.
func Index(seg any) (int, bool) {
	norm, ok := normalize(seg)
	if !ok {
		return 0, false
	}

	n, ok := norm.(int)

	return n, ok
}

// Validate reports the first segment that is not a string or int.
func (p Path) Validate() error {
	for i, seg := range p {
		if _, ok := normalize(seg); !ok {
			return fmt.Errorf("segment %d (%T): %w", i, seg, ErrInvalidSegment)
		}

		if n, ok := Index(seg); ok && n < 0 {
			return fmt.Errorf("segment %d: negative index %d: %w", i, n, ErrInvalidSegment)
		}
	}

	return nil
}

// Clone returns a copy that shares no backing array with p.
func (p Path) Clone() Path {
	if p == nil {
		return nil
	}

	out := make(Path, len(p))
	copy(out, p)

	return out
}

// Equal returns true if both paths have element-wise equal segments.
func (p Path) Equal(other Path) bool {
	if len(p) != len(other) {
		return false
	}

	for i := range p {
		if !segmentEqual(p[i], other[i]) {
			return false
		}
	}

	return true
}

// HasPrefix returns true if prefix is a leading subsequence of p.
func (p Path) HasPrefix(prefix Path) bool {
	if len(prefix) > len(p) {
		return false
	}

	return p[:len(prefix)].Equal(prefix)
}

// Contains returns true if any segment of p equals seg.
func (p Path) Contains(seg any) bool {
	for _, s := range p {
		if segmentEqual(s, seg) {
			return true
		}
	}

	return false
}

// Append returns a new path with segments added to the end.
func (p Path) Append(segments ...any) Path {
	out := make(Path, 0, len(p)+len(segments))
	out = append(out, p...)

	return append(out, segments...)
}

// IsEmpty returns true if the path has no segments.
func (p Path) IsEmpty() bool {
	return len(p) == 0
}

// String returns the dotted form, e.g. "containers.0.name".
func (p Path) String() string {
	var sb strings.Builder

	for i, seg := range p {
		if i > 0 {
			sb.WriteByte('.')
		}

		fmt.Fprint(&sb, seg)
	}

	return sb.String()
}

// Canonical returns an injective string encoding of p. Strings are quoted and
// ints are written bare, so ["0"] and [0] encode differently.
func (p Path) Canonical() string {
	var sb strings.Builder

	sb.WriteByte('[')

	for i, seg := range p {
		if i > 0 {
			sb.WriteByte(',')
		}

		if n, ok := Index(seg); ok {
			sb.WriteString(strconv.Itoa(n))
			continue
		}

		if s, ok := seg.(string); ok {
			sb.WriteString(strconv.Quote(s))
			continue
		}

		fmt.Fprintf(&sb, "?%T", seg)
	}

	sb.WriteByte(']')

	return sb.String()
}

func segmentEqual(a, b any) bool {
	if ai, ok := Index(a); ok {
		bi, ok := Index(b)
		return ok && ai == bi
	}

	as, ok := a.(string)
	if !ok {
		return false
	}

	bs, ok := b.(string)

	return ok && as == bs
}

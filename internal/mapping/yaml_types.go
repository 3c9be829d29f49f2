package mapping

import (
	"fmt"
	"strconv"

	"gopkg.in/yaml.v3"

	"k8s-translator/internal/path"
)

// --- KeyRef YAML methods ---

// UnmarshalYAML accepts a dotted string or a list of segments.
func (k *KeyRef) UnmarshalYAML(node *yaml.Node) error {
	p, err := decodePath(node)
	if err != nil {
		return fmt.Errorf("key: %w", err)
	}

	k.Path = p

	return nil
}

// MarshalYAML outputs the dotted form when it parses back to the same key.
func (k KeyRef) MarshalYAML() (any, error) {
	return encodePath(k.Path), nil
}

// --- PathArray YAML methods ---

// UnmarshalYAML accepts a single path or a list of paths, each being a
// dotted string or a list of segments.
func (p *PathArray) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		single, err := decodePath(node)
		if err != nil {
			return fmt.Errorf("paths: %w", err)
		}

		*p = PathArray{single}

		return nil

	case yaml.SequenceNode:
		// A flat list of scalars is ambiguous: [a, b] could be two paths or
		// one path of two segments. Lists of scalars are read as paths.
		out := make(PathArray, 0, len(node.Content))

		for i, child := range node.Content {
			fp, err := decodePath(child)
			if err != nil {
				return fmt.Errorf("paths[%d]: %w", i, err)
			}

			out = append(out, fp)
		}

		*p = out

		return nil

	default:
		return fmt.Errorf("line %d: expected path or list of paths", node.Line)
	}
}

// MarshalYAML outputs a single dotted path as a scalar, otherwise a list.
func (p PathArray) MarshalYAML() (any, error) {
	if len(p) == 1 {
		if s, ok := encodePath(p[0]).(string); ok {
			return s, nil
		}
	}

	out := make([]any, len(p))
	for i, fp := range p {
		out[i] = encodePath(fp)
	}

	return out, nil
}

func decodePath(node *yaml.Node) (path.Path, error) {
	switch node.Kind {
	case yaml.ScalarNode:
		return path.Parse(node.Value)

	case yaml.SequenceNode:
		if len(node.Content) == 0 {
			return nil, fmt.Errorf("line %d: empty segment list", node.Line)
		}

		segments := make(path.Path, 0, len(node.Content))

		for _, child := range node.Content {
			if child.Kind != yaml.ScalarNode {
				return nil, fmt.Errorf("line %d: segment must be a scalar", child.Line)
			}

			if child.Tag == "!!int" {
				n, err := strconv.Atoi(child.Value)
				if err != nil || n < 0 {
					return nil, fmt.Errorf("line %d: invalid index %q", child.Line, child.Value)
				}

				segments = append(segments, n)

				continue
			}

			segments = append(segments, child.Value)
		}

		return segments, nil

	default:
		return nil, fmt.Errorf("line %d: expected dotted path or segment list", node.Line)
	}
}

func encodePath(p path.Path) any {
	if parsed, err := path.Parse(p.String()); err == nil && parsed.Equal(p) {
		return p.String()
	}

	return []any(p)
}

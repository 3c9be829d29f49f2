package k8s

import (
	"maps"
	"slices"
	"strconv"
	"strings"

	"k8s-translator/internal/conversion"
	"k8s-translator/internal/document"
	"k8s-translator/internal/path"
)

const tagPrefix = "tags."

// defaultConstraints applies when the descriptor has no placement constraints.
var defaultConstraints = map[string]any{"per_host": 0}

// tagsTo flattens tags into "tags.<a>.<b>" labels with string values.
func tagsTo(v any, _ path.Path) (any, error) {
	tags, ok := conversion.Map(v)
	if !ok {
		return nil, conversion.Invalid(v, "tags must be a map")
	}

	if _, ok := tags["constraints"]; !ok {
		tags = maps.Clone(tags)
		tags["constraints"] = defaultConstraints
	}

	labels := map[string]any{}
	if err := flattenTags(labels, tagPrefix, tags); err != nil {
		return nil, err
	}

	return labels, nil
}

func flattenTags(labels map[string]any, prefix string, tags map[string]any) error {
	for k, v := range tags {
		if strings.Contains(k, ".") {
			return conversion.Invalid(k, "tag name must not contain dots")
		}

		switch t := v.(type) {
		case map[string]any:
			if err := flattenTags(labels, prefix+k+".", t); err != nil {
				return err
			}
		case []any:
			return conversion.Invalid(v, "tag %q must be a scalar or map", k)
		default:
			labels[prefix+k] = conversion.String(t)
		}
	}

	return nil
}

// tagsFrom rebuilds tags from labels under the tags prefix. Canonical
// integers and booleans are read back as numbers and bools.
func tagsFrom(args ...conversion.Arg) (any, error) {
	if len(args) == 0 || args[0].Value == nil {
		return nil, nil
	}

	labels, ok := conversion.Map(args[0].Value)
	if !ok {
		return nil, conversion.Invalid(args[0].Value, "labels must be a map")
	}

	out := document.Document{}

	for _, key := range slices.Sorted(maps.Keys(labels)) {
		rest, ok := strings.CutPrefix(key, tagPrefix)
		if !ok || rest == "" {
			continue
		}

		segments := strings.Split(rest, ".")
		p := make(path.Path, len(segments))

		for i, s := range segments {
			p[i] = s
		}

		out = document.MergeInto(out, p, labelValue(labels[key]))
	}

	if len(out) == 0 {
		return nil, nil
	}

	return out, nil
}

func labelValue(v any) any {
	s, ok := v.(string)
	if !ok {
		return v
	}

	switch s {
	case "true":
		return true
	case "false":
		return false
	}

	// "007" stays a string: it would not be written back the same way.
	if n, err := strconv.Atoi(s); err == nil && strconv.Itoa(n) == s {
		return n
	}

	return s
}

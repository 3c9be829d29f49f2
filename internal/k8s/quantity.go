package k8s

import (
	"strings"

	"k8s-translator/internal/conversion"
	"k8s-translator/internal/path"
)

const capacitySegment = "capacity"

// memoryUnits maps quantity suffixes to megabytes, the descriptor's memory
// unit. Kilobytes divide by 1000 so that capacity values written as
// N*1000Ki read back as N.
var memoryUnits = []struct {
	suffix   string
	mul, div float64
}{
	{"Ki", 1, 1000},
	{"Mi", 1, 1},
	{"Gi", 1000, 1},
	{"k", 1, 1000},
	{"M", 1, 1},
	{"G", 1000, 1},
}

// cpusTo writes cpus as millicores on resource limits and as a plain
// quantity on node capacity. Zero means no limit and is skipped.
func cpusTo(v any, dst path.Path) (any, error) {
	f, ok := conversion.Float(v)
	if !ok {
		return nil, conversion.Invalid(v, "cpus must be a number")
	}

	if f == 0 {
		return nil, nil
	}

	if dst.Contains(capacitySegment) {
		return conversion.FormatFloat(f), nil
	}

	return conversion.FormatFloat(f*1000) + "m", nil
}

func cpusFrom(args ...conversion.Arg) (any, error) {
	if len(args) == 0 || args[0].Value == nil {
		return nil, nil
	}

	return parseCPU(args[0].Value)
}

// parseCPU reads "500m", "2" or a bare number as cores.
func parseCPU(v any) (any, error) {
	s, isString := v.(string)
	if !isString {
		f, ok := conversion.Float(v)
		if !ok {
			return nil, conversion.Invalid(v, "cpu quantity must be a string or number")
		}

		return conversion.Number(f), nil
	}

	div := 1.0
	if trimmed, ok := strings.CutSuffix(s, "m"); ok {
		s = trimmed
		div = 1000
	}

	f, ok := conversion.Float(s)
	if !ok {
		return nil, conversion.Invalid(v, "malformed cpu quantity")
	}

	return conversion.Number(f / div), nil
}

// memoryTo writes memory in megabytes on limits and in kilobytes on capacity.
func memoryTo(v any, dst path.Path) (any, error) {
	f, ok := conversion.Float(v)
	if !ok {
		return nil, conversion.Invalid(v, "memory must be a number of megabytes")
	}

	if f == 0 {
		return nil, nil
	}

	if dst.Contains(capacitySegment) {
		return conversion.FormatFloat(f*1000) + "Ki", nil
	}

	return conversion.FormatFloat(f) + "M", nil
}

func memoryFrom(args ...conversion.Arg) (any, error) {
	if len(args) == 0 || args[0].Value == nil {
		return nil, nil
	}

	return parseMemory(args[0].Value)
}

// parseMemory reads a memory quantity as megabytes. A bare number is bytes.
func parseMemory(v any) (any, error) {
	s, isString := v.(string)
	if !isString {
		f, ok := conversion.Float(v)
		if !ok {
			return nil, conversion.Invalid(v, "memory quantity must be a string or number")
		}

		return conversion.Number(f / 1e6), nil
	}

	mul, div := 1.0, 1e6
	for _, unit := range memoryUnits {
		if trimmed, ok := strings.CutSuffix(s, unit.suffix); ok {
			s = trimmed
			mul, div = unit.mul, unit.div
			break
		}
	}

	f, ok := conversion.Float(s)
	if !ok {
		return nil, conversion.Invalid(v, "malformed memory quantity")
	}

	return conversion.Number(f * mul / div), nil
}

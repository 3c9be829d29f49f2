package k8s

import (
	"time"

	"k8s-translator/internal/conversion"
	"k8s-translator/internal/path"
)

const (
	stateOperational = "operational"
	stateUnknown     = "unknown-state"

	conditionReady   = "Ready"
	conditionTrue    = "True"
	conditionUnknown = "Unknown"

	addressExternal = "ExternalIP"
	addressInternal = "InternalIP"
)

// stateTo writes the host state as the node's Ready condition.
func stateTo(v any, _ path.Path) (any, error) {
	status := conditionUnknown
	if v == stateOperational {
		status = conditionTrue
	}

	return map[string]any{"type": conditionReady, "status": status}, nil
}

func stateFrom(args ...conversion.Arg) (any, error) {
	if len(args) == 0 || args[0].Value == nil {
		return nil, nil
	}

	cond, ok := conversion.Map(args[0].Value)
	if !ok {
		return nil, conversion.Invalid(args[0].Value, "node condition must be a map")
	}

	status, ok := cond["status"]
	if !ok || status == nil {
		return nil, nil
	}

	if status == conditionTrue {
		return stateOperational, nil
	}

	return stateUnknown, nil
}

func addressTo(kind string) conversion.Forward {
	return func(v any, _ path.Path) (any, error) {
		s, ok := v.(string)
		if !ok || s == "" {
			return nil, conversion.Invalid(v, "address must be a non-empty string")
		}

		return map[string]any{"type": kind, "address": s}, nil
	}
}

func addressFrom(args ...conversion.Arg) (any, error) {
	if len(args) == 0 || args[0].Value == nil {
		return nil, nil
	}

	addr, ok := conversion.Map(args[0].Value)
	if !ok {
		return nil, conversion.Invalid(args[0].Value, "address must be a map")
	}

	return addr["address"], nil
}

// timestampTo writes epoch milliseconds as an RFC 3339 time. Strings that
// already parse as RFC 3339 are normalized to UTC.
func timestampTo(v any, _ path.Path) (any, error) {
	if s, ok := v.(string); ok {
		t, err := time.Parse(time.RFC3339Nano, s)
		if err != nil {
			return nil, conversion.Invalid(v, "timestamp must be RFC 3339 or epoch milliseconds")
		}

		return t.UTC().Format(time.RFC3339Nano), nil
	}

	ms, ok := conversion.Float(v)
	if !ok {
		return nil, conversion.Invalid(v, "timestamp must be RFC 3339 or epoch milliseconds")
	}

	return time.UnixMilli(int64(ms)).UTC().Format(time.RFC3339Nano), nil
}

// timestampFrom reads an RFC 3339 time back as epoch milliseconds.
func timestampFrom(args ...conversion.Arg) (any, error) {
	if len(args) == 0 || args[0].Value == nil {
		return nil, nil
	}

	s, ok := args[0].Value.(string)
	if !ok {
		return nil, conversion.Invalid(args[0].Value, "timestamp must be a string")
	}

	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return nil, conversion.Invalid(s, "malformed timestamp")
	}

	return int(t.UnixMilli()), nil
}

package k8s

import (
	"slices"
	"strings"

	"k8s-translator/internal/common"
	"k8s-translator/internal/conversion"
	"k8s-translator/internal/path"
)

const (
	udpSuffix   = "/udp"
	protocolUDP = "UDP"

	restartAlways = "Always"
	restartNever  = "Never"

	networkHost   = "host"
	networkBridge = "bridge"
)

// commandTo splits a command line on whitespace.
func commandTo(v any, _ path.Path) (any, error) {
	if args, ok := conversion.Seq(v); ok {
		return args, nil
	}

	s, ok := v.(string)
	if !ok {
		return nil, conversion.Invalid(v, "command must be a string")
	}

	fields := strings.Fields(s)
	if len(fields) == 0 {
		return nil, nil
	}

	out := make([]any, len(fields))
	for i, f := range fields {
		out[i] = f
	}

	return out, nil
}

func commandFrom(args ...conversion.Arg) (any, error) {
	if len(args) == 0 || args[0].Value == nil {
		return nil, nil
	}

	seq, ok := conversion.Seq(args[0].Value)
	if !ok {
		return nil, conversion.Invalid(args[0].Value, "command must be a list")
	}

	if len(seq) == 0 {
		return nil, nil
	}

	parts := make([]string, len(seq))
	for i, s := range seq {
		parts[i] = conversion.String(s)
	}

	return strings.Join(parts, " "), nil
}

// privilegedTo accepts a bool or a textual one such as "true" or "yes".
func privilegedTo(v any, _ path.Path) (any, error) {
	b, ok := conversion.Bool(v)
	if !ok {
		return nil, conversion.Invalid(v, "privileged must be a boolean")
	}

	return b, nil
}

func respawnTo(v any, _ path.Path) (any, error) {
	b, ok := conversion.Bool(v)
	if !ok {
		return nil, conversion.Invalid(v, "respawn must be a boolean")
	}

	if b {
		return restartAlways, nil
	}

	return restartNever, nil
}

func respawnFrom(args ...conversion.Arg) (any, error) {
	if len(args) == 0 || args[0].Value == nil {
		return nil, nil
	}

	return args[0].Value == restartAlways, nil
}

func networkModeTo(v any, _ path.Path) (any, error) {
	return v == networkHost, nil
}

func networkModeFrom(args ...conversion.Arg) (any, error) {
	if len(args) == 0 || args[0].Value == nil {
		return nil, nil
	}

	if conversion.Truthy(args[0].Value) {
		return networkHost, nil
	}

	return networkBridge, nil
}

// envTo turns a name/value map into an env list sorted by name.
func envTo(v any, _ path.Path) (any, error) {
	vars, ok := conversion.Map(v)
	if !ok {
		return nil, conversion.Invalid(v, "env_vars must be a map")
	}

	names := make([]string, 0, len(vars))
	for name := range vars {
		names = append(names, name)
	}

	slices.Sort(names)

	out := make([]any, 0, len(names))
	for _, name := range names {
		out = append(out, map[string]any{
			"name":  name,
			"value": conversion.String(vars[name]),
		})
	}

	return out, nil
}

func envFrom(args ...conversion.Arg) (any, error) {
	if len(args) == 0 || args[0].Value == nil {
		return nil, nil
	}

	seq, ok := conversion.Seq(args[0].Value)
	if !ok {
		return nil, conversion.Invalid(args[0].Value, "env must be a list")
	}

	out := map[string]any{}

	for _, item := range seq {
		entry, ok := conversion.Map(item)
		if !ok {
			return nil, conversion.Invalid(item, "env entry must be a map")
		}

		name, ok := entry["name"].(string)
		if !ok || name == "" {
			return nil, conversion.Invalid(item, "env entry has no name")
		}

		out[name] = entry["value"]
	}

	if len(out) == 0 {
		return nil, nil
	}

	return out, nil
}

// parsePort reads 8080, "8080" or "53/udp".
func parsePort(v any) (int, bool, error) {
	udp := false

	if s, ok := v.(string); ok {
		s, udp = strings.CutSuffix(strings.TrimSpace(s), udpSuffix)
		v = s
	}

	f, ok := conversion.Float(v)
	if !ok || f != float64(int(f)) || !common.IsInRange(1, f, 65535) {
		return 0, false, conversion.Invalid(v, "port must be an integer between 1 and 65535")
	}

	return int(f), udp, nil
}

var (
	hostPortKey = path.Of("host_port")
	portPath    = path.MustParse("containers.0.ports.0")
)

// CheckPorts rejects an application whose host and container ports use
// different protocols. Both ports share one Kubernetes port object with a
// single protocol. Malformed ports are left to the port conversions.
func CheckPorts(app map[string]any) error {
	host, container := app["host_port"], app["container_port"]
	if host == nil || container == nil {
		return nil
	}

	_, hostUDP, hostErr := parsePort(host)
	_, containerUDP, containerErr := parsePort(container)

	if hostErr != nil || containerErr != nil || hostUDP == containerUDP {
		return nil
	}

	return &conversion.ConversionError{
		Direction: conversion.DirectionTo,
		Field:     hostPortKey,
		Path:      portPath,
		Cause:     conversion.Invalid(host, "protocol differs from container_port %v", container),
	}
}

func portTo(field string) conversion.Forward {
	return func(v any, _ path.Path) (any, error) {
		port, udp, err := parsePort(v)
		if err != nil {
			return nil, err
		}

		out := map[string]any{field: port}
		if udp {
			out["protocol"] = protocolUDP
		}

		return out, nil
	}
}

func portFrom(field string) conversion.Reverse {
	return func(args ...conversion.Arg) (any, error) {
		if len(args) == 0 || args[0].Value == nil {
			return nil, nil
		}

		spec, ok := conversion.Map(args[0].Value)
		if !ok {
			return nil, conversion.Invalid(args[0].Value, "port must be a map")
		}

		port, ok := spec[field]
		if !ok || port == nil {
			return nil, nil
		}

		if spec["protocol"] == protocolUDP {
			return conversion.String(port) + udpSuffix, nil
		}

		return port, nil
	}
}

package translator

import (
	"fmt"
	"strings"

	"k8s-translator/internal/common"
	"k8s-translator/internal/conversion"
)

// KindEnum names the Kubernetes object a descriptor is translated to.
type KindEnum int

const (
	KindUnknown KindEnum = iota
	KindPod
	KindReplicationController
	KindNode

	// KindTotal is the number of kinds, KindUnknown included
	KindTotal = int(iota)
)

var kindNames = map[string]KindEnum{
	"pod":                    KindPod,
	"pods":                   KindPod,
	"rc":                     KindReplicationController,
	"replicationcontroller":  KindReplicationController,
	"replication-controller": KindReplicationController,
	"node":                   KindNode,
	"nodes":                  KindNode,
	"host":                   KindNode,
}

// ParseKind reads a kind name, ignoring case.
func ParseKind(s string) (KindEnum, error) {
	if k, ok := kindNames[strings.ToLower(strings.TrimSpace(s))]; ok {
		return k, nil
	}

	return KindUnknown, fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

func (k KindEnum) IsValid() bool {
	return k > KindUnknown && int(k) < KindTotal
}

func (k KindEnum) String() string {
	switch k {
	case KindPod:
		return "pod"
	case KindReplicationController:
		return "replication-controller"
	case KindNode:
		return "node"
	default:
		return common.UnknownStr
	}
}

// Direction tells Translate which way to convert.
type Direction = conversion.Direction

const (
	// ToKubernetes converts a descriptor into a Kubernetes object.
	ToKubernetes = conversion.DirectionTo
	// FromKubernetes converts a Kubernetes object back into a descriptor.
	FromKubernetes = conversion.DirectionFrom
)

// ParseDirection reads "to" or "from", ignoring case.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "to":
		return ToKubernetes, nil
	case "from":
		return FromKubernetes, nil
	}

	return Direction(-1), fmt.Errorf("%w: %q", ErrUnknownDirection, s)
}

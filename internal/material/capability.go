package material

import "strings"

// Capability is one optional facet a material may declare.
type Capability uint16

// Capabilities, one bit each.
const (
	CapDensity Capability = 1 << iota
	CapMelting
	CapIgnition
	CapBurning
	CapHeatValue
	CapRock
	CapElement
	CapMetal
	CapAlloy
)

var capabilityNames = []struct {
	cap  Capability
	name string
}{
	{CapDensity, "density"},
	{CapMelting, "melting"},
	{CapIgnition, "ignition"},
	{CapBurning, "burning"},
	{CapHeatValue, "heat-value"},
	{CapRock, "rock"},
	{CapElement, "element"},
	{CapMetal, "metal"},
	{CapAlloy, "alloy"},
}

// CapabilitySet is a set of capabilities.
type CapabilitySet uint16

// Has reports whether every capability in c is in the set.
func (s CapabilitySet) Has(c Capability) bool {
	return c != 0 && uint16(s)&uint16(c) == uint16(c)
}

func (s CapabilitySet) with(c Capability) CapabilitySet {
	return CapabilitySet(uint16(s) | uint16(c))
}

// List returns the capability names in declaration order.
func (s CapabilitySet) List() []string {
	out := make([]string, 0, len(capabilityNames))
	for _, entry := range capabilityNames {
		if s.Has(entry.cap) {
			out = append(out, entry.name)
		}
	}
	return out
}

func (s CapabilitySet) String() string {
	return strings.Join(s.List(), ",")
}

func (c Capability) String() string {
	return CapabilitySet(c).String()
}

package material

import (
	"strings"

	"golang.org/x/text/language"

	platformi18n "github.com/louisbranch/materials/internal/platform/i18n"
)

// Names maps a language to a display name. An empty string means untranslated.
type Names map[language.Tag]string

// Material is one catalog entry. Values are immutable after New returns.
type Material struct {
	key   string
	names Names

	density   *Density
	melting   *Temperature
	ignition  *Temperature
	burning   *Temperature
	heatValue *HeatValue
	rock      *Rock
	element   *Element
	metal     MetalFamily
	alloy     []Component
}

// Option declares one capability on a material.
type Option func(*Material)

// New creates a material with the given key, names and capabilities.
func New(key string, names Names, opts ...Option) *Material {
	m := &Material{
		key:   key,
		names: make(Names, len(names)),
	}
	for tag, name := range names {
		m.names[tag] = name
	}
	for _, opt := range opts {
		if opt != nil {
			opt(m)
		}
	}
	return m
}

// WithDensity declares a density range in g/cm³.
func WithDensity(min, max GramsPerCm3) Option {
	return func(m *Material) {
		m.density = &Density{Range: Range[GramsPerCm3]{Min: min, Max: max}}
	}
}

// WithMelting declares a melting point range in °C.
func WithMelting(min, max Celsius) Option {
	return func(m *Material) {
		m.melting = &Temperature{Range: Range[Celsius]{Min: min, Max: max}}
	}
}

// WithIgnition declares an ignition temperature range in °C.
func WithIgnition(min, max Celsius) Option {
	return func(m *Material) {
		m.ignition = &Temperature{Range: Range[Celsius]{Min: min, Max: max}}
	}
}

// WithBurning declares a burning (flame) temperature range in °C.
func WithBurning(min, max Celsius) Option {
	return func(m *Material) {
		m.burning = &Temperature{Range: Range[Celsius]{Min: min, Max: max}}
	}
}

// WithHeatValue declares a heat value range in MJ/kg.
func WithHeatValue(min, max MJPerKg) Option {
	return func(m *Material) {
		m.heatValue = &HeatValue{Range: Range[MJPerKg]{Min: min, Max: max}}
	}
}

// WithRock declares a rock classification.
func WithRock(rock Rock) Option {
	return func(m *Material) {
		m.rock = &rock
	}
}

// WithElement declares the material as a chemical element.
func WithElement(number uint8, symbol string) Option {
	return func(m *Material) {
		m.element = &Element{Number: number, Symbol: symbol}
	}
}

// WithMetal declares the metal family.
func WithMetal(family MetalFamily) Option {
	return func(m *Material) {
		m.metal = family
	}
}

// WithComposition declares the alloy composition in order.
func WithComposition(components ...Component) Option {
	return func(m *Material) {
		m.alloy = append([]Component(nil), components...)
	}
}

// Key returns the stable symbolic name.
func (m *Material) Key() string {
	return m.key
}

func (m *Material) String() string {
	return m.key
}

// Name returns the display name for tag, or "" when the material has no
// translation for it or the tag is not supported.
func (m *Material) Name(tag language.Tag) string {
	if !platformi18n.IsSupported(tag) {
		return ""
	}
	name := m.names[tag]
	if strings.TrimSpace(name) == "" {
		return ""
	}
	return name
}

// Names returns a copy of the supported-language names, including blanks
// for untranslated languages.
func (m *Material) Names() Names {
	out := make(Names, platformi18n.Count())
	for _, tag := range platformi18n.SupportedTags() {
		out[tag] = m.Name(tag)
	}
	return out
}

// TranslationProgress returns how many supported languages have a name.
func (m *Material) TranslationProgress() int {
	progress := 0
	for _, tag := range platformi18n.SupportedTags() {
		if m.Name(tag) != "" {
			progress++
		}
	}
	return progress
}

// Capabilities returns the set of declared capabilities.
func (m *Material) Capabilities() CapabilitySet {
	var set CapabilitySet
	if m.density != nil {
		set = set.with(CapDensity)
	}
	if m.melting != nil {
		set = set.with(CapMelting)
	}
	if m.ignition != nil {
		set = set.with(CapIgnition)
	}
	if m.burning != nil {
		set = set.with(CapBurning)
	}
	if m.heatValue != nil {
		set = set.with(CapHeatValue)
	}
	if m.rock != nil {
		set = set.with(CapRock)
	}
	if m.element != nil {
		set = set.with(CapElement)
	}
	if m.metal != 0 {
		set = set.with(CapMetal)
	}
	if len(m.alloy) > 0 {
		set = set.with(CapAlloy)
	}
	return set
}

// Has reports whether the material declares capability c.
func (m *Material) Has(c Capability) bool {
	return m.Capabilities().Has(c)
}

// Density returns the declared density.
func (m *Material) Density() (Density, bool) {
	if m.density == nil {
		return Density{}, false
	}
	return *m.density, true
}

// Melting returns the declared melting point.
func (m *Material) Melting() (Temperature, bool) {
	return temperature(m.melting)
}

// Ignition returns the declared ignition temperature.
func (m *Material) Ignition() (Temperature, bool) {
	return temperature(m.ignition)
}

// Burning returns the declared burning temperature.
func (m *Material) Burning() (Temperature, bool) {
	return temperature(m.burning)
}

// HeatValue returns the declared heat value.
func (m *Material) HeatValue() (HeatValue, bool) {
	if m.heatValue == nil {
		return HeatValue{}, false
	}
	return *m.heatValue, true
}

// Rock returns the rock classification.
func (m *Material) Rock() (Rock, bool) {
	if m.rock == nil {
		return Rock{}, false
	}
	return *m.rock, true
}

// Element returns the chemical element identity.
func (m *Material) Element() (Element, bool) {
	if m.element == nil {
		return Element{}, false
	}
	return *m.element, true
}

// Metal returns the metal family.
func (m *Material) Metal() (MetalFamily, bool) {
	return m.metal, m.metal != 0
}

// Alloy returns a copy of the alloy composition in declared order.
func (m *Material) Alloy() ([]Component, bool) {
	if len(m.alloy) == 0 {
		return nil, false
	}
	return append([]Component(nil), m.alloy...), true
}

func temperature(t *Temperature) (Temperature, bool) {
	if t == nil {
		return Temperature{}, false
	}
	return *t, true
}

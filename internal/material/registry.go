package material

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	apperrors "github.com/louisbranch/materials/internal/platform/errors"
)

// Registry is an ordered, validated, read-only set of materials.
type Registry struct {
	materials []*Material
	byKey     map[string]*Material
}

// NewRegistry validates materials and returns them as a registry in the
// given order.
func NewRegistry(materials ...*Material) (*Registry, error) {
	r := &Registry{
		materials: make([]*Material, 0, len(materials)),
		byKey:     make(map[string]*Material, len(materials)),
	}
	for i, m := range materials {
		if m == nil || strings.TrimSpace(m.key) == "" {
			return nil, apperrors.WithMetadata(
				apperrors.CodeMaterialKeyEmpty,
				fmt.Sprintf("material at index %d has an empty key", i),
				map[string]string{"Index": strconv.Itoa(i)},
			)
		}
		if _, exists := r.byKey[m.key]; exists {
			return nil, apperrors.WithMetadata(
				apperrors.CodeMaterialDuplicate,
				fmt.Sprintf("material %q is registered more than once", m.key),
				map[string]string{"Key": m.key},
			)
		}
		if err := validateMaterial(m); err != nil {
			return nil, err
		}
		r.materials = append(r.materials, m)
		r.byKey[m.key] = m
	}
	for _, m := range r.materials {
		if err := r.validateAlloy(m); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// All returns every material in declaration order. The slice is a fresh copy.
func (r *Registry) All() []*Material {
	if r == nil {
		return nil
	}
	return append([]*Material(nil), r.materials...)
}

// Len returns the number of registered materials.
func (r *Registry) Len() int {
	if r == nil {
		return 0
	}
	return len(r.materials)
}

// Lookup returns the material registered under key.
func (r *Registry) Lookup(key string) (*Material, bool) {
	if r == nil {
		return nil, false
	}
	m, ok := r.byKey[strings.TrimSpace(key)]
	return m, ok
}

// With returns the materials that declare capability c, in declaration order.
func (r *Registry) With(c Capability) []*Material {
	if r == nil {
		return nil
	}
	out := make([]*Material, 0)
	for _, m := range r.materials {
		if m.Has(c) {
			out = append(out, m)
		}
	}
	return out
}

// SortedByName returns materials ordered by their display name in tag using
// the language's collation rules. Untranslated materials sort last, by key.
func SortedByName(materials []*Material, tag language.Tag) []*Material {
	out := append([]*Material(nil), materials...)
	collator := collate.New(tag)
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i].Name(tag), out[j].Name(tag)
		switch {
		case a == "" && b == "":
			return out[i].key < out[j].key
		case a == "":
			return false
		case b == "":
			return true
		}
		if c := collator.CompareString(a, b); c != 0 {
			return c < 0
		}
		return out[i].key < out[j].key
	})
	return out
}

func validateMaterial(m *Material) error {
	if m.density != nil {
		if err := validateRange(m.key, "density", m.density.Range); err != nil {
			return err
		}
	}
	for _, entry := range []struct {
		property string
		value    *Temperature
	}{
		{"melting", m.melting},
		{"ignition", m.ignition},
		{"burning", m.burning},
	} {
		if entry.value == nil {
			continue
		}
		if err := validateRange(m.key, entry.property, entry.value.Range); err != nil {
			return err
		}
	}
	if m.heatValue != nil {
		if err := validateRange(m.key, "heat value", m.heatValue.Range); err != nil {
			return err
		}
	}
	if m.rock != nil && !m.rock.valid() {
		return apperrors.WithMetadata(
			apperrors.CodeRockSubgroupInvalid,
			fmt.Sprintf("rock %q has group %s without a matching subgroup", m.key, m.rock.group),
			map[string]string{"Key": m.key, "Group": m.rock.group.String()},
		)
	}
	if m.metal != 0 && !m.metal.valid() {
		family := strconv.Itoa(int(m.metal))
		return apperrors.WithMetadata(
			apperrors.CodeMetalFamilyInvalid,
			fmt.Sprintf("material %q has unknown metal family %s", m.key, family),
			map[string]string{"Key": m.key, "Family": family},
		)
	}
	if m.element != nil {
		if !m.element.valid() {
			return apperrors.WithMetadata(
				apperrors.CodeElementInvalidAtomicNumber,
				fmt.Sprintf("element %q has atomic number %d outside 1..%d", m.key, m.element.Number, MaxAtomicNumber),
				map[string]string{"Key": m.key, "Number": strconv.Itoa(int(m.element.Number))},
			)
		}
		if !validSymbol(m.element.Symbol) {
			return apperrors.WithMetadata(
				apperrors.CodeElementInvalidSymbol,
				fmt.Sprintf("element %q has invalid symbol %q", m.key, m.element.Symbol),
				map[string]string{"Key": m.key, "Symbol": m.element.Symbol},
			)
		}
	}
	return nil
}

func (r *Registry) validateAlloy(m *Material) error {
	for _, component := range m.alloy {
		if component.Material == nil {
			return apperrors.WithMetadata(
				apperrors.CodeAlloyComponentMissing,
				fmt.Sprintf("alloy %q has a component without a material", m.key),
				map[string]string{"Key": m.key},
			)
		}
		key := component.Material.key
		if registered, ok := r.byKey[key]; !ok || registered != component.Material {
			return apperrors.WithMetadata(
				apperrors.CodeAlloyComponentUnknown,
				fmt.Sprintf("alloy %q lists unregistered component %q", m.key, key),
				map[string]string{"Key": m.key, "Component": key},
			)
		}
		if !component.Material.Has(CapElement) {
			return apperrors.WithMetadata(
				apperrors.CodeAlloyComponentNotElement,
				fmt.Sprintf("alloy %q lists component %q, which is not an element", m.key, key),
				map[string]string{"Key": m.key, "Component": key},
			)
		}
		if err := validateRange(m.key, key+" share", component.Range()); err != nil {
			return err
		}
	}
	return nil
}

func validateRange[T Quantity](key, property string, r Range[T]) error {
	if r.Valid() {
		return nil
	}
	minValue := strconv.FormatFloat(float64(r.Min), 'g', -1, 64)
	maxValue := strconv.FormatFloat(float64(r.Max), 'g', -1, 64)
	return apperrors.WithMetadata(
		apperrors.CodeInvalidRange,
		fmt.Sprintf("material %q declares %s range [%s, %s] with min above max", key, property, minValue, maxValue),
		map[string]string{"Key": key, "Property": property, "Min": minValue, "Max": maxValue},
	)
}

package material

import "math"

// Component is one entry of an alloy composition: an element and its
// declared mass-fraction range. Ranges are not required to sum to 100.
type Component struct {
	Material *Material
	Min      Percent
	Max      Percent
}

// Part builds a composition entry.
func Part(element *Material, min, max Percent) Component {
	return Component{Material: element, Min: min, Max: max}
}

// Range returns the declared share range.
func (c Component) Range() Range[Percent] {
	return Range[Percent]{Min: c.Min, Max: c.Max}
}

// AvgPercent returns the midpoint of the declared range.
func (c Component) AvgPercent() Percent {
	return c.Range().Avg()
}

// Share is one resolved composition entry.
type Share struct {
	Key     string
	Percent Percent
}

// nominalTolerance is how far the midpoint sum may drift from 100% before
// the first component absorbs the difference.
const nominalTolerance = 0.01

// NominalComposition returns the alloy's midpoint composition in declared
// order. When the midpoints do not add up to 100%, the first component
// absorbs the difference so the result totals 100%. If absorbing it would
// leave the first share below zero, the midpoints are returned unadjusted.
func (m *Material) NominalComposition() ([]Share, bool) {
	components, ok := m.Alloy()
	if !ok {
		return nil, false
	}

	shares := make([]Share, 0, len(components))
	var total Percent
	for _, component := range components {
		mid := component.AvgPercent()
		key := ""
		if component.Material != nil {
			key = component.Material.Key()
		}
		shares = append(shares, Share{Key: key, Percent: mid})
		total += mid
	}
	drift := 100 - total
	if math.Abs(float64(drift)) > nominalTolerance && shares[0].Percent+drift >= 0 {
		shares[0].Percent += drift
	}
	return shares, true
}

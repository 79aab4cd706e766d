package material

// Density is a declared density range.
type Density struct {
	Range Range[GramsPerCm3]
}

// AvgGramsPerCm3 returns the mean density in g/cm³.
func (d Density) AvgGramsPerCm3() GramsPerCm3 {
	return d.Range.Avg()
}

// AvgKgPerM3 returns the mean density in kg/m³.
func (d Density) AvgKgPerM3() KgPerM3 {
	return d.AvgGramsPerCm3().KgPerM3()
}

// Temperature is a declared temperature range, used for melting, ignition
// and burning points.
type Temperature struct {
	Range Range[Celsius]
}

// AvgCelsius returns the mean temperature in °C.
func (t Temperature) AvgCelsius() Celsius {
	return t.Range.Avg()
}

// AvgKelvin returns the mean temperature in Kelvin.
func (t Temperature) AvgKelvin() Kelvin {
	return t.AvgCelsius().Kelvin()
}

// HeatValue is a declared heat value range in MJ/kg.
//
// AvgKcalPerKg and AvgMJPerKg keep the historical accessor names, which do
// not match the units they return: AvgKcalPerKg is the MJ/kg mean and
// AvgMJPerKg is that mean converted to kcal/kg. MeanMJPerKg and
// MeanKcalPerKg return the same numbers under their correct units.
type HeatValue struct {
	Range Range[MJPerKg]
}

// AvgKcalPerKg returns the mean of the declared range (MJ/kg, see HeatValue).
func (h HeatValue) AvgKcalPerKg() float64 {
	return float64(h.Range.Avg())
}

// AvgMJPerKg returns AvgKcalPerKg multiplied by KcalPerMJ (kcal/kg, see HeatValue).
func (h HeatValue) AvgMJPerKg() float64 {
	return h.AvgKcalPerKg() * KcalPerMJ
}

// MeanMJPerKg returns the mean heat value in MJ/kg.
func (h HeatValue) MeanMJPerKg() MJPerKg {
	return h.Range.Avg()
}

// MeanKcalPerKg returns the mean heat value in kcal/kg.
func (h HeatValue) MeanKcalPerKg() KcalPerKg {
	return h.MeanMJPerKg().KcalPerKg()
}

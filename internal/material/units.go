package material

// Celsius is a temperature in degrees Celsius.
type Celsius float64

// Kelvin is an absolute temperature.
type Kelvin float64

// GramsPerCm3 is a density in g/cm³.
type GramsPerCm3 float64

// KgPerM3 is a density in kg/m³.
type KgPerM3 float64

// MJPerKg is a specific energy in megajoules per kilogram.
type MJPerKg float64

// KcalPerKg is a specific energy in kilocalories per kilogram.
type KcalPerKg float64

// Percent is a mass fraction in percent.
type Percent float64

const (
	// AbsoluteZeroCelsius is 0 K expressed as an offset from 0 °C.
	AbsoluteZeroCelsius = 273.15
	// KgPerM3InGramsPerCm3 converts g/cm³ to kg/m³.
	KgPerM3InGramsPerCm3 = 1000.0
	// KcalPerMJ converts MJ to kcal.
	KcalPerMJ = 238.8458966275
)

// Kelvin converts c to Kelvin.
func (c Celsius) Kelvin() Kelvin {
	return Kelvin(float64(c) + AbsoluteZeroCelsius)
}

// Celsius converts k to degrees Celsius.
func (k Kelvin) Celsius() Celsius {
	return Celsius(float64(k) - AbsoluteZeroCelsius)
}

// KgPerM3 converts d to kg/m³.
func (d GramsPerCm3) KgPerM3() KgPerM3 {
	return KgPerM3(float64(d) * KgPerM3InGramsPerCm3)
}

// GramsPerCm3 converts d to g/cm³.
func (d KgPerM3) GramsPerCm3() GramsPerCm3 {
	return GramsPerCm3(float64(d) / KgPerM3InGramsPerCm3)
}

// KcalPerKg converts e to kcal/kg.
func (e MJPerKg) KcalPerKg() KcalPerKg {
	return KcalPerKg(float64(e) * KcalPerMJ)
}

// MJPerKg converts e to MJ/kg.
func (e KcalPerKg) MJPerKg() MJPerKg {
	return MJPerKg(float64(e) / KcalPerMJ)
}

// Quantity is any of the float-based unit types above.
type Quantity interface {
	~float64
}

// Range is a declared closed interval [Min, Max] of a physical quantity.
type Range[T Quantity] struct {
	Min T
	Max T
}

// Avg returns the arithmetic mean of the interval bounds.
func (r Range[T]) Avg() T {
	return (r.Min + r.Max) * 0.5
}

// Valid reports whether Min <= Max.
func (r Range[T]) Valid() bool {
	return r.Min <= r.Max
}

// Contains reports whether v lies inside the closed interval.
func (r Range[T]) Contains(v T) bool {
	return v >= r.Min && v <= r.Max
}

package material

import (
	"math"
	"testing"
)

const tolerance = 1e-9

func approx(got, want float64) bool {
	return math.Abs(got-want) <= tolerance*math.Max(1, math.Abs(want))
}

func TestUnitConversions(t *testing.T) {
	tests := []struct {
		name string
		got  float64
		want float64
	}{
		{"celsius to kelvin", float64(Celsius(0).Kelvin()), 273.15},
		{"kelvin to celsius", float64(Kelvin(0).Celsius()), -273.15},
		{"boiling water", float64(Celsius(100).Kelvin()), 373.15},
		{"g/cm3 to kg/m3", float64(GramsPerCm3(2.85).KgPerM3()), 2850},
		{"kg/m3 to g/cm3", float64(KgPerM3(7870).GramsPerCm3()), 7.87},
		{"MJ to kcal", float64(MJPerKg(1).KcalPerKg()), KcalPerMJ},
		{"kcal to MJ", float64(KcalPerKg(KcalPerMJ).MJPerKg()), 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !approx(tt.got, tt.want) {
				t.Fatalf("got %v, want %v", tt.got, tt.want)
			}
		})
	}
}

func TestRangeAvg(t *testing.T) {
	tests := []struct {
		name  string
		r     Range[Celsius]
		want  Celsius
		valid bool
	}{
		{"ordered", Range[Celsius]{Min: 1100, Max: 1250}, 1175, true},
		{"point", Range[Celsius]{Min: 7.87, Max: 7.87}, 7.87, true},
		{"inverted", Range[Celsius]{Min: 10, Max: 0}, 5, false},
		{"negative", Range[Celsius]{Min: -40, Max: -10}, -25, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.r.Avg(); !approx(float64(got), float64(tt.want)) {
				t.Fatalf("Avg() = %v, want %v", got, tt.want)
			}
			if got := tt.r.Valid(); got != tt.valid {
				t.Fatalf("Valid() = %v, want %v", got, tt.valid)
			}
		})
	}
}

func TestRangeContains(t *testing.T) {
	r := Range[Percent]{Min: 10, Max: 50}
	for _, v := range []Percent{10, 30, 50} {
		if !r.Contains(v) {
			t.Fatalf("expected %v inside %v", v, r)
		}
	}
	for _, v := range []Percent{9.99, 50.01} {
		if r.Contains(v) {
			t.Fatalf("expected %v outside %v", v, r)
		}
	}
}

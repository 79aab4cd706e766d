package material

import (
	"reflect"
	"testing"

	"golang.org/x/text/language"
)

func TestBasaltDerivedValues(t *testing.T) {
	density, ok := Basalt.Density()
	if !ok {
		t.Fatal("expected basalt density")
	}
	if got := density.AvgGramsPerCm3(); !approx(float64(got), 2.85) {
		t.Fatalf("AvgGramsPerCm3() = %v, want 2.85", got)
	}
	if got := density.AvgKgPerM3(); !approx(float64(got), 2850) {
		t.Fatalf("AvgKgPerM3() = %v, want 2850", got)
	}

	melting, ok := Basalt.Melting()
	if !ok {
		t.Fatal("expected basalt melting point")
	}
	if got := melting.AvgCelsius(); !approx(float64(got), 1175) {
		t.Fatalf("AvgCelsius() = %v, want 1175", got)
	}
	if got := melting.AvgKelvin(); !approx(float64(got), 1448.15) {
		t.Fatalf("AvgKelvin() = %v, want 1448.15", got)
	}
}

func TestDerivedValuesFollowDeclaredRanges(t *testing.T) {
	for _, m := range All() {
		if density, ok := m.Density(); ok {
			avg := (float64(density.Range.Min) + float64(density.Range.Max)) / 2
			if got := float64(density.AvgGramsPerCm3()); !approx(got, avg) {
				t.Fatalf("%s: AvgGramsPerCm3() = %v, want %v", m, got, avg)
			}
			if got := float64(density.AvgKgPerM3()); !approx(got, avg*1000) {
				t.Fatalf("%s: AvgKgPerM3() = %v, want %v", m, got, avg*1000)
			}
		}

		for _, entry := range []struct {
			property string
			get      func() (Temperature, bool)
		}{
			{"melting", m.Melting},
			{"ignition", m.Ignition},
			{"burning", m.Burning},
		} {
			temperature, ok := entry.get()
			if !ok {
				continue
			}
			avg := (float64(temperature.Range.Min) + float64(temperature.Range.Max)) / 2
			if got := float64(temperature.AvgCelsius()); !approx(got, avg) {
				t.Fatalf("%s %s: AvgCelsius() = %v, want %v", m, entry.property, got, avg)
			}
			if got := float64(temperature.AvgKelvin()); !approx(got, avg+273.15) {
				t.Fatalf("%s %s: AvgKelvin() = %v, want %v", m, entry.property, got, avg+273.15)
			}
		}

		if heat, ok := m.HeatValue(); ok {
			avg := (float64(heat.Range.Min) + float64(heat.Range.Max)) / 2
			if got := heat.AvgKcalPerKg(); !approx(got, avg) {
				t.Fatalf("%s: AvgKcalPerKg() = %v, want %v", m, got, avg)
			}
			if got := heat.AvgMJPerKg(); !approx(got, avg*238.8458966275) {
				t.Fatalf("%s: AvgMJPerKg() = %v, want %v", m, got, avg*238.8458966275)
			}
		}
	}
}

func TestDerivedValuesAreIdempotent(t *testing.T) {
	for _, m := range All() {
		density, ok := m.Density()
		if !ok {
			continue
		}
		if density.AvgKgPerM3() != density.AvgKgPerM3() {
			t.Fatalf("%s: density average changed between calls", m)
		}
		again, _ := m.Density()
		if again != density {
			t.Fatalf("%s: density record changed between calls", m)
		}
	}
}

func TestHeatValueKeepsHistoricalNames(t *testing.T) {
	heat, ok := Coal.HeatValue()
	if !ok {
		t.Fatal("expected coal heat value")
	}
	if got := heat.AvgKcalPerKg(); !approx(got, 29.5) {
		t.Fatalf("AvgKcalPerKg() = %v, want 29.5", got)
	}
	if got := heat.AvgMJPerKg(); !approx(got, 29.5*238.8458966275) {
		t.Fatalf("AvgMJPerKg() = %v, want %v", got, 29.5*238.8458966275)
	}
	if got := heat.MeanMJPerKg(); !approx(float64(got), heat.AvgKcalPerKg()) {
		t.Fatalf("MeanMJPerKg() = %v, want %v", got, heat.AvgKcalPerKg())
	}
	if got := heat.MeanKcalPerKg(); !approx(float64(got), heat.AvgMJPerKg()) {
		t.Fatalf("MeanKcalPerKg() = %v, want %v", got, heat.AvgMJPerKg())
	}
}

func TestCapabilities(t *testing.T) {
	tests := []struct {
		material *Material
		want     string
	}{
		{Basalt, "density,melting,rock"},
		{Marble, "density,rock"},
		{Coal, "density,ignition,burning,heat-value,rock"},
		{Copper, "density,melting,element,metal"},
		{Magnesium, "density,melting,ignition,burning,heat-value,element,metal"},
		{Carbon, "density,ignition,heat-value,element"},
		{Brass, "density,melting,alloy"},
	}
	for _, tt := range tests {
		t.Run(tt.material.Key(), func(t *testing.T) {
			if got := tt.material.Capabilities().String(); got != tt.want {
				t.Fatalf("Capabilities() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestMissingCapabilityReportsNotOK(t *testing.T) {
	if _, ok := Marble.Melting(); ok {
		t.Fatal("expected marble to have no melting point")
	}
	if _, ok := Basalt.HeatValue(); ok {
		t.Fatal("expected basalt to have no heat value")
	}
	if _, ok := Basalt.Element(); ok {
		t.Fatal("expected basalt not to be an element")
	}
	if _, ok := Carbon.Metal(); ok {
		t.Fatal("expected carbon not to be a metal")
	}
	if _, ok := Copper.Alloy(); ok {
		t.Fatal("expected copper not to be an alloy")
	}
	if _, ok := Copper.Rock(); ok {
		t.Fatal("expected copper not to be a rock")
	}
	if Copper.Has(CapIgnition) {
		t.Fatal("expected copper without ignition")
	}
}

func TestRockClassification(t *testing.T) {
	rock, ok := Basalt.Rock()
	if !ok {
		t.Fatal("expected basalt rock")
	}
	if rock.Group() != GroupIgneous {
		t.Fatalf("Group() = %v, want igneous", rock.Group())
	}
	if sub, ok := rock.IgneousSubgroup(); !ok || sub != Extrusive {
		t.Fatalf("IgneousSubgroup() = %v, %v", sub, ok)
	}
	if _, ok := rock.SedimentarySubgroup(); ok {
		t.Fatal("expected no sedimentary subgroup on basalt")
	}
	if rock.String() != "igneous/extrusive" {
		t.Fatalf("String() = %q", rock.String())
	}

	marble, _ := Marble.Rock()
	if _, ok := marble.IgneousSubgroup(); ok {
		t.Fatal("expected no igneous subgroup on marble")
	}
	if _, ok := marble.SedimentarySubgroup(); ok {
		t.Fatal("expected no sedimentary subgroup on marble")
	}
	if marble.String() != "metamorphic" {
		t.Fatalf("String() = %q", marble.String())
	}
}

func TestElementIdentity(t *testing.T) {
	element, ok := Copper.Element()
	if !ok || element.Number != 29 || element.Symbol != "Cu" {
		t.Fatalf("Element() = %+v, %v", element, ok)
	}
	family, ok := Copper.Metal()
	if !ok || family != Transition {
		t.Fatalf("Metal() = %v, %v", family, ok)
	}
	if family.String() != "transition" {
		t.Fatalf("String() = %q", family.String())
	}
}

func TestBrassComposition(t *testing.T) {
	components, ok := Brass.Alloy()
	if !ok {
		t.Fatal("expected brass alloy")
	}
	if len(components) != 2 {
		t.Fatalf("components = %d, want 2", len(components))
	}
	if components[0].Material != Copper || components[0].Min != 50 || components[0].Max != 90 {
		t.Fatalf("first component = %+v", components[0])
	}
	if components[1].Material != Zinc || components[1].Min != 10 || components[1].Max != 50 {
		t.Fatalf("second component = %+v", components[1])
	}

	components[0].Material = Tin
	again, _ := Brass.Alloy()
	if again[0].Material != Copper {
		t.Fatal("expected Alloy() to return a copy")
	}
}

func TestNominalComposition(t *testing.T) {
	shares, ok := Brass.NominalComposition()
	if !ok {
		t.Fatal("expected brass composition")
	}
	want := []Share{{Key: "copper", Percent: 70}, {Key: "zinc", Percent: 30}}
	if !reflect.DeepEqual(shares, want) {
		t.Fatalf("NominalComposition() = %+v, want %+v", shares, want)
	}

	skewed := New("skewed", nil, WithComposition(Part(Copper, 60, 60), Part(Zinc, 20, 20)))
	shares, _ = skewed.NominalComposition()
	if !approx(float64(shares[0].Percent), 80) || !approx(float64(shares[1].Percent), 20) {
		t.Fatalf("skewed composition = %+v", shares)
	}

	over := New("over", nil, WithComposition(Part(Copper, 10, 10), Part(Zinc, 95, 95)))
	shares, _ = over.NominalComposition()
	if !approx(float64(shares[0].Percent), 5) || !approx(float64(shares[1].Percent), 95) {
		t.Fatalf("over composition = %+v", shares)
	}

	unbalanced := New("unbalanced", nil, WithComposition(Part(Copper, 1, 1), Part(Zinc, 150, 150)))
	shares, _ = unbalanced.NominalComposition()
	if !approx(float64(shares[0].Percent), 1) || !approx(float64(shares[1].Percent), 150) {
		t.Fatalf("unbalanced composition = %+v, want midpoints without a negative share", shares)
	}

	if _, ok := Copper.NominalComposition(); ok {
		t.Fatal("expected no composition for copper")
	}
}

func TestName(t *testing.T) {
	if got := Basalt.Name(language.Russian); got != "Базальт" {
		t.Fatalf("Name(ru) = %q", got)
	}
	if got := Basalt.Name(language.English); got != "Basalt" {
		t.Fatalf("Name(en) = %q", got)
	}
	if got := Basalt.Name(language.French); got != "" {
		t.Fatalf("Name(fr) = %q, want empty", got)
	}

	partial := New("partial", Names{language.English: "Partial", language.Russian: "   "})
	if got := partial.Name(language.Russian); got != "" {
		t.Fatalf("Name(ru) = %q, want empty for blank name", got)
	}
	if got := partial.TranslationProgress(); got != 1 {
		t.Fatalf("TranslationProgress() = %d, want 1", got)
	}
}

func TestNamesIsACopy(t *testing.T) {
	names := Names{language.English: "Sample"}
	m := New("sample", names)
	names[language.English] = "Changed"
	if got := m.Name(language.English); got != "Sample" {
		t.Fatalf("Name(en) = %q, want constructor copy", got)
	}

	out := m.Names()
	if len(out) != 2 {
		t.Fatalf("Names() = %v, want both supported languages", out)
	}
	if out[language.Russian] != "" {
		t.Fatalf("Names()[ru] = %q, want empty", out[language.Russian])
	}
	out[language.English] = "Mutated"
	if got := m.Name(language.English); got != "Sample" {
		t.Fatal("expected Names() to return a copy")
	}
}

func TestTranslationProgressWithoutNames(t *testing.T) {
	if got := New("bare", nil).TranslationProgress(); got != 0 {
		t.Fatalf("TranslationProgress() = %d, want 0", got)
	}
}

package material

import "golang.org/x/text/language"

var (
	ru = language.Russian
	en = language.English
)

// Rocks.
var (
	Basalt = New("basalt",
		Names{ru: "Базальт", en: "Basalt"},
		WithRock(IgneousRock(Extrusive)),
		WithMelting(1100.0, 1250.0),
		WithDensity(2.6, 3.1),
	)
	Granite = New("granite",
		Names{ru: "Гранит", en: "Granite"},
		WithRock(IgneousRock(Intrusive)),
		WithMelting(1215.0, 1260.0),
		WithDensity(2.6, 3.0),
	)
	Obsidian = New("obsidian",
		Names{ru: "Обсидиан", en: "Obsidian"},
		WithRock(IgneousRock(Extrusive)),
		WithMelting(1200.0, 1500.0),
		WithDensity(2.5, 2.6),
	)
	Limestone = New("limestone",
		Names{ru: "Известняк", en: "Limestone"},
		WithRock(SedimentaryRock(Biogenic)),
		WithDensity(2.5, 2.8),
	)
	RockSalt = New("rock_salt",
		Names{ru: "Каменная соль", en: "Rock salt"},
		WithRock(SedimentaryRock(Chemogenic)),
		WithMelting(800.0, 801.0),
		WithDensity(2.1, 2.2),
	)
	Sandstone = New("sandstone",
		Names{ru: "Песчаник", en: "Sandstone"},
		WithRock(SedimentaryRock(Clastic)),
		WithDensity(2.2, 2.8),
	)
	Marble = New("marble",
		Names{ru: "Мрамор", en: "Marble"},
		WithRock(MetamorphicRock()),
		WithDensity(2.55, 2.75),
	)
	Coal = New("coal",
		Names{ru: "Каменный уголь", en: "Coal"},
		WithRock(SedimentaryRock(Biogenic)),
		WithDensity(1.2, 1.5),
		WithIgnition(400.0, 500.0),
		WithBurning(1100.0, 1400.0),
		WithHeatValue(24.0, 35.0),
	)
)

// Elements.
var (
	Copper = New("copper",
		Names{ru: "Медь", en: "Copper"},
		WithElement(29, "Cu"),
		WithMetal(Transition),
		WithMelting(1083.0, 1085.0),
		WithDensity(8.92, 8.96),
	)
	Zinc = New("zinc",
		Names{ru: "Цинк", en: "Zinc"},
		WithElement(30, "Zn"),
		WithMetal(Transition),
		WithMelting(419.5, 419.6),
		WithDensity(7.13, 7.14),
	)
	Tin = New("tin",
		Names{ru: "Олово", en: "Tin"},
		WithElement(50, "Sn"),
		WithMetal(PostTransition),
		WithMelting(231.9, 232.0),
		WithDensity(7.26, 7.31),
	)
	Iron = New("iron",
		Names{ru: "Железо", en: "Iron"},
		WithElement(26, "Fe"),
		WithMetal(Transition),
		WithMelting(1535.0, 1539.0),
		WithDensity(7.87, 7.87),
	)
	Aluminium = New("aluminium",
		Names{ru: "Алюминий", en: "Aluminium"},
		WithElement(13, "Al"),
		WithMetal(PostTransition),
		WithMelting(660.3, 660.4),
		WithDensity(2.69, 2.71),
	)
	Lead = New("lead",
		Names{ru: "Свинец", en: "Lead"},
		WithElement(82, "Pb"),
		WithMetal(PostTransition),
		WithMelting(327.4, 327.5),
		WithDensity(11.34, 11.35),
	)
	Sodium = New("sodium",
		Names{ru: "Натрий", en: "Sodium"},
		WithElement(11, "Na"),
		WithMetal(Alkali),
		WithMelting(97.7, 97.8),
		WithDensity(0.968, 0.971),
	)
	Magnesium = New("magnesium",
		Names{ru: "Магний", en: "Magnesium"},
		WithElement(12, "Mg"),
		WithMetal(AlkalineEarth),
		WithMelting(650.0, 651.0),
		WithDensity(1.737, 1.738),
		WithIgnition(473.0, 650.0),
		WithBurning(3000.0, 3100.0),
		WithHeatValue(24.7, 25.0),
	)
	Carbon = New("carbon",
		Names{ru: "Углерод", en: "Carbon"},
		WithElement(6, "C"),
		WithDensity(2.09, 2.23),
		WithIgnition(700.0, 750.0),
		WithHeatValue(32.8, 33.0),
	)
	Sulfur = New("sulfur",
		Names{ru: "Сера", en: "Sulfur"},
		WithElement(16, "S"),
		WithMelting(112.8, 119.6),
		WithDensity(1.92, 2.07),
		WithIgnition(232.0, 235.0),
		WithBurning(1800.0, 1900.0),
		WithHeatValue(9.2, 9.3),
	)
)

// Alloys.
var (
	Brass = New("brass",
		Names{ru: "Латунь", en: "Brass"},
		WithMelting(900.0, 940.0),
		WithDensity(8.4, 8.73),
		WithComposition(
			Part(Copper, 50.0, 90.0),
			Part(Zinc, 10.0, 50.0),
		),
	)
	Bronze = New("bronze",
		Names{ru: "Бронза", en: "Bronze"},
		WithMelting(950.0, 1050.0),
		WithDensity(7.4, 8.9),
		WithComposition(
			Part(Copper, 80.0, 95.0),
			Part(Tin, 5.0, 20.0),
		),
	)
	Steel = New("steel",
		Names{ru: "Сталь", en: "Steel"},
		WithMelting(1425.0, 1540.0),
		WithDensity(7.75, 8.05),
		WithComposition(
			Part(Iron, 98.0, 99.9),
			Part(Carbon, 0.1, 2.0),
		),
	)
)

var defaultRegistry = mustNewRegistry(
	Basalt,
	Granite,
	Obsidian,
	Limestone,
	RockSalt,
	Sandstone,
	Marble,
	Coal,
	Copper,
	Zinc,
	Tin,
	Iron,
	Aluminium,
	Lead,
	Sodium,
	Magnesium,
	Carbon,
	Sulfur,
	Brass,
	Bronze,
	Steel,
)

// Default returns the process-wide material registry.
func Default() *Registry {
	return defaultRegistry
}

// All returns every registered material in declaration order.
func All() []*Material {
	return defaultRegistry.All()
}

// Lookup returns the registered material with the given key.
func Lookup(key string) (*Material, bool) {
	return defaultRegistry.Lookup(key)
}

func mustNewRegistry(materials ...*Material) *Registry {
	registry, err := NewRegistry(materials...)
	if err != nil {
		panic(err)
	}
	return registry
}

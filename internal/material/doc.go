// Package material is the in-memory catalog of physical materials.
//
// Every material is a *Material record with a stable key, a display name per
// supported language, and an arbitrary subset of optional capabilities:
//
//   - Density, averaged from a declared g/cm³ range
//   - Melting, Ignition and Burning temperatures, averaged from °C ranges
//   - HeatValue, averaged from a declared MJ/kg range
//   - Rock classification with the subgroup its group requires
//   - Element (atomic number and symbol) and Metal family
//   - Alloy composition as ordered element shares
//
// Capabilities are read through accessor pairs that report presence, for
// example:
//
//	if density, ok := material.Basalt.Density(); ok {
//		fmt.Println(density.AvgGramsPerCm3(), density.AvgKgPerM3())
//	}
//
// Unit getters live on the returned capability values, so a getter cannot be
// reached for a material that does not declare the capability. An absent
// capability is reported as absent, never as a zero value.
//
// The process-wide table is validated when the package initializes and is
// never mutated afterwards, so it is safe for concurrent use without locks.
package material

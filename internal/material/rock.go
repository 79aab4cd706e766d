package material

// Group is a rock group by formation process.
type Group uint8

const (
	// GroupSedimentary rocks form from compacted sediment and the weathering
	// of other rocks.
	GroupSedimentary Group = iota + 1
	// GroupIgneous rocks form as magma cools and solidifies.
	GroupIgneous
	// GroupMetamorphic rocks form from other rocks under heat, pressure and fluids.
	GroupMetamorphic
)

func (g Group) String() string {
	switch g {
	case GroupSedimentary:
		return "sedimentary"
	case GroupIgneous:
		return "igneous"
	case GroupMetamorphic:
		return "metamorphic"
	default:
		return "unknown"
	}
}

// IgneousSubgroup classifies igneous rocks by where the magma solidified.
type IgneousSubgroup uint8

const (
	// Intrusive (plutonic) rocks solidified deep underground.
	Intrusive IgneousSubgroup = iota + 1
	// Extrusive (effusive, volcanic) rocks solidified from lava at the surface.
	Extrusive
)

func (s IgneousSubgroup) String() string {
	switch s {
	case Intrusive:
		return "intrusive"
	case Extrusive:
		return "extrusive"
	default:
		return "unknown"
	}
}

// SedimentarySubgroup classifies sedimentary rocks by origin.
type SedimentarySubgroup uint8

const (
	// Biogenic rocks come from the remains of living organisms.
	Biogenic SedimentarySubgroup = iota + 1
	// Chemogenic rocks precipitate from aqueous solutions or evaporating water.
	Chemogenic
	// Clastic (terrigenous) rocks are fragments from weathering, volcanism
	// and tectonic activity.
	Clastic
)

func (s SedimentarySubgroup) String() string {
	switch s {
	case Biogenic:
		return "biogenic"
	case Chemogenic:
		return "chemogenic"
	case Clastic:
		return "clastic"
	default:
		return "unknown"
	}
}

// Rock is a rock classification. Build one with IgneousRock,
// SedimentaryRock or MetamorphicRock so the group always carries the
// subgroup kind it requires.
type Rock struct {
	group       Group
	igneous     IgneousSubgroup
	sedimentary SedimentarySubgroup
}

// IgneousRock classifies an igneous rock.
func IgneousRock(subgroup IgneousSubgroup) Rock {
	return Rock{group: GroupIgneous, igneous: subgroup}
}

// SedimentaryRock classifies a sedimentary rock.
func SedimentaryRock(subgroup SedimentarySubgroup) Rock {
	return Rock{group: GroupSedimentary, sedimentary: subgroup}
}

// MetamorphicRock classifies a metamorphic rock. Metamorphic rocks have no subgroup.
func MetamorphicRock() Rock {
	return Rock{group: GroupMetamorphic}
}

// Group returns the rock group.
func (r Rock) Group() Group {
	return r.group
}

// IgneousSubgroup returns the subgroup of an igneous rock.
func (r Rock) IgneousSubgroup() (IgneousSubgroup, bool) {
	if r.group != GroupIgneous {
		return 0, false
	}
	return r.igneous, true
}

// SedimentarySubgroup returns the subgroup of a sedimentary rock.
func (r Rock) SedimentarySubgroup() (SedimentarySubgroup, bool) {
	if r.group != GroupSedimentary {
		return 0, false
	}
	return r.sedimentary, true
}

// String renders the classification as "group" or "group/subgroup".
func (r Rock) String() string {
	switch r.group {
	case GroupIgneous:
		return r.group.String() + "/" + r.igneous.String()
	case GroupSedimentary:
		return r.group.String() + "/" + r.sedimentary.String()
	default:
		return r.group.String()
	}
}

func (r Rock) valid() bool {
	switch r.group {
	case GroupIgneous:
		return r.igneous == Intrusive || r.igneous == Extrusive
	case GroupSedimentary:
		return r.sedimentary >= Biogenic && r.sedimentary <= Clastic
	case GroupMetamorphic:
		return true
	default:
		return false
	}
}

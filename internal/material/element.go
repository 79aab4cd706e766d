package material

import "unicode"

// MaxAtomicNumber is the highest atomic number of a named element.
const MaxAtomicNumber = 118

// Element identifies a chemical element.
type Element struct {
	Number uint8
	Symbol string
}

func (e Element) valid() bool {
	return e.Number >= 1 && e.Number <= MaxAtomicNumber
}

// validSymbol accepts one upper-case letter followed by up to two lower-case letters.
func validSymbol(symbol string) bool {
	runes := []rune(symbol)
	if len(runes) == 0 || len(runes) > 3 {
		return false
	}
	if !unicode.IsUpper(runes[0]) || runes[0] > unicode.MaxASCII {
		return false
	}
	for _, r := range runes[1:] {
		if !unicode.IsLower(r) || r > unicode.MaxASCII {
			return false
		}
	}
	return true
}

// MetalFamily is a metal classification in the periodic table.
type MetalFamily uint8

const (
	// Alkali metals (group 1).
	Alkali MetalFamily = iota + 1
	// AlkalineEarth metals (group 2).
	AlkalineEarth
	// Transition metals (d-block).
	Transition
	// PostTransition metals (p-block metals).
	PostTransition
)

func (f MetalFamily) valid() bool {
	return f >= Alkali && f <= PostTransition
}

func (f MetalFamily) String() string {
	switch f {
	case Alkali:
		return "alkali"
	case AlkalineEarth:
		return "alkaline-earth"
	case Transition:
		return "transition"
	case PostTransition:
		return "post-transition"
	default:
		return "unknown"
	}
}

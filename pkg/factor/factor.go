package factor

import "strings"

// Factor is a bit mask of signature factors.
type Factor uint32

const (
	Possession Factor = 0x0001
	Knowledge  Factor = 0x0010
	Biometry   Factor = 0x0100

	PossessionKnowledge         = Possession | Knowledge
	PossessionBiometry          = Possession | Biometry
	PossessionKnowledgeBiometry = Possession | Knowledge | Biometry

	all = Possession | Knowledge | Biometry
)

// Valid reports whether f is a non-empty combination of known factors.
func (f Factor) Valid() bool {
	return f != 0 && f&^all == 0
}

// Has reports whether f includes every factor in other.
func (f Factor) Has(other Factor) bool {
	return other != 0 && f&other == other
}

// Factors returns the individual factors of f in possession, knowledge,
// biometry order.
func (f Factor) Factors() []Factor {
	var out []Factor
	for _, single := range []Factor{Possession, Knowledge, Biometry} {
		if f&single != 0 {
			out = append(out, single)
		}
	}
	return out
}

func (f Factor) String() string {
	if f == 0 {
		return "none"
	}
	var parts []string
	for _, single := range f.Factors() {
		switch single {
		case Possession:
			parts = append(parts, "possession")
		case Knowledge:
			parts = append(parts, "knowledge")
		case Biometry:
			parts = append(parts, "biometry")
		}
	}
	if f&^all != 0 {
		parts = append(parts, "unknown")
	}
	return strings.Join(parts, "_")
}

package nations

import "fmt"

// Era represents the game era a nation belongs to
type Era string

const (
	// EraEarly is the early age
	EraEarly Era = "EA"

	// EraMiddle is the middle age
	EraMiddle Era = "MA"

	// EraLate is the late age
	EraLate Era = "LA"
)

// Nation describes one entry in the static nation catalog
type Nation struct {
	// Name is the canonical display name of the nation
	Name string

	// Era is the age the nation belongs to
	Era Era
}

// catalog is the fixed compile-time table of nation ids. Ids match the
// game's own numbering, so gaps are deliberate.
var catalog = map[uint32]Nation{
	5:  {Name: "Arcoscephale", Era: EraEarly},
	6:  {Name: "Ermor", Era: EraEarly},
	7:  {Name: "Ulm", Era: EraEarly},
	8:  {Name: "Marverni", Era: EraEarly},
	9:  {Name: "Sauromatia", Era: EraEarly},
	10: {Name: "T'ien Ch'i", Era: EraEarly},
	11: {Name: "Machaka", Era: EraEarly},
	12: {Name: "Mictlan", Era: EraEarly},
	13: {Name: "Abysia", Era: EraEarly},
	14: {Name: "Caelum", Era: EraEarly},
	15: {Name: "C'tis", Era: EraEarly},
	16: {Name: "Pangaea", Era: EraEarly},
	17: {Name: "Agartha", Era: EraEarly},
	18: {Name: "Tir na n'Og", Era: EraEarly},
	19: {Name: "Fomoria", Era: EraEarly},
	20: {Name: "Vanheim", Era: EraEarly},
	21: {Name: "Helheim", Era: EraEarly},
	22: {Name: "Niefelheim", Era: EraEarly},
	24: {Name: "Rus", Era: EraEarly},
	25: {Name: "Kailasa", Era: EraEarly},
	26: {Name: "Lanka", Era: EraEarly},
	27: {Name: "Yomi", Era: EraEarly},
	28: {Name: "Hinnom", Era: EraEarly},
	29: {Name: "Ur", Era: EraEarly},
	30: {Name: "Berytos", Era: EraEarly},
	31: {Name: "Xibalba", Era: EraEarly},
	32: {Name: "Mekone", Era: EraEarly},
	33: {Name: "Ubar", Era: EraEarly},
	36: {Name: "Atlantis", Era: EraEarly},
	37: {Name: "R'lyeh", Era: EraEarly},
	38: {Name: "Pelagia", Era: EraEarly},
	39: {Name: "Oceania", Era: EraEarly},
	43: {Name: "Arcoscephale", Era: EraMiddle},
	44: {Name: "Ermor", Era: EraMiddle},
	45: {Name: "Sceleria", Era: EraMiddle},
	46: {Name: "Pythium", Era: EraMiddle},
	47: {Name: "Man", Era: EraMiddle},
	48: {Name: "Eriu", Era: EraMiddle},
	49: {Name: "Ulm", Era: EraMiddle},
	50: {Name: "Marignon", Era: EraMiddle},
	51: {Name: "Mictlan", Era: EraMiddle},
	52: {Name: "T'ien Ch'i", Era: EraMiddle},
	53: {Name: "Machaka", Era: EraMiddle},
	54: {Name: "Agartha", Era: EraMiddle},
	55: {Name: "Abysia", Era: EraMiddle},
	56: {Name: "Caelum", Era: EraMiddle},
	57: {Name: "C'tis", Era: EraMiddle},
	58: {Name: "Pangaea", Era: EraMiddle},
	59: {Name: "Asphodel", Era: EraMiddle},
	60: {Name: "Vanarus", Era: EraMiddle},
	61: {Name: "Jotunheim", Era: EraMiddle},
	62: {Name: "Vanheim", Era: EraMiddle},
	63: {Name: "Bandar Log", Era: EraMiddle},
	64: {Name: "Shinuyama", Era: EraMiddle},
	65: {Name: "Ashdod", Era: EraMiddle},
	66: {Name: "Uruk", Era: EraMiddle},
	67: {Name: "Nazca", Era: EraMiddle},
	68: {Name: "Xibalba", Era: EraMiddle},
	69: {Name: "Phlegra", Era: EraMiddle},
	70: {Name: "Phaeacia", Era: EraMiddle},
	71: {Name: "Ind", Era: EraMiddle},
	72: {Name: "Na'Ba", Era: EraMiddle},
	73: {Name: "Atlantis", Era: EraMiddle},
	74: {Name: "R'lyeh", Era: EraMiddle},
	75: {Name: "Pelagia", Era: EraMiddle},
	76: {Name: "Oceania", Era: EraMiddle},
	77: {Name: "Ys", Era: EraMiddle},
	80: {Name: "Arcoscephale", Era: EraLate},
	81: {Name: "Pythium", Era: EraLate},
	82: {Name: "Lemuria", Era: EraLate},
	83: {Name: "Man", Era: EraLate},
	84: {Name: "Ulm", Era: EraLate},
	85: {Name: "Marignon", Era: EraLate},
	86: {Name: "Mictlan", Era: EraLate},
	87: {Name: "T'ien Ch'i", Era: EraLate},
	89: {Name: "Jomon", Era: EraLate},
	90: {Name: "Agartha", Era: EraLate},
	91: {Name: "Abysia", Era: EraLate},
	92: {Name: "Caelum", Era: EraLate},
	93: {Name: "C'tis", Era: EraLate},
	94: {Name: "Pangaea", Era: EraLate},
	95: {Name: "Midgard", Era: EraLate},
	96: {Name: "Utgard", Era: EraLate},
	97: {Name: "Bogarus", Era: EraLate},
	98: {Name: "Patala", Era: EraLate},
	99: {Name: "Gath", Era: EraLate},
	100: {Name: "Ragha", Era: EraLate},
	101: {Name: "Xibalba", Era: EraLate},
	102: {Name: "Phlegra", Era: EraLate},
	103: {Name: "Vaettiheim", Era: EraLate},
	106: {Name: "Atlantis", Era: EraLate},
	107: {Name: "R'lyeh", Era: EraLate},
	108: {Name: "Erytheia", Era: EraLate},
}

// Desc returns the catalog entry for a nation id. The catalog is total
// over valid ids; an unknown id is a programming error and panics.
func Desc(id uint32) Nation {
	nation, ok := catalog[id]
	if !ok {
		panic(fmt.Sprintf("nations: unknown nation id %d", id))
	}
	return nation
}

// Name returns the display name for a nation id. Panics on unknown ids,
// same as Desc.
func Name(id uint32) string {
	return Desc(id).Name
}

// Exists reports whether a nation id is in the catalog. Use this to
// validate external input before calling Desc or Name.
func Exists(id uint32) bool {
	_, ok := catalog[id]
	return ok
}

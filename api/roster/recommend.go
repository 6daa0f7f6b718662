/* recommend.go
 * Community-sourced lookup tables: which killers play well on each map, and
 * which survivors (solo picks or pair combos) are worth banning against each
 * killer. Pure data consulted by the $recommend command
 * Authors: Zachary Bower
 */

package roster

// BanAdvice lists survivors worth banning against a killer, as individual
// picks and as two-survivor combos
type BanAdvice struct {
	Solo   []string
	Combos [][2]string
}

var mapKillerRecommendations = map[string][]string{
	"Glasshouses":            {"Nosferatu", "Guest 666"},
	"Pirate bay":             {"C00lkidd"},
	"Brandonworks":           {"Noli"},
	"C00l Carnival":          {},
	"Yorick's Resting Place": {},
	"Planet Voss":            {"Slasher"},
	"Familiar Ruins":         {},
	"Classic Battleground":   {"C00lkidd"},
	"The Tempest":            {"C00lkidd"},
	"Work At A Pizza Place":  {"1x1x1x1"},
}

var killerBanRecommendations = map[string]BanAdvice{
	"Slasher": {
		Solo:   []string{"Elliot", "Builderman", "Two Time", "Veeronica"},
		Combos: [][2]string{{"Dusekkar", "Taph"}, {"Chance", "Shedletsky"}},
	},
	"Nosferatu": {
		Solo: []string{"Dusekkar", "Two Time", "Elliot", "007n7", "Guest 1337", "Taph"},
	},
	"C00lkidd": {
		Solo:   []string{"Guest 1337", "Elliot", "Builderman", "Chance", "Two Time"},
		Combos: [][2]string{{"Dusekkar", "Taph"}},
	},
	"John Doe": {
		Solo:   []string{"Elliot", "Two Time", "Veeronica", "Chance", "Shedletsky"},
		Combos: [][2]string{{"Dusekkar", "Taph"}},
	},
	"Guest 666": {
		Solo:   []string{"Guest 1337", "Shedletsky", "Two Time", "Chance"},
		Combos: [][2]string{{"Dusekkar", "Taph"}, {"Elliot", "007n7"}},
	},
	"1x1x1x1": {
		Solo:   []string{"Guest 1337", "Builderman", "Veeronica", "Two Time"},
		Combos: [][2]string{{"Elliot", "Dusekkar"}, {"Shedletsky", "Chance"}},
	},
	"Noli": {
		Solo: []string{"Guest 1337", "Elliot", "Taph", "Shedletsky", "Dusekkar", "Builderman", "007n7"},
	},
}

// RecommendedKillers returns the killers recommended for a map
// Preconditions: Receives raw user input for the map name
// Postconditions: Returns the canonical map name and its recommended killers
// (possibly empty), or a resolution error
func RecommendedKillers(input string) (string, []string, error) {
	name, err := ResolveMap(input)
	if err != nil {
		return "", nil, err
	}
	return name, append([]string{}, mapKillerRecommendations[name]...), nil
}

// RecommendedBans returns the survivor ban advice against a killer
// Preconditions: Receives raw user input for the killer name
// Postconditions: Returns the canonical killer name and its ban advice, or a resolution error
func RecommendedBans(input string) (string, BanAdvice, error) {
	name, err := ResolveKiller(input)
	if err != nil {
		return "", BanAdvice{}, err
	}
	advice := killerBanRecommendations[name]
	return name, BanAdvice{
		Solo:   append([]string{}, advice.Solo...),
		Combos: append([][2]string{}, advice.Combos...),
	}, nil
}

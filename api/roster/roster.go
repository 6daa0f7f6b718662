/* roster.go
 * Fixed enumerations of playable survivors, killers and maps, plus name
 * resolution from user input. Input is matched by normalized equality first
 * (lowercase, spaces stripped) and falls back to fuzzy matching so close
 * spellings like "veronica" or "guest666" still resolve
 * Authors: Zachary Bower
 */

package roster

import (
	"fmt"
	"strings"

	"forsaken-bot/api/shared"

	"github.com/elliotchance/pie/v2"
	"github.com/lithammer/fuzzysearch/fuzzy"
)

var survivorNames = []string{
	"Noob",
	"Guest 1337",
	"Shedletsky",
	"Chance",
	"Two Time",
	"Veeronica",
	"Elliot",
	"007n7",
	"Dusekkar",
	"Builderman",
	"Taph",
}

var killerNames = []string{
	"Noli",
	"Guest 666",
	"John Doe",
	"Slasher",
	"1x1x1x1",
	"C00lkidd",
	"Nosferatu",
}

var mapNames = []string{
	"Glasshouses",
	"Pirate bay",
	"Brandonworks",
	"C00l Carnival",
	"Yorick's Resting Place",
	"Planet Voss",
	"Familiar Ruins",
	"Classic Battleground",
	"The Tempest",
	"Work At A Pizza Place",
}

// nameSet holds an enumeration with its normalized lookup table
type nameSet struct {
	names      []string
	normalized []string
	lookup     map[string]string
}

func newNameSet(names []string) nameSet {
	set := nameSet{
		names:      names,
		normalized: pie.Map(names, Normalize),
		lookup:     make(map[string]string, len(names)),
	}
	for i, name := range names {
		set.lookup[set.normalized[i]] = name
	}
	return set
}

var (
	survivorSet  = newNameSet(survivorNames)
	killerSet    = newNameSet(killerNames)
	mapSet       = newNameSet(mapNames)
	characterSet = newNameSet(append(append([]string{}, survivorNames...), killerNames...))
)

// Survivors returns the survivor enumeration in display order
func Survivors() []string {
	return append([]string{}, survivorNames...)
}

// Killers returns the killer enumeration in display order
func Killers() []string {
	return append([]string{}, killerNames...)
}

// Maps returns the map enumeration in display order
func Maps() []string {
	return append([]string{}, mapNames...)
}

// Characters returns survivors followed by killers
func Characters() []string {
	return append(Survivors(), Killers()...)
}

// Normalize lowercases a name and strips its spaces so user input like
// "guest1337" and "Guest 1337" compare equal
func Normalize(name string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), " ", "")
}

// ResolveSurvivor matches user input against the survivor enumeration
// Preconditions: Receives the raw user input string
// Postconditions: Returns the canonical survivor name, or an error wrapping ErrInvalidSelection
func ResolveSurvivor(input string) (string, error) {
	return survivorSet.resolve(input, "survivor")
}

// ResolveKiller matches user input against the killer enumeration
func ResolveKiller(input string) (string, error) {
	return killerSet.resolve(input, "killer")
}

// ResolveMap matches user input against the map enumeration
func ResolveMap(input string) (string, error) {
	return mapSet.resolve(input, "map")
}

// ResolveCharacter matches user input against the combined survivor and killer pools
func ResolveCharacter(input string) (string, error) {
	return characterSet.resolve(input, "character")
}

// IsSurvivor reports whether a canonical name belongs to the survivor pool
func IsSurvivor(name string) bool {
	_, ok := survivorSet.lookup[Normalize(name)]
	return ok
}

// IsKiller reports whether a canonical name belongs to the killer pool
func IsKiller(name string) bool {
	_, ok := killerSet.lookup[Normalize(name)]
	return ok
}

// resolve matches input against the set by normalized equality, then by fuzzy
// rank, keeping the lowest-distance candidate
func (s nameSet) resolve(input string, kind string) (string, error) {
	norm := Normalize(input)
	if norm == "" {
		return "", fmt.Errorf("%w: no %s name given", shared.ErrInvalidSelection, kind)
	}
	if name, ok := s.lookup[norm]; ok {
		return name, nil
	}

	fuzzyResults := fuzzy.RankFind(norm, s.normalized)
	if len(fuzzyResults) == 0 {
		return "", fmt.Errorf("%w: %q is not a known %s", shared.ErrInvalidSelection, input, kind)
	}
	best := fuzzyResults[0]
	for _, result := range fuzzyResults[1:] {
		if result.Distance < best.Distance {
			best = result
		}
	}
	return s.lookup[best.Target], nil
}

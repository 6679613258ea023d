// Package species holds the fixed set of animals the zoo accepts and
// everything that is decided by the species alone: ID prefix, habitat,
// social group vocabulary and scientific name.
package species

import "github.com/gnames/gnzoo/pkg/textutil"

// Species is a closed set of supported animals.
type Species int

const (
	Unknown Species = iota
	Hyena
	Lion
	Tiger
	Bear
)

// Info contains data that are the same for every animal of a species.
type Info struct {
	// Key is the lowercase name used in input files.
	Key string
	// Name is the capitalized name, used for habitat titles.
	Name string
	// Prefix starts every unique ID of the species.
	Prefix string
	// RoleWord is the collective noun of the social group.
	RoleWord string
	// Groups are rotated between animals of the species.
	Groups []string
	// ScientificName includes authorship.
	ScientificName string
}

var table = map[Species]Info{
	Hyena: {
		Key:            "hyena",
		Name:           "Hyena",
		Prefix:         "Hy",
		RoleWord:       "Clan",
		Groups:         []string{"Motto Clan", "Serengeti Clan", "Savannah Clan", "Spotted Clan"},
		ScientificName: "Crocuta crocuta (Erxleben, 1777)",
	},
	Lion: {
		Key:            "lion",
		Name:           "Lion",
		Prefix:         "Li",
		RoleWord:       "Pride",
		Groups:         []string{"Golden Pride", "Savanna Pride", "Sunset Pride", "River Pride"},
		ScientificName: "Panthera leo (Linnaeus, 1758)",
	},
	Tiger: {
		Key:            "tiger",
		Name:           "Tiger",
		Prefix:         "Ti",
		RoleWord:       "Ambush",
		Groups:         []string{"Ember Ambush", "Jungle Ambush", "River Ambush", "Shadow Ambush"},
		ScientificName: "Panthera tigris (Linnaeus, 1758)",
	},
	Bear: {
		Key:            "bear",
		Name:           "Bear",
		Prefix:         "Be",
		RoleWord:       "Sleuth",
		Groups:         []string{"Highland Sleuth", "Forest Sleuth", "Mountain Sleuth", "Valley Sleuth"},
		ScientificName: "Ursus arctos Linnaeus, 1758",
	},
}

var keys = map[string]Species{
	"hyena": Hyena,
	"lion":  Lion,
	"tiger": Tiger,
	"bear":  Bear,
}

// All returns supported species in the order habitats appear in reports.
func All() []Species {
	return []Species{Hyena, Lion, Tiger, Bear}
}

// New finds a species by its name, ignoring letter case.
func New(s string) (Species, error) {
	if sp, ok := keys[textutil.ToLower(s)]; ok {
		return sp, nil
	}
	return Unknown, UnsupportedSpeciesError(s)
}

// Prefix returns the two-letter code that starts unique IDs of the
// species called s.
func Prefix(s string) (string, error) {
	sp, err := New(s)
	if err != nil {
		return "", err
	}
	return sp.Info().Prefix, nil
}

// SocialGroup rotates through the group names of a species. The index is
// the number of animals of the species seen so far. Species without
// groups get "Unknown".
func SocialGroup(key string, index int) string {
	sp, ok := keys[key]
	if !ok {
		return "Unknown"
	}
	groups := table[sp].Groups
	if len(groups) == 0 {
		return "Unknown"
	}
	idx := index % len(groups)
	if idx < 0 {
		idx += len(groups)
	}
	return groups[idx]
}

// Info returns the data table entry of the species.
func (s Species) Info() Info {
	return table[s]
}

// Habitat returns the title of the habitat, for example "Lion Habitat".
func (s Species) Habitat() string {
	if s == Unknown {
		return ""
	}
	return table[s].Name + " Habitat"
}

// String returns the lowercase key of the species.
func (s Species) String() string {
	if s == Unknown {
		return "unknown"
	}
	return table[s].Key
}

// MarshalText encodes the species as its lowercase key.
func (s Species) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText decodes a species from its key.
func (s *Species) UnmarshalText(bs []byte) error {
	sp, err := New(string(bs))
	if err != nil {
		return err
	}
	*s = sp
	return nil
}

// Package animal builds the zoo records of arriving animals.
//
// An Animal carries the facts from its arrival line together with the
// derived identity: unique ID, name, birth date and social group. All
// species share one struct. Habitat and group labels come from the
// species table instead of per-species types.
package animal

import (
	"fmt"
	"strings"

	"github.com/gnames/gnuuid"
	"github.com/gnames/gnzoo/pkg/arrival"
	"github.com/gnames/gnzoo/pkg/species"
	"github.com/google/uuid"
)

// Animal is a zoo resident created from one arrival line.
type Animal struct {
	// UUID is a UUID v5 built from ID, name, species and arrival date.
	UUID uuid.UUID `json:"uuid" yaml:"uuid"`
	// ID is a species prefix with a sequence number, for example Hy01.
	ID      string          `json:"id" yaml:"id"`
	Name    string          `json:"name" yaml:"name"`
	Species species.Species `json:"species" yaml:"species"`
	// Canonical is the scientific name of the species without authorship.
	Canonical string `json:"scientificName,omitempty" yaml:"scientificName,omitempty"`

	Age    int    `json:"age" yaml:"age"`
	Sex    string `json:"sex" yaml:"sex"`
	Color  string `json:"color" yaml:"color"`
	Weight int    `json:"weight" yaml:"weight"`

	BirthDate   string `json:"birthDate" yaml:"birthDate"`
	Origin      string `json:"origin" yaml:"origin"`
	ArrivalDate string `json:"arrivalDate" yaml:"arrivalDate"`

	// Group is the name of the social group without the role word.
	Group string `json:"socialGroup" yaml:"socialGroup"`
}

// Option sets optional fields of an Animal during creation.
type Option func(*Animal)

// OptCanonical sets the canonical scientific name of the species.
func OptCanonical(s string) Option {
	return func(a *Animal) {
		a.Canonical = s
	}
}

// New creates an Animal from an arrival row and derived identity data.
// The species must be one of hyena, lion, tiger or bear written in lower
// case.
func New(
	row arrival.Row,
	id, name, birthDate, group string,
	opts ...Option,
) (*Animal, error) {
	sp, err := classify(row.Species)
	if err != nil {
		return nil, err
	}

	res := &Animal{
		ID:          id,
		Name:        name,
		Species:     sp,
		Age:         row.Age,
		Sex:         row.Sex,
		Color:       row.Color,
		Weight:      row.Weight,
		BirthDate:   birthDate,
		Origin:      row.Origin,
		ArrivalDate: row.ArrivalDate,
		Group:       group,
	}
	res.UUID = gnuuid.New(
		strings.Join([]string{id, name, sp.String(), row.ArrivalDate}, "|"),
	)
	for _, opt := range opts {
		opt(res)
	}
	return res, nil
}

// classify requires an exact lowercase key.
func classify(key string) (species.Species, error) {
	sp, err := species.New(key)
	if err != nil {
		return species.Unknown, err
	}
	if sp.String() != key {
		return species.Unknown, species.UnsupportedSpeciesError(key)
	}
	return sp, nil
}

// HabitatName returns the habitat the animal lives in.
func (a *Animal) HabitatName() string {
	return a.Species.Habitat()
}

// SocialGroupLabel returns a label like "Clan: Motto Clan".
func (a *Animal) SocialGroupLabel() string {
	return a.Species.Info().RoleWord + ": " + a.Group
}

// ReportLine renders the animal as one line of the population report.
func (a *Animal) ReportLine() string {
	return fmt.Sprintf(
		"%s; %s; birth date %s; %s color; %s; %d pounds; from %s; arrived %s",
		a.ID, a.Name, a.BirthDate, a.Color, a.Sex, a.Weight, a.Origin, a.ArrivalDate,
	)
}

// Package report groups zoo animals by habitat and renders the population
// report.
package report

import (
	"bufio"
	"fmt"
	"io"

	"github.com/gnames/gnzoo/pkg/animal"
	"github.com/gnames/gnzoo/pkg/species"
)

// Index keeps animals grouped by habitat in the order they were added.
// Animals are shared with the caller, the index does not copy them.
type Index struct {
	animals   []*animal.Animal
	byHabitat map[string][]*animal.Animal
}

// Habitat is a section of the report.
type Habitat struct {
	Name    string           `json:"name" yaml:"name"`
	Count   int              `json:"count" yaml:"count"`
	Animals []*animal.Animal `json:"animals" yaml:"animals"`
}

// Population is the structured form of the report.
type Population struct {
	Total    int       `json:"total" yaml:"total"`
	Habitats []Habitat `json:"habitats" yaml:"habitats"`
}

// NewIndex creates an empty Index.
func NewIndex() *Index {
	return &Index{byHabitat: make(map[string][]*animal.Animal)}
}

// Add puts an animal into its habitat.
func (idx *Index) Add(a *animal.Animal) {
	idx.animals = append(idx.animals, a)
	h := a.HabitatName()
	idx.byHabitat[h] = append(idx.byHabitat[h], a)
}

// Len returns the number of indexed animals.
func (idx *Index) Len() int {
	return len(idx.animals)
}

// Animals returns all animals in arrival order.
func (idx *Index) Animals() []*animal.Animal {
	return idx.animals
}

// Occupants returns animals of a habitat in arrival order.
func (idx *Index) Occupants(habitat string) []*animal.Animal {
	return idx.byHabitat[habitat]
}

// HabitatOrder returns habitat names in the order of the report.
func HabitatOrder() []string {
	all := species.All()
	res := make([]string, len(all))
	for i, v := range all {
		res[i] = v.Habitat()
	}
	return res
}

// Population converts the index into its structured form. Habitats
// without animals are included with zero count.
func (idx *Index) Population() Population {
	res := Population{Total: idx.Len()}
	for _, h := range HabitatOrder() {
		occ := idx.Occupants(h)
		if occ == nil {
			occ = []*animal.Animal{}
		}
		res.Habitats = append(res.Habitats, Habitat{
			Name:    h,
			Count:   len(occ),
			Animals: occ,
		})
	}
	return res
}

// WriteText renders the report as plain text:
//
//	Hyena Habitat (1)
//	  - Hy01; Kamari; ... | Clan: Motto Clan
//
// Every habitat is followed by an empty line.
func (idx *Index) WriteText(w io.Writer) error {
	bw := bufio.NewWriter(w)
	for _, h := range HabitatOrder() {
		occ := idx.Occupants(h)
		fmt.Fprintf(bw, "%s (%d)\n", h, len(occ))
		for _, a := range occ {
			fmt.Fprintf(bw, "  - %s | %s\n", a.ReportLine(), a.SocialGroupLabel())
		}
		bw.WriteString("\n")
	}
	return bw.Flush()
}

// Package sciname converts scientific names of supported species into
// canonical forms with gnparser. This is a pure package - parsing is
// computation, not I/O.
package sciname

import (
	"github.com/gnames/gnlib/ent/nomcode"
	"github.com/gnames/gnparser"
	"github.com/gnames/gnzoo/pkg/species"
)

// Namer returns canonical scientific names of species.
type Namer interface {
	// Canonical returns a name without authorship, for example
	// "Crocuta crocuta". It returns an empty string when the name cannot
	// be parsed or the species is Unknown.
	Canonical(sp species.Species) string
}

// NamerImpl keeps one zoological parser and remembers parsed names.
// It is not safe for concurrent use.
type NamerImpl struct {
	parser gnparser.GNparser
	cache  map[species.Species]string
}

// New creates a Namer. The parser is created lazily on the first call
// of Canonical.
func New() *NamerImpl {
	return &NamerImpl{cache: make(map[species.Species]string)}
}

// Canonical implements Namer.
func (n *NamerImpl) Canonical(sp species.Species) string {
	if sp == species.Unknown {
		return ""
	}
	if res, ok := n.cache[sp]; ok {
		return res
	}

	if n.parser == nil {
		cfg := gnparser.NewConfig(gnparser.OptCode(nomcode.Zoological))
		n.parser = gnparser.New(cfg)
	}

	var res string
	p := n.parser.ParseName(sp.Info().ScientificName)
	if p.Parsed && p.Canonical != nil {
		res = p.Canonical.Simple
	}
	n.cache[sp] = res
	return res
}

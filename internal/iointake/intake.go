// Package iointake implements zookeeper.Intake. It reads the names file
// and the arrivals file from disk and turns arrival lines into animals.
// This is an impure I/O package.
package iointake

import (
	"bufio"
	"context"
	"errors"
	"log/slog"
	"os"

	"github.com/cheggaaa/pb/v3"
	"github.com/gnames/gn"
	"github.com/gnames/gnzoo/internal/iofs"
	"github.com/gnames/gnzoo/pkg/animal"
	"github.com/gnames/gnzoo/pkg/arrival"
	"github.com/gnames/gnzoo/pkg/config"
	"github.com/gnames/gnzoo/pkg/isodate"
	"github.com/gnames/gnzoo/pkg/naming"
	"github.com/gnames/gnzoo/pkg/report"
	"github.com/gnames/gnzoo/pkg/sciname"
	"github.com/gnames/gnzoo/pkg/species"
	"github.com/gnames/gnzoo/pkg/textutil"
	"github.com/gnames/gnzoo/pkg/zookeeper"
)

// intake owns all mutable state of one report run.
type intake struct {
	cfg      *config.Config
	names    naming.Pool
	counters *naming.Counters
	// seen counts animals created per species key, it drives the
	// rotation of social groups.
	seen  map[string]int
	namer sciname.Namer
}

// New creates an Intake for the input files of the config.
func New(cfg *config.Config) zookeeper.Intake {
	return &intake{
		cfg:      cfg,
		counters: naming.NewCounters(),
		seen:     make(map[string]int),
		namer:    sciname.New(),
	}
}

// LoadNames reads the pool of names for new animals.
func (in *intake) LoadNames(ctx context.Context) error {
	path := in.cfg.Input.NamesPath
	pool, err := LoadNames(path)
	if err != nil {
		return err
	}
	in.names = pool

	slog.Info("Names loaded", "path", path, "species", len(pool))
	return nil
}

// StreamArrivals creates an animal for every non-blank arrival line.
func (in *intake) StreamArrivals(
	ctx context.Context,
) (*report.Index, error) {
	if in.names == nil {
		in.names = make(naming.Pool)
	}

	path := in.cfg.Input.ArrivalsPath
	lines, err := readLines(path)
	if err != nil {
		return nil, err
	}

	var bar *pb.ProgressBar
	if in.cfg.WithProgress {
		bar = newProgressBar(len(lines), "Arrivals: ")
	}

	res := report.NewIndex()
	for i, line := range lines {
		if bar != nil {
			bar.Increment()
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		line = textutil.Trim(line)
		if line == "" {
			continue
		}

		a, err := in.processLine(line)
		if err != nil {
			if bar != nil {
				bar.Finish()
			}
			return nil, ArrivalLineError(path, i+1, err)
		}
		res.Add(a)
		slog.Debug("Animal arrived",
			"id", a.ID, "name", a.Name, "habitat", a.HabitatName())
	}
	if bar != nil {
		bar.Finish()
	}

	for _, h := range report.HabitatOrder() {
		slog.Info("Habitat filled", "habitat", h,
			"animals", len(res.Occupants(h)))
	}
	return res, nil
}

// processLine runs parse, enrich and classify steps for one line.
func (in *intake) processLine(line string) (*animal.Animal, error) {
	row, err := arrival.Parse(line)
	if err != nil {
		return nil, err
	}

	id, err := in.counters.NextID(row.Species)
	if err != nil {
		return nil, err
	}
	name := in.names.PopNext(row.Species)

	birthDate, err := isodate.BirthDate(row.Age, row.BirthSeason, row.ArrivalDate)
	if err != nil {
		return nil, err
	}
	group := species.SocialGroup(row.Species, in.seen[row.Species])

	var opts []animal.Option
	if sp, err := species.New(row.Species); err == nil {
		opts = append(opts, animal.OptCanonical(in.namer.Canonical(sp)))
	}

	a, err := animal.New(row, id, name, birthDate, group, opts...)
	if err != nil {
		return nil, err
	}
	in.seen[row.Species]++
	return a, nil
}

// LoadNames opens a names file and parses it into a pool.
func LoadNames(path string) (naming.Pool, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, iofs.ReadFileError(path, err)
	}
	defer f.Close()

	res, err := naming.ParsePool(f)
	if err != nil {
		var gnErr *gn.Error
		if errors.As(err, &gnErr) {
			return nil, err
		}
		return nil, iofs.ReadFileError(path, err)
	}
	return res, nil
}

func readLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, iofs.ReadFileError(path, err)
	}
	defer f.Close()

	var res []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		res = append(res, sc.Text())
	}
	if err = sc.Err(); err != nil {
		return nil, iofs.ReadFileError(path, err)
	}
	return res, nil
}

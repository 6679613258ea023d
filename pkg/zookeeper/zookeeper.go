// Package zookeeper runs a population report: it loads the name pool,
// streams arriving animals into a habitat index and publishes the report.
//
// The run is a linear state machine (see Stage). Any error moves it to
// Failed, nothing is published after a failure.
package zookeeper

import (
	"context"
	"log/slog"

	"github.com/gnames/gnzoo/pkg/report"
)

// Intake reads input files and creates animals.
type Intake interface {
	// LoadNames reads the pool of candidate names.
	LoadNames(ctx context.Context) error

	// StreamArrivals parses arrival lines one by one and returns animals
	// grouped by habitat. The first bad line aborts the stream.
	StreamArrivals(ctx context.Context) (*report.Index, error)
}

// Publisher writes a finished report to its destinations.
type Publisher interface {
	// Publish writes the text report and optional structured copies.
	// It returns paths of all files written.
	Publish(ctx context.Context, idx *report.Index) ([]string, error)
}

// Keeper drives one report run.
type Keeper struct {
	intake    Intake
	publisher Publisher
	stage     Stage
	index     *report.Index
}

// New creates a Keeper in the Idle stage.
func New(in Intake, pub Publisher) *Keeper {
	return &Keeper{intake: in, publisher: pub}
}

// Stage returns the stage the run has reached.
func (k *Keeper) Stage() Stage {
	return k.stage
}

// Index returns animals collected by the last run, nil before
// StreamingArrivals finished.
func (k *Keeper) Index() *report.Index {
	return k.index
}

// Run executes all stages and returns paths of written files.
func (k *Keeper) Run(ctx context.Context) ([]string, error) {
	var err error
	k.moveTo(LoadingNames)
	if err = k.intake.LoadNames(ctx); err != nil {
		return nil, k.fail(err)
	}

	k.moveTo(StreamingArrivals)
	k.index, err = k.intake.StreamArrivals(ctx)
	if err != nil {
		return nil, k.fail(err)
	}

	k.moveTo(Rendering)
	paths, err := k.publisher.Publish(ctx, k.index)
	if err != nil {
		return nil, k.fail(err)
	}

	k.moveTo(Done)
	return paths, nil
}

func (k *Keeper) moveTo(s Stage) {
	slog.Debug("Stage change", "from", k.stage.String(), "to", s.String())
	k.stage = s
}

func (k *Keeper) fail(err error) error {
	slog.Error("Report run failed", "stage", k.stage.String(), "error", err)
	k.stage = Failed
	return err
}

package zookeeper_test

import (
	"context"
	"errors"
	"testing"

	"github.com/gnames/gnzoo/pkg/report"
	"github.com/gnames/gnzoo/pkg/zookeeper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeIntake struct {
	namesErr, arrivalsErr error
	calls                 []string
}

func (f *fakeIntake) LoadNames(_ context.Context) error {
	f.calls = append(f.calls, "names")
	return f.namesErr
}

func (f *fakeIntake) StreamArrivals(_ context.Context) (*report.Index, error) {
	f.calls = append(f.calls, "arrivals")
	if f.arrivalsErr != nil {
		return nil, f.arrivalsErr
	}
	return report.NewIndex(), nil
}

type fakePublisher struct {
	err       error
	published bool
}

func (f *fakePublisher) Publish(
	_ context.Context,
	_ *report.Index,
) ([]string, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.published = true
	return []string{"zooPopulation.txt"}, nil
}

func TestRun(t *testing.T) {
	in := &fakeIntake{}
	pub := &fakePublisher{}
	k := zookeeper.New(in, pub)
	assert.Equal(t, zookeeper.Idle, k.Stage())

	paths, err := k.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"zooPopulation.txt"}, paths)
	assert.Equal(t, zookeeper.Done, k.Stage())
	assert.Equal(t, []string{"names", "arrivals"}, in.calls)
	assert.True(t, pub.published)
	assert.NotNil(t, k.Index())
}

func TestRunFailures(t *testing.T) {
	boom := errors.New("boom")

	tests := []struct {
		msg       string
		in        *fakeIntake
		pub       *fakePublisher
		calls     []string
		published bool
	}{
		{
			msg:   "names",
			in:    &fakeIntake{namesErr: boom},
			pub:   &fakePublisher{},
			calls: []string{"names"},
		},
		{
			msg:   "arrivals",
			in:    &fakeIntake{arrivalsErr: boom},
			pub:   &fakePublisher{},
			calls: []string{"names", "arrivals"},
		},
		{
			msg:   "publish",
			in:    &fakeIntake{},
			pub:   &fakePublisher{err: boom},
			calls: []string{"names", "arrivals"},
		},
	}

	for _, v := range tests {
		k := zookeeper.New(v.in, v.pub)
		paths, err := k.Run(context.Background())
		assert.ErrorIs(t, err, boom, v.msg)
		assert.Nil(t, paths, v.msg)
		assert.Equal(t, zookeeper.Failed, k.Stage(), v.msg)
		assert.Equal(t, v.calls, v.in.calls, v.msg)
		assert.Equal(t, v.published, v.pub.published, v.msg)
	}
}

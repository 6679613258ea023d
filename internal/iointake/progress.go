package iointake

import (
	"github.com/cheggaaa/pb/v3"
)

// newProgressBar shows arrivals progress on stderr and removes itself
// when finished.
func newProgressBar(
	total int,
	prefix string,
) *pb.ProgressBar {
	bar := pb.Full.Start(total)
	bar.Set("prefix", prefix)
	bar.Set(pb.CleanOnFinish, true)
	return bar
}

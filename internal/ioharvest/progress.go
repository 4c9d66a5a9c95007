package ioharvest

import (
	"io"

	"github.com/cheggaaa/pb/v3"
)

// newProgressBar creates a new progress bar with consistent settings.
// A disabled bar still counts but writes nothing, which keeps tests and
// non-interactive runs quiet.
func newProgressBar(total int, prefix string, show bool) *pb.ProgressBar {
	bar := pb.Full.Start(total)
	bar.Set("prefix", prefix)
	bar.Set(pb.CleanOnFinish, true)
	if !show {
		bar.SetWriter(io.Discard)
	}
	return bar
}

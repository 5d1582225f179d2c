package felzen

import (
	"github.com/katalvlaran/lvlseg/grid"
	"github.com/katalvlaran/lvlseg/segment"
)

// Segmenter adapts Segment to the segment.Producer contract, carrying a
// fixed set of options across calls.
type Segmenter struct {
	Opts Options
}

// NewSegmenter returns a Segmenter with the given options.
func NewSegmenter(opts Options) Segmenter { return Segmenter{Opts: opts} }

// Produce implements segment.Producer by running Segment with the
// carried options.
func (s Segmenter) Produce(values []float64, shape grid.Shape) (*segment.Result, error) {
	return Segment(values, shape, s.Opts)
}

var _ segment.Producer = Segmenter{}

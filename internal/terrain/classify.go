package terrain

import (
	"fmt"
	"sort"
)

// Band is one entry of the height classifier: heights below UpTo (and at
// or above the previous band's UpTo) belong to Biome. Bands are
// half-open intervals, so every height lands in exactly one band. The
// final band is the catch-all and its UpTo is ignored for matching.
type Band struct {
	UpTo  float64
	Biome Biome
}

// Classifier maps a normalized height in [0, 1] to a biome index. It is
// a total function: any height, including values outside [0, 1],
// classifies into the first or last band.
type Classifier struct {
	bands []Band
}

// NewClassifier validates and builds a classifier. Bands must be
// non-empty with strictly ascending thresholds.
func NewClassifier(bands []Band) (*Classifier, error) {
	if len(bands) == 0 {
		return nil, fmt.Errorf("classifier: no bands configured")
	}
	for i := 1; i < len(bands)-1; i++ {
		if bands[i].UpTo <= bands[i-1].UpTo {
			return nil, fmt.Errorf("classifier: band %d threshold %v not above previous %v",
				i, bands[i].UpTo, bands[i-1].UpTo)
		}
	}
	out := make([]Band, len(bands))
	copy(out, bands)
	return &Classifier{bands: out}, nil
}

// Classify returns the index of the band containing height h. The first
// band whose threshold exceeds h wins; the last band catches everything
// above the final threshold.
func (c *Classifier) Classify(h float64) int {
	n := len(c.bands)
	i := sort.Search(n-1, func(i int) bool { return h < c.bands[i].UpTo })
	return i
}

// Len returns the number of bands.
func (c *Classifier) Len() int {
	return len(c.bands)
}

// Band returns the i-th band.
func (c *Classifier) Band(i int) Band {
	return c.bands[i]
}

// Bounds returns the [lo, hi) height interval of band i, used to
// normalize a height into the band's color gradient. The first band
// starts at 0; the catch-all extends to 1.
func (c *Classifier) Bounds(i int) (lo, hi float64) {
	if i > 0 {
		lo = c.bands[i-1].UpTo
	}
	hi = 1.0
	if i < len(c.bands)-1 {
		hi = c.bands[i].UpTo
	}
	return lo, hi
}

// Bands returns a copy of the configured bands.
func (c *Classifier) Bands() []Band {
	out := make([]Band, len(c.bands))
	copy(out, c.bands)
	return out
}

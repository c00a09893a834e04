// SPDX-License-Identifier: EPL-2.0

package layer

import (
	"fmt"
	"math"

	"github.com/ik5/audseq/audio"
)

// Block is a half-open placement interval [Start, Start+Length) in bars.
type Block struct {
	Start  float64 `yaml:"start"`
	Length float64 `yaml:"length"`
}

// End returns the first bar after the block.
func (b Block) End() float64 { return b.Start + b.Length }

// Contains reports whether bar lies inside the block.
func (b Block) Contains(bar float64) bool {
	return bar >= b.Start && bar < b.End()
}

func (b Block) Validate() error {
	if !(b.Length > 0) || math.IsInf(b.Length, 0) || math.IsNaN(b.Start) || math.IsInf(b.Start, 0) {
		return fmt.Errorf("%w: start %v length %v", ErrInvalidBlock, b.Start, b.Length)
	}

	return nil
}

// Layer is one decoded or synthesized sample buffer and the blocks at which
// it plays. Blocks may overlap; each one restarts the sample from its
// beginning.
type Layer struct {
	ID   int
	Path string
	audio.Buffer
	Blocks []Block
}

// Validate checks the buffer format and every block. An empty buffer is
// valid and plays as silence.
func (l *Layer) Validate() error {
	if !l.Empty() {
		if l.Channels < 1 {
			return fmt.Errorf("layer %d: %w: %d", l.ID, ErrInvalidChannels, l.Channels)
		}
		if l.SampleRate <= 0 {
			return fmt.Errorf("layer %d: %w: %d", l.ID, ErrInvalidSampleRate, l.SampleRate)
		}
	}

	for i, b := range l.Blocks {
		if err := b.Validate(); err != nil {
			return fmt.Errorf("layer %d block %d: %w", l.ID, i, err)
		}
	}

	return nil
}

// Duration returns the length of the layer's audio in seconds.
func (l *Layer) Duration() float64 { return l.Seconds() }

// End returns the furthest block end of the layer, 0 without blocks.
func (l *Layer) End() float64 {
	var end float64
	for _, b := range l.Blocks {
		end = max(end, b.End())
	}

	return end
}

// Info describes a layer before its file is loaded.
type Info struct {
	Path   string  `yaml:"path"`
	Blocks []Block `yaml:"blocks"`
}

// MaxEnd returns the furthest block end across layers, 0 when there are no
// blocks at all.
func MaxEnd(layers []*Layer) float64 {
	var end float64
	for _, l := range layers {
		if l != nil {
			end = max(end, l.End())
		}
	}

	return end
}

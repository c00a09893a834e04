// SPDX-License-Identifier: EPL-2.0

package project

import (
	"fmt"
	"math"
	"math/rand/v2"
	"os"
	"path/filepath"

	"github.com/ik5/audseq/layer"
	"github.com/ik5/audseq/synth"
	"github.com/juju/loggo"
	"gopkg.in/yaml.v2"
)

var logger = loggo.GetLogger("audseq.project")

const (
	DefaultBPM        = 120.0
	DefaultSampleRate = 44100
)

// Drum places one synthesized voice.
type Drum struct {
	Voice  string        `yaml:"voice"`
	Blocks []layer.Block `yaml:"blocks"`
}

// Groove fills the listed bars with alternating strong and soft hi-hats.
type Groove struct {
	Bars       []int `yaml:"bars"`
	Resolution int   `yaml:"resolution,omitempty"`
}

// Project is a session description: tempo, output format, the sample layers
// and their blocks, and the drum patterns to synthesize.
type Project struct {
	BPM        float64      `yaml:"bpm,omitempty"`
	SampleRate int          `yaml:"sample_rate,omitempty"`
	MaxBars    float64      `yaml:"max_bars,omitempty"`
	Log        string       `yaml:"log,omitempty"`
	Layers     []layer.Info `yaml:"layers,omitempty"`
	Drums      []Drum       `yaml:"drums,omitempty"`
	Groove     *Groove      `yaml:"groove,omitempty"`

	// Dir is the directory relative layer paths were resolved against.
	Dir string `yaml:"-"`
}

// Load reads and parses the project file at path. Relative layer paths are
// resolved against the file's directory.
func Load(path string) (*Project, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReadProject, err)
	}

	p, err := Parse(data, filepath.Dir(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	logger.Debugf("loaded project %s: %d layers, %d drums", path, len(p.Layers), len(p.Drums))

	return p, nil
}

// Parse decodes a YAML project. Unknown fields are rejected. Missing tempo
// and sample rate take their defaults, and relative layer paths are joined
// to baseDir.
func Parse(data []byte, baseDir string) (*Project, error) {
	var p Project
	if err := yaml.UnmarshalStrict(data, &p); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidProject, err)
	}

	p.Dir = baseDir
	p.applyDefaults()
	p.resolvePaths()

	if err := p.Validate(); err != nil {
		return nil, err
	}

	return &p, nil
}

func (p *Project) applyDefaults() {
	if p.BPM == 0 {
		p.BPM = DefaultBPM
	}
	if p.SampleRate == 0 {
		p.SampleRate = DefaultSampleRate
	}
	if p.Groove != nil && p.Groove.Resolution == 0 {
		p.Groove.Resolution = synth.DefaultResolution
	}
}

func (p *Project) resolvePaths() {
	if p.Dir == "" {
		return
	}
	for i := range p.Layers {
		if path := p.Layers[i].Path; path != "" && !filepath.IsAbs(path) {
			p.Layers[i].Path = filepath.Join(p.Dir, path)
		}
	}
}

// Validate checks every field. Problems are reported as ErrInvalidProject.
func (p *Project) Validate() error {
	invalid := func(format string, args ...any) error {
		return fmt.Errorf("%w: %s", ErrInvalidProject, fmt.Sprintf(format, args...))
	}

	if !(p.BPM > 0) || math.IsInf(p.BPM, 0) {
		return invalid("bpm %v", p.BPM)
	}
	if p.SampleRate <= 0 {
		return invalid("sample_rate %d", p.SampleRate)
	}
	if !(p.MaxBars >= 0) || math.IsInf(p.MaxBars, 0) {
		return invalid("max_bars %v", p.MaxBars)
	}

	for i, info := range p.Layers {
		if info.Path == "" {
			return invalid("layer %d has no path", i)
		}
		for _, b := range info.Blocks {
			if err := b.Validate(); err != nil {
				return invalid("layer %d: %v", i, err)
			}
		}
	}

	for i, d := range p.Drums {
		if _, err := synth.ParseVoice(d.Voice); err != nil {
			return invalid("drum %d: %v", i, err)
		}
		for _, b := range d.Blocks {
			if err := b.Validate(); err != nil {
				return invalid("drum %d: %v", i, err)
			}
		}
	}

	if g := p.Groove; g != nil {
		if g.Resolution < 1 {
			return invalid("groove resolution %d", g.Resolution)
		}
		for _, bar := range g.Bars {
			if bar < 0 {
				return invalid("groove bar %d", bar)
			}
		}
	}

	return nil
}

// Bars returns the track length in bars: MaxBars when set, otherwise the
// furthest block end over the layers, the drums and the groove.
func (p *Project) Bars() float64 {
	if p.MaxBars > 0 {
		return p.MaxBars
	}

	ls := make([]*layer.Layer, 0, len(p.Layers)+len(p.Drums)+2)
	for _, info := range p.Layers {
		ls = append(ls, &layer.Layer{Blocks: info.Blocks})
	}
	for _, d := range p.Drums {
		ls = append(ls, &layer.Layer{Blocks: d.Blocks})
	}
	if g := p.Groove; g != nil {
		strong, soft := &layer.Layer{}, &layer.Layer{}
		synth.GroovyHiHat(strong, soft, g.Bars, g.Resolution)
		ls = append(ls, strong, soft)
	}

	return layer.MaxEnd(ls)
}

// ConfigureLogging applies the project's loggo specification, if any.
func (p *Project) ConfigureLogging() error {
	if p.Log == "" {
		return nil
	}
	if err := loggo.ConfigureLoggers(p.Log); err != nil {
		return fmt.Errorf("%w: %w", ErrLogConfig, err)
	}

	return nil
}

// DrumLayers synthesizes one layer per voice used by the drum entries and the
// groove, in voice order. Blocks of entries sharing a voice are merged. The
// layer IDs follow the sample layers. A nil rng seeds every voice randomly.
func (p *Project) DrumLayers(rng *rand.Rand) []*layer.Layer {
	blocks := make(map[synth.Voice][]layer.Block)

	for _, d := range p.Drums {
		v, err := synth.ParseVoice(d.Voice)
		if err != nil {
			logger.Warningf("skipping drum %q: %v", d.Voice, err)
			continue
		}
		blocks[v] = append(blocks[v], d.Blocks...)
	}

	if g := p.Groove; g != nil && len(g.Bars) > 0 {
		strong := &layer.Layer{Blocks: blocks[synth.HiHatStrong]}
		soft := &layer.Layer{Blocks: blocks[synth.HiHatSoft]}
		synth.GroovyHiHat(strong, soft, g.Bars, g.Resolution)
		blocks[synth.HiHatStrong] = strong.Blocks
		blocks[synth.HiHatSoft] = soft.Blocks
	}

	var layers []*layer.Layer
	for _, v := range synth.Voices {
		bs, ok := blocks[v]
		if !ok {
			continue
		}

		l := &layer.Layer{ID: len(p.Layers) + int(v), Path: "synth:" + v.String(), Blocks: bs}
		if rng == nil {
			synth.Generate(v, l)
		} else {
			synth.GenerateWith(v, l, rng)
		}
		layers = append(layers, l)
	}

	return layers
}

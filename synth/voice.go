// SPDX-License-Identifier: EPL-2.0

package synth

import (
	"fmt"
	"math"
	"strings"
)

// Voice selects one of the synthesized percussion sounds.
type Voice int

const (
	Kick Voice = iota
	Snare
	HiHat
	HiHatStrong
	HiHatSoft
)

// Voices lists every voice in declaration order.
var Voices = []Voice{Kick, Snare, HiHat, HiHatStrong, HiHatSoft}

var voiceNames = [...]string{
	Kick:        "kick",
	Snare:       "snare",
	HiHat:       "hihat",
	HiHatStrong: "hihat_strong",
	HiHatSoft:   "hihat_soft",
}

func (v Voice) String() string {
	if v < 0 || int(v) >= len(voiceNames) {
		return fmt.Sprintf("Voice(%d)", int(v))
	}

	return voiceNames[v]
}

// ParseVoice accepts the names produced by String, case-insensitively.
// "-" and " " are accepted in place of "_".
func ParseVoice(s string) (Voice, error) {
	norm := strings.NewReplacer("-", "_", " ", "_").Replace(strings.ToLower(strings.TrimSpace(s)))
	for v, name := range voiceNames {
		if name == norm {
			return Voice(v), nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownVoice, s)
}

// hat holds the shaping parameters of the hi-hat family.
type hat struct {
	cutoff   float64 // one-pole low-pass coefficient applied to the noise
	sigma    float64 // noise standard deviation
	freq     float64 // metallic partial in Hz
	toneGain float64
	mix      float64 // share of filtered noise against the partial
	decay    float64
	scale    float64
}

var hats = map[Voice]hat{
	HiHat:       {cutoff: 0.6, sigma: 0.7, freq: 8000, toneGain: 0.2, mix: 0.65, decay: 70, scale: 0.8},
	HiHatStrong: {cutoff: 0.4, sigma: 0.7, freq: 9000, toneGain: 0.2, mix: 0.7, decay: 70, scale: 0.9},
	// decay is tuned so the tail is below 1% when the sample ends
	HiHatSoft: {cutoff: 0.7, sigma: 0.5, freq: 7000, toneGain: 0.15, mix: 0.6, decay: 66, scale: 0.7},
}

const (
	drumSeconds = 0.3
	hatSeconds  = 0.07

	kickFade = 512.0
)

// Seconds returns the length of the voice's sample.
func (v Voice) Seconds() float64 {
	if _, ok := hats[v]; ok {
		return hatSeconds
	}

	return drumSeconds
}

// Frames returns the number of frames the voice renders at sampleRate.
func (v Voice) Frames(sampleRate int) int {
	return int(math.Round(float64(sampleRate) * v.Seconds()))
}

// Envelope returns the amplitude envelope of the voice at frame out of
// frames, rendered at SampleRate.
func (v Voice) Envelope(frame, frames int) float64 {
	t := float64(frame) / SampleRate

	switch v {
	case Kick:
		fadeIn := math.Min(1, float64(frame)/kickFade)
		fadeOut := math.Min(1, float64(frames-frame)/kickFade)
		return math.Exp(-6*t) * fadeIn * fadeIn * fadeOut * fadeOut
	case Snare:
		return math.Exp(-25 * t)
	}

	if h, ok := hats[v]; ok {
		return math.Exp(-h.decay*t) * (1 - t)
	}

	return 0
}

// SPDX-License-Identifier: EPL-2.0

package formats

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/ik5/audseq/audio"
	"github.com/ik5/audseq/formats/aiff"
	"github.com/ik5/audseq/formats/mp3"
	"github.com/ik5/audseq/formats/vorbis"
	"github.com/ik5/audseq/formats/wav"
	"github.com/juju/loggo"
)

var logger = loggo.GetLogger("audseq.formats")

// readChunk is the ReadAll chunk size, in samples.
const readChunk = 8192

// NewRegistry returns a registry holding every bundled decoder, keyed by
// lower-case file extension without the dot.
func NewRegistry() *audio.Registry {
	r := audio.NewRegistry()
	r.Register("wav", wav.Decoder{})
	r.Register("mp3", mp3.Decoder{})
	r.Register("ogg", vorbis.Decoder{})
	r.Register("aiff", aiff.Decoder{})
	r.Register("aif", aiff.Decoder{})

	return r
}

// Default is the shared registry used by DecodeFile.
var Default = sync.OnceValue(NewRegistry)

// Ext returns the registry key for path.
func Ext(path string) string {
	return strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
}

// DecodeFile decodes the file at path into memory, picking the decoder from
// the default registry by extension.
func DecodeFile(path string) (audio.Buffer, error) {
	return DecodeFileWith(Default(), path)
}

// DecodeFileWith is DecodeFile with an explicit registry.
func DecodeFileWith(r *audio.Registry, path string) (audio.Buffer, error) {
	ext := Ext(path)
	dec, ok := r.Get(ext)
	if !ok {
		return audio.Buffer{}, fmt.Errorf("%w: %q (%s)", ErrUnsupportedFormat, ext, path)
	}

	f, err := os.Open(path)
	if err != nil {
		return audio.Buffer{}, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	src, err := dec.Decode(f)
	if err != nil {
		return audio.Buffer{}, fmt.Errorf("decoding %s: %w", path, err)
	}
	defer src.Close()

	buf, err := audio.ReadAll(src, readChunk)
	if err != nil {
		return audio.Buffer{}, fmt.Errorf("decoding %s: %w", path, err)
	}

	logger.Debugf("decoded %s: %d frames, %d Hz, %d channels",
		path, buf.Frames(), buf.SampleRate, buf.Channels)

	return buf, nil
}

// Duration returns the playing time of the file at path in seconds.
func Duration(path string) (float64, error) {
	buf, err := DecodeFile(path)
	if err != nil {
		return 0, err
	}

	return buf.Seconds(), nil
}

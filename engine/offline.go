// SPDX-License-Identifier: EPL-2.0

package engine

import (
	"fmt"
	"io"
	"os"

	"github.com/ik5/audseq/formats/wav"
	"github.com/ik5/audseq/utils"
)

// chunkFrames is the buffer size used when rendering offline.
const chunkFrames = 512

func (e *Engine) checkOffline() error {
	if e.live.Load() {
		return ErrPlaying
	}
	if len(e.sess.Load().layers) == 0 {
		return ErrNoLayers
	}

	return nil
}

func (e *Engine) frameCount(totalFrames int) int {
	if totalFrames <= 0 {
		return int(e.TrackFrames())
	}

	return totalFrames
}

// RenderPCM rewinds the clock and renders totalFrames stereo frames as
// interleaved 16-bit PCM. A totalFrames of zero or less renders the whole
// track.
func (e *Engine) RenderPCM(totalFrames int) ([]int16, error) {
	if err := e.checkOffline(); err != nil {
		return nil, err
	}

	totalFrames = e.frameCount(totalFrames)
	pcm := make([]int16, 0, totalFrames*2)

	err := e.renderChunks(totalFrames, func(chunk []int16) error {
		pcm = append(pcm, chunk...)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return pcm, nil
}

// renderChunks rewinds the clock, enters Running and hands totalFrames
// frames of quantized PCM to emit, chunkFrames at a time. It stops at the
// first emit error.
func (e *Engine) renderChunks(totalFrames int, emit func([]int16) error) error {
	e.rewind()
	e.state.Store(int32(Running))

	buf := make([]float32, chunkFrames*2)
	pcm := make([]int16, chunkFrames*2)

	for done := 0; done < totalFrames; {
		n := min(chunkFrames, totalFrames-done)
		out := buf[:n*2]
		e.Render(out)

		for i, v := range out {
			pcm[i] = utils.Float32ToInt16(v)
		}
		if err := emit(pcm[:n*2]); err != nil {
			return err
		}
		done += n
	}

	return nil
}

// Bounce renders totalFrames frames into w as a 16-bit stereo WAV stream at
// the engine's sample rate. A totalFrames of zero or less renders the whole
// track. The result is identical for identical input.
func (e *Engine) Bounce(w io.WriteSeeker, totalFrames int) error {
	if err := e.checkOffline(); err != nil {
		return err
	}

	totalFrames = e.frameCount(totalFrames)

	enc, err := wav.NewEncoder(w, e.sampleRate, 2)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrEncode, err)
	}

	err = e.renderChunks(totalFrames, func(chunk []int16) error {
		_, err := enc.Write(chunk)
		return err
	})
	if err != nil {
		_ = enc.Close()
		return fmt.Errorf("%w: %w", ErrEncode, err)
	}

	if err := enc.Close(); err != nil {
		return fmt.Errorf("%w: %w", ErrEncode, err)
	}

	if written := enc.Frames(); written != totalFrames {
		return fmt.Errorf("%w: wrote %d of %d frames", ErrShortWrite, written, totalFrames)
	}

	return nil
}

// RenderToFile bounces the track to a WAV file at path. Nothing is created
// when there are no layers, and a partially written file is removed.
func (e *Engine) RenderToFile(path string, totalFrames int) (err error) {
	if err := e.checkOffline(); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrEncode, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("%w: %w", ErrEncode, cerr)
		}
		if err != nil {
			_ = os.Remove(path)
			logger.Errorf("render to %s failed: %v", path, err)
		}
	}()

	if err := e.Bounce(f, totalFrames); err != nil {
		return err
	}

	logger.Infof("rendered %d frames to %s", e.frameCount(totalFrames), path)

	return nil
}

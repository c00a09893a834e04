// SPDX-License-Identifier: EPL-2.0

// Package audio provides the low-level PCM primitives shared by the decoders
// and the sequencer.
//
// This package contains:
//   - Source interface for streaming 16-bit PCM input
//   - Buffer, a fully decoded PCM stream held in memory
//   - ReadAll for collecting a Source into a Buffer
//   - Format registry for decoder registration
//
// # Source Interface
//
// The Source interface is the boundary every format decoder implements:
//
//	type Source interface {
//	    SampleRate() int
//	    Channels() int
//	    ReadPCM(dst []int16) (int, error)
//	    Close() error
//	}
//
// Samples are interleaved by channel, so a stereo stream yields
// L0 R0 L1 R1 ... and n always counts int16 values, not frames.
//
// # Collecting a Stream
//
// Layers are mixed from memory, so decoded files are collected in full:
//
//	src, _ := wav.Decoder{}.Decode(file)
//	buf, err := audio.ReadAll(src, 4096)
//	fmt.Println(buf.Frames(), buf.SampleRate, buf.Channels)
//
// # Format Registry
//
// The registry allows dynamic decoder registration:
//
//	registry := audio.NewRegistry()
//	registry.Register("wav", wav.Decoder{})
//	decoder, _ := registry.Get("wav")
//
// The formats package builds a registry holding every bundled decoder.
//
// # Sample Format
//
// Samples are signed 16-bit integers. The mixer converts them to float32 by
// dividing by 32768, so -32768 maps to exactly -1.0 and 32767 to just below
// 1.0.
//
// # Error Handling
//
// Sources return io.EOF when no more data is available. ReadAll consumes the
// io.EOF and reports only genuine failures:
//
//	for {
//	    n, err := source.ReadPCM(buf)
//	    if err == io.EOF {
//	        break // Normal end of stream
//	    }
//	    if err != nil {
//	        return err // Decoding error
//	    }
//	    // Process n samples from buf
//	}
package audio

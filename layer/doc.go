// SPDX-License-Identifier: EPL-2.0

// Package layer holds the sequencer's data model.
//
// A Layer is a PCM buffer plus the Blocks at which it plays. Block positions
// are measured in bars of four beats, so the wall-clock placement of a layer
// follows the session tempo:
//
//	bass := &layer.Layer{
//	    Path:   "bass.wav",
//	    Buffer: buf,
//	    Blocks: []layer.Block{{Start: 0, Length: 4}, {Start: 8, Length: 2}},
//	}
//	fmt.Println(layer.MaxEnd([]*layer.Layer{bass})) // 10
//
// A block is half-open: it sounds from Start up to but not including
// Start+Length. The sample restarts at the start of every block and is cut
// off at its end.
package layer

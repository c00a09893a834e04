// SPDX-License-Identifier: EPL-2.0

package utils

import "math"

// Int16ToFloat32 maps a PCM sample onto [-1, 1) by dividing by 32768.
func Int16ToFloat32(s int16) float32 {
	return float32(s) / 32768.0
}

// ClampUnit limits x to [-1, 1].
func ClampUnit(x float32) float32 {
	if x > 1 {
		return 1
	} else if x < -1 {
		return -1
	}

	return x
}

// Float32ToInt16 quantizes a mixed sample for 16-bit output.
// The input is clamped to [-1, 1] and scaled by 32767, truncating toward
// zero, so both rails map to ±32767.
func Float32ToInt16(x float32) int16 {
	return int16(ClampUnit(x) * 32767.0)
}

// SaturateInt16 scales x by 32767 and saturates to the int16 range.
// Unlike Float32ToInt16 it does not clamp before scaling, which matters for
// synthesized voices whose raw amplitude may exceed 1.
func SaturateInt16(x float64) int16 {
	v := x * 32767.0
	switch {
	case math.IsNaN(v):
		return 0
	case v >= math.MaxInt16:
		return math.MaxInt16
	case v <= math.MinInt16:
		return math.MinInt16
	}

	return int16(v)
}

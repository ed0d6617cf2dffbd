// SPDX-License-Identifier: EPL-2.0

package utils

// Float32ToInt16 clamps x to [-1, 1] and scales it by 32767, the same
// scale the comb filter reference output uses.
func Float32ToInt16(x float32) int16 {
	if x > 1 {
		x = 1
	} else if x < -1 {
		x = -1
	}

	// 32767 keeps +1.0 from overflowing
	return int16(x * 32767.0)
}

// FullScale is the magnitude of the most negative value a signed PCM sample
// of bitDepth bits can hold, 2^(bitDepth-1). Unknown depths fall back to 16.
func FullScale(bitDepth int) float32 {
	if bitDepth < 2 || bitDepth > 32 {
		bitDepth = 16
	}
	return float32(int64(1) << (bitDepth - 1))
}

// IntToFloat32 normalises a signed PCM sample of bitDepth bits into [-1, 1).
func IntToFloat32(v int, bitDepth int) float32 {
	return float32(v) / FullScale(bitDepth)
}

// SPDX-License-Identifier: EPL-2.0

// Package txt writes decoded audio as plain text, one frame per line.
//
// A stereo frame of 0.5 and -0.25 becomes the row "0.5 -0.25 \n". Values are
// never printed with an exponent, so quiet samples can get long.
package txt

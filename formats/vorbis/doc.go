// SPDX-License-Identifier: EPL-2.0

// Package vorbis decodes Ogg Vorbis streams through
// github.com/jfreymuth/oggvorbis.
//
// Vorbis decodes to float32 natively, so samples pass through untouched.
// Reads are trimmed to whole frames of the stream's channel count.
package vorbis

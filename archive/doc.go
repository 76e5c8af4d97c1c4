// Package archive persists datasets in a compact binary container.
//
// An archive is a small fixed header followed by a compressed payload of
// sample records. Four payload codecs are available: Zstd (the default),
// S2, LZ4, and None for pass-through. The codec is recorded in the header,
// so Read never needs to be told which one was used.
//
// Typical usage:
//
//	var buf bytes.Buffer
//	err := archive.Write(&buf, set, archive.WithCompression(archive.CompressionS2))
//	...
//	restored, err := archive.Read(&buf)
//
// Values round-trip bit for bit, including NaN and infinities, because the
// payload stores raw IEEE-754 bit patterns rather than a decimal rendering.
package archive

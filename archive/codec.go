package archive

import (
	"fmt"
	"strings"
)

// CompressionType selects the payload compression of an archive.
type CompressionType uint8

const (
	// CompressionNone stores the payload uncompressed.
	CompressionNone CompressionType = 0x1
	// CompressionZstd uses Zstandard, the best ratio for cold archives.
	CompressionZstd CompressionType = 0x2
	// CompressionS2 uses S2, favoring speed over ratio.
	CompressionS2 CompressionType = 0x3
	// CompressionLZ4 uses LZ4 block compression.
	CompressionLZ4 CompressionType = 0x4
)

// String returns the string representation of the compression type.
func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "none"
	case CompressionZstd:
		return "zstd"
	case CompressionS2:
		return "s2"
	case CompressionLZ4:
		return "lz4"
	default:
		return "unknown"
	}
}

// CompressionFromString returns the CompressionType for a given name
// (case-insensitive). Returns 0 for unknown names.
func CompressionFromString(name string) CompressionType {
	switch strings.ToLower(name) {
	case "none":
		return CompressionNone
	case "zstd":
		return CompressionZstd
	case "s2":
		return CompressionS2
	case "lz4":
		return CompressionLZ4
	default:
		return 0
	}
}

// Compressor compresses an archive payload.
//
// Memory management:
//   - Returned slice is newly allocated and owned by the caller
//   - Input slice is not modified
type Compressor interface {
	Compress(data []byte) ([]byte, error)
}

// Decompressor decompresses an archive payload previously produced by the
// matching Compressor. It returns an error when the data is corrupted or was
// compressed with an incompatible algorithm.
type Decompressor interface {
	Decompress(data []byte) ([]byte, error)
}

// Codec combines both directions of one compression algorithm.
type Codec interface {
	Compressor
	Decompressor
}

var builtinCodecs = map[CompressionType]Codec{
	CompressionNone: NewNoOpCodec(),
	CompressionZstd: NewZstdCodec(),
	CompressionS2:   NewS2Codec(),
	CompressionLZ4:  NewLZ4Codec(),
}

// GetCodec retrieves the built-in Codec for the given compression type.
func GetCodec(compressionType CompressionType) (Codec, error) {
	if codec, ok := builtinCodecs[compressionType]; ok {
		return codec, nil
	}

	return nil, fmt.Errorf("unsupported compression type: %s", compressionType)
}

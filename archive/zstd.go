package archive

// ZstdCodec compresses archive payloads with Zstandard. It offers the best
// compression ratio of the built-in codecs and is the right choice for cold
// storage of analysis sets.
//
// The implementation is selected at build time: the cgo build uses
// valyala/gozstd, the pure-Go build klauspost/compress/zstd. The two produce
// interchangeable streams.
type ZstdCodec struct{}

var _ Codec = (*ZstdCodec)(nil)

// NewZstdCodec creates a new Zstd codec with default settings.
func NewZstdCodec() ZstdCodec {
	return ZstdCodec{}
}

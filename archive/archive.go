package archive

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"math"

	"github.com/concordlabs/concord/dataset"
	"github.com/concordlabs/concord/internal/options"
	"github.com/concordlabs/concord/internal/pool"
	"github.com/concordlabs/concord/sample"
)

// Archive layout, little-endian throughout:
//
//	magic     [4]byte  "CONC"
//	version   uint8    currently 1
//	codec     uint8    CompressionType
//	count     uint32   number of samples
//	length    uint32   compressed payload size in bytes
//	payload   []byte   compressed sample records
//
// Each payload record: label length (uint16), label bytes, point count
// (uint32), observed values, predicted values (IEEE-754 bits, uint64 each).
var magic = [4]byte{'C', 'O', 'N', 'C'}

const formatVersion = 1

// maxLabelLen bounds labels to what the uint16 length prefix can carry.
const maxLabelLen = 1<<16 - 1

// writeConfig holds the configuration assembled from Write options.
type writeConfig struct {
	compression CompressionType
}

// WriteOption is a functional option for Write.
type WriteOption = options.Option[*writeConfig]

// WithCompression selects the payload compression. The default is Zstd.
func WithCompression(compressionType CompressionType) WriteOption {
	return options.New(func(cfg *writeConfig) error {
		if _, err := GetCodec(compressionType); err != nil {
			return err
		}
		cfg.compression = compressionType

		return nil
	})
}

// Write serializes the dataset set to w in archive format.
func Write(w io.Writer, set *dataset.Set, opts ...WriteOption) error {
	cfg := writeConfig{compression: CompressionZstd}
	if err := options.Apply(&cfg, opts...); err != nil {
		return err
	}

	codec, err := GetCodec(cfg.compression)
	if err != nil {
		return err
	}

	payload := pool.GetPayloadBuffer()
	defer pool.PutPayloadBuffer(payload)

	for _, s := range set.Samples() {
		if err := writeSample(payload, s); err != nil {
			return err
		}
	}

	compressed, err := codec.Compress(payload.Bytes())
	if err != nil {
		return fmt.Errorf("compressing archive payload: %w", err)
	}

	header := make([]byte, 0, 14)
	header = append(header, magic[:]...)
	header = append(header, formatVersion, byte(cfg.compression))
	header = binary.LittleEndian.AppendUint32(header, uint32(set.Len()))
	header = binary.LittleEndian.AppendUint32(header, uint32(len(compressed)))

	if _, err := w.Write(header); err != nil {
		return fmt.Errorf("writing archive header: %w", err)
	}
	if _, err := w.Write(compressed); err != nil {
		return fmt.Errorf("writing archive payload: %w", err)
	}

	return nil
}

// Read deserializes an archive produced by Write.
func Read(r io.Reader) (*dataset.Set, error) {
	header := make([]byte, 14)
	if _, err := io.ReadFull(r, header); err != nil {
		return nil, fmt.Errorf("reading archive header: %w", err)
	}
	if !bytes.Equal(header[:4], magic[:]) {
		return nil, fmt.Errorf("bad archive magic %q", header[:4])
	}
	if header[4] != formatVersion {
		return nil, fmt.Errorf("unsupported archive version %d", header[4])
	}

	codec, err := GetCodec(CompressionType(header[5]))
	if err != nil {
		return nil, err
	}
	count := binary.LittleEndian.Uint32(header[6:10])
	length := binary.LittleEndian.Uint32(header[10:14])

	compressed := make([]byte, length)
	if _, err := io.ReadFull(r, compressed); err != nil {
		return nil, fmt.Errorf("reading archive payload: %w", err)
	}
	payload, err := codec.Decompress(compressed)
	if err != nil {
		return nil, fmt.Errorf("decompressing archive payload: %w", err)
	}

	set := dataset.NewSet()
	rd := bytes.NewReader(payload)
	for i := uint32(0); i < count; i++ {
		s, err := readSample(rd)
		if err != nil {
			return nil, fmt.Errorf("reading sample %d: %w", i, err)
		}
		if err := set.Add(s); err != nil {
			return nil, err
		}
	}
	if rd.Len() != 0 {
		return nil, fmt.Errorf("archive payload has %d trailing bytes", rd.Len())
	}

	return set, nil
}

func writeSample(buf *pool.ByteBuffer, s *sample.Sample) error {
	label := s.Label()
	if len(label) > maxLabelLen {
		return fmt.Errorf("label %q exceeds %d bytes", label[:32], maxLabelLen)
	}

	var scratch [8]byte
	binary.LittleEndian.PutUint16(scratch[:2], uint16(len(label)))
	buf.Write(scratch[:2])
	buf.WriteString(label)

	binary.LittleEndian.PutUint32(scratch[:4], uint32(s.Len()))
	buf.Write(scratch[:4])

	for _, series := range [][]float64{s.Observed(), s.Predicted()} {
		for _, v := range series {
			binary.LittleEndian.PutUint64(scratch[:], math.Float64bits(v))
			buf.Write(scratch[:])
		}
	}

	return nil
}

func readSample(rd *bytes.Reader) (*sample.Sample, error) {
	var scratch [8]byte
	if _, err := io.ReadFull(rd, scratch[:2]); err != nil {
		return nil, err
	}
	label := make([]byte, binary.LittleEndian.Uint16(scratch[:2]))
	if _, err := io.ReadFull(rd, label); err != nil {
		return nil, err
	}

	if _, err := io.ReadFull(rd, scratch[:4]); err != nil {
		return nil, err
	}
	n := binary.LittleEndian.Uint32(scratch[:4])

	series := make([][]float64, 2)
	for j := range series {
		series[j] = make([]float64, n)
		for i := range series[j] {
			if _, err := io.ReadFull(rd, scratch[:]); err != nil {
				return nil, err
			}
			series[j][i] = math.Float64frombits(binary.LittleEndian.Uint64(scratch[:]))
		}
	}

	return sample.New(string(label), series[0], series[1])
}

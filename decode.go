package transmute

import (
	"fmt"

	"github.com/segmentio/transmute/compress"
	"github.com/segmentio/transmute/compress/brotli"
	"github.com/segmentio/transmute/compress/gzip"
	"github.com/segmentio/transmute/compress/lz4"
	"github.com/segmentio/transmute/compress/snappy"
	"github.com/segmentio/transmute/compress/uncompressed"
	"github.com/segmentio/transmute/compress/zstd"
)

var compressionCodecs compress.Registry

func init() {
	compressionCodecs.Register(new(uncompressed.Codec))
	compressionCodecs.Register(new(gzip.Codec))
	compressionCodecs.Register(new(snappy.Codec))
	compressionCodecs.Register(new(brotli.Codec))
	compressionCodecs.Register(new(zstd.Codec))
	compressionCodecs.Register(new(lz4.Codec))
}

// LookupCodec returns the compression codec registered under name, e.g.
// "zstd" or "uncompressed".
func LookupCodec(name string) (compress.Codec, error) {
	return compressionCodecs.Lookup(name)
}

// CodecNames returns the sorted names of the available compression codecs.
func CodecNames() []string {
	return compressionCodecs.Names()
}

// Decode decompresses src with codec into a buffer aligned for T, and
// transfers the buffer to the returned slice. The length of the decompressed
// payload is validated by the guard of the configuration (AllOrNothing by
// default).
//
// The decompressed bytes are copied only if the codec had to grow the buffer
// and the new one is not aligned for T.
func (l Layout[T]) Decode(codec compress.Codec, src []byte, options ...DecodeOption) ([]T, error) {
	config, err := NewDecodeConfig(options...)
	if err != nil {
		return nil, err
	}

	buf := l.allocate(config.Allocator, config.SizeHint)[:0]
	out, err := codec.Decode(buf, src)
	if err != nil {
		return nil, fmt.Errorf("decompressing %s payload: %w", codec, err)
	}

	if l.CheckAlignment(out) != nil {
		aligned := l.allocate(config.Allocator, len(out))
		copy(aligned, out)
		out = aligned
	}

	values, err := l.transfer(out, config.Guard)
	if err != nil {
		return nil, fmt.Errorf("decoding %s payload of %d bytes: %w", codec, len(out), err)
	}
	return values, nil
}

// Encode compresses the memory of values with codec and writes the result to
// dst, which is reallocated if too small.
func (l Layout[T]) Encode(codec compress.Codec, dst []byte, values []T) ([]byte, error) {
	out, err := codec.Encode(dst, SliceToBytes(values))
	if err != nil {
		return out, fmt.Errorf("compressing %d bytes with %s: %w", len(values)*l.size, codec, err)
	}
	return out, nil
}

// Decode decompresses src into a slice of the built-in type T. See
// Layout.Decode.
func Decode[T Pod](codec compress.Codec, src []byte, options ...DecodeOption) ([]T, error) {
	return Of[T]().Decode(codec, src, options...)
}

// Encode compresses the memory of a slice of built-in values. See
// Layout.Encode.
func Encode[T Pod](codec compress.Codec, dst []byte, values []T) ([]byte, error) {
	return Of[T]().Encode(codec, dst, values)
}

package transmute_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/segmentio/transmute"
	"github.com/segmentio/transmute/compress/uncompressed"
)

func TestCodecNames(t *testing.T) {
	assert.Equal(t, []string{"brotli", "gzip", "lz4", "snappy", "uncompressed", "zstd"}, transmute.CodecNames())

	_, err := transmute.LookupCodec("lzo")
	assert.Error(t, err)
}

func TestDecode(t *testing.T) {
	values := make([]float64, 1000)
	for i := range values {
		values[i] = float64(i) / 3
	}

	for _, name := range transmute.CodecNames() {
		codec, err := transmute.LookupCodec(name)
		require.NoError(t, err)

		t.Run(name, func(t *testing.T) {
			payload, err := transmute.Encode(codec, nil, values)
			require.NoError(t, err)

			for _, sizeHint := range []int{0, 8, 8000, 1 << 16} {
				t.Run(fmt.Sprintf("size-hint=%d", sizeHint), func(t *testing.T) {
					decoded, err := transmute.Decode[float64](codec, payload, transmute.SizeHint(sizeHint))
					require.NoError(t, err)
					assert.Equal(t, values, decoded)
					assert.NoError(t, transmute.CheckAlignment[float64](decoded))
				})
			}

			t.Run("arena", func(t *testing.T) {
				arena := new(transmute.Arena)
				decoded, err := transmute.Decode[float64](codec, payload, transmute.UseAllocator(arena), transmute.SizeHint(8000))
				require.NoError(t, err)
				assert.Equal(t, values, decoded)
			})
		})
	}
}

func TestDecodeGuard(t *testing.T) {
	codec, err := transmute.LookupCodec("zstd")
	require.NoError(t, err)

	payload, err := codec.Encode(nil, make([]byte, 33))
	require.NoError(t, err)

	_, err = transmute.Decode[uint64](codec, payload)
	assert.True(t, errors.Is(err, transmute.ErrExcessBytes), "unexpected error: %v", err)

	var guardErr *transmute.GuardError
	require.True(t, errors.As(err, &guardErr))
	assert.Equal(t, 32, guardErr.Required)
	assert.Equal(t, 33, guardErr.Actual)

	values, err := transmute.Decode[uint64](codec, payload, transmute.Permissive)
	require.NoError(t, err)
	assert.Len(t, values, 4)
}

func TestDecodeCorrupted(t *testing.T) {
	codec, err := transmute.LookupCodec("gzip")
	require.NoError(t, err)

	_, err = transmute.Decode[int32](codec, []byte("not a gzip stream"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decompressing GZIP payload")
}

func TestDecodeInvalidConfig(t *testing.T) {
	codec := new(uncompressed.Codec)

	_, err := transmute.Decode[int32](codec, []byte{1, 2, 3, 4}, transmute.SizeHint(-1))
	assert.ErrorContains(t, err, "SizeHint")
}

func TestDecodeDeclared(t *testing.T) {
	codec, err := transmute.LookupCodec("lz4")
	require.NoError(t, err)

	layout := transmute.Declared[entry]()
	entries := []entry{
		{ID: uuid.MustParse("f47ac10b-58cc-4372-a567-0e02b2c3d479"), Score: 0.5},
		{ID: uuid.MustParse("6ba7b811-9dad-11d1-80b4-00c04fd430c8"), Score: 0.25},
	}

	payload, err := layout.Encode(codec, nil, entries)
	require.NoError(t, err)

	decoded, err := layout.Decode(codec, payload, transmute.Pedantic)
	require.NoError(t, err)
	assert.Equal(t, entries, decoded)
}

type entry struct {
	ID    uuid.UUID
	Score float64
}

func (entry) Transmutable() {}

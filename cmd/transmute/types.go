package main

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/sys/cpu"

	"github.com/segmentio/transmute"
	"github.com/segmentio/transmute/compress"
	"github.com/segmentio/transmute/internal/debug"
)

// elementType is implemented by the element types the commands can read and
// write, erasing the type parameter of the transmute operations.
type elementType interface {
	String() string
	Size() int
	Alignment() int

	// wordSize is the size of the scalars making up an element, which is the
	// unit of byte order conversions. Byte arrays have a word size of one.
	wordSize() int

	// decode reinterprets data, which is in the given byte order, and returns
	// the formatted values it holds. data may be modified by the call.
	decode(data []byte, guard transmute.Guard, order byteOrder) ([]string, error)

	// decompress decodes a compressed payload holding values in the given
	// byte order, and returns the formatted values.
	decompress(codec compress.Codec, src []byte, guard transmute.Guard, order byteOrder) ([]string, error)

	// encode parses values and returns their memory in the given byte order,
	// compressed with codec.
	encode(codec compress.Codec, values []string, order byteOrder) ([]byte, error)
}

type typedElement[T any] struct {
	name   string
	word   int
	layout transmute.Layout[T]
	format func(T) string
	parse  func(string) (T, error)
}

func (e *typedElement[T]) String() string { return e.name }
func (e *typedElement[T]) Size() int      { return e.layout.Size() }
func (e *typedElement[T]) Alignment() int { return e.layout.Alignment() }
func (e *typedElement[T]) wordSize() int  { return e.word }

func (e *typedElement[T]) decode(data []byte, guard transmute.Guard, order byteOrder) ([]string, error) {
	aligned, err := e.layout.Align(data)
	if err != nil {
		debug.Format("%s: copying %d bytes to an aligned buffer: %v", e.name, len(data), err)
		buf := e.layout.MakeBytes(len(data))
		copy(buf, data)
		aligned = e.layout.AssumeAligned(buf)
	}

	values, err := aligned.Many(guard)
	if err != nil {
		return nil, err
	}
	order.toNative(transmute.SliceToBytes(values), e.word)
	return e.formatAll(values), nil
}

func (e *typedElement[T]) decompress(codec compress.Codec, src []byte, guard transmute.Guard, order byteOrder) ([]string, error) {
	values, err := e.layout.Decode(codec, src, guard, transmute.SizeHint(len(src)))
	if err != nil {
		return nil, err
	}
	debug.Format("%s: decoded %d values from %d bytes of %s payload", e.name, len(values), len(src), codec)
	order.toNative(transmute.SliceToBytes(values), e.word)
	return e.formatAll(values), nil
}

func (e *typedElement[T]) encode(codec compress.Codec, args []string, order byteOrder) ([]byte, error) {
	values := make([]T, len(args))
	for i, arg := range args {
		v, err := e.parse(arg)
		if err != nil {
			return nil, fmt.Errorf("parsing value #%d as %s: %w", i, e.name, err)
		}
		values[i] = v
	}
	order.toNative(transmute.SliceToBytes(values), e.word)
	if codec == nil {
		return e.layout.VecToBytes(&values), nil
	}
	return e.layout.Encode(codec, nil, values)
}

func (e *typedElement[T]) formatAll(values []T) []string {
	s := make([]string, len(values))
	for i, v := range values {
		s[i] = e.format(v)
	}
	return s
}

func newElement[T transmute.Pod](name string, word int, format func(T) string, parse func(string) (T, error)) elementType {
	return &typedElement[T]{
		name:   name,
		word:   word,
		layout: transmute.Of[T](),
		format: format,
		parse:  parse,
	}
}

func signed[T ~int8 | ~int16 | ~int32 | ~int64](name string, bits int) elementType {
	return newElement(name, bits/8,
		func(v T) string { return strconv.FormatInt(int64(v), 10) },
		func(s string) (T, error) {
			v, err := strconv.ParseInt(s, 0, bits)
			return T(v), err
		},
	)
}

func unsigned[T ~uint8 | ~uint16 | ~uint32 | ~uint64](name string, bits int) elementType {
	return newElement(name, bits/8,
		func(v T) string { return strconv.FormatUint(uint64(v), 10) },
		func(s string) (T, error) {
			v, err := strconv.ParseUint(s, 0, bits)
			return T(v), err
		},
	)
}

func float[T ~float32 | ~float64](name string, bits int) elementType {
	return newElement(name, bits/8,
		func(v T) string { return strconv.FormatFloat(float64(v), 'g', -1, bits) },
		func(s string) (T, error) {
			v, err := strconv.ParseFloat(s, bits)
			return T(v), err
		},
	)
}

func complexElement[T ~complex64 | ~complex128](name string, bits int) elementType {
	return newElement(name, bits/16,
		func(v T) string { return strconv.FormatComplex(complex128(v), 'g', -1, bits) },
		func(s string) (T, error) {
			v, err := strconv.ParseComplex(s, bits)
			return T(v), err
		},
	)
}

var elementTypes = map[string]elementType{
	"int8":       signed[int8]("int8", 8),
	"int16":      signed[int16]("int16", 16),
	"int32":      signed[int32]("int32", 32),
	"int64":      signed[int64]("int64", 64),
	"uint8":      unsigned[uint8]("uint8", 8),
	"uint16":     unsigned[uint16]("uint16", 16),
	"uint32":     unsigned[uint32]("uint32", 32),
	"uint64":     unsigned[uint64]("uint64", 64),
	"float32":    float[float32]("float32", 32),
	"float64":    float[float64]("float64", 64),
	"complex64":  complexElement[complex64]("complex64", 64),
	"complex128": complexElement[complex128]("complex128", 128),
	"uuid": newElement("uuid", 1,
		func(v uuid.UUID) string { return v.String() },
		uuid.Parse,
	),
}

func lookupElementType(name string) (elementType, error) {
	if t, ok := elementTypes[strings.ToLower(name)]; ok {
		return t, nil
	}
	return nil, fmt.Errorf("unsupported element type: %q (expected one of %s)", name, strings.Join(elementTypeNames(), ", "))
}

func elementTypeNames() []string {
	names := make([]string, 0, len(elementTypes))
	for name := range elementTypes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// byteOrder is the byte order of the buffers read or written by the commands.
type byteOrder int

const (
	nativeEndian byteOrder = iota
	littleEndian
	bigEndian
)

func parseByteOrder(name string) (byteOrder, error) {
	switch strings.ToLower(name) {
	case "", "native":
		return nativeEndian, nil
	case "little":
		return littleEndian, nil
	case "big":
		return bigEndian, nil
	default:
		return 0, fmt.Errorf("unsupported byte order: %q (expected native, little or big)", name)
	}
}

// toNative converts data in place between order and the native byte order of
// the host; the conversion is its own inverse. Trailing bytes that do not form
// a whole word are left untouched.
func (order byteOrder) toNative(data []byte, word int) {
	if order == nativeEndian || word <= 1 || (order == bigEndian) == cpu.IsBigEndian {
		return
	}
	for i := 0; i+word <= len(data); i += word {
		w := data[i : i+word]
		for j, k := 0, word-1; j < k; j, k = j+1, k-1 {
			w[j], w[k] = w[k], w[j]
		}
	}
}

// Package compress provides the generic APIs implemented by the compression
// codecs of the sub-packages, used to store typed buffers in compressed form.
package compress

import (
	"bytes"
	"fmt"
	"io"
	"sort"
	"strings"
	"sync"
)

// The Codec interface represents compression codecs implemented by the
// compress sub-packages.
//
// Codec instances must be safe to use concurrently from multiple goroutines.
type Codec interface {
	// Returns a human-readable name for the codec.
	String() string

	// Writes the compressed version of src to dst and returns it.
	//
	// The method automatically reallocates the output buffer if its capacity
	// was too small to hold the compressed data.
	Encode(dst, src []byte) ([]byte, error)

	// Writes the uncompressed version of src to dst and returns it.
	//
	// The method automatically reallocates the output buffer if its capacity
	// was too small to hold the uncompressed data.
	Decode(dst, src []byte) ([]byte, error)
}

type Reader interface {
	io.ReadCloser
	Reset(io.Reader) error
}

type Writer interface {
	io.WriteCloser
	Reset(io.Writer)
}

type Compressor struct {
	writers sync.Pool
}

func (c *Compressor) Encode(dst, src []byte, newWriter func(io.Writer) (Writer, error)) ([]byte, error) {
	output := bytes.NewBuffer(dst[:0])

	w, _ := c.writers.Get().(Writer)
	if w != nil {
		w.Reset(output)
	} else {
		var err error
		if w, err = newWriter(output); err != nil {
			return dst, err
		}
	}
	defer c.writers.Put(w)
	defer w.Reset(io.Discard)

	if _, err := w.Write(src); err != nil {
		return output.Bytes(), err
	}
	if err := w.Close(); err != nil {
		return output.Bytes(), err
	}
	return output.Bytes(), nil
}

type Decompressor struct {
	readers sync.Pool
}

func (d *Decompressor) Decode(dst, src []byte, newReader func(io.Reader) (Reader, error)) ([]byte, error) {
	input := bytes.NewReader(src)

	r, _ := d.readers.Get().(Reader)
	if r != nil {
		if err := r.Reset(input); err != nil {
			return dst, err
		}
	} else {
		var err error
		if r, err = newReader(input); err != nil {
			return dst, err
		}
	}

	defer func() {
		if err := r.Reset(nil); err == nil {
			d.readers.Put(r)
		}
	}()

	output := bytes.NewBuffer(dst[:0])
	_, err := output.ReadFrom(r)
	return output.Bytes(), err
}

// Registry maps codec names to codecs. The zero value is an empty registry
// ready to use.
//
// Registry values are safe to use concurrently from multiple goroutines.
type Registry struct {
	mutex  sync.RWMutex
	codecs map[string]Codec
}

// Register adds codec to r under the lower-cased value of its String method,
// replacing any codec previously registered with the same name.
func (r *Registry) Register(codec Codec) {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	if r.codecs == nil {
		r.codecs = make(map[string]Codec)
	}
	r.codecs[strings.ToLower(codec.String())] = codec
}

// Lookup returns the codec registered under name, which is matched without
// regard to case.
func (r *Registry) Lookup(name string) (Codec, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()
	if codec, ok := r.codecs[strings.ToLower(name)]; ok {
		return codec, nil
	}
	return nil, fmt.Errorf("unknown compression codec: %q", name)
}

// Names returns the sorted list of registered codec names.
func (r *Registry) Names() []string {
	r.mutex.RLock()
	defer r.mutex.RUnlock()
	names := make([]string, 0, len(r.codecs))
	for name := range r.codecs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

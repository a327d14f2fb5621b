// Package tensor defines the on-disk feature artifact: a dense float32 tensor
// serialized with msgpack.
//
// An artifact is a msgpack map with three fields:
//
//	shape: [int...]      dimensions, outermost first
//	dtype: "float32"
//	data:  [float32...]  row-major values, len == product(shape)
package tensor

import (
	"errors"
	"fmt"
	"io"

	"github.com/vmihailenco/msgpack/v5"
)

// FileExt is the file extension of a persisted tensor.
const FileExt = ".msgpack"

// Float32 is the only dtype currently produced.
const Float32 = "float32"

// ErrShape is returned when a tensor's shape does not match its data.
var ErrShape = errors.New("tensor: shape does not match data")

// Tensor is a dense, row-major float32 tensor.
type Tensor struct {
	Shape []int     `msgpack:"shape"`
	DType string    `msgpack:"dtype"`
	Data  []float32 `msgpack:"data"`
}

// FromRows builds a [len(rows), cols] tensor. cols is taken as given so that an
// empty row set still carries its inner dimension.
func FromRows(rows [][]float32, cols int) (*Tensor, error) {
	data := make([]float32, 0, len(rows)*cols)
	for i, row := range rows {
		if len(row) != cols {
			return nil, fmt.Errorf("%w: row %d has %d values, want %d", ErrShape, i, len(row), cols)
		}
		data = append(data, row...)
	}
	return &Tensor{
		Shape: []int{len(rows), cols},
		DType: Float32,
		Data:  data,
	}, nil
}

// NumElements returns the product of the shape.
func (t *Tensor) NumElements() int {
	n := 1
	for _, d := range t.Shape {
		n *= d
	}
	return n
}

// Validate reports whether shape, dtype and data agree.
func (t *Tensor) Validate() error {
	if t.DType != Float32 {
		return fmt.Errorf("tensor: unsupported dtype %q", t.DType)
	}
	for _, d := range t.Shape {
		if d < 0 {
			return fmt.Errorf("%w: negative dimension in %v", ErrShape, t.Shape)
		}
	}
	if n := t.NumElements(); n != len(t.Data) {
		return fmt.Errorf("%w: shape %v needs %d values, have %d", ErrShape, t.Shape, n, len(t.Data))
	}
	return nil
}

// Encode writes t to w.
func Encode(w io.Writer, t *Tensor) error {
	if err := t.Validate(); err != nil {
		return err
	}
	return msgpack.NewEncoder(w).Encode(t)
}

// Decode reads one tensor from r.
func Decode(r io.Reader) (*Tensor, error) {
	var t Tensor
	if err := msgpack.NewDecoder(r).Decode(&t); err != nil {
		return nil, fmt.Errorf("tensor: decode: %w", err)
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return &t, nil
}

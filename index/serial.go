package index

import (
	"fmt"

	"github.com/mus-format/mus-go/ord"
	"github.com/mus-format/mus-go/raw"
	"github.com/mus-format/mus-go/varint"
	"github.com/poiesic/coursevec/core"
)

// vectorsMagic marks the vector file format; bump the digit on layout change.
const vectorsMagic = "CVEC1"

// marshalVectors encodes the vector block: magic, dimension, count, then the
// vectors back to back as raw float32 values.
func marshalVectors(dim int, vectors [][]float32) []byte {
	size := ord.String.Size(vectorsMagic) +
		varint.Int.Size(dim) +
		varint.Int.Size(len(vectors))
	for _, vec := range vectors {
		for _, v := range vec {
			size += raw.Float32.Size(v)
		}
	}

	bs := make([]byte, size)
	n := ord.String.Marshal(vectorsMagic, bs)
	n += varint.Int.Marshal(dim, bs[n:])
	n += varint.Int.Marshal(len(vectors), bs[n:])
	for _, vec := range vectors {
		for _, v := range vec {
			n += raw.Float32.Marshal(v, bs[n:])
		}
	}
	return bs
}

// unmarshalVectors decodes a vector block produced by marshalVectors.
func unmarshalVectors(bs []byte) (dim int, vectors [][]float32, err error) {
	magic, n, err := ord.String.Unmarshal(bs)
	if err != nil {
		return 0, nil, err
	}
	if magic != vectorsMagic {
		return 0, nil, fmt.Errorf("%w: magic %q", ErrBadMagic, magic)
	}

	dim, n1, err := varint.Int.Unmarshal(bs[n:])
	if err != nil {
		return 0, nil, err
	}
	n += n1
	if dim <= 0 {
		return 0, nil, fmt.Errorf("%w: %d", core.ErrInvalidDimension, dim)
	}

	count, n1, err := varint.Int.Unmarshal(bs[n:])
	if err != nil {
		return 0, nil, err
	}
	n += n1
	if count < 0 {
		return 0, nil, fmt.Errorf("%w: negative count %d", ErrBadMagic, count)
	}

	vectors = make([][]float32, count)
	for i := range vectors {
		vec := make([]float32, dim)
		for j := range vec {
			v, n1, err := raw.Float32.Unmarshal(bs[n:])
			if err != nil {
				return 0, nil, err
			}
			vec[j] = v
			n += n1
		}
		vectors[i] = vec
	}
	return dim, vectors, nil
}

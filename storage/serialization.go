// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package storage

import (
	"fmt"

	"github.com/mus-format/mus-go/raw"
	"github.com/mus-format/mus-go/varint"
)

// MarshalVector serializes an embedding vector to bytes.
func MarshalVector(vector []float32) []byte {
	size := varint.Int.Size(len(vector))
	for _, v := range vector {
		size += raw.Float32.Size(v)
	}
	bs := make([]byte, size)
	n := varint.Int.Marshal(len(vector), bs)
	for _, v := range vector {
		n += raw.Float32.Marshal(v, bs[n:])
	}
	return bs
}

// UnmarshalVector deserializes an embedding vector from bytes.
func UnmarshalVector(data []byte) ([]float32, error) {
	count, n, err := varint.Int.Unmarshal(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSerializationFailed, err)
	}
	if count < 0 {
		return nil, fmt.Errorf("%w: negative length %d", ErrSerializationFailed, count)
	}
	vector := make([]float32, count)
	for i := range vector {
		v, n1, err := raw.Float32.Unmarshal(data[n:])
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrSerializationFailed, err)
		}
		vector[i] = v
		n += n1
	}
	return vector, nil
}

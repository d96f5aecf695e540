package badger

import (
	"github.com/mus-format/mus-go/ord"
	"github.com/mus-format/mus-go/varint"

	"github.com/poiesic/vectis/vector"
)

var vectorSer = ord.NewSliceSer[float32](varint.Float32)

// marshalVector serializes a vector to its MUS encoding.
func marshalVector(v vector.Vector) []byte {
	buf := make([]byte, vectorSer.Size([]float32(v)))
	vectorSer.Marshal([]float32(v), buf)
	return buf
}

// unmarshalVector deserializes a vector from its MUS encoding.
func unmarshalVector(data []byte) (vector.Vector, error) {
	values, _, err := vectorSer.Unmarshal(data)
	if err != nil {
		return nil, err
	}
	return vector.Vector(values), nil
}

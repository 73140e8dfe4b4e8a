package badger

import (
	"github.com/go-crypt/x/blake2b"
)

// embeddingPrefix namespaces embedding cache entries.
const embeddingPrefix = "emb:"

// makeEmbeddingKey derives a fixed-size cache key from the model and text by
// BLAKE2b hashing, so arbitrarily long chunks map to short keys and the same
// text under two models never collides.
func makeEmbeddingKey(model, text string) []byte {
	h, _ := blake2b.New(16, nil)
	h.Write([]byte(model))
	h.Write([]byte{0})
	h.Write([]byte(text))
	sum := h.Sum(nil)

	key := make([]byte, 0, len(embeddingPrefix)+len(sum))
	key = append(key, embeddingPrefix...)
	return append(key, sum...)
}

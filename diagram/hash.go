package diagram

import (
	"fmt"

	"github.com/minio/highwayhash"
)

var key = []byte("0123456789ABCDEF0123456789ABCDEF")

// Hash returns highwayhash 64-bit digest of data
func Hash(data []byte) (uint64, error) {
	hash, err := highwayhash.New64(key)
	if err != nil {
		return 0, err
	}
	_, err = hash.Write(data)
	return hash.Sum64(), err
}

// HashString returns hex encoded digest of data, empty when hashing fails
func HashString(data []byte) string {
	sum, err := Hash(data)
	if err != nil {
		return ""
	}
	return fmt.Sprintf("%016x", sum)
}

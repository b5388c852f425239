package cache

import (
	"strconv"
)

// ETagFor derives an ETag from a serialized payload using a 32-bit
// rolling hash rendered as a quoted base-36 string. Payloads that
// serialize identically always produce the same tag. The hash is not
// cryptographic; it exists for cheap equality checks only.
func ETagFor(data []byte) string {
	var hash int32
	for _, b := range data {
		hash = hash<<5 - hash + int32(b)
	}

	v := int64(hash)
	if v < 0 {
		v = -v
	}

	return `"` + strconv.FormatInt(v, 36) + `"`
}

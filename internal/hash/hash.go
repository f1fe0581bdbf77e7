package hash

import (
	"github.com/gostonefire/animdata/internal/conf"
)

// Bucket - Returns the hash table bucket a COF name belongs to. The bucket number is the
// sum of the upper-cased ASCII code points of the name modulo the number of buckets.
// AnimData.D2 does not store the value anywhere; it is implied by record position and
// has to be recomputed and checked when decoding.
func Bucket(cofName string) int {
	sum := 0
	for i := 0; i < len(cofName); i++ {
		c := cofName[i]
		if c >= 'a' && c <= 'z' {
			c -= 'a' - 'A'
		}
		sum += int(c)
	}

	return sum % conf.BucketCount
}

//go:build unit

package hash

import (
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestBucket(t *testing.T) {
	t.Run("returns known bucket numbers", func(t *testing.T) {
		// Prepare
		names := map[string]int{
			"AAAAAAA": 199,
			"HTHSSBL": 24,
			"0000000": 80,
		}

		// Execute and check
		for name, bucket := range names {
			assert.Equal(t, bucket, Bucket(name), "bucket for %s", name)
		}
	})

	t.Run("folds lower case to upper case", func(t *testing.T) {
		// Prepare
		upper := Bucket("HTHSSBL")

		// Execute
		lower := Bucket("hthssbl")
		mixed := Bucket("HthSsbL")

		// Check
		assert.Equal(t, upper, lower, "lower case name hashes like upper case")
		assert.Equal(t, upper, mixed, "mixed case name hashes like upper case")
	})

	t.Run("stays within the bucket range", func(t *testing.T) {
		// Prepare
		names := []string{"ZZZZZZZ", "\x7f\x7f\x7f\x7f\x7f\x7f\x7f", "A", ""}

		// Execute and check
		for _, name := range names {
			bucket := Bucket(name)
			assert.GreaterOrEqual(t, bucket, 0, "bucket not negative for %q", name)
			assert.Less(t, bucket, 256, "bucket below count for %q", name)
		}
	})
}

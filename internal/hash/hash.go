// Package hash computes the xxHash64 checksums that guard payload columns.
package hash

import "github.com/cespare/xxhash/v2"

// Checksum returns the xxHash64 of the concatenation of cols.
func Checksum(cols ...[]byte) uint64 {
	d := xxhash.New()
	for _, c := range cols {
		_, _ = d.Write(c) // never fails
	}

	return d.Sum64()
}

// ID returns the xxHash64 of s.
func ID(s string) uint64 {
	return xxhash.Sum64String(s)
}

package sparsemap

// Mix64 is the SplitMix64 finalizer. Small input changes flip about half of
// the output bits, so packed composite keys spread evenly over buckets.
func Mix64(x uint64) uint64 {
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb

	return x ^ (x >> 31)
}

// Integer is the constraint accepted by HashInt.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// HashInt hashes any integer key.
func HashInt[K Integer](k K) uint64 {
	return Mix64(uint64(k))
}

// HashString hashes a string key with FNV-1a followed by Mix64.
func HashString(s string) uint64 {
	const (
		offset64 = 14695981039346656037
		prime64  = 1099511628211
	)
	h := uint64(offset64)
	for i := 0; i < len(s); i++ {
		h ^= uint64(s[i])
		h *= prime64
	}

	return Mix64(h)
}

package services

import (
	"crypto/sha1"
	"math/big"
)

// palette matches the one the dashboard uses for its legend.
var palette = []string{
	"#0F766E",
	"#1D4ED8",
	"#7C3AED",
	"#DB2777",
	"#EA580C",
	"#16A34A",
	"#0EA5E9",
	"#F59E0B",
	"#6B7280",
	"#EF4444",
}

// ColorForKey deterministically assigns a palette color to a zone or
// district key, so the same name gets the same color on every request.
func ColorForKey(key string) string {
	sum := sha1.Sum([]byte(key))
	n := new(big.Int).SetBytes(sum[:])
	idx := new(big.Int).Mod(n, big.NewInt(int64(len(palette)))).Int64()
	return palette[idx]
}

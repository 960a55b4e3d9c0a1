package daily

import (
"crypto/hmac"
"crypto/sha256"
"encoding/binary"
"time"
)

// DateKey returns YYYY-MM-DD in UTC.
func DateKey(t time.Time) string {
return t.UTC().Format("2006-01-02")
}

// Seed returns a deterministic board seed for a date using HMAC(salt, YYYY-MM-DD).
// Every process sharing the salt derives the same seed for the day.
func Seed(t time.Time, salt string) int64 {
dk := DateKey(t)
h := hmac.New(sha256.New, []byte(salt))
h.Write([]byte(dk))
sum := h.Sum(nil)
// take first 8 bytes as the seed, big-endian
return int64(binary.BigEndian.Uint64(sum[:8]))
}

package reference

import (
	"crypto/rand"
	"strconv"
	"strings"

	"lux/shared/timezone"
)

const (
	prefix       = "LUX"
	suffixLength = 4
	charset      = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"
)

// Generate returns a guest-facing booking reference of the form
// LUX-<nanosecond timestamp, base36>-<random suffix>. The timestamp keeps
// references roughly sortable; the suffix disambiguates same-instant
// bookings.
func Generate() string {
	nanos := timezone.Now().UnixNano()
	stamp := strings.ToUpper(strconv.FormatInt(nanos, 36))

	return prefix + "-" + stamp + "-" + randomSuffix(suffixLength)
}

func randomSuffix(length int) string {
	buf := make([]byte, length)
	_, _ = rand.Read(buf)

	for i, b := range buf {
		buf[i] = charset[int(b)%len(charset)]
	}

	return string(buf)
}

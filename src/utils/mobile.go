package utils

import (
	"math/rand"
	"strconv"
)

// RandomMobile fills a missing mobile number during bulk registration with a
// random 10-digit value in the Indian mobile range (6000000000-9999999999).
func RandomMobile() string {
	return strconv.FormatInt(6000000000+rand.Int63n(4000000000), 10)
}

package credential

import (
	"math/rand/v2"
	"strconv"
	"time"
)

const tokenCharset = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// newRegistrationToken returns a 32-character alphanumeric token.
func newRegistrationToken() string {
	b := make([]byte, 32)
	for i := range b {
		b[i] = tokenCharset[rand.IntN(len(tokenCharset))]
	}
	return string(b)
}

// newLoginToken returns a random base-36 fragment concatenated with the
// current time in base-36.
func newLoginToken() string {
	fragment := strconv.FormatUint(rand.Uint64(), 36)
	return fragment + strconv.FormatInt(time.Now().UnixMilli(), 36)
}

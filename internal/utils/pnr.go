package utils

import (
	"math/rand"
	"strconv"
	"strings"
	"time"
)

const alnum = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// GeneratePNR returns an 8-10 character uppercase alphanumeric booking
// reference. Practically unique, not unguessable; the storage layer
// enforces uniqueness with a UNIQUE index.
func GeneratePNR() string {
	n := 8 + rand.Intn(3)
	return randomAlnum(n)
}

// GenerateBookingID returns "BK" + unix millis + 4 random characters.
func GenerateBookingID() string {
	return "BK" + strconv.FormatInt(time.Now().UnixMilli(), 10) + randomAlnum(4)
}

func randomAlnum(n int) string {
	var b strings.Builder
	b.Grow(n)
	for i := 0; i < n; i++ {
		b.WriteByte(alnum[rand.Intn(len(alnum))])
	}
	return b.String()
}

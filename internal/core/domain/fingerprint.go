package domain

import (
	"strconv"
	"time"
)

// Fingerprint is a cheap proxy for file identity: the modification time in
// whole seconds followed by the byte size. It is not a content hash; a change
// within the same second that keeps the size is not detected.
func Fingerprint(modTime time.Time, size int64) string {
	return strconv.FormatInt(modTime.Unix(), 10) + "-" + strconv.FormatInt(size, 10)
}

package tap3ber

/*
common.go contains small helpers shared by the arena, decoder, dictionary
and projector.
*/

import (
	"errors"
	"strconv"
	"sync"
)

var (
	mkerr func(string) error = errors.New
	itoa  func(int) string   = strconv.Itoa
)

var errCache sync.Map

// mkerrf builds (and interns) a composite error message the way repeated
// decode-error strings are built throughout this package.
func mkerrf(parts ...string) error {
	if len(parts) == 1 {
		if v, hit := errCache.Load(parts[0]); hit {
			return v.(error)
		}
	}

	var b []byte
	for _, p := range parts {
		b = append(b, p...)
	}
	msg := string(b)

	if v, hit := errCache.Load(msg); hit {
		return v.(error)
	}
	e := mkerr(msg)
	errCache.Store(msg, e)
	return e
}

// Package id hands out process-unique element identifiers.
package id

import (
	"strconv"
	"sync/atomic"
)

// ID identifies an element for the lifetime of the process. The zero value means "none".
type ID uint64

// None is the empty id used for "nothing selected".
const None ID = 0

var counter atomic.Uint64

// Next returns a fresh id. Ids are monotonic and never reused.
func Next() ID {
	return ID(counter.Add(1))
}

// IsNone reports whether the id is the empty id
func (i ID) IsNone() bool {
	return i == None
}

func (i ID) String() string {
	if i == None {
		return "none"
	}
	return "#" + strconv.FormatUint(uint64(i), 10)
}

// Package ident generates short opaque record identifiers.
package ident

import (
	"math/rand/v2"
	"strings"
)

const (
	alphabet = "0123456789abcdefghijklmnopqrstuvwxyz"
	length   = 7
	prefix   = "i"
)

// New returns a short random alphanumeric identifier suitable as a
// primary key. Uniqueness is probabilistic, not guaranteed; the id space
// (36^7) makes collisions rare enough for this system's write volume.
func New() string {
	var b strings.Builder
	b.Grow(len(prefix) + length)
	b.WriteString(prefix)
	for i := 0; i < length; i++ {
		b.WriteByte(alphabet[rand.IntN(len(alphabet))])
	}
	return b.String()
}

// Package ident generates the opaque identifiers used for top-up ids and
// purchase tokens.
package ident

import "github.com/google/uuid"

type Generator interface {
	NewID() string
}

type UUIDGenerator struct{}

func (UUIDGenerator) NewID() string {
	return uuid.NewString()
}

// Package id generates sortable unique identifiers.
package id

import "github.com/oklog/ulid/v2"

// New returns a new ULID string. Successive ids from one process sort in creation order.
func New() string {
	return ulid.Make().String()
}

// Valid reports whether s is a well-formed ULID.
func Valid(s string) bool {
	_, err := ulid.ParseStrict(s)
	return err == nil
}

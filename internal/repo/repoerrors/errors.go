// Package repoerrors holds storage-level sentinel errors shared by every
// partner store backend.
package repoerrors

import "errors"

var (
	ErrPartnerExists   = errors.New("partner already exists")
	ErrPartnerNotFound = errors.New("partner not found")
)

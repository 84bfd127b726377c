// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package shortid

// ID is an identifier with a distinct type, for callers that want the
// compiler to keep identifiers apart from other strings. Equality,
// ordering with <, and use as a map key all compare the underlying
// text byte for byte.
type ID string

// NewID returns a random ID at the default size.
func NewID() ID {
	return ID(New())
}

// NewOrderedID returns a time-ordered ID at the default size.
func NewOrderedID() (ID, error) {
	id, err := NewOrdered()
	return ID(id), err
}

// Wrap converts caller-supplied text into an ID. No validation is
// performed; the caller is trusted to supply identifier text.
func Wrap(s string) ID {
	return ID(s)
}

// String returns the identifier text.
func (id ID) String() string {
	return string(id)
}

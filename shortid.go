// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

// Package shortid generates compact, URL-safe identifiers.
//
// Identifiers are raw bytes encoded with the padding-free base64url
// alphabet, so they contain only A-Z, a-z, 0-9, '-' and '_' and never
// require escaping when embedded in URLs. The bytes are either entirely
// random or a big-endian timestamp prefix followed by random bytes.
// Randomness always comes from crypto/rand.
//
// Ordered identifiers group chronologically because of their timestamp
// prefix, but the base64url alphabet does not sort in byte-value order,
// so the encoded text is only approximately sorted. Do not rely on
// string comparison for ordering by time.
package shortid

import (
	"crypto/rand"
	"encoding/base64"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"time"
)

const (
	// MinSize is the smallest number of bytes an identifier may be
	// generated from.
	MinSize = 1

	// MaxSize is the largest number of bytes an identifier may be
	// generated from.
	MaxSize = 32

	// DefaultSize is the byte count used by the default entry points.
	// It encodes to 14 characters, which balances brevity against
	// collision resistance.
	DefaultSize = 10
)

var (
	// ErrInvalidLength indicates a requested byte count outside the
	// accepted bounds. This is always a programming error in the caller.
	ErrInvalidLength = errors.New("identifier byte count out of bounds")

	// ErrClockBeforeEpoch indicates the system clock reported a time
	// before the Unix epoch while generating an ordered identifier.
	ErrClockBeforeEpoch = errors.New("system clock reports a time before the Unix epoch")
)

// Precision selects the width and resolution of the timestamp prefix
// used by ordered identifiers.
type Precision int

const (
	// Seconds uses a 4-byte prefix holding seconds since the Unix epoch.
	Seconds Precision = iota

	// Microseconds uses an 8-byte prefix holding microseconds since the
	// Unix epoch.
	Microseconds
)

// TimestampLen returns the width in bytes of the timestamp prefix,
// which is also the minimum byte count for ordered identifiers at
// this precision.
func (p Precision) TimestampLen() int {
	if p == Microseconds {
		return 8
	}
	return 4
}

func (p Precision) String() string {
	if p == Microseconds {
		return "microseconds"
	}
	return "seconds"
}

// EncodedLen returns the length in characters of an identifier
// generated from n bytes.
func EncodedLen(n int) int {
	return base64.RawURLEncoding.EncodedLen(n)
}

// Generator produces unique, URL-safe identifiers. The zero value is
// not usable; create instances with NewGenerator. Generators hold no
// per-call state and are safe for concurrent use.
type Generator struct {
	random    io.Reader
	now       func() time.Time
	precision Precision
}

// NewGenerator returns a Generator that draws from crypto/rand and
// stamps ordered identifiers at the given precision.
func NewGenerator(p Precision) *Generator {
	return &Generator{
		random:    rand.Reader,
		now:       time.Now,
		precision: p,
	}
}

// Precision returns the timestamp precision this Generator stamps
// ordered identifiers with.
func (g *Generator) Precision() Precision {
	return g.precision
}

// Generate produces an identifier from size cryptographically random
// bytes. The returned string is EncodedLen(size) characters of the
// URL-safe base64 alphabet. Generate fails with ErrInvalidLength if
// size is outside [MinSize, MaxSize].
func (g *Generator) Generate(size int) (string, error) {
	if size < MinSize || size > MaxSize {
		return "", fmt.Errorf("%w: %d", ErrInvalidLength, size)
	}

	raw := make([]byte, size)
	if _, err := io.ReadFull(g.random, raw); err != nil {
		return "", err
	}

	return base64.RawURLEncoding.EncodeToString(raw), nil
}

// GenerateOrdered produces an identifier whose leading bytes hold the
// current time as a big-endian timestamp and whose remaining bytes are
// cryptographically random. The minimum size is the timestamp width of
// the configured precision. GenerateOrdered fails with ErrInvalidLength
// if size is below that minimum or above MaxSize, and with
// ErrClockBeforeEpoch if the clock reads before the Unix epoch.
func (g *Generator) GenerateOrdered(size int) (string, error) {
	tsLen := g.precision.TimestampLen()
	if size < tsLen || size > MaxSize {
		return "", fmt.Errorf("%w: %d", ErrInvalidLength, size)
	}

	raw := make([]byte, size)
	switch g.precision {
	case Microseconds:
		us := g.now().UnixMicro()
		if us < 0 {
			return "", ErrClockBeforeEpoch
		}
		binary.BigEndian.PutUint64(raw[:8], uint64(us))

	default:
		s := g.now().Unix()
		if s < 0 {
			return "", ErrClockBeforeEpoch
		}
		binary.BigEndian.PutUint32(raw[:4], uint32(s))
	}

	if _, err := io.ReadFull(g.random, raw[tsLen:]); err != nil {
		return "", err
	}

	return base64.RawURLEncoding.EncodeToString(raw), nil
}

// Default returns a random identifier of DefaultSize bytes, 14
// characters once encoded. crypto/rand.Reader does not fail on
// supported platforms, so no error is returned.
func (g *Generator) Default() string {
	id, _ := g.Generate(DefaultSize)
	return id
}

// DefaultOrdered returns an ordered identifier of DefaultSize bytes,
// 14 characters once encoded.
func (g *Generator) DefaultOrdered() (string, error) {
	return g.GenerateOrdered(DefaultSize)
}

// defaultGenerator backs the package-level entry points. Second
// precision leaves 6 random bytes at the default size.
var defaultGenerator = NewGenerator(Seconds)

// New returns a random 14-character identifier.
func New() string {
	return defaultGenerator.Default()
}

// NewOrdered returns a time-ordered 14-character identifier.
func NewOrdered() (string, error) {
	return defaultGenerator.DefaultOrdered()
}

// Random returns a random identifier generated from size bytes.
func Random(size int) (string, error) {
	return defaultGenerator.Generate(size)
}

// Ordered returns a time-ordered identifier generated from size bytes.
func Ordered(size int) (string, error) {
	return defaultGenerator.GenerateOrdered(size)
}

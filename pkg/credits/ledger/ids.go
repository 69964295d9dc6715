package ledger

import "github.com/google/uuid"

// IDGenerator produces processing ids for ingestion batches. Ids are
// display-only grouping keys: they must look unique within one derivation
// but are never stored or compared across runs.
type IDGenerator interface {
	// Next returns a fresh 36-character hyphenated hex id in the
	// RFC 4122 v4 shape xxxxxxxx-xxxx-4xxx-yxxx-xxxxxxxxxxxx.
	Next() string
}

// randomIDs generates random version 4 UUIDs.
type randomIDs struct{}

// NewRandomIDs returns the default generator, backed by random v4 UUIDs.
func NewRandomIDs() IDGenerator {
	return randomIDs{}
}

// Next returns a random v4 UUID string.
func (randomIDs) Next() string {
	return uuid.NewString()
}

// idTemplate is the nibble layout shared by both generators. The fixed
// '4' is the UUID version nibble; 'y' is the variant nibble (8..b).
const idTemplate = "xxxxxxxx-xxxx-4xxx-yxxx-xxxxxxxxxxxx"

const hexDigits = "0123456789abcdef"

// Sequence is a deterministic IDGenerator for tests. Each call encodes
// the current counter into the id template, so distinct counters produce
// distinct, reproducible ids. Not safe for concurrent use.
type Sequence struct {
	counter uint64
}

// NewSequence returns a Sequence starting at zero.
func NewSequence() *Sequence {
	return &Sequence{}
}

// Next returns the id for the current counter and advances it.
func (s *Sequence) Next() string {
	n := s.counter
	s.counter++

	buf := make([]byte, 0, len(idTemplate))
	nibble := 0
	for _, c := range []byte(idTemplate) {
		switch c {
		case 'x':
			v := (n>>(4*uint(nibble%16)) + uint64(nibble)) % 16
			buf = append(buf, hexDigits[v])
			nibble++
		case 'y':
			buf = append(buf, hexDigits[8+n%4])
			nibble++
		default:
			buf = append(buf, c)
		}
	}
	return string(buf)
}

package util

import (
	"log"
	"time"
)

// Timestamp is an injectable clock. Components that stamp emissions take
// one instead of calling time.Now directly so tests control the sequence.
type Timestamp func() time.Time

// FixedTime returns a clock frozen at t.
func FixedTime(t time.Time) Timestamp {
	return func() time.Time {
		return t
	}
}

// SequencedTime returns a clock that advances one nanosecond per call,
// starting at t.
func SequencedTime(t time.Time) Timestamp {
	n := 0

	return func() time.Time {
		newTime := t.Add(time.Duration(n) * time.Nanosecond)
		n++
		return newTime
	}
}

// MustSucceed aborts the process on error. For use in mains only.
func MustSucceed(err error) {
	if err != nil {
		log.Fatal(err)
	}
}

// Must unwraps a value, aborting the process on error. For use in mains
// only.
func Must[T any](val T, err error) T {
	MustSucceed(err)
	return val
}

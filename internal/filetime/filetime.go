// Package filetime converts between Go's time.Time and the Windows FILETIME
// representation used by the source manifest (spec.md S4.4): 100-nanosecond
// ticks since 1601-01-01 UTC, serialized on the wire as two u32 halves
// {high, low}. Grounded on original_source/genome/time.cpp's FILETIME
// round trip, reimplemented against the standard library time package
// instead of the original's custom time type.
package filetime

import "time"

const (
	ticksPerSecond      = 10_000_000
	epochDeltaInSeconds = 11_644_473_600 // seconds between 1601-01-01 and 1970-01-01
)

// ToFileTime converts t to a 64-bit Windows FILETIME tick count.
func ToFileTime(t time.Time) uint64 {
	secs := t.Unix() + epochDeltaInSeconds
	ticks := secs*ticksPerSecond + int64(t.Nanosecond())/100

	return uint64(ticks)
}

// FromFileTime converts a 64-bit Windows FILETIME tick count back to a
// time.Time in UTC.
func FromFileTime(ticks uint64) time.Time {
	secs := int64(ticks/ticksPerSecond) - epochDeltaInSeconds
	nanos := int64(ticks%ticksPerSecond) * 100

	return time.Unix(secs, nanos).UTC()
}

// SplitU32 splits a 64-bit FILETIME tick count into its {high, low} u32
// halves, matching the wire order documented in spec.md S4.4.
func SplitU32(ticks uint64) (high, low uint32) {
	return uint32(ticks >> 32), uint32(ticks)
}

// JoinU32 reassembles a 64-bit FILETIME tick count from its {high, low}
// u32 halves.
func JoinU32(high, low uint32) uint64 {
	return uint64(high)<<32 | uint64(low)
}

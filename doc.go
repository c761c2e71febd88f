// Package joyquat encodes and decodes the compressed quaternion triplets
// reported by the motion sensor.
//
// A frame is 18 bytes (144 bits) carrying three successive unit quaternions
// (first, mid and last) and a timestamp. Fields are packed least significant
// bit first (see package bitfield).
//
// Frame
//
//  | Bits      | Field                                                    |
//  |-----------|----------------------------------------------------------|
//  | 0..2      | Mode                                                     |
//  | 2..N      | Mode payload (123 or 125 bits)                           |
//  | N..N+11   | Timestamp start                                          |
//  | N+11..+6  | Timestamp count                                          |
//  | remaining | Zero on encode, ignored on decode                        |
//  |-----------|----------------------------------------------------------|
//
//  | Mode | Name                   | Payload |
//  |------|------------------------|---------|
//  | 0    | Individual             | 123     |
//  | 1    | FirstLastDeltaMid      | 123     |
//  | 2    | LastDeltaFirstDeltaMid | 125     |
//  | 3    | Unknown (invalid)      |         |
//  |------|------------------------|---------|
//
// Component Elision
//
// Every sample drops its largest magnitude component. The remaining three
// are stored in cyclic order starting just after the dropped index and are
// negated when the dropped component was negative, so the dropped component
// is always recovered as sqrt(1 - a^2 - b^2 - c^2) >= 0. The retained
// components are then bounded by 1/sqrt(2).
//
// Payloads
//
// Individual elides each sample on its own and stores it at 12 fractional
// bits:
//
//  | Bits | Field                    |
//  |------|--------------------------|
//  | 2    | missing index            | x3 samples
//  | 13x3 | components (Q12)         |
//  |------|--------------------------|
//
// FirstLastDeltaMid shares the missing index of the middle sample and stores
// the middle sample as its difference from the rounded average of the first
// and last:
//
//  | Bits | Field                                          |
//  |------|------------------------------------------------|
//  | 1    | additional shift (mid delta stored >> 2)       |
//  | 2    | missing index                                  |
//  | 16x3 | first (Q15)                                    |
//  | 16x3 | last (Q15)                                     |
//  | 8x3  | mid - avg(first, last) (Q15)                   |
//  |------|------------------------------------------------|
//
// LastDeltaFirstDeltaMid shares the missing index and stores the first
// sample as a difference from the last:
//
//  | Bits | Field                                          |
//  |------|------------------------------------------------|
//  | 2    | missing index                                  |
//  | 21x3 | last (Q20)                                     |
//  | 13x3 | last - first (Q20)                             |
//  | 7x3  | mid - avg(first, last) (Q20)                   |
//  |------|------------------------------------------------|
//
// Compress tries LastDeltaFirstDeltaMid, then FirstLastDeltaMid when the
// first and last samples are dominated by the shared axis, and falls back to
// Individual which always fits.
//
// Debug Checks
//
// Building with the joyquatdebug tag makes every payload constructor verify
// that its samples survive a pack and unpack before returning.
package joyquat

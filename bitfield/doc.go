// Package bitfield reads and writes fixed width unsigned fields packed into a
// byte slice.
//
// Fields are laid out least significant bit first. Stream bit n lives in byte
// n/8 at bit position n%8, and the first bit of a field is its least
// significant bit. Fields that straddle bytes are therefore little-endian.
//
// Writing a 2 bit field of 0b10 followed by a 7 bit field of 0b000_0011:
//
//  | 0 | 1 | 2 | 3 | 4 | 5 | 6 | 7 |   | 0 | 1 | 2 | 3 | 4 | 5 | 6 | 7 |
//  |-------|-----------------------|---|---|---------------------------|
//  | 0 . 1 | 1 . 1 . 0 . 0 . 0 . 0 |   | 0 |                           |
//  |-------|-----------------------|---|---|---------------------------|
//  | byte 0 = 0b0000_1110              | byte 1 = 0b0000_0000          |
//
// Writer and Reader keep the first error they encounter. Every later call is
// a no-op and Err reports that first error.
package bitfield

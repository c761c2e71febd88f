// Package fixed provides signed binary fixed point numbers stored in a 32 bit
// register.
//
// The equation for a fixed point number is:
//
//  number = raw * 2 ^ -frac
//
// Where raw is the two's complement register value and frac is the number of
// fractional bits selected by the precision tag. For example with Q30:
//
//  0.5 = 536870912 * 2^-30
//
// Precisions
//
//  | Tag | Integer Bits | Fractional Bits | Range              |
//  |-----|--------------|-----------------|--------------------|
//  | Q30 | 2            | 30              | [-2, 2)            |
//  | Q20 | 12           | 20              | [-2048, 2048)      |
//  | Q15 | 17           | 15              | [-65536, 65536)    |
//  | Q12 | 20           | 12              | [-524288, 524288)  |
//  |-----|--------------|-----------------|--------------------|
//
// Fields
//
// Values are stored on the wire in fields narrower than the register. Embed
// keeps the low W bits of the register and Extract sign extends a W bit field
// back into the register. Neither rounds: the caller rounds first (see Round)
// and checks the range with FitsWithin.
//
// Storing -0.25 at Q12 in a 13 bit field:
//
//  raw   = -1024 = 0b1111_1111_1111_1111_1111_1100_0000_0000
//  field =         0b                   1_1100_0000_0000
//
//  | 0 | 1 | 2 | 3 | 4 | 5 | 6 | 7 | 8 | 9 | A | B | C |
//  |-------------------------------|-------------------|
//  | 0 . 0 . 0 . 0 . 0 . 0 . 0 . 0 . 0 . 0 | 1 . 1 . 1 | Bits are listed LSB first.
//  |-------------------------------|-------------------|
//
// Rounding
//
// Round narrows to a lower precision rounding half away from zero: it adds
// the sign of the value times half of the target unit and then truncates with
// an arithmetic shift. Avg rounds the same way before halving.
package fixed

// SPDX-License-Identifier: MIT

// Package classify labels passwords by a fixed, ordered rule table.
//
// A password is reduced to two numbers: its length in runes and the number of
// character classes it uses (ASCII letter, ASCII digit, anything else). The
// first matching rule wins:
//
//	length <  5 and types == 1 → "very weak"
//	length <= 5 and types == 1 → "weak"
//	length <= 6 and types == 2 → "fair"
//	length <= 7 and types == 3 → "good"
//	length >  8 and types == 3 → "very good"
//	otherwise                  → "unclassified"
//
// Note the hole at exactly 8 runes with 3 types: neither "good" (≤7) nor
// "very good" (>8) applies, so such passwords are "unclassified". The table is
// kept as is; callers must not assume every 3-type password gets a grade.
//
// Estimate is a separate, informational zxcvbn score. It never influences the
// label.
package classify

// SPDX-License-Identifier: MIT

package classify

import (
	"strings"
	"unicode/utf8"
)

// Label is a password strength grade.
type Label string

// Labels produced by Classify, weakest first.
const (
	VeryWeak     Label = "very weak"
	Weak         Label = "weak"
	Fair         Label = "fair"
	Good         Label = "good"
	VeryGood     Label = "very good"
	Unclassified Label = "unclassified"
)

// ProcessingError labels rows that could not be classified at all
// (e.g. a CSV line without a password column). Classify never returns it.
const ProcessingError Label = "processing error"

// Labels returns every label Classify can produce, weakest first.
func Labels() []Label {
	return []Label{VeryWeak, Weak, Fair, Good, VeryGood, Unclassified}
}

// Features are the inputs of the rule table.
type Features struct {
	Length    int  // length in runes
	HasLetter bool // [a-zA-Z]
	HasDigit  bool // [0-9]
	HasOther  bool // any rune outside [a-zA-Z0-9]
}

// Types counts how many character classes are present (0..3).
func (f Features) Types() int {
	n := 0
	for _, b := range []bool{f.HasLetter, f.HasDigit, f.HasOther} {
		if b {
			n++
		}
	}

	return n
}

// Analyze extracts the rule-table features of password.
func Analyze(password string) Features {
	f := Features{Length: utf8.RuneCountInString(password)}
	for _, r := range password {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
			f.HasLetter = true
		case r >= '0' && r <= '9':
			f.HasDigit = true
		default:
			f.HasOther = true
		}
	}

	return f
}

// rule is one row of the table; the first matching rule wins.
type rule struct {
	match func(length, types int) bool
	label Label
}

var rules = []rule{
	{func(l, t int) bool { return l < 5 && t == 1 }, VeryWeak},
	{func(l, t int) bool { return l <= 5 && t == 1 }, Weak},
	{func(l, t int) bool { return l <= 6 && t == 2 }, Fair},
	{func(l, t int) bool { return l <= 7 && t == 3 }, Good},
	{func(l, t int) bool { return l > 8 && t == 3 }, VeryGood},
}

// Classify returns the strength label of password.
func Classify(password string) Label {
	return ClassifyFeatures(Analyze(password))
}

// ClassifyFeatures applies the rule table to already extracted features.
func ClassifyFeatures(f Features) Label {
	types := f.Types()
	for _, r := range rules {
		if r.match(f.Length, types) {
			return r.label
		}
	}

	return Unclassified
}

// Strong reports whether l passes the "good or better" filter. Labels read
// back from a file match regardless of case.
func Strong(l Label) bool {
	return strings.EqualFold(string(l), string(Good)) || strings.EqualFold(string(l), string(VeryGood))
}

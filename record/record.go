// SPDX-License-Identifier: MIT

// Package record defines the row shapes that flow between pipeline stages.
//
// Each stage appends or rewrites one field, so each stage has its own type:
//
//	Raw        id, password, length, date (yyyy-mm-dd HH:MM:SS)
//	Classified Raw + class label
//	Formatted  Classified with the date rewritten as dd/mm/yyyy
//
// All fields are strings exactly as read from or written to CSV. Numeric and
// date parsing happens where a value is consumed (see package sorting), not
// here.
package record

import "github.com/katalvlaran/pwbench/classify"

// Column positions shared by every stage.
const (
	ColID = iota
	ColPassword
	ColLength
	ColDate
	ColClass
)

// MinRawColumns is the smallest row the classify stage can label:
// id, password and length.
const MinRawColumns = ColLength + 1

// Raw is a row of the input password list.
type Raw struct {
	ID       string
	Password string
	Length   string
	Date     string
}

// RawFromFields builds a Raw from a CSV row. Missing trailing fields stay empty.
func RawFromFields(fields []string) Raw {
	at := func(i int) string {
		if i < len(fields) {
			return fields[i]
		}

		return ""
	}

	return Raw{ID: at(ColID), Password: at(ColPassword), Length: at(ColLength), Date: at(ColDate)}
}

// Fields returns the CSV representation.
func (r Raw) Fields() []string {
	return []string{r.ID, r.Password, r.Length, r.Date}
}

// Classified is a Raw row with its strength label.
type Classified struct {
	Raw
	Class classify.Label
}

// ClassifiedFromFields builds a Classified from a CSV row of at least five columns.
func ClassifiedFromFields(fields []string) Classified {
	c := Classified{Raw: RawFromFields(fields)}
	if ColClass < len(fields) {
		c.Class = classify.Label(fields[ColClass])
	}

	return c
}

// Fields returns the CSV representation.
func (c Classified) Fields() []string {
	return append(c.Raw.Fields(), string(c.Class))
}

// Formatted is a Classified row whose Date is in dd/mm/yyyy form.
// It is the element type of every sort run.
type Formatted struct {
	Classified
}

// FormattedFromFields builds a Formatted from a CSV row of the format stage.
func FormattedFromFields(fields []string) Formatted {
	return Formatted{Classified: ClassifiedFromFields(fields)}
}

// LengthField returns the raw length column.
func (f Formatted) LengthField() string { return f.Length }

// DateField returns the dd/mm/yyyy date column.
func (f Formatted) DateField() string { return f.Date }

// Clone returns an independent copy. All fields are immutable strings, so a
// value copy shares nothing mutable with f.
func (f Formatted) Clone() Formatted { return f }

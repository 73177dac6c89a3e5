// SPDX-License-Identifier: MIT

package pipeline

import (
	"errors"
	"fmt"
	"os"
)

// Default file names of each stage.
const (
	InputFile      = "passwords.csv"
	ClassifiedFile = "password_classifier.csv"
	FormattedFile  = "passwords_formated_data.csv"
	StrongFile     = "passwords_classifier.csv"
)

// ClassifyFile runs Classify from the file at in to the file at out.
func (p *Pipeline) ClassifyFile(in, out string) (res *ClassifyResult, err error) {
	src, err := os.Open(in)
	if err != nil {
		return nil, fmt.Errorf("pipeline: %w", err)
	}
	defer src.Close()

	dst, err := os.Create(out)
	if err != nil {
		return nil, fmt.Errorf("pipeline: %w", err)
	}
	defer closeInto(dst, &err)

	return p.Classify(src, dst)
}

// FormatFile runs Format from the file at in to the files at formatted and strong.
func (p *Pipeline) FormatFile(in, formatted, strong string) (res *FormatResult, err error) {
	src, err := os.Open(in)
	if err != nil {
		return nil, fmt.Errorf("pipeline: %w", err)
	}
	defer src.Close()

	all, err := os.Create(formatted)
	if err != nil {
		return nil, fmt.Errorf("pipeline: %w", err)
	}
	defer closeInto(all, &err)

	good, err := os.Create(strong)
	if err != nil {
		return nil, fmt.Errorf("pipeline: %w", err)
	}
	defer closeInto(good, &err)

	return p.Format(src, all, good)
}

// SortFile runs Sort from the file at in, writing every run into dir.
func (p *Pipeline) SortFile(in, dir string) ([]Result, error) {
	src, err := os.Open(in)
	if err != nil {
		return nil, fmt.Errorf("pipeline: %w", err)
	}
	defer src.Close()

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("pipeline: %w", err)
	}

	return p.Sort(src, DirSink(dir))
}

func closeInto(f *os.File, err *error) {
	if cerr := f.Close(); cerr != nil {
		*err = errors.Join(*err, fmt.Errorf("pipeline: %w", cerr))
	}
}

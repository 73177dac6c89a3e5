// SPDX-License-Identifier: MIT

package sorting_test

import (
	"fmt"
	"math/rand"
	"strconv"
	"testing"

	"github.com/katalvlaran/pwbench/container"
	"github.com/katalvlaran/pwbench/record"
)

// Fixture sizes (avoid magic numbers in test bodies).
const (
	NSmall  = 9
	NRandom = 300
	Seed    = 42
)

// row builds a Formatted record with the given id, length and date.
func row(id int, length, date string) record.Formatted {
	return record.FormattedFromFields([]string{strconv.Itoa(id), "pw" + strconv.Itoa(id), length, date, "fair"})
}

// randomRows returns n rows with IDs 0..n-1 in order and random keys drawn
// from small ranges so that ties are frequent.
func randomRows(n int, seed int64) *container.Sequence[record.Formatted] {
	rng := rand.New(rand.NewSource(seed))
	s := container.NewSequence[record.Formatted]()
	for i := 0; i < n; i++ {
		date := fmt.Sprintf("%02d/%02d/%d", 1+rng.Intn(28), 1+rng.Intn(12), 2018+rng.Intn(6))
		s.Append(row(i, strconv.Itoa(1+rng.Intn(15)), date))
	}

	return s
}

// ids lists record IDs in sequence order.
func ids(s *container.Sequence[record.Formatted]) []string {
	out := make([]string, 0, s.Len())
	for _, r := range s.All() {
		out = append(out, r.ID)
	}

	return out
}

// pairs enumerates every compatible (algorithm, criterion) pair.
func pairs(t *testing.T) [][2]string {
	t.Helper()
	var out [][2]string
	for _, c := range sortingCriteria {
		for _, a := range sortingAlgorithms {
			if compatible(a, c) {
				out = append(out, [2]string{a, c})
			}
		}
	}

	return out
}

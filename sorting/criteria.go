// SPDX-License-Identifier: MIT

package sorting

import (
	"cmp"
	"fmt"
	"strconv"
	"strings"
)

// lengthOf parses the length field.
func lengthOf[R Record[R]](r R) (int, error) {
	s := r.LengthField()
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: length %q is not an integer", ErrMalformedField, s)
	}

	return n, nil
}

// dateParts splits a dd/mm/yyyy date into its three components.
func dateParts(s string) (day, month, year string, err error) {
	parts := strings.Split(s, "/")
	if len(parts) != 3 {
		return "", "", "", fmt.Errorf("%w: date %q is not day/month/year", ErrMalformedField, s)
	}

	return parts[0], parts[1], parts[2], nil
}

// monthOf parses the month component of the date field.
func monthOf[R Record[R]](r R) (int, error) {
	_, month, _, err := dateParts(r.DateField())
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(month)
	if err != nil {
		return 0, fmt.Errorf("%w: month %q is not an integer", ErrMalformedField, month)
	}

	return n, nil
}

// fullDateOf rebuilds yyyy+mm+dd. Components are assumed zero padded by the
// formatter, which makes string order equal calendar order.
func fullDateOf[R Record[R]](r R) (string, error) {
	day, month, year, err := dateParts(r.DateField())
	if err != nil {
		return "", err
	}

	return year + month + day, nil
}

// comparator returns the three-way comparison for crit.
func comparator[R Record[R]](crit Criterion) func(a, b R) (int, error) {
	switch crit {
	case ByLength:
		return keyed(lengthOf[R])
	case ByMonth:
		return keyed(monthOf[R])
	default:
		return keyed(fullDateOf[R])
	}
}

// keyed lifts a key extractor into a comparison.
func keyed[R any, K cmp.Ordered](key func(R) (K, error)) func(a, b R) (int, error) {
	return func(a, b R) (int, error) {
		ka, err := key(a)
		if err != nil {
			return 0, err
		}
		kb, err := key(b)
		if err != nil {
			return 0, err
		}

		return cmp.Compare(ka, kb), nil
	}
}

// Compare orders a and b under crit: negative when a sorts first, zero when
// they tie, positive otherwise.
func Compare[R Record[R]](crit Criterion, a, b R) (int, error) {
	if !crit.valid() {
		return 0, fmt.Errorf("%w: unknown criterion %q", ErrInvalidArgument, crit)
	}

	return comparator[R](crit)(a, b)
}

// SPDX-License-Identifier: MIT

package classify

import "github.com/nbutton23/zxcvbn-go"

// Estimate is the zxcvbn view of a password.
type Estimate struct {
	Score   int     // 0 (guessable) .. 4 (very unguessable)
	Entropy float64 // bits
}

// EstimateStrength runs zxcvbn over password with no user-supplied dictionary.
func EstimateStrength(password string) Estimate {
	m := zxcvbn.PasswordStrength(password, nil)

	return Estimate{Score: m.Score, Entropy: m.Entropy}
}

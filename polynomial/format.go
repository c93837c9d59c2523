// SPDX-License-Identifier: MIT

package polynomial

import (
	"math"
	"strconv"
	"strings"
)

// String renders p in canonical form, lowest degree first:
//
//	[1, 2, 1]   → "1.0 + 2.0*X + X^2"
//	[-1, -1]    → "-1.0 - X"
//	[0, 0]      → "0"
//
// Rules:
//   - zero coefficients are skipped;
//   - degree 0 prints the signed coefficient with one decimal;
//   - higher degrees print a "+ " or "- " sign token, then "X" / "X^d" when
//     |c| == 1, or "|c|*X" / "|c|*X^d" with |c| at one decimal;
//   - terms are joined by a single space and a leading "+" is stripped;
//   - when no term survives the result is "0".
//
// Complexity: O(n).
func (p Polynomial) String() string {
	terms := make([]string, 0, len(p.coefs))
	for deg, c := range p.coefs {
		if c == 0 {
			continue
		}
		terms = append(terms, formatTerm(deg, c))
	}
	if len(terms) == 0 {
		return "0"
	}

	res := strings.Join(terms, " ")
	if strings.HasPrefix(res, "+") {
		res = strings.TrimLeft(res[1:], " ")
	}

	return res
}

// formatTerm renders a single non-zero term c·X^deg.
func formatTerm(deg int, c float64) string {
	if deg == 0 {
		return formatCoef(c)
	}

	var sb strings.Builder
	sb.WriteString(signToken(c))
	abs := math.Abs(c)
	if abs != 1 {
		sb.WriteString(formatCoef(abs))
		sb.WriteByte('*')
	}
	sb.WriteByte('X')
	if deg > 1 {
		sb.WriteByte('^')
		sb.WriteString(strconv.Itoa(deg))
	}

	return sb.String()
}

// formatCoef prints v with exactly one decimal place.
func formatCoef(v float64) string {
	return strconv.FormatFloat(v, 'f', 1, 64)
}

// signToken is "+ " for c >= 0 and "- " otherwise.
func signToken(c float64) string {
	if c >= 0 {
		return "+ "
	}

	return "- "
}

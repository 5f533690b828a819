package extract

import (
	"errors"
	"math"
	"strconv"
)

var kanjiDigits = map[rune]int{
	'一': 1, '二': 2, '三': 3, '四': 4, '五': 5,
	'六': 6, '七': 7, '八': 8, '九': 9, '十': 10,
}

// Normalize converts a token to a head count.
//
// An all-digit token is read as a decimal number. Anything else is the sum of
// its kanji digit values, with unknown characters counting as zero. The sum is
// not positional: "二十" gives 12, not 20.
func Normalize(token string) int {
	if isDigits(token) {
		n, err := strconv.ParseInt(token, 10, 0)
		if err == nil {
			return int(n)
		}
		if errors.Is(err, strconv.ErrRange) {
			return math.MaxInt
		}
	}

	sum := 0
	for _, r := range token {
		sum += kanjiDigits[r]
	}
	return sum
}

// NormalizeAll normalizes tokens in order
func NormalizeAll(tokens []string) []int {
	values := make([]int, len(tokens))
	for i, t := range tokens {
		values[i] = Normalize(t)
	}
	return values
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

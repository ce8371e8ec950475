package entity

import (
	"sort"
	"strconv"
	"strings"
)

// ParseBarracaNumber extracts the first run of digits from a barraca number
// ("Posto 10B" -> 10). The second result is false when the number is missing
// or carries no digits; such barracas sort after every numbered one.
func ParseBarracaNumber(num string) (int, bool) {
	start := -1
	for i, r := range num {
		if r >= '0' && r <= '9' {
			start = i

			break
		}
	}
	if start < 0 {
		return 0, false
	}

	end := start
	for end < len(num) && num[end] >= '0' && num[end] <= '9' {
		end++
	}

	n, err := strconv.Atoi(num[start:end])
	if err != nil {
		return 0, false
	}

	return n, true
}

// CompareBarracas is the uniform list ordering: open first, then partnered,
// then rating descending, then parsed barraca number ascending, with a stable
// byte-wise name tie-break.
func CompareBarracas(a, b *Barraca) int {
	if a.IsOpen != b.IsOpen {
		if a.IsOpen {
			return -1
		}

		return 1
	}

	if a.Partnered != b.Partnered {
		if a.Partnered {
			return -1
		}

		return 1
	}

	if a.Rating != b.Rating {
		return b.Rating - a.Rating
	}

	aNum, aOK := ParseBarracaNumber(a.BarracaNumber)
	bNum, bOK := ParseBarracaNumber(b.BarracaNumber)
	switch {
	case aOK && bOK && aNum != bNum:
		return aNum - bNum
	case aOK && !bOK:
		return -1
	case !aOK && bOK:
		return 1
	}

	return strings.Compare(a.Name, b.Name)
}

// SortBarracas orders the slice in place with CompareBarracas.
func SortBarracas(barracas []*Barraca) {
	sort.SliceStable(barracas, func(i, j int) bool {
		return CompareBarracas(barracas[i], barracas[j]) < 0
	})
}

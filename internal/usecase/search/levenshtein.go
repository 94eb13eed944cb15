package search

// levenshtein returns the minimum number of single-character insertions,
// deletions, and substitutions to transform a into b. Operates on runes so
// multi-byte characters count as one edit.
func levenshtein(a, b string) int {
	ra := []rune(a)
	rb := []rune(b)
	if len(ra) == 0 {
		return len(rb)
	}
	if len(rb) == 0 {
		return len(ra)
	}

	prev := make([]int, len(rb)+1)
	curr := make([]int, len(rb)+1)
	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= len(ra); i++ {
		curr[0] = i
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[len(rb)]
}

// similarity maps edit distance into [0,1]: 1 − dist/max(len(a), len(b)).
// Two empty strings are fully similar by convention.
func similarity(a, b string) float64 {
	la := len([]rune(a))
	lb := len([]rune(b))
	longer := max(la, lb)
	if longer == 0 {
		return 1.0
	}
	return 1.0 - float64(levenshtein(a, b))/float64(longer)
}

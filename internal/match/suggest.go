package match

// Closest returns the candidate nearest to name, for "did you mean" hints.
// A candidate equal to name after normalization always wins; otherwise the
// smallest edit distance wins as long as it is at most a third of the
// length of name (and at least 1). Ties go to the earlier candidate.
func Closest(name string, candidates []string) (string, bool) {
	norm := NormalizeIdent(name)
	limit := max(1, len([]rune(norm))/3)

	best, bestDist := "", limit+1

	for _, c := range candidates {
		if c == name {
			continue
		}

		d := Levenshtein(norm, NormalizeIdent(c))
		if d < bestDist {
			best, bestDist = c, d
		}
	}

	return best, best != ""
}

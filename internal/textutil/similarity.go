package textutil

// Similarity normalizes both strings and returns their Ratcliff/Obershelp
// ratio in [0, 1]. Two strings that normalize to the same text score 1.0;
// two empty normalized strings are considered identical and also score 1.0.
func Similarity(a, b string) float64 {
	return Ratio(Normalize(a), Normalize(b))
}

// Ratio computes the Ratcliff/Obershelp sequence ratio between two strings:
// twice the total length of matching blocks divided by the combined length.
func Ratio(a, b string) float64 {
	ar := []rune(a)
	br := []rune(b)
	if len(ar) == 0 && len(br) == 0 {
		return 1.0
	}
	if len(ar) == 0 || len(br) == 0 {
		return 0.0
	}
	matched := matchingTotal(ar, br)
	return 2 * float64(matched) / float64(len(ar)+len(br))
}

// matchingTotal sums matching-block lengths: find the longest common block,
// then recurse into the unmatched regions on either side of it.
func matchingTotal(a, b []rune) int {
	ai, bi, size := longestCommonBlock(a, b)
	if size == 0 {
		return 0
	}
	total := size
	total += matchingTotal(a[:ai], b[:bi])
	total += matchingTotal(a[ai+size:], b[bi+size:])
	return total
}

// longestCommonBlock locates the earliest longest common substring of a and b,
// returning its start offsets and length.
func longestCommonBlock(a, b []rune) (ai, bi, size int) {
	prev := make([]int, len(b)+1)
	cur := make([]int, len(b)+1)
	for i := 1; i <= len(a); i++ {
		for j := 1; j <= len(b); j++ {
			if a[i-1] == b[j-1] {
				cur[j] = prev[j-1] + 1
				if cur[j] > size {
					size = cur[j]
					ai = i - size
					bi = j - size
				}
			} else {
				cur[j] = 0
			}
		}
		prev, cur = cur, prev
		clear(cur)
	}
	return ai, bi, size
}

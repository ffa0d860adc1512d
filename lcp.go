package lmfcs

// Kasai's algorithm for building the LCP array in O(n) time.
//
// lcp[i] is the length of the longest common prefix of the suffixes at
// suffixArray[i-1] and suffixArray[i]; lcp[0] is always 0.
func BuildLCPArray(suffixArray []int, text []byte) []int {
	rank := make([]int, len(suffixArray))
	for i := range suffixArray {
		rank[suffixArray[i]] = i
	}

	lcp := make([]int, len(suffixArray))
	h := 0
	for i := range suffixArray {
		if rank[i] == 0 {
			h = 0
			continue
		}
		j := suffixArray[rank[i]-1]
		for i+h < len(text) && j+h < len(text) && text[i+h] == text[j+h] {
			h++
		}
		lcp[rank[i]] = h
		if h > 0 {
			h--
		}
	}

	return lcp
}

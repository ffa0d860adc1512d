package lmfcs

// BuildSuffixArray returns the starting offsets of all suffixes of text in
// lexicographic order. Bytes are compared as unsigned values, so sentinel
// bytes below the residue range sort first.
//
// Construction is prefix doubling: every round sorts suffixes by the pair
// (rank of the first k bytes, rank of the next k bytes) with two counting
// sorts, so the whole build is O(n log n).
func BuildSuffixArray(text []byte) []int {
	n := len(text)
	sa := make([]int, n)
	if n == 0 {
		return sa
	}

	// Ranks start at 1; 0 stands for "past the end of the text".
	rank := make([]int, n)
	order := make([]int, n)
	for i, c := range text {
		rank[i] = int(c) + 1
		order[i] = i
	}
	cnt := make([]int, max(257, n+1))
	countingSortByRank(order, sa, rank, 256, cnt)

	next := make([]int, n)
	for k := 1; ; k <<= 1 {
		maxRank := rank[sa[n-1]]

		// Order by the second key: suffixes too short to have one come
		// first, the rest follow the current order of their k-shifted suffix.
		p := 0
		for i := n - k; i < n; i++ {
			if i >= 0 {
				order[p] = i
				p++
			}
		}
		for _, s := range sa {
			if s >= k {
				order[p] = s - k
				p++
			}
		}
		countingSortByRank(order, sa, rank, maxRank, cnt)

		second := func(i int) int {
			if i+k < n {
				return rank[i+k]
			}
			return 0
		}
		next[sa[0]] = 1
		for i := 1; i < n; i++ {
			a, b := sa[i-1], sa[i]
			next[b] = next[a]
			if rank[a] != rank[b] || second(a) != second(b) {
				next[b]++
			}
		}
		rank, next = next, rank
		if rank[sa[n-1]] == n || k >= n {
			break
		}
	}
	return sa
}

// countingSortByRank stably writes the indexes of order into out, sorted by
// rank. Ranks must be in [0, maxRank].
func countingSortByRank(order, out, rank []int, maxRank int, cnt []int) {
	cnt = cnt[:maxRank+1]
	clear(cnt)
	for _, i := range order {
		cnt[rank[i]]++
	}
	sum := 0
	for r, c := range cnt {
		cnt[r] = sum
		sum += c
	}
	for _, i := range order {
		out[cnt[rank[i]]] = i
		cnt[rank[i]]++
	}
}

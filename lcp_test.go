package lmfcs

import (
	"math/rand"
	"slices"
	"testing"
)

func naiveLCP(sa []int, text []byte) []int {
	lcp := make([]int, len(sa))
	for i := 1; i < len(sa); i++ {
		a, b := text[sa[i-1]:], text[sa[i]:]
		h := 0
		for h < len(a) && h < len(b) && a[h] == b[h] {
			h++
		}
		lcp[i] = h
	}
	return lcp
}

func TestBuildLCPArray(t *testing.T) {
	text := []byte("ACGTACGT\x01TACGTA\x00")
	sa := BuildSuffixArray(text)
	want := []int{0, 0, 0, 1, 4, 5, 0, 3, 4, 0, 2, 3, 0, 1, 1, 5}
	if got := BuildLCPArray(sa, text); !slices.Equal(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestBuildLCPArrayEdgeCases(t *testing.T) {
	for _, tc := range []string{"", "A", "AAAA", "banana", "abracadabra"} {
		t.Run(tc, func(t *testing.T) {
			text := []byte(tc)
			sa := BuildSuffixArray(text)
			got := BuildLCPArray(sa, text)
			if want := naiveLCP(sa, text); !slices.Equal(got, want) {
				t.Errorf("lcp of %q: got %v, want %v", tc, got, want)
			}
		})
	}
}

func TestBuildLCPArrayRandom(t *testing.T) {
	r := rand.New(rand.NewSource(2))
	for run := 0; run < 50; run++ {
		text := randomDNA(r, 1+r.Intn(400))
		sa := BuildSuffixArray(text)
		if got, want := BuildLCPArray(sa, text), naiveLCP(sa, text); !slices.Equal(got, want) {
			t.Fatalf("run %d: lcp mismatch for %q", run, text)
		}
	}
}

func FuzzBuildLCPArray(f *testing.F) {
	f.Add([]byte("mississippi"))
	f.Add([]byte("AAAAAAA\x01AAA\x00"))

	f.Fuzz(func(t *testing.T, text []byte) {
		if len(text) > 2000 {
			return
		}
		sa := BuildSuffixArray(text)
		got := BuildLCPArray(sa, text)
		if want := naiveLCP(sa, text); !slices.Equal(got, want) {
			t.Errorf("lcp mismatch for %q", text)
		}
		for i := 1; i < len(sa); i++ {
			if got[i] > min(len(text)-sa[i-1], len(text)-sa[i]) {
				t.Errorf("lcp[%d] = %d exceeds suffix length", i, got[i])
			}
		}
	})
}

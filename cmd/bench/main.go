package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"runtime"
	"runtime/pprof"
	"time"

	"github.com/viniciusth/lmfcs"
)

type variant struct {
	name   string
	config func(*lmfcs.Finder) *lmfcs.Finder
}

var variants = map[string]variant{
	"scan":           {name: "scan", config: func(f *lmfcs.Finder) *lmfcs.Finder { return f }},
	"index":          {name: "index", config: func(f *lmfcs.Finder) *lmfcs.Finder { return f.Counting(lmfcs.SuffixIndex) }},
	"balanced":       {name: "balanced", config: func(f *lmfcs.Finder) *lmfcs.Finder { return f.Rank(lmfcs.Balanced) }},
	"index_balanced": {name: "index_balanced", config: func(f *lmfcs.Finder) *lmfcs.Finder { return f.Counting(lmfcs.SuffixIndex).Rank(lmfcs.Balanced) }},
}

type densityType string

const (
	densityLow  densityType = "low"
	densityHigh densityType = "high"
)

type memMonitor struct {
	maxAlloc uint64
	stop     chan struct{}
}

func newMemMonitor() *memMonitor {
	mm := &memMonitor{stop: make(chan struct{})}
	go func() {
		for {
			var m runtime.MemStats
			runtime.ReadMemStats(&m)
			if m.Alloc > mm.maxAlloc {
				mm.maxAlloc = m.Alloc
			}
			select {
			case <-mm.stop:
				return
			default:
				time.Sleep(10 * time.Millisecond)
			}
		}
	}()
	return mm
}

func (mm *memMonitor) Stop() uint64 {
	close(mm.stop)
	return mm.maxAlloc
}

func getCurrentAlloc() uint64 {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	return m.Alloc
}

func measureFind(seq1, seq2 []byte, length int, config func(*lmfcs.Finder) *lmfcs.Finder) (time.Duration, uint64, uint64, *lmfcs.Result) {
	runtime.GC()
	mm := newMemMonitor()
	start := time.Now()
	res, err := config(lmfcs.NewFinder(seq1, seq2).AtLeast(length)).Find()
	if err != nil {
		panic(err)
	}
	dur := time.Since(start)
	peak := mm.Stop()
	runtime.GC()
	alloc := getCurrentAlloc()
	return dur, peak, alloc, res
}

func measureSplit(res *lmfcs.Result, seq []byte) (time.Duration, int) {
	start := time.Now()
	frags := res.Split(seq, "bench", lmfcs.GlueFollowing)
	return time.Since(start), len(frags)
}

func randomDNA(r *rand.Rand, n int) []byte {
	const alphabet = "ACGT"
	s := make([]byte, n)
	for i := range s {
		s[i] = alphabet[r.Intn(len(alphabet))]
	}
	return s
}

// plant copies common into seq at c random offsets.
func plant(r *rand.Rand, seq, common []byte, c int) {
	for i := 0; i < c; i++ {
		copy(seq[r.Intn(len(seq)-len(common)+1):], common)
	}
}

func runBenchmark(v variant, N, M, P, L, C, runs int, density densityType) {
	for run := 0; run < runs; run++ {
		r := rand.New(rand.NewSource(int64(run)))
		seq1, seq2 := randomDNA(r, N), randomDNA(r, M)
		if density == densityHigh {
			common := randomDNA(r, P)
			plant(r, seq1, common, C)
			plant(r, seq2, common, C)
		}
		ft, fp, fa, res := measureFind(seq1, seq2, L, v.config)
		st, frags := measureSplit(res, seq1)
		best, _ := res.Best()
		fmt.Printf("%s,%d,%d,%d,%d,%d,%s,%.0f,%d,%d,%d,%d,%.0f,%d\n",
			v.name, N, M, P, L, C, density,
			float64(ft.Nanoseconds()), fp, fa,
			len(res.Candidates), len(best.Text),
			float64(st.Nanoseconds()), frags)
	}
}

func main() {
	variantName := flag.String("variant", "", "Variant to benchmark")
	n := flag.Int("n", 0, "Length of the first sequence N")
	m := flag.Int("m", 0, "Length of the second sequence M")
	p := flag.Int("p", 0, "Length of the planted common substring P")
	l := flag.Int("l", 0, "Minimum shared substring length L")
	c := flag.Int("c", 1, "Copies of the planted substring per sequence C")
	runs := flag.Int("runs", 3, "Number of runs for averaging")
	d := flag.String("d", "low", "Density: low or high")
	cpuprofile := flag.String("cpuprofile", "", "Write CPU profile to file")
	flag.Parse()

	if *cpuprofile != "" {
		f, err := os.Create(*cpuprofile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "could not create CPU profile: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			fmt.Fprintf(os.Stderr, "could not start CPU profile: %v\n", err)
			os.Exit(1)
		}
		defer pprof.StopCPUProfile()
	}

	if *variantName == "" || *n <= 0 || *m <= 0 || *p <= 0 || *l <= 0 || *c <= 0 || *p > min(*n, *m) {
		fmt.Println("Usage: go run main.go -variant=<variant> -n=<N> -m=<M> -p=<P> -l=<L> [-c=<C>] -d=<density> [-runs=<runs>]")
		fmt.Println("Available variants:", variants)
		os.Exit(1)
	}

	v, ok := variants[*variantName]
	if !ok {
		fmt.Println("Invalid variant:", *variantName)
		os.Exit(1)
	}

	runBenchmark(v, *n, *m, *p, *l, *c, *runs, densityType(*d))
}

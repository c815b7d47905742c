package main

import (
	"math/rand"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/joshuapare/pagevec/vec"
)

// printer formats counts and durations with locale-aware grouping, so a
// million elements reads as 1,000,000.
var printer = message.NewPrinter(language.English)

type workload struct {
	name  string
	paged func(n int) time.Duration
	slice func(n int) time.Duration
}

func report(w workload) {
	var pagedBest, sliceBest time.Duration
	for i := 0; i < runs; i++ {
		if d := w.paged(elems); i == 0 || d < pagedBest {
			pagedBest = d
		}
		if d := w.slice(elems); i == 0 || d < sliceBest {
			sliceBest = d
		}
	}
	printer.Printf("%-14s %d elems  paged=%v  slice=%v\n", w.name, elems, pagedBest, sliceBest)
}

func newVector() *vec.Vector[int64] {
	return vec.New[int64](vec.WithPageSize(pageSize))
}

var pushWorkload = workload{
	name: "push",
	paged: func(n int) time.Duration {
		v := newVector()
		start := time.Now()
		for i := 0; i < n; i++ {
			v.PushBack(int64(i))
		}
		return time.Since(start)
	},
	slice: func(n int) time.Duration {
		var s []int64
		start := time.Now()
		for i := 0; i < n; i++ {
			s = append(s, int64(i))
		}
		_ = s
		return time.Since(start)
	},
}

var accessWorkload = workload{
	name: "access",
	paged: func(n int) time.Duration {
		v := newVector()
		for i := 0; i < n; i++ {
			v.PushBack(int64(i))
		}
		idx := rand.New(rand.NewSource(1)).Perm(n)
		start := time.Now()
		var sum int64
		for _, i := range idx {
			sum += v.Get(i)
		}
		_ = sum
		return time.Since(start)
	},
	slice: func(n int) time.Duration {
		s := make([]int64, n)
		for i := range s {
			s[i] = int64(i)
		}
		idx := rand.New(rand.NewSource(1)).Perm(n)
		start := time.Now()
		var sum int64
		for _, i := range idx {
			sum += s[i]
		}
		_ = sum
		return time.Since(start)
	},
}

var iterateWorkload = workload{
	name: "iterate",
	paged: func(n int) time.Duration {
		v := newVector()
		for i := 0; i < n; i++ {
			v.PushBack(int64(i))
		}
		start := time.Now()
		var sum int64
		for x := range v.Values() {
			sum += x
		}
		_ = sum
		return time.Since(start)
	},
	slice: func(n int) time.Duration {
		s := make([]int64, n)
		for i := range s {
			s[i] = int64(i)
		}
		start := time.Now()
		var sum int64
		for _, x := range s {
			sum += x
		}
		_ = sum
		return time.Since(start)
	},
}

// churn removes random elements until half the container is gone, using the
// unordered O(1) erase for the vector and the swap-with-last idiom for the
// slice.
var churnWorkload = workload{
	name: "churn",
	paged: func(n int) time.Duration {
		v := newVector()
		for i := 0; i < n; i++ {
			v.PushBack(int64(i))
		}
		rng := rand.New(rand.NewSource(2))
		start := time.Now()
		for v.Len() > n/2 {
			v.EraseUnsorted(rng.Intn(v.Len()))
		}
		return time.Since(start)
	},
	slice: func(n int) time.Duration {
		s := make([]int64, n)
		for i := range s {
			s[i] = int64(i)
		}
		rng := rand.New(rand.NewSource(2))
		start := time.Now()
		for len(s) > n/2 {
			i := rng.Intn(len(s))
			s[i] = s[len(s)-1]
			s = s[:len(s)-1]
		}
		return time.Since(start)
	},
}

func runCmd(w workload) *cobra.Command {
	return &cobra.Command{
		Use:   w.name,
		Short: "Run the " + w.name + " workload",
		Run: func(cmd *cobra.Command, args []string) {
			report(w)
		},
	}
}

var (
	pushCmd    = runCmd(pushWorkload)
	accessCmd  = runCmd(accessWorkload)
	iterateCmd = runCmd(iterateWorkload)
	churnCmd   = runCmd(churnWorkload)

	allCmd = &cobra.Command{
		Use:   "all",
		Short: "Run every workload",
		Run: func(cmd *cobra.Command, args []string) {
			for _, w := range []workload{pushWorkload, accessWorkload, iterateWorkload, churnWorkload} {
				report(w)
			}
		},
	}
)

package stream

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func TestProperty_CollectFromListRoundTrip(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100

	properties := gopter.NewProperties(parameters)

	properties.Property("collect of from_list is the identity", prop.ForAll(
		func(xs []int) bool {
			got := Collect(FromList(xs))
			if len(got) != len(xs) {
				return false
			}
			for i := range xs {
				if got[i] != xs[i] {
					return false
				}
			}
			return true
		},
		gen.SliceOf(gen.Int()),
	))

	properties.TestingRun(t)
}

func TestProperty_MapComposition(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100

	properties := gopter.NewProperties(parameters)

	properties.Property("map f then map g equals map of g after f", prop.ForAll(
		func(xs []int) bool {
			f := func(i int) int { return i + 1 }
			g := func(i int) int { return i * 2 }

			chained := Collect(Map(Map(FromList(xs), f), g))
			fused := Collect(Map(FromList(xs), func(i int) int { return g(f(i)) }))

			if len(chained) != len(fused) {
				return false
			}
			for i := range chained {
				if chained[i] != fused[i] {
					return false
				}
			}
			return true
		},
		gen.SliceOf(gen.Int()),
	))

	properties.TestingRun(t)
}

func TestProperty_DuplicateBranchesAreIdentical(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100

	properties := gopter.NewProperties(parameters)

	properties.Property("both branches equal the input pointwise", prop.ForAll(
		func(xs []int) bool {
			a, b := Duplicate(FromList(xs))

			bDone := make(chan []int, 1)
			go func() { bDone <- Collect(b) }()
			gotA := Collect(a)
			gotB := <-bDone

			if len(gotA) != len(xs) || len(gotB) != len(xs) {
				return false
			}
			for i := range xs {
				if gotA[i] != xs[i] || gotB[i] != xs[i] {
					return false
				}
			}
			return true
		},
		gen.SliceOf(gen.Int()),
	))

	properties.TestingRun(t)
}

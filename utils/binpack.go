package utils

import (
	"fmt"
	"sort"
)

type BinItem[T any] struct {
	Weight  float64
	Payload T
}

type Bin[T any] struct {
	Weight   float64
	Payloads []T
}

/*
BinPack distributes weighted items over a fixed number of bins.

Items are visited heaviest first (equal weights keep their input order) and
each one goes to the currently lightest bin, the lowest bin index winning
ties. The input slice is not modified. Exactly nbin bins are returned, some
of them possibly empty.
*/
func BinPack[T any](nbin int, items []BinItem[T]) (bins []Bin[T], err error) {
	if nbin < 1 {
		err = fmt.Errorf("number of bins must be at least 1, have %d", nbin)
		return
	}
	for i, it := range items {
		if it.Weight < 0 {
			err = fmt.Errorf("negative weight %g for item %d", it.Weight, i)
			return
		}
	}
	sorted := make([]BinItem[T], len(items))
	copy(sorted, items)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Weight > sorted[j].Weight
	})
	bins = make([]Bin[T], nbin)
	for i := range bins {
		bins[i].Payloads = []T{}
	}
	for _, it := range sorted {
		j := argminBin(bins)
		bins[j].Weight += it.Weight
		bins[j].Payloads = append(bins[j].Payloads, it.Payload)
	}
	return
}

func argminBin[T any](bins []Bin[T]) (jmin int) {
	for j := 1; j < len(bins); j++ {
		if bins[j].Weight < bins[jmin].Weight {
			jmin = j
		}
	}
	return
}

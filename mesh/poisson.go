package mesh

import (
	"github.com/notargets/fdsmesh/types"
)

/*
GetFactor returns the prime factors of n in ascending order, led by 1:
142 gives [1 2 71], 1 gives [1].
*/
func GetFactor(n int) (factors []int, err error) {
	if n <= 0 {
		err = invalidf("cannot factor %d", n)
		return
	}
	factors = []int{1}
	for i := 2; i*i <= n; {
		if n%i == 0 {
			factors = append(factors, i)
			n /= i
		} else {
			i++
		}
	}
	if n > 1 {
		factors = append(factors, n)
	}
	return
}

/*
IsPoissonAdmissible reports whether the FFT based pressure solver accepts n
cells along an axis: n must be of the form 2^a·3^b·5^c.
*/
func IsPoissonAdmissible(n int) bool {
	if n <= 0 {
		return false
	}
	for _, p := range []int{2, 3, 5} {
		for n%p == 0 {
			n /= p
		}
	}
	return n == 1
}

// NForPoisson returns the smallest admissible cell count not below n
func (c *Config) NForPoisson(n int) (int, error) {
	if n <= 0 {
		return 0, invalidf("cell count must be positive, have %d", n)
	}
	for step := 0; step <= c.PoissonSearchCap; step++ {
		if IsPoissonAdmissible(n + step) {
			return n + step, nil
		}
	}
	return 0, invalidf("no Poisson admissible cell count within %d of %d",
		c.PoissonSearchCap, n)
}

/*
PoissonIJK rounds the y and z cell counts up to admissible values. The x
count is left as is, the solver does not transform along x.
*/
func (c *Config) PoissonIJK(ijk types.IJK) (pijk types.IJK, err error) {
	if err = ijk.Validate(); err != nil {
		err = invalidf("%v", err)
		return
	}
	pijk[types.X] = ijk[types.X]
	for _, ax := range []types.Axis{types.Y, types.Z} {
		if pijk[ax], err = c.NForPoisson(ijk[ax]); err != nil {
			return
		}
	}
	return
}

// IsPoissonIJK reports whether PoissonIJK would leave ijk unchanged
func IsPoissonIJK(ijk types.IJK) bool {
	return ijk[types.X] > 0 && IsPoissonAdmissible(ijk[types.Y]) && IsPoissonAdmissible(ijk[types.Z])
}

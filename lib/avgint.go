package lib

import "fmt"
import "math"

// AverageInt64 accumulate int64 samples and compute statistical
// mean, variance and standard-deviation on demand.
type AverageInt64 struct {
	n      int64
	minval int64
	maxval int64
	sum    int64
	sumsq  float64
	init   bool
}

// Add a sample.
func (av *AverageInt64) Add(sample int64) {
	av.n++
	av.sum += sample
	f := float64(sample)
	av.sumsq += f * f
	if av.init == false || sample < av.minval {
		av.minval, av.init = sample, true
	}
	if av.maxval < sample {
		av.maxval = sample
	}
}

// Samples return the number of samples accumulated so far.
func (av *AverageInt64) Samples() int64 {
	return av.n
}

// Min return the smallest sample.
func (av *AverageInt64) Min() int64 {
	return av.minval
}

// Max return the largest sample.
func (av *AverageInt64) Max() int64 {
	return av.maxval
}

// Sum return the running total of all samples.
func (av *AverageInt64) Sum() int64 {
	return av.sum
}

// Mean return the arithmetic mean across samples.
func (av *AverageInt64) Mean() int64 {
	if av.n == 0 {
		return 0
	}
	return int64(float64(av.sum) / float64(av.n))
}

// Variance across samples.
func (av *AverageInt64) Variance() float64 {
	if av.n == 0 {
		return 0
	}
	nf, meanf := float64(av.n), float64(av.Mean())
	return (av.sumsq / nf) - (meanf * meanf)
}

// SD return the standard-deviation across samples.
func (av *AverageInt64) SD() float64 {
	if av.n == 0 {
		return 0
	}
	return math.Sqrt(av.Variance())
}

// Clone a snapshot of this average.
func (av *AverageInt64) Clone() *AverageInt64 {
	newav := *av
	return &newav
}

// Stats return {samples, min, max, mean, variance, stddeviance}.
func (av *AverageInt64) Stats() map[string]interface{} {
	return map[string]interface{}{
		"samples":     av.Samples(),
		"min":         av.Min(),
		"max":         av.Max(),
		"mean":        av.Mean(),
		"variance":    av.Variance(),
		"stddeviance": av.SD(),
	}
}

func (av *AverageInt64) String() string {
	fmsg := "samples:%v min:%v max:%v mean:%v var:%.2f sd:%.2f"
	return fmt.Sprintf(
		fmsg, av.Samples(), av.Min(), av.Max(), av.Mean(),
		av.Variance(), av.SD())
}

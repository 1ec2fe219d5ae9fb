package sweep

import "math"

// Sample summarizes a set of observations by count, mean and population
// standard deviation.
type Sample struct {
	Mean       float64 `json:"mean"`
	Std        float64 `json:"std"`
	NumSamples int     `json:"num_samples"`
}

// NewSample wraps a single observation.
func NewSample(x float64) Sample {
	return Sample{Mean: x, NumSamples: 1}
}

// SampleOf summarizes xs. The empty set yields the zero Sample.
func SampleOf(xs []float64) Sample {
	if len(xs) == 0 {
		return Sample{}
	}
	var s, s2 float64
	for _, x := range xs {
		s += x
		s2 += x * x
	}
	n := float64(len(xs))
	mean := s / n

	return Sample{Mean: mean, Std: math.Sqrt(math.Max(s2/n-mean*mean, 0)), NumSamples: len(xs)}
}

// Combine pools two samples as if their observations were summarized
// together.
func (s Sample) Combine(o Sample) Sample {
	switch {
	case s.NumSamples == 0:
		return o
	case o.NumSamples == 0:
		return s
	}
	n1, n2 := float64(s.NumSamples), float64(o.NumSamples)
	n := n1 + n2
	mean := (n1*s.Mean + n2*o.Mean) / n
	m2 := (n1*(s.Std*s.Std+s.Mean*s.Mean) + n2*(o.Std*o.Std+o.Mean*o.Mean)) / n

	return Sample{Mean: mean, Std: math.Sqrt(math.Max(m2-mean*mean, 0)), NumSamples: s.NumSamples + o.NumSamples}
}

// combineSeries pools two series elementwise. The shorter length wins.
func combineSeries(a, b []Sample) []Sample {
	out := make([]Sample, min(len(a), len(b)))
	for i := range out {
		out[i] = a[i].Combine(b[i])
	}

	return out
}

// foldSeries pools a whole series into one sample.
func foldSeries(xs []Sample) Sample {
	var acc Sample
	for _, x := range xs {
		acc = acc.Combine(x)
	}

	return acc
}

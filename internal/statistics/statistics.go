// Package statistics accumulates running sample moments.
package statistics

import "math"

// Sample tracks the count, sum and sum of squares of observed values.
type Sample struct {
	N     int
	Sum   float64
	SumSq float64 // Sum of squares for variance calculation
}

// Add incorporates a new value
func (s *Sample) Add(x float64) {
	s.N++
	s.Sum += x
	s.SumSq += x * x
}

// Merge folds another sample into s. Merging in a fixed order gives
// reproducible sums.
func (s *Sample) Merge(o Sample) {
	s.N += o.N
	s.Sum += o.Sum
	s.SumSq += o.SumSq
}

// Mean returns the arithmetic mean
func (s Sample) Mean() float64 {
	if s.N == 0 {
		return 0
	}
	return s.Sum / float64(s.N)
}

// Variance returns the sample variance
func (s Sample) Variance() float64 {
	if s.N < 2 {
		return 0
	}
	mean := s.Mean()
	v := (s.SumSq - float64(s.N)*mean*mean) / float64(s.N-1)
	return math.Max(0, v)
}

// StdDev returns the sample standard deviation
func (s Sample) StdDev() float64 {
	return math.Sqrt(s.Variance())
}

// StdError returns the standard error of the mean
func (s Sample) StdError() float64 {
	if s.N == 0 {
		return 0
	}
	return s.StdDev() / math.Sqrt(float64(s.N))
}

// ConfidenceInterval95 returns the 95% confidence interval for the mean
func (s Sample) ConfidenceInterval95() (float64, float64) {
	mean := s.Mean()
	margin := 1.96 * s.StdError()
	return mean - margin, mean + margin
}

package function

// Linspace returns n evenly spaced values from start to stop, both included.
func Linspace(start, stop float64, n int) []float64 {
	switch {
	case n <= 0:
		return []float64{}
	case n == 1:
		return []float64{start}
	}

	domain := make([]float64, n)
	step := (stop - start) / float64(n-1)
	for i := range domain {
		domain[i] = start + float64(i)*step
	}
	domain[n-1] = stop
	return domain
}

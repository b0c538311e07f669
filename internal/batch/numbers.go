package batch

import (
	"math"
	"strconv"
)

// JSONNumbers prepares extracted numbers for encoding/json, which rejects
// non-finite floats. Finite slices are returned unchanged; otherwise each
// infinite value is rendered as the string "+Inf" or "-Inf".
func JSONNumbers(numbers []float64) any {
	finite := true
	for _, n := range numbers {
		if math.IsInf(n, 0) || math.IsNaN(n) {
			finite = false
			break
		}
	}
	if finite {
		return numbers
	}
	out := make([]any, len(numbers))
	for i, n := range numbers {
		if math.IsInf(n, 0) || math.IsNaN(n) {
			out[i] = strconv.FormatFloat(n, 'g', -1, 64)
			continue
		}
		out[i] = n
	}
	return out
}

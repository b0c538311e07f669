package textproc

// StringKeys converts rune-keyed counts into string keys, which is the form
// JSON encoders and table renderers expect.
func StringKeys(counts map[rune]int) map[string]int {
	out := make(map[string]int, len(counts))
	for r, n := range counts {
		out[string(r)] = n
	}
	return out
}

package filter

// rankedItem is a candidate index with the score a stage sorts it by.
type rankedItem struct {
	index int
	score float64
}

// take copies the first n ranked indices, with their original values, out of in.
func take(items []rankedItem, n int, in Candidates) Candidates {
	n = min(n, len(items))
	out := make(Candidates, n)
	var i int
	for i = 0; i < n; i++ {
		out[items[i].index] = in[items[i].index]
	}

	return out
}

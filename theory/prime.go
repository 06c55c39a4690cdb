package theory

// findAperiodic returns the shortest prefix of seq whose repetition
// reproduces seq exactly. An aperiodic sequence is returned unchanged.
func findAperiodic(seq []int) []int {
	n := len(seq)
	for block := 1; block <= n; block++ {
		if n%block != 0 {
			continue
		}
		ok := true
		for i := block; i < n && ok; i++ {
			if seq[i] != seq[i%block] {
				ok = false
			}
		}
		if ok {
			return seq[:block]
		}
	}
	return seq
}

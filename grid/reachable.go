package grid

// Reachable returns every member of available that can be reached from
// `from` by unit N/S/E/W steps staying inside available. The seed itself is
// included iff it is a member of available; otherwise the result is empty.
//
// Time:   O(|available|·4).
// Memory: O(|available|) for the queue and output.
func Reachable(available Set, from Coordinate) Set {
	seen := NewSet()
	if !available.Contains(from) {
		return seen
	}

	// BFS over the whitelist
	queue := []Coordinate{from}
	seen.Add(from)
	for qi := 0; qi < len(queue); qi++ {
		for _, n := range queue[qi].Surrounding() {
			if !available.Contains(n) || seen.Contains(n) {
				continue
			}
			seen.Add(n)
			queue = append(queue, n)
		}
	}

	return seen
}

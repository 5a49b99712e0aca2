package sequencing

import (
	"math"

	"courier-sync/internal/entities"
)

// nearestNeighbor orders stops greedily by the shortest hop from the current
// position. It is not a globally optimal tour. Ties go to the earlier input,
// so the result is deterministic for a given input order.
func nearestNeighbor(start entities.Coordinates, stops []entities.Stop) []entities.Stop {
	remaining := make([]entities.Stop, len(stops))
	copy(remaining, stops)

	ordered := make([]entities.Stop, 0, len(stops))
	position := start

	for len(remaining) > 0 {
		best := 0
		bestDistance := math.Inf(1)
		for i := range remaining {
			// strict comparison keeps the earlier stop on ties
			if d := haversine(position, remaining[i].Coordinates()); d < bestDistance {
				best = i
				bestDistance = d
			}
		}

		next := remaining[best]
		ordered = append(ordered, next)
		position = next.Coordinates()
		remaining = append(remaining[:best], remaining[best+1:]...)
	}

	return ordered
}

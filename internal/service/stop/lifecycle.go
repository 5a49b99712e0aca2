package stop

import "courier-sync/internal/entities"

// checkTransition allows pending|current -> delivered|failed and the undo
// delivered|failed -> pending. Promotion to current goes through SetCurrent.
func checkTransition(from, to entities.StopStatus) error {
	switch to {
	case entities.StopDelivered, entities.StopFailed:
		if from == entities.StopPending || from == entities.StopCurrent {
			return nil
		}
	case entities.StopPending:
		if from.IsTerminal() {
			return nil
		}
	}
	return ErrInvalidTransition
}

// The functions below expect stops ordered by sequenceOrder and return the
// indexes they changed.

// advance promotes the first pending stop when no stop is current.
func advance(stops []entities.Stop) []int {
	for i := range stops {
		if stops[i].Status == entities.StopCurrent {
			return nil
		}
	}
	for i := range stops {
		if stops[i].Status == entities.StopPending {
			stops[i].Status = entities.StopCurrent
			return []int{i}
		}
	}
	return nil
}

// normalizeCurrent keeps the lowest-sequence current stop and demotes the rest.
func normalizeCurrent(stops []entities.Stop) []int {
	var changed []int
	seen := false
	for i := range stops {
		if stops[i].Status != entities.StopCurrent {
			continue
		}
		if !seen {
			seen = true
			continue
		}
		stops[i].Status = entities.StopPending
		changed = append(changed, i)
	}
	return changed
}

// renumber assigns sequenceOrder 1..n in slice order.
func renumber(stops []entities.Stop) []int {
	var changed []int
	for i := range stops {
		if stops[i].SequenceOrder != i+1 {
			stops[i].SequenceOrder = i + 1
			changed = append(changed, i)
		}
	}
	return changed
}

// splitTerminal partitions stops into delivered|failed and open ones, keeping
// the relative order of each group.
func splitTerminal(stops []entities.Stop) (done, open []entities.Stop) {
	for _, stop := range stops {
		if stop.Status.IsTerminal() {
			done = append(done, stop)
		} else {
			open = append(open, stop)
		}
	}
	return done, open
}

func indexOf(stops []entities.Stop, id string) int {
	for i := range stops {
		if stops[i].ID == id {
			return i
		}
	}
	return -1
}

// pick returns the stops at the given indexes without duplicates, in slice order.
func pick(stops []entities.Stop, indexes ...[]int) []entities.Stop {
	marked := make([]bool, len(stops))
	for _, group := range indexes {
		for _, i := range group {
			marked[i] = true
		}
	}

	result := make([]entities.Stop, 0, len(stops))
	for i := range stops {
		if marked[i] {
			result = append(result, stops[i])
		}
	}
	return result
}

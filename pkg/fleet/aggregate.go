package fleet

import (
	"sort"

	"fleetwatch/pkg/models"
)

// MergeTickets concatenates session-local manual tickets with upstream
// tickets, locals first. Duplicate ids keep their first occurrence, so the
// merge is idempotent: MergeTickets(MergeTickets(l, s), nil) equals
// MergeTickets(l, s).
func MergeTickets(local, server []models.Ticket) []models.Ticket {
	merged := make([]models.Ticket, 0, len(local)+len(server))
	seen := make(map[int64]bool, len(local)+len(server))

	for _, bucket := range [][]models.Ticket{local, server} {
		for _, t := range bucket {
			if t.ID != 0 {
				if seen[t.ID] {
					continue
				}
				seen[t.ID] = true
			}
			merged = append(merged, t)
		}
	}
	return merged
}

// MoreRecent is the canonical recency rule for tickets: numeric id descending
// when both tickets carry one, timestamp descending otherwise, id descending
// as the final tie-break so ordering stays deterministic.
func MoreRecent(a, b *models.Ticket) bool {
	if a.ID != 0 && b.ID != 0 && a.ID != b.ID {
		return a.ID > b.ID
	}
	if !a.Timestamp.Equal(b.Timestamp) {
		return a.Timestamp.After(b.Timestamp)
	}
	return a.ID > b.ID
}

// SortByRecency returns a copy of tickets ordered most recent first by the
// canonical rule. The input slice is not modified.
func SortByRecency(tickets []models.Ticket) []models.Ticket {
	sorted := make([]models.Ticket, len(tickets))
	copy(sorted, tickets)
	sort.SliceStable(sorted, func(i, j int) bool {
		return MoreRecent(&sorted[i], &sorted[j])
	})
	return sorted
}

// RecentTickets is the truncated recency view used by the dashboard table
// (n=7) and report assembly (n=3).
func RecentTickets(tickets []models.Ticket, n int) []models.Ticket {
	sorted := SortByRecency(tickets)
	if n < 0 {
		n = 0
	}
	if len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}

// TicketsForMachine filters tickets by machine id. Dangling machine
// references are tolerated; an unknown id simply yields an empty slice.
func TicketsForMachine(tickets []models.Ticket, machineID string) []models.Ticket {
	matched := make([]models.Ticket, 0)
	for _, t := range tickets {
		if t.MachineID == machineID {
			matched = append(matched, t)
		}
	}
	return matched
}

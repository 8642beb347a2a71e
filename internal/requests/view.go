package requests

import (
	"sort"
	"strings"
)

// StatusAll widens a filter to every status.
const StatusAll Status = "all"

// Filter narrows a fetched list client-side. Search matches equipment
// name, requester name, or message, case-insensitively.
type Filter struct {
	Status Status
	Search string
}

func (f Filter) matches(r RentalRequest) bool {
	if f.Status != "" && f.Status != StatusAll && r.Status != f.Status {
		return false
	}
	if f.Search == "" {
		return true
	}
	q := strings.ToLower(f.Search)
	return strings.Contains(strings.ToLower(r.EquipmentName), q) ||
		strings.Contains(strings.ToLower(r.RequesterName), q) ||
		strings.Contains(strings.ToLower(r.Message), q)
}

// Apply returns the requests matching the filter, preserving order.
func Apply(reqs []RentalRequest, f Filter) []RentalRequest {
	out := make([]RentalRequest, 0, len(reqs))
	for _, r := range reqs {
		if f.matches(r) {
			out = append(out, r)
		}
	}
	return out
}

type SortKey string

const (
	SortByDate  SortKey = "date"
	SortByName  SortKey = "name"
	SortByPrice SortKey = "price"
)

type SortOrder string

const (
	Ascending  SortOrder = "asc"
	Descending SortOrder = "desc"
)

// Sort returns a sorted copy; the input is left untouched.
func Sort(reqs []RentalRequest, key SortKey, order SortOrder) []RentalRequest {
	out := make([]RentalRequest, len(reqs))
	copy(out, reqs)

	less := func(a, b RentalRequest) bool {
		switch key {
		case SortByName:
			return a.EquipmentName < b.EquipmentName
		case SortByPrice:
			return a.TotalPrice < b.TotalPrice
		default:
			return a.CreatedAt.Before(b.CreatedAt)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if order == Descending {
			return less(out[j], out[i])
		}
		return less(out[i], out[j])
	})
	return out
}

// Stats are the aggregate counters shown above the request table.
type Stats struct {
	Total    int
	Pending  int
	Approved int
	Rejected int
}

func ComputeStats(reqs []RentalRequest) Stats {
	s := Stats{Total: len(reqs)}
	for _, r := range reqs {
		switch r.Status {
		case StatusPending:
			s.Pending++
		case StatusApproved:
			s.Approved++
		case StatusRejected:
			s.Rejected++
		}
	}
	return s
}

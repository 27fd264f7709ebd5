package query

import "sort"

// Summarize computes the admin dashboard view over a snapshot of records.
// Destinations are grouped by their exact value; equal counts keep first-seen order.
func Summarize(records []Record) Analytics {
	if len(records) == 0 {
		return Analytics{
			PopularDestinations: []DestinationCount{},
			RecentActivity:      []Activity{},
		}
	}

	return Analytics{
		TotalQueries:        len(records),
		PopularDestinations: popularDestinations(records, popularLimit),
		RecentActivity:      recentActivity(records, recentLimit),
	}
}

func popularDestinations(records []Record, limit int) []DestinationCount {
	index := make(map[string]int)
	var groups []DestinationCount
	for _, r := range records {
		key := r.Destination.Key()
		i, ok := index[key]
		if !ok {
			i = len(groups)
			index[key] = i
			groups = append(groups, DestinationCount{Name: r.Destination})
		}
		groups[i].Count++
	}

	sort.SliceStable(groups, func(i, j int) bool {
		return groups[i].Count > groups[j].Count
	})
	if len(groups) > limit {
		groups = groups[:limit]
	}
	return groups
}

func recentActivity(records []Record, limit int) []Activity {
	start := 0
	if len(records) > limit {
		start = len(records) - limit
	}
	out := make([]Activity, 0, len(records)-start)
	for _, r := range records[start:] {
		out = append(out, Activity{
			Time:   r.Timestamp,
			Action: "Query for " + r.Destination.String(),
		})
	}
	return out
}

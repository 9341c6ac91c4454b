package prospect

import "time"

// ByStatus returns the prospects currently in the given status, in ID order.
func (d *Document) ByStatus(status Status) []Record {
	var out []Record
	for _, r := range d.Prospects {
		if r.Status == status {
			out = append(out, r)
		}
	}
	return out
}

// FoundOn returns the prospects whose found date matches the given day.
func (d *Document) FoundOn(day time.Time) []Record {
	date := DateString(day)
	var out []Record
	for _, r := range d.Prospects {
		if r.FoundDate == date {
			out = append(out, r)
		}
	}
	return out
}

// Report is the daily aggregate view. It is recomputed on each call.
type Report struct {
	Date         string
	FoundToday   int
	TotalFound   int
	ByStatus     map[Status]int
	TotalRevenue int
}

// BuildReport computes the daily report for the given day.
func (d *Document) BuildReport(day time.Time) Report {
	rep := Report{
		Date:       DateString(day),
		FoundToday: len(d.FoundOn(day)),
		TotalFound: d.Stats.TotalFound,
		ByStatus:   make(map[Status]int, len(AllStatuses)),
	}
	for _, st := range AllStatuses {
		rep.ByStatus[st] = 0
	}
	for _, r := range d.Prospects {
		rep.ByStatus[r.Status]++
		rep.TotalRevenue += r.Revenue
	}
	return rep
}

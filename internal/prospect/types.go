// Package prospect tracks sales prospects found while monitoring trade groups:
// a JSON-backed record store, the status lifecycle, and read-only reporting.
package prospect

import (
	"fmt"
	"time"
)

// Status is a prospect's position in the outreach lifecycle.
// The expected path is new → contacted → replied → converted → delivered,
// but transitions are caller-driven and not enforced forward-only.
type Status string

const (
	StatusNew       Status = "new"
	StatusContacted Status = "contacted"
	StatusReplied   Status = "replied"
	StatusConverted Status = "converted"
	StatusDelivered Status = "delivered"
)

// AllStatuses lists every valid status in lifecycle order.
var AllStatuses = []Status{StatusNew, StatusContacted, StatusReplied, StatusConverted, StatusDelivered}

// ParseStatus validates a status string from the CLI.
func ParseStatus(s string) (Status, error) {
	for _, st := range AllStatuses {
		if string(st) == s {
			return st, nil
		}
	}
	return "", fmt.Errorf("unknown status %q (valid: new, contacted, replied, converted, delivered)", s)
}

// Record is a single tracked prospect. IDs are assigned sequentially at
// insertion and never reused; deletion is not supported.
type Record struct {
	ID             int     `json:"id"`
	Name           string  `json:"name"`
	Trade          string  `json:"trade"`
	Phone          string  `json:"phone,omitempty"`
	GroupSource    string  `json:"group_source,omitempty"`
	CardScore      int     `json:"card_score"`
	ScreenshotPath string  `json:"screenshot_path,omitempty"`
	Notes          string  `json:"notes,omitempty"`
	Status         Status  `json:"status"`
	FoundDate      string  `json:"found_date"`
	ContactedDate  *string `json:"contacted_date"`
	ConvertedDate  *string `json:"converted_date"`
	Revenue        int     `json:"revenue"`
}

// Stats are the incrementally maintained aggregate counters. They are never
// recomputed from the record list; mutations keep them consistent.
type Stats struct {
	TotalFound int `json:"total_found"`
	Contacted  int `json:"contacted"`
	Converted  int `json:"converted"`
}

// Document is the persisted store shape: the ordered prospect list plus stats.
type Document struct {
	Prospects []Record `json:"prospects"`
	Stats     Stats    `json:"stats"`
}

// NewDocument returns an empty store document.
func NewDocument() *Document {
	return &Document{Prospects: []Record{}}
}

// AddInfo carries the operator-supplied fields for a new prospect.
type AddInfo struct {
	Name           string
	Trade          string
	Phone          string
	GroupSource    string
	CardScore      int
	ScreenshotPath string
	Notes          string
}

// Add appends a new prospect with the next sequential ID, status "new", and
// today's found date, and bumps the total_found counter.
func (d *Document) Add(info AddInfo, now time.Time) *Record {
	rec := Record{
		ID:             len(d.Prospects) + 1,
		Name:           info.Name,
		Trade:          info.Trade,
		Phone:          info.Phone,
		GroupSource:    info.GroupSource,
		CardScore:      info.CardScore,
		ScreenshotPath: info.ScreenshotPath,
		Notes:          info.Notes,
		Status:         StatusNew,
		FoundDate:      DateString(now),
	}
	d.Prospects = append(d.Prospects, rec)
	d.Stats.TotalFound++
	return &d.Prospects[len(d.Prospects)-1]
}

// Find returns the record with the given ID, or nil.
func (d *Document) Find(id int) *Record {
	for i := range d.Prospects {
		if d.Prospects[i].ID == id {
			return &d.Prospects[i]
		}
	}
	return nil
}

// DateString formats a time the way the store records dates.
func DateString(t time.Time) string {
	return t.Format("2006-01-02")
}

package prospect

import (
	"errors"
	"fmt"
	"time"
)

// ErrNotFound reports an update against an ID the store does not hold.
var ErrNotFound = errors.New("prospect not found")

// convertedRevenue is the flat fee recorded when a prospect converts.
const convertedRevenue = 50

// effect is one field update applied when a record enters a target status.
type effect func(d *Document, r *Record, now time.Time)

// transitionEffects maps each target status to the field updates it triggers.
// Effects fire every time the target status is set, including when the record
// is already in that status: repeat counting is the intended policy, so a
// second "contacted" push refreshes the date and bumps the counter again.
var transitionEffects = map[Status][]effect{
	StatusContacted: {
		func(d *Document, r *Record, now time.Time) {
			date := DateString(now)
			r.ContactedDate = &date
		},
		func(d *Document, r *Record, now time.Time) { d.Stats.Contacted++ },
	},
	StatusConverted: {
		func(d *Document, r *Record, now time.Time) {
			date := DateString(now)
			r.ConvertedDate = &date
		},
		func(d *Document, r *Record, now time.Time) { r.Revenue = convertedRevenue },
		func(d *Document, r *Record, now time.Time) { d.Stats.Converted++ },
	},
}

// Transition is the outcome of a successful status update.
type Transition struct {
	Record *Record
	From   Status
	To     Status
}

// UpdateStatus sets the record's status and applies the target status's
// effects. The document is left untouched when the ID is absent.
func (d *Document) UpdateStatus(id int, to Status, now time.Time) (Transition, error) {
	rec := d.Find(id)
	if rec == nil {
		return Transition{}, fmt.Errorf("prospect #%d: %w", id, ErrNotFound)
	}

	from := rec.Status
	rec.Status = to
	for _, apply := range transitionEffects[to] {
		apply(d, rec, now)
	}
	return Transition{Record: rec, From: from, To: to}, nil
}

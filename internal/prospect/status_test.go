package prospect

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testDay = time.Date(2026, 9, 1, 14, 30, 0, 0, time.UTC)

func TestParseStatus(t *testing.T) {
	tests := []struct {
		in      string
		want    Status
		wantErr bool
	}{
		{in: "new", want: StatusNew},
		{in: "contacted", want: StatusContacted},
		{in: "replied", want: StatusReplied},
		{in: "converted", want: StatusConverted},
		{in: "delivered", want: StatusDelivered},
		{in: "ghosted", wantErr: true},
		{in: "Contacted", wantErr: true},
		{in: "", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseStatus(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAddAssignsSequentialIDs(t *testing.T) {
	doc := NewDocument()
	for i, name := range []string{"Joe Smith", "Maria's Electric", "ABC Roofing"} {
		rec := doc.Add(AddInfo{Name: name, Trade: "plumber", CardScore: 3}, testDay)
		assert.Equal(t, i+1, rec.ID)
		assert.Equal(t, StatusNew, rec.Status)
		assert.Equal(t, "2026-09-01", rec.FoundDate)
	}
	assert.Equal(t, 3, doc.Stats.TotalFound)
}

func TestUpdateStatusContactedStampsDateAndCounter(t *testing.T) {
	doc := NewDocument()
	doc.Add(AddInfo{Name: "Joe Smith", Trade: "plumber", CardScore: 2}, testDay)

	tr, err := doc.UpdateStatus(1, StatusContacted, testDay)
	require.NoError(t, err)
	assert.Equal(t, StatusNew, tr.From)
	assert.Equal(t, StatusContacted, tr.To)
	require.NotNil(t, tr.Record.ContactedDate)
	assert.Equal(t, "2026-09-01", *tr.Record.ContactedDate)
	assert.Equal(t, 1, doc.Stats.Contacted)
}

func TestUpdateStatusRepeatContactedCountsAgain(t *testing.T) {
	doc := NewDocument()
	doc.Add(AddInfo{Name: "Joe Smith", Trade: "plumber", CardScore: 2}, testDay)

	_, err := doc.UpdateStatus(1, StatusContacted, testDay)
	require.NoError(t, err)
	later := testDay.AddDate(0, 0, 3)
	tr, err := doc.UpdateStatus(1, StatusContacted, later)
	require.NoError(t, err)

	// Repeat pushes are follow-ups: the date refreshes and the counter climbs.
	assert.Equal(t, "2026-09-04", *tr.Record.ContactedDate)
	assert.Equal(t, 2, doc.Stats.Contacted)
}

func TestUpdateStatusConvertedRecordsRevenue(t *testing.T) {
	doc := NewDocument()
	doc.Add(AddInfo{Name: "Joe Smith", Trade: "plumber", CardScore: 2}, testDay)

	tr, err := doc.UpdateStatus(1, StatusConverted, testDay)
	require.NoError(t, err)
	assert.Equal(t, 50, tr.Record.Revenue)
	require.NotNil(t, tr.Record.ConvertedDate)
	assert.Equal(t, "2026-09-01", *tr.Record.ConvertedDate)
	assert.Equal(t, 1, doc.Stats.Converted)
}

func TestUpdateStatusRepliedHasNoSideEffects(t *testing.T) {
	doc := NewDocument()
	doc.Add(AddInfo{Name: "Joe Smith", Trade: "plumber", CardScore: 2}, testDay)

	tr, err := doc.UpdateStatus(1, StatusReplied, testDay)
	require.NoError(t, err)
	assert.Equal(t, StatusReplied, tr.Record.Status)
	assert.Nil(t, tr.Record.ContactedDate)
	assert.Zero(t, tr.Record.Revenue)
	assert.Equal(t, Stats{TotalFound: 1}, doc.Stats)
}

func TestUpdateStatusUnknownIDLeavesDocumentUntouched(t *testing.T) {
	doc := NewDocument()
	doc.Add(AddInfo{Name: "Joe Smith", Trade: "plumber", CardScore: 2}, testDay)
	before := *doc.Find(1)
	beforeStats := doc.Stats

	_, err := doc.UpdateStatus(42, StatusContacted, testDay)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNotFound))
	assert.Contains(t, err.Error(), "#42")
	assert.Equal(t, before, *doc.Find(1))
	assert.Equal(t, beforeStats, doc.Stats)
}

// TestProspectLifecycle walks one prospect through the full pipeline and
// checks the stats stay consistent at every step.
func TestProspectLifecycle(t *testing.T) {
	doc := NewDocument()
	rec := doc.Add(AddInfo{
		Name:        "Joe Smith Plumbing",
		Trade:       "plumber",
		Phone:       "(615) 555-1234",
		GroupSource: "Nashville Contractors Network",
		CardScore:   2,
		Notes:       "card is a blurry photo of a paper card",
	}, testDay)
	require.Equal(t, 1, rec.ID)

	_, err := doc.UpdateStatus(1, StatusContacted, testDay)
	require.NoError(t, err)
	_, err = doc.UpdateStatus(1, StatusReplied, testDay.AddDate(0, 0, 1))
	require.NoError(t, err)
	tr, err := doc.UpdateStatus(1, StatusConverted, testDay.AddDate(0, 0, 2))
	require.NoError(t, err)
	_, err = doc.UpdateStatus(1, StatusDelivered, testDay.AddDate(0, 0, 3))
	require.NoError(t, err)

	assert.Equal(t, StatusDelivered, tr.Record.Status)
	assert.Equal(t, 50, tr.Record.Revenue)
	assert.Equal(t, "2026-09-01", *tr.Record.ContactedDate)
	assert.Equal(t, "2026-09-03", *tr.Record.ConvertedDate)
	assert.Equal(t, Stats{TotalFound: 1, Contacted: 1, Converted: 1}, doc.Stats)
}

package monitor

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOpenGroupsOpensEveryURL(t *testing.T) {
	var opened []string
	o := NewOpener(nil)
	o.stagger = 0
	o.openURL = func(url string) error {
		opened = append(opened, url)
		return nil
	}

	groups := DefaultConfig().FilterTier(1)
	o.OpenGroups(groups)

	assert.Len(t, opened, len(groups))
	assert.Equal(t, groups[0].URL, opened[0])
}

func TestOpenGroupsSkipsFailedTabs(t *testing.T) {
	var opened int
	o := NewOpener(nil)
	o.stagger = 0
	o.openURL = func(url string) error {
		opened++
		if opened == 1 {
			return errors.New("no display")
		}
		return nil
	}

	o.OpenGroups([]Group{
		{Name: "A", URL: "https://example.com/a", Tier: 1},
		{Name: "B", URL: "https://example.com/b", Tier: 1},
	})

	// A failed tab does not stop the rest of the batch.
	assert.Equal(t, 2, opened)
}

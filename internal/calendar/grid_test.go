package calendar

import (
	"testing"
	"time"

	"github.com/ahosmi/content-dashboard/internal/store"
	"github.com/ahosmi/content-dashboard/pkg/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestGridIsWholeWeeksStartingSunday(t *testing.T) {
	// March 2024: the 1st is a Friday, the 31st a Sunday
	g := Grid{Reference: date(2024, time.March, 15)}
	days := g.Days()

	require.NotEmpty(t, days)
	assert.Equal(t, 0, len(days)%7, "grid must be a multiple of 7 days")
	assert.Equal(t, time.Sunday, days[0].Date.Weekday())
	assert.Equal(t, time.Saturday, days[len(days)-1].Date.Weekday())

	// padded back to Sunday Feb 25, forward to Saturday Apr 6
	assert.Equal(t, date(2024, time.February, 25), days[0].Date)
	assert.Equal(t, date(2024, time.April, 6), days[len(days)-1].Date)
}

func TestGridMarksAdjacentMonthDays(t *testing.T) {
	g := Grid{Reference: date(2024, time.March, 1)}
	days := g.Days()

	assert.False(t, days[0].InMonth, "Feb 25 is not in March")
	for _, day := range days {
		if day.Date.Month() == time.March {
			assert.True(t, day.InMonth, "day %s should be in month", day.Date)
		} else {
			assert.False(t, day.InMonth, "day %s should not be in month", day.Date)
		}
	}
}

func TestGridTodayAndSelectedFlags(t *testing.T) {
	today := date(2024, time.March, 5)
	selected := date(2024, time.March, 12)

	g := Grid{Reference: date(2024, time.March, 1), Today: today, Selected: &selected}

	var todays, selecteds int
	for _, day := range g.Days() {
		if day.IsToday {
			todays++
			assert.Equal(t, today, day.Date)
		}
		if day.IsSelected {
			selecteds++
			assert.Equal(t, selected, day.Date)
		}
	}
	assert.Equal(t, 1, todays)
	assert.Equal(t, 1, selecteds)
}

func TestGridBucketsContentWithDisplayCap(t *testing.T) {
	s := store.NewStore(nil, nil)
	busy := date(2024, time.March, 8)
	for i := 0; i < 4; i++ {
		s.Add(model.ContentDraft{
			Title:       "Item",
			Platform:    model.PlatformYouTube,
			Status:      model.StatusScheduled,
			PlannedDate: busy.Add(time.Duration(i) * time.Hour),
		})
	}

	g := Grid{Reference: date(2024, time.March, 1), Source: s}

	var found bool
	for _, day := range g.Days() {
		if !SameDay(day.Date, busy) {
			continue
		}
		found = true
		assert.Len(t, day.Contents, 4, "full list stays on the day")
		assert.Len(t, day.Visible, DisplayCap)
		assert.Equal(t, 2, day.MoreCount)
	}
	require.True(t, found)
}

func TestGridRecomputesFreshPerCall(t *testing.T) {
	s := store.NewStore(nil, nil)
	g := Grid{Reference: date(2024, time.March, 1), Source: s}

	before := g.Days()
	s.Add(model.ContentDraft{
		Title:       "New",
		Platform:    model.PlatformTwitter,
		Status:      model.StatusIdea,
		PlannedDate: date(2024, time.March, 10),
	})
	after := g.Days()

	count := func(days []Day) int {
		n := 0
		for _, d := range days {
			n += len(d.Contents)
		}
		return n
	}
	assert.Equal(t, 0, count(before))
	assert.Equal(t, 1, count(after))
}

func TestSameDayIgnoresTime(t *testing.T) {
	a := time.Date(2024, 3, 5, 23, 50, 0, 0, time.UTC)
	b := time.Date(2024, 3, 5, 0, 5, 0, 0, time.UTC)
	assert.True(t, SameDay(a, b))
	assert.False(t, SameDay(a, b.AddDate(0, 0, 1)))
}

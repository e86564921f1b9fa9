package calendar

import (
	"time"

	"github.com/ahosmi/content-dashboard/pkg/model"
)

// DisplayCap is how many items a day cell shows before collapsing the rest
// into a "+N more" count.
const DisplayCap = 2

// ContentSource buckets items by calendar day. *store.Store satisfies it.
type ContentSource interface {
	ContentsOnDate(time.Time) []model.Content
}

// Day is one cell of the month grid.
type Day struct {
	Date       time.Time
	InMonth    bool
	IsToday    bool
	IsSelected bool
	Contents   []model.Content
	Visible    []model.Content
	MoreCount  int
}

// Grid describes one month view. Days are computed fresh on every call to
// Days, nothing is memoized between renders.
type Grid struct {
	Reference time.Time
	Today     time.Time
	Selected  *time.Time
	Source    ContentSource
}

// Days returns the padded month grid: from the first day of the week
// containing the 1st through the last day of the week containing the month's
// final day. The week starts on Sunday, so the result is always a whole
// number of Sunday-to-Saturday weeks.
func (g Grid) Days() []Day {
	monthStart := StartOfMonth(g.Reference)
	monthEnd := monthStart.AddDate(0, 1, -1)
	gridStart := startOfWeek(monthStart)
	gridEnd := endOfWeek(monthEnd)

	var days []Day
	for d := gridStart; !d.After(gridEnd); d = d.AddDate(0, 0, 1) {
		contents := []model.Content{}
		if g.Source != nil {
			contents = g.Source.ContentsOnDate(d)
		}

		visible := contents
		more := 0
		if len(contents) > DisplayCap {
			visible = contents[:DisplayCap]
			more = len(contents) - DisplayCap
		}

		days = append(days, Day{
			Date:       d,
			InMonth:    d.Month() == g.Reference.Month() && d.Year() == g.Reference.Year(),
			IsToday:    SameDay(d, g.Today),
			IsSelected: g.Selected != nil && SameDay(d, *g.Selected),
			Contents:   contents,
			Visible:    visible,
			MoreCount:  more,
		})
	}
	return days
}

// StartOfMonth returns midnight on the 1st of t's month.
func StartOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

func startOfWeek(t time.Time) time.Time {
	return t.AddDate(0, 0, -int(t.Weekday()))
}

func endOfWeek(t time.Time) time.Time {
	return t.AddDate(0, 0, int(time.Saturday-t.Weekday()))
}

// SameDay reports whether a and b fall on the same calendar day, comparing
// in a's location.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.In(a.Location()).Date()
	return ay == by && am == bm && ad == bd
}

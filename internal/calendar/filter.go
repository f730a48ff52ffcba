package calendar

import (
	"sort"
	"time"

	"github.com/jeevansaathi/saathi-cli/internal/utils"
)

// ItemsBetween returns the items whose date falls within [start, end]
// inclusive, preserving input order.
func ItemsBetween(items []Item, start, end time.Time) []Item {
	var out []Item
	for _, item := range items {
		if item.Date.Before(start) || item.Date.After(end) {
			continue
		}
		out = append(out, item)
	}
	return out
}

// ItemsForDate returns the items falling on date's local calendar day.
func ItemsForDate(items []Item, date time.Time) []Item {
	return ItemsBetween(items, utils.StartOfDay(date), utils.EndOfDay(date))
}

// ItemsForWeek returns the items in the Sunday-to-Saturday week containing
// date.
func ItemsForWeek(items []Item, date time.Time) []Item {
	weekStart := utils.StartOfDay(date).AddDate(0, 0, -int(date.Weekday()))
	weekEnd := utils.EndOfDay(weekStart.AddDate(0, 0, 6))
	return ItemsBetween(items, weekStart, weekEnd)
}

// ItemsForMonth returns the items in date's calendar month.
func ItemsForMonth(items []Item, date time.Time) []Item {
	monthStart := time.Date(date.Year(), date.Month(), 1, 0, 0, 0, 0, date.Location())
	monthEnd := utils.EndOfDay(monthStart.AddDate(0, 1, -1))
	return ItemsBetween(items, monthStart, monthEnd)
}

// FilterByTypes keeps the items whose type is among types. No types means
// no filtering: an uninitialized filter shows everything rather than
// nothing.
func FilterByTypes(items []Item, types ...ItemType) []Item {
	if len(types) == 0 {
		return append([]Item(nil), items...)
	}
	keep := make(map[ItemType]bool, len(types))
	for _, t := range types {
		keep[t] = true
	}
	var out []Item
	for _, item := range items {
		if keep[item.Type] {
			out = append(out, item)
		}
	}
	return out
}

// typeRank orders item types for priority sorting: tasks ahead of habits,
// habits ahead of habit logs, journal entries last.
func typeRank(t ItemType) int {
	switch t {
	case ItemTask:
		return 0
	case ItemHabit:
		return 1
	case ItemHabitLog:
		return 2
	default:
		return 3
	}
}

// SortByPriority returns a new slice sorted with incomplete items first,
// then by type rank, then ascending by date. The sort is stable; equal
// items keep their relative input order.
func SortByPriority(items []Item) []Item {
	out := append([]Item(nil), items...)
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.Completed != b.Completed {
			return !a.Completed
		}
		if ra, rb := typeRank(a.Type), typeRank(b.Type); ra != rb {
			return ra < rb
		}
		return a.Date.Before(b.Date)
	})
	return out
}

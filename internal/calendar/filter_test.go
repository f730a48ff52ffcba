package calendar

import (
	"reflect"
	"testing"
	"time"
)

func itemAt(id string, typ ItemType, date time.Time, completed bool) Item {
	return Item{ID: id, Type: typ, Title: id, Date: date, Completed: completed}
}

func TestItemsForDate_Boundaries(t *testing.T) {
	target := day(2026, 8, 15)
	items := []Item{
		itemAt("before", ItemTask, time.Date(2026, 8, 14, 23, 59, 59, 999000000, time.UTC), false),
		itemAt("midnight", ItemTask, time.Date(2026, 8, 15, 0, 0, 0, 0, time.UTC), false),
		itemAt("evening", ItemTask, time.Date(2026, 8, 15, 22, 0, 0, 0, time.UTC), false),
		itemAt("after", ItemTask, time.Date(2026, 8, 16, 0, 0, 0, 0, time.UTC), false),
	}

	got := ItemsForDate(items, target)
	if len(got) != 2 {
		t.Fatalf("expected 2 items, got %d", len(got))
	}
	if got[0].ID != "midnight" || got[1].ID != "evening" {
		t.Errorf("unexpected items %q, %q", got[0].ID, got[1].ID)
	}
}

func TestItemsForWeek(t *testing.T) {
	// Aug 12 2026 is a Wednesday; its week runs Sun Aug 9 .. Sat Aug 15.
	items := []Item{
		itemAt("prev-sat", ItemTask, day(2026, 8, 8), false),
		itemAt("sun", ItemTask, day(2026, 8, 9), false),
		itemAt("sat", ItemTask, time.Date(2026, 8, 15, 23, 0, 0, 0, time.UTC), false),
		itemAt("next-sun", ItemTask, day(2026, 8, 16), false),
	}

	got := ItemsForWeek(items, day(2026, 8, 12))
	if len(got) != 2 || got[0].ID != "sun" || got[1].ID != "sat" {
		t.Errorf("unexpected week window contents: %+v", got)
	}
}

func TestItemsForMonth(t *testing.T) {
	items := []Item{
		itemAt("july", ItemTask, day(2026, 7, 31), false),
		itemAt("first", ItemTask, day(2026, 8, 1), false),
		itemAt("last", ItemTask, time.Date(2026, 8, 31, 23, 59, 0, 0, time.UTC), false),
		itemAt("september", ItemTask, day(2026, 9, 1), false),
	}

	got := ItemsForMonth(items, day(2026, 8, 15))
	if len(got) != 2 || got[0].ID != "first" || got[1].ID != "last" {
		t.Errorf("unexpected month window contents: %+v", got)
	}
}

func TestFilterByTypes(t *testing.T) {
	items := []Item{
		itemAt("t", ItemTask, day(2026, 8, 15), false),
		itemAt("h", ItemHabit, day(2026, 8, 15), false),
		itemAt("j", ItemJournal, day(2026, 8, 15), false),
	}

	t.Run("empty filter means no filtering", func(t *testing.T) {
		got := FilterByTypes(items)
		if !reflect.DeepEqual(got, items) {
			t.Errorf("expected all items back, got %+v", got)
		}
		// Fresh slice, not an alias of the input.
		if &got[0] == &items[0] {
			t.Error("expected a new backing array")
		}
	})

	t.Run("selected types", func(t *testing.T) {
		got := FilterByTypes(items, ItemTask, ItemJournal)
		if len(got) != 2 || got[0].ID != "t" || got[1].ID != "j" {
			t.Errorf("unexpected filter result %+v", got)
		}
	})
}

func TestSortByPriority(t *testing.T) {
	items := []Item{
		itemAt("done-task", ItemTask, day(2026, 8, 15), true),
		itemAt("journal", ItemJournal, day(2026, 8, 15), false),
		itemAt("habit-late", ItemHabit, day(2026, 8, 16), false),
		itemAt("habit-early", ItemHabit, day(2026, 8, 15), false),
		itemAt("task", ItemTask, day(2026, 8, 16), false),
	}

	got := SortByPriority(items)
	wantOrder := []string{"task", "habit-early", "habit-late", "journal", "done-task"}
	for i, want := range wantOrder {
		if got[i].ID != want {
			t.Errorf("position %d = %q, want %q", i, got[i].ID, want)
		}
	}

	// Input order untouched.
	if items[0].ID != "done-task" {
		t.Error("expected SortByPriority to leave its input unmodified")
	}
}

func TestProgress(t *testing.T) {
	start, end := day(2026, 8, 10), day(2026, 8, 16)
	items := []Item{
		itemAt("t1", ItemTask, day(2026, 8, 11), true),
		itemAt("t2", ItemTask, day(2026, 8, 12), false),
		itemAt("t3", ItemTask, day(2026, 8, 13), true),
		itemAt("h1", ItemHabit, day(2026, 8, 11), true),
		itemAt("h2", ItemHabit, day(2026, 8, 12), false),
		itemAt("j1", ItemJournal, day(2026, 8, 12), false),
		itemAt("outside", ItemTask, day(2026, 8, 20), false),
	}

	got := Progress(items, start, end)
	want := ProgressStats{
		TasksTotal: 3, TasksCompleted: 2, TaskRate: 67,
		HabitsTotal: 2, HabitsCompleted: 1, HabitRate: 50,
		JournalEntries: 1,
	}
	if got != want {
		t.Errorf("Progress() = %+v, want %+v", got, want)
	}
}

func TestProgress_EmptyRangeYieldsZeroRates(t *testing.T) {
	got := Progress(nil, day(2026, 8, 10), day(2026, 8, 16))
	if got != (ProgressStats{}) {
		t.Errorf("expected all-zero stats, got %+v", got)
	}
}

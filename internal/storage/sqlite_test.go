package storage

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/jeevansaathi/saathi-cli/internal/models"
)

func setupTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store := NewSQLiteStore(dbPath)
	if err := store.Init(); err != nil {
		t.Fatalf("failed to init test store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestInitSeedsDefaults(t *testing.T) {
	store := setupTestStore(t)

	settings, err := store.GetSettings()
	if err != nil {
		t.Fatalf("GetSettings() after Init returned error: %v", err)
	}
	if settings.Timezone == "" || settings.DefaultReminder == "" {
		t.Errorf("default settings incomplete: %+v", settings)
	}

	lists, err := store.GetAllLists()
	if err != nil {
		t.Fatalf("GetAllLists() returned error: %v", err)
	}
	var foundInbox bool
	for _, l := range lists {
		if l.Default && l.Name == "Inbox" {
			foundInbox = true
		}
	}
	if !foundInbox {
		t.Error("Init did not seed a default Inbox list")
	}
}

func TestLoadBeforeInit(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "missing.db")
	store := NewSQLiteStore(dbPath)

	if err := store.Load(); err == nil {
		t.Error("Load() on a missing database should fail")
	}
}

func TestHabitRoundTrip(t *testing.T) {
	store := setupTestStore(t)

	end := time.Date(2026, 9, 30, 0, 0, 0, 0, time.UTC)
	habit := models.Habit{
		ID:    "habit-1",
		Title: "Morning stretch",
		Type:  models.HabitChecklist,
		Frequency: models.Frequency{
			Type: models.FrequencySpecificDays,
			Days: []time.Weekday{time.Monday, time.Wednesday},
		},
		Status:    models.HabitInProgress,
		StartDate: time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   &end,
		Checklist: []models.ChecklistItem{
			{ID: "c1", Text: "Neck rolls"},
			{ID: "c2", Text: "Hamstrings"},
		},
		Reminders: []string{"07:30", "21:00"},
		Color:     "#aabbcc",
		CreatedAt: time.Date(2026, 8, 1, 9, 0, 0, 0, time.UTC),
	}
	if err := store.AddHabit(habit); err != nil {
		t.Fatalf("AddHabit() returned error: %v", err)
	}

	got, err := store.GetHabit("habit-1")
	if err != nil {
		t.Fatalf("GetHabit() returned error: %v", err)
	}
	if got.Title != habit.Title || got.Type != habit.Type {
		t.Errorf("GetHabit() = %+v, want %+v", got, habit)
	}
	if len(got.Frequency.Days) != 2 || got.Frequency.Days[0] != time.Monday {
		t.Errorf("frequency days did not round-trip: %v", got.Frequency.Days)
	}
	if len(got.Checklist) != 2 || got.Checklist[1].Text != "Hamstrings" {
		t.Errorf("checklist did not round-trip: %v", got.Checklist)
	}
	if len(got.Reminders) != 2 || got.Reminders[0] != "07:30" {
		t.Errorf("reminders did not round-trip: %v", got.Reminders)
	}
	if got.EndDate == nil || !got.EndDate.Equal(end) {
		t.Errorf("end date did not round-trip: %v", got.EndDate)
	}

	byTitle, err := store.GetHabitByTitle("Morning stretch")
	if err != nil {
		t.Fatalf("GetHabitByTitle() returned error: %v", err)
	}
	if byTitle.ID != "habit-1" {
		t.Errorf("GetHabitByTitle() found %q, want habit-1", byTitle.ID)
	}
}

func TestHabitUpsert(t *testing.T) {
	store := setupTestStore(t)

	habit := models.Habit{
		ID:        "habit-1",
		Title:     "Read",
		Type:      models.HabitBinary,
		Frequency: models.Frequency{Type: models.FrequencyDaily},
		Status:    models.HabitYetToStart,
		StartDate: time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC),
		CreatedAt: time.Now().UTC(),
	}
	if err := store.AddHabit(habit); err != nil {
		t.Fatalf("AddHabit() returned error: %v", err)
	}

	habit.Status = models.HabitInProgress
	habit.Title = "Read 20 pages"
	if err := store.UpdateHabit(habit); err != nil {
		t.Fatalf("UpdateHabit() returned error: %v", err)
	}

	got, err := store.GetHabit("habit-1")
	if err != nil {
		t.Fatalf("GetHabit() returned error: %v", err)
	}
	if got.Title != "Read 20 pages" || got.Status != models.HabitInProgress {
		t.Errorf("update not applied: %+v", got)
	}

	all, err := store.GetAllHabits(false)
	if err != nil {
		t.Fatalf("GetAllHabits() returned error: %v", err)
	}
	if len(all) != 1 {
		t.Errorf("upsert created duplicate rows: got %d habits", len(all))
	}
}

func TestHabitSoftDeleteAndRestore(t *testing.T) {
	store := setupTestStore(t)

	habit := models.Habit{
		ID:        "habit-1",
		Title:     "Meditate",
		Type:      models.HabitDuration,
		Frequency: models.Frequency{Type: models.FrequencyDaily},
		Status:    models.HabitInProgress,
		StartDate: time.Now().UTC(),
		CreatedAt: time.Now().UTC(),
	}
	if err := store.AddHabit(habit); err != nil {
		t.Fatalf("AddHabit() returned error: %v", err)
	}

	if err := store.DeleteHabit("habit-1"); err != nil {
		t.Fatalf("DeleteHabit() returned error: %v", err)
	}
	if _, err := store.GetHabit("habit-1"); err == nil {
		t.Error("GetHabit() should not find a soft-deleted habit")
	}

	active, err := store.GetAllHabits(false)
	if err != nil {
		t.Fatalf("GetAllHabits(false) returned error: %v", err)
	}
	if len(active) != 0 {
		t.Errorf("GetAllHabits(false) returned %d habits, want 0", len(active))
	}

	all, err := store.GetAllHabits(true)
	if err != nil {
		t.Fatalf("GetAllHabits(true) returned error: %v", err)
	}
	if len(all) != 1 || all[0].DeletedAt == nil {
		t.Errorf("GetAllHabits(true) should include the deleted habit with deleted_at set")
	}

	if err := store.DeleteHabit("habit-1"); err == nil {
		t.Error("deleting an already deleted habit should fail")
	}

	if err := store.RestoreHabit("habit-1"); err != nil {
		t.Fatalf("RestoreHabit() returned error: %v", err)
	}
	got, err := store.GetHabit("habit-1")
	if err != nil {
		t.Fatalf("GetHabit() after restore returned error: %v", err)
	}
	if got.DeletedAt != nil {
		t.Error("restored habit still carries deleted_at")
	}

	if err := store.RestoreHabit("habit-1"); err == nil {
		t.Error("restoring a live habit should fail")
	}
}

func TestHabitLogRecency(t *testing.T) {
	store := setupTestStore(t)

	base := time.Date(2026, 8, 12, 8, 0, 0, 0, time.UTC)
	logs := []models.HabitLog{
		{ID: "log-1", HabitID: "habit-1", Day: "2026-08-12", Status: models.LogSkipped, CreatedAt: base, UpdatedAt: base},
		{ID: "log-2", HabitID: "habit-1", Day: "2026-08-12", Status: models.LogCompleted, CreatedAt: base.Add(time.Hour), UpdatedAt: base.Add(2 * time.Hour)},
		{ID: "log-3", HabitID: "habit-1", Day: "2026-08-13", Status: models.LogCompleted, CreatedAt: base.Add(26 * time.Hour), UpdatedAt: base.Add(26 * time.Hour)},
	}
	for _, l := range logs {
		if err := store.AddHabitLog(l); err != nil {
			t.Fatalf("AddHabitLog(%s) returned error: %v", l.ID, err)
		}
	}

	got, err := store.GetHabitLog("habit-1", "2026-08-12")
	if err != nil {
		t.Fatalf("GetHabitLog() returned error: %v", err)
	}
	if got.ID != "log-2" {
		t.Errorf("GetHabitLog() = %s, want log-2 (most recently updated)", got.ID)
	}

	all, err := store.GetAllHabitLogs()
	if err != nil {
		t.Fatalf("GetAllHabitLogs() returned error: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("GetAllHabitLogs() returned %d logs, want 3", len(all))
	}
	for i, want := range []string{"log-1", "log-2", "log-3"} {
		if all[i].ID != want {
			t.Errorf("GetAllHabitLogs()[%d] = %s, want %s (write order)", i, all[i].ID, want)
		}
	}

	if err := store.DeleteHabitLog("log-2"); err != nil {
		t.Fatalf("DeleteHabitLog() returned error: %v", err)
	}
	got, err = store.GetHabitLog("habit-1", "2026-08-12")
	if err != nil {
		t.Fatalf("GetHabitLog() after delete returned error: %v", err)
	}
	if got.ID != "log-1" {
		t.Errorf("GetHabitLog() after delete = %s, want log-1", got.ID)
	}
}

func TestTaskRoundTrip(t *testing.T) {
	store := setupTestStore(t)

	due := time.Date(2026, 8, 20, 17, 0, 0, 0, time.UTC)
	task := models.Task{
		ID:        "task-1",
		Title:     "Renew passport",
		DueDate:   &due,
		ListID:    "inbox",
		Priority:  3,
		CreatedAt: time.Now().UTC(),
	}
	if err := store.AddTask(task); err != nil {
		t.Fatalf("AddTask() returned error: %v", err)
	}

	got, err := store.GetTask("task-1")
	if err != nil {
		t.Fatalf("GetTask() returned error: %v", err)
	}
	if got.Title != task.Title || got.Priority != 3 {
		t.Errorf("GetTask() = %+v", got)
	}
	if got.DueDate == nil || !got.DueDate.Equal(due) {
		t.Errorf("due date did not round-trip: %v", got.DueDate)
	}
	if got.Completed {
		t.Error("new task should not be completed")
	}

	got.Completed = true
	if err := store.UpdateTask(got); err != nil {
		t.Fatalf("UpdateTask() returned error: %v", err)
	}
	got, err = store.GetTask("task-1")
	if err != nil {
		t.Fatalf("GetTask() returned error: %v", err)
	}
	if !got.Completed {
		t.Error("completion flag did not persist")
	}

	if err := store.DeleteTask("task-1"); err != nil {
		t.Fatalf("DeleteTask() returned error: %v", err)
	}
	if err := store.RestoreTask("task-1"); err != nil {
		t.Fatalf("RestoreTask() returned error: %v", err)
	}
	if _, err := store.GetTask("task-1"); err != nil {
		t.Errorf("GetTask() after restore returned error: %v", err)
	}
}

func TestJournalRoundTrip(t *testing.T) {
	store := setupTestStore(t)

	log := models.JournalLog{
		ID:      "journal-1",
		Title:   "Evening review",
		LogDate: time.Date(2026, 8, 15, 21, 0, 0, 0, time.UTC),
		FocusID: "focus-1",
		LogType: models.LogTypeRating,
		Rating:  4,
		Checklist: []models.ChecklistItem{
			{ID: "c1", Text: "Wins"},
		},
		CreatedAt: time.Now().UTC(),
	}
	if err := store.AddJournalLog(log); err != nil {
		t.Fatalf("AddJournalLog() returned error: %v", err)
	}

	logs, err := store.GetAllJournalLogs()
	if err != nil {
		t.Fatalf("GetAllJournalLogs() returned error: %v", err)
	}
	if len(logs) != 1 {
		t.Fatalf("GetAllJournalLogs() returned %d logs, want 1", len(logs))
	}
	got := logs[0]
	if got.LogType != models.LogTypeRating || got.Rating != 4 {
		t.Errorf("journal log did not round-trip: %+v", got)
	}
	if len(got.Checklist) != 1 || got.Checklist[0].Text != "Wins" {
		t.Errorf("journal checklist did not round-trip: %v", got.Checklist)
	}

	if err := store.DeleteJournalLog("journal-1"); err != nil {
		t.Fatalf("DeleteJournalLog() returned error: %v", err)
	}
	logs, err = store.GetAllJournalLogs()
	if err != nil {
		t.Fatalf("GetAllJournalLogs() returned error: %v", err)
	}
	if len(logs) != 0 {
		t.Errorf("GetAllJournalLogs() returned %d logs after delete, want 0", len(logs))
	}
}

func TestLookupsRoundTrip(t *testing.T) {
	store := setupTestStore(t)

	if err := store.AddFocusArea(models.FocusArea{ID: "focus-1", Name: "Health", Color: "#00ff00"}); err != nil {
		t.Fatalf("AddFocusArea() returned error: %v", err)
	}
	focuses, err := store.GetAllFocusAreas()
	if err != nil {
		t.Fatalf("GetAllFocusAreas() returned error: %v", err)
	}
	if len(focuses) != 1 || focuses[0].Name != "Health" {
		t.Errorf("focus areas = %+v", focuses)
	}

	if err := store.AddList(models.List{ID: "list-1", Name: "Errands"}); err != nil {
		t.Fatalf("AddList() returned error: %v", err)
	}
	lists, err := store.GetAllLists()
	if err != nil {
		t.Fatalf("GetAllLists() returned error: %v", err)
	}
	// Inbox is seeded by Init.
	if len(lists) != 2 {
		t.Errorf("GetAllLists() returned %d lists, want 2", len(lists))
	}

	target := time.Date(2026, 12, 31, 0, 0, 0, 0, time.UTC)
	goal := models.Goal{
		ID:          "goal-1",
		Title:       "Run a half marathon",
		FocusAreaID: "focus-1",
		Status:      models.GoalInProgress,
		TargetDate:  &target,
		CreatedAt:   time.Now().UTC(),
	}
	if err := store.AddGoal(goal); err != nil {
		t.Fatalf("AddGoal() returned error: %v", err)
	}
	goals, err := store.GetAllGoals()
	if err != nil {
		t.Fatalf("GetAllGoals() returned error: %v", err)
	}
	if len(goals) != 1 || goals[0].TargetDate == nil || !goals[0].TargetDate.Equal(target) {
		t.Errorf("goals = %+v", goals)
	}

	milestone := models.Milestone{
		ID:        "mile-1",
		GoalID:    "goal-1",
		Title:     "Run 10k without stopping",
		Status:    models.GoalNotStarted,
		CreatedAt: time.Now().UTC(),
	}
	if err := store.AddMilestone(milestone); err != nil {
		t.Fatalf("AddMilestone() returned error: %v", err)
	}
	milestones, err := store.GetAllMilestones()
	if err != nil {
		t.Fatalf("GetAllMilestones() returned error: %v", err)
	}
	if len(milestones) != 1 || milestones[0].GoalID != "goal-1" {
		t.Errorf("milestones = %+v", milestones)
	}
}

func TestSettingsRoundTrip(t *testing.T) {
	store := setupTestStore(t)

	settings := models.Settings{
		Timezone:        "Asia/Kolkata",
		DefaultReminder: "06:45",
		LookaheadDays:   30,
	}
	if err := store.SaveSettings(settings); err != nil {
		t.Fatalf("SaveSettings() returned error: %v", err)
	}

	got, err := store.GetSettings()
	if err != nil {
		t.Fatalf("GetSettings() returned error: %v", err)
	}
	if got != settings {
		t.Errorf("GetSettings() = %+v, want %+v", got, settings)
	}
}

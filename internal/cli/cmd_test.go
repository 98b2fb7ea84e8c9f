package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/alexanderramin/cadence/internal/app"
	"github.com/alexanderramin/cadence/internal/domain"
	"github.com/alexanderramin/cadence/internal/repository"
	"github.com/alexanderramin/cadence/internal/service"
	"github.com/alexanderramin/cadence/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testNow is a Wednesday.
var testNow = time.Date(2024, 1, 17, 10, 0, 0, 0, time.UTC)

// testApp wires a full App backed by an in-memory DB for CLI integration tests.
func testApp(t *testing.T) *App {
	t.Helper()
	database := testutil.NewTestDB(t)
	uow := testutil.NewTestUoW(database)

	planRepo := repository.NewSQLitePlanRepo(database)
	sessRepo := repository.NewSQLiteSessionRepo(database)
	foodRepo := repository.NewSQLiteFoodLogRepo(database)

	return &App{
		Plans:       service.NewPlanService(planRepo, uow),
		Sessions:    service.NewSessionService(sessRepo, uow),
		Consistency: service.NewConsistencyService(planRepo, sessRepo, time.UTC),
		// Vision left nil: analysis reports itself disabled.
		Nutrition: service.NewNutritionService(foodRepo, uow, nil),
		Location:  time.UTC,
		clock:     func() time.Time { return testNow },
	}
}

// seedPlan stores Monday push and Wednesday legs for the default user.
func seedPlan(t *testing.T, a *App) {
	t.Helper()
	ctx := context.Background()
	_, err := a.Plans.SetDay(ctx, defaultUser, domain.Monday, domain.DayPlan{
		Title: "Push",
		Exercises: []domain.PlannedExercise{
			domain.NewPlannedExercise("Bench Press", 4, 8, 60),
			domain.NewPlannedExercise("Overhead Press", 3, 10, 40),
		},
	})
	require.NoError(t, err)
	_, err = a.Plans.SetDay(ctx, defaultUser, domain.Wednesday, domain.DayPlan{
		Title:     "Legs",
		Exercises: []domain.PlannedExercise{domain.NewPlannedExercise("Squat", 5, 5, 100)},
	})
	require.NoError(t, err)
}

// executeCmd runs a cobra command and captures stdout/stderr.
func executeCmd(t *testing.T, a *App, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd(a)
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)
	err := root.Execute()
	return buf.String(), err
}

func onlySession(t *testing.T, a *App) *domain.Session {
	t.Helper()
	sessions, err := a.Sessions.List(context.Background(), defaultUser)
	require.NoError(t, err)
	require.Len(t, sessions, 1)
	return sessions[0]
}

// --- plan ---

func TestPlanSetAndShow(t *testing.T) {
	a := testApp(t)

	out, err := executeCmd(t, a, "plan", "set", "--day", "tue", "--title", "Pull",
		"--exercise", "Barbell Row:4x8@50", "-e", "Chin Up:3x6")
	require.NoError(t, err)
	assert.Contains(t, out, "Updated Tuesday.")
	assert.Contains(t, out, "Barbell Row")

	out, err = executeCmd(t, a, "plan", "show", "--day", "Tuesday")
	require.NoError(t, err)
	assert.Contains(t, out, "Chin Up")
	assert.Contains(t, out, "4×8")
	assert.Contains(t, out, "50 kg")

	out, err = executeCmd(t, a, "plan", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "WEEKLY PLAN")
	assert.Contains(t, out, "Barbell Row, Chin Up")
}

func TestPlanSet_RejectsBadInput(t *testing.T) {
	a := testApp(t)

	_, err := executeCmd(t, a, "plan", "set", "--day", "mon")
	assert.ErrorContains(t, err, "at least one --exercise")

	_, err = executeCmd(t, a, "plan", "set", "--day", "mon", "--rest", "-e", "Squat")
	assert.ErrorContains(t, err, "--rest")

	_, err = executeCmd(t, a, "plan", "set", "--day", "funday", "-e", "Squat")
	assert.ErrorContains(t, err, "unknown weekday")

	_, err = executeCmd(t, a, "plan", "set", "-e", "Squat")
	assert.ErrorContains(t, err, `"day" not set`)

	_, err = executeCmd(t, a, "plan", "set", "--day", "mon", "-e", "Squat:4")
	assert.ErrorContains(t, err, "volume must look like 4x8")
}

func TestPlanClear(t *testing.T) {
	a := testApp(t)
	seedPlan(t, a)

	out, err := executeCmd(t, a, "plan", "clear", "--day", "mon")
	require.NoError(t, err)
	assert.Contains(t, out, "Monday is now a rest day.")

	plan, err := a.Plans.Get(context.Background(), defaultUser)
	require.NoError(t, err)
	assert.True(t, plan.Day(domain.Monday).IsRestDay)
	assert.True(t, plan.Day(domain.Wednesday).Actionable())
}

func TestPlanExportImport(t *testing.T) {
	a := testApp(t)
	seedPlan(t, a)
	path := filepath.Join(t.TempDir(), "plan.toml")

	out, err := executeCmd(t, a, "plan", "export", "-o", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Plan written to")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Bench Press")

	out, err = executeCmd(t, a, "--user", "someone-else", "plan", "import", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Plan imported.")

	plan, err := a.Plans.Get(context.Background(), "someone-else")
	require.NoError(t, err)
	require.Len(t, plan.Day(domain.Monday).Exercises, 2)
	assert.Equal(t, "Overhead Press", plan.Day(domain.Monday).Exercises[1].Name)
}

func TestPlanExport_Stdout(t *testing.T) {
	a := testApp(t)
	seedPlan(t, a)

	out, err := executeCmd(t, a, "plan", "export")
	require.NoError(t, err)
	assert.Contains(t, out, "[wednesday]")
	assert.Contains(t, out, "Squat")
}

func TestPlanEdit_NeedsTerminal(t *testing.T) {
	a := testApp(t)
	_, err := executeCmd(t, a, "plan", "edit", "--day", "mon")
	assert.ErrorContains(t, err, "interactive terminal")
}

// --- session ---

func TestSessionStart_FromPlan(t *testing.T) {
	a := testApp(t)
	seedPlan(t, a)

	out, err := executeCmd(t, a, "session", "start")
	require.NoError(t, err)
	assert.Contains(t, out, "2024-01-17")
	assert.Contains(t, out, "0 of 1 exercises done")
	assert.Contains(t, out, "Squat")
}

func TestSessionStart_TodayOverride(t *testing.T) {
	a := testApp(t)
	seedPlan(t, a)

	out, err := executeCmd(t, a, "--today", "2024-01-15", "session", "start")
	require.NoError(t, err)
	assert.Contains(t, out, "0 of 2 exercises done")

	s := onlySession(t, a)
	assert.Equal(t, "Push", s.Title)
}

func TestSessionStart_RestDay(t *testing.T) {
	a := testApp(t)
	seedPlan(t, a)

	_, err := executeCmd(t, a, "session", "start", "--date", "2024-01-16")
	assert.ErrorIs(t, err, service.ErrNothingPlanned)

	_, err = executeCmd(t, a, "session", "start", "--date", "16/01/2024")
	assert.ErrorContains(t, err, "YYYY-MM-DD")
}

func TestSessionCheck_ByNameAndShortID(t *testing.T) {
	a := testApp(t)
	seedPlan(t, a)
	_, err := executeCmd(t, a, "session", "start", "--date", "yesterday")
	assert.ErrorIs(t, err, service.ErrNothingPlanned, "Tuesday is a rest day")

	_, err = executeCmd(t, a, "session", "start", "--date", "2024-01-15")
	require.NoError(t, err)
	s := onlySession(t, a)

	out, err := executeCmd(t, a, "session", "check", s.ID[:8], "bench press")
	require.NoError(t, err)
	assert.Contains(t, out, "1 of 2 exercises done")

	out, err = executeCmd(t, a, "session", "check", s.ID, s.Exercises[0].ID, "--undo")
	require.NoError(t, err)
	assert.Contains(t, out, "0 of 2 exercises done")

	_, err = executeCmd(t, a, "session", "check", s.ID, "Deadlift")
	assert.ErrorIs(t, err, repository.ErrNotFound)

	_, err = executeCmd(t, a, "session", "check", "ffffffff", "Squat")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestSessionComplete(t *testing.T) {
	a := testApp(t)
	seedPlan(t, a)

	out, err := executeCmd(t, a, "session", "complete", "--date", "2024-01-15")
	require.NoError(t, err)
	assert.Contains(t, out, "Day marked complete.")
	assert.Contains(t, out, "2 of 2 exercises done")
}

func TestSessionAddListShowRemove(t *testing.T) {
	a := testApp(t)
	seedPlan(t, a)
	_, err := executeCmd(t, a, "session", "start")
	require.NoError(t, err)
	s := onlySession(t, a)

	out, err := executeCmd(t, a, "session", "add", s.ID[:8], "Calf Raise:3x15@40", "--done")
	require.NoError(t, err)
	assert.Contains(t, out, "Calf Raise")
	assert.Contains(t, out, "1 of 2 exercises done")

	out, err = executeCmd(t, a, "session", "list")
	require.NoError(t, err)
	assert.Contains(t, out, s.ID[:8])
	assert.Contains(t, out, "Legs")
	assert.Contains(t, out, "1/2")

	out, err = executeCmd(t, a, "session", "show", s.ID[:8])
	require.NoError(t, err)
	assert.Contains(t, out, s.ID)

	out, err = executeCmd(t, a, "session", "rm", s.ID[:8])
	require.NoError(t, err)
	assert.Contains(t, out, "removed")

	out, err = executeCmd(t, a, "session", "ls")
	require.NoError(t, err)
	assert.Contains(t, out, "No sessions logged yet.")
}

// --- consistency ---

func seedHistory(t *testing.T, a *App) {
	t.Helper()
	seedPlan(t, a)
	_, err := executeCmd(t, a, "session", "complete", "--date", "2024-01-08")
	require.NoError(t, err)
}

func TestHistoryCmd(t *testing.T) {
	a := testApp(t)
	seedHistory(t, a)

	out, err := executeCmd(t, a, "history")
	require.NoError(t, err)
	assert.Contains(t, out, "HISTORY")
	assert.Contains(t, out, "Logged")
	assert.Contains(t, out, "Missed")
	assert.Contains(t, out, "Today")

	_, err = executeCmd(t, a, "history", "--days", "-1")
	var cErr *app.ConsistencyError
	require.ErrorAs(t, err, &cErr)
	assert.Equal(t, app.ConsistencyErrInvalidDays, cErr.Code)
}

func TestWeeksCmd(t *testing.T) {
	a := testApp(t)
	seedHistory(t, a)

	out, err := executeCmd(t, a, "weeks")
	require.NoError(t, err)
	assert.Contains(t, out, "WEEKS")
	assert.Contains(t, out, "Jan 8 – Jan 14")

	out, err = executeCmd(t, a, "weeks", "--week", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "WEEK 1")
	assert.Contains(t, out, "Overhead Press")

	_, err = executeCmd(t, a, "weeks", "--week", "9")
	assert.ErrorContains(t, err, "week 9 not found")

	_, err = executeCmd(t, a, "weeks", "--browse")
	assert.ErrorContains(t, err, "interactive terminal")
}

func TestExercisesCmd(t *testing.T) {
	a := testApp(t)
	seedHistory(t, a)

	out, err := executeCmd(t, a, "exercises", "--muscle", "legs")
	require.NoError(t, err)
	assert.Contains(t, out, "Squat")
	assert.NotContains(t, out, "Bench Press")

	_, err = executeCmd(t, a, "exercises", "--muscle", "wings")
	assert.ErrorContains(t, err, "unknown muscle group")
}

func TestCalendarCmd(t *testing.T) {
	a := testApp(t)
	seedHistory(t, a)

	out, err := executeCmd(t, a, "calendar")
	require.NoError(t, err)
	assert.Contains(t, out, "Mo")
	assert.Contains(t, out, "31")

	out, err = executeCmd(t, a, "cal", "--month", "2024-02")
	require.NoError(t, err)
	assert.Contains(t, out, "29")

	_, err = executeCmd(t, a, "calendar", "--month", "Feb")
	assert.ErrorContains(t, err, "YYYY-MM")
}

func TestSummaryCmd(t *testing.T) {
	a := testApp(t)

	out, err := executeCmd(t, a, "summary")
	require.NoError(t, err)
	assert.Contains(t, out, "Nothing planned or logged yet.")

	seedHistory(t, a)
	out, err = executeCmd(t, a, "summary")
	require.NoError(t, err)
	assert.Contains(t, out, "over 2 weeks")
	assert.Contains(t, out, "Best week")
}

// --- food ---

func TestFoodLogAndDay(t *testing.T) {
	a := testApp(t)

	out, err := executeCmd(t, a, "food", "log", "-d", "Chicken and rice",
		"--calories", "650", "--protein", "45", "--carbs", "70", "--fat", "12", "--at", "12:30")
	require.NoError(t, err)
	assert.Contains(t, out, "2024-01-17 12:30")
	assert.Contains(t, out, "manual")

	_, err = executeCmd(t, a, "food", "log", "-d", "Snack", "--calories", "150", "--at", "2024-01-16 15:00")
	require.NoError(t, err)

	out, err = executeCmd(t, a, "food", "day")
	require.NoError(t, err)
	assert.Contains(t, out, "Chicken and rice")
	assert.NotContains(t, out, "Snack")
	assert.Contains(t, out, "kcal 650")

	out, err = executeCmd(t, a, "food", "day", "--date", "yesterday")
	require.NoError(t, err)
	assert.Contains(t, out, "Snack")
}

func TestFoodLog_Validation(t *testing.T) {
	a := testApp(t)

	_, err := executeCmd(t, a, "food", "log", "-d", "Cake", "--calories", "-5")
	assert.ErrorIs(t, err, service.ErrInvalidFood)

	_, err = executeCmd(t, a, "food", "log", "-d", "Cake", "--at", "noon")
	assert.ErrorContains(t, err, "HH:MM")
}

func TestFoodAnalyze_VisionDisabled(t *testing.T) {
	a := testApp(t)

	_, err := executeCmd(t, a, "food", "analyze", "meal.jpg")
	assert.ErrorIs(t, err, service.ErrVisionDisabled)
	assert.ErrorContains(t, err, "CADENCE_VISION_ENABLED")

	_, err = executeCmd(t, a, "food", "estimate", "two", "eggs")
	assert.ErrorIs(t, err, service.ErrVisionDisabled)
}

type stubAnalyzer struct {
	req app.PhotoFoodRequest
}

func (s *stubAnalyzer) AnalyzePhoto(_ context.Context, req app.PhotoFoodRequest) (*domain.FoodLog, error) {
	s.req = req
	return testutil.NewTestFoodLog(req.LoggedAt, "Porridge",
		testutil.WithSource(domain.FoodSourceAIPhoto),
		testutil.WithItems(domain.FoodItem{Name: "Oats", Macros: domain.Macros{Calories: 300}}),
	), nil
}

func TestFoodAnalyze_UsesOverride(t *testing.T) {
	a := testApp(t)
	stub := &stubAnalyzer{}
	a.AnalyzeFood = stub

	out, err := executeCmd(t, a, "food", "analyze", "meal.jpg", "--hint", "breakfast", "--at", "08:15")
	require.NoError(t, err)
	assert.Contains(t, out, "PORRIDGE")
	assert.Contains(t, out, "photo")
	assert.Equal(t, "meal.jpg", stub.req.Path)
	assert.Equal(t, "breakfast", stub.req.Hint)
	assert.Equal(t, time.Date(2024, 1, 17, 8, 15, 0, 0, time.UTC), stub.req.LoggedAt)
}

func TestFoodRemove(t *testing.T) {
	a := testApp(t)
	log, err := a.Nutrition.LogManual(context.Background(), app.ManualFoodRequest{
		UserID: defaultUser, LoggedAt: testNow, Description: "Apple",
	})
	require.NoError(t, err)

	out, err := executeCmd(t, a, "food", "rm", log.ID)
	require.NoError(t, err)
	assert.Contains(t, out, "removed")

	_, err = executeCmd(t, a, "food", "rm", log.ID)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

// --- helpers ---

func TestAppNow_TodayKeepsTimeOfDay(t *testing.T) {
	a := testApp(t)
	a.today = "2024-03-02"

	now, err := a.now()
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 3, 2, 10, 0, 0, 0, time.UTC), now)

	a.today = "March 2"
	_, err = a.now()
	assert.ErrorContains(t, err, "--today")
}

func TestAppNow_UsesLocation(t *testing.T) {
	a := testApp(t)
	a.Location = time.FixedZone("UTC+14", 14*3600)

	now, err := a.now()
	require.NoError(t, err)
	assert.Equal(t, 18, now.Day(), "10:00 UTC is already the next day at +14")
}

func TestDateOrToday(t *testing.T) {
	a := testApp(t)
	cases := map[string]time.Time{
		"":           testNow,
		"today":      testNow,
		"Yesterday":  testNow.AddDate(0, 0, -1),
		"tomorrow":   testNow.AddDate(0, 0, 1),
		"2024-02-29": time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC),
	}
	for in, want := range cases {
		got, err := a.dateOrToday(in)
		require.NoError(t, err, in)
		assert.True(t, want.Equal(got), "%q: got %v", in, got)
	}
}

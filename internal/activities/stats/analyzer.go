package stats

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/BuddyOhio/back-end-g9-final-project/internal/activities"
	"github.com/BuddyOhio/back-end-g9-final-project/internal/telemetry/tracing"

	"go.opentelemetry.io/otel/attribute"
)

var ErrInvalidDate = errors.New("invalid date")

type activitiesRepo interface {
	ListAll(ctx context.Context, params activities.ListParams) ([]activities.Activity, error)
}

// DayActivity is an activity of a day listing, with the display strings
// the frontend renders directly.
type DayActivity struct {
	activities.Activity
	DateStr string `json:"activityDateStr"`
	TimeStr string `json:"activityTimeStr"`
}

// DashboardResponse carries the three donut payloads and the weekly
// column chart in one response.
type DashboardResponse struct {
	DonutDaily    []CategoryBucket  `json:"donutDailyActivities"`
	DonutWeekly   []CategoryBucket  `json:"donutWeeklyActivities"`
	DonutAll      []CategoryBucket  `json:"donutAllActivities"`
	ColumnsWeekly []WeekMatrixEntry `json:"columnsWeeklyActivities"`
}

// Analyzer answers the analytics queries over one user's activities. Every
// query fetches a fresh snapshot, localizes it through the normalizer and
// derives the views in memory, no state survives between calls.
type Analyzer struct {
	repo       activitiesRepo
	normalizer activities.Normalizer

	// Now is the time source used for "today" and "this week",
	// swappable in tests.
	Now func() time.Time
}

func NewAnalyzer(repo activitiesRepo, normalizer activities.Normalizer) *Analyzer {
	return &Analyzer{
		repo:       repo,
		normalizer: normalizer,
		Now:        time.Now,
	}
}

func (a *Analyzer) localNow() time.Time {
	return a.normalizer.Normalize(a.Now())
}

// localize returns a copy of the list with all starts shifted to the
// local wall-clock frame.
func (a *Analyzer) localize(list []activities.Activity) []activities.Activity {
	localized := make([]activities.Activity, len(list))
	for i, act := range list {
		act.Date = a.normalizer.Normalize(act.Date)
		localized[i] = act
	}
	return localized
}

// DayActivities lists the activities of one local calendar day, given as
// "2006-01-02", sorted by start ascending.
func (a *Analyzer) DayActivities(ctx context.Context, userID, date string) (_ []DayActivity, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "analyzer.activities.day")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("date", date))

	day, err := time.Parse(dayKeyFormat, date)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidDate, date)
	}

	all, err := a.repo.ListAll(ctx, activities.ListParams{UserID: userID})
	if err != nil {
		return nil, fmt.Errorf("list activities: %w", err)
	}

	dayActivities := FilterByWindow(a.localize(all), DayWindow(day))
	sort.Slice(dayActivities, func(i, j int) bool {
		return dayActivities[i].Date.Before(dayActivities[j].Date)
	})

	result := make([]DayActivity, 0, len(dayActivities))
	for _, act := range dayActivities {
		result = append(result, DayActivity{
			Activity: act,
			DateStr:  act.Date.Format(activities.DisplayDateFormat),
			TimeStr:  act.Date.Format(activities.DisplayTimeFormat),
		})
	}
	return result, nil
}

// Dashboard builds the donut breakdowns for today, the current week and
// all time, plus the weekly column chart, over completed activities.
func (a *Analyzer) Dashboard(ctx context.Context, userID string) (_ *DashboardResponse, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "analyzer.activities.dashboard")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	completed, err := a.repo.ListAll(ctx, activities.ListParams{
		UserID: userID,
		Status: activities.StatusCompleted,
	})
	if err != nil {
		return nil, fmt.Errorf("list completed activities: %w", err)
	}

	localNow := a.localNow()
	all := a.localize(completed)
	daily := FilterByWindow(all, DayWindow(localNow))
	weekly := FilterByWindow(all, WeekWindow(localNow))

	return &DashboardResponse{
		DonutDaily:    AggregateByCategory(daily),
		DonutWeekly:   AggregateByCategory(weekly),
		DonutAll:      AggregateByCategory(all),
		ColumnsWeekly: BuildWeekMatrix(weekly),
	}, nil
}

// WeeklyStreakRank counts how many days of the current week, up to now,
// reached the activity minutes threshold.
func (a *Analyzer) WeeklyStreakRank(ctx context.Context, userID string) (_ int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "analyzer.activities.weeklyRank")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	completed, err := a.repo.ListAll(ctx, activities.ListParams{
		UserID: userID,
		Status: activities.StatusCompleted,
	})
	if err != nil {
		return 0, fmt.Errorf("list completed activities: %w", err)
	}

	weekToDate := FilterByWindow(a.localize(completed), WeekToDateWindow(a.localNow()))
	return WeeklyRank(weekToDate, DefaultStreakThresholdMinutes), nil
}

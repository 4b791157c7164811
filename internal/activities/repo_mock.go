package activities

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"
)

// MockRepo is an in-memory repo used in handler and analyzer tests.
type MockRepo struct {
	Activities map[string]Activity
}

func NewMockRepo() *MockRepo {
	return &MockRepo{
		Activities: make(map[string]Activity),
	}
}

func (r *MockRepo) Add(_ context.Context, activity Activity) (*Activity, error) {
	if activity.ID == "" {
		activity.ID = uuid.NewString()
	}
	r.Activities[activity.ID] = activity
	return &activity, nil
}

func (r *MockRepo) Get(_ context.Context, userID, id string) (*Activity, error) {
	a, ok := r.Activities[id]
	if !ok || a.UserID != userID {
		return nil, ErrActivityNotFound
	}
	return &a, nil
}

func (r *MockRepo) Update(_ context.Context, activity *Activity) error {
	existing, ok := r.Activities[activity.ID]
	if !ok || existing.UserID != activity.UserID {
		return ErrActivityNotFound
	}
	r.Activities[activity.ID] = *activity
	return nil
}

func (r *MockRepo) UpdateStatus(_ context.Context, userID, id string, status Status) error {
	a, ok := r.Activities[id]
	if !ok || a.UserID != userID {
		return ErrActivityNotFound
	}
	a.Status = status
	r.Activities[id] = a
	return nil
}

func (r *MockRepo) Delete(_ context.Context, userID, id string) error {
	a, ok := r.Activities[id]
	if !ok || a.UserID != userID {
		return ErrActivityNotFound
	}
	delete(r.Activities, id)
	return nil
}

func (r *MockRepo) ListAll(_ context.Context, params ListParams) ([]Activity, error) {
	var result []Activity
	for _, a := range r.Activities {
		if a.UserID != params.UserID {
			continue
		}
		if params.Status != "" && a.Status != params.Status {
			continue
		}
		if params.From != nil && a.Date.Before(*params.From) {
			continue
		}
		if params.To != nil && a.Date.After(*params.To) {
			continue
		}
		result = append(result, a)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Date.After(result[j].Date)
	})
	return result, nil
}

// AddForDate is a test helper, not part of the repo surface.
func (r *MockRepo) AddForDate(userID string, date time.Time, durationMins int, actType Type, status Status) Activity {
	a := Activity{
		ID:              uuid.NewString(),
		UserID:          userID,
		Name:            "activity",
		Type:            actType,
		Date:            date,
		DurationMinutes: durationMins,
		Status:          status,
	}
	r.Activities[a.ID] = a
	return a
}

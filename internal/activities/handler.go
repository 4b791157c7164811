package activities

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/BuddyOhio/back-end-g9-final-project/internal/auth"
	"github.com/BuddyOhio/back-end-g9-final-project/internal/telemetry/metrics"
	"github.com/BuddyOhio/back-end-g9-final-project/internal/telemetry/tracing"
	"github.com/BuddyOhio/back-end-g9-final-project/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

const (
	maxNameLength      = 20
	maxDescLength      = 115
	maxTypeOtherLength = 15
)

type activitiesRepo interface {
	Add(ctx context.Context, activity Activity) (*Activity, error)
	Get(ctx context.Context, userID, id string) (*Activity, error)
	Update(ctx context.Context, activity *Activity) error
	UpdateStatus(ctx context.Context, userID, id string, status Status) error
	Delete(ctx context.Context, userID, id string) error
	ListAll(ctx context.Context, params ListParams) ([]Activity, error)
}

// ActivityRequest carries the client payload for add and update. The date
// and time come as separate wall-clock strings and get combined into the
// stored instant here.
type ActivityRequest struct {
	ID              string `json:"activityId"`
	Name            string `json:"activityName"`
	Description     string `json:"activityDesc"`
	Type            Type   `json:"activityType"`
	TypeOther       string `json:"activityTypeOther"`
	Date            string `json:"activityDate"` // "2006-01-02"
	Time            string `json:"activityTime"` // "15:04"
	DurationMinutes int    `json:"activityDuration"`
}

// ActivityResponse is an activity plus the display strings the frontend
// renders directly, produced in the user wall-clock frame.
type ActivityResponse struct {
	Activity
	DateStr string `json:"activityDateStr"`
	TimeStr string `json:"activityTimeStr"`
}

type DeleteActivityResponse struct {
	DeletedID string `json:"deletedId"`
}

type UpdateActivityResponse struct {
	UpdatedID string `json:"updatedId"`
}

type ListResponse struct {
	Activities []ActivityResponse `json:"activities"`
	Total      int                `json:"total"`
}

type Handler struct {
	repo       activitiesRepo
	normalizer Normalizer
	metrics    *metrics.Manager

	// Now is the time source for write-time status derivation,
	// swappable in tests.
	Now func() time.Time
}

func NewHandler(repo activitiesRepo, normalizer Normalizer, metrics *metrics.Manager) *Handler {
	return &Handler{
		repo:       repo,
		normalizer: normalizer,
		metrics:    metrics,
		Now:        time.Now,
	}
}

func (handler *Handler) SetupRoutes(router *mux.Router) {
	router.HandleFunc("/activities", handler.HandleList).Methods("GET", "OPTIONS")
	router.HandleFunc("/activities", handler.HandleAdd).Methods("POST", "OPTIONS")
	router.HandleFunc("/activities", handler.HandleUpdate).Methods("PUT", "OPTIONS")
	router.HandleFunc("/activities/{id}", handler.HandleComplete).Methods("PATCH", "OPTIONS")
	router.HandleFunc("/activities/{id}", handler.HandleDelete).Methods("DELETE", "OPTIONS")
}

func (handler *Handler) toResponse(a Activity) ActivityResponse {
	local := handler.normalizer.Normalize(a.Date)
	return ActivityResponse{
		Activity: a,
		DateStr:  local.Format(DisplayDateFormat),
		TimeStr:  local.Format(DisplayTimeFormat),
	}
}

// parseRequest validates the payload and returns the activity with the
// stored instant already converted from the submitted wall-clock date
// and time.
func (handler *Handler) parseRequest(req ActivityRequest) (*Activity, error) {
	if req.Name == "" {
		return nil, errors.New("activity name empty")
	}
	if len(req.Name) > maxNameLength {
		return nil, fmt.Errorf("activity name longer than %d chars", maxNameLength)
	}
	if len(req.Description) > maxDescLength {
		return nil, fmt.Errorf("activity description longer than %d chars", maxDescLength)
	}
	if !req.Type.Valid() {
		return nil, fmt.Errorf("unknown activity type %q", req.Type)
	}
	if req.Type == TypeOther && req.TypeOther == "" {
		return nil, errors.New("custom activity type empty")
	}
	if req.Type != TypeOther && req.TypeOther != "" {
		return nil, errors.New("custom type set for a non-custom activity")
	}
	if len(req.TypeOther) > maxTypeOtherLength {
		return nil, fmt.Errorf("custom activity type longer than %d chars", maxTypeOtherLength)
	}
	if req.DurationMinutes <= 0 {
		return nil, errors.New("activity duration must be positive")
	}

	localStart, err := time.Parse("2006-01-02 15:04", req.Date+" "+req.Time)
	if err != nil {
		return nil, fmt.Errorf("invalid activity date or time: %w", err)
	}

	return &Activity{
		ID:              req.ID,
		Name:            req.Name,
		Description:     req.Description,
		Type:            req.Type,
		TypeOther:       req.TypeOther,
		Date:            handler.normalizer.Denormalize(localStart),
		DurationMinutes: req.DurationMinutes,
	}, nil
}

func (handler *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.activities.list")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no session", http.StatusUnauthorized)
		return
	}

	activities, err := handler.repo.ListAll(ctx, ListParams{UserID: userID})
	if err != nil {
		log.Errorf("failed to list activities for %s: %s", userID, err)
		http.Error(w, "error, failed to list activities", http.StatusInternalServerError)
		return
	}

	resp := ListResponse{
		Activities: make([]ActivityResponse, 0, len(activities)),
		Total:      len(activities),
	}
	for _, a := range activities {
		resp.Activities = append(resp.Activities, handler.toResponse(a))
	}

	respJson, err := json.Marshal(resp)
	if err != nil {
		log.Errorf("failed to marshal activities: %s", err)
		http.Error(w, "failed to marshal activities", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, respJson, http.StatusOK)
}

func (handler *Handler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.activities.add")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no session", http.StatusUnauthorized)
		return
	}

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var req ActivityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Tracef("new activity, unmarshal json params: %s", err)
		http.Error(w, "add activity failed", http.StatusBadRequest)
		return
	}

	activity, err := handler.parseRequest(req)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	activity.UserID = userID
	activity.Status = StatusFor(handler.Now(), activity.Date)

	addedActivity, err := handler.repo.Add(ctx, *activity)
	if err != nil {
		log.Errorf("failed to add new activity [%s] for %s: %s", activity.Name, userID, err)
		http.Error(w, "error, failed to add new activity", http.StatusInternalServerError)
		return
	}

	handler.metrics.CounterActivitiesAdded.Inc()

	addedJson, err := json.Marshal(handler.toResponse(*addedActivity))
	if err != nil {
		log.Errorf("failed to marshal new activity: %s", err)
		http.Error(w, "error, failed to add new activity", http.StatusInternalServerError)
		return
	}

	log.Debugf("new activity added: %s", addedActivity.ID)
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, addedJson, http.StatusCreated)
}

func (handler *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.activities.update")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no session", http.StatusUnauthorized)
		return
	}

	var req ActivityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Tracef("update activity, unmarshal json params: %s", err)
		http.Error(w, "update activity failed", http.StatusBadRequest)
		return
	}
	if req.ID == "" {
		http.Error(w, "error, id empty", http.StatusBadRequest)
		return
	}

	activity, err := handler.parseRequest(req)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	activity.UserID = userID
	activity.Status = StatusFor(handler.Now(), activity.Date)

	if err := handler.repo.Update(ctx, activity); err != nil {
		if errors.Is(err, ErrActivityNotFound) {
			http.Error(w, "activity not found", http.StatusNotFound)
			return
		}
		log.Errorf("failed to update activity %s: %s", activity.ID, err)
		http.Error(w, "error, failed to update activity", http.StatusInternalServerError)
		return
	}

	respJson, err := json.Marshal(UpdateActivityResponse{UpdatedID: activity.ID})
	if err != nil {
		log.Errorf("failed to marshal update activity response: %s", err)
		http.Error(w, "failed to update activity", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, respJson, http.StatusOK)
}

// HandleComplete marks an activity as completed, the one status transition
// the client can trigger directly.
func (handler *Handler) HandleComplete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.activities.complete")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no session", http.StatusUnauthorized)
		return
	}

	id := mux.Vars(r)["id"]
	if id == "" {
		http.Error(w, "error, id empty", http.StatusBadRequest)
		return
	}

	if err := handler.repo.UpdateStatus(ctx, userID, id, StatusCompleted); err != nil {
		if errors.Is(err, ErrActivityNotFound) {
			http.Error(w, "activity not found", http.StatusNotFound)
			return
		}
		log.Errorf("failed to complete activity %s: %s", id, err)
		http.Error(w, "error, failed to update activity", http.StatusInternalServerError)
		return
	}

	respJson, err := json.Marshal(UpdateActivityResponse{UpdatedID: id})
	if err != nil {
		log.Errorf("failed to marshal complete activity response: %s", err)
		http.Error(w, "failed to update activity", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, respJson, http.StatusOK)
}

func (handler *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.activities.delete")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no session", http.StatusUnauthorized)
		return
	}

	id := mux.Vars(r)["id"]
	if id == "" {
		http.Error(w, "error, id empty", http.StatusBadRequest)
		return
	}

	if err := handler.repo.Delete(ctx, userID, id); err != nil {
		if errors.Is(err, ErrActivityNotFound) {
			http.Error(w, "activity not found", http.StatusNotFound)
			return
		}
		log.Errorf("failed to delete activity %s: %s", id, err)
		http.Error(w, "error, failed to delete activity", http.StatusInternalServerError)
		return
	}

	respJson, err := json.Marshal(DeleteActivityResponse{DeletedID: id})
	if err != nil {
		log.Errorf("failed to marshal delete activity response: %s", err)
		http.Error(w, "failed to delete activity", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, respJson, http.StatusOK)
}

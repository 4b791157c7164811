package stats

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/BuddyOhio/back-end-g9-final-project/internal/auth"
	"github.com/BuddyOhio/back-end-g9-final-project/internal/telemetry/metrics"
	"github.com/BuddyOhio/back-end-g9-final-project/internal/telemetry/tracing"
	"github.com/BuddyOhio/back-end-g9-final-project/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

type Handler struct {
	analyzer *Analyzer
	metrics  *metrics.Manager
}

func NewHandler(analyzer *Analyzer, metrics *metrics.Manager) *Handler {
	return &Handler{
		analyzer: analyzer,
		metrics:  metrics,
	}
}

func (handler *Handler) SetupRoutes(router *mux.Router) {
	router.HandleFunc("/activities/date/{date}", handler.HandleDayActivities).Methods("GET", "OPTIONS")
	router.HandleFunc("/charts/dashboard", handler.HandleDashboard).Methods("GET", "OPTIONS")
	router.HandleFunc("/rank/weekly", handler.HandleWeeklyRank).Methods("GET", "OPTIONS")
}

func (handler *Handler) HandleDayActivities(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.stats.dayActivities")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no session", http.StatusUnauthorized)
		return
	}

	date := mux.Vars(r)["date"]
	dayActivities, err := handler.analyzer.DayActivities(ctx, userID, date)
	if err != nil {
		if errors.Is(err, ErrInvalidDate) {
			http.Error(w, "error, invalid date", http.StatusBadRequest)
			return
		}
		log.Errorf("failed to get activities for %s on %s: %s", userID, date, err)
		http.Error(w, "error, failed to get activities", http.StatusInternalServerError)
		return
	}

	respJson, err := json.Marshal(map[string][]DayActivity{
		"activities": dayActivities,
	})
	if err != nil {
		log.Errorf("failed to marshal day activities: %s", err)
		http.Error(w, "failed to marshal activities", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, respJson, http.StatusOK)
}

func (handler *Handler) HandleDashboard(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.stats.dashboard")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no session", http.StatusUnauthorized)
		return
	}

	dashboard, err := handler.analyzer.Dashboard(ctx, userID)
	if err != nil {
		log.Errorf("failed to get dashboard for %s: %s", userID, err)
		http.Error(w, "error, failed to get dashboard", http.StatusInternalServerError)
		return
	}

	handler.metrics.CounterDashboardQueries.Inc()

	respJson, err := json.Marshal(dashboard)
	if err != nil {
		log.Errorf("failed to marshal dashboard: %s", err)
		http.Error(w, "failed to marshal dashboard", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, respJson, http.StatusOK)
}

func (handler *Handler) HandleWeeklyRank(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.stats.weeklyRank")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no session", http.StatusUnauthorized)
		return
	}

	rank, err := handler.analyzer.WeeklyStreakRank(ctx, userID)
	if err != nil {
		log.Errorf("failed to get weekly rank for %s: %s", userID, err)
		http.Error(w, "error, failed to get weekly rank", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSONResponseOK(w, fmt.Sprintf(`{"weeklyRank": %d}`, rank))
}

package test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/BuddyOhio/back-end-g9-final-project/internal/activities"
	"github.com/BuddyOhio/back-end-g9-final-project/internal/activities/stats"
	"github.com/BuddyOhio/back-end-g9-final-project/internal/middleware"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (s *IntegrationTestSuite) doActivitiesRequest(
	ctx context.Context,
	token, method, path string,
	body any,
) *http.Response {
	t := s.T()
	t.Helper()

	var reqBody io.Reader
	if body != nil {
		bodyJson, err := json.Marshal(body)
		require.NoError(t, err)
		reqBody = bytes.NewBuffer(bodyJson)
	}

	req, err := http.NewRequestWithContext(ctx, method, serverEndpoint+path, reqBody)
	require.NoError(t, err)
	req.Header.Set("User-Agent", "test-agent")
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(middleware.AuthTokenHeader, token)

	resp, err := s.httpClient.Do(req)
	require.NoError(t, err)
	return resp
}

func (s *IntegrationTestSuite) TestActivities_CRUDAndAnalytics() {
	t := s.T()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	token := doLogin(ctx, t)
	require.NotEmpty(t, token)

	// a completed activity well in the past
	pastDay := time.Now().AddDate(0, 0, -7)
	addResp := s.doActivitiesRequest(ctx, token, "POST", "/activities", activities.ActivityRequest{
		Name:            "morning run",
		Description:     "around the park",
		Type:            activities.TypeRun,
		Date:            pastDay.Format("2006-01-02"),
		Time:            "08:30",
		DurationMinutes: 45,
	})
	defer addResp.Body.Close()
	require.Equal(t, http.StatusCreated, addResp.StatusCode)

	var added activities.ActivityResponse
	require.NoError(t, json.NewDecoder(addResp.Body).Decode(&added))
	require.NotEmpty(t, added.ID)
	assert.Equal(t, activities.StatusCompleted, added.Status)
	assert.Equal(t, "08:30", added.TimeStr)

	// an upcoming one in the future
	futureDay := time.Now().AddDate(0, 0, 7)
	addFutureResp := s.doActivitiesRequest(ctx, token, "POST", "/activities", activities.ActivityRequest{
		Name:            "evening yoga",
		Type:            activities.TypeYoga,
		Date:            futureDay.Format("2006-01-02"),
		Time:            "19:00",
		DurationMinutes: 30,
	})
	defer addFutureResp.Body.Close()
	require.Equal(t, http.StatusCreated, addFutureResp.StatusCode)

	var addedFuture activities.ActivityResponse
	require.NoError(t, json.NewDecoder(addFutureResp.Body).Decode(&addedFuture))
	assert.Equal(t, activities.StatusUpcoming, addedFuture.Status)

	// list shows both, newest first
	listResp := s.doActivitiesRequest(ctx, token, "GET", "/activities", nil)
	defer listResp.Body.Close()
	require.Equal(t, http.StatusOK, listResp.StatusCode)

	var list activities.ListResponse
	require.NoError(t, json.NewDecoder(listResp.Body).Decode(&list))
	require.Equal(t, 2, list.Total)
	assert.Equal(t, addedFuture.ID, list.Activities[0].ID)
	assert.Equal(t, added.ID, list.Activities[1].ID)

	// day listing for the past day contains the run only
	dayResp := s.doActivitiesRequest(ctx, token, "GET", "/activities/date/"+pastDay.Format("2006-01-02"), nil)
	defer dayResp.Body.Close()
	require.Equal(t, http.StatusOK, dayResp.StatusCode)

	var dayList map[string][]stats.DayActivity
	require.NoError(t, json.NewDecoder(dayResp.Body).Decode(&dayList))
	require.Len(t, dayList["activities"], 1)
	assert.Equal(t, added.ID, dayList["activities"][0].ID)

	// dashboard covers completed activities only
	dashboardResp := s.doActivitiesRequest(ctx, token, "GET", "/charts/dashboard", nil)
	defer dashboardResp.Body.Close()
	require.Equal(t, http.StatusOK, dashboardResp.StatusCode)

	var dashboard stats.DashboardResponse
	require.NoError(t, json.NewDecoder(dashboardResp.Body).Decode(&dashboard))
	require.Len(t, dashboard.DonutAll, 1)
	assert.Equal(t, activities.TypeRun, dashboard.DonutAll[0].Category)
	assert.Equal(t, 45, dashboard.DonutAll[0].TotalMinutes)
	require.Len(t, dashboard.ColumnsWeekly, 7)

	// weekly rank: the run was last week, so nothing counts yet
	rankResp := s.doActivitiesRequest(ctx, token, "GET", "/rank/weekly", nil)
	defer rankResp.Body.Close()
	require.Equal(t, http.StatusOK, rankResp.StatusCode)
	rankBytes, err := io.ReadAll(rankResp.Body)
	require.NoError(t, err)
	assert.JSONEq(t, `{"weeklyRank": 0}`, string(rankBytes))

	// update the run
	updateResp := s.doActivitiesRequest(ctx, token, "PUT", "/activities", activities.ActivityRequest{
		ID:              added.ID,
		Name:            "long run",
		Type:            activities.TypeRun,
		Date:            pastDay.Format("2006-01-02"),
		Time:            "09:00",
		DurationMinutes: 60,
	})
	defer updateResp.Body.Close()
	require.Equal(t, http.StatusOK, updateResp.StatusCode)

	// mark the future one completed
	completeResp := s.doActivitiesRequest(ctx, token, "PATCH", "/activities/"+addedFuture.ID, nil)
	defer completeResp.Body.Close()
	require.Equal(t, http.StatusOK, completeResp.StatusCode)

	// delete both
	for _, id := range []string{added.ID, addedFuture.ID} {
		deleteResp := s.doActivitiesRequest(ctx, token, "DELETE", "/activities/"+id, nil)
		require.Equal(t, http.StatusOK, deleteResp.StatusCode)
		deleteResp.Body.Close()
	}

	// deleting again reports not found
	deleteAgainResp := s.doActivitiesRequest(ctx, token, "DELETE", "/activities/"+added.ID, nil)
	defer deleteAgainResp.Body.Close()
	assert.Equal(t, http.StatusNotFound, deleteAgainResp.StatusCode)
}

func (s *IntegrationTestSuite) TestActivities_Unauthorized() {
	t := s.T()

	req, err := http.NewRequest("GET", fmt.Sprintf("%s/activities", serverEndpoint), nil)
	require.NoError(t, err)
	req.Header.Set("User-Agent", "test-agent")

	resp, err := s.httpClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

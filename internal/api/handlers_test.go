package api_test

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/bytedance/sonic"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/limbo/moodboard/internal/api"
	errorvalues "github.com/limbo/moodboard/internal/error_values"
	"github.com/limbo/moodboard/internal/service"
	"github.com/limbo/moodboard/internal/service/mocks"
	"github.com/limbo/moodboard/pkg/entity"
)

var (
	createdAt    = time.Date(2024, time.January, 1, 7, 0, 0, 0, time.UTC)
	morningEntry = &entity.MoodEntry{
		ID:         "m-1",
		PersonName: "Alice",
		EntryDate:  "2024-01-01",
		Details:    entity.MorningDetails{PredictedMood: "🙂", EnergyLevel: 4, MoodColor: "#3b82f6"},
		CreatedAt:  createdAt,
		UpdatedAt:  createdAt,
	}
	eveningEntry = &entity.MoodEntry{
		ID:         "e-1",
		PersonName: "Alice",
		EntryDate:  "2024-01-01",
		Details:    entity.EveningDetails{ActualFeeling: "😊", SatisfactionRating: 5, Comment: "good"},
		CreatedAt:  createdAt,
		UpdatedAt:  createdAt,
	}
)

func newTestServer(t *testing.T) (*mocks.MockMoodEntriesServiceI, http.Handler) {
	ctrl := gomock.NewController(t)
	mock := mocks.NewMockMoodEntriesServiceI(ctrl)
	serv := api.New(&api.ServicesList{EntryService: mock})
	return mock, serv.Handler()
}

func TestSubmitMorning(t *testing.T) {
	mock, handler := newTestServer(t)
	body, err := sonic.ConfigDefault.Marshal(api.MorningRequest{
		EmployeeName:  "Alice",
		EntryDate:     "2024-01-01",
		PredictedMood: "🙂",
		EnergyLevel:   4,
		MoodColor:     "#3b82f6",
	})
	require.NoError(t, err)
	expectedReq := &service.MorningRequest{
		PersonName:    "Alice",
		EntryDate:     "2024-01-01",
		PredictedMood: "🙂",
		EnergyLevel:   4,
		MoodColor:     "#3b82f6",
	}
	testCases := []struct {
		Desc         string
		Body         []byte
		Status       int
		MockPrepFunc func()
	}{
		{
			Desc:   "created",
			Body:   body,
			Status: http.StatusCreated,
			MockPrepFunc: func() {
				mock.EXPECT().SubmitMorning(gomock.Any(), expectedReq).
					Return(&service.SubmitResult{Entry: morningEntry}, nil)
			},
		},
		{
			Desc:   "updated",
			Body:   body,
			Status: http.StatusOK,
			MockPrepFunc: func() {
				mock.EXPECT().SubmitMorning(gomock.Any(), expectedReq).
					Return(&service.SubmitResult{Entry: morningEntry, Updated: true}, nil)
			},
		},
		{
			Desc:   "validation error",
			Body:   body,
			Status: http.StatusBadRequest,
			MockPrepFunc: func() {
				mock.EXPECT().SubmitMorning(gomock.Any(), expectedReq).
					Return(nil, errors.Join(errorvalues.ErrValidation, errors.New("energy level")))
			},
		},
		{
			Desc:   "store failure",
			Body:   body,
			Status: http.StatusBadGateway,
			MockPrepFunc: func() {
				mock.EXPECT().SubmitMorning(gomock.Any(), expectedReq).
					Return(nil, fmt.Errorf("%w: %w", errorvalues.ErrPersistence, errors.New("timeout")))
			},
		},
		{
			Desc:   "unexpected error",
			Body:   body,
			Status: http.StatusInternalServerError,
			MockPrepFunc: func() {
				mock.EXPECT().SubmitMorning(gomock.Any(), expectedReq).Return(nil, errors.New("boom"))
			},
		},
		{
			Desc:         "invalid body",
			Body:         []byte(`{"employee_name":`),
			Status:       http.StatusBadRequest,
			MockPrepFunc: func() {},
		},
		{
			Desc:         "empty body",
			Body:         nil,
			Status:       http.StatusBadRequest,
			MockPrepFunc: func() {},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			tc.MockPrepFunc()
			rr := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/api/v1/entries/morning", bytes.NewReader(tc.Body))
			handler.ServeHTTP(rr, req)
			assert.Equal(t, tc.Status, rr.Result().StatusCode)
			assert.NotEmpty(t, rr.Header().Get("X-Request-ID"))
		})
	}
}

func TestSubmitEveningResponse(t *testing.T) {
	mock, handler := newTestServer(t)
	mock.EXPECT().SubmitEvening(gomock.Any(), &service.EveningRequest{
		PersonName:         "Alice",
		ActualFeeling:      "😊",
		SatisfactionRating: 5,
		Comment:            "good",
	}).Return(&service.SubmitResult{Entry: eveningEntry}, nil)

	body := []byte(`{"employee_name":"Alice","actual_feeling":"😊","satisfaction_rating":5,"comment":"good"}`)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/api/v1/entries/evening", bytes.NewReader(body)))
	require.Equal(t, http.StatusCreated, rr.Code)

	var resp api.SubmitResponse
	require.NoError(t, sonic.ConfigDefault.Unmarshal(rr.Body.Bytes(), &resp))
	assert.False(t, resp.Updated)
	assert.Equal(t, "evening", resp.Entry.EntryType)
	assert.Equal(t, 5, resp.Entry.SatisfactionRating)
	assert.Equal(t, "good", resp.Entry.Comment)
	assert.Zero(t, resp.Entry.EnergyLevel)
}

func TestGetEntries(t *testing.T) {
	mock, handler := newTestServer(t)
	testCases := []struct {
		Desc         string
		Query        string
		Status       int
		Count        int
		MockPrepFunc func()
	}{
		{
			Desc:   "by date",
			Query:  "?date=2024-01-01",
			Status: http.StatusOK,
			Count:  2,
			MockPrepFunc: func() {
				mock.EXPECT().GetEntriesByDate(gomock.Any(), entity.Date("2024-01-01")).
					Return([]*entity.MoodEntry{morningEntry, eveningEntry}, nil)
			},
		},
		{
			Desc:   "by person",
			Query:  "?person=alice",
			Status: http.StatusOK,
			Count:  1,
			MockPrepFunc: func() {
				mock.EXPECT().GetEntriesByPerson(gomock.Any(), "alice").
					Return([]*entity.MoodEntry{morningEntry}, nil)
			},
		},
		{
			Desc:         "malformed date",
			Query:        "?date=01-01-2024",
			Status:       http.StatusBadRequest,
			MockPrepFunc: func() {},
		},
		{
			Desc:         "no filter",
			Query:        "",
			Status:       http.StatusBadRequest,
			MockPrepFunc: func() {},
		},
		{
			Desc:         "both filters",
			Query:        "?date=2024-01-01&person=alice",
			Status:       http.StatusBadRequest,
			MockPrepFunc: func() {},
		},
		{
			Desc:   "store failure",
			Query:  "?person=alice",
			Status: http.StatusBadGateway,
			MockPrepFunc: func() {
				mock.EXPECT().GetEntriesByPerson(gomock.Any(), "alice").
					Return(nil, fmt.Errorf("%w: %w", errorvalues.ErrPersistence, errors.New("down")))
			},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			tc.MockPrepFunc()
			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/v1/entries"+tc.Query, nil))
			require.Equal(t, tc.Status, rr.Code)
			if tc.Status == http.StatusOK {
				var resp api.EntriesResponse
				require.NoError(t, sonic.ConfigDefault.Unmarshal(rr.Body.Bytes(), &resp))
				assert.Len(t, resp.Entries, tc.Count)
			}
		})
	}
}

func TestGetRecentEntries(t *testing.T) {
	mock, handler := newTestServer(t)
	t.Run("explicit limit", func(t *testing.T) {
		mock.EXPECT().GetRecentEntries(gomock.Any(), 5).Return([]*entity.MoodEntry{morningEntry}, nil)
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/v1/entries/recent?limit=5", nil))
		assert.Equal(t, http.StatusOK, rr.Code)
	})
	t.Run("invalid limit falls back to default", func(t *testing.T) {
		mock.EXPECT().GetRecentEntries(gomock.Any(), service.RecentEntriesLimit).Return([]*entity.MoodEntry{}, nil)
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/v1/entries/recent?limit=500", nil))
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `{"entries":[]}`, rr.Body.String())
	})
}

func TestGetDashboard(t *testing.T) {
	mock, handler := newTestServer(t)
	t.Run("success", func(t *testing.T) {
		mock.EXPECT().Dashboard(gomock.Any()).Return(&entity.Dashboard{
			Stats:  entity.DashboardStats{WeeklyAverage: 3.5, TotalEntries: 2, CurrentStreak: 1},
			Recent: []*entity.MoodEntry{morningEntry, eveningEntry},
		}, nil)
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/v1/dashboard", nil))
		require.Equal(t, http.StatusOK, rr.Code)
		var resp api.DashboardResponse
		require.NoError(t, sonic.ConfigDefault.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, 3.5, resp.Stats.WeeklyAverage)
		assert.Equal(t, 2, resp.Stats.TotalEntries)
		assert.Equal(t, 1, resp.Stats.CurrentStreak)
		require.Len(t, resp.Recent, 2)
		assert.Equal(t, "morning", resp.Recent[0].EntryType)
	})
	t.Run("store failure", func(t *testing.T) {
		mock.EXPECT().Dashboard(gomock.Any()).Return(nil, fmt.Errorf("%w: %w", errorvalues.ErrPersistence, errors.New("down")))
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/v1/dashboard", nil))
		assert.Equal(t, http.StatusBadGateway, rr.Code)
	})
}

func TestHealth(t *testing.T) {
	_, handler := newTestServer(t)
	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("X-Request-ID", "req-42")
	handler.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "req-42", rr.Header().Get("X-Request-ID"))
}

func TestSwaggerDoc(t *testing.T) {
	_, handler := newTestServer(t)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/swagger/doc.json", nil))
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"/entries/morning"`)
	assert.Contains(t, rr.Body.String(), `"basePath": "/api/v1"`)
}

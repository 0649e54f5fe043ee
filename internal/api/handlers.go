package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	errorvalues "github.com/limbo/moodboard/internal/error_values"
	"github.com/limbo/moodboard/internal/service"
	"github.com/limbo/moodboard/pkg/entity"
	"github.com/limbo/moodboard/pkg/httputil"
)

const requestTimeout = 10 * time.Second

type MorningRequest struct {
	EmployeeName  string `json:"employee_name"`
	EntryDate     string `json:"entry_date,omitempty"`
	PredictedMood string `json:"predicted_mood"`
	EnergyLevel   int    `json:"energy_level"`
	MoodColor     string `json:"mood_color"`
}

type EveningRequest struct {
	EmployeeName       string `json:"employee_name"`
	EntryDate          string `json:"entry_date,omitempty"`
	ActualFeeling      string `json:"actual_feeling"`
	SatisfactionRating int    `json:"satisfaction_rating"`
	Comment            string `json:"comment,omitempty"`
}

type EntryResponse struct {
	ID                 string    `json:"id"`
	EmployeeName       string    `json:"employee_name"`
	EntryType          string    `json:"entry_type"`
	PredictedMood      string    `json:"predicted_mood,omitempty"`
	EnergyLevel        int       `json:"energy_level,omitempty"`
	MoodColor          string    `json:"mood_color,omitempty"`
	ActualFeeling      string    `json:"actual_feeling,omitempty"`
	SatisfactionRating int       `json:"satisfaction_rating,omitempty"`
	Comment            string    `json:"comment,omitempty"`
	EntryDate          string    `json:"entry_date"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

type SubmitResponse struct {
	Entry   EntryResponse `json:"entry"`
	Updated bool          `json:"updated"`
}

type EntriesResponse struct {
	Entries []EntryResponse `json:"entries"`
}

type DashboardResponse struct {
	Stats  entity.DashboardStats `json:"stats"`
	Recent []EntryResponse       `json:"recent"`
}

func NewEntryResponse(e *entity.MoodEntry) EntryResponse {
	resp := EntryResponse{
		ID:           e.ID,
		EmployeeName: e.PersonName,
		EntryType:    string(e.Type()),
		EntryDate:    e.EntryDate.String(),
		CreatedAt:    e.CreatedAt,
		UpdatedAt:    e.UpdatedAt,
	}
	switch d := e.Details.(type) {
	case entity.MorningDetails:
		resp.PredictedMood = d.PredictedMood
		resp.EnergyLevel = d.EnergyLevel
		resp.MoodColor = d.MoodColor
	case entity.EveningDetails:
		resp.ActualFeeling = d.ActualFeeling
		resp.SatisfactionRating = d.SatisfactionRating
		resp.Comment = d.Comment
	}
	return resp
}

func NewEntriesResponse(entries []*entity.MoodEntry) []EntryResponse {
	result := make([]EntryResponse, 0, len(entries))
	for _, e := range entries {
		result = append(result, NewEntryResponse(e))
	}
	return result
}

func (s *Server) Health(w http.ResponseWriter, r *http.Request) {
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{"status": "ok"})
}

// @Summary Submit or update a morning forecast
// @Tags entries
// @Accept json
// @Produce json
// @Param input body MorningRequest true "morning forecast"
// @Success 201 {object} SubmitResponse
// @Success 200 {object} SubmitResponse
// @Failure 400 {object} httputil.ErrorResponse
// @Failure 502 {object} httputil.ErrorResponse
// @Router /entries/morning [post]
func (s *Server) SubmitMorning(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var req MorningRequest
	if err := httputil.DecodeJSONBody(r, &req); err != nil {
		logger.Error("morning submission error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	res, err := s.entryService.SubmitMorning(ctx, &service.MorningRequest{
		PersonName:    req.EmployeeName,
		EntryDate:     req.EntryDate,
		PredictedMood: req.PredictedMood,
		EnergyLevel:   req.EnergyLevel,
		MoodColor:     req.MoodColor,
	})
	if err != nil {
		writeServiceError(w, logger, "morning submission", err)
		return
	}
	writeSubmitResponse(w, res)
	logger.Info("morning entry saved", slog.String("entry_id", res.Entry.ID), slog.Bool("updated", res.Updated))
}

// @Summary Submit or update an evening check-in
// @Tags entries
// @Accept json
// @Produce json
// @Param input body EveningRequest true "evening check-in"
// @Success 201 {object} SubmitResponse
// @Success 200 {object} SubmitResponse
// @Failure 400 {object} httputil.ErrorResponse
// @Failure 502 {object} httputil.ErrorResponse
// @Router /entries/evening [post]
func (s *Server) SubmitEvening(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var req EveningRequest
	if err := httputil.DecodeJSONBody(r, &req); err != nil {
		logger.Error("evening submission error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	res, err := s.entryService.SubmitEvening(ctx, &service.EveningRequest{
		PersonName:         req.EmployeeName,
		EntryDate:          req.EntryDate,
		ActualFeeling:      req.ActualFeeling,
		SatisfactionRating: req.SatisfactionRating,
		Comment:            req.Comment,
	})
	if err != nil {
		writeServiceError(w, logger, "evening submission", err)
		return
	}
	writeSubmitResponse(w, res)
	logger.Info("evening entry saved", slog.String("entry_id", res.Entry.ID), slog.Bool("updated", res.Updated))
}

// GetEntries filters the collection by ?date= or ?person=, exactly one of them.
//
// @Summary Entries of a day or of a person
// @Tags entries
// @Produce json
// @Param date query string false "day as YYYY-MM-DD"
// @Param person query string false "person name, case-insensitive"
// @Success 200 {object} EntriesResponse
// @Failure 400 {object} httputil.ErrorResponse
// @Failure 502 {object} httputil.ErrorResponse
// @Router /entries [get]
func (s *Server) GetEntries(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	date := r.URL.Query().Get("date")
	person := r.URL.Query().Get("person")
	if (date == "") == (person == "") {
		logger.Error("getting entries error: need exactly one of date or person")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "provide either date or person query parameter", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	var (
		entries []*entity.MoodEntry
		err     error
	)
	if date != "" {
		if !entity.Date(date).Valid() {
			logger.Error("getting entries error: malformed date")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "date must be formatted as YYYY-MM-DD", nil)
			return
		}
		entries, err = s.entryService.GetEntriesByDate(ctx, entity.Date(date))
	} else {
		entries, err = s.entryService.GetEntriesByPerson(ctx, person)
	}
	if err != nil {
		writeServiceError(w, logger, "getting entries", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, EntriesResponse{Entries: NewEntriesResponse(entries)})
	logger.Info("entries provided", slog.Int("count", len(entries)))
}

// @Summary Most recent entries
// @Tags entries
// @Produce json
// @Param limit query int false "1 to 50, defaults to 10"
// @Success 200 {object} EntriesResponse
// @Failure 502 {object} httputil.ErrorResponse
// @Router /entries/recent [get]
func (s *Server) GetRecentEntries(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	limit, err := strconv.Atoi(r.URL.Query().Get("limit"))
	if err != nil || limit < 1 || limit > 50 {
		limit = service.RecentEntriesLimit
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	entries, err := s.entryService.GetRecentEntries(ctx, limit)
	if err != nil {
		writeServiceError(w, logger, "getting recent entries", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, EntriesResponse{Entries: NewEntriesResponse(entries)})
	logger.Info("recent entries provided")
}

// @Summary Dashboard figures and recent entries
// @Tags dashboard
// @Produce json
// @Success 200 {object} DashboardResponse
// @Failure 502 {object} httputil.ErrorResponse
// @Router /dashboard [get]
func (s *Server) GetDashboard(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	dashboard, err := s.entryService.Dashboard(ctx)
	if err != nil {
		writeServiceError(w, logger, "getting dashboard", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, DashboardResponse{
		Stats:  dashboard.Stats,
		Recent: NewEntriesResponse(dashboard.Recent),
	})
	logger.Info("dashboard provided")
}

func writeSubmitResponse(w http.ResponseWriter, res *service.SubmitResult) {
	status := http.StatusCreated
	if res.Updated {
		status = http.StatusOK
	}
	httputil.WriteJSONResponse(w, status, SubmitResponse{
		Entry:   NewEntryResponse(res.Entry),
		Updated: res.Updated,
	})
}

func writeServiceError(w http.ResponseWriter, logger *slog.Logger, op string, err error) {
	switch {
	case errors.Is(err, errorvalues.ErrValidation):
		logger.Error(op+" error: validation failed", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid entry", err)
	case errors.Is(err, errorvalues.ErrPersistence):
		logger.Error(op+" error: store failure", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusBadGateway, "entry store is unavailable", nil)
	default:
		logger.Error(op+" error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error", nil)
	}
}

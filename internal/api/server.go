package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/limbo/moodboard/docs"
	"github.com/limbo/moodboard/internal/service"
)

type Server struct {
	mx           *chi.Mux
	entryService service.MoodEntriesServiceI
}

type ServicesList struct {
	EntryService service.MoodEntriesServiceI
}

func New(servicesOptions *ServicesList) *Server {
	s := &Server{
		mx:           chi.NewMux(),
		entryService: servicesOptions.EntryService,
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	s.mx.Use(s.RequestIDMiddleware, s.SettingUpLoggerMiddleware)
	s.mx.Get("/health", s.Health)
	s.mx.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))
	s.mx.Route("/api/v1", func(r chi.Router) {
		r.Post("/entries/morning", s.SubmitMorning)
		r.Post("/entries/evening", s.SubmitEvening)
		r.Get("/entries", s.GetEntries)
		r.Get("/entries/recent", s.GetRecentEntries)
		r.Get("/dashboard", s.GetDashboard)
	})
}

func (s *Server) Handler() http.Handler {
	return s.mx
}

const shutdownTimeout = 10 * time.Second

// Run serves on addr until ctx is done, then drains in-flight requests.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.mx,
		ReadHeaderTimeout: 5 * time.Second,
	}
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()
	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return errors.New("shutting down server error: " + err.Error())
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/m-mizutani/goerr/v2"

	"github.com/hotelops-lab/upkeep/pkg/domain/types"
	"github.com/hotelops-lab/upkeep/pkg/usecase"
	"github.com/hotelops-lab/upkeep/pkg/utils/errutil"
	"github.com/hotelops-lab/upkeep/pkg/utils/logging"
	"github.com/hotelops-lab/upkeep/pkg/utils/safe"
)

type Server struct {
	router *chi.Mux
	uc     *usecase.UseCases
}

func New(uc *usecase.UseCases) *Server {
	r := chi.NewRouter()

	s := &Server{
		router: r,
		uc:     uc,
	}

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(accessLogger)
	r.Use(middleware.Recoverer)

	r.Route("/api", func(r chi.Router) {
		r.Route("/equipments", func(r chi.Router) {
			r.Post("/", s.createEquipment)
			r.Get("/", s.listEquipments)
			r.Get("/{id}", s.getEquipment)
			r.Patch("/{id}", s.updateEquipment)
			r.Delete("/{id}", s.deleteEquipment)
		})

		r.Route("/incidents", func(r chi.Router) {
			r.Post("/", s.reportIncident)
			r.Get("/", s.listIncidents)
			r.Get("/{id}", s.getIncident)
			r.Post("/{id}/close", s.closeIncident)
		})

		r.Route("/interventions", func(r chi.Router) {
			r.Post("/", s.scheduleIntervention)
			r.Get("/", s.listInterventions)
			r.Get("/{id}", s.getIntervention)
			r.Post("/{id}/start", s.startIntervention)
			r.Post("/{id}/complete", s.completeIntervention)
			r.Post("/{id}/cancel", s.cancelIntervention)
		})
	})

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		safe.Write(r.Context(), w, []byte("OK"))
	})

	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// statusCodeOf maps the error taxonomy to HTTP status codes. Idempotent
// errors never reach this point; handlers treat them as success.
func statusCodeOf(err error) int {
	switch {
	case types.IsValidation(err):
		return http.StatusBadRequest
	case types.IsNotFound(err):
		return http.StatusNotFound
	case types.IsConflict(err):
		return http.StatusConflict
	case types.IsInvalidTransition(err):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

// handleError writes the error response, except for idempotent results
// which are reported as success with a flag
func (s *Server) handleError(w http.ResponseWriter, r *http.Request, err error, body any) bool {
	if err == nil {
		return false
	}
	if types.IsIdempotent(err) {
		logging.From(r.Context()).Info("idempotent operation re-applied", "error", err.Error())
		s.writeJSON(w, r, http.StatusOK, map[string]any{
			"result":          body,
			"already_applied": true,
		})
		return true
	}
	errutil.HandleHTTP(r.Context(), w, err, statusCodeOf(err))
	return true
}

func (s *Server) writeJSON(w http.ResponseWriter, r *http.Request, status int, body any) {
	data, err := json.Marshal(body)
	if err != nil {
		errutil.HandleHTTP(r.Context(), w, goerr.Wrap(err, "failed to marshal response"), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	safe.Write(r.Context(), w, data)
}

func decodeJSON(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return goerr.Wrap(err, "invalid request body", goerr.T(types.TagValidation))
	}
	return nil
}

// accessLogger is a middleware that logs HTTP requests
func accessLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		defer func() {
			logging.Default().Info("access",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"bytes", ww.BytesWritten(),
				"duration", time.Since(start),
				"remote", r.RemoteAddr,
				"user_agent", r.UserAgent(),
			)
		}()

		next.ServeHTTP(ww, r)
	})
}

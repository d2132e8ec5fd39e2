package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/matzehuels/tableaxis/pkg/buildinfo"
	apperr "github.com/matzehuels/tableaxis/pkg/errors"
	docio "github.com/matzehuels/tableaxis/pkg/io"
	"github.com/matzehuels/tableaxis/pkg/observability"
	"github.com/matzehuels/tableaxis/pkg/pipeline"
	"github.com/matzehuels/tableaxis/pkg/table"
)

// DefaultMaxBodyBytes caps the size of a request body.
const DefaultMaxBodyBytes = 8 << 20

// Server serves the HTTP API.
type Server struct {
	Runner       *pipeline.Runner
	Logger       *log.Logger
	MaxBodyBytes int64
}

// NewServer creates a server. If logger is nil, the default logger is used.
func NewServer(runner *pipeline.Runner, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.Default()
	}
	if runner == nil {
		runner = pipeline.NewRunner(nil, logger)
	}
	return &Server{Runner: runner, Logger: logger, MaxBodyBytes: DefaultMaxBodyBytes}
}

// Handler returns the router serving all endpoints.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(s.logRequests)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Route("/v1", func(r chi.Router) {
		r.Get("/version", func(w http.ResponseWriter, _ *http.Request) {
			writeJSON(w, http.StatusOK, buildinfo.Get())
		})
		r.Post("/switch", s.handleSwitch)
		r.Post("/inspect", s.handleInspect)
	})
	return r
}

func (s *Server) handleSwitch(w http.ResponseWriter, r *http.Request) {
	req, ok := s.decode(w, r)
	if !ok {
		return
	}
	doc, err := docio.Unmarshal(req.Document, docio.FormatJSON)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	res, err := s.Runner.Switch(r.Context(), doc, pipeline.Options{
		Select: req.Select,
		Name:   req.Name,
		DryRun: req.DryRun,
		Logger: s.Logger.With("request_id", middleware.GetReqID(r.Context())),
	})
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	data, err := docio.Marshal(doc, docio.FormatJSON)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, SwitchResponse{
		Status:   res.Status,
		From:     res.From.String(),
		To:       res.To.String(),
		TableID:  res.Table.ID,
		Rows:     res.Stats.Rows,
		Cols:     res.Stats.Cols,
		Overlays: res.Stats.Overlays,
		Document: bytes.TrimSpace(data),
	})
}

func (s *Server) handleInspect(w http.ResponseWriter, r *http.Request) {
	req, ok := s.decode(w, r)
	if !ok {
		return
	}
	doc, err := docio.Unmarshal(req.Document, docio.FormatJSON)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	ex, err := s.Runner.Inspect(r.Context(), doc, pipeline.Options{Select: req.Select})
	if ex == nil {
		s.writeError(w, r, err)
		return
	}
	resp := Describe(ex)
	if err != nil {
		resp.Problem = apperr.UserMessage(err)
	}
	resp.Switchable = err == nil
	writeJSON(w, http.StatusOK, resp)
}

// Describe summarizes an extracted table.
func Describe(ex *table.Extraction) InspectResponse {
	m := ex.Matrix
	resp := InspectResponse{
		Axis:  ex.Axis().String(),
		Rows:  m.RowCount(),
		Cols:  m.MaxCols,
		Cells: make([][]string, m.RowCount()),
	}
	for r := range m.Rows {
		resp.Cells[r] = make([]string, m.MaxCols)
		for c := range resp.Cells[r] {
			if s := m.At(r, c); s != nil {
				resp.Cells[r][c] = s.Cell.Name
			}
		}
	}
	for _, o := range ex.Overlays {
		resp.Overlays = append(resp.Overlays, o.Node.Name)
	}
	return resp
}

func (s *Server) decode(w http.ResponseWriter, r *http.Request) (SwitchRequest, bool) {
	var req SwitchRequest
	body := http.MaxBytesReader(w, r.Body, s.MaxBodyBytes)
	if err := json.NewDecoder(body).Decode(&req); err != nil {
		s.writeError(w, r, apperr.Wrap(apperr.ErrCodeInvalidInput, err, "invalid request body"))
		return req, false
	}
	if len(bytes.TrimSpace(req.Document)) == 0 {
		s.writeError(w, r, apperr.New(apperr.ErrCodeInvalidInput, "document is required"))
		return req, false
	}
	return req, true
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	code := apperr.GetCode(err)
	status := httpStatus(err)
	if status >= http.StatusInternalServerError {
		s.Logger.Error("request failed", "path", r.URL.Path, "err", err)
	}
	writeJSON(w, status, ErrorResponse{
		Status: table.Status(table.AxisNone, err),
		Code:   string(code),
		Error:  apperr.UserMessage(err),
	})
}

// httpStatus maps an error to its HTTP status code.
func httpStatus(err error) int {
	if apperr.IsValidation(err) {
		return http.StatusUnprocessableEntity
	}
	switch apperr.GetCode(err) {
	case apperr.ErrCodeInvalidInput, apperr.ErrCodeInvalidFormat:
		return http.StatusBadRequest
	case apperr.ErrCodeNotFound:
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		hooks := observability.HTTP()
		hooks.OnRequest(r.Context(), r.Method, r.URL.Path)

		next.ServeHTTP(ww, r)

		elapsed := time.Since(start)
		hooks.OnResponse(r.Context(), r.Method, r.URL.Path, ww.Status(), elapsed)
		s.Logger.Debug("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"duration", elapsed,
			"request_id", middleware.GetReqID(r.Context()))
	})
}

package api

import (
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/PeterMinin/grid-strategy/pkg/buildinfo"
	"github.com/PeterMinin/grid-strategy/pkg/errors"
	"github.com/PeterMinin/grid-strategy/pkg/pipeline"
	"github.com/PeterMinin/grid-strategy/pkg/render"
)

// errorResponse is the body of every failed request.
type errorResponse struct {
	Code    errors.Code `json:"code"`
	Message string      `json:"message"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleVersion(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, buildinfo.Get())
}

func (s *Server) handleLayout(w http.ResponseWriter, r *http.Request) {
	opts, err := s.options(r.URL.Query())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	layout, err := s.runner.Layout(r.Context(), opts)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, layout)
}

func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	format, err := render.ParseFormat(chi.URLParam(r, "format"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	opts, err := s.options(r.URL.Query())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	opts.Formats = []string{string(format)}

	result, err := s.runner.Execute(r.Context(), opts)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", format.ContentType())
	if format == render.FormatXLSX || format == render.FormatPDF {
		w.Header().Set("Content-Disposition", `attachment; filename="grid`+format.Ext()+`"`)
	}
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(result.Artifacts[string(format)])
}

// options builds pipeline options from query parameters, falling back to
// the server's configured defaults.
func (s *Server) options(q url.Values) (pipeline.Options, error) {
	raw := q.Get("n")
	if raw == "" {
		return pipeline.Options{}, errors.New(errors.ErrCodeInvalidArgument, "query parameter n is required")
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return pipeline.Options{}, errors.New(errors.ErrCodeInvalidArgument, "n must be an integer, got %q", raw)
	}

	opts := s.defaults.Options(n)
	if v := q.Get("align"); v != "" {
		opts.Alignment = v
	}
	if v := q.Get("style"); v != "" {
		opts.Style = v
	}
	if v := q.Get("engine"); v != "" {
		opts.Engine = v
	}
	opts.Title = q.Get("title")
	if v := q.Get("labels"); v != "" {
		opts.Labels = strings.Split(v, ",")
	}
	if opts.Width, err = floatParam(q, "width", opts.Width); err != nil {
		return pipeline.Options{}, err
	}
	if opts.Height, err = floatParam(q, "height", opts.Height); err != nil {
		return pipeline.Options{}, err
	}
	return opts, nil
}

func floatParam(q url.Values, name string, fallback float64) (float64, error) {
	raw := q.Get(name)
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, errors.New(errors.ErrCodeInvalidArgument, "%s must be a number, got %q", name, raw)
	}
	return v, nil
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusInternalServerError
	code := errors.GetCode(err)
	if errors.IsInvalid(err) {
		status = http.StatusBadRequest
	}
	if code == "" {
		code = errors.ErrCodeInternal
	}

	msg := errors.UserMessage(err)
	if status == http.StatusInternalServerError {
		s.logger.Error("request failed", "err", err, "request_id", RequestIDFromContext(r.Context()))
	}
	writeJSON(w, status, errorResponse{Code: code, Message: msg})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

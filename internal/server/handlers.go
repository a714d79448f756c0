package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/menta2k/viewfinder"
	"github.com/menta2k/viewfinder/pkg/framing"
	"github.com/menta2k/viewfinder/pkg/scaling"
	"github.com/menta2k/viewfinder/pkg/types"
)

const maxBodyBytes = 1 << 20

// errBadRequest marks decoding and validation failures
var errBadRequest = errors.New("bad request")

// healthHandler returns server health status.
func (s *Server) healthHandler(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, HealthResponse{
		Status:  "healthy",
		Version: viewfinder.GetVersion(),
		Time:    time.Now().UTC().Format(time.RFC3339),
	})
}

func (s *Server) strategiesHandler(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, StrategiesResponse{
		Strategies: scaling.Names(),
		Default:    s.display.StrategyName(),
	})
}

// bestHandler selects the best preview size for the request's target.
func (s *Server) bestHandler(w http.ResponseWriter, r *http.Request) {
	var req BestRequest
	if err := decode(w, r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}

	vf, err := s.viewfinderFor(req.Target, nil)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	sizes, err := s.sizesFor(req.Sizes)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	best, err := vf.BestPreviewSize(sizes)
	if err != nil {
		s.writeError(w, r, fmt.Errorf("%w: %w", errBadRequest, err))
		return
	}
	score := s.recordSelection(vf, best)

	s.writeJSON(w, http.StatusOK, BestResponse{
		Strategy:   vf.Display().StrategyName(),
		Best:       best,
		Score:      score,
		Candidates: vf.Rank(sizes),
	})
}

// placeHandler places a preview, given in display orientation, in the viewfinder.
func (s *Server) placeHandler(w http.ResponseWriter, r *http.Request) {
	var req PlaceRequest
	if err := decode(w, r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}

	vf, err := s.viewfinderFor(Target{Strategy: req.Strategy, Viewfinder: req.Viewfinder}, nil)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	preview, err := parseSize("preview", req.Preview)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	s.writeJSON(w, http.StatusOK, PlaceResponse{
		Strategy:   vf.Display().StrategyName(),
		Viewfinder: vf.Display().Viewfinder,
		Preview:    preview,
		Rect:       vf.ScalePreview(preview),
	})
}

// layoutHandler computes placement and framing for an explicit preview or
// for the best of the candidate sizes.
func (s *Server) layoutHandler(w http.ResponseWriter, r *http.Request) {
	var req LayoutRequest
	if err := decode(w, r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}

	vf, err := s.viewfinderFor(req.Target, req.Framing)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	var natural types.Size
	if req.Preview != "" {
		if natural, err = parseSize("preview", req.Preview); err != nil {
			s.writeError(w, r, err)
			return
		}
	} else {
		sizes, err := s.sizesFor(req.Sizes)
		if err != nil {
			s.writeError(w, r, err)
			return
		}
		if natural, err = vf.BestPreviewSize(sizes); err != nil {
			s.writeError(w, r, fmt.Errorf("%w: %w", errBadRequest, err))
			return
		}
		s.recordSelection(vf, natural)
	}

	layout, err := vf.Layout(natural)
	if err != nil {
		s.metrics.layoutFailures.WithLabelValues(vf.Display().StrategyName()).Inc()
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, layout)
}

// viewfinderFor applies the request's overrides to the configured display
func (s *Server) viewfinderFor(t Target, fr *FramingRequest) (*viewfinder.Viewfinder, error) {
	dc := s.display
	if t.Strategy != "" {
		strategy, err := scaling.Parse(t.Strategy)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", errBadRequest, err)
		}
		dc.Strategy = strategy
	}
	if t.Viewfinder != "" {
		size, err := parseSize("viewfinder", t.Viewfinder)
		if err != nil {
			return nil, err
		}
		dc.Viewfinder = size
	}
	if err := dc.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", errBadRequest, err)
	}

	opts := s.framing
	if fr != nil {
		opts = framing.Options{
			Size:           types.NewSize(fr.Width, fr.Height),
			EdgeFraction:   fr.EdgeFraction,
			MarginFraction: fr.MarginFraction,
		}
		if err := opts.Validate(); err != nil {
			return nil, fmt.Errorf("%w: %w", errBadRequest, err)
		}
	}

	vf := viewfinder.New(dc, opts)
	vf.SetCameraRotation(s.rotation)
	if t.CameraRotation != nil {
		vf.SetCameraRotation(*t.CameraRotation)
	}
	return vf, nil
}

func (s *Server) sizesFor(values []string) ([]types.Size, error) {
	if len(values) == 0 {
		return s.sizes, nil
	}
	sizes, err := types.ParseSizes(values)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errBadRequest, err)
	}
	return sizes, nil
}

func (s *Server) recordSelection(vf *viewfinder.Viewfinder, best types.Size) float64 {
	name := vf.Display().StrategyName()
	score := vf.Score(best)
	s.metrics.selectionsTotal.WithLabelValues(name).Inc()
	s.metrics.selectedScore.WithLabelValues(name).Observe(score)
	return score
}

func parseSize(field, v string) (types.Size, error) {
	size, err := types.ParseSize(v)
	if err != nil {
		return types.Size{}, fmt.Errorf("%w: %s: %w", errBadRequest, field, err)
	}
	if !size.Valid() {
		return types.Size{}, fmt.Errorf("%w: %s: %w: %s", errBadRequest, field, types.ErrInvalidSize, size)
	}
	return size, nil
}

func decode(w http.ResponseWriter, r *http.Request, v any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("%w: invalid JSON body: %w", errBadRequest, err)
	}
	return nil
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, errBadRequest):
		return http.StatusBadRequest
	case errors.Is(err, framing.ErrFrameTooSmall), errors.Is(err, framing.ErrNoSurface):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	if status >= http.StatusInternalServerError {
		slog.Error("request failed", "request_id", RequestID(r.Context()), "error", err)
	}
	s.writeJSON(w, status, ErrorResponse{Error: err.Error(), RequestID: RequestID(r.Context())})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("Failed to encode response", "error", err)
	}
}

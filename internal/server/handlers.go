package server

import (
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"

	"github.com/EvapeGT/NetCom/pkg/bitstream"
	"github.com/EvapeGT/NetCom/pkg/buildinfo"
	"github.com/EvapeGT/NetCom/pkg/cache"
	"github.com/EvapeGT/NetCom/pkg/errors"
	"github.com/EvapeGT/NetCom/pkg/linecode"
	"github.com/EvapeGT/NetCom/pkg/pipeline"
	"github.com/EvapeGT/NetCom/pkg/render/statediag"
)

// maxBodyBytes bounds POST request bodies.
const maxBodyBytes = 1 << 20

type schemeInfo struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Alternating bool   `json:"alternating"`
}

type schemesResponse struct {
	Schemes []schemeInfo `json:"schemes"`
}

type encodeRequest struct {
	Text string `json:"text,omitempty"`
	Bits string `json:"bits,omitempty"`
}

type encodeResponse struct {
	Bits     string `json:"bits"`
	BitCount int    `json:"bit_count"`
	Hash     string `json:"hash"`
}

type waveformRequest struct {
	Text     string `json:"text,omitempty"`
	Bits     string `json:"bits,omitempty"`
	Scheme   string `json:"scheme"`
	Polarity int    `json:"polarity,omitempty"`
	Refresh  bool   `json:"refresh,omitempty"`
}

type waveformResponse struct {
	Scheme      string          `json:"scheme"`
	Bits        string          `json:"bits"`
	BitCount    int             `json:"bit_count"`
	VertexCount int             `json:"vertex_count"`
	Hash        string          `json:"hash"`
	Cache       cacheInfo       `json:"cache"`
	Waveform    json.RawMessage `json:"waveform"`
}

type cacheInfo struct {
	WaveHit   bool `json:"wave_hit"`
	RenderHit bool `json:"render_hit"`
}

type versionResponse struct {
	Version string `json:"version"`
	Commit  string `json:"commit"`
	Built   string `json:"built"`
}

type errorResponse struct {
	Error errorBody `json:"error"`
}

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (s *Server) handleSchemes(w http.ResponseWriter, r *http.Request) {
	all := linecode.Schemes()
	out := schemesResponse{Schemes: make([]schemeInfo, len(all))}
	for i, sc := range all {
		out.Schemes[i] = schemeInfo{
			ID:          string(sc),
			Name:        sc.Name(),
			Description: sc.Description(),
			Alternating: sc.Alternating(),
		}
	}
	s.writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleEncode(w http.ResponseWriter, r *http.Request) {
	var req encodeRequest
	if err := decodeBody(w, r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}

	bits, err := s.runner.Encode(pipeline.Options{Text: req.Text, Bits: req.Bits})
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	s.writeJSON(w, http.StatusOK, encodeResponse{
		Bits:     bits.Grouped(bitstream.BitsPerChar),
		BitCount: len(bits),
		Hash:     cache.Hash([]byte(bits.String())),
	})
}

func (s *Server) handleWaveform(w http.ResponseWriter, r *http.Request) {
	var req waveformRequest
	if err := decodeBody(w, r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}

	opts := pipeline.Options{
		Text:     req.Text,
		Bits:     req.Bits,
		Scheme:   req.Scheme,
		Polarity: req.Polarity,
		Refresh:  req.Refresh,
		Formats:  []string{pipeline.FormatJSON},
	}
	result, err := s.runner.Execute(r.Context(), opts)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	s.writeJSON(w, http.StatusOK, waveformResponse{
		Scheme:      result.Waveform.Scheme,
		Bits:        result.Bits.Grouped(bitstream.BitsPerChar),
		BitCount:    result.Stats.BitCount,
		VertexCount: result.Stats.VertexCount,
		Hash:        result.BitsHash,
		Cache: cacheInfo{
			WaveHit:   result.CacheInfo.WaveHit,
			RenderHit: result.CacheInfo.RenderHit,
		},
		Waveform: json.RawMessage(result.Artifacts[pipeline.FormatJSON]),
	})
}

// handleWaveformImage serves a single rendered artifact for GET requests.
// Responses are cached under the canonical query string so identical
// requests are served without re-running the pipeline.
func (s *Server) handleWaveformImage(format string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		opts, err := optionsFromQuery(r, format)
		if err != nil {
			s.writeError(w, r, err)
			return
		}

		httpKey := s.runner.Keyer.HTTPKey(r.URL.Path, r.URL.Query().Encode())
		if data, hit, err := s.runner.Cache.Get(r.Context(), httpKey); err == nil && hit {
			s.serveArtifact(w, r, format, data, "HIT")
			return
		}

		result, err := s.runner.Execute(r.Context(), opts)
		if err != nil {
			s.writeError(w, r, err)
			return
		}

		data := result.Artifacts[format]
		_ = s.runner.Cache.Set(r.Context(), httpKey, data, cache.TTLHTTP)
		s.serveArtifact(w, r, format, data, "MISS")
	}
}

func (s *Server) handleDiagram(w http.ResponseWriter, r *http.Request) {
	scheme, err := linecode.ParseScheme(r.URL.Query().Get("scheme"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	desc, err := boolParam(r.URL.Query(), "description", false)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	httpKey := s.runner.Keyer.HTTPKey(r.URL.Path, r.URL.Query().Encode())
	if data, hit, err := s.runner.Cache.Get(r.Context(), httpKey); err == nil && hit {
		s.serveArtifact(w, r, pipeline.FormatSVG, data, "HIT")
		return
	}

	dot, err := statediag.ToDOT(scheme, statediag.Options{Description: desc})
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	data, err := statediag.RenderSVG(dot)
	if err != nil {
		s.writeError(w, r, errors.Wrap(errors.ErrCodeInternal, err, "render diagram"))
		return
	}

	_ = s.runner.Cache.Set(r.Context(), httpKey, data, cache.TTLHTTP)
	s.serveArtifact(w, r, pipeline.FormatSVG, data, "MISS")
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleVersion(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, versionResponse{
		Version: buildinfo.Version,
		Commit:  buildinfo.Commit,
		Built:   buildinfo.Date,
	})
}

// serveArtifact writes rendered bytes with a strong ETag so browsers and
// proxies can revalidate cheaply.
func (s *Server) serveArtifact(w http.ResponseWriter, r *http.Request, format string, data []byte, cacheState string) {
	etag := `"` + cache.Hash(data)[:32] + `"`
	w.Header().Set("ETag", etag)
	w.Header().Set("X-Cache", cacheState)
	w.Header().Set("Cache-Control", "public, max-age=300")
	if r.Header.Get("If-None-Match") == etag {
		w.WriteHeader(http.StatusNotModified)
		return
	}
	w.Header().Set("Content-Type", contentTypeFor(format))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

func contentTypeFor(format string) string {
	switch format {
	case pipeline.FormatSVG:
		return "image/svg+xml; charset=utf-8"
	case pipeline.FormatPNG:
		return "image/png"
	case pipeline.FormatText:
		return "text/plain; charset=utf-8"
	default:
		return "application/octet-stream"
	}
}

// optionsFromQuery maps image endpoint query parameters onto pipeline
// options. Decorations default to on for served images; clients opt out
// with grid=false etc.
func optionsFromQuery(r *http.Request, format string) (pipeline.Options, error) {
	q := r.URL.Query()
	opts := pipeline.Options{
		Text:    q.Get("text"),
		Bits:    q.Get("bits"),
		Scheme:  q.Get("scheme"),
		Formats: []string{format},
		Theme:   q.Get("theme"),
		Title:   q.Get("title"),
	}

	var err error
	if opts.Grid, err = boolParam(q, "grid", true); err != nil {
		return opts, err
	}
	if opts.BitLabels, err = boolParam(q, "bit_labels", true); err != nil {
		return opts, err
	}
	if opts.RailLabels, err = boolParam(q, "rail_labels", true); err != nil {
		return opts, err
	}

	if v := q.Get("polarity"); v != "" {
		p, err := strconv.Atoi(v)
		if err != nil {
			return opts, errors.New(errors.ErrCodeInvalidPolarity, "polarity must be an integer, got %q", v)
		}
		opts.Polarity = p
	}
	if v := q.Get("zoom"); v != "" {
		z, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return opts, errors.New(errors.ErrCodeInvalidInput, "zoom must be a number, got %q", v)
		}
		opts.Zoom = z
	}
	if v := q.Get("cells"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return opts, errors.New(errors.ErrCodeInvalidInput, "cells must be an integer, got %q", v)
		}
		opts.CellsPerBit = n
	}
	return opts, nil
}

func boolParam(q url.Values, name string, def bool) (bool, error) {
	v := q.Get(name)
	if v == "" {
		return def, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def, errors.New(errors.ErrCodeInvalidInput, "%s must be a boolean, got %q", name, v)
	}
	return b, nil
}

func decodeBody(w http.ResponseWriter, r *http.Request, v any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidFormat, err, "invalid JSON body")
	}
	return nil
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("encode response", "error", err)
	}
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	code := errors.GetCode(err)
	if code == "" {
		code = errors.ErrCodeInternal
	}
	status := statusForCode(code)
	if status >= http.StatusInternalServerError {
		s.logger.Error("request failed",
			"path", r.URL.Path,
			"error", err,
			"request_id", RequestID(r.Context()))
	}
	s.writeJSON(w, status, errorResponse{Error: errorBody{
		Code:    string(code),
		Message: errors.UserMessage(err),
	}})
}

// statusForCode maps pipeline error codes onto HTTP status codes.
func statusForCode(code errors.Code) int {
	switch code {
	case errors.ErrCodeInvalidInput, errors.ErrCodeInvalidFormat, errors.ErrCodeInvalidTheme,
		errors.ErrCodeInvalidPolarity, errors.ErrCodeInvalidConfig,
		errors.ErrCodeUnsupportedScheme, errors.ErrCodeUnsupportedCodePoint:
		return http.StatusBadRequest
	case errors.ErrCodeNotFound, errors.ErrCodeFileNotFound:
		return http.StatusNotFound
	case errors.ErrCodeTimeout:
		return http.StatusGatewayTimeout
	case errors.ErrCodeUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

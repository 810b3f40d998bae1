package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/segmentio/ksuid"
	"go.uber.org/zap"

	"github.com/rlepack/rlepack/pkg/codec"
	"github.com/rlepack/rlepack/pkg/storage"
)

// Version is the release version reported by the stats endpoint
const Version = "0.1.0"

// Server holds the API server state
type Server struct {
	store     ArtifactStore
	config    ServerConfig
	metrics   *Metrics
	logger    *zap.Logger
	startTime time.Time
}

// NewServer creates a new API server
func NewServer(store ArtifactStore, config ServerConfig, metrics *Metrics, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Server{
		store:     store,
		config:    config,
		metrics:   metrics,
		logger:    logger,
		startTime: time.Now(),
	}
}

// handleHealth reports liveness
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if s.metrics != nil {
		s.metrics.RecordHealthCheck(true)
	}
	sendSuccess(w, map[string]string{"status": "healthy"})
}

// handleEncode run-length encodes the raw request body and returns the
// run-code bytes as an octet stream
func (s *Server) handleEncode(w http.ResponseWriter, r *http.Request) {
	body, ok := s.readBody(w, r)
	if !ok {
		return
	}

	encoded := codec.Encode(body)
	if s.metrics != nil {
		s.metrics.RecordCodecOperation("encode", true, len(body), len(encoded))
	}

	w.Header().Set("Content-Type", "application/octet-stream")
	if _, err := w.Write(encoded); err != nil {
		s.logger.Warn("failed to write encode response", zap.Error(err))
	}
}

// handleDecode expands a run-code request body back to raw bytes
func (s *Server) handleDecode(w http.ResponseWriter, r *http.Request) {
	body, ok := s.readBody(w, r)
	if !ok {
		return
	}

	decoded, err := codec.Decode(body)
	if err != nil {
		if s.metrics != nil {
			s.metrics.RecordCodecOperation("decode", false, len(body), 0)
		}
		sendError(w, err.Error(), http.StatusBadRequest)
		return
	}
	if s.metrics != nil {
		s.metrics.RecordCodecOperation("decode", true, len(body), len(decoded))
	}

	w.Header().Set("Content-Type", "application/octet-stream")
	if _, err := w.Write(decoded); err != nil {
		s.logger.Warn("failed to write decode response", zap.Error(err))
	}
}

// handleTextEncode implements the text mode: the input text is run-length
// encoded and returned as a hex string
func (s *Server) handleTextEncode(w http.ResponseWriter, r *http.Request) {
	var req TextEncodeRequest
	if !s.readJSON(w, r, &req) {
		return
	}

	encoded := codec.Encode([]byte(req.Text))
	if s.metrics != nil {
		s.metrics.RecordCodecOperation("encode", true, len(req.Text), len(encoded))
	}

	sendSuccess(w, TextEncodeResponse{Hex: codec.BytesToHex(encoded)})
}

// handleTextDecode implements the inverse text mode: a hex run-code string
// is parsed and expanded back to text
func (s *Server) handleTextDecode(w http.ResponseWriter, r *http.Request) {
	var req TextDecodeRequest
	if !s.readJSON(w, r, &req) {
		return
	}

	encoded, err := codec.HexToBytes(req.Hex)
	if err != nil {
		sendError(w, err.Error(), http.StatusBadRequest)
		return
	}

	decoded, err := codec.Decode(encoded)
	if err != nil {
		if s.metrics != nil {
			s.metrics.RecordCodecOperation("decode", false, len(encoded), 0)
		}
		sendError(w, err.Error(), http.StatusBadRequest)
		return
	}
	if s.metrics != nil {
		s.metrics.RecordCodecOperation("decode", true, len(encoded), len(decoded))
	}

	sendSuccess(w, TextDecodeResponse{Text: string(decoded)})
}

// handleArtifactCreate encodes the request body, persists the run-code and
// returns the artifact id as a receipt
func (s *Server) handleArtifactCreate(w http.ResponseWriter, r *http.Request) {
	body, ok := s.readBody(w, r)
	if !ok {
		return
	}

	encoded := codec.Encode(body)
	id, err := s.store.Put(encoded)
	if err != nil {
		if s.metrics != nil {
			s.metrics.RecordArtifactOperation("create", false)
		}
		s.logger.Error("failed to store artifact", zap.Error(err))
		sendError(w, "Failed to store artifact", http.StatusInternalServerError)
		return
	}
	if s.metrics != nil {
		s.metrics.RecordCodecOperation("encode", true, len(body), len(encoded))
		s.metrics.RecordArtifactOperation("create", true)
		s.updateArtifactGauge()
	}

	sendSuccess(w, ArtifactCreated{
		ID:           id.String(),
		RawBytes:     len(body),
		EncodedBytes: len(encoded),
	})
}

// handleArtifactGet returns a stored artifact, decoded when ?decode=true
func (s *Server) handleArtifactGet(w http.ResponseWriter, r *http.Request) {
	id, ok := s.artifactID(w, r)
	if !ok {
		return
	}

	data, err := s.store.Get(id)
	if err != nil {
		if s.metrics != nil {
			s.metrics.RecordArtifactOperation("get", false)
		}
		if errors.Is(err, storage.ErrArtifactNotFound) {
			sendError(w, fmt.Sprintf("Artifact %s not found", id), http.StatusNotFound)
			return
		}
		s.logger.Error("failed to read artifact", zap.String("id", id.String()), zap.Error(err))
		sendError(w, "Failed to read artifact", http.StatusInternalServerError)
		return
	}

	if r.URL.Query().Get("decode") == "true" {
		decoded, err := codec.Decode(data)
		if err != nil {
			// A stored artifact should always be well formed
			if s.metrics != nil {
				s.metrics.RecordArtifactOperation("get", false)
			}
			s.logger.Error("stored artifact is malformed", zap.String("id", id.String()), zap.Error(err))
			sendError(w, "Stored artifact is malformed", http.StatusInternalServerError)
			return
		}
		data = decoded
	}

	if s.metrics != nil {
		s.metrics.RecordArtifactOperation("get", true)
	}

	w.Header().Set("Content-Type", "application/octet-stream")
	if _, err := w.Write(data); err != nil {
		s.logger.Warn("failed to write artifact response", zap.Error(err))
	}
}

// handleArtifactDelete removes a stored artifact
func (s *Server) handleArtifactDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := s.artifactID(w, r)
	if !ok {
		return
	}

	if err := s.store.Delete(id); err != nil {
		if s.metrics != nil {
			s.metrics.RecordArtifactOperation("delete", false)
		}
		s.logger.Error("failed to delete artifact", zap.String("id", id.String()), zap.Error(err))
		sendError(w, "Failed to delete artifact", http.StatusInternalServerError)
		return
	}
	if s.metrics != nil {
		s.metrics.RecordArtifactOperation("delete", true)
		s.updateArtifactGauge()
	}

	sendSuccess(w, map[string]string{"deleted": id.String()})
}

// handleStats reports service statistics
func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	count, err := s.store.Count()
	if err != nil {
		s.logger.Error("failed to count artifacts", zap.Error(err))
		sendError(w, "Failed to gather stats", http.StatusInternalServerError)
		return
	}

	sendSuccess(w, StatsResponse{
		Artifacts:     count,
		UptimeSeconds: int64(time.Since(s.startTime).Seconds()),
		Version:       Version,
	})
}

// readBody reads the raw request body, bounded by the configured limit.
// On failure it writes the error response and returns false.
func (s *Server) readBody(w http.ResponseWriter, r *http.Request) ([]byte, bool) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, s.config.maxBodyBytes()))
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			sendError(w, fmt.Sprintf("Request body exceeds %d bytes", maxErr.Limit), http.StatusRequestEntityTooLarge)
			return nil, false
		}
		sendError(w, "Failed to read request body", http.StatusBadRequest)
		return nil, false
	}
	return body, true
}

// readJSON decodes a JSON request body into dst
func (s *Server) readJSON(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	body, ok := s.readBody(w, r)
	if !ok {
		return false
	}
	if err := json.Unmarshal(body, dst); err != nil {
		sendError(w, "Invalid JSON in request body", http.StatusBadRequest)
		return false
	}
	return true
}

// artifactID parses the id path parameter
func (s *Server) artifactID(w http.ResponseWriter, r *http.Request) (ksuid.KSUID, bool) {
	raw := chi.URLParam(r, "id")
	id, err := ksuid.Parse(raw)
	if err != nil {
		sendError(w, fmt.Sprintf("Invalid artifact id %q", raw), http.StatusBadRequest)
		return ksuid.Nil, false
	}
	return id, true
}

func (s *Server) updateArtifactGauge() {
	if count, err := s.store.Count(); err == nil {
		s.metrics.UpdateArtifactCount(count)
	}
}

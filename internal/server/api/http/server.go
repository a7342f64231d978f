// Package http exposes the engine over a single JSON operation,
// POST /v1/deals:process. Grounded on the teacher's internal/rpc/server.go
// ServeHTTP (CORS headers matching rippled, POST dispatch) and
// internal/server/api/jsonrpc (a thin http.Handler wrapping one domain
// handler). The idempotency cache and request-id correlation are additive,
// exercising hashicorp/golang-lru/v2 and google/uuid per SPEC_FULL.md §1.5.
package http

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"io"
	"net/http"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/google/uuid"

	"github.com/dealsyte/commissions-engine/internal/applog"
	"github.com/dealsyte/commissions-engine/internal/engine"
	"github.com/dealsyte/commissions-engine/internal/engineerr"
	"github.com/dealsyte/commissions-engine/internal/types"
)

// Server handles HTTP requests against the engine.
type Server struct {
	log   *applog.Logger
	cache *lru.Cache[string, cachedResponse]
	ttl   time.Duration
	rates engine.Rates
}

type cachedResponse struct {
	body      []byte
	expiresAt time.Time
}

// New builds a Server with an idempotency cache of the given size
// (spec.md §8 "determinism" promoted to a transport-level optimization,
// SPEC_FULL.md §3.1). A zero or negative size disables the cache. rates is
// resolved once at startup from config.DefaultsConfig (SPEC_FULL.md §1.2)
// and applied to every request this server processes.
func New(log *applog.Logger, cacheSize int, ttl time.Duration, rates engine.Rates) *Server {
	var cache *lru.Cache[string, cachedResponse]
	if cacheSize > 0 {
		cache, _ = lru.New[string, cachedResponse](cacheSize)
	}
	return &Server{log: log, cache: cache, ttl: ttl, rates: rates}
}

type requestBody struct {
	Deal     types.Deal          `json:"deal"`
	Contract types.Contract      `json:"contract"`
	State    types.ContractState `json:"state"`
}

// ServeHTTP implements http.Handler. CORS headers match the teacher's
// rippled-compatible rpc.Server.ServeHTTP.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
	w.Header().Set("Content-Type", "application/json")

	if r.Method == http.MethodOptions {
		w.WriteHeader(http.StatusOK)
		return
	}
	if r.URL.Path != "/v1/deals:process" || r.Method != http.MethodPost {
		http.Error(w, "not found", http.StatusNotFound)
		return
	}

	requestID := uuid.NewString()
	w.Header().Set("X-Request-Id", requestID)

	raw, err := io.ReadAll(r.Body)
	if err != nil {
		s.writeValidationError(w, requestID, "failed to read request body")
		return
	}

	if cached, ok := s.lookupCache(raw); ok {
		w.Write(cached)
		return
	}

	var body requestBody
	if err := json.Unmarshal(raw, &body); err != nil {
		s.log.Debugf("request %s: malformed body", requestID)
		s.writeValidationError(w, requestID, "malformed request body: "+err.Error())
		return
	}

	result, err := engine.Process(engine.Request{Deal: body.Deal, Contract: body.Contract, State: body.State, Rates: &s.rates})
	if err != nil {
		s.respondWithError(w, requestID, err)
		return
	}

	out, err := json.Marshal(result.Response)
	if err != nil {
		s.log.Errorf("request %s: failed to marshal response", requestID)
		s.writeInternalError(w, requestID)
		return
	}

	s.storeCache(raw, out)
	s.log.Infof("request %s: processed deal %q", requestID, body.Deal.DealName)
	w.Write(out)
}

func (s *Server) respondWithError(w http.ResponseWriter, requestID string, err error) {
	if engineerr.IsValidation(err) {
		s.writeValidationError(w, requestID, err.Error())
		return
	}
	s.log.Errorf("request %s: internal failure: %v", requestID, err)
	s.writeInternalError(w, requestID)
}

func (s *Server) writeValidationError(w http.ResponseWriter, requestID, message string) {
	w.WriteHeader(http.StatusBadRequest)
	json.NewEncoder(w).Encode(errorBody{Kind: "validation_failed", Message: message})
}

func (s *Server) writeInternalError(w http.ResponseWriter, requestID string) {
	w.WriteHeader(http.StatusInternalServerError)
	json.NewEncoder(w).Encode(errorBody{Kind: "internal_failed", Message: "internal error processing request " + requestID})
}

type errorBody struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

func (s *Server) lookupCache(raw []byte) ([]byte, bool) {
	if s.cache == nil {
		return nil, false
	}
	key := hashBody(raw)
	entry, ok := s.cache.Get(key)
	if !ok || time.Now().After(entry.expiresAt) {
		return nil, false
	}
	return entry.body, true
}

func (s *Server) storeCache(raw, body []byte) {
	if s.cache == nil {
		return
	}
	s.cache.Add(hashBody(raw), cachedResponse{body: body, expiresAt: time.Now().Add(s.ttl)})
}

func hashBody(raw []byte) string {
	sum := sha256.Sum256(raw)
	return hex.EncodeToString(sum[:])
}

package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/namewastaken/namewastaken/internal/core"
	"github.com/namewastaken/namewastaken/internal/core/engine"
	"github.com/namewastaken/namewastaken/internal/core/provider"
	apperrors "github.com/namewastaken/namewastaken/internal/errors"
)

// CheckHandler serves username availability checks over HTTP.
type CheckHandler struct {
	Engine *engine.Orchestrator

	// CacheEnabled is the server-wide default; requests can opt out but
	// not opt in when the cache is disabled.
	CacheEnabled bool
}

// CheckRequest is the POST body for /api/check.
type CheckRequest struct {
	Username  string   `json:"username,omitempty"`
	Usernames []string `json:"usernames,omitempty"`
	Platforms []string `json:"platforms,omitempty"`
	NoCache   bool     `json:"no_cache,omitempty"`
}

// PlatformInfo describes one supported platform.
type PlatformInfo struct {
	Name        string   `json:"name"`
	DisplayName string   `json:"displayName"`
	Aliases     []string `json:"aliases"`
	URL         string   `json:"urlTemplate"`
}

// CheckGet handles GET /api/check?username=...&platforms=...&no_cache=1
func (h *CheckHandler) CheckGet(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	handle, err := core.ParseHandle(query.Get("username"))
	if err != nil {
		respondWithError(w, r, apperrors.NewValidationError(err.Error()))
		return
	}

	var platforms []string
	if raw := strings.TrimSpace(query.Get("platforms")); raw != "" {
		platforms = strings.Split(raw, ",")
	}

	selected, badName, ok := resolvePlatforms(platforms)
	if !ok {
		respondWithError(w, r, apperrors.NewInvalidInputError("unknown platform: "+badName))
		return
	}

	useCache := h.CacheEnabled && query.Get("no_cache") == ""

	result := h.Engine.CheckProviders(r.Context(), selected, handle, useCache)
	respondJSON(w, result)
}

// CheckPost handles POST /api/check with a single username or a batch.
func (h *CheckHandler) CheckPost(w http.ResponseWriter, r *http.Request) {
	var req CheckRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, r, apperrors.NewInvalidInputError("invalid JSON body"))
		return
	}

	selected, badName, ok := resolvePlatforms(req.Platforms)
	if !ok {
		respondWithError(w, r, apperrors.NewInvalidInputError("unknown platform: "+badName))
		return
	}

	useCache := h.CacheEnabled && !req.NoCache

	if len(req.Usernames) > 0 {
		handles := make([]string, 0, len(req.Usernames))
		for _, raw := range req.Usernames {
			handle, err := core.ParseHandle(raw)
			if err != nil {
				respondWithError(w, r, apperrors.NewValidationError(err.Error()))
				return
			}
			handles = append(handles, handle)
		}

		result := h.Engine.CheckBulkWithProviders(r.Context(), selected, handles, useCache)
		respondJSON(w, result)
		return
	}

	handle, err := core.ParseHandle(req.Username)
	if err != nil {
		respondWithError(w, r, apperrors.NewValidationError(err.Error()))
		return
	}

	result := h.Engine.CheckProviders(r.Context(), selected, handle, useCache)
	respondJSON(w, result)
}

// PlatformsHandler handles GET /api/platforms.
func PlatformsHandler(w http.ResponseWriter, r *http.Request) {
	list := provider.List()
	infos := make([]PlatformInfo, 0, len(list))
	for _, p := range list {
		infos = append(infos, PlatformInfo{
			Name:        p.Name,
			DisplayName: p.DisplayName,
			Aliases:     p.Aliases,
			URL:         p.ProfileURL("{username}"),
		})
	}
	respondJSON(w, infos)
}

// resolvePlatforms maps platform names to providers, defaulting to the
// full registry. The failing name is returned when resolution fails.
func resolvePlatforms(names []string) ([]*provider.Provider, string, bool) {
	if len(names) == 0 {
		return provider.List(), "", true
	}

	selected := make([]*provider.Provider, 0, len(names))
	seen := make(map[string]bool)
	for _, name := range names {
		p, ok := provider.Resolve(name)
		if !ok {
			return nil, strings.TrimSpace(name), false
		}
		if seen[p.Name] {
			continue
		}
		seen[p.Name] = true
		selected = append(selected, p)
	}
	return selected, "", true
}

func respondJSON(w http.ResponseWriter, value any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(value)
}

package handlers

import (
	"net/http"

	"github.com/username/tillboard/backend/src/config"
	"github.com/username/tillboard/backend/src/utils"
)

// HandleDebug reports whether upstream credentials are configured,
// without revealing them. Key material is truncated to a prefix.
func HandleDebug(w http.ResponseWriter, r *http.Request) {
	cfg := config.Cfg

	keyPrefix := "NOT SET"
	if cfg.SumUpAPIKey != "" {
		keyPrefix = cfg.SumUpAPIKey[:utils.MinInt(len(cfg.SumUpAPIKey), 15)] + "..."
	}

	baseURL := cfg.SumUpBaseURL
	if cfg.Provider == "goodtill" {
		baseURL = cfg.GoodTillBaseURL
	}

	utils.WriteJSON(w, map[string]any{
		"provider":       cfg.Provider,
		"api_key_set":    cfg.SumUpAPIKey != "",
		"api_key_prefix": keyPrefix,
		"base_url":       baseURL,
	})
}

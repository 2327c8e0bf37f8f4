package handlers

import (
	"fmt"
	"net/url"
	"strconv"

	appplayers "nba-fantasy-service/internal/app/players"
	domainplayers "nba-fantasy-service/internal/domain/players"
	"nba-fantasy-service/internal/stats"
)

func queryInt(query url.Values, key string, fallback int) int {
	raw := query.Get(key)
	if raw == "" {
		return fallback
	}
	val, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return val
}

func queryFloat(query url.Values, key string, fallback float64) float64 {
	raw := query.Get(key)
	if raw == "" {
		return fallback
	}
	val, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return fallback
	}
	return val
}

// filterParamsFromQuery maps /players query params onto FilterParams.
// Unparseable numbers are rejected rather than silently defaulted so the
// caller learns about the bad input.
func filterParamsFromQuery(query url.Values) (appplayers.FilterParams, error) {
	params := appplayers.FilterParams{
		Position: domainplayers.Position(query.Get("pos")),
		Team:     query.Get("team"),
		Weights:  weightsFromQuery(query),
	}

	for _, field := range []struct {
		key string
		dst *int
	}{
		{"ageMin", &params.AgeMin},
		{"ageMax", &params.AgeMax},
		{"minGames", &params.MinGames},
	} {
		raw := query.Get(field.key)
		if raw == "" {
			continue
		}
		val, err := strconv.Atoi(raw)
		if err != nil {
			return appplayers.FilterParams{}, fmt.Errorf("invalid %s: %q", field.key, raw)
		}
		*field.dst = val
	}

	for _, field := range []struct {
		key string
		dst *float64
	}{
		{"ppgMin", &params.PointsMin},
		{"ppgMax", &params.PointsMax},
	} {
		raw := query.Get(field.key)
		if raw == "" {
			continue
		}
		val, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return appplayers.FilterParams{}, fmt.Errorf("invalid %s: %q", field.key, raw)
		}
		*field.dst = val
	}

	return params, nil
}

// weightsFromQuery builds a scoring-weight override when any w_* param is
// present. Unspecified categories keep their default weight.
func weightsFromQuery(query url.Values) *stats.ScoringWeights {
	keys := []string{"w_pts", "w_trb", "w_ast", "w_stl", "w_blk", "w_tov"}
	present := false
	for _, key := range keys {
		if query.Get(key) != "" {
			present = true
			break
		}
	}
	if !present {
		return nil
	}

	w := stats.DefaultScoringWeights()
	w.Points = queryFloat(query, "w_pts", w.Points)
	w.Rebounds = queryFloat(query, "w_trb", w.Rebounds)
	w.Assists = queryFloat(query, "w_ast", w.Assists)
	w.Steals = queryFloat(query, "w_stl", w.Steals)
	w.Blocks = queryFloat(query, "w_blk", w.Blocks)
	w.Turnovers = queryFloat(query, "w_tov", w.Turnovers)
	return &w
}

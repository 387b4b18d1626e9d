package web

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
)

// QueryInt returns the integer value of an optional query parameter, or def
// when the parameter is absent. Reports false after responding with 400 when
// the value is present but not a positive integer.
func QueryInt(r *http.Request, w http.ResponseWriter, logger *slog.Logger, key string, def int) (int, bool) {
	value := r.URL.Query().Get(key)
	if value == "" {
		return def, true
	}
	intValue, err := strconv.Atoi(value)
	if err != nil || intValue <= 0 {
		RespondError(w, logger, http.StatusBadRequest, fmt.Sprintf("Invalid %s number: %s", key, value))
		return 0, false
	}
	return intValue, true
}

// QueryFloat returns the float value of an optional query parameter, or def
// when the parameter is absent. Reports false after responding with 400 when
// the value is present but not a non-negative number.
func QueryFloat(r *http.Request, w http.ResponseWriter, logger *slog.Logger, key string, def float64) (float64, bool) {
	value := r.URL.Query().Get(key)
	if value == "" {
		return def, true
	}
	floatValue, err := strconv.ParseFloat(value, 64)
	if err != nil || floatValue < 0 {
		RespondError(w, logger, http.StatusBadRequest, fmt.Sprintf("Invalid %s number: %s", key, value))
		return 0, false
	}
	return floatValue, true
}

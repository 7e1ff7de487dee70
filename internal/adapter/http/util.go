package adapthttp

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, map[string]any{"error": err.Error()})
}

func parseJSON(r *http.Request, dst any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return fmt.Errorf("invalid json: %w", err)
	}
	return nil
}

// resourceID extracts the trailing record id from an item path such as
// "/managers/7/". hasID is false for the bare collection path.
func resourceID(path, prefix string) (id int64, hasID bool, err error) {
	rest := strings.Trim(strings.TrimPrefix(path, prefix), "/")
	if rest == "" {
		return 0, false, nil
	}
	id, convErr := strconv.ParseInt(rest, 10, 64)
	if convErr != nil || id <= 0 {
		return 0, true, fmt.Errorf("invalid id %q", rest)
	}
	return id, true, nil
}

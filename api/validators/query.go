package validators

import (
	"net/http"
	"strconv"
	"strings"

	pkgerrors "github.com/mateoquintero/venturelink-backend/pkg/errors"
)

// ParseQueryInt reads an optional integer query parameter, clamping nothing:
// out-of-range values are rejected so callers see their mistake.
func ParseQueryInt(r *http.Request, key string, defaultVal, min, max int) (int, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(key))
	if raw == "" {
		return defaultVal, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid "+key)
	}
	if value < min || value > max {
		return 0, pkgerrors.New(pkgerrors.CodeValidation, key+" out of range")
	}
	return value, nil
}

package handler

import (
	"encoding/json"
	"strings"

	domainerrors "foodsafe/internal/domain/errors"
)

// parseList decodes one of the onboarding list fields. A blank value has no
// entries, a value starting with '[' is a JSON array of strings and anything
// else is split on commas. Entries are trimmed and keep their position.
func parseList(field, raw string) ([]string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}

	var items []string
	if strings.HasPrefix(raw, "[") {
		if err := json.Unmarshal([]byte(raw), &items); err != nil {
			return nil, domainerrors.ErrValidationFailed.WithDetails(field + " must be a JSON array of strings")
		}
	} else {
		items = strings.Split(raw, ",")
	}

	for i := range items {
		items[i] = strings.TrimSpace(items[i])
	}

	return items, nil
}

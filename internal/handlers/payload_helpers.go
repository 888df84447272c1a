package handlers

import (
	"fmt"
	"strconv"
	"strings"
)

// --------------------------------------------------
// Loose payload coercion
// --------------------------------------------------
// Creation payloads are decoded into maps so field presence can drive
// validation; these helpers pull typed values back out.

func payloadString(payload map[string]any, key string) string {
	s, _ := payload[key].(string)
	return s
}

func payloadUint(payload map[string]any, key string) (uint, error) {
	switch n := payload[key].(type) {
	case float64:
		if n < 0 {
			return 0, fmt.Errorf("invalid %s: %v", key, n)
		}
		return uint(n), nil
	case string:
		parsed, err := strconv.Atoi(strings.TrimSpace(n))
		if err != nil || parsed < 0 {
			return 0, fmt.Errorf("invalid %s: %q", key, n)
		}
		return uint(parsed), nil
	default:
		return 0, fmt.Errorf("invalid %s: %v", key, payload[key])
	}
}

func payloadInt(payload map[string]any, key string) (int, error) {
	switch n := payload[key].(type) {
	case float64:
		return int(n), nil
	case string:
		parsed, err := strconv.Atoi(strings.TrimSpace(n))
		if err != nil {
			return 0, fmt.Errorf("invalid %s: %q", key, n)
		}
		return parsed, nil
	default:
		return 0, fmt.Errorf("invalid %s: %v", key, payload[key])
	}
}

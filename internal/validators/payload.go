// Package validators applies per-entity creation rules before anything is
// persisted. Rules run in a fixed order and the first failing rule wins.
package validators

// StringField returns the payload value for key and whether it is a string.
func StringField(payload map[string]any, key string) (string, bool) {
	v, ok := payload[key]
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

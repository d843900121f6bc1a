package impl

import "time"

// Helpers for decoding raw document maps. Firestore hands back generic
// values, so every field read is type-asserted defensively.

func strField(data map[string]interface{}, key string) string {
	v, _ := data[key].(string)
	return v
}

func strPtrField(data map[string]interface{}, key string) *string {
	if v, ok := data[key].(string); ok && v != "" {
		return &v
	}
	return nil
}

func timeField(data map[string]interface{}, key string) *time.Time {
	if v, ok := data[key].(time.Time); ok {
		t := v
		return &t
	}
	return nil
}

func strSliceField(data map[string]interface{}, key string) []string {
	switch arr := data[key].(type) {
	case []string:
		return append([]string(nil), arr...)
	case []interface{}:
		out := make([]string, 0, len(arr))
		for _, v := range arr {
			if s, ok := v.(string); ok {
				out = append(out, s)
			}
		}
		return out
	}
	return nil
}

func ptrValue(s *string) interface{} {
	if s == nil {
		return nil
	}
	return *s
}

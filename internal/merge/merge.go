// Package merge implements recursive merging of JSON-like mappings.
package merge

import "dfp-sync/internal/core/domain"

// Deep returns a new mapping holding base with each overlay applied in
// order. Nested mappings are merged recursively; any other value, slices
// included, replaces what was there. Neither base nor the overlays are
// modified.
func Deep(base map[string]any, overlays ...map[string]any) map[string]any {
	out := clone(base)
	for _, overlay := range overlays {
		into(out, overlay)
	}
	return out
}

// Records is Deep for remote records.
func Records(base domain.Record, overlays ...domain.Record) domain.Record {
	maps := make([]map[string]any, len(overlays))
	for i, o := range overlays {
		maps[i] = o
	}
	return Deep(base, maps...)
}

func into(dst, src map[string]any) {
	for k, v := range src {
		srcMap, ok := asMap(v)
		if !ok {
			dst[k] = cloneValue(v)
			continue
		}
		dstMap, ok := asMap(dst[k])
		if !ok {
			dst[k] = clone(srcMap)
			continue
		}
		merged := clone(dstMap)
		into(merged, srcMap)
		dst[k] = merged
	}
}

func asMap(v any) (map[string]any, bool) {
	switch m := v.(type) {
	case map[string]any:
		return m, true
	case domain.Record:
		return m, true
	default:
		return nil, false
	}
}

func clone(m map[string]any) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = cloneValue(v)
	}
	return out
}

func cloneValue(v any) any {
	switch t := v.(type) {
	case map[string]any:
		return clone(t)
	case domain.Record:
		return clone(t)
	case []any:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = cloneValue(e)
		}
		return out
	case []map[string]any:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = clone(e)
		}
		return out
	default:
		return v
	}
}

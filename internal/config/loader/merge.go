package loader

// Merge layers src over dst and returns dst, allocating it when nil.
// Tables merge key by key; any other value in src replaces the one in
// dst. Tables taken from src are copied, so later merges never write
// into a source's map.
func Merge(dst, src map[string]any) map[string]any {
	if dst == nil {
		dst = make(map[string]any, len(src))
	}
	for k, v := range src {
		table, isTable := v.(map[string]any)
		if !isTable {
			dst[k] = v
			continue
		}
		if into, ok := dst[k].(map[string]any); ok {
			dst[k] = Merge(into, table)
		} else {
			dst[k] = Merge(nil, table)
		}
	}
	return dst
}

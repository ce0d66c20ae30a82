package entity

import "encoding/json"

// MergePatch overlays the top-level fields of a partial JSON document onto
// current and decodes the result back into T. Fields absent from patch keep
// their stored values. The merge is shallow: a nested object present in
// patch replaces the stored one entirely.
func MergePatch[T any](current T, patch json.RawMessage) (T, error) {
	var zero T
	base, err := json.Marshal(current)
	if err != nil {
		return zero, err
	}
	var baseMap map[string]json.RawMessage
	if err := json.Unmarshal(base, &baseMap); err != nil {
		return zero, err
	}
	var patchMap map[string]json.RawMessage
	if err := json.Unmarshal(patch, &patchMap); err != nil {
		return zero, err
	}
	for k, v := range patchMap {
		baseMap[k] = v
	}
	merged, err := json.Marshal(baseMap)
	if err != nil {
		return zero, err
	}
	var out T
	if err := json.Unmarshal(merged, &out); err != nil {
		return zero, err
	}
	return out, nil
}

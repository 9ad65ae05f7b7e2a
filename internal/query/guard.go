package query

import (
	"encoding/json"
	"fmt"
	"sort"
)

// Bounds of a plausible top-level number in a result.
const (
	MinPlausible = 0
	MaxPlausible = 1_000_000
)

// Check flags top-level numbers of the marshalled result that fall outside
// [MinPlausible, MaxPlausible], and results that cannot be encoded. It
// returns "" when nothing looks wrong. Nested values are not inspected.
func Check(res Result) string {
	b, err := json.Marshal(res)
	if err != nil {
		return fmt.Sprintf("Result could not be encoded: %v", err)
	}
	var top map[string]any
	if err := json.Unmarshal(b, &top); err != nil {
		return ""
	}
	keys := make([]string, 0, len(top))
	for k := range top {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		n, ok := top[k].(float64)
		if !ok {
			continue
		}
		if n < MinPlausible || n > MaxPlausible {
			return fmt.Sprintf("Value %v for %s seems unrealistic", n, k)
		}
	}
	return ""
}

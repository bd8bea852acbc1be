// Package output renders schedules, grids and details for the CLI.
package output

import "encoding/json"

// ToJSON serializes v (a schedule, grid or detail) to JSON.
func ToJSON(v any, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(v, "", "  ")
	}
	return json.Marshal(v)
}

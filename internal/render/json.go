package render

import (
	"encoding/json"
	"fmt"

	"github.com/trafficlens/trafficlens/schema"
)

// JSON renders the report as indented JSON.
func JSON(rep *schema.Report) (string, error) {
	data, err := json.MarshalIndent(rep, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal report: %w", err)
	}
	return string(data), nil
}

package render

import (
	"fmt"
	"os"

	"github.com/trafficlens/trafficlens/schema"
	"golang.org/x/term"
)

// selectOutputFile returns the file handle for CSV/JSON/Parquet output.
// An empty path means stdout.
func selectOutputFile(filePath string) (*os.File, error) {
	if filePath == "" {
		return os.Stdout, nil
	}
	file, err := os.Create(filePath)
	if err != nil {
		return nil, fmt.Errorf("cannot create output file: %w", err)
	}
	return file, nil
}

// maxChannelWidth calculates the maximum width for channel and event names
// in table output based on terminal width.
func maxChannelWidth(cfg *schema.Config) int {
	termWidth := cfg.Width

	if termWidth == 0 { // Not set by override
		detectedWidth, _, err := term.GetSize(int(os.Stdout.Fd()))
		if err != nil || detectedWidth <= 0 {
			// Conservative default for narrow terminals and CI
			termWidth = 80
		} else {
			termWidth = detectedWidth
		}
	}

	// Reserve space for the numeric columns plus borders and padding
	available := termWidth - 50
	if available < 15 {
		return 15
	}
	if available > 60 {
		return 60
	}
	return available
}

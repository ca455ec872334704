package utils

import (
	"io"
	"os"

	"github.com/schollz/progressbar/v3"
)

// Standard progress bar descriptions
const (
	DescCloning    = "Cloning"
	DescExtracting = "Extracting"
)

// NewProgressBar creates a consistently styled progress bar on stderr,
// leaving stdout free for the extracted document.
//
// Use -1 for unknown totals (spinner mode).
//
// Example:
//
//	bar := utils.NewProgressBar(len(files), utils.DescExtracting, nil)
//	defer bar.Finish()
//
//	for _, f := range files {
//	    // Process f
//	    bar.Add(1)
//	}
func NewProgressBar(total int, description string, w io.Writer) *progressbar.ProgressBar {
	if w == nil {
		w = os.Stderr
	}

	opts := []progressbar.Option{
		progressbar.OptionSetDescription(description),
		progressbar.OptionSetWriter(w),
		progressbar.OptionShowCount(),
		progressbar.OptionClearOnFinish(),
	}

	if total < 0 {
		opts = append(opts,
			progressbar.OptionSpinnerType(14),
			progressbar.OptionSetRenderBlankState(true),
		)
	} else {
		opts = append(opts,
			progressbar.OptionShowIts(),
		)
	}

	return progressbar.NewOptions(total, opts...)
}

package report

import (
	"context"
	"fmt"
	"os"

	"github.com/pkg/browser"
)

// Viewer displays a saved chart.
type Viewer interface {
	Open(ctx context.Context, path string) error
}

// SystemViewer opens files with the desktop's default application and
// waits for the opener to return.
type SystemViewer struct {
	openFile func(path string) error
}

func (v SystemViewer) Open(ctx context.Context, path string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("failed to open %s: %w", path, err)
	}

	openFile := v.openFile
	if openFile == nil {
		openFile = browser.OpenFile
	}
	if err := openFile(path); err != nil {
		return fmt.Errorf("failed to open %s: %w", path, err)
	}
	return nil
}

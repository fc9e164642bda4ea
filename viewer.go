package receiptpdf

import (
	"context"
	"fmt"
	"os/exec"
	"runtime"
)

// Viewer opens a produced file for the user.
type Viewer interface {
	Open(ctx context.Context, path string) error
}

// SystemViewer opens files with the host's default application.
type SystemViewer struct {
	goos string
	run  func(ctx context.Context, name string, args ...string) error
}

// NewSystemViewer returns a Viewer for the running OS.
func NewSystemViewer() *SystemViewer {
	return &SystemViewer{goos: runtime.GOOS, run: runCommand}
}

// Open launches the default viewer for path and waits for the launcher to
// return. Errors wrap [ErrViewerLaunch].
func (v *SystemViewer) Open(ctx context.Context, path string) error {
	name, args := openCommand(v.goos, path)
	if err := v.run(ctx, name, args...); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrViewerLaunch, path, err)
	}
	return nil
}

func openCommand(goos, path string) (string, []string) {
	switch goos {
	case "darwin":
		return "open", []string{path}
	case "windows":
		return "rundll32", []string{"url.dll,FileProtocolHandler", path}
	default:
		return "xdg-open", []string{path}
	}
}

func runCommand(ctx context.Context, name string, args ...string) error {
	return exec.CommandContext(ctx, name, args...).Run()
}

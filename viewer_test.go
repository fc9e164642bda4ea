package receiptpdf

import (
	"context"
	"errors"
	"reflect"
	"testing"
)

func TestOpenCommand(t *testing.T) {
	tests := []struct {
		goos string
		name string
		args []string
	}{
		{"darwin", "open", []string{"r.pdf"}},
		{"windows", "rundll32", []string{"url.dll,FileProtocolHandler", "r.pdf"}},
		{"linux", "xdg-open", []string{"r.pdf"}},
		{"openbsd", "xdg-open", []string{"r.pdf"}},
	}
	for _, tt := range tests {
		name, args := openCommand(tt.goos, "r.pdf")
		if name != tt.name || !reflect.DeepEqual(args, tt.args) {
			t.Errorf("%s: got %s %q, want %s %q", tt.goos, name, args, tt.name, tt.args)
		}
	}
}

func TestSystemViewer_Open(t *testing.T) {
	var gotName string
	var gotArgs []string
	v := &SystemViewer{goos: "linux", run: func(_ context.Context, name string, args ...string) error {
		gotName, gotArgs = name, args
		return nil
	}}

	if err := v.Open(context.Background(), "/tmp/r.pdf"); err != nil {
		t.Fatalf("Open: %v", err)
	}
	if gotName != "xdg-open" || !reflect.DeepEqual(gotArgs, []string{"/tmp/r.pdf"}) {
		t.Errorf("ran %s %q", gotName, gotArgs)
	}
}

func TestSystemViewer_OpenFails(t *testing.T) {
	v := &SystemViewer{goos: "linux", run: func(context.Context, string, ...string) error {
		return errors.New("exec: not found")
	}}

	err := v.Open(context.Background(), "/tmp/r.pdf")
	if !errors.Is(err, ErrViewerLaunch) {
		t.Fatalf("expected ErrViewerLaunch, got %v", err)
	}
}

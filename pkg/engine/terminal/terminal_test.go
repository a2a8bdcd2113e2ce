package terminal

import (
	"os"
	"testing"
)

func TestGetSize_Fallback(t *testing.T) {
	// Under go test stdout is usually not a terminal
	w, h := GetSize()
	if w <= 0 || h <= 0 {
		t.Errorf("GetSize() = %dx%d, want positive", w, h)
	}
}

func TestIsInteractive_Nil(t *testing.T) {
	if IsInteractive(nil) {
		t.Error("IsInteractive(nil) = true, want false")
	}
	f, err := os.CreateTemp(t.TempDir(), "out")
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if IsInteractive(f) {
		t.Error("IsInteractive(regular file) = true, want false")
	}
}

func TestFits(t *testing.T) {
	tests := []struct {
		w, h, cols, rows, reserved int
		want                       bool
	}{
		{80, 24, 40, 12, 6, true},
		{80, 24, 81, 12, 6, false},
		{80, 24, 40, 20, 6, false},
		{80, 24, 80, 18, 6, true},
	}
	for _, tt := range tests {
		if got := Fits(tt.w, tt.h, tt.cols, tt.rows, tt.reserved); got != tt.want {
			t.Errorf("Fits(%d,%d,%d,%d,%d) = %v, want %v", tt.w, tt.h, tt.cols, tt.rows, tt.reserved, got, tt.want)
		}
	}
}

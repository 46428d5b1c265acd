package game

import (
	"reflect"
	"testing"
)

func TestWrapText(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		maxChars int
		want     []string
	}{
		{"short stays whole", "hello world", 20, []string{"hello world"}},
		{"breaks on words", "the quick brown fox jumps", 10, []string{"the quick", "brown fox", "jumps"}},
		{"long word own line", "hi extraordinarily no", 8, []string{"hi", "extraordinarily", "no"}},
		{"zero width passthrough", "anything", 0, []string{"anything"}},
		{"empty", "", 10, []string{""}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := wrapText(tt.text, tt.maxChars)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("wrapText(%q, %d) = %v, want %v", tt.text, tt.maxChars, got, tt.want)
			}
		})
	}
}

func TestTruncateText(t *testing.T) {
	if got := truncateText("hello", 3); got != "hel" {
		t.Errorf("got %q", got)
	}
	if got := truncateText("hi", 10); got != "hi" {
		t.Errorf("got %q", got)
	}
	if got := truncateText("hi", 0); got != "" {
		t.Errorf("got %q", got)
	}
}

func TestClampRectToViewport(t *testing.T) {
	tests := []struct {
		name           string
		x, y           int
		wantX, wantY   int
	}{
		{"fits unchanged", 100, 100, 100, 100},
		{"pushed off right", 950, 100, 860, 100},
		{"pushed off bottom", 100, 630, 100, 540},
		{"negative origin", -20, -20, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y := clampRectToViewport(tt.x, tt.y, 100, 100, 960, 640)
			if x != tt.wantX || y != tt.wantY {
				t.Errorf("got (%d,%d), want (%d,%d)", x, y, tt.wantX, tt.wantY)
			}
		})
	}
}

func TestIsMouseHoveringBox(t *testing.T) {
	if !isMouseHoveringBox(5, 5, 0, 0, 10, 10) {
		t.Error("point inside should hover")
	}
	if isMouseHoveringBox(10, 5, 0, 0, 10, 10) {
		t.Error("upper bound is exclusive")
	}
	if !isMouseHoveringBox(0, 0, 0, 0, 10, 10) {
		t.Error("lower bound is inclusive")
	}
}

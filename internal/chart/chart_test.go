package chart

import (
	"strings"
	"testing"

	"github.com/papapumpkin/holocron/internal/swapi"
)

func TestParseValue(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in     string
		want   float64
		wantOK bool
	}{
		{"172", 172, true},
		{"1,358", 1358, true},
		{" 80.5 ", 80.5, true},
		{"0", 0, true},
		{"unknown", 0, false},
		{"n/a", 0, false},
		{"", 0, false},
		{"NaN", 0, false},
		{"-5", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()
			got, ok := ParseValue(tt.in)
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("ParseValue(%q) = (%v, %v), want (%v, %v)", tt.in, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestPhysical(t *testing.T) {
	t.Parallel()

	bars, ok := Physical(swapi.Person{Height: "172", Mass: "77"})
	if !ok {
		t.Fatal("expected numeric height and mass to chart")
	}
	if len(bars) != 2 || bars[0].Label != LabelHeight || bars[1].Label != LabelMass {
		t.Fatalf("unexpected bars: %+v", bars)
	}
	if bars[0].Value != 172 || bars[1].Value != 77 {
		t.Errorf("values = %v, %v", bars[0].Value, bars[1].Value)
	}

	for _, p := range []swapi.Person{
		{Height: "172", Mass: "unknown"},
		{Height: "unknown", Mass: "77"},
		{},
	} {
		if _, ok := Physical(p); ok {
			t.Errorf("Physical(%+v) should not chart", p)
		}
	}
}

func TestRender(t *testing.T) {
	t.Parallel()

	bars := []Bar{
		{Label: LabelHeight, Value: 200},
		{Label: LabelMass, Value: 100},
	}
	out := Render(bars, 10, nil)
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d:\n%s", len(lines), out)
	}
	if got := strings.Count(lines[0], blockFull); got != 10 {
		t.Errorf("tallest bar should fill the width: got %d blocks\n%s", got, out)
	}
	if got := strings.Count(lines[1], blockFull); got != 5 {
		t.Errorf("half-value bar should be half width: got %d blocks\n%s", got, out)
	}
	if !strings.HasPrefix(lines[1], "Mass (kg)   │") {
		t.Errorf("labels should be padded to a common width, got %q", lines[1])
	}
	if !strings.HasSuffix(lines[0], " 200") {
		t.Errorf("value should trail the bar, got %q", lines[0])
	}
	if strings.Contains(strings.ToLower(out), "legend") {
		t.Error("chart must not draw a legend")
	}
}

func TestRender_Paint(t *testing.T) {
	t.Parallel()

	out := Render([]Bar{{Label: "x", Value: 1}}, 4, func(s string) string { return "<" + s + ">" })
	if !strings.Contains(out, "<████>") {
		t.Errorf("paint should wrap the blocks, got %q", out)
	}
}

func TestRender_Empty(t *testing.T) {
	t.Parallel()

	if out := Render(nil, 20, nil); out != "" {
		t.Errorf("no bars should render nothing, got %q", out)
	}
}

func TestScaledBlocks(t *testing.T) {
	t.Parallel()

	if got := scaledBlocks(0, 100, 10); got != "" {
		t.Errorf("zero value should be empty, got %q", got)
	}
	if got := scaledBlocks(1, 1000, 10); got != "▏" {
		t.Errorf("tiny value should show a sliver, got %q", got)
	}
	if got := scaledBlocks(15, 100, 10); got != "█▌" {
		t.Errorf("15%% of 10 cells = 1.5 cells, got %q", got)
	}
}

func TestFormatValue(t *testing.T) {
	t.Parallel()

	if got := FormatValue(172); got != "172" {
		t.Errorf("FormatValue(172) = %q", got)
	}
	if got := FormatValue(78.2); got != "78.2" {
		t.Errorf("FormatValue(78.2) = %q", got)
	}
}

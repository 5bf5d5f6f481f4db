package display

import (
	"reflect"
	"testing"

	"github.com/blinktimer/blinktimer/pkg/blinklib"
)

const xrandrTwoMonitors = `Screen 0: minimum 320 x 200, current 3840 x 1080, maximum 16384 x 16384
eDP-1 connected primary 1920x1080+0+0 (normal left inverted right x axis y axis) 344mm x 194mm
   1920x1080     60.01*+  59.97    59.96
HDMI-1 connected 1920x1080+1920+0 (normal left inverted right x axis y axis) 527mm x 296mm
   1920x1080     60.00*+  50.00    59.94
DP-1 disconnected (normal left inverted right x axis y axis)
`

const xrandrInactiveOutput = `Screen 0: minimum 320 x 200, current 1920 x 1080, maximum 16384 x 16384
eDP-1 connected primary 1920x1080+0+0 (normal left inverted right x axis y axis) 344mm x 194mm
HDMI-1 connected (normal left inverted right x axis y axis)
`

func TestParseXrandr(t *testing.T) {
	got := ParseXrandr(xrandrTwoMonitors)
	want := []blinklib.Geometry{
		{Width: 1920, Height: 1080, X: 0, Y: 0},
		{Width: 1920, Height: 1080, X: 1920, Y: 0},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ParseXrandr = %+v, want %+v", got, want)
	}
}

func TestParseXrandrSkipsInactiveOutputs(t *testing.T) {
	got := ParseXrandr(xrandrInactiveOutput)
	if len(got) != 1 {
		t.Fatalf("got %d monitors, want 1: %+v", len(got), got)
	}
}

func TestParseXrandrEmpty(t *testing.T) {
	if got := ParseXrandr(""); len(got) != 0 {
		t.Errorf("empty output gave %+v", got)
	}
	if got := ParseXrandr("DP-1 disconnected\n"); len(got) != 0 {
		t.Errorf("disconnected-only output gave %+v", got)
	}
}

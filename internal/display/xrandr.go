package display

import (
	"errors"
	"fmt"
	"os/exec"
	"regexp"
	"strconv"
	"strings"

	"github.com/blinktimer/blinktimer/pkg/blinklib"
)

// geometryRe matches the WxH+X+Y block xrandr prints for active outputs,
// e.g. "1920x1080+1920+0".
var geometryRe = regexp.MustCompile(`(\d+)x(\d+)\+(\d+)\+(\d+)`)

// XrandrSource enumerates monitors by running xrandr --query.
type XrandrSource struct {
	// Command overrides the executable, for tests.
	Command string
}

// Current returns the geometry of every connected monitor.
func (x *XrandrSource) Current() ([]blinklib.Geometry, error) {
	cmd := x.Command
	if cmd == "" {
		cmd = "xrandr"
	}
	out, err := exec.Command(cmd, "--query").Output()
	if err != nil {
		return nil, fmt.Errorf("running xrandr: %w", err)
	}
	geos := ParseXrandr(string(out))
	if len(geos) == 0 {
		return nil, errors.New("no connected monitors in xrandr output")
	}
	return geos, nil
}

// ParseXrandr extracts connected monitor geometries from xrandr --query
// output. Disconnected outputs and connected outputs without an active
// mode are skipped.
func ParseXrandr(out string) []blinklib.Geometry {
	var geos []blinklib.Geometry
	for _, line := range strings.Split(out, "\n") {
		if !strings.Contains(line, " connected") {
			continue
		}
		m := geometryRe.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		w, _ := strconv.Atoi(m[1])
		h, _ := strconv.Atoi(m[2])
		x, _ := strconv.Atoi(m[3])
		y, _ := strconv.Atoi(m[4])
		geos = append(geos, blinklib.Geometry{Width: w, Height: h, X: x, Y: y})
	}
	return geos
}

var _ blinklib.GeometrySource = (*XrandrSource)(nil)

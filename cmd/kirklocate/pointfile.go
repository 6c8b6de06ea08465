package main

import (
	"bufio"
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/katalvlaran/kirklocate/geom"
)

var pointLineRE = regexp.MustCompile(`\(?\s*(-?\d+)\s*,\s*(-?\d+)\s*\)?`)

// readPointFile reads the viewer's persistence format: a poly_complete
// bool on the first line, then one "(x, y)" point per line. kirklocate
// only needs to read what the viewer writes, never to write the format
// itself.
func readPointFile(path string) ([]geom.Point, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("kirklocate: opening point file: %w", err)
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	if !sc.Scan() {
		return nil, fmt.Errorf("kirklocate: point file %q is empty", path)
	}
	complete := strings.TrimSpace(sc.Text())
	if complete != "0" && complete != "1" {
		return nil, fmt.Errorf("kirklocate: point file %q: expected poly_complete bool on line 1, got %q", path, complete)
	}
	if complete == "0" {
		return nil, fmt.Errorf("kirklocate: point file %q has poly_complete=0: polygon was not closed in the viewer", path)
	}

	var points []geom.Point
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		m := pointLineRE.FindStringSubmatch(line)
		if m == nil {
			return nil, fmt.Errorf("kirklocate: point file %q: malformed point line %q", path, line)
		}
		x, err := strconv.ParseInt(m[1], 10, 32)
		if err != nil {
			return nil, fmt.Errorf("kirklocate: point file %q: %w", path, err)
		}
		y, err := strconv.ParseInt(m[2], 10, 32)
		if err != nil {
			return nil, fmt.Errorf("kirklocate: point file %q: %w", path, err)
		}
		points = append(points, geom.Point{X: int32(x), Y: int32(y)})
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("kirklocate: reading point file %q: %w", path, err)
	}
	return points, nil
}

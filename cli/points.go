package cli

import (
	"bufio"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/samber/lo"
)

// readPoints reads whitespace separated coordinates, one point per line. Blank lines and anything
// after a '#' are ignored. Every point must have the same number of coordinates.
func readPoints(r io.Reader) ([][]float64, error) {
	var points [][]float64
	scanner := bufio.NewScanner(r)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line, _, _ := strings.Cut(scanner.Text(), "#")
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		point, err := parseFloats(fields)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", lineNum)
		}
		points = append(points, point)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "error reading points")
	}
	if len(points) == 0 {
		return nil, errors.New("no points found")
	}
	dims := lo.Uniq(lo.Map(points, func(p []float64, _ int) int { return len(p) }))
	if len(dims) != 1 {
		return nil, errors.Errorf("points must all have the same dimension but found %v", dims)
	}
	return points, nil
}

// readPointsFile reads points from path, or from stdin when path is "-".
func readPointsFile(path string, stdin io.Reader) ([][]float64, error) {
	if path == "-" {
		return readPoints(stdin)
	}
	//nolint:gosec
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "cannot open points file %q", path)
	}
	defer f.Close()
	return readPoints(f)
}

// parseVector parses comma separated coordinates such as "1,2.5,-3".
func parseVector(s string) ([]float64, error) {
	fields := lo.Map(strings.Split(s, ","), func(f string, _ int) string { return strings.TrimSpace(f) })
	if len(fields) == 1 && fields[0] == "" {
		return nil, errors.New("empty coordinates")
	}
	return parseFloats(fields)
}

func parseFloats(fields []string) ([]float64, error) {
	out := make([]float64, 0, len(fields))
	for _, field := range fields {
		v, err := strconv.ParseFloat(field, 64)
		if err != nil {
			return nil, errors.Errorf("cannot parse %q as a number", field)
		}
		out = append(out, v)
	}
	return out, nil
}

package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"

	"go.viam.com/euclid/adjunct"
	"go.viam.com/euclid/config"
	"go.viam.com/euclid/fit"
	"go.viam.com/euclid/logging"
	"go.viam.com/euclid/numeric"
	"go.viam.com/euclid/query"
	"go.viam.com/euclid/space"
	"go.viam.com/euclid/vec"
)

const stateKey = "euclid"

type (
	p2 = vec.Point2[float64]
	v2 = vec.Vec2[float64]
	p3 = vec.Point3[float64]
	v3 = vec.Vec3[float64]
	p4 = vec.PointN[float64, numeric.D4]
	v4 = vec.VecN[float64, numeric.D4]
)

// state is built once per invocation from the global flags.
type state struct {
	cfg    *config.Config
	logger logging.Logger
	solver fit.Solver
}

func setupAction(c *cli.Context) error {
	cfg := config.Default()
	if path := c.String(generalFlagConfig); path != "" {
		var err error
		if cfg, err = config.Read(path); err != nil {
			return err
		}
	}

	logger := logging.NewBlankLogger("euclid")
	logger.AddAppender(logging.NewWriterAppender(c.App.ErrWriter))
	logger.SetLevel(cfg.Log.LogLevel())
	if c.Bool(generalFlagDebug) {
		logger.SetLevel(logging.DEBUG)
	}

	solver, err := cfg.Solver.Build(logger)
	if err != nil {
		return err
	}
	if c.App.Metadata == nil {
		c.App.Metadata = map[string]interface{}{}
	}
	c.App.Metadata[stateKey] = &state{cfg: cfg, logger: logger, solver: solver}
	return nil
}

func getState(c *cli.Context) (*state, error) {
	st, ok := c.App.Metadata[stateKey].(*state)
	if !ok {
		return nil, errors.New("euclid was not initialized")
	}
	return st, nil
}

func readArgPoints(c *cli.Context) ([][]float64, error) {
	if c.Args().Len() != 1 {
		return nil, errors.Errorf("expected exactly one points file but got %d arguments", c.Args().Len())
	}
	return readPointsFile(c.Args().First(), c.App.Reader)
}

// FitPlaneAction is the corresponding Action for 'fit-plane'.
func FitPlaneAction(c *cli.Context) error {
	st, err := getState(c)
	if err != nil {
		return err
	}
	rows, err := readArgPoints(c)
	if err != nil {
		return err
	}
	st.logger.Debugw("fitting plane", "points", len(rows), "dim", len(rows[0]))

	w, prec := c.App.Writer, st.cfg.Output.Precision
	switch len(rows[0]) {
	case 2:
		return fitPlane[p2, v2](w, prec, st.solver, rows)
	case 3:
		return fitPlane[p3, v3](w, prec, st.solver, rows)
	case 4:
		return fitPlane[p4, v4](w, prec, st.solver, rows)
	}
	return errors.Errorf("fit-plane supports 2 to 4 coordinates per point but got %d", len(rows[0]))
}

func fitPlane[P space.EuclideanSpace[float64, P, V], V space.InnerSpace[float64, V]](
	w io.Writer,
	prec int,
	solver fit.Solver,
	rows [][]float64,
) error {
	res, err := fit.FitPlane[float64, P, V](solver, toItems[P](rows))
	if err != nil {
		return err
	}
	printf(w, "origin: %s", formatCoords(res.Plane.Origin, prec))
	printf(w, "normal: %s", formatCoords(res.Plane.Normal.Vector(), prec))
	printf(w, "singular values: %s", formatFloats(res.SingularValues, prec))
	printf(w, "residual sum of squares: %s", formatFloat(res.ResidualSumSquares, prec))
	printf(w, "rms: %s", formatFloat(res.RMS, prec))
	printf(w, "max deviation: %s", formatFloat(res.MaxDeviation, prec))
	return nil
}

// FitLineAction is the corresponding Action for 'fit-line'.
func FitLineAction(c *cli.Context) error {
	st, err := getState(c)
	if err != nil {
		return err
	}
	rows, err := readArgPoints(c)
	if err != nil {
		return err
	}
	st.logger.Debugw("fitting line", "points", len(rows), "dim", len(rows[0]))

	w, prec := c.App.Writer, st.cfg.Output.Precision
	switch len(rows[0]) {
	case 2:
		return fitLine[p2, v2](w, prec, st.solver, rows)
	case 3:
		return fitLine[p3, v3](w, prec, st.solver, rows)
	case 4:
		return fitLine[p4, v4](w, prec, st.solver, rows)
	}
	return errors.Errorf("fit-line supports 2 to 4 coordinates per point but got %d", len(rows[0]))
}

func fitLine[P space.EuclideanSpace[float64, P, V], V space.InnerSpace[float64, V]](
	w io.Writer,
	prec int,
	solver fit.Solver,
	rows [][]float64,
) error {
	ray, err := fit.BestFitLine[float64, P, V](solver, toItems[P](rows))
	if err != nil {
		return err
	}
	printf(w, "origin: %s", formatCoords(ray.Origin, prec))
	printf(w, "direction: %s", formatCoords(ray.Direction.Vector(), prec))
	return nil
}

// RayBoxAction is the corresponding Action for 'ray-box'.
func RayBoxAction(c *cli.Context) error {
	st, err := getState(c)
	if err != nil {
		return err
	}
	coords := make(map[string][]float64, 4)
	for _, name := range []string{rayFlagOrigin, rayFlagDirection, boxFlagMin, boxFlagMax} {
		v, err := parseVector(c.String(name))
		if err != nil {
			return errors.Wrapf(err, "invalid --%s", name)
		}
		coords[name] = v
	}
	dim := len(coords[rayFlagOrigin])
	for _, name := range []string{rayFlagDirection, boxFlagMin, boxFlagMax} {
		if len(coords[name]) != dim {
			return errors.Errorf("--%s has %d coordinates but --%s has %d", name, len(coords[name]), rayFlagOrigin, dim)
		}
	}
	st.logger.Debugw("intersecting ray with box", "dim", dim)

	w, prec := c.App.Writer, st.cfg.Output.Precision
	args := [4][]float64{coords[rayFlagOrigin], coords[rayFlagDirection], coords[boxFlagMin], coords[boxFlagMax]}
	switch dim {
	case 2:
		return rayBox[p2, v2](w, prec, args)
	case 3:
		return rayBox[p3, v3](w, prec, args)
	case 4:
		return rayBox[p4, v4](w, prec, args)
	}
	return errors.Errorf("ray-box supports 2 to 4 coordinates but got %d", dim)
}

// rayBox takes the origin, direction, minimum corner and maximum corner in that order.
func rayBox[P space.EuclideanSpace[float64, P, V], V space.InnerSpace[float64, V]](
	w io.Writer,
	prec int,
	args [4][]float64,
) error {
	origin, minCorner, maxCorner := toItem[P](args[0]), toItem[P](args[2]), toItem[P](args[3])
	dir, err := query.NewUnitVector[float64](toItem[V](args[1]))
	if err != nil {
		return errors.Wrapf(err, "invalid --%s", rayFlagDirection)
	}
	ray := query.NewRay(origin, dir)
	box := query.NewAabbFromBounds[float64, P, V](minCorner, maxCorner)

	hit := ray.IntersectAabb(box)
	switch hit.Kind() {
	case query.Point:
		t, _ := hit.Param()
		printf(w, "point t=%s", formatFloat(t, prec))
		printf(w, "at: %s", formatCoords(ray.At(t), prec))
	case query.Interval:
		t0, t1, _ := hit.Bounds()
		printf(w, "interval t=[%s, %s]", formatFloat(t0, prec), formatFloat(t1, prec))
		printf(w, "enter: %s", formatCoords(ray.At(t0), prec))
		printf(w, "exit: %s", formatCoords(ray.At(t1), prec))
	default:
		printf(w, "empty")
	}
	return nil
}

func toItem[A adjunct.Composite[float64, A]](items []float64) A {
	a, _ := adjunct.FromItems[float64, A](items...)
	return a
}

func toItems[A adjunct.Composite[float64, A]](rows [][]float64) []A {
	out := make([]A, len(rows))
	for i, row := range rows {
		out[i] = toItem[A](row)
	}
	return out
}

func printf(w io.Writer, format string, a ...interface{}) {
	//nolint:errcheck
	fmt.Fprintf(w, format+"\n", a...)
}

// formatFloat prints v with prec significant digits, or the shortest exact form when prec is 0.
// Values within tolerance of zero print as 0.
func formatFloat(v float64, prec int) string {
	if numeric.AlmostZero(v) {
		v = 0
	}
	if prec == 0 {
		prec = -1
	}
	return strconv.FormatFloat(v, 'g', prec, 64)
}

func formatFloats(vs []float64, prec int) string {
	parts := make([]string, len(vs))
	for i, v := range vs {
		parts[i] = formatFloat(v, prec)
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

func formatCoords[A adjunct.Adjunct[float64]](a A, prec int) string {
	return formatFloats(adjunct.IntoItems[float64](a), prec)
}

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/paulmach/orb"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"k8s.io/klog/v2"

	"github.com/Vitya77/Dejkstra-Astar-Algorithms-Comparison/astar"
	"github.com/Vitya77/Dejkstra-Astar-Algorithms-Comparison/builder"
	"github.com/Vitya77/Dejkstra-Astar-Algorithms-Comparison/compare"
	"github.com/Vitya77/Dejkstra-Astar-Algorithms-Comparison/core"
	"github.com/Vitya77/Dejkstra-Astar-Algorithms-Comparison/matrix"
	"github.com/Vitya77/Dejkstra-Astar-Algorithms-Comparison/metrics"
	"github.com/Vitya77/Dejkstra-Astar-Algorithms-Comparison/render"
	"github.com/Vitya77/Dejkstra-Astar-Algorithms-Comparison/spatial"
)

// ErrVerifyFailed is returned by --verify when an engine disagrees with the
// all-pairs oracle.
var ErrVerifyFailed = errors.New("verification failed")

// RaceOptions holds everything `run` and `grid` need.
type RaceOptions struct {
	// Graph.
	Vertices int
	Edges    int
	Width    int
	Height   int
	Seed     int64
	Margin   int
	Spacing  int

	// Query.
	Source      int
	Destination int
	From        string
	To          string
	Termination string
	Heuristic   string
	Timeout     time.Duration

	// Output.
	PNG     string
	Verify  bool
	Metrics bool

	grid        bool
	termination core.Termination
	heuristic   astar.Heuristic
	out         io.Writer
}

// NewRaceOptions returns defaults for a 600x400 canvas with 20 vertices and 40 edges.
func NewRaceOptions(out io.Writer, grid bool) *RaceOptions {
	return &RaceOptions{
		Vertices:    20,
		Edges:       40,
		Width:       600,
		Height:      400,
		Margin:      builder.DefaultGridMargin,
		Spacing:     builder.DefaultGridSpacing,
		Source:      0,
		Destination: -1,
		Termination: core.StopOnSettle.String(),
		Heuristic:   "euclidean",
		grid:        grid,
		out:         out,
	}
}

// AddFlags registers the flags of o on fs.
func (o *RaceOptions) AddFlags(fs *pflag.FlagSet) {
	if !o.grid {
		fs.IntVarP(&o.Vertices, "vertices", "n", o.Vertices, "Number of vertices.")
		fs.IntVarP(&o.Edges, "edges", "m", o.Edges, "Number of edges, at most n(n-1)/2.")
		fs.Int64Var(&o.Seed, "seed", o.Seed, "Random seed; 0 seeds from the clock.")
	} else {
		fs.IntVar(&o.Margin, "margin", o.Margin, "Offset of the first row and column in pixels.")
		fs.IntVar(&o.Spacing, "spacing", o.Spacing, "Distance between grid neighbors in pixels.")
	}
	fs.IntVar(&o.Width, "width", o.Width, "Canvas width in pixels.")
	fs.IntVar(&o.Height, "height", o.Height, "Canvas height in pixels.")
	fs.IntVarP(&o.Source, "source", "s", o.Source, "Source vertex; negative counts from the end.")
	fs.IntVarP(&o.Destination, "destination", "d", o.Destination, "Destination vertex; negative counts from the end.")
	fs.StringVar(&o.From, "from", o.From, "Pick the source by canvas position x,y (overrides --source).")
	fs.StringVar(&o.To, "to", o.To, "Pick the destination by canvas position x,y (overrides --destination).")
	fs.StringVar(&o.Termination, "termination", o.Termination, "When to stop: settle, reach or exhaustive.")
	fs.StringVar(&o.Heuristic, "heuristic", o.Heuristic, "A* heuristic: euclidean, chebyshev, manhattan or zero.")
	fs.DurationVar(&o.Timeout, "timeout", o.Timeout, "Abandon the race after this long; 0 waits forever.")
	fs.StringVar(&o.PNG, "png", o.PNG, "Draw the graph, every path update and both final paths into this PNG file.")
	fs.BoolVar(&o.Verify, "verify", o.Verify, "Check both costs against Floyd-Warshall.")
	fs.BoolVar(&o.Metrics, "metrics", o.Metrics, "Print Prometheus metrics after the report.")
}

// Complete copies the layered values of v back into o and parses enums.
func (o *RaceOptions) Complete(v *viper.Viper) error {
	if !o.grid {
		o.Vertices = v.GetInt("vertices")
		o.Edges = v.GetInt("edges")
		o.Seed = v.GetInt64("seed")
	} else {
		o.Margin = v.GetInt("margin")
		o.Spacing = v.GetInt("spacing")
	}
	o.Width = v.GetInt("width")
	o.Height = v.GetInt("height")
	o.Source = v.GetInt("source")
	o.Destination = v.GetInt("destination")
	o.From = v.GetString("from")
	o.To = v.GetString("to")
	o.Termination = v.GetString("termination")
	o.Heuristic = v.GetString("heuristic")
	o.Timeout = v.GetDuration("timeout")
	o.PNG = v.GetString("png")
	o.Verify = v.GetBool("verify")
	o.Metrics = v.GetBool("metrics")

	var err error
	if o.termination, err = core.ParseTermination(o.Termination); err != nil {
		return err
	}
	if o.heuristic, err = astar.ParseHeuristic(o.Heuristic); err != nil {
		return err
	}

	return nil
}

// Validate rejects values the builders would not catch.
func (o *RaceOptions) Validate() error {
	if o.Timeout < 0 {
		return fmt.Errorf("--timeout must not be negative, got %s", o.Timeout)
	}
	if o.grid && (o.Margin < 0 || o.Spacing <= 0) {
		return fmt.Errorf("--margin must be >= 0 and --spacing > 0, got %d and %d", o.Margin, o.Spacing)
	}

	return nil
}

// Run builds the graph, races both engines and prints the report.
func (o *RaceOptions) Run(ctx context.Context) error {
	g, err := o.buildGraph()
	if err != nil {
		return err
	}
	source, destination, err := o.endpoints(g)
	if err != nil {
		return err
	}
	if !g.Connected(source, destination) {
		klog.V(1).Infof("vertices %d and %d lie in different components", source, destination)
	}

	if o.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, o.Timeout)
		defer cancel()
	}

	opts := []compare.Option{
		compare.WithTermination(o.termination),
		compare.WithHeuristic(o.heuristic),
	}

	var registry *prometheus.Registry
	if o.Metrics {
		registry = prometheus.NewRegistry()
		col, err := metrics.NewCollector(registry)
		if err != nil {
			return err
		}
		opts = append(opts, compare.WithCollector(col))
	}

	var canvas *render.Canvas
	if o.PNG != "" {
		if canvas, err = render.NewCanvas(g, render.WithSize(o.Width, o.Height)); err != nil {
			return err
		}
		dl, al := canvas.Listener(render.DijkstraColor), canvas.Listener(render.AStarColor)
		opts = append(opts, compare.WithSink(func(ev compare.Event) {
			if ev.Algorithm == compare.Dijkstra {
				dl.PathUpdated(ev.Path)
				return
			}
			al.PathUpdated(ev.Path)
		}))
	}

	report, err := compare.Run(ctx, g, source, destination, opts...)
	if err != nil {
		return err
	}
	o.printReport(g, report)

	if canvas != nil {
		if err := o.savePNG(canvas, report); err != nil {
			return err
		}
	}
	if o.Verify {
		if err := o.verify(g, report); err != nil {
			return err
		}
	}
	if registry != nil {
		fmt.Fprintln(o.out)
		if err := metrics.WriteText(o.out, registry); err != nil {
			return err
		}
	}

	return nil
}

func (o *RaceOptions) buildGraph() (*core.Graph, error) {
	if o.grid {
		return builder.NewGridGraph(o.Height, o.Width,
			builder.WithGridMargin(o.Margin), builder.WithGridSpacing(o.Spacing))
	}

	var opts []builder.BuilderOption
	if o.Seed != 0 {
		opts = append(opts, builder.WithSeed(o.Seed))
	}

	return builder.NewRandomGraph(o.Vertices, o.Edges, o.Height, o.Width, opts...)
}

// endpoints resolves --from/--to through the spatial index, or falls back to
// the numeric flags, where negative values count from the end.
func (o *RaceOptions) endpoints(g *core.Graph) (int, int, error) {
	n := g.VertexCount()
	source, destination := o.Source, o.Destination
	if source < 0 {
		source += n
	}
	if destination < 0 {
		destination += n
	}
	if o.From == "" && o.To == "" {
		return checkEndpoints(g, source, destination)
	}

	ix, err := spatial.NewIndex(g)
	if err != nil {
		return 0, 0, err
	}
	if o.From != "" {
		if source, err = pick(ix, g, "from", o.From); err != nil {
			return 0, 0, err
		}
	}
	if o.To != "" {
		if destination, err = pick(ix, g, "to", o.To); err != nil {
			return 0, 0, err
		}
	}

	return checkEndpoints(g, source, destination)
}

// checkEndpoints rejects indices outside the graph before anything indexes it.
func checkEndpoints(g *core.Graph, source, destination int) (int, int, error) {
	if err := core.Validate(g, source); err != nil {
		return 0, 0, fmt.Errorf("--source %d: %w", source, err)
	}
	if err := core.Validate(g, destination); err != nil {
		return 0, 0, fmt.Errorf("--destination %d: %w", destination, err)
	}

	return source, destination, nil
}

// pick maps a click position onto the vertex disc it hits.
func pick(ix *spatial.Index, g *core.Graph, flag, value string) (int, error) {
	p, err := parsePoint(value)
	if err != nil {
		return 0, fmt.Errorf("--%s: %w", flag, err)
	}
	if v, ok := ix.Pick(p, spatial.VertexRadius); ok {
		klog.V(2).Infof("--%s %s picked vertex %d", flag, value, v)
		return v, nil
	}
	nearest, _ := ix.Nearest(p)

	return 0, fmt.Errorf("--%s %s hits no vertex; nearest is %d at %v", flag, value, nearest, g.Point(nearest))
}

// parsePoint reads "x,y".
func parsePoint(s string) (orb.Point, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return orb.Point{}, fmt.Errorf("want x,y, got %q", s)
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return orb.Point{}, fmt.Errorf("bad x in %q: %w", s, err)
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return orb.Point{}, fmt.Errorf("bad y in %q: %w", s, err)
	}

	return orb.Point{x, y}, nil
}

func (o *RaceOptions) printReport(g *core.Graph, r *compare.Report) {
	st := g.Stats()
	fmt.Fprintf(o.out, "graph: %d vertices, %d edges, %d isolated, %d components, density %.3f\n",
		st.VertexCount, st.EdgeCount, st.IsolatedCount, st.Components, st.Density)
	fmt.Fprintf(o.out, "query: %d -> %d (termination=%s, heuristic=%s)\n",
		r.Source, r.Destination, o.termination, strings.ToLower(strings.TrimSpace(o.Heuristic)))

	tw := tabwriter.NewWriter(o.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ALGORITHM\tCOST\tSETTLED\tUPDATES\tTIME\tPATH")
	for _, res := range r.Results() {
		cost, path := "unreachable", "-"
		if res.Reachable {
			cost = strconv.FormatFloat(res.Cost, 'f', 3, 64)
			path = res.Path.String()
		}
		fmt.Fprintf(tw, "%s\t%s\t%d\t%d\t%s\t%s\n",
			res.Algorithm, cost, res.Stats.Settled, res.Stats.Notifications, res.Elapsed, path)
	}
	tw.Flush()
}

func (o *RaceOptions) savePNG(c *render.Canvas, r *compare.Report) error {
	if r.Dijkstra.Reachable {
		if err := c.DrawPath(r.Dijkstra.Path, render.DijkstraColor); err != nil {
			return err
		}
	}
	if r.AStar.Reachable {
		if err := c.DrawPath(r.AStar.Path, render.AStarColor); err != nil {
			return err
		}
	}
	if err := c.SavePNG(o.PNG); err != nil {
		return err
	}
	fmt.Fprintf(o.out, "png: %s (%d updates drawn)\n", o.PNG, c.Updates())

	return nil
}

// verify compares each destination cost with Floyd–Warshall. Only the
// optimal stopping rules are held to the oracle.
func (o *RaceOptions) verify(g *core.Graph, r *compare.Report) error {
	oracle, err := matrix.ShortestDistances(g)
	if err != nil {
		return err
	}
	want := oracle[r.Source][r.Destination]

	for _, res := range r.Results() {
		switch {
		case math.IsInf(want, 1) && res.Reachable:
			return fmt.Errorf("%s found a route the oracle says does not exist: %w", res.Algorithm, ErrVerifyFailed)
		case !math.IsInf(want, 1) && !res.Reachable:
			return fmt.Errorf("%s missed a route of cost %.3f: %w", res.Algorithm, want, ErrVerifyFailed)
		case res.Reachable && o.exact(res.Algorithm) && math.Abs(res.Cost-want) > 1e-9*math.Max(1, want):
			return fmt.Errorf("%s cost %.6f, oracle %.6f: %w", res.Algorithm, res.Cost, want, ErrVerifyFailed)
		}
	}
	fmt.Fprintf(o.out, "verify: ok (floyd-warshall %.3f)\n", want)

	return nil
}

// exact reports whether alg is guaranteed to return the optimal cost under
// the chosen termination and heuristic.
func (o *RaceOptions) exact(alg compare.Algorithm) bool {
	if alg == compare.Dijkstra && o.termination == core.StopOnReach {
		return false
	}
	if alg == compare.AStar {
		h := strings.ToLower(strings.TrimSpace(o.Heuristic))
		return h != "manhattan"
	}

	return true
}

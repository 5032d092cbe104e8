// Command datafilter smooths columns of a CSV table.
//
// Usage:
//
//	datafilter [flags] [file.csv]
//
// The table is read from the file or, without one, from stdin. Empty cells
// are null. Filtered columns are computed with the selected kernel and
// boundary mode; all other columns are printed unchanged.
//
// Examples:
//
//	datafilter -kernel binomial -size 5 -normalize data.csv
//	datafilter -kernel gaussian -size 9 -sigma 2 -mode mirror -cols 1,2 data.csv
//	datafilter -kernel median -size 3 -format csv < data.csv
//	datafilter -list
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/cwbudde/algo-datafilter/data"
	"github.com/cwbudde/algo-datafilter/filter"
	"github.com/cwbudde/algo-datafilter/filter/kernel"
)

type kernelEntry struct {
	name     string
	build    func(size int, sigma float64) (kernel.Kernel, error)
	hasSigma bool
}

func sized(fn func(int) (kernel.Kernel, error)) func(int, float64) (kernel.Kernel, error) {
	return func(size int, _ float64) (kernel.Kernel, error) { return fn(size) }
}

// median is handled separately; it has no kernel.
const medianName = "median"

var registry = []kernelEntry{
	{"uniform", func(size int, _ float64) (kernel.Kernel, error) { return kernel.Uniform(size, 1) }, false},
	{"binomial", sized(kernel.Binomial), false},
	{"gaussian", kernel.Gaussian, true},
	{"laplacian", sized(kernel.Laplacian), false},
	{"triangular", sized(kernel.Triangular), false},
	{"epanechnikov", sized(kernel.Epanechnikov), false},
	{"cosine", sized(kernel.Cosine), false},
	{"tricube", sized(kernel.Tricube), false},
	{"biweight", sized(kernel.Biweight), false},
}

type config struct {
	kernel    string
	size      int
	sigma     float64
	mode      filter.Mode
	cols      []int
	normalize bool
	header    bool
	format    string
}

func main() {
	kernelName := flag.String("kernel", "uniform", "kernel shape, or \"median\" for a median filter")
	size := flag.Int("size", 3, "kernel or window length in rows")
	sigma := flag.Float64("sigma", 1, "standard deviation for the gaussian kernel")
	modeName := flag.String("mode", "zero", "boundary mode: zero, omit, repeat, mirror, circular")
	colsFlag := flag.String("cols", "", "comma-separated column indices to filter (default: all)")
	normalize := flag.Bool("normalize", false, "scale kernel weights to sum to 1")
	header := flag.Bool("header", false, "first CSV row is a header")
	format := flag.String("format", "table", "output format: table or csv")
	list := flag.Bool("list", false, "list available kernels")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: datafilter [flags] [file.csv]\n\n")
		fmt.Fprintf(os.Stderr, "Smooths columns of a CSV table with a convolution kernel or median window.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  datafilter -kernel binomial -size 5 -normalize data.csv\n")
		fmt.Fprintf(os.Stderr, "  datafilter -kernel gaussian -size 9 -sigma 2 -mode mirror -cols 1,2 data.csv\n")
		fmt.Fprintf(os.Stderr, "  datafilter -kernel median -size 3 -format csv < data.csv\n")
		fmt.Fprintf(os.Stderr, "  datafilter -list\n")
	}
	flag.Parse()

	if *list {
		printList(os.Stdout)
		return
	}

	mode, err := filter.ParseMode(*modeName)
	if err != nil {
		fatalf("%v", err)
	}
	cols, err := parseColumns(*colsFlag)
	if err != nil {
		fatalf("%v", err)
	}
	cfg := config{
		kernel:    strings.ToLower(strings.TrimSpace(*kernelName)),
		size:      *size,
		sigma:     *sigma,
		mode:      mode,
		cols:      cols,
		normalize: *normalize,
		header:    *header,
		format:    *format,
	}

	in := io.Reader(os.Stdin)
	if flag.NArg() > 0 {
		f, err := os.Open(flag.Arg(0))
		if err != nil {
			fatalf("%v", err)
		}
		defer f.Close()
		in = f
	}

	if err := run(in, os.Stdout, cfg); err != nil {
		fatalf("%v", err)
	}
}

func fatalf(format string, args ...any) {
	_, _ = fmt.Fprintf(os.Stderr, "error: "+format+"\n", args...)
	os.Exit(1)
}

func run(in io.Reader, out io.Writer, cfg config) error {
	names, tab, err := readCSV(in, cfg.header)
	if err != nil {
		return err
	}

	view, err := buildFilter(tab, cfg)
	if err != nil {
		return err
	}

	switch cfg.format {
	case "table":
		return writeTable(out, names, view)
	case "csv":
		return writeCSV(out, names, view)
	default:
		return fmt.Errorf("unknown format %q (want table or csv)", cfg.format)
	}
}

func buildFilter(src data.Source, cfg config) (data.Source, error) {
	if cfg.kernel == medianName {
		m, err := filter.NewMedian(src, cfg.size, cfg.size/2, cfg.mode, cfg.cols...)
		if err != nil {
			return nil, err
		}
		return m, nil
	}

	var entry *kernelEntry
	for i := range registry {
		if registry[i].name == cfg.kernel {
			entry = &registry[i]
			break
		}
	}
	if entry == nil {
		return nil, fmt.Errorf("unknown kernel %q (use -list to see available)", cfg.kernel)
	}

	k, err := entry.build(cfg.size, cfg.sigma)
	if err != nil {
		return nil, err
	}
	if cfg.normalize {
		k = k.Normalize()
	}
	c, err := filter.NewConvolutionWithOptions(src, k,
		filter.WithMode(cfg.mode),
		filter.WithColumns(cfg.cols...),
	)
	if err != nil {
		return nil, err
	}
	return c, nil
}

func parseColumns(s string) ([]int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	var cols []int
	for _, part := range strings.Split(s, ",") {
		c, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, fmt.Errorf("invalid column %q: %w", part, err)
		}
		cols = append(cols, c)
	}
	return cols, nil
}

func printList(w io.Writer) {
	names := make([]string, 0, len(registry)+1)
	for _, e := range registry {
		name := e.name
		if e.hasSigma {
			name += " (uses -sigma)"
		}
		names = append(names, name)
	}
	names = append(names, medianName)
	sort.Strings(names)
	for _, n := range names {
		_, _ = fmt.Fprintln(w, n)
	}
}

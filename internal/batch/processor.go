package batch

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"obj-nmdl/internal/convert"
)

// Config holds the settings shared by every conversion of a batch run.
type Config struct {
	OutputDir     string
	Workers       int
	StrictIndices bool
	RangeCheck    bool
	PreviewFormat string // "", "webp" or "tga"
	PreviewSize   int
	Supersample   int

	// Progress receives periodic throughput lines. Nil discards them.
	Progress io.Writer
	// Interval between progress lines, default 2s.
	Interval time.Duration
}

// Result holds the outcome of converting one file.
type Result struct {
	Name    string
	Input   string
	Output  string
	Preview string
	Stats   *convert.Stats
	Success bool
	Error   string
}

// Collect expands the arguments into a sorted list of OBJ files. Directories
// contribute their *.obj entries (not recursive); files are taken as given.
func Collect(args []string) ([]string, error) {
	var files []string
	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil {
			return nil, fmt.Errorf("batch: stat %s: %w", arg, err)
		}
		if !info.IsDir() {
			files = append(files, arg)
			continue
		}
		entries, err := os.ReadDir(arg)
		if err != nil {
			return nil, fmt.Errorf("batch: read dir %s: %w", arg, err)
		}
		for _, e := range entries {
			if !e.IsDir() && strings.EqualFold(filepath.Ext(e.Name()), ".obj") {
				files = append(files, filepath.Join(arg, e.Name()))
			}
		}
	}
	sort.Strings(files)
	return files, nil
}

// Run converts all inputs using a worker pool. Results are returned in input
// order. When several inputs map to the same output file, only the first one
// is converted; the others fail without touching the file.
func Run(cfg Config, inputs []string) []Result {
	total := len(inputs)
	results := make([]Result, total)
	var processed atomic.Int64

	planned := plan(cfg, inputs)
	owner := make(map[string]int, total)
	queue := make([]int, 0, total)
	for i, res := range planned {
		key := filepath.Clean(res.Output)
		if first, ok := owner[key]; ok {
			res.Error = fmt.Sprintf("batch: output %s already produced by %s", res.Output, inputs[first])
			results[i] = res
			processed.Add(1)
			continue
		}
		owner[key] = i
		queue = append(queue, i)
	}

	if cfg.Workers <= 0 {
		cfg.Workers = 1
	}
	progress := cfg.Progress
	if progress == nil {
		progress = io.Discard
	}
	interval := cfg.Interval
	if interval <= 0 {
		interval = 2 * time.Second
	}

	start := time.Now()

	// Progress reporter
	done := make(chan struct{})
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				p := processed.Load()
				if p > 0 {
					elapsed := time.Since(start).Seconds()
					rate := float64(p) / elapsed
					fmt.Fprintf(progress, "  [%d/%d] %.1f files/sec\n", p, total, rate)
				}
			}
		}
	}()

	// Worker pool
	jobs := make(chan int, cfg.Workers*2)
	var wg sync.WaitGroup

	for w := 0; w < cfg.Workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobs {
				results[idx] = processFile(cfg, planned[idx])
				processed.Add(1)
			}
		}()
	}

	for _, i := range queue {
		jobs <- i
	}
	close(jobs)

	wg.Wait()
	close(done)

	return results
}

// plan fills in the name and output paths of every input.
func plan(cfg Config, inputs []string) []Result {
	out := make([]Result, len(inputs))
	for i, input := range inputs {
		stem := strings.TrimSuffix(filepath.Base(input), filepath.Ext(input))
		outDir := cfg.OutputDir
		if outDir == "" {
			outDir = filepath.Dir(input)
		}
		out[i] = Result{
			Name:   stem,
			Input:  input,
			Output: filepath.Join(outDir, stem+".nmdl"),
		}
		if cfg.PreviewFormat != "" {
			out[i].Preview = filepath.Join(outDir, stem+"."+cfg.PreviewFormat)
		}
	}
	return out
}

func processFile(cfg Config, res Result) Result {
	if err := os.MkdirAll(filepath.Dir(res.Output), 0755); err != nil {
		res.Error = err.Error()
		return res
	}

	stats, err := convert.Run(res.Input, res.Output, convert.Options{
		StrictIndices: cfg.StrictIndices,
		RangeCheck:    cfg.RangeCheck,
		Preview:       res.Preview,
		PreviewSize:   cfg.PreviewSize,
		Supersample:   cfg.Supersample,
	})
	if err != nil {
		res.Error = err.Error()
		return res
	}

	res.Stats = stats
	res.Success = true
	return res
}

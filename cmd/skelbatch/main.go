// skelbatch decodes every skeleton archive under a directory on a worker
// pool and reports which fail to load.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"ozz-skel-runtime/internal/batch"
	"ozz-skel-runtime/internal/config"
)

func main() {
	configFile := flag.String("config", "", "Path to config.json file")
	workers := flag.Int("workers", 0, "Number of worker goroutines (default: NumCPU)")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: skelbatch [flags] <dir>")
		os.Exit(1)
	}

	var cfg config.Config
	if *configFile != "" {
		var err error
		cfg, err = config.Load(*configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}
	cfg.Resolve(config.Flags{Workers: *workers})

	paths, err := batch.Scan(flag.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if len(paths) == 0 {
		fmt.Println("No skeleton archives found.")
		return
	}

	start := time.Now()
	results := batch.Run(cfg.Workers, paths, func(done, total int64) {
		elapsed := time.Since(start).Seconds()
		fmt.Printf("  [%d/%d] %.1f archives/sec\n", done, total, float64(done)/elapsed)
	})

	ok, joints := 0, 0
	for _, r := range results {
		if r.Ok() {
			ok++
			joints += r.NumJoints
		} else {
			fmt.Fprintf(os.Stderr, "FAIL %s: %s\n", r.Path, r.Error)
		}
	}
	fmt.Printf("%d/%d archives ok, %d joints total, %.2fs\n",
		ok, len(results), joints, time.Since(start).Seconds())

	if ok != len(results) {
		os.Exit(1)
	}
}

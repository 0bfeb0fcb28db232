// skelviz renders skeleton archives as WebP line drawings of their rest
// hierarchy.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/HugoSmits86/nativewebp"

	"ozz-skel-runtime/internal/buffer"
	"ozz-skel-runtime/internal/config"
	"ozz-skel-runtime/internal/skeleton"
	"ozz-skel-runtime/internal/soa"
	"ozz-skel-runtime/internal/viz"
)

func main() {
	configFile := flag.String("config", "", "Path to config.json file")
	outputDir := flag.String("output", "", "Output directory (default: current directory)")
	size := flag.Int("size", 0, "Output image size in pixels (default: 256)")
	supersample := flag.Int("supersample", 0, "Supersampling factor (default: 2)")
	flag.Parse()

	if flag.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "usage: skelviz [flags] skeleton.ozz ...")
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
	cfg.Resolve(config.Flags{
		OutputDir:   *outputDir,
		RenderSize:  *size,
		Supersample: *supersample,
	})

	failed := false
	for _, path := range flag.Args() {
		out, err := render(path, cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "render %s: %v\n", path, err)
			failed = true
			continue
		}
		fmt.Printf("%s -> %s\n", path, out)
	}
	if failed {
		os.Exit(1)
	}
}

func render(path string, cfg config.Config) (string, error) {
	s, err := skeleton.FromPath(path)
	if err != nil {
		return "", err
	}

	img, err := viz.Render(s, buffer.Slice[soa.Transform](s.RestPoses()), viz.Options{
		Size:        cfg.RenderSize,
		Supersample: cfg.Supersample,
	})
	if err != nil {
		return "", err
	}

	stem := filepath.Base(path)
	stem = strings.TrimSuffix(strings.TrimSuffix(stem, ".zst"), ".ozz")
	out := filepath.Join(cfg.OutputDir, stem+".webp")

	f, err := os.Create(out)
	if err != nil {
		return "", err
	}
	defer f.Close()
	if err := nativewebp.Encode(f, img, nil); err != nil {
		return "", fmt.Errorf("webp encode: %w", err)
	}
	return out, nil
}

// SPDX-License-Identifier: EPL-2.0

// Command genpeaks writes a waveform peak file for every audio file in a
// directory. Settings come from PEAKS_* environment variables; flags override
// them.
package main

import (
	"context"
	"errors"
	"flag"
	"io"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/ik5/audpeaks"
	"github.com/ik5/audpeaks/batch"
	"github.com/ik5/audpeaks/internal/config"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("genpeaks: ")

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		cancel()
		log.Fatal(err)
	}
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	fs := flag.NewFlagSet("genpeaks", flag.ContinueOnError)
	fs.SetOutput(stderr)

	in := fs.String("in", cfg.AudioDir, "directory with the audio files")
	out := fs.String("out", cfg.OutputDir, "directory for the peak files (default <in>/peaks)")
	count := fs.Int("n", cfg.PeakCount, "number of peaks per file")
	workers := fs.Int("workers", cfg.Workers, "files decoded concurrently")
	exts := fs.String("ext", strings.Join(cfg.Extensions, ","), "comma separated file extensions to process")
	progress := fs.Bool("progress", cfg.Progress, "show a progress bar on stderr")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	cfg.AudioDir = *in
	cfg.OutputDir = *out
	cfg.PeakCount = *count
	cfg.Workers = *workers
	cfg.Extensions = config.SplitList(*exts)
	cfg.Progress = *progress

	if err := cfg.Validate(); err != nil {
		return err
	}

	bc := cfg.Batch()
	bc.ProgressOutput = stderr

	dec := audpeaks.NewFileDecoder(audpeaks.NewRegistry(), cfg.BufferSize)

	o, err := batch.New(bc, dec, stdout)
	if err != nil {
		return err
	}

	_, err = o.Run(ctx)
	return err
}

// SPDX-License-Identifier: EPL-2.0

package batch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/ik5/audpeaks/audio"
	"github.com/ik5/audpeaks/peaks"
	"github.com/vbauerster/mpb/v8"
	"github.com/vbauerster/mpb/v8/decor"
	"golang.org/x/sync/errgroup"
)

// Decoder turns an audio file into a mono 16-bit Track.
type Decoder interface {
	DecodeFile(path string) (audio.Track, error)
}

// Result is the outcome for one input file.
type Result struct {
	File     string
	Artifact string
	// Duration in seconds, as reported by the decoder.
	Duration float64
	Err      error
}

// Summary lists results in file name order.
type Summary struct {
	Results []Result
	Failed  int
}

type Orchestrator struct {
	cfg  Config
	dec  Decoder
	out  io.Writer
	exts map[string]struct{}
}

// New validates cfg and returns an Orchestrator reporting to out.
func New(cfg Config, dec Decoder, out io.Writer) (*Orchestrator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	exts := make(map[string]struct{}, len(cfg.Extensions))
	for _, ext := range cfg.Extensions {
		exts[normalizeExt(ext)] = struct{}{}
	}

	return &Orchestrator{
		cfg:  cfg.withDefaults(),
		dec:  dec,
		out:  out,
		exts: exts,
	}, nil
}

// Discover lists the names of the matching files in the input directory,
// sorted by name. Directories are skipped.
func (o *Orchestrator) Discover() ([]string, error) {
	entries, err := os.ReadDir(o.cfg.InputDir)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInputDir, err)
	}

	var files []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if _, ok := o.exts[normalizeExt(filepath.Ext(e.Name()))]; ok {
			files = append(files, e.Name())
		}
	}

	return files, nil
}

// Run processes every discovered file and reports one line per file, in name
// order, to the Orchestrator's writer.
//
// A file that fails to decode or write is reported and counted in
// Summary.Failed; it does not stop the batch. Run only returns an error when
// the input directory cannot be read, the output directory cannot be
// created, or ctx is cancelled.
func (o *Orchestrator) Run(ctx context.Context) (Summary, error) {
	files, err := o.Discover()
	if err != nil {
		return Summary{}, err
	}

	if len(files) == 0 {
		dir, absErr := filepath.Abs(o.cfg.InputDir)
		if absErr != nil {
			dir = o.cfg.InputDir
		}
		fmt.Fprintf(o.out, "No audio files found in %s\n", dir)
		return Summary{}, nil
	}

	if err := os.MkdirAll(o.cfg.OutputDir, 0o755); err != nil {
		return Summary{}, fmt.Errorf("%w: creating %s: %w", ErrWrite, o.cfg.OutputDir, err)
	}

	fmt.Fprintf(o.out, "Processing %d file(s)...\n\n", len(files))

	results := make([]Result, len(files))
	done := make([]chan struct{}, len(files))
	for i := range done {
		done[i] = make(chan struct{})
	}

	go o.schedule(ctx, files, results, done)

	progress, bar := o.progressBar(len(files))

	summary := Summary{Results: results}
	for i := range files {
		<-done[i]
		o.report(results[i])
		if results[i].Err != nil {
			summary.Failed++
		}
		if bar != nil {
			bar.Increment()
		}
	}
	if progress != nil {
		progress.Wait()
	}

	fmt.Fprintln(o.out, "\nDone! Copy the durations above into the music catalog.")
	if summary.Failed > 0 {
		fmt.Fprintf(o.out, "%d of %d file(s) failed.\n", summary.Failed, len(files))
	}

	return summary, ctx.Err()
}

// schedule runs process for every file on at most Workers goroutines and
// closes done[i] once results[i] is set.
func (o *Orchestrator) schedule(ctx context.Context, files []string, results []Result, done []chan struct{}) {
	owners := make(map[string]string, len(files))

	var g errgroup.Group
	g.SetLimit(o.cfg.Workers)

	for i, name := range files {
		artifact := peaks.ArtifactName(name)
		if first, taken := owners[artifact]; taken {
			results[i] = Result{
				File:     name,
				Artifact: artifact,
				Err:      fmt.Errorf("%w: %s (from %s)", ErrArtifactCollision, artifact, first),
			}
			close(done[i])
			continue
		}
		owners[artifact] = name

		g.Go(func() error {
			results[i] = o.process(ctx, name)
			close(done[i])
			return nil
		})
	}

	_ = g.Wait()
}

// process decodes, reduces and writes one file. The decoded samples are not
// retained past this call.
func (o *Orchestrator) process(ctx context.Context, name string) Result {
	res := Result{File: name, Artifact: peaks.ArtifactName(name)}

	if err := ctx.Err(); err != nil {
		res.Err = err
		return res
	}

	track, err := o.decode(filepath.Join(o.cfg.InputDir, name))
	if err != nil {
		res.Err = fmt.Errorf("%w: %w", ErrDecode, err)
		return res
	}
	res.Duration = track.Duration

	values, err := peaks.Reduce(track.Samples, o.cfg.PeakCount)
	if err != nil {
		res.Err = err
		return res
	}

	path := filepath.Join(o.cfg.OutputDir, res.Artifact)
	if err := peaks.WriteFile(path, peaks.NewArtifact(values)); err != nil {
		res.Err = fmt.Errorf("%w: %w", ErrWrite, err)
	}

	return res
}

// decode calls the Decoder, keeping a codec panic local to its file.
func (o *Orchestrator) decode(path string) (track audio.Track, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("decoder panicked: %v", r)
		}
	}()

	return o.dec.DecodeFile(path)
}

func (o *Orchestrator) report(r Result) {
	if r.Err != nil {
		fmt.Fprintf(o.out, "  %s FAILED: %v\n", r.File, r.Err)
		return
	}

	fmt.Fprintf(o.out, "  %s -> %s  (%s)\n", r.File, r.Artifact, FormatDuration(r.Duration))
}

func (o *Orchestrator) progressBar(total int) (*mpb.Progress, *mpb.Bar) {
	if !o.cfg.Progress {
		return nil, nil
	}

	w := o.cfg.ProgressOutput
	if w == nil {
		w = os.Stderr
	}

	p := mpb.New(mpb.WithOutput(w), mpb.WithWidth(64))
	bar := p.AddBar(int64(total),
		mpb.PrependDecorators(
			decor.Name("Peaks: "),
			decor.CountersNoUnit("%d / %d"),
		),
		mpb.AppendDecorators(
			decor.Percentage(),
		),
	)

	return p, bar
}

// FormatDuration renders seconds as m:ss, truncating fractional seconds.
func FormatDuration(seconds float64) string {
	s := max(0, int(seconds))
	return fmt.Sprintf("%d:%02d", s/60, s%60)
}

// IsFileError reports whether err is a per-file failure rather than a
// problem with the whole run.
func IsFileError(err error) bool {
	return errors.Is(err, ErrDecode) || errors.Is(err, ErrWrite) || errors.Is(err, ErrArtifactCollision)
}

// SPDX-License-Identifier: EPL-2.0

// Command wavkit inspects, hashes, normalizes and converts WAV files.
//
//	wavkit <command> [flags] <args>
//
// Settings come from WAVKIT_* variables, optionally stored in a .env file
// in the working directory. Command flags override them.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"math"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/ik5/wavkit/convert"
	"github.com/ik5/wavkit/formats/wav"
	"github.com/ik5/wavkit/internal/config"
	"github.com/ik5/wavkit/internal/logging"
	"github.com/ik5/wavkit/wavfile"
)

const usage = `usage: wavkit <command> [flags] <args>

commands:
  info        <file.wav>               print header fields, chunks and hash
  hash        <file.wav>               print the payload hash
  normalize   <file.wav>               scale a mono file to full scale in place
  copy        <src.wav> <dst.wav>      copy a file
  write-tone  <out.wav>                write a mono sine tone
  convert     <in> <out.wav>           convert any supported file to PCM WAV
  convert-dir <origin> <destination>   convert every file of a directory
  watch       <origin> <destination>   convert files as they appear
`

var (
	errUsage          = errors.New("invalid usage")
	errUnknownCommand = errors.New("unknown command")
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	if err == nil {
		return
	}

	if errors.Is(err, flag.ErrHelp) {
		return
	}

	fmt.Fprintln(os.Stderr, "wavkit:", err)
	if errors.Is(err, errUsage) || errors.Is(err, errUnknownCommand) {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	os.Exit(1)
}

// app carries what every command needs once its flags are parsed.
type app struct {
	cfg   config.Config
	log   *logrus.Logger
	files *wavfile.Files
	out   io.Writer
}

type command func(ctx context.Context, a *app, fs *flag.FlagSet, args []string) error

var commands = map[string]command{
	"info":        runInfo,
	"hash":        runHash,
	"normalize":   runNormalize,
	"copy":        runCopy,
	"write-tone":  runWriteTone,
	"convert":     runConvert,
	"convert-dir": runConvertDir,
	"watch":       runWatch,
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	if len(args) < 1 {
		return errUsage
	}

	cmd, ok := commands[args[0]]
	if !ok {
		return fmt.Errorf("%w: %s", errUnknownCommand, args[0])
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	a := &app{cfg: cfg, out: stdout}

	fs := flag.NewFlagSet(args[0], flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.BoolVar(&a.cfg.Verbose, "v", cfg.Verbose, "log progress")
	fs.StringVar(&a.cfg.LogFile, "log-file", cfg.LogFile, "write logs to a rotating file instead of stderr")

	return cmd(ctx, a, fs, args[1:])
}

// parse parses args into fs, checks the positional argument count and sets
// up logging from the final configuration.
func (a *app) parse(fs *flag.FlagSet, args []string, positional int) (func(), error) {
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if fs.NArg() != positional {
		return nil, fmt.Errorf("%w: %s expects %d arguments, got %d", errUsage, fs.Name(), positional, fs.NArg())
	}

	log, closer := logging.New(logging.Options{Verbose: a.cfg.Verbose, File: a.cfg.LogFile})
	a.log = log
	a.files = wavfile.New(log)

	return func() { _ = closer.Close() }, nil
}

func runInfo(_ context.Context, a *app, fs *flag.FlagSet, args []string) error {
	done, err := a.parse(fs, args, 1)
	if err != nil {
		return err
	}
	defer done()

	name := fs.Arg(0)

	f, err := a.files.Read(name, wavfile.Options{Hash: true})
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "File: %s\n", name)
	fmt.Fprintf(a.out, "Channels: %d\n", f.NumChannels)
	fmt.Fprintf(a.out, "Sample rate: %d\n", f.SampleRate)
	fmt.Fprintf(a.out, "Bits per sample: %d\n", f.BitsPerSample)
	fmt.Fprintf(a.out, "Samples: %d\n", f.NumSamples())
	fmt.Fprintf(a.out, "Duration: %v\n", f.Duration())
	fmt.Fprintf(a.out, "Data offset: %d\n", f.DataOffset)
	fmt.Fprintf(a.out, "Hash: %s\n", f.Hash)

	file, err := os.Open(name)
	if err != nil {
		return err
	}
	defer file.Close()

	chunks, err := wav.Chunks(file)
	if err != nil {
		return err
	}

	fmt.Fprintln(a.out, "Chunks:")
	for _, c := range chunks {
		fmt.Fprintf(a.out, "\t%q\t%d\n", c.ID, c.Size)
	}

	return nil
}

func runHash(_ context.Context, a *app, fs *flag.FlagSet, args []string) error {
	done, err := a.parse(fs, args, 1)
	if err != nil {
		return err
	}
	defer done()

	h, err := a.files.Hash(fs.Arg(0))
	if err != nil {
		return err
	}

	fmt.Fprintln(a.out, h)

	return nil
}

func runNormalize(_ context.Context, a *app, fs *flag.FlagSet, args []string) error {
	done, err := a.parse(fs, args, 1)
	if err != nil {
		return err
	}
	defer done()

	return a.files.Normalize(fs.Arg(0))
}

func runCopy(_ context.Context, a *app, fs *flag.FlagSet, args []string) error {
	done, err := a.parse(fs, args, 2)
	if err != nil {
		return err
	}
	defer done()

	return a.files.Copy(fs.Arg(0), fs.Arg(1))
}

func runWriteTone(_ context.Context, a *app, fs *flag.FlagSet, args []string) error {
	rate := fs.Int("rate", a.cfg.SampleRate, "sample rate in Hz")
	freq := fs.Float64("freq", 440, "tone frequency in Hz")
	length := fs.Duration("length", time.Second, "tone length")
	amp := fs.Float64("amp", 0.5, "peak amplitude, 0 to 1")
	bits := fs.Int("bits", 16, "bits per sample: 16, 24 or 32")

	done, err := a.parse(fs, args, 1)
	if err != nil {
		return err
	}
	defer done()

	if *rate <= 0 {
		return fmt.Errorf("%w: rate must be positive", errUsage)
	}

	step := 2 * math.Pi * *freq / float64(*rate)
	samples := make([]float64, int(length.Seconds()*float64(*rate)))
	for i := range samples {
		samples[i] = *amp * math.Sin(step*float64(i))
	}

	return a.files.Write(fs.Arg(0), samples, *rate, *bits)
}

// conversionFlags holds the flags shared by the converting commands.
type conversionFlags struct {
	backend  *string
	channels *string
	mix      *bool
}

func newConversionFlags(a *app, fs *flag.FlagSet, mix bool) conversionFlags {
	fs.StringVar(&a.cfg.FFmpeg, "ffmpeg", a.cfg.FFmpeg, "ffmpeg executable")
	fs.IntVar(&a.cfg.SampleRate, "rate", a.cfg.SampleRate, "output sample rate in Hz")

	return conversionFlags{
		backend:  fs.String("backend", a.cfg.Backend, "conversion backend: ffmpeg or native"),
		channels: fs.String("channels", "", "comma separated input channels to keep, all when empty"),
		mix:      fs.Bool("mix", mix, "mix the output down to mono"),
	}
}

func (cf conversionFlags) options(a *app) (convert.Options, error) {
	channels, err := parseChannels(*cf.channels)
	if err != nil {
		return convert.Options{}, err
	}

	return convert.Options{
		Channels:   channels,
		Mix:        *cf.mix,
		SampleRate: a.cfg.SampleRate,
	}, nil
}

func (cf conversionFlags) converter(a *app) (convert.Converter, error) {
	switch strings.ToLower(*cf.backend) {
	case config.BackendFFmpeg:
		return convert.NewFFmpeg(a.cfg.FFmpeg, a.log), nil
	case config.BackendNative:
		return convert.NewNative(a.log), nil
	default:
		return nil, fmt.Errorf("%w: unknown backend %q", errUsage, *cf.backend)
	}
}

func parseChannels(s string) ([]int, error) {
	if s == "" {
		return nil, nil
	}

	parts := strings.Split(s, ",")
	channels := make([]int, 0, len(parts))

	for _, p := range parts {
		c, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil || c < 0 {
			return nil, fmt.Errorf("%w: invalid channel %q", errUsage, p)
		}
		channels = append(channels, c)
	}

	return channels, nil
}

func runConvert(ctx context.Context, a *app, fs *flag.FlagSet, args []string) error {
	cf := newConversionFlags(a, fs, false)

	done, err := a.parse(fs, args, 2)
	if err != nil {
		return err
	}
	defer done()

	conv, opts, err := cf.build(a)
	if err != nil {
		return err
	}

	return conv.Convert(ctx, fs.Arg(0), fs.Arg(1), opts)
}

func (cf conversionFlags) build(a *app) (convert.Converter, convert.Options, error) {
	opts, err := cf.options(a)
	if err != nil {
		return nil, convert.Options{}, err
	}

	conv, err := cf.converter(a)
	if err != nil {
		return nil, convert.Options{}, err
	}

	return conv, opts, nil
}

func runConvertDir(ctx context.Context, a *app, fs *flag.FlagSet, args []string) error {
	cf := newConversionFlags(a, fs, true)

	done, err := a.parse(fs, args, 2)
	if err != nil {
		return err
	}
	defer done()

	conv, opts, err := cf.build(a)
	if err != nil {
		return err
	}

	b := convert.NewBatch(conv, a.log)
	b.Options = opts

	return b.Dir(ctx, fs.Arg(0), fs.Arg(1))
}

func runWatch(ctx context.Context, a *app, fs *flag.FlagSet, args []string) error {
	cf := newConversionFlags(a, fs, true)
	settle := fs.Duration("settle", convert.DefaultSettle, "quiet period before a new file is converted")

	done, err := a.parse(fs, args, 2)
	if err != nil {
		return err
	}
	defer done()

	conv, opts, err := cf.build(a)
	if err != nil {
		return err
	}

	b := convert.NewBatch(conv, a.log)
	b.Options = opts
	b.Settle = *settle

	return b.Watch(ctx, fs.Arg(0), fs.Arg(1))
}

package config

// This file implements CLI flag parsing and help text. Every prompt option
// has a flag counterpart so the tool is fully scriptable with --yes.

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
)

// ParseFlags parses args (excluding the program name) into opts. On --help
// or --version it prints to stdout and returns flag.ErrHelp. The single
// optional positional argument is the input directory.
func ParseFlags(opts *Options, args []string, version string) error {
	fs := flag.NewFlagSet("clipchron", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.Usage = func() {}

	var (
		showHelp    bool
		showVersion bool
		noColor     bool
		forceColor  bool
	)

	fs.BoolVar(&opts.Merge, "merge", false, "Concatenate all clips into one output")
	fs.Var(&backendValue{&opts.Backend}, "backend", "Encoder backend: hardware | software")
	fs.Var(&codecValue{&opts.Codec}, "codec", "Codec: h264 | hevc | av1")
	fs.StringVar(&opts.Resolution, "resolution", opts.Resolution, "Output resolution (e.g. 1920x1080) or 'original'")
	fs.StringVar(&opts.FrameRate, "fps", opts.FrameRate, "Output frame rate: 60 | 30 | original")
	fs.BoolVar(&opts.Stabilize, "stabilize", false, "Apply video stabilization filter")
	fs.StringVar(&opts.Preset, "preset", opts.Preset, "NVENC preset: p1 | p4 | p7")
	fs.IntVar(&opts.BitrateMbps, "bitrate", opts.BitrateMbps, "Target video bitrate in Mbps")
	fs.Var(&namingValue{&opts.Naming}, "naming", "Output naming: stem-suffix | sequential | timestamped")
	fs.StringVar(&opts.OutputDir, "output", "", "Output directory (default: derived from input)")
	fs.BoolVar(&opts.AssumeYes, "yes", false, "Skip prompts, take defaults and flags")
	fs.BoolVar(&opts.AssumeYes, "y", false, "Same as --yes")
	fs.BoolVar(&opts.Verbose, "verbose", false, "Verbose output")
	fs.BoolVar(&opts.Verbose, "v", false, "Same as --verbose")
	fs.StringVar(&opts.LogFile, "log", "", "Append logs to file")
	fs.BoolVar(&forceColor, "color", false, "Force colored output")
	fs.BoolVar(&noColor, "no-color", false, "Disable colored output")
	fs.BoolVar(&showVersion, "version", false, "Print version and exit")
	fs.BoolVar(&showHelp, "help", false, "Show this help and exit")
	fs.BoolVar(&showHelp, "h", false, "Same as --help")

	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			printUsage(version)
		}
		return err
	}

	if showHelp {
		printUsage(version)
		return flag.ErrHelp
	}
	if showVersion {
		fmt.Fprintln(os.Stdout, "clipchron v"+version)
		return flag.ErrHelp
	}

	if noColor {
		opts.ColorMode = ColorNever
	} else if forceColor {
		opts.ColorMode = ColorAlways
	}

	rest := fs.Args()
	switch len(rest) {
	case 0:
	case 1:
		opts.InputDir = strings.TrimRight(rest[0], "/")
		if opts.InputDir == "" {
			opts.InputDir = "/"
		}
	default:
		return fmt.Errorf("too many arguments (expected at most one input directory)")
	}
	return nil
}

// printUsage writes the help text to stdout.
func printUsage(version string) {
	fmt.Fprintf(os.Stdout, `clipchron v%s — chronological clip batch encoder/merger

Usage: clipchron [OPTIONS] [input_dir]

Without --yes, any option not given as a flag is asked interactively.

Mode
  --merge                   Concatenate all clips into one output file

Encoding
  --backend <hardware|software>   Encoder backend (default: hardware)
  --codec <h264|hevc|av1>         Codec family (default: h264, av1 hardware-only)
  --resolution <WxH|original>     3840x2160, 2560x1440, 1920x1080, 1280x720 (default: original)
  --fps <60|30|original>          Output frame rate (default: original)
  --stabilize                     Apply video stabilization filter
  --preset <p1|p4|p7>             NVENC preset (default: p4)
  --bitrate <Mbps>                Target video bitrate (default: 50)

Output
  --naming <scheme>         stem-suffix | sequential | timestamped (default: stem-suffix)
  --output <dir>            Output directory (default: derived from input)

Behavior & display
  -y, --yes                 Skip prompts, take defaults and flags
  -v, --verbose             Verbose output
  --log <path>              Append logs to file
  --color / --no-color      Force / disable colored output
  --version                 Print version and exit
  -h, --help                Show this help and exit
`, version)
}

// flag.Value adapters so enum types reject bad values at parse time.

type backendValue struct{ p *Backend }

func (b *backendValue) String() string { return string(*b.p) }
func (b *backendValue) Set(s string) error {
	switch strings.ToLower(s) {
	case "hardware":
		*b.p = BackendHardware
	case "software":
		*b.p = BackendSoftware
	default:
		return fmt.Errorf("invalid backend %q (use 'hardware' or 'software')", s)
	}
	return nil
}

type codecValue struct{ p *Codec }

func (c *codecValue) String() string { return string(*c.p) }
func (c *codecValue) Set(s string) error {
	switch strings.ToLower(s) {
	case "h264":
		*c.p = CodecH264
	case "hevc", "h265":
		*c.p = CodecHEVC
	case "av1":
		*c.p = CodecAV1
	default:
		return fmt.Errorf("invalid codec %q (use 'h264', 'hevc' or 'av1')", s)
	}
	return nil
}

type namingValue struct{ p *NamingScheme }

func (n *namingValue) String() string { return string(*n.p) }
func (n *namingValue) Set(s string) error {
	switch strings.ToLower(s) {
	case "stem-suffix":
		*n.p = NamingStemSuffix
	case "sequential":
		*n.p = NamingSequential
	case "timestamped":
		*n.p = NamingTimestamped
	default:
		return fmt.Errorf("invalid naming scheme %q", s)
	}
	return nil
}

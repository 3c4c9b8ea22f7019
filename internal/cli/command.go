package cli

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/idelchi/dirusage/internal/du"
	"github.com/idelchi/dirusage/internal/dutime"
	"github.com/idelchi/dirusage/internal/units"
	"github.com/idelchi/dirusage/internal/walk"
)

// ErrSummarizeDepth is returned for --summarize combined with a positive --max-depth.
var ErrSummarizeDepth = errors.New("summarizing conflicts with --max-depth")

// CLI represents the command-line interface.
type CLI struct {
	version string
}

// New creates a new CLI instance with the given version.
func New(version string) CLI {
	return CLI{version: version}
}

type humanMode int

const (
	humanNone humanMode = iota
	humanBinary
	humanSI
)

// flags holds the raw command-line values before resolution.
type flags struct {
	all          bool
	apparentSize bool
	blockSize    string
	human        humanMode
	total        bool
	maxDepth     int
	summarize    bool
	separateDirs bool
	threshold    string
	oneFS        bool
	dereference  walk.Dereference
	excludes     []string
	excludeFrom  []string
	inodes       bool
	timeWord     string
	timeStyle    string
	null         bool
	progress     bool
	debug        bool
	version      bool
}

//nolint:funlen // Flag table
func (f *flags) register(fs *pflag.FlagSet) {
	fs.BoolVarP(&f.all, "all", "a", false, "Write counts for all files, not just directories")
	fs.BoolVar(&f.apparentSize, "apparent-size", false, "Print apparent sizes rather than disk usage")
	action(fs, "bytes", "b", "Equivalent to '--apparent-size --block-size=1'", func() {
		f.apparentSize = true
		f.blockSize, f.human = "1", humanNone
	})
	fs.VarP(&stringAction{kind: "SIZE", fn: func(v string) {
		f.blockSize, f.human = v, humanNone
	}}, "block-size", "B", "Scale sizes by SIZE before printing them (e.g. 1K, 4MiB, 1MB)")
	action(fs, "kibibytes", "k", "Like --block-size=1K", func() { f.blockSize, f.human = "1K", humanNone })
	action(fs, "mebibytes", "m", "Like --block-size=1M", func() { f.blockSize, f.human = "1M", humanNone })
	action(fs, "human-readable", "h", "Print sizes in powers of 1024 (e.g. 2M)", func() { f.human = humanBinary })
	action(fs, "si", "", "Print sizes in powers of 1000 (e.g. 2MB)", func() { f.human = humanSI })
	fs.BoolVarP(&f.total, "total", "c", false, "Produce a grand total")
	fs.IntVarP(&f.maxDepth, "max-depth", "d", du.Unlimited,
		"Print the total for an entry only if it is N or fewer levels below the argument (-1=unlimited)")
	fs.BoolVarP(&f.summarize, "summarize", "s", false, "Display only a total for each argument")
	fs.BoolVarP(&f.separateDirs, "separate-dirs", "S", false, "For directories do not include the size of their contents")
	fs.StringVarP(&f.threshold, "threshold", "t", "",
		"Exclude entries smaller than SIZE if positive, or entries greater than SIZE if negative")
	fs.BoolVarP(&f.oneFS, "one-file-system", "x", false, "Skip directories on different file systems")
	action(fs, "dereference", "L", "Dereference all symbolic links", func() { f.dereference = walk.Always })
	action(fs, "dereference-args", "D", "Dereference only symlinks that are listed on the command line", func() {
		f.dereference = walk.Args
	})
	args := action(fs, "dereference-args-h", "H", "Equivalent to --dereference-args", func() { f.dereference = walk.Args })
	args.Hidden = true
	action(fs, "no-dereference", "P", "Don't follow any symbolic links (default)", func() { f.dereference = walk.Never })
	fs.StringArrayVar(&f.excludes, "exclude", nil, "Hide entries matching the glob PATTERN (repeatable)")
	fs.StringArrayVarP(&f.excludeFrom, "exclude-from", "X", nil, "Hide entries matching any glob in FILE")
	fs.BoolVar(&f.inodes, "inodes", false, "List inode usage information instead of block usage")
	fs.StringVar(&f.timeWord, "time", "", "Show the time of the last modification of any file in the directory, "+
		"or WORD: atime, access, use, ctime, status")
	fs.Lookup("time").NoOptDefVal = "mtime"
	fs.StringVar(&f.timeStyle, "time-style", "", "Show times using STYLE: full-iso, long-iso (default), iso, +FORMAT")
	fs.BoolVarP(&f.null, "null", "0", false, "End each output line with NUL, not newline")
	fs.BoolVar(&f.progress, "progress", false, "Show a progress line on stderr while scanning")
	fs.BoolVar(&f.debug, "debug", false, "Enable debug output")
	fs.BoolVarP(&f.version, "version", "v", false, "Show version and exit")
	fs.Bool("help", false, "Display this help and exit")
}

// resolve turns the parsed flags into validated engine options.
//
//nolint:cyclop,funlen // Flag resolution
func (f *flags) resolve(fs *pflag.FlagSet, lookup LookupEnv) (du.Options, error) {
	options := du.DefaultOptions()

	options.All = f.all
	options.ApparentSize = f.apparentSize
	options.Total = f.total
	options.SeparateDirs = f.separateDirs
	options.OneFileSystem = f.oneFS
	options.Dereference = f.dereference
	options.Inodes = f.inodes
	options.NullTerminated = f.null
	options.Debug = f.debug

	blockSize, human := f.blockSize, f.human
	if blockSize == "" && human == humanNone {
		blockSize, human = envScale(lookup)
	}

	options.HumanReadable = human == humanBinary
	options.SI = human == humanSI

	if blockSize != "" {
		size, err := units.Parse(blockSize)
		if err != nil {
			return options, fmt.Errorf("invalid block size %q: %w", blockSize, err)
		}

		options.BlockSize = size
	}

	options.MaxDepth = f.maxDepth

	if f.summarize {
		if fs.Changed("max-depth") && f.maxDepth != 0 {
			return options, fmt.Errorf("%w=%d", ErrSummarizeDepth, f.maxDepth)
		}

		options.MaxDepth = 0
	}

	if f.threshold != "" {
		threshold, err := du.ParseThreshold(f.threshold)
		if err != nil {
			return options, err
		}

		options.Threshold = threshold
	}

	options.Excludes = append(options.Excludes, f.excludes...)

	for _, path := range f.excludeFrom {
		patterns, err := readPatterns(path)
		if err != nil {
			return options, err
		}

		options.Excludes = append(options.Excludes, patterns...)
	}

	if fs.Changed("time") {
		kind, err := du.ParseTimeKind(f.timeWord)
		if err != nil {
			return options, err
		}

		options.Time = true
		options.TimeKind = kind
	}

	style := f.timeStyle
	if !fs.Changed("time-style") {
		style = envTimeStyle(lookup)
	}

	if style != "" {
		parsed, err := dutime.ParseStyle(style)
		if err != nil {
			return options, err
		}

		options.TimeStyle = parsed
	}

	if err := options.Validate(); err != nil {
		return options, err
	}

	return options, nil
}

// readPatterns reads one glob per line, ignoring blank lines.
func readPatterns(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("reading exclusion file: %w", err)
	}
	defer file.Close()

	var patterns []string

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		if line := strings.TrimRight(scanner.Text(), "\r"); line != "" {
			patterns = append(patterns, line)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading exclusion file %q: %w", path, err)
	}

	return patterns, nil
}

func (c CLI) command(lookup LookupEnv) *cobra.Command {
	var f flags

	cmd := &cobra.Command{
		Use:   "dirusage [flags] [path...]",
		Short: "Summarize disk usage of each path, recursively for directories",
		Long: heredoc.Doc(`
			dirusage summarizes the disk usage of each path, recursively for directories.

			Positional Arguments:
			  path                   Files or directories to analyze. Defaults to the current directory.

			Sizes:
			  SIZE is an integer with an optional unit: K, M, G, T, P, E are powers of 1024,
			  as are KiB, MiB, ...; KB, MB, ... are powers of 1000. A unit alone means one of it.
			  Without flags the block size comes from DU_BLOCK_SIZE, BLOCK_SIZE or BLOCKSIZE,
			  and defaults to 1K.

			Exclusions hide matching entries from the output only. Their sizes still count
			towards the totals of the directories containing them.
		`),
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if f.version {
				_, err := fmt.Fprintln(cmd.OutOrStdout(), c.version)

				return err
			}

			options, err := f.resolve(cmd.Flags(), lookup)
			if err != nil {
				return err
			}

			return logic(cmd.Context(), options, args, cmd.OutOrStdout(), cmd.ErrOrStderr(), f.progress)
		},
	}

	f.register(cmd.Flags())
	cmd.Flags().SortFlags = false

	return cmd
}

// Execute runs the CLI with the process arguments.
func (c CLI) Execute() error {
	return c.command(os.LookupEnv).Execute()
}

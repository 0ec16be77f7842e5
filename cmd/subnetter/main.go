// subnetter splits an IPv4 network into the smallest equal subnets that
// each hold a minimum number of usable hosts and writes them to a file.
//
// Values missing from the command line are read from stdin, one prompt per
// line, so the tool can be driven interactively or from a pipe.
package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/spf13/pflag"

	"github.com/Flarenzy/subnetter/internal/codec"
	"github.com/Flarenzy/subnetter/internal/domain"
	"github.com/Flarenzy/subnetter/internal/sink"
	"github.com/Flarenzy/subnetter/internal/subnet"
)

const defaultOutput = "file.json"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

type options struct {
	cidr        string
	minHosts    string
	workers     int
	output      string
	format      string
	compression string
	verify      bool
	locate      string
	logLevel    string
}

func parseFlags(args []string, stderr io.Writer) (options, *pflag.FlagSet, error) {
	var opts options

	flagSet := pflag.NewFlagSet("subnetter", pflag.ContinueOnError)
	flagSet.SetOutput(stderr)
	flagSet.StringVar(&opts.cidr, "cidr", "", "base network as <ip>/<prefix>")
	flagSet.StringVar(&opts.minHosts, "min-hosts", "", "minimum usable hosts per subnet")
	flagSet.IntVarP(&opts.workers, "workers", "w", 1, "number of concurrent workers (1-32)")
	flagSet.StringVarP(&opts.output, "output", "o", defaultOutput, "output file, truncated if it exists")
	flagSet.StringVar(&opts.format, "format", string(codec.JSON), "output format: json, cbor or yaml")
	flagSet.StringVar(&opts.compression, "compress", string(sink.CompressionNone), "output compression: none, gzip, zstd or lz4")
	flagSet.BoolVar(&opts.verify, "verify", false, "check that the subnets tile the base network")
	flagSet.StringVar(&opts.locate, "locate", "", "print the subnet holding this address")
	flagSet.StringVar(&opts.logLevel, "log-level", "info", "log level: debug, info, warn or error")

	if err := flagSet.Parse(args); err != nil {
		return options{}, nil, err
	}
	if rest := flagSet.Args(); len(rest) > 0 {
		return options{}, nil, fmt.Errorf("unexpected argument: %s", rest[0])
	}
	return opts, flagSet, nil
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	opts, flagSet, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(opts.logLevel)); err != nil {
		return fmt.Errorf("--log-level: %w", err)
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	format, err := codec.ParseFormat(opts.format)
	if err != nil {
		return err
	}
	compression, err := sink.ParseCompression(opts.compression)
	if err != nil {
		return err
	}

	input, err := promptMissing(opts, flagSet, bufio.NewScanner(stdin), stdout)
	if err != nil {
		return err
	}

	output := opts.output
	if !flagSet.Changed("output") {
		output = strings.TrimSuffix(defaultOutput, ".json") + "." + string(format) + compression.Extension()
	}

	start := time.Now()
	service := domain.NewLoggingPartitionService(logger, domain.NewPartitionService(domain.Options{
		DefaultWorkers: 1,
		Verify:         opts.verify,
	}))

	partition, err := service.Partition(ctx, input)
	if err != nil {
		return err
	}
	logger.Info("before write", "elapsed", time.Since(start))

	if err := writeSubnets(output, format, compression, partition.Result.Subnets); err != nil {
		return err
	}
	logger.Info("after write", "elapsed", time.Since(start), "file", output, "subnets", len(partition.Result.Subnets))

	if opts.locate != "" {
		return locate(stdout, partition.Result, opts.locate)
	}
	return nil
}

// promptMissing fills in the network, host count and worker count from
// stdin when they were not given as flags. The worker count is only asked
// for when the network is.
func promptMissing(opts options, flagSet *pflag.FlagSet, in *bufio.Scanner, out io.Writer) (domain.PartitionInput, error) {
	interactive := opts.cidr == ""

	input := domain.PartitionInput{CIDR: opts.cidr, Workers: opts.workers}

	if interactive {
		line, err := prompt(in, out, "Ip address (<ip>/<cidr>):")
		if err != nil {
			return domain.PartitionInput{}, err
		}
		input.CIDR = line
	}

	rawMin := opts.minHosts
	if !flagSet.Changed("min-hosts") {
		line, err := prompt(in, out, "Minimum number of usable ip per subnets:")
		if err != nil {
			return domain.PartitionInput{}, err
		}
		rawMin = line
	}
	minHosts, err := domain.ParseMinHosts(rawMin)
	if err != nil {
		return domain.PartitionInput{}, err
	}
	input.MinHosts = minHosts

	if interactive && !flagSet.Changed("workers") {
		line, err := prompt(in, out, "Number of threads:")
		if err != nil {
			return domain.PartitionInput{}, err
		}
		if line != "" {
			if input.Workers, err = domain.ParseWorkers(line); err != nil {
				return domain.PartitionInput{}, err
			}
		}
	}

	return input, nil
}

func prompt(in *bufio.Scanner, out io.Writer, question string) (string, error) {
	fmt.Fprintln(out, question)
	if !in.Scan() {
		if err := in.Err(); err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return "", fmt.Errorf("read stdin: %w", io.ErrUnexpectedEOF)
	}
	return strings.TrimSpace(in.Text()), nil
}

func writeSubnets(path string, format codec.Format, compression sink.Compression, subnets []subnet.Descriptor) (err error) {
	f, err := sink.Create(path, compression)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close %s: %w", path, closeErr)
		}
	}()

	if err := codec.WriteSubnets(f, format, subnets); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

func locate(w io.Writer, res subnet.Result, raw string) error {
	address, err := subnet.ParseAddress(raw)
	if err != nil {
		return fmt.Errorf("--locate: %w", err)
	}

	index, err := subnet.NewIndex(res.Subnets)
	if err != nil {
		return err
	}
	d, ok := index.Locate(address)
	if !ok {
		return fmt.Errorf("%s is not in %s", address, res.Block())
	}

	usable := "not usable"
	if d.IsUsable(address) {
		usable = "usable"
	}
	_, err = fmt.Fprintf(w, "%s is in %s (%s - %s), %s host\n", address, d.Prefix(), d.First, d.Last, usable)
	return err
}

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"sort"

	"github.com/specialistvlad/recipegen/internal/ctxlog"
	"github.com/specialistvlad/recipegen/internal/imagefilter"
)

// main converts the ingredient JPGs to transparent PNGs.
func main() {
	if err := run(os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			fmt.Fprintln(os.Stderr, "Error:", err)
			os.Exit(1)
		}
	}
}

func run(outW, errW io.Writer, args []string) error {
	flagSet := flag.NewFlagSet("imgfilter", flag.ContinueOnError)
	flagSet.SetOutput(errW)
	dirFlag := flagSet.String("dir", imagefilter.DefaultDir, "Directory holding the ingredient JPGs.")
	thresholdFlag := flagSet.Uint("threshold", imagefilter.DefaultThreshold, "Pixels with R, G and B above this value become transparent (0-255).")
	maxSizeFlag := flagSet.Int("max-size", 0, "Scale images down so neither side exceeds this many pixels. 0 keeps the source size.")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "warn", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	if err := flagSet.Parse(args); err != nil {
		return err
	}
	if *thresholdFlag > 255 {
		return fmt.Errorf("invalid threshold %d: must be between 0 and 255", *thresholdFlag)
	}
	if *maxSizeFlag < 0 {
		return fmt.Errorf("invalid max-size %d: must not be negative", *maxSizeFlag)
	}

	logger := ctxlog.New(*logLevelFlag, *logFormatFlag, errW)
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	ctx = ctxlog.WithLogger(ctx, logger)

	res, err := imagefilter.ProcessDir(ctx, *dirFlag, imagefilter.Options{
		Threshold: uint8(*thresholdFlag),
		MaxSize:   *maxSizeFlag,
	})
	if err != nil {
		return err
	}

	failed := make([]string, 0, len(res.Failed))
	for in := range res.Failed {
		failed = append(failed, in)
	}
	sort.Strings(failed)
	for _, in := range failed {
		fmt.Fprintf(outW, "✗ Error processing %s: %v\n", in, res.Failed[in])
	}

	fmt.Fprintf(outW, "\n✓ Successfully processed %d/%d images\n", res.Processed, res.Total)
	fmt.Fprintf(outW, "PNG files saved to: %s\n", filepath.Clean(*dirFlag))
	return nil
}

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/pomo-mondreganto/imgsim/internal/cleaner"
	"github.com/pomo-mondreganto/imgsim/internal/config"
	"github.com/pomo-mondreganto/imgsim/internal/console"
	"github.com/pomo-mondreganto/imgsim/internal/imgmatch"
	"github.com/pomo-mondreganto/imgsim/internal/selection"
	"github.com/schollz/progressbar/v3"
	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

func main() {
	cfg := setupConfig()
	initLogger()
	setLogLevel(cfg)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	m := createMatcher(cfg)
	if err := run(ctx, cfg, m, os.Stdin, os.Stdout); err != nil {
		logrus.Fatalf("Error: %v", err)
	}
}

// run scans, lists the matches, reads the selection and deletes what was picked.
// Deletion failures are logged per file and do not make run fail.
func run(ctx context.Context, cfg *config.Config, m *imgmatch.Matcher, in io.Reader, out io.Writer) error {
	matches, err := m.FindSimilar(ctx, cfg.Image, cfg.Directory)
	if err != nil {
		return fmt.Errorf("scanning for similar images: %w", err)
	}
	logrus.Debugf("Hashed %d files", m.Hashed())

	names := imgmatch.Names(matches)
	if len(names) == 0 {
		if _, err := fmt.Fprintln(out, "No similar images found."); err != nil {
			return fmt.Errorf("writing result: %w", err)
		}
		return nil
	}
	if err := console.PrintMatches(out, names); err != nil {
		return fmt.Errorf("printing matches: %w", err)
	}

	input := cfg.Select
	if input == "" {
		if input, err = console.AskSelection(in, out); err != nil {
			return err
		}
	}
	sel, err := selection.Parse(input, len(names))
	if err != nil {
		return fmt.Errorf("parsing selection %q: %w", input, err)
	}
	if sel.Exit {
		logrus.Debug("Exit requested, nothing deleted")
		return nil
	}

	toDelete := selection.Pick(names, sel.Indices)
	if len(toDelete) == 0 {
		logrus.Info("Nothing selected for deletion")
		return nil
	}
	outcomes := cleaner.New(cfg.Directory).Delete(toDelete)
	if failed := cleaner.Failed(outcomes); failed > 0 {
		logrus.Warnf("Failed to delete %d of %d files", failed, len(outcomes))
	}
	return nil
}

func setupConfig() *config.Config {
	config.RegisterFlags(pflag.CommandLine)
	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags] <image> <directory>\n", os.Args[0])
		pflag.PrintDefaults()
	}
	pflag.Parse()

	if pflag.NArg() != 2 {
		pflag.Usage()
		os.Exit(2)
	}

	if err := config.Bind(viper.GetViper(), pflag.CommandLine); err != nil {
		logrus.Fatalf("Error binding flags: %v", err)
	}

	cfg, err := config.Get()
	if err != nil {
		logrus.Fatalf("Error reading config: %v", err)
	}
	cfg.Image = pflag.Arg(0)
	cfg.Directory = pflag.Arg(1)
	if err := cfg.Validate(); err != nil {
		logrus.Fatalf("Invalid config: %v", err)
	}
	return cfg
}

func initLogger() {
	mainFormatter := &logrus.TextFormatter{}
	mainFormatter.FullTimestamp = true
	mainFormatter.PadLevelText = true
	mainFormatter.TimestampFormat = "2006-01-02 15:04:05"
	logrus.SetFormatter(mainFormatter)
}

func setLogLevel(cfg *config.Config) {
	switch strings.ToUpper(cfg.LogLevel) {
	case "DEBUG":
		logrus.SetLevel(logrus.DebugLevel)
	case "INFO":
		logrus.SetLevel(logrus.InfoLevel)
	case "WARNING":
		logrus.SetLevel(logrus.WarnLevel)
	case "ERROR":
		logrus.SetLevel(logrus.ErrorLevel)
	default:
		logrus.Errorf("Invalid log level provided: %s", cfg.LogLevel)
		pflag.PrintDefaults()
		os.Exit(1)
	}
}

func createMatcher(cfg *config.Config) *imgmatch.Matcher {
	m, err := imgmatch.NewMatcher(cfg.Threshold, cfg.Workers)
	if err != nil {
		logrus.Fatalf("Error creating image matcher: %v", err)
	}
	if cfg.Progress {
		m.SetProgress(func(total int) imgmatch.Progress {
			return progressbar.Default(int64(total), "Hashing images")
		})
	}
	return m
}

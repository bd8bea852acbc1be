// Package main provides the CLI entry point for worksched.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	"github.com/ukaji3/worksched-go/internal/config"
	"github.com/ukaji3/worksched-go/pkg/worksched"
	"github.com/ukaji3/worksched-go/pkg/worksched/models"
	"github.com/ukaji3/worksched-go/pkg/worksched/output"
	"github.com/ukaji3/worksched-go/pkg/worksched/view"
)

var (
	configPath string
	logLevel   string
	outputPath string
	pretty     bool
	format     string
	dateStr    string
	offset     int
	weekType   int
	employees  []string
	officeOnly bool
	sortOrder  string
	detailName string
	sheetsJSON bool
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "worksched [input.xlsx]",
		Short: "Show the bi-weekly work-location schedule",
		Long: `worksched reads the employee schedule workbook and shows who works
where for the current (or a chosen) week, as text, JSON or HTML.`,
		Args: cobra.MaximumNArgs(1),
		RunE: run,
	}

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default: worksched.yaml if present)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVarP(&outputPath, "output", "o", "", "Output file path (default: stdout)")
	rootCmd.PersistentFlags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")

	rootCmd.Flags().StringVar(&format, "format", "text", "Output format: text, json, html")
	rootCmd.Flags().StringVar(&dateStr, "date", "", "Show the week containing this date (YYYY-MM-DD, default: today)")
	rootCmd.Flags().IntVar(&offset, "offset", 0, "Move the displayed week by this many weeks")
	rootCmd.Flags().IntVar(&weekType, "week", 0, "Force week type 1 or 2 (0: derive from date)")
	rootCmd.Flags().StringArrayVar(&employees, "employee", nil, "Only show this employee (repeatable)")
	rootCmd.Flags().BoolVar(&officeOnly, "office-only", false, "Only show office hours")
	rootCmd.Flags().StringVar(&sortOrder, "sort", "first", "Sort names by first or last token")
	rootCmd.Flags().StringVar(&detailName, "detail", "", "Show both weeks for one employee")

	sheetsCmd := &cobra.Command{
		Use:   "sheets [input.xlsx]",
		Short: "List workbook sheets and the employee names they resolve to",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runSheets,
	}
	sheetsCmd.Flags().BoolVar(&sheetsJSON, "json", false, "Output JSON instead of text")
	rootCmd.AddCommand(sheetsCmd)

	return rootCmd
}

// setup loads configuration and builds the logger and load options.
func setup() (*config.Config, worksched.Options, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, worksched.Options{}, fmt.Errorf("config: %w", err)
	}
	if logLevel != "" {
		cfg.LogLevel = logLevel
	}
	level, err := cfg.Level()
	if err != nil {
		return nil, worksched.Options{}, err
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	opts, err := cfg.Options(logger)
	if err != nil {
		return nil, worksched.Options{}, err
	}
	return cfg, opts, nil
}

func inputPath(cfg *config.Config, args []string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	if cfg.WorkbookPath != "" {
		return cfg.WorkbookPath, nil
	}
	return "", fmt.Errorf("no input workbook given (argument or workbook_path)")
}

func today() (time.Time, error) {
	if dateStr == "" {
		return time.Now(), nil
	}
	t, err := time.ParseInLocation(time.DateOnly, dateStr, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date: %s (want YYYY-MM-DD)", dateStr)
	}
	return t, nil
}

// buildState applies the command-line navigation and filters to the
// state of the week containing now.
func buildState(opts worksched.Options, now time.Time) (view.State, error) {
	clock := opts.Clock()
	st := view.NewState(clock, now)

	dir := 1
	if offset < 0 {
		dir = -1
	}
	for i := 0; i < offset*dir; i++ {
		next, err := st.Navigate(clock, dir)
		if err != nil {
			return st, err
		}
		st = next
	}

	if weekType != 0 {
		next, err := st.SelectWeekType(models.WeekType(weekType))
		if err != nil {
			return st, fmt.Errorf("invalid week: %d (must be 1 or 2)", weekType)
		}
		st = next
	}

	order, err := view.ParseSortOrder(sortOrder)
	if err != nil {
		return st, err
	}
	return st.WithSelected(employees...).WithOfficeOnly(officeOnly).WithSortOrder(order), nil
}

func run(cmd *cobra.Command, args []string) error {
	cfg, opts, err := setup()
	if err != nil {
		return err
	}
	path, err := inputPath(cfg, args)
	if err != nil {
		return err
	}
	now, err := today()
	if err != nil {
		return err
	}
	switch format {
	case "text", "json", "html":
	default:
		return fmt.Errorf("invalid format: %s (must be text, json, or html)", format)
	}

	schedule, err := worksched.Load(cmd.Context(), path, opts)
	if err != nil {
		return fmt.Errorf("loading schedule failed: %w", err)
	}

	st, err := buildState(opts, now)
	if err != nil {
		return err
	}

	return writeOutput(cmd.OutOrStdout(), func(w io.Writer) error {
		if detailName != "" {
			d, err := view.BuildDetail(schedule, detailName, st.Cursor.WeekType)
			if err != nil {
				return err
			}
			return render(w, d, output.WriteDetailText, output.WriteDetailHTML)
		}
		g := view.BuildGrid(schedule, st, now)
		return render(w, g, output.WriteGridText, output.WriteGridHTML)
	})
}

func render[T any](w io.Writer, v T, text, html func(io.Writer, T) error) error {
	switch format {
	case "json":
		data, err := output.ToJSON(v, pretty)
		if err != nil {
			return fmt.Errorf("serialization failed: %w", err)
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	case "html":
		return html(w, v)
	default:
		return text(w, v)
	}
}

// writeOutput sends rendered output to --output or stdout.
func writeOutput(stdout io.Writer, fn func(io.Writer) error) error {
	if outputPath == "" {
		return fn(stdout)
	}
	f, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	if err := fn(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func runSheets(cmd *cobra.Command, args []string) error {
	cfg, opts, err := setup()
	if err != nil {
		return err
	}
	path, err := inputPath(cfg, args)
	if err != nil {
		return err
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return fmt.Errorf("file not found: %s", path)
	}

	sheets, err := worksched.ListSheets(path, opts)
	if err != nil {
		return err
	}

	return writeOutput(cmd.OutOrStdout(), func(w io.Writer) error {
		if sheetsJSON {
			data, err := output.ToJSON(sheets, pretty)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(w, string(data))
			return err
		}
		for _, s := range sheets {
			if s.Reserved {
				fmt.Fprintf(w, "%s\t(reserved)\n", s.SheetName)
				continue
			}
			fmt.Fprintf(w, "%s\t%s\n", s.SheetName, s.Employee)
		}
		return nil
	})
}

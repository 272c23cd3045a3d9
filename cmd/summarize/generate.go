package main

import (
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/spf13/cobra"

	"pubsummary/internal/config"
	"pubsummary/internal/dataprocessing"
	"pubsummary/internal/files"
	"pubsummary/internal/infrastructure"
	"pubsummary/internal/services"
	"pubsummary/internal/validation"
	"pubsummary/pkg/contracts/domain"
)

// generateOptions holds the parsed generate flags.
type generateOptions struct {
	input         string
	output        string
	start         int
	end           int
	summaryFormat string
	exportFormat  string
	title         string
	verbose       bool
}

// NewGenerateCmd creates the generate command.
func NewGenerateCmd() *cobra.Command {
	defaults := config.Default()

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate summary artifacts from a workbook",
		Long: `Generate reads the first worksheet of a publication workbook, keeps the rows
whose year lies in [start, end] and writes:

  <name>_journal_summary.<ext>     journal rows (omitted when empty)
  <name>_conference_summary.<ext>  conference rows (omitted when empty)
  <name>_summary.<ext>             the summary document

Examples:
  summarize generate --input pubs.xlsx --start 2019 --end 2021
  summarize generate -i pubs.xlsx -s 2020 -e 2020 -o out --summary-format markdown --export-format csv`,
		Args: cobra.NoArgs,
		RunE: runGenerateCmd,
	}

	cmd.Flags().StringP("input", "i", "", "Input workbook (.xlsx)")
	cmd.Flags().IntP("start", "s", 0, "First year to include")
	cmd.Flags().IntP("end", "e", 0, "Last year to include")
	cmd.Flags().StringP("output", "o", defaults.Paths.OutputDir, "Output directory (created if needed)")
	cmd.Flags().String("summary-format", defaults.Report.SummaryFormat, "Summary document format: docx|markdown")
	cmd.Flags().String("export-format", defaults.Report.ExportFormat, "Table format: xlsx|csv")
	cmd.Flags().String("title", defaults.Report.Title, "Summary document title")

	_ = cmd.MarkFlagRequired("input")
	_ = cmd.MarkFlagRequired("start")
	_ = cmd.MarkFlagRequired("end")

	return cmd
}

func parseGenerateFlags(cmd *cobra.Command) (generateOptions, error) {
	var opts generateOptions
	var err error
	flags := cmd.Flags()

	if opts.input, err = flags.GetString("input"); err != nil {
		return opts, err
	}
	if opts.output, err = flags.GetString("output"); err != nil {
		return opts, err
	}
	if opts.start, err = flags.GetInt("start"); err != nil {
		return opts, err
	}
	if opts.end, err = flags.GetInt("end"); err != nil {
		return opts, err
	}
	if opts.summaryFormat, err = flags.GetString("summary-format"); err != nil {
		return opts, err
	}
	if opts.exportFormat, err = flags.GetString("export-format"); err != nil {
		return opts, err
	}
	if opts.title, err = flags.GetString("title"); err != nil {
		return opts, err
	}
	if opts.verbose, err = cmd.Flags().GetBool("verbose"); err != nil {
		return opts, err
	}
	return opts, nil
}

// runGenerateCmd executes the generate command.
func runGenerateCmd(cmd *cobra.Command, _ []string) error {
	opts, err := parseGenerateFlags(cmd)
	if err != nil {
		return err
	}

	level := slog.LevelWarn
	if opts.verbose {
		level = slog.LevelDebug
	}
	logger := infrastructure.NewLoggerWithWriter(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})

	validator := validation.NewFileValidator(logger, 0)
	upload, err := validator.ValidateExcelFile(opts.input)
	if err != nil {
		return fmt.Errorf("invalid input %s: %w", opts.input, err)
	}

	// The CLI never stores uploads; both directories point at the output.
	paths, err := config.ResolvePaths(config.PathsConfig{UploadDir: opts.output, OutputDir: opts.output}, "", "")
	if err != nil {
		return err
	}
	manager := files.NewManager(paths, logger)
	if err := manager.EnsureDirectories(); err != nil {
		return err
	}

	svc, err := services.NewSummaryService(
		dataprocessing.NewLoader(logger),
		manager,
		validator,
		services.SummaryOptions{
			Title:         opts.title,
			SummaryFormat: opts.summaryFormat,
			ExportFormat:  opts.exportFormat,
		},
		logger,
	)
	if err != nil {
		return err
	}

	artifacts, err := svc.Generate(cmd.Context(), upload.BaseName, opts.input,
		domain.Criteria{StartYear: opts.start, EndYear: opts.end})
	if err != nil {
		return err
	}

	printArtifacts(cmd, paths.OutputDir, artifacts)
	return nil
}

func printArtifacts(cmd *cobra.Command, dir string, a domain.Artifacts) {
	out := cmd.OutOrStdout()
	for _, name := range []string{a.Journal, a.Conference, a.Summary} {
		if name != "" {
			fmt.Fprintln(out, filepath.Join(dir, name))
		}
	}
	fmt.Fprintf(out, "journals: %d, conferences: %d\n", a.JournalCount, a.ConferenceCount)
}

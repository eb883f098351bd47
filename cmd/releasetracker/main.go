// Package main provides the CLI entry point for the release formula tracker.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/theshubhamgour/ReleaseFormulaTracker/internal/config"
	"github.com/theshubhamgour/ReleaseFormulaTracker/internal/ctxlog"
	"github.com/theshubhamgour/ReleaseFormulaTracker/pkg/tracker"
	"github.com/theshubhamgour/ReleaseFormulaTracker/pkg/tracker/output"
	"github.com/theshubhamgour/ReleaseFormulaTracker/pkg/tracker/stack"
)

var (
	configPath string
	verbose    bool

	outputPath string
	pretty     bool
	sheets     []string

	releaseVersion string
	environment    string
	composePath    string
	includeDeps    bool
	validate       bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "releasetracker",
		Short: "Extract spreadsheet formulas and synthesize release stacks",
		Long: `releasetracker classifies the formulas of a release-tracking Excel
workbook and synthesizes a deployment stack manifest from them.`,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to tracker.yaml (default: built-in defaults)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	analyzeCmd := &cobra.Command{
		Use:   "analyze [input.xlsx]",
		Short: "Classify formulas and report statistics as JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  runAnalyze,
	}
	analyzeCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path (default: stdout)")
	analyzeCmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")
	analyzeCmd.Flags().StringSliceVar(&sheets, "sheets", nil, "Target sheets (default: release-tracking sheets)")

	generateCmd := &cobra.Command{
		Use:   "generate [input.xlsx]",
		Short: "Synthesize a stack manifest from the workbook formulas",
		Args:  cobra.ExactArgs(1),
		RunE:  runGenerate,
	}
	generateCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path (default: stdout)")
	generateCmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")
	generateCmd.Flags().StringSliceVar(&sheets, "sheets", nil, "Target sheets (default: release-tracking sheets)")
	generateCmd.Flags().StringVar(&releaseVersion, "version", "", "Release version (default: the workbook's selected version)")
	generateCmd.Flags().StringVar(&environment, "environment", "", "Target environment (default: from config)")
	generateCmd.Flags().StringVar(&composePath, "compose", "", "Also export a Docker Compose file to this path")
	generateCmd.Flags().BoolVar(&includeDeps, "include-dependencies", true, "Expand component dependencies")
	generateCmd.Flags().BoolVar(&validate, "validate", true, "Validate formulas before synthesis")

	versionsCmd := &cobra.Command{
		Use:   "versions [input.xlsx]",
		Short: "List the release versions available in the workbook",
		Args:  cobra.ExactArgs(1),
		RunE:  runVersions,
	}

	servicesCmd := &cobra.Command{
		Use:   "services [input.xlsx]",
		Short: "List detected service names with their Docker images",
		Args:  cobra.ExactArgs(1),
		RunE:  runServices,
	}
	servicesCmd.Flags().StringVar(&releaseVersion, "version", "", "Release version for image tags")

	rootCmd.AddCommand(analyzeCmd, generateCmd, versionsCmd, servicesCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runContext() context.Context {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	return ctxlog.WithLogger(context.Background(), logger)
}

func analyzeWorkbook(ctx context.Context, path string, cfg *config.Config) (*tracker.Analysis, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("file not found: %s", path)
	}

	targetSheets := sheets
	if targetSheets == nil {
		targetSheets = cfg.TargetSheets
	}
	return tracker.Analyze(ctx, path, tracker.Options{TargetSheets: targetSheets})
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	ctx := runContext()
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	analysis, err := analyzeWorkbook(ctx, args[0], cfg)
	if err != nil {
		return fmt.Errorf("analysis failed: %w", err)
	}

	jsonData, err := output.ToJSON(analysis, pretty)
	if err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}
	return writeResult(jsonData)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	ctx := runContext()
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	analysis, err := analyzeWorkbook(ctx, args[0], cfg)
	if err != nil {
		return fmt.Errorf("analysis failed: %w", err)
	}

	version := releaseVersion
	if version == "" {
		version = analysis.SelectedVersion
	}
	if version == "" {
		return fmt.Errorf("no release version: pass --version or set cell B5 of the pre-release-version sheet")
	}

	env := environment
	if env == "" {
		env = cfg.Environment
	}
	include := includeDeps
	if !cmd.Flags().Changed("include-dependencies") {
		include = cfg.IncludeDependencies
	}
	doValidate := validate
	if !cmd.Flags().Changed("validate") {
		doValidate = cfg.ValidateFormulas
	}

	orchestrator := stack.NewOrchestrator(nil)
	manifest := orchestrator.Generate(ctx, stack.Request{
		Records:             analysis.Formulas,
		ProductVersion:      version,
		Environment:         env,
		IncludeDependencies: include,
		ValidateFormulas:    doValidate,
	})

	jsonData, err := output.ToJSON(manifest, pretty)
	if err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}
	if err := writeResult(jsonData); err != nil {
		return err
	}

	if !manifest.Success {
		return fmt.Errorf("stack generation failed: %s", manifest.Error)
	}

	if composePath != "" {
		composeData, err := output.Compose(manifest)
		if err != nil {
			return fmt.Errorf("compose export failed: %w", err)
		}
		if err := os.WriteFile(composePath, composeData, 0644); err != nil {
			return fmt.Errorf("failed to write compose file: %w", err)
		}
	}
	return nil
}

func runVersions(cmd *cobra.Command, args []string) error {
	ctx := runContext()
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	analysis, err := analyzeWorkbook(ctx, args[0], cfg)
	if err != nil {
		return fmt.Errorf("analysis failed: %w", err)
	}

	for _, v := range analysis.ReleaseVersions {
		fmt.Println(v)
	}
	return nil
}

func runServices(cmd *cobra.Command, args []string) error {
	ctx := runContext()
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	analysis, err := analyzeWorkbook(ctx, args[0], cfg)
	if err != nil {
		return fmt.Errorf("analysis failed: %w", err)
	}

	version := releaseVersion
	if version == "" {
		version = analysis.SelectedVersion
	}
	for _, s := range analysis.Services {
		fmt.Printf("%s\t%s\n", s.Name, output.DockerImage(s.Name, version))
	}
	return nil
}

func writeResult(data []byte) error {
	if outputPath != "" {
		if err := os.WriteFile(outputPath, data, 0644); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		return nil
	}
	fmt.Println(string(data))
	return nil
}

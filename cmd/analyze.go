package cmd

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/spigell/resume-auditor/internal/ai"
	"github.com/spigell/resume-auditor/internal/ai/gemini"
	"github.com/spigell/resume-auditor/internal/analysis"
	"github.com/spigell/resume-auditor/internal/extract"
	"github.com/spigell/resume-auditor/internal/logger"
	"github.com/spigell/resume-auditor/internal/report"
	"github.com/spigell/resume-auditor/internal/secrets"

	"github.com/google/uuid"
	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

const (
	PromptShowReport = "Show full report"
	PromptDumpJSON   = "Dump report JSON to file"
	PromptExit       = "Exit"
)

var errExit = errors.New("exit requested")

var prompt = promptui.Select{
	Label: "What next?",
	Items: []string{PromptShowReport, PromptDumpJSON, PromptExit},
}

var analyzeCmd = &cobra.Command{
	Use:   "analyze <resume-file>",
	Short: "Analyze a resume document and report scores and insights",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		analyze(cmd, args[0])
	},
}

func init() {
	rootCmd.AddCommand(analyzeCmd)

	analyzeCmd.Flags().StringP("output", "o", "", "write the report JSON to this file")
	analyzeCmd.Flags().BoolP("auto-approve", "y", false, "print the report and exit without the interactive prompt")
	analyzeCmd.Flags().Bool("show-text", false, "print the extracted resume text before analysis")

	viper.BindPFlag("output", analyzeCmd.Flags().Lookup("output"))
}

// analyze is the main command for the cli.
func analyze(cmd *cobra.Command, path string) {
	ctx := context.Background()

	base, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig()
	if err != nil {
		base.Fatal("getting a config", zap.Error(err))
	}

	// One analysis id per invocation ties every log entry to this run.
	auditLogger := logger.WithAuditFields(base, config.AI.Provider, config.AI.Gemini.Model, uuid.NewString())

	auditLogger.Info("starting the resume-auditor", zap.String("version", version))

	resumeText, err := extract.Text(path)
	if err != nil {
		auditLogger.Fatal("extracting resume text", zap.Error(err), zap.String("path", path))
	}

	auditLogger.Info("extracted resume text", zap.Int("characters", len(resumeText)))

	if cmd.Flag("show-text").Value.String() == "true" {
		fmt.Println(resumeText)
	}

	auditor, err := newAnalyzer(ctx, config.AI, auditLogger)
	if err != nil {
		auditLogger.Fatal("building the analyzer", zap.Error(err))
	}

	raw, err := auditor.Analyze(ctx, resumeText)
	if err != nil {
		var unparsable *gemini.UnparsableResponseError
		if errors.As(err, &unparsable) {
			// Surface the raw model text before exiting.
			fmt.Println(unparsable.Raw)
		}
		auditLogger.Fatal("analyzing resume", zap.Error(err))
	}

	rep, err := buildReport(raw, config.Scoring)
	if err != nil {
		auditLogger.Fatal("scoring analysis results", zap.Error(err))
	}

	auditLogger.Info("analysis complete",
		zap.Float64("overall_score", rep.Scores.OverallScore),
		zap.Int("failed_checks", len(rep.FailedChecks())),
		zap.Int("insights", len(rep.Insights)),
	)

	if output := viper.GetString("output"); output != "" {
		if err := rep.ToFile(output); err != nil {
			auditLogger.Fatal("writing report file", zap.Error(err))
		}
		auditLogger.Info("report written", zap.String("filename", output))
	}

	if cmd.Flag("auto-approve").Value.String() == "true" {
		fmt.Print(rep.Render())
		return
	}

	for {
		_, action, err := prompt.Run()
		if err != nil {
			auditLogger.Fatal("exiting", zap.Error(err))
		}

		if err := handleAction(action, rep, auditLogger); err != nil {
			if errors.Is(err, errExit) {
				return
			}
			auditLogger.Fatal("exiting", zap.Error(err))
		}
	}
}

func handleAction(action string, rep *report.Report, logger *zap.Logger) error {
	switch action {
	case PromptShowReport:
		fmt.Print(rep.Render())
		return nil
	case PromptDumpJSON:
		filename, err := rep.DumpToTmpFile()
		if err != nil {
			return fmt.Errorf("dump report to file: %w", err)
		}
		logger.Info("dumping report to file", zap.String("filename", filename))
		return nil
	case PromptExit:
		logger.Info("exiting", zap.String("reason", "got exit from prompt"))
		return errExit
	default:
		return fmt.Errorf("invalid action: %s", action)
	}
}

// buildReport runs the raw model output through the scoring pipeline:
// strict decode, significance normalization, overall and per-category
// scores, and insight generation.
func buildReport(raw *ai.RawAnalysis, scoring *ScoringConfig) (*report.Report, error) {
	checks, err := analysis.DecodeChecks(raw.Checks)
	if err != nil {
		return nil, err
	}

	strengths := analysis.DecodeStrengths(raw.Strengths)
	normalized := analysis.Normalize(checks)

	penalty := analysis.DefaultSeverityPenalty
	if scoring != nil && scoring.SeverityPenalty > 0 {
		penalty = scoring.SeverityPenalty
	}

	scores := analysis.ScoreReport{
		OverallScore:   analysis.OverallScore(normalized, penalty),
		CategoryScores: analysis.CategoryScores(normalized),
	}

	insights := analysis.GenerateInsights(normalized, strengths)

	return report.New(normalized, strengths, scores, insights), nil
}

func newAnalyzer(ctx context.Context, cfg *AIConfig, logger *zap.Logger) (ai.Analyzer, error) {
	provider := strings.TrimSpace(strings.ToLower(cfg.Provider))
	if provider != "" && provider != "gemini" {
		return nil, fmt.Errorf("unsupported ai provider: %s", cfg.Provider)
	}

	apiKeyFile := strings.TrimSpace(cfg.Gemini.APIKeyFile)
	if apiKeyFile == "" {
		apiKeyFile = strings.TrimSpace(viper.GetString("ai.gemini.api-key-file"))
	}

	apiKey, err := secrets.Load(secrets.Source{
		Name:  "gemini api key",
		Value: cfg.Gemini.APIKey,
		File:  apiKeyFile,
	})
	if err != nil {
		return nil, fmt.Errorf("%w (set ai.gemini.api-key-file or GEMINI_API_KEY_FILE)", err)
	}

	genLogger := logger.With(
		zap.String("provider", "gemini"),
		zap.String("model", cfg.Gemini.Model),
	)

	generator, err := gemini.NewGenerator(ctx, apiKey, cfg.Gemini.Model, cfg.Gemini.MaxRetries, genLogger)
	if err != nil {
		return nil, err
	}

	return gemini.NewAuditor(generator, genLogger, cfg.Gemini.MaxLogLength)
}

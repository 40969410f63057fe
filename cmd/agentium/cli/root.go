package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/RNSsanjay/agentium/internal/job"
	"github.com/RNSsanjay/agentium/internal/pipeline"
	"github.com/RNSsanjay/agentium/internal/ui"
	"github.com/RNSsanjay/agentium/internal/ui/tui"
)

var (
	verbose     bool
	ciMode      bool
	backendName string
	modelName   string
	outputDir   string
	interactive bool
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "agentium",
	Short: "AI-enhanced text processing toolkit",
	Long: `Agentium runs text-processing demos (content pipeline, news analysis,
data dashboard, communication hub) with interchangeable AI backends.
Without an API key everything still works on local heuristics.`,
}

var pipelineCmd = &cobra.Command{
	Use:   "pipeline [file]",
	Short: "Run the content processing pipeline",
	Long: `Runs extraction, condensation, optimization, insight generation and
summarization over a document. The file argument is either a job spec
(.yaml/.json) or a plain text document; without it the built-in sample
content is processed.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		content := pipeline.SampleContent
		if len(args) == 1 {
			text, err := loadInput(args[0])
			if err != nil {
				fmt.Println(err)
				os.Exit(1)
			}
			content = text
		}
		runDemo(func(ctx context.Context, r *Runner) error {
			return r.RunPipeline(ctx, content)
		})
	},
}

var newsCmd = &cobra.Command{
	Use:   "news",
	Short: "Run the multilingual news analyzer",
	Run: func(cmd *cobra.Command, args []string) {
		runDemo(func(ctx context.Context, r *Runner) error {
			return r.RunNews(ctx)
		})
	},
}

var dashboardCmd = &cobra.Command{
	Use:   "dashboard [data-dir]",
	Short: "Run the data intelligence dashboard",
	Long: `Analyzes a set of data sources and exports JSON, CSV and Markdown
artifacts. With a data-dir argument, sources are discovered from csv,
json and text files in that directory; otherwise the built-in sample
datasets are used.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		dataDir := ""
		if len(args) == 1 {
			dataDir = args[0]
		}
		runDemo(func(ctx context.Context, r *Runner) error {
			return r.RunDashboard(ctx, dataDir)
		})
	},
}

var hubCmd = &cobra.Command{
	Use:   "hub [message-file]",
	Short: "Run the smart communication hub",
	Long: `Optimizes a message, shapes per-channel variants and distributes them.
Console and file channels are always on; Slack and webhook channels
activate when slack.token/slack.channel or webhook.url are configured.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		messagePath := ""
		if len(args) == 1 {
			messagePath = args[0]
		}
		runDemo(func(ctx context.Context, r *Runner) error {
			return r.RunHub(ctx, messagePath)
		})
	},
}

func Execute() {
	// A .env file is a convenience, never a requirement.
	_ = godotenv.Load()

	if err := RootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	RootCmd.AddCommand(pipelineCmd)
	RootCmd.AddCommand(newsCmd)
	RootCmd.AddCommand(dashboardCmd)
	RootCmd.AddCommand(hubCmd)

	RootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	RootCmd.PersistentFlags().BoolVar(&ciMode, "ci", false, "CI mode: JSON logs, non-interactive")
	RootCmd.PersistentFlags().StringVarP(&backendName, "enhancer", "e", "auto", "Enhancer backend (auto, gemini, openai, ollama, local)")
	RootCmd.PersistentFlags().StringVarP(&modelName, "model", "m", "", "Model name (default depends on backend)")
	RootCmd.PersistentFlags().StringVarP(&outputDir, "output", "o", "output", "Directory for exported artifacts")
	RootCmd.PersistentFlags().BoolVarP(&interactive, "interactive", "i", false, "Start interactive TUI")
}

// loadInput reads the pipeline input: a job spec for .yaml/.json files,
// raw document text for anything else.
func loadInput(path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml", ".json":
		spec, err := job.Load(path)
		if err != nil {
			return "", err
		}
		validation := job.Validate(*spec)
		for _, w := range validation.Warnings {
			fmt.Println("warning:", w)
		}
		if !validation.Valid {
			return "", fmt.Errorf("invalid job file: %s", strings.Join(validation.Errors, "; "))
		}
		if spec.OutputDir != "" {
			outputDir = spec.OutputDir
		}
		if spec.Enhancer != "" {
			backendName = spec.Enhancer
		}
		if spec.Model != "" {
			modelName = spec.Model
		}
		return spec.ResolveInput()
	default:
		data, err := os.ReadFile(path) // #nosec G304
		if err != nil {
			return "", fmt.Errorf("failed to read input: %w", err)
		}
		return string(data), nil
	}
}

// runDemo builds the runner and executes one demo, with the TUI wrapped
// around it when interactive mode is on.
func runDemo(demo func(context.Context, *Runner) error) {
	r, cleanup, err := newRunner(context.Background())
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	code := executeDemo(r, demo, os.Stderr)
	cleanup()
	if code != 0 {
		os.Exit(code)
	}
}

// executeDemo runs one demo and reports its exit code. A failing demo
// always prints its error to errOut before the caller terminates the
// process, including failures on the TUI path.
func executeDemo(r *Runner, demo func(context.Context, *Runner) error, errOut io.Writer) int {
	if interactive && !ciMode {
		model := tui.NewModel("Agentium", pipeline.NumSteps)
		program := tea.NewProgram(model)
		r.UI = tui.NewTUI(program)

		var demoErr error
		go func() {
			demoErr = demo(context.Background(), r)
			program.Quit()
		}()

		if _, err := program.Run(); err != nil {
			fmt.Fprintf(errOut, "TUI error: %v\n", err)
			return 1
		}
		if demoErr != nil {
			fmt.Fprintln(errOut, "Error:", demoErr)
			return 1
		}
		return 0
	}

	r.UI = ui.SilentUI{}
	if err := demo(context.Background(), r); err != nil {
		fmt.Fprintln(errOut, "Error:", err)
		return 1
	}
	return 0
}

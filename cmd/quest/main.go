package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"auraquest/cmd/quest/tui"
	"auraquest/internal/config"
	"auraquest/internal/logging"
	"auraquest/internal/planner"
	"auraquest/internal/printer"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	// Global flags
	cfgFile   string
	verbose   bool
	workspace string

	// Logger for non-interactive commands
	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "quest",
	Short: "AuraQuest - AI travel itinerary planner",
	Long: `AuraQuest walks you through a seven step trip wizard and asks a
generative model for a personalised day-by-day itinerary with dining picks,
local tips and a budget breakdown.

Run without arguments to start the interactive planner.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// The interactive planner owns the terminal; it logs to file only.
		if !cmd.HasParent() {
			return nil
		}

		zc := zap.NewProductionConfig()
		if verbose {
			zc.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = zc.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
		_ = logging.Sync()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPlanner(cmd.Context())
	},
}

func init() {
	cobra.OnInitialize(initViper)

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&cfgFile, "config", config.DefaultPath(), "config file")
	pf.BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	pf.StringVarP(&workspace, "workspace", "w", "", "workspace directory for logs (default: current directory)")

	f := rootCmd.Flags()
	f.String("provider", "", "generation provider (gemini, openai)")
	f.String("model", "", "model name (default depends on provider)")
	f.String("base-url", "", "override the provider endpoint")
	f.String("print-format", "", "export format (markdown, html, pdf, terminal)")
	f.String("output-dir", "", "directory for exported itineraries")
	f.String("resume-step", "", "wizard step after a failed generation (first, last)")
	f.Bool("debug", false, "write debug logs to <workspace>/.quest/logs")

	for _, name := range []string{"provider", "model", "base-url", "print-format", "output-dir", "resume-step", "debug"} {
		_ = viper.BindPFlag(name, f.Lookup(name))
	}

	rootCmd.AddCommand(initConfigCmd, showConfigCmd)
}

func initViper() {
	viper.SetEnvPrefix("QUEST")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
}

// loadConfig reads the YAML config and layers flags and QUEST_* env on top.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, err
	}

	if v := viper.GetString("provider"); v != "" {
		cfg.SetProvider(v)
	}
	if v := viper.GetString("model"); v != "" {
		cfg.LLM.Model = v
	}
	if v := viper.GetString("base-url"); v != "" {
		cfg.LLM.BaseURL = v
	}
	if v := viper.GetString("print-format"); v != "" {
		cfg.Print.Format = v
	}
	if v := viper.GetString("output-dir"); v != "" {
		cfg.Print.OutputDir = v
	}
	if v := viper.GetString("resume-step"); v != "" {
		cfg.Wizard.ResumeStep = v
	}
	if viper.GetBool("debug") {
		cfg.Logging.DebugMode = true
		cfg.Logging.Level = "debug"
	}
	return cfg, nil
}

func resolveWorkspace() (string, error) {
	if workspace != "" {
		return workspace, nil
	}
	return os.Getwd()
}

func runPlanner(ctx context.Context) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	ws, err := resolveWorkspace()
	if err != nil {
		return fmt.Errorf("failed to resolve workspace: %w", err)
	}
	if err := logging.Initialize(ws, cfg.Logging); err != nil {
		return fmt.Errorf("failed to initialize logging: %w", err)
	}
	boot := logging.Get(logging.CategoryBoot)
	boot.Info("starting planner: provider=%s model=%s print=%s", cfg.LLM.Provider, cfg.LLM.ResolvedModel(), cfg.Print.Format)

	gen, err := planner.NewGenerator(ctx, cfg.LLM)
	if err != nil {
		return fmt.Errorf("failed to create generator: %w", err)
	}
	prn, err := printer.New(cfg.Print, os.Stdout)
	if err != nil {
		return fmt.Errorf("failed to create printer: %w", err)
	}

	model := tui.New(ctx, tui.Options{
		Planner:        planner.New(gen),
		Printer:        prn,
		ResumeStep:     cfg.Wizard.ResumeStep,
		StatusInterval: cfg.GetStatusInterval(),
	})

	// Terminal exports are printed above the program, which needs the
	// normal screen buffer.
	var popts []tea.ProgramOption
	if cfg.Print.Format != config.PrintTerminal {
		popts = append(popts, tea.WithAltScreen())
	}
	popts = append(popts, tea.WithContext(ctx))

	if _, err := tea.NewProgram(model, popts...).Run(); err != nil && ctx.Err() == nil {
		boot.Error("planner exited: %v", err)
		return fmt.Errorf("planner failed: %w", err)
	}
	boot.Info("planner closed")
	return nil
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

package app

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/blackwell-systems/ideation/internal/config"
	"github.com/blackwell-systems/ideation/internal/ideation"
	"github.com/blackwell-systems/ideation/internal/logging"
	"github.com/blackwell-systems/ideation/internal/output"
)

// session bundles what every command needs to run the engine.
type session struct {
	root   string
	cfg    *config.Config
	logger *zap.Logger
	engine *ideation.Engine
}

// newSession resolves the root path, loads configuration, applies flag
// overrides and builds an engine with the built-in analyzers.
func newSession(cmd *cobra.Command, root string) (*session, error) {
	if root == "" {
		root = "."
	}

	cfg, err := config.Load(flagConfig, root)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	applyFlags(cmd, cfg)

	output.SetNoColor(flagNoColor || !output.ColorEnabled(os.Stdout, cfg.Output.Color))

	logger, err := logging.New(flagVerbose)
	if err != nil {
		return nil, err
	}
	if cfg.File != "" {
		logger.Debug("loaded config", zap.String("file", cfg.File))
	}

	engine, err := ideation.New(ideation.Config{
		Root:           root,
		Focus:          cfg.Focus,
		MaxFiles:       cfg.MaxFiles,
		IgnorePatterns: cfg.IgnorePatterns,
		Concurrency:    cfg.Concurrency,
	}, nil, logger)
	if err != nil {
		_ = logger.Sync()
		return nil, err
	}

	return &session{root: root, cfg: cfg, logger: logger, engine: engine}, nil
}

// applyFlags lets explicitly set flags win over file and environment values.
func applyFlags(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()
	if flags.Changed("focus") {
		cfg.Focus = flagFocus
	}
	if flags.Changed("max-files") {
		cfg.MaxFiles = flagMaxFiles
	}
	if flags.Changed("ignore") {
		cfg.IgnorePatterns = flagIgnore
	}
	if flags.Changed("concurrency") {
		cfg.Concurrency = flagConcurrency
	}
}

func (s *session) close() {
	_ = s.logger.Sync()
}

func rootArg(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return "."
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"tokdump/internal/config"
	"tokdump/internal/driver"
	"tokdump/internal/logging"
	"tokdump/internal/observ"
	"tokdump/internal/source"
	"tokdump/internal/version"
	"tokdump/pkg/tokprint"
)

const stdinName = "<stdin>"

var errNoInput = errors.New("no input: pass files or pipe source into stdin")

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tokdump [flags] [file...]",
		Short: "Print the tokens of source files, one per line",
		Long: `tokdump runs the reference lexer over the given files (or stdin) and prints
every token's text on its own line, in source order. Files are printed in argument order.`,
		Version:      version.String(isTerminal(os.Stdout)),
		SilenceUsage: true,
		RunE:         runTokdump,
	}
	cmd.SetVersionTemplate("tokdump {{.Version}}\n")

	cmd.Flags().String("config", "", "path to "+config.FileName+" (default: searched upwards from the working directory)")
	cmd.Flags().Int("jobs", 0, "max files tokenized in parallel (0 = GOMAXPROCS)")
	cmd.Flags().Bool("timings", false, "print phase timings to stderr")
	cmd.Flags().String("log-level", "", "log level on stderr (off|error|warn|info|debug|trace); overrides the config")
	return cmd
}

func runTokdump(cmd *cobra.Command, args []string) error {
	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return fmt.Errorf("failed to get config flag: %w", err)
	}
	jobs, err := cmd.Flags().GetInt("jobs")
	if err != nil {
		return fmt.Errorf("failed to get jobs flag: %w", err)
	}
	showTimings, err := cmd.Flags().GetBool("timings")
	if err != nil {
		return fmt.Errorf("failed to get timings flag: %w", err)
	}
	timer := observ.NewTimer()
	fs := afero.NewOsFs()

	cfg, usedConfig, err := config.Resolve(fs, configPath, ".")
	if err != nil {
		return err
	}

	level := cfg.Log.Level
	if cmd.Flags().Changed("log-level") {
		if level, err = cmd.Flags().GetString("log-level"); err != nil {
			return fmt.Errorf("failed to get log-level flag: %w", err)
		}
	}
	if err := logging.Setup(cmd.ErrOrStderr(), level); err != nil {
		return err
	}
	log := logging.Named("cmd")
	if usedConfig != "" {
		log.Debug("loaded config", "path", usedConfig)
	}

	opts := cfg.LexerOptions(nil)
	fileSet := source.NewFileSetFS(fs)

	var results []driver.TokenizeResult
	lexPhase := timer.Begin("tokenize")
	if len(args) == 0 {
		// Без аргументов читаем stdin, но не ждём ввода с клавиатуры
		in := cmd.InOrStdin()
		if f, ok := in.(*os.File); ok && isTerminal(f) {
			_ = cmd.Usage()
			return errNoInput
		}
		data, err := io.ReadAll(in)
		if err != nil {
			return fmt.Errorf("failed to read stdin: %w", err)
		}
		results = []driver.TokenizeResult{*driver.TokenizeSource(fileSet, stdinName, data, opts)}
	} else {
		results, err = driver.TokenizeFiles(cmd.Context(), fileSet, args, opts, jobs)
		if err != nil {
			return fmt.Errorf("tokenization failed: %w", err)
		}
	}

	tokens := driver.Flatten(results)
	timer.End(lexPhase, fmt.Sprintf("%d files, %d tokens", len(results), len(tokens)))

	for _, res := range results {
		for _, rep := range res.Reports {
			log.Warn(rep.Msg, "code", rep.Code, "at", fmt.Sprintf("%s:%d:%d", res.Path, rep.Pos.Line, rep.Pos.Col))
		}
	}

	printPhase := timer.Begin("print")
	err = tokprint.Fprint(cmd.OutOrStdout(), tokens)
	timer.End(printPhase, "")
	if showTimings {
		fmt.Fprint(cmd.ErrOrStderr(), timer.Summary())
	}
	return err
}

package cli

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/specialistvlad/recipegen/internal/app"
	"github.com/specialistvlad/recipegen/internal/recipe"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// envConfig holds the defaults taken from the environment. Flags override them.
type envConfig struct {
	Root      string `env:"RECIPEGEN_ROOT" envDefault:"."`
	TablePath string `env:"RECIPEGEN_TABLE"`
	OutDir    string `env:"RECIPEGEN_OUT_DIR"`
	LogLevel  string `env:"RECIPEGEN_LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"RECIPEGEN_LOG_FORMAT" envDefault:"text"`
	FailFast  bool   `env:"RECIPEGEN_FAIL_FAST"`
}

// Parse processes command-line arguments. environ replaces the process
// environment when non-nil. It returns a populated Config, a boolean
// indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, environ map[string]string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")

	var defaults envConfig
	if err := env.ParseWithOptions(&defaults, env.Options{Environment: environ}); err != nil {
		return nil, false, &ExitError{Code: 2, Message: fmt.Sprintf("invalid environment: %v", err)}
	}

	flagSet := flag.NewFlagSet("recipegen", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
recipegen - Compiles the alchemy recipe table into PotionRecipeData resources.

Usage:
  recipegen [options]

Running without options compiles data/alchemy_recipe_table.json into
resources/recipes/ under the current directory.

Options:
`)
		flagSet.PrintDefaults()
	}

	rootFlag := flagSet.String("root", defaults.Root, "Game project root. Env: RECIPEGEN_ROOT.")
	tableFlag := flagSet.String("table", defaults.TablePath, "Recipe table (.json or .hcl), relative to the root. Env: RECIPEGEN_TABLE.")
	outFlag := flagSet.String("out", defaults.OutDir, "Output directory, relative to the root. Env: RECIPEGEN_OUT_DIR.")
	logFormatFlag := flagSet.String("log-format", defaults.LogFormat, "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", defaults.LogLevel, "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	failFastFlag := flagSet.Bool("fail-fast", defaults.FailFast, "Abort on the first failing recipe without writing any file.")
	schemaFlag := flagSet.Bool("schema", false, "Print the JSON Schema of the recipe table and exit.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	if flagSet.NArg() > 0 {
		return nil, false, &ExitError{Code: 2, Message: fmt.Sprintf("unexpected arguments: %s", strings.Join(flagSet.Args(), " "))}
	}
	slog.Debug("Arguments parsed successfully.")

	if *schemaFlag {
		schema, err := recipe.Schema()
		if err != nil {
			return nil, false, err
		}
		fmt.Fprintln(output, string(schema))
		return nil, true, nil
	}

	config, err := app.NewConfig(app.Config{
		Root:      *rootFlag,
		TablePath: *tableFlag,
		OutDir:    *outFlag,
		LogFormat: strings.ToLower(*logFormatFlag),
		LogLevel:  strings.ToLower(*logLevelFlag),
		FailFast:  *failFastFlag,
	})
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", config)
	return config, false, nil
}

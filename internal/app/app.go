package app

import (
	"io"
	"log/slog"

	"github.com/specialistvlad/recipegen/internal/compiler"
	"github.com/specialistvlad/recipegen/internal/config"
	"github.com/specialistvlad/recipegen/internal/ctxlog"
	"github.com/specialistvlad/recipegen/internal/resolver"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW     io.Writer
	logger   *slog.Logger
	config   *Config
	loader   config.Loader
	compiler *compiler.Compiler
}

// NewApp is the constructor for the main application. Confirmation lines go
// to outW and logs to logW.
func NewApp(outW, logW io.Writer, cfg *Config, loader config.Loader) *App {
	logger := ctxlog.New(cfg.LogLevel, cfg.LogFormat, logW)
	logger.Debug("Logger configured successfully.")

	folders := resolver.DefaultFolders(cfg.Root)
	for _, f := range folders {
		logger.Debug("Resource folder configured.", "dir", f.Dir, "prefix", f.Prefix)
	}

	return &App{
		outW:     outW,
		logger:   logger,
		config:   cfg,
		loader:   loader,
		compiler: compiler.New(resolver.New(folders...), compiler.DefaultOptions()),
	}
}

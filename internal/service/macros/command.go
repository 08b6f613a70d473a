package macros

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"text/template"

	"github.com/oshokin/hearth-version/internal/config"
	"github.com/oshokin/hearth-version/internal/logger"
	"github.com/oshokin/hearth-version/internal/vcs"
)

// Options contains inputs for the hearth-version entry point.
type Options struct {
	// Settings holds the document path, git directory and log level.
	Settings *config.Settings
	// TemplatePath is rendered with the macros when set; otherwise the version is printed.
	TemplatePath string
	// Runner overrides the command runner; nil runs git in Settings.Dir.
	Runner vcs.CommandRunner
	// Output receives the version or the rendered template.
	Output io.Writer
}

// errSettingsNotSet is returned when Options carry no settings.
var errSettingsNotSet = errors.New("settings are not set")

// Run resolves the version and either prints it or renders a template with it.
func Run(ctx context.Context, opts *Options) error {
	// Set context with logger name for tracking.
	ctx = logger.WithName(ctx, "hearth-version")

	if opts.Settings == nil {
		return errSettingsNotSet
	}

	ctx = logger.WithKV(ctx, "document", opts.Settings.DocumentPath)

	doc, err := loadDocument(ctx, opts.Settings.DocumentPath)
	if err != nil {
		return err
	}

	runner := opts.Runner
	if runner == nil {
		runner = &vcs.ExecRunner{Dir: opts.Settings.Dir}
	}

	env := &Environment{
		Runner: runner,
		Config: doc,
	}

	version := DefineEnv(ctx, env)

	out := opts.Output
	if out == nil {
		out = os.Stdout
	}

	if opts.TemplatePath == "" {
		_, err = fmt.Fprintln(out, version)

		return err
	}

	logger.InfoKV(ctx, "Rendering template", "path", opts.TemplatePath, "version", version)

	return render(out, opts.TemplatePath, env.Macros)
}

// loadDocument reads the site configuration. A missing file is not an error:
// the resolver simply has no configured tag to fall back on.
func loadDocument(ctx context.Context, path string) (*config.Document, error) {
	doc, err := config.LoadDocument(path)
	if err == nil {
		return doc, nil
	}

	if errors.Is(err, os.ErrNotExist) {
		logger.WarnKV(ctx, "Site configuration not found, skipping")

		return nil, nil
	}

	logger.ErrorKV(ctx, "Site configuration is unreadable", "error", err)

	return nil, fmt.Errorf("load site configuration: %w", err)
}

// render executes the template file at path with funcs to out.
func render(out io.Writer, path string, funcs template.FuncMap) error {
	tmpl, err := template.New(filepath.Base(path)).
		Option("missingkey=error").
		Funcs(funcs).
		ParseFiles(path)
	if err != nil {
		return fmt.Errorf("parse template: %w", err)
	}

	if err = tmpl.Execute(out, nil); err != nil {
		return fmt.Errorf("execute template: %w", err)
	}

	return nil
}

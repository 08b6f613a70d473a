package macros

import (
	"context"
	"text/template"

	"github.com/oshokin/hearth-version/internal/config"
	"github.com/oshokin/hearth-version/internal/domain/release"
	"github.com/oshokin/hearth-version/internal/logger"
	"github.com/oshokin/hearth-version/internal/vcs"
)

// VersionMacro is the template function name exposing the resolved version.
const VersionMacro = "hearth_version"

// Environment is what the resolver reads from and registers into.
type Environment struct {
	// Runner executes version-control commands.
	Runner vcs.CommandRunner
	// Config is the site configuration; nil is treated as empty.
	Config *config.Document
	// Macros receives the registered template functions.
	Macros template.FuncMap
}

// Resolve computes the version string. The result is never empty.
func Resolve(ctx context.Context, env *Environment) string {
	var (
		runner vcs.CommandRunner
		doc    *config.Document
	)

	if env != nil {
		runner, doc = env.Runner, env.Config
	}

	described := vcs.Describe(ctx, runner)
	logger.DebugKV(ctx, "Version control lookup", "value", described)

	tag, _ := doc.Lookup(config.TagPath)
	logger.DebugKV(ctx, "Configuration lookup", "path", config.TagPath, "value", tag)

	raw := release.FirstNonEmpty(described, tag, release.Default)
	version := release.Normalize(raw)

	logger.DebugKV(ctx, "Version resolved", "raw", raw, "version", version, "snapshot", release.IsSnapshot(version))

	return version
}

// Register installs the VersionMacro accessor returning version.
func Register(funcs template.FuncMap, version string) {
	funcs[VersionMacro] = func() string {
		return version
	}
}

// DefineEnv resolves the version once and registers it into env.Macros,
// allocating the map when needed. It returns the resolved version.
// env must not be nil.
func DefineEnv(ctx context.Context, env *Environment) string {
	version := Resolve(ctx, env)

	if env.Macros == nil {
		env.Macros = make(template.FuncMap)
	}

	Register(env.Macros, version)

	return version
}

package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/tmstorey/reqwire/reqgen"
)

type CLI struct {
	Verbose bool `help:"Enable debug logging." short:"v"`

	Version VersionCmd `cmd:"" help:"Print version information."`
	Gen     GenCmd     `cmd:"" help:"Generate request builders for annotated packages."`
	Check   CheckCmd   `cmd:"" help:"Verify generated files are up to date without writing."`
}

type VersionCmd struct{}

func (c *VersionCmd) Run() error {
	fmt.Println(Version())
	return nil
}

type GenCmd struct {
	Packages []string `arg:"" optional:"" help:"Package patterns to scan (default: .)."`
	Dir      string   `help:"Working directory for package loading." short:"C"`
	File     string   `help:"Base name of the generated file." default:"reqwire.gen.go"`
}

func (c *GenCmd) Run() error {
	cfg := reqgen.Config{Dir: c.Dir, Patterns: c.Packages, FileName: c.File}
	written, err := reqgen.Generate(context.Background(), cfg)
	if err != nil {
		return err
	}
	if len(written) == 0 {
		slog.Warn("no annotated packages found", "patterns", cfg.Patterns)
		return nil
	}
	for _, path := range written {
		slog.Info("wrote generated file", "path", path)
	}
	return nil
}

type CheckCmd struct {
	Packages []string `arg:"" optional:"" help:"Package patterns to scan (default: .)."`
	Dir      string   `help:"Working directory for package loading." short:"C"`
	File     string   `help:"Base name of the generated file." default:"reqwire.gen.go"`
}

func (c *CheckCmd) Run() error {
	cfg := reqgen.Config{Dir: c.Dir, Patterns: c.Packages, FileName: c.File}
	stale, err := reqgen.Check(context.Background(), cfg)
	if err != nil {
		return err
	}
	if len(stale) > 0 {
		return fmt.Errorf("generated files out of date, run reqwire gen:\n  %s",
			strings.Join(stale, "\n  "))
	}
	slog.Info("generated files are up to date")
	return nil
}

func main() {
	cli := &CLI{}
	ctx := kong.Parse(cli,
		kong.Name("reqwire"),
		kong.Description("Generates type-safe REST request builders from annotated structs."),
		kong.UsageOnError(),
	)

	level := slog.LevelInfo
	if cli.Verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}

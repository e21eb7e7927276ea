package main

import (
	"fmt"
	"io"

	apppkg "github.com/kk-code-lab/dirsplit/internal/app"
	"github.com/kk-code-lab/dirsplit/internal/config"
	"github.com/kk-code-lab/dirsplit/internal/errmsg"
	"github.com/kk-code-lab/dirsplit/internal/logging"
	statepkg "github.com/kk-code-lab/dirsplit/internal/state"
	"github.com/spf13/cobra"
)

// runApp is replaced in tests so the command can be exercised without a terminal.
var runApp = func(ws *statepkg.Workspace, opts apppkg.Options) error {
	app, err := apppkg.NewApplication(ws, opts)
	if err != nil {
		return err
	}
	defer func() {
		_ = app.Close()
	}()
	app.Run()
	return nil
}

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dirsplit [directory]",
		Short: "Two-pane terminal directory browser",
		Long: `dirsplit browses directories in one or two side-by-side panes.

Keys: ↑/k ↓/j move, ↵/→/l open, ←/h/Backspace parent, Tab/w switch or split,
s cycle sort, y yank path, q quit.

Every flag can also be set through the environment as DIRSPLIT_<FLAG>,
for example DIRSPLIT_SORT=dirs-first.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(cmd.Flags(), args)
			if err != nil {
				return err
			}
			return run(cfg, cmd.OutOrStdout())
		},
	}
	config.RegisterFlags(cmd.Flags())
	return cmd
}

func run(cfg config.Config, stdout io.Writer) error {
	logger, closer, err := logging.New(cfg.Logging.FilePath, cfg.Logging.Level)
	if err != nil {
		return errmsg.WrapWith(errmsg.OpOpenLog, cfg.Logging.FilePath, err)
	}
	defer func() {
		_ = closer.Close()
	}()

	ws, err := buildWorkspace(cfg)
	if err != nil {
		logger.Error("startup failed", "err", err)
		return err
	}
	logger.Info("started",
		"path", ws.ActiveWindow().Path(),
		"dual", ws.ActiveSplit().IsDual(),
		"sort", cfg.Sort.String())

	opts := apppkg.Options{Logger: logger}
	if cfg.Clipboard {
		if apppkg.ClipboardAvailable() {
			opts.Clipboard = apppkg.SystemClipboard()
		} else {
			logger.Warn("no clipboard utility found, yanked paths stay in the session")
		}
	}

	if err := runApp(ws, opts); err != nil {
		return errmsg.Wrap(errmsg.OpInitialize, err)
	}
	logger.Info("exiting", "yanked", len(ws.YankedPaths()))

	if cfg.PrintYanked {
		for _, path := range ws.YankedPaths() {
			fmt.Fprintln(stdout, path)
		}
	}
	return nil
}

func buildWorkspace(cfg config.Config) (*statepkg.Workspace, error) {
	opts := statepkg.WindowOptions{
		SortMode:    cfg.Sort,
		HistorySize: cfg.HistorySize,
	}

	first, err := statepkg.OpenWindow(cfg.Path, opts)
	if err != nil {
		return nil, errmsg.WrapWith(errmsg.OpOpenDirectory, cfg.Path, err)
	}

	ws := statepkg.NewWorkspace()
	switch {
	case cfg.SecondPath != "":
		second, err := statepkg.OpenWindow(cfg.SecondPath, opts)
		if err != nil {
			return nil, errmsg.WrapWith(errmsg.OpOpenDirectory, cfg.SecondPath, err)
		}
		ws.NewPairSplit(first, second)
	case cfg.Dual:
		ws.NewPairSplit(first, first.Clone())
	default:
		ws.NewSingleSplit(first)
	}
	return ws, nil
}

package main

import (
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/jask/uikit/app"
	"github.com/jask/uikit/core"
	"github.com/jask/uikit/core/datatable"
	"github.com/jask/uikit/core/inputfield"
	"github.com/jask/uikit/internal/config"
	"github.com/jask/uikit/internal/logging"
	"github.com/jask/uikit/internal/sample"
	"github.com/jask/uikit/screens"
	"github.com/jask/uikit/stories"
)

type cli struct {
	cfg      config.Config
	logger   *log.Logger
	closeLog func() error

	data     string
	locale   string
	logFile  string
	logLevel string
	rows     int
	seed     uint64

	// start runs the program; tests swap it out.
	start func(tea.Model) error
}

func newCLI() *cli {
	return &cli{start: runProgram}
}

func runProgram(m tea.Model) error {
	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}

func (c *cli) root() *cobra.Command {
	root := &cobra.Command{
		Use:           "uikit",
		Short:         "Terminal component kit: InputField and DataTable",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return c.setup()
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if c.closeLog != nil {
				return c.closeLog()
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.launch("home", "")
		},
	}
	flags := root.PersistentFlags()
	flags.StringVar(&c.data, "data", "", "csv or json file with demo users")
	flags.StringVar(&c.locale, "locale", "", "collation locale for sorting, e.g. de or sv")
	flags.StringVar(&c.logFile, "log-file", "", "write logs to this file")
	flags.StringVar(&c.logLevel, "log-level", "", "debug, info, warn or error")
	flags.IntVar(&c.rows, "rows", 0, "generate this many demo users instead of the built-in three")
	flags.Uint64Var(&c.seed, "seed", 1, "seed for --rows")

	root.AddCommand(
		&cobra.Command{
			Use:   "demo",
			Short: "Open the components demo",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return c.launch("demo", "")
			},
		},
		&cobra.Command{
			Use:   "catalog [story]",
			Short: "Browse component stories, optionally opening one",
			Args:  cobra.MaximumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				story := ""
				if len(args) == 1 {
					story = args[0]
				}
				return c.launch("catalog", story)
			},
		},
		&cobra.Command{
			Use:   "stories",
			Short: "List story ids",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return listStories(cmd.OutOrStdout())
			},
		},
		c.configCommand(),
	)
	return root
}

func (c *cli) configCommand() *cobra.Command {
	cfgCmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}
	cfgCmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return showConfig(cmd.OutOrStdout(), c.cfg)
		},
	})
	return cfgCmd
}

// setup loads config, applies flag overrides and opens the log.
func (c *cli) setup() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if c.data != "" {
		cfg.Data.Path = c.data
	}
	if c.locale != "" {
		cfg.UI.Locale = c.locale
	}
	if c.logFile != "" {
		cfg.Log.Path = c.logFile
	}
	if c.logLevel != "" {
		cfg.Log.Level = c.logLevel
	}
	logger, closeLog, err := logging.Open(cfg.Log.Path, cfg.Log.Level)
	if err != nil {
		return err
	}
	c.cfg, c.logger, c.closeLog = cfg, logger, closeLog
	return nil
}

func (c *cli) deps() (app.Deps, error) {
	tag, err := datatable.ParseLocale(c.cfg.UI.Locale)
	if err != nil {
		return app.Deps{}, fmt.Errorf("locale: %w", err)
	}
	mode, err := datatable.ParseSelectionMode(c.cfg.Table.SelectionMode)
	if err != nil {
		return app.Deps{}, err
	}
	size, err := inputfield.ParseSize(c.cfg.UI.Size)
	if err != nil {
		return app.Deps{}, err
	}
	var users []datatable.Record
	if c.cfg.Data.Path != "" {
		users, err = sample.Load(c.cfg.Data.Path)
		if err != nil {
			return app.Deps{}, err
		}
		c.logger.Info("loaded users", "path", c.cfg.Data.Path, "rows", len(users))
	} else if c.rows > 0 {
		users = sample.Generate(c.rows, c.seed)
	}
	return app.Deps{
		Users:         users,
		Prefs:         core.Prefs{DarkMode: c.cfg.UI.DarkMode, Size: size},
		EmptyMessage:  c.cfg.Table.EmptyMessage,
		SelectionMode: mode,
		Comparator:    datatable.NewComparator(tag),
		Logger:        c.logger,
	}, nil
}

// startModel adds an extra command to the model's Init, used when a story
// is opened from the command line.
type startModel struct {
	core.Model
	init tea.Cmd
}

func (s startModel) Init() tea.Cmd {
	return tea.Batch(s.Model.Init(), s.init)
}

func (c *cli) launch(tab, storyID string) error {
	deps, err := c.deps()
	if err != nil {
		return err
	}
	m := app.NewModel(deps)
	m.SavePrefs = c.savePrefs
	m.SwitchTabID(tab)

	start := startModel{Model: m}
	if storyID != "" {
		story, err := stories.Lookup(storyID)
		if err != nil {
			return err
		}
		screen, cmd, err := screens.OpenStory(story, m.Palette(), m.Logger)
		if err != nil {
			return err
		}
		start.Model.PushScreen(screen)
		start.init = cmd
	}
	c.logger.Info("start", "tab", tab, "story", storyID)
	return c.start(start)
}

func (c *cli) savePrefs(p core.Prefs) error {
	c.cfg.UI.DarkMode = p.DarkMode
	c.cfg.UI.Size = p.Size.String()
	return config.Save(c.cfg)
}

func listStories(w io.Writer) error {
	for _, s := range stories.All() {
		if _, err := fmt.Fprintf(w, "%-22s %s\n", s.ID, s.Title()); err != nil {
			return err
		}
	}
	return nil
}

func showConfig(w io.Writer, cfg config.Config) error {
	return config.Encode(w, cfg)
}

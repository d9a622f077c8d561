package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jask/discovery/internal/app"
	"github.com/jask/discovery/internal/config"
	"github.com/jask/discovery/internal/database"
	"github.com/jask/discovery/internal/messages"
	"github.com/jask/discovery/internal/podbay"
	"github.com/jask/discovery/widgets"
)

type rootOptions struct {
	configPath  string
	killDave    bool
	metricsAddr string
	locale      string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	root := &cobra.Command{
		Use:           "discovery",
		Short:         "Pod bay console of the Discovery One",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := opts.load(cmd)
			if err != nil {
				return err
			}
			a, cleanup, err := app.Initialize(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			defer cleanup()
			return a.Run(cmd.Context())
		},
	}
	flags := root.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", "", "config file (default ~/.config/discovery/config.toml)")
	flags.BoolVar(&opts.killDave, "kill-dave", true, "refuse to open the pod bay doors")
	flags.StringVar(&opts.metricsAddr, "metrics-addr", "", "serve prometheus metrics on this address")
	flags.StringVar(&opts.locale, "locale", "", "console language, e.g. en or de")

	root.AddCommand(
		newLogCmd(opts),
		newCrewCmd(opts),
		newMigrateCmd(opts),
		newClearLogCmd(opts),
		newConfigCmd(opts),
	)
	return root
}

// load reads the config and applies flags the user set explicitly.
func (o *rootOptions) load(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return config.Config{}, err
	}
	flags := cmd.Flags()
	if flags.Changed("kill-dave") {
		cfg.Mission.KillDave = o.killDave
	}
	if flags.Changed("metrics-addr") {
		cfg.Metrics.Addr = o.metricsAddr
	}
	if flags.Changed("locale") {
		cfg.UI.Locale = o.locale
	}
	return cfg, nil
}

func newLogCmd(opts *rootOptions) *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "log",
		Short: "Print recent pod bay door requests",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := opts.load(cmd)
			if err != nil {
				return err
			}
			store, cleanup, err := app.InitializeStore(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			defer cleanup()
			catalog, err := app.ProvideCatalog(cfg)
			if err != nil {
				return err
			}
			if limit <= 0 {
				limit = cfg.Mission.LogLimit
			}

			rows, err := store.DoorLog.Recent(cmd.Context(), limit)
			if err != nil {
				return err
			}
			sum, err := store.DoorLog.Summary(cmd.Context())
			if err != nil {
				return err
			}
			entries := make([]podbay.LogEntry, 0, len(rows))
			for _, r := range rows {
				entries = append(entries, podbay.LogEntry{RequestedBy: r.RequestedBy, Outcome: r.Outcome, Message: r.Message, At: r.RequestedAt})
			}
			p := podbay.NewLogPayload(catalog.Text(messages.LogTitle, nil), catalog.Text(messages.LogEmpty, nil), sum.Opened, sum.Refused, entries)

			f := app.ProvideFormatter(cfg)
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, p.Title)
			if p.Len() == 0 {
				fmt.Fprintln(out, p.Empty)
				return nil
			}
			for _, e := range p.Entries() {
				fmt.Fprintln(out, e.Line(f))
			}
			fmt.Fprintf(out, "%s opened, %s refused (%s refused)\n", f.Number(int64(p.Opened)), f.Number(int64(p.Refused)), p.RefusalRate(f))
			return nil
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 0, "number of requests to show (default mission.log_limit)")
	return cmd
}

func newCrewCmd(opts *rootOptions) *cobra.Command {
	var awake bool
	cmd := &cobra.Command{
		Use:   "crew",
		Short: "List the crew",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := opts.load(cmd)
			if err != nil {
				return err
			}
			store, cleanup, err := app.InitializeStore(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			defer cleanup()

			list := store.Roster.List
			if awake {
				list = store.Roster.Awake
			}
			crew, err := list(cmd.Context())
			if err != nil {
				return err
			}
			rows := make([][]string, 0, len(crew))
			for _, c := range crew {
				rows = append(rows, []string{c.Name, c.Role, c.Status})
			}
			table := widgets.Table{Headers: []string{"NAME", "ROLE", "STATUS"}, Rows: rows}
			fmt.Fprintln(cmd.OutOrStdout(), table.Render(120, len(rows)+1))
			return nil
		},
	}
	cmd.Flags().BoolVar(&awake, "awake", false, "only crew members out of hibernation")
	return cmd
}

func newMigrateCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply database migrations",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := opts.load(cmd)
			if err != nil {
				return err
			}
			store, cleanup, err := app.InitializeStore(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			defer cleanup()
			v, dirty, err := database.Version(cfg.Database.Path)
			if err != nil {
				return err
			}
			store.Logger.Info("migrations applied")
			state := "clean"
			if dirty {
				state = "dirty"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "schema version %d (%s)\n", v, state)
			return nil
		},
	}
}

func newClearLogCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "clear-log",
		Short: "Forget every recorded door request",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := opts.load(cmd)
			if err != nil {
				return err
			}
			store, cleanup, err := app.InitializeStore(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			defer cleanup()
			if err := store.Maintenance.ClearDoorLog(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "door log cleared")
			return nil
		},
	}
}

func newConfigCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect or write configuration",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "init",
		Short: "Write the effective configuration to the config file",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := opts.load(cmd)
			if err != nil {
				return err
			}
			if err := config.Save(opts.configPath, cfg); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "config written")
			return nil
		},
	}, &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := opts.load(cmd)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "database.path      %s\n", cfg.Database.Path)
			fmt.Fprintf(out, "database.busy      %s\n", cfg.Database.BusyTimeout)
			fmt.Fprintf(out, "mission.kill_dave  %t\n", cfg.Mission.KillDave)
			fmt.Fprintf(out, "mission.commander  %s\n", cfg.Mission.Commander)
			fmt.Fprintf(out, "ui.locale          %s\n", strings.TrimSpace(cfg.UI.Locale))
			fmt.Fprintf(out, "metrics.addr       %s\n", cfg.Metrics.Addr)
			return nil
		},
	})
	return cmd
}

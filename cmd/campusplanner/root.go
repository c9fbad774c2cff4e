package main

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/campusplanner/campus"
	"github.com/katalvlaran/campusplanner/config"
)

// app carries state shared by every subcommand once the root has run its
// setup hook.
type app struct {
	loader  *config.Loader
	cfgPath string
	cfg     *config.Config
	log     zerolog.Logger
	campus  *campus.Campus
}

func newRootCmd() *cobra.Command {
	a := &app{loader: config.NewLoader(), log: zerolog.Nop()}

	root := &cobra.Command{
		Use:   "campusplanner",
		Short: "Campus building index and road-network planner",
		Long: `campusplanner keeps campus buildings in a balanced search tree and
their roads in a weighted graph.

Commands:
  demo      print the full walkthrough on the loaded campus
  find      look buildings up by id or name prefix
  tour      list buildings in BFS or DFS order
  route     shortest road path between two buildings
  nearby    buildings within a number of roads, optionally avoiding some
  backbone  minimum set of roads connecting every building
  eval      evaluate a postfix arithmetic expression`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.cfgPath, "config", "", "config file (default ./campusplanner.yaml or ~/.campusplanner/campusplanner.yaml)")
	pf.String("data", "", "campus YAML file (default: built-in sample)")
	pf.String("log-level", config.DefaultLogLevel, "trace, debug, info, warn, error or disabled")
	pf.String("log-format", config.DefaultLogFormat, "console or json")

	v := a.loader.Viper()
	_ = v.BindPFlag("data", pf.Lookup("data"))
	_ = v.BindPFlag("log.level", pf.Lookup("log-level"))
	_ = v.BindPFlag("log.format", pf.Lookup("log-format"))

	root.AddCommand(
		newDemoCmd(a),
		newFindCmd(a),
		newTourCmd(a),
		newRouteCmd(a),
		newNearbyCmd(a),
		newBackboneCmd(a),
		newEvalCmd(),
		newVersionCmd(),
	)

	return root
}

// annotationCampus marks subcommands that work on the loaded campus.
const annotationCampus = "campus"

// usesCampus returns the annotation set carried by campus subcommands.
func usesCampus() map[string]string {
	return map[string]string{annotationCampus: "true"}
}

// setup loads configuration and builds the logger, then loads the campus
// for the subcommands annotated with annotationCampus.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := a.loader.Load(a.cfgPath)
	if err != nil {
		return err
	}
	a.cfg = cfg

	a.log, err = cfg.Log.NewLogger(cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	if used := a.loader.Used(); used != "" {
		a.log.Debug().Str("file", used).Msg("config loaded")
	}

	if cmd.Annotations[annotationCampus] == "" {
		return nil
	}

	if cfg.Data != "" {
		a.campus, err = campus.LoadFile(cfg.Data, campus.WithLogger(a.log))
	} else {
		a.campus, err = campus.Sample(campus.WithLogger(a.log))
	}
	if err != nil {
		return err
	}
	a.log.Info().
		Str("data", cfg.Data).
		Int("buildings", a.campus.Len()).
		Int("roads", a.campus.Roads()).
		Msg("campus ready")

	return nil
}

// defaultID resolves an optional building id flag to the first building of
// the campus when it was not given.
func (a *app) defaultID(cmd *cobra.Command, flag string, id int) (int, error) {
	if cmd.Flags().Changed(flag) {
		return id, nil
	}
	b, ok := a.campus.BuildingAt(0)
	if !ok {
		return 0, campus.ErrUnknownBuilding
	}

	return b.ID, nil
}

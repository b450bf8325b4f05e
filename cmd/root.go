package cmd

import (
	"fmt"
	"io/ioutil"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/they4kman/voxsweep/director/constraint"
	"github.com/they4kman/voxsweep/director/random"
	"github.com/they4kman/voxsweep/game"
)

var gameConfig = game.NewGameConfig()

var (
	configPath   string
	seed         int64
	directorName string
	stepDelay    time.Duration
	snapshotPath string
	loadFresh    bool
	logLevel     string
	snapshotsDir string
)

var rootCmd = &cobra.Command{
	Use:   "voxsweep",
	Short: "Play manual or computer-driven 3D Minesweeper",
	Long: `voxsweep is a volumetric Minesweeper game which supports human- or
computer-driven playing. Every cell touches up to 26 others.

Run with no arguments to play manually
	voxsweep

Use the director flag to make the computer play for you
	voxsweep --director constraint
`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			return err
		}
		game.Log.SetLevel(level)

		config, err := resolveConfig(cmd)
		if err != nil {
			return err
		}

		session, err := newSession(config)
		if err != nil {
			return err
		}

		director, err := newDirector(directorName)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if director != nil {
			return autoplay(out, session, director, stepDelay)
		}
		return interact(cmd.InOrStdin(), out, session)
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

// resolveConfig layers the config file under any explicitly set flags
func resolveConfig(cmd *cobra.Command) (game.GameConfig, error) {
	config := gameConfig
	flags := cmd.Flags()

	if configPath != "" {
		fileConfig, err := game.LoadGameConfig(configPath)
		if err != nil {
			return config, err
		}

		if flags.Changed("width") {
			fileConfig.Width = config.Width
		}
		if flags.Changed("height") {
			fileConfig.Height = config.Height
		}
		if flags.Changed("depth") {
			fileConfig.Depth = config.Depth
		}
		if flags.Changed("mines") {
			fileConfig.NumMines = config.NumMines
		}
		config = fileConfig
	}

	if flags.Changed("seed") {
		config = config.WithSeed(seed)
	}
	if flags.Changed("snapshots-dir") {
		config.SavedSnapshotsDir = snapshotsDir
	}
	return config, nil
}

func newSession(config game.GameConfig) (*game.Session, error) {
	if snapshotPath == "" {
		return game.NewSession(config)
	}

	in, err := ioutil.ReadFile(snapshotPath)
	if err != nil {
		return nil, err
	}
	snapshot, err := game.LoadSnapshot(string(in))
	if err != nil {
		return nil, fmt.Errorf("loading snapshot %s: %w", snapshotPath, err)
	}
	return game.NewSessionFromSnapshot(snapshot, config, loadFresh)
}

var directors = map[string]func() game.Director{
	"random":     func() game.Director { return &random.Director{} },
	"constraint": func() game.Director { return &constraint.Director{} },
}

func newDirector(name string) (game.Director, error) {
	if name == "" {
		return nil, nil
	}
	if create, isValid := directors[name]; isValid {
		return create(), nil
	}
	return nil, fmt.Errorf("invalid director %q", name)
}

func init() {
	// Define our root -help without a shorthand, as we'll use -h for --height
	// Ref: https://github.com/spf13/cobra/issues/291
	rootCmd.Flags().Bool("help", false, "Help for this command")

	rootCmd.Flags().IntVarP(&gameConfig.Width, "width", "w", gameConfig.Width, "Width of game board, in cells")
	rootCmd.Flags().IntVarP(&gameConfig.Height, "height", "h", gameConfig.Height, "Height of game board, in cells")
	rootCmd.Flags().IntVarP(&gameConfig.Depth, "depth", "d", gameConfig.Depth, "Depth of game board, in cells")
	rootCmd.Flags().IntVarP(&gameConfig.NumMines, "mines", "m", gameConfig.NumMines, "Number of mines to place in the game board")
	rootCmd.Flags().Int64Var(&seed, "seed", 0, "Seed for mine placement (random when unset)")
	rootCmd.Flags().StringVarP(&configPath, "config", "c", "", "YAML file holding the game config")
	rootCmd.Flags().StringVar(&directorName, "director", "", `Make the computer play.
random: click hidden cells at random
constraint: deduce mines from revealed numbers, guessing only when stuck`)
	rootCmd.Flags().DurationVar(&stepDelay, "delay", 0, "Pause between director moves")
	rootCmd.Flags().StringVar(&snapshotPath, "snapshot", "", "Play the mine layout of a saved snapshot")
	rootCmd.Flags().BoolVar(&loadFresh, "fresh", true, "Start a loaded snapshot with every cell hidden")
	rootCmd.Flags().StringVar(&snapshotsDir, "snapshots-dir", "", "Directory where snapshots of finished rounds are saved")
	rootCmd.Flags().StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
}

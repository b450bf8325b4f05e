package game

import (
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v2"
)

var Log = logrus.New()

type GameConfig struct {
	Width    int `yaml:"width"`
	Height   int `yaml:"height"`
	Depth    int `yaml:"depth"`
	NumMines int `yaml:"mines"`

	// Seed for mine placement; drawn from the clock when nil
	Seed *int64 `yaml:"seed,omitempty"`

	// Path to directory where final snapshots of boards should be saved
	SavedSnapshotsDir string `yaml:"snapshots_dir,omitempty"`
}

func NewGameConfig() GameConfig {
	return GameConfig{
		Width:    10,
		Height:   10,
		Depth:    10,
		NumMines: 80,
	}
}

func (config GameConfig) Bounds() Bounds {
	return Bounds{Width: config.Width, Height: config.Height, Depth: config.Depth}
}

// WithSeed returns a copy of config pinned to seed
func (config GameConfig) WithSeed(seed int64) GameConfig {
	config.Seed = &seed
	return config
}

// Validate checks the dimensions and that the mines fit on the board at all.
// Whether they also fit around the first click is only known once it
// happens.
func (config GameConfig) Validate() error {
	bounds := config.Bounds()
	if !bounds.valid() {
		return fmt.Errorf("%w: %dx%dx%d", ErrInvalidDimensions, config.Width, config.Height, config.Depth)
	}
	if config.NumMines < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidMineCount, config.NumMines)
	}
	if config.NumMines >= bounds.Volume() {
		return fmt.Errorf("%w: %d mines on %d cells", ErrTooManyMines, config.NumMines, bounds.Volume())
	}
	return nil
}

func (config GameConfig) seed() int64 {
	if config.Seed != nil {
		return *config.Seed
	}
	return time.Now().UnixNano()
}

// LoadGameConfig reads a YAML game config, filling unset fields from the
// defaults.
func LoadGameConfig(path string) (GameConfig, error) {
	config := NewGameConfig()

	in, err := ioutil.ReadFile(path)
	if err != nil {
		return config, err
	}
	if err := yaml.Unmarshal(in, &config); err != nil {
		return config, fmt.Errorf("parsing %s: %w", path, err)
	}
	return config, nil
}

func (config GameConfig) onGameEnd(session *Session) {
	config.saveSnapshot(session)
}

func (config GameConfig) saveSnapshot(session *Session) {
	if config.SavedSnapshotsDir == "" {
		return
	}

	log := Log.WithField("dir", config.SavedSnapshotsDir)

	stat, err := os.Stat(config.SavedSnapshotsDir)
	if err != nil {
		if os.IsNotExist(err) {
			if err := os.MkdirAll(config.SavedSnapshotsDir, 0777); err != nil {
				log.WithError(err).Error("cannot create snapshots directory")
				return
			}
		} else {
			log.WithError(err).Error("cannot stat snapshots directory")
			return
		}
	} else if !stat.Mode().IsDir() {
		log.Error("snapshots path is not a directory; cannot save snapshots to it")
		return
	}

	filename := generateReplayFilename(session.Status(), time.Now())
	path := filepath.Join(config.SavedSnapshotsDir, filename)

	// TODO: prevent duplicate filenames when two rounds end within a second
	snapshot := session.Snapshot()
	if err := ioutil.WriteFile(path, []byte(snapshot.Serialize()), 0666); err != nil {
		log.WithError(err).Error("cannot write snapshot")
		return
	}

	log.WithField("path", path).Info("saved snapshot")
}

func generateReplayFilename(status Status, t time.Time) string {
	filenameBuilder := strings.Builder{}

	filenameBuilder.WriteString(t.Format("20060102_150405_"))

	var stateStr string
	switch status {
	case Won:
		stateStr = "win"
	case Lost:
		stateStr = "loss"
	default:
		stateStr = "other"
	}
	filenameBuilder.WriteString(stateStr)

	filenameBuilder.WriteString(".yaml")

	return filenameBuilder.String()
}

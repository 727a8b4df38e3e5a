package model

import (
	"encoding/json"
	"os"

	"github.com/mitchellh/mapstructure"
)

// Options configures the solver pipeline.
type Options struct {
	// DatasetPath locates the input file when no in-memory dataset is given.
	DatasetPath string `mapstructure:"dataset_path"`
	// Phase2Seconds is the wall-clock budget for the improvement phase.
	// Zero skips the phase and returns the first feasible timetable.
	Phase2Seconds int `mapstructure:"phase2_seconds"`
	// MinConflictsIters caps each local-search invocation.
	MinConflictsIters int `mapstructure:"min_conflicts_iters"`
	// ClassPreferredRooms optionally narrows the physical rooms of a class.
	ClassPreferredRooms map[string][]string `mapstructure:"class_preferred_rooms"`
	// PreferredRoomsHard turns the preferred-rooms map into a hard domain
	// filter. When false the map is ignored and room concentration is left
	// to the soft score.
	PreferredRoomsHard bool `mapstructure:"preferred_rooms_hard"`
	// RandomSeed fixes the search seed for reproducibility. When nil the
	// pipeline seeds itself from the clock.
	RandomSeed *int64 `mapstructure:"random_seed"`
}

func DefaultOptions() Options {
	return Options{
		Phase2Seconds:     60,
		MinConflictsIters: 1000,
	}
}

// OptionsFromJson overlays a json config file on top of the defaults.
func OptionsFromJson(file string) (Options, error) {
	bytes, err := os.ReadFile(file)
	if err != nil {
		return Options{}, err
	}
	var optionsJson map[string]any
	if err := json.Unmarshal(bytes, &optionsJson); err != nil {
		return Options{}, err
	}

	options := DefaultOptions()
	if err := mapstructure.Decode(optionsJson, &options); err != nil {
		return Options{}, err
	}

	return options, nil
}

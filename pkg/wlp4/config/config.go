// Package config loads wlp4type settings. Settings come from an optional YAML file, then from WLP4TYPE_*
// environment variables, and finally from command line flags, each layer overriding the one before it.
package config

import (
	"io/ioutil"
	"os"
	"runtime"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cast"
	"gopkg.in/yaml.v2"
)

// EnvPrefix prefixes every environment variable that overrides a setting.
const EnvPrefix = "WLP4TYPE_"

// DefaultFile is the settings file read from the working directory when no explicit path is given.
const DefaultFile = ".wlp4type.yaml"

// Settings controls a wlp4type run.
type Settings struct {
	// Strict makes the process exit with a non-zero status when any diagnostic is reported.
	Strict bool `yaml:"strict"`
	// CheckReturnType requires every procedure to return an int.
	CheckReturnType bool `yaml:"checkReturnType"`
	// PrintProcedures prints the procedure table after the annotated tree.
	PrintProcedures bool `yaml:"printProcedures"`
	// DumpTree writes an indented rendering of each tree to the diagnostic stream.
	DumpTree bool `yaml:"dumpTree"`
	// Parallelism bounds the number of inputs analyzed at once.
	Parallelism int `yaml:"parallelism"`
	// Verbose is the log verbosity.
	Verbose int `yaml:"verbose"`
}

// Default returns the default settings.
func Default() Settings {
	return Settings{Parallelism: runtime.GOMAXPROCS(0)}
}

// Load reads settings from the given YAML file and applies environment overrides. If path is empty, DefaultFile is
// read if it exists.
func Load(path string) (Settings, error) {
	settings := Default()

	explicit := path != ""
	if !explicit {
		path = DefaultFile
	}
	contents, err := ioutil.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.UnmarshalStrict(contents, &settings); err != nil {
			return Settings{}, errors.Wrapf(err, "parsing %s", path)
		}
	case os.IsNotExist(err) && !explicit:
		// No settings file; use the defaults.
	default:
		return Settings{}, errors.Wrapf(err, "reading %s", path)
	}

	if err := settings.ApplyEnvironment(os.LookupEnv); err != nil {
		return Settings{}, err
	}
	return settings, settings.Validate()
}

// ApplyEnvironment overrides settings from environment variables, using lookup to read them.
func (s *Settings) ApplyEnvironment(lookup func(key string) (string, bool)) error {
	bools := map[string]*bool{
		"STRICT":            &s.Strict,
		"CHECK_RETURN_TYPE": &s.CheckReturnType,
		"PRINT_PROCEDURES":  &s.PrintProcedures,
		"DUMP_TREE":         &s.DumpTree,
	}
	for name, dest := range bools {
		if v, ok := lookup(EnvPrefix + name); ok && strings.TrimSpace(v) != "" {
			b, err := cast.ToBoolE(strings.TrimSpace(v))
			if err != nil {
				return errors.Wrapf(err, "%s%s", EnvPrefix, name)
			}
			*dest = b
		}
	}

	ints := map[string]*int{
		"PARALLELISM": &s.Parallelism,
		"VERBOSE":     &s.Verbose,
	}
	for name, dest := range ints {
		if v, ok := lookup(EnvPrefix + name); ok && strings.TrimSpace(v) != "" {
			i, err := cast.ToIntE(strings.TrimSpace(v))
			if err != nil {
				return errors.Wrapf(err, "%s%s", EnvPrefix, name)
			}
			*dest = i
		}
	}
	return nil
}

// Validate checks that the settings are usable.
func (s Settings) Validate() error {
	if s.Parallelism < 1 {
		return errors.Errorf("parallelism must be at least 1, got %d", s.Parallelism)
	}
	if s.Verbose < 0 {
		return errors.Errorf("verbose must not be negative, got %d", s.Verbose)
	}
	return nil
}

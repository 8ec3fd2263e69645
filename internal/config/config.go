// internal/config/config.go
package config

import (
	"fmt"

	"github.com/spf13/viper"

	"seqstat-core/alphabet"
)

// Settings is the analysis configuration read from the settings file.
type Settings struct {
	ValidNucleobases []string `mapstructure:"valid_nucleobases"`
	MinBasepairLen   int      `mapstructure:"min_basepair_len"`
	MinBases         int      `mapstructure:"min_bases"`
	KValues          []int    `mapstructure:"k_values"`
	TopN             int      `mapstructure:"top_n"`
}

// Load reads and validates a settings file. Settings files are JSON by
// convention, but any format viper recognizes by extension works.
func Load(path string) (Settings, error) {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return Settings{}, fmt.Errorf("settings: %w", err)
	}
	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return Settings{}, fmt.Errorf("settings: %w", err)
	}
	if err := s.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// Validate checks the invariants the analyses rely on.
func (s Settings) Validate() error {
	if len(s.ValidNucleobases) == 0 {
		return fmt.Errorf("settings: valid_nucleobases must name at least one base")
	}
	if _, err := alphabet.New(s.ValidNucleobases); err != nil {
		return fmt.Errorf("settings: %w", err)
	}
	if s.MinBasepairLen < 0 {
		return fmt.Errorf("settings: min_basepair_len must be >= 0, got %d", s.MinBasepairLen)
	}
	if s.MinBases < 0 {
		return fmt.Errorf("settings: min_bases must be >= 0, got %d", s.MinBases)
	}
	if len(s.KValues) == 0 {
		return fmt.Errorf("settings: k_values must name at least one k")
	}
	for _, k := range s.KValues {
		if k < 1 {
			return fmt.Errorf("settings: k_values entries must be >= 1, got %d", k)
		}
	}
	if s.TopN < 1 {
		return fmt.Errorf("settings: top_n must be >= 1, got %d", s.TopN)
	}
	return nil
}

// Alphabet returns the validated base set.
func (s Settings) Alphabet() (alphabet.Alphabet, error) {
	return alphabet.New(s.ValidNucleobases)
}

// Package harnessconfig loads optional crosstest defaults from
// $HOME/.config/mueddi/crosstest.yaml, the same shape alterx uses for its
// own $HOME/.config/alterx/permutation_*.yaml: a small goccy/go-yaml
// document that only ever supplies defaults a flag didn't already set.
// Unlike alterx's config loader, this one is not wired into an init()
// side effect - crosstest is a one-shot batch tool, not a long-lived
// server, so loading defaults explicitly from main keeps "no config file"
// a silent, harmless no-op instead of something that writes to disk on
// every invocation.
package harnessconfig

import (
	"os"
	"path/filepath"

	"github.com/goccy/go-yaml"
)

// Defaults mirrors the crosstest CLI flags that are worth pinning per
// machine: a default result-log path and tolerance so routine reruns
// don't need to repeat them.
type Defaults struct {
	Tolerance int    `yaml:"tolerance"`
	Result    string `yaml:"result"`
	Single    bool   `yaml:"single"`
}

// Path returns the default config file location.
func Path() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "mueddi", "crosstest.yaml"), nil
}

// Load reads Defaults from path. A missing file is not an error: it
// returns a zero Defaults, meaning "nothing overridden".
func Load(path string) (Defaults, error) {
	var d Defaults
	bin, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return d, nil
		}
		return d, err
	}
	if err := yaml.Unmarshal(bin, &d); err != nil {
		return d, err
	}
	return d, nil
}

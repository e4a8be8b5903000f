// Package workspace manages the per-user directory where essaylens
// keeps its configuration and any locally built corpus.
package workspace

import (
	"fmt"
	"os"
	"path/filepath"
)

const BaseDirName = ".essaylens"

const defaultConfigYAML = `# essaylens configuration
log_level: info

server:
  listen: ":8080"
  rate_limit: 5
  burst: 10

detection:
  salience: 0.12
  weights:
    predictability: 0.25
    burstiness: 0.20
    diversity: 0.20
    repetition: 0.20
    regularity: 0.15
  confidence:
    high_below: 0.15
    low_above: 0.30

# Point at a locally built frequency corpus instead of the embedded one.
# corpus: /home/you/.essaylens/corpus/corpus.db
`

// Dir returns the workspace base directory without creating it.
func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home: %w", err)
	}
	return filepath.Join(home, BaseDirName), nil
}

// EnsureDefault creates the workspace under the user home directory.
func EnsureDefault() (string, error) {
	base, err := Dir()
	if err != nil {
		return "", err
	}
	return EnsureAt(base)
}

// EnsureAt creates the workspace layout under base and seeds a default
// configuration file when none exists.
func EnsureAt(base string) (string, error) {
	paths := []string{
		filepath.Join(base, "configs"),
		filepath.Join(base, "corpus"),
	}

	for _, p := range paths {
		if err := os.MkdirAll(p, 0o755); err != nil {
			return "", fmt.Errorf("mkdir %s: %w", p, err)
		}
	}

	configPath := ConfigPath(base)
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		if writeErr := os.WriteFile(configPath, []byte(defaultConfigYAML), 0o644); writeErr != nil {
			return "", fmt.Errorf("write config: %w", writeErr)
		}
	}

	return base, nil
}

// ConfigPath returns the seeded configuration file under base.
func ConfigPath(base string) string {
	return filepath.Join(base, "configs", "config.yaml")
}

// CorpusPath returns the default corpus database under base.
func CorpusPath(base string) string {
	return filepath.Join(base, "corpus", "corpus.db")
}

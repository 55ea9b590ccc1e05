//go:build !windows

package locate

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// SystemScopeFile is the machine-wide scope file.
const SystemScopeFile = "/etc/voxon/voxon.yaml"

// DefaultScopes returns the machine scope then the user scope.
func DefaultScopes() []Scope {
	scopes := []Scope{File(SystemScopeFile)}
	if dir, err := userConfigDir(); err == nil {
		scopes = append(scopes, File(filepath.Join(dir, "voxon", "voxon.yaml")))
	}
	return scopes
}

func userConfigDir() (string, error) {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return dir, nil
	}
	return os.UserConfigDir()
}

// File is a YAML scope file with "path" and "version" keys.
type File string

func (f File) Name() string { return string(f) }

func (f File) Lookup() (Entry, bool, error) {
	data, err := os.ReadFile(string(f))
	if errors.Is(err, fs.ErrNotExist) {
		return Entry{}, false, nil
	}
	if err != nil {
		return Entry{}, false, err
	}

	var entry Entry
	if err := yaml.Unmarshal(data, &entry); err != nil {
		return Entry{}, false, err
	}
	return entry, entry.Path != "", nil
}

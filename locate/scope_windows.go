//go:build windows

package locate

import (
	"errors"

	"golang.org/x/sys/windows"
	"golang.org/x/sys/windows/registry"
)

// RegistryKey is the SDK key under HKLM and HKCU.
const RegistryKey = `SOFTWARE\Voxon\Voxon`

// DefaultScopes returns HKLM then HKCU.
func DefaultScopes() []Scope {
	return []Scope{
		Registry{Root: registry.LOCAL_MACHINE, Label: `HKLM\` + RegistryKey},
		Registry{Root: registry.CURRENT_USER, Label: `HKCU\` + RegistryKey},
	}
}

// Registry reads Path and Version from RegistryKey under Root.
type Registry struct {
	Root  registry.Key
	Label string
}

func (r Registry) Name() string { return r.Label }

func (r Registry) Lookup() (Entry, bool, error) {
	k, err := registry.OpenKey(r.Root, RegistryKey, registry.QUERY_VALUE)
	if errors.Is(err, windows.ERROR_FILE_NOT_FOUND) {
		return Entry{}, false, nil
	}
	if err != nil {
		return Entry{}, false, err
	}
	defer k.Close()

	path, _, err := k.GetStringValue("Path")
	if err != nil {
		return Entry{}, false, err
	}
	version, _, _ := k.GetStringValue("Version")
	return Entry{Path: path, Version: version}, path != "", nil
}

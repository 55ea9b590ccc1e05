package locate

// Entry is what a configuration scope records about the installed SDK.
// Path is the directory that holds the library.
type Entry struct {
	Path    string `yaml:"path"`
	Version string `yaml:"version"`
}

// Scope is one system-wide configuration location.
type Scope interface {
	Name() string
	// Lookup reports the recorded entry, or ok=false when the scope holds
	// none. Errors are reported as searched locations, never fatal.
	Lookup() (entry Entry, ok bool, err error)
}

// Static is a fixed Scope, for configuration files and tests.
type Static struct {
	Label string
	Entry Entry
}

func (s Static) Name() string { return s.Label }

func (s Static) Lookup() (Entry, bool, error) {
	return s.Entry, s.Entry.Path != "", nil
}

package locate

import (
	"os"
	"path/filepath"
	goruntime "runtime"

	"github.com/wippyai/voxon-runtime/errors"
)

// LibraryName returns the device library file name for the running OS.
func LibraryName() string {
	return libraryName(goruntime.GOOS)
}

func libraryName(goos string) string {
	switch goos {
	case "windows":
		return "voxiebox.dll"
	case "darwin":
		return "libvoxiebox.dylib"
	default:
		return "libvoxiebox.so"
	}
}

// Source tells which search stage produced a Result.
type Source string

const (
	SourceProcess Source = "process" // next to the executable or in the working directory
	SourceScope   Source = "scope"   // system-wide configuration (registry or scope file)
	SourcePath    Source = "path"    // executable search path
)

// Result is a located library.
type Result struct {
	Path    string
	Source  Source
	Scope   string // scope name when Source is SourceScope
	Version string // SDK version recorded by the scope, if any
}

// Locator searches for the device library. The zero value searches nothing;
// use New for the process defaults.
type Locator struct {
	// Name is the library file name. Empty means LibraryName().
	Name string

	// ProcessDirs are searched first, in order.
	ProcessDirs []string

	// Scopes are consulted in order after ProcessDirs.
	Scopes []Scope

	// SearchPath is the executable search path, searched last.
	SearchPath []string

	exists func(path string) bool
}

// New returns a Locator over the process defaults: executable directory,
// working directory, DefaultScopes() and PATH.
func New() *Locator {
	var dirs []string
	if exe, err := os.Executable(); err == nil {
		dirs = append(dirs, filepath.Dir(exe))
	}
	if wd, err := os.Getwd(); err == nil {
		dirs = append(dirs, wd)
	}

	return &Locator{
		ProcessDirs: dirs,
		Scopes:      DefaultScopes(),
		SearchPath:  filepath.SplitList(os.Getenv("PATH")),
	}
}

func (l *Locator) name() string {
	if l.Name != "" {
		return l.Name
	}
	return LibraryName()
}

func (l *Locator) fileExists(path string) bool {
	if l.exists != nil {
		return l.exists(path)
	}
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

// Locate returns the first match in search order. When nothing matches the
// error is an *errors.NotFoundError listing every location tried.
func (l *Locator) Locate() (Result, error) {
	name := l.name()
	var searched []string

	try := func(dir string) (string, bool) {
		if dir == "" {
			return "", false
		}
		p := filepath.Join(dir, name)
		searched = append(searched, p)
		return p, l.fileExists(p)
	}

	for _, dir := range l.ProcessDirs {
		if p, ok := try(dir); ok {
			return Result{Path: p, Source: SourceProcess}, nil
		}
	}

	var version string
	for _, scope := range l.Scopes {
		entry, ok, err := scope.Lookup()
		if err != nil {
			searched = append(searched, scope.Name()+": "+err.Error())
			continue
		}
		if !ok {
			searched = append(searched, scope.Name())
			continue
		}
		if version == "" {
			version = entry.Version
		}
		if p, ok := try(entry.Path); ok {
			return Result{Path: p, Source: SourceScope, Scope: scope.Name(), Version: entry.Version}, nil
		}
	}

	for _, dir := range l.SearchPath {
		if p, ok := try(dir); ok {
			return Result{Path: p, Source: SourcePath, Version: version}, nil
		}
	}

	return Result{}, errors.NewNotFoundError(name, searched)
}

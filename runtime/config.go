package runtime

import (
	"go.uber.org/zap"

	voxon "github.com/wippyai/voxon-runtime"
	"github.com/wippyai/voxon-runtime/locate"
	"github.com/wippyai/voxon-runtime/native"
)

// DefaultLogFile receives failure lines and LogToFile messages.
const DefaultLogFile = "exception.log"

// Locator finds the device library.
type Locator interface {
	Locate() (locate.Result, error)
}

// Config configures a Runtime. The zero value locates and opens the native
// library with the process defaults.
type Config struct {
	// LibraryPath skips discovery and opens this file.
	LibraryPath string

	// Name overrides the library file name searched for by the default
	// locator.
	Name string

	// Locator replaces the default search (locate.New).
	Locator Locator

	// Opener opens the located library. Defaults to native.Open.
	Opener voxon.Opener

	// Logger receives structured runtime logs. Defaults to Logger().
	Logger *zap.Logger

	// LogFile is appended to by LogToFile and on failures. Empty means
	// DefaultLogFile; "-" disables the file.
	LogFile string
}

func (c Config) withDefaults() Config {
	if c.Locator == nil {
		l := locate.New()
		l.Name = c.Name
		c.Locator = l
	}
	if c.Opener == nil {
		c.Opener = native.Open
	}
	if c.Logger == nil {
		c.Logger = Logger()
	}
	if c.LogFile == "" {
		c.LogFile = DefaultLogFile
	}
	return c
}

// Package pathutil manages application file paths and locations
package pathutil

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/adrg/xdg"

	"github.com/ayoisaiah/interval/internal/osutil"
)

const (
	envSuffix = "INTERVAL_ENV"
	appDir    = "interval"
)

// Paths holds all application path configurations.
type Paths struct {
	configFileName string
	boltFileName   string
	sqliteFileName string
	logFileName    string

	// Computed absolute paths
	configFilePath string
	boltFilePath   string
	sqliteFilePath string
	logFilePath    string
}

var (
	paths   *Paths
	initErr error
	once    sync.Once
)

// Initialize computes the application paths. Only the first call has any
// effect.
func Initialize() error {
	once.Do(func() {
		paths = newPaths(os.Getenv(envSuffix))
		initErr = paths.computePaths()
	})

	return initErr
}

func newPaths(env string) *Paths {
	p := &Paths{
		configFileName: "config.yml",
		boltFileName:   "interval.db",
		sqliteFileName: "interval.sqlite",
		logFileName:    "interval.log",
	}

	if env = strings.TrimSpace(env); env != "" {
		p.configFileName = fmt.Sprintf("config_%s.yml", env)
		p.boltFileName = fmt.Sprintf("interval_%s.db", env)
		p.sqliteFileName = fmt.Sprintf("interval_%s.sqlite", env)
		p.logFileName = fmt.Sprintf("interval_%s.log", env)
	}

	return p
}

// must panics if paths haven't been initialized.
func must() *Paths {
	if paths == nil {
		panic("pathutil.Initialize() must be called before accessing paths")
	}

	return paths
}

func Dir() string {
	return appDir
}

func ConfigFilePath() string {
	return must().configFilePath
}

// DBFilePath returns the database path for the given storage driver.
func DBFilePath(driver string) string {
	if driver == "sqlite" {
		return must().sqliteFilePath
	}

	return must().boltFilePath
}

func LogFilePath() string {
	return must().logFilePath
}

func (p *Paths) computePaths() error {
	var err error

	p.configFilePath, err = xdg.ConfigFile(filepath.Join(appDir, p.configFileName))
	if err != nil {
		return err
	}

	dataDir, err := xdg.DataFile(appDir)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(dataDir, osutil.DirPermission); err != nil {
		return err
	}

	p.boltFilePath = filepath.Join(dataDir, p.boltFileName)
	p.sqliteFilePath = filepath.Join(dataDir, p.sqliteFileName)
	p.logFilePath = filepath.Join(dataDir, "log", p.logFileName)

	return nil
}

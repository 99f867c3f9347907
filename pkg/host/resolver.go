package host

import (
	"fmt"
	"os"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/siyuan-infoblox/js-imports-group/pkg/config"
)

// SettingsResolverConfig controls how per-document configuration is assembled
type SettingsResolverConfig struct {
	SettingsFile string                                           // explicit settings file, "" to discover one per document
	Getenv       func(string) string                              // environment lookup, os.Getenv if nil
	Override     func(config.Configuration) config.Configuration // applied last, e.g. command line flags
	Warn         func(string)                                     // receives configuration warnings, may be nil
}

type loadedSettings struct {
	cfg config.Configuration
	err error
}

// NewSettingsResolver resolves defaults, then the nearest settings file, then
// the environment, then Override. Each settings file is loaded once and each
// distinct warning is reported once.
func NewSettingsResolver(rc SettingsResolverConfig) (ConfigResolver, error) {
	cache, err := lru.New[string, loadedSettings](64)
	if err != nil {
		return nil, err
	}
	getenv := rc.Getenv
	if getenv == nil {
		getenv = os.Getenv
	}
	var (
		warnMu sync.Mutex
		warned = make(map[string]bool)
	)
	warn := func(msg string) {
		if rc.Warn == nil {
			return
		}
		warnMu.Lock()
		defer warnMu.Unlock()
		if warned[msg] {
			return
		}
		warned[msg] = true
		rc.Warn(msg)
	}

	load := func(path string) (config.Configuration, error) {
		if path == "" {
			return config.Default(), nil
		}
		if cached, ok := cache.Get(path); ok {
			return cached.cfg.Clone(), cached.err
		}
		cfg, warnings, err := config.Load(path)
		for _, w := range warnings {
			warn(fmt.Sprintf("%s: %s", path, w))
		}
		cache.Add(path, loadedSettings{cfg: cfg, err: err})
		return cfg.Clone(), err
	}

	return func(docPath string) (config.Configuration, error) {
		settingsPath := rc.SettingsFile
		if settingsPath == "" {
			settingsPath = config.FindSettingsFile(docPath)
		}

		cfg, err := load(settingsPath)
		if err != nil {
			return config.Configuration{}, err
		}

		cfg, warnings := config.ApplyEnv(cfg, getenv)
		for _, w := range warnings {
			warn(w)
		}

		if rc.Override != nil {
			cfg = rc.Override(cfg)
		}
		return cfg.Normalized(), nil
	}, nil
}

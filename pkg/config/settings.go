package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/siyuan-infoblox/js-imports-group/pkg/errors"
	"github.com/siyuan-infoblox/js-imports-group/pkg/utils"
)

// Settings keys, as written by editor hosts and settings files
const (
	KeyLocalPrefixes        = "localPrefixes"
	KeyTreatRelativeAsLocal = "treatRelativeAsLocal"
	KeySortMethod           = "sortMethod"
	KeyKeepHeaderComments   = "keepHeaderComments"

	// HostNamespace prefixes keys in editor-style settings objects, e.g. "importSorter.sortMethod"
	HostNamespace = "importSorter"
)

// Environment variables overriding file settings
const (
	EnvLocalPrefixes        = "JIG_LOCAL_PREFIXES"
	EnvTreatRelativeAsLocal = "JIG_TREAT_RELATIVE_AS_LOCAL"
	EnvSortMethod           = "JIG_SORT_METHOD"
	EnvKeepHeaderComments   = "JIG_KEEP_HEADER_COMMENTS"
)

// SettingsFileNames are looked up, in order, in every directory from the target up to the root
var SettingsFileNames = []string{".jigrc.yaml", ".jigrc.yml", ".jigrc.json"}

// FromSettings builds a configuration from a host-provided settings object.
// Every missing or ill-typed key falls back to its default independently;
// the returned warnings describe each fallback.
func FromSettings(settings map[string]any) (Configuration, []string) {
	cfg := Default()
	var warnings []string

	if raw, ok := lookup(settings, KeyLocalPrefixes); ok {
		if prefixes, ok := stringList(raw); ok {
			cfg.LocalPrefixes = dedupe(prefixes)
		} else {
			warnings = append(warnings, fmt.Sprintf(errors.WarnMsgInvalidSetting, KeyLocalPrefixes, raw))
		}
	}

	if raw, ok := lookup(settings, KeyTreatRelativeAsLocal); ok {
		if v, ok := raw.(bool); ok {
			cfg.TreatRelativeAsLocal = v
		} else {
			warnings = append(warnings, fmt.Sprintf(errors.WarnMsgInvalidSetting, KeyTreatRelativeAsLocal, raw))
		}
	}

	if raw, ok := lookup(settings, KeySortMethod); ok {
		s, _ := raw.(string)
		if m, ok := ParseSortMethod(s); ok {
			cfg.SortMethod = m
		} else {
			warnings = append(warnings, fmt.Sprintf(errors.WarnMsgUnknownSortMethod, raw, DefaultSortMethod))
		}
	}

	if raw, ok := lookup(settings, KeyKeepHeaderComments); ok {
		if v, ok := raw.(bool); ok {
			cfg.KeepHeaderComments = v
		} else {
			warnings = append(warnings, fmt.Sprintf(errors.WarnMsgInvalidSetting, KeyKeepHeaderComments, raw))
		}
	}

	return cfg, warnings
}

// lookup finds key either at the top level, as a flat "importSorter.<key>" entry,
// or nested under an "importSorter" object
func lookup(settings map[string]any, key string) (any, bool) {
	if v, ok := settings[key]; ok {
		return v, true
	}
	if v, ok := settings[HostNamespace+"."+key]; ok {
		return v, true
	}
	if ns, ok := settings[HostNamespace].(map[string]any); ok {
		v, ok := ns[key]
		return v, ok
	}
	return nil, false
}

func stringList(raw any) ([]string, bool) {
	switch v := raw.(type) {
	case []string:
		return append([]string(nil), v...), true
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			s, ok := item.(string)
			if !ok {
				return nil, false
			}
			out = append(out, s)
		}
		return out, true
	}
	return nil, false
}

// Load reads a JSON or YAML settings file and resolves it against the defaults
func Load(path string) (Configuration, []string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Configuration{}, nil, fmt.Errorf("%s: %w", errors.ErrMsgFailedToReadSettings, err)
	}

	settings := map[string]any{}
	if err := yaml.Unmarshal(data, &settings); err != nil {
		return Configuration{}, nil, fmt.Errorf("%s %s: %w", errors.ErrMsgFailedToParseSettings, path, err)
	}

	cfg, warnings := FromSettings(settings)
	return cfg, warnings, nil
}

// FindSettingsFile returns the nearest settings file for target, or "" if there is none
func FindSettingsFile(target string) string {
	return utils.FindNearest(target, SettingsFileNames...)
}

// LoadDotEnv loads a .env file from dir into the process environment, if one exists.
// Variables already set in the environment win.
func LoadDotEnv(dir string) error {
	path := filepath.Join(dir, ".env")
	if _, err := os.Stat(path); err != nil {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("%s %s: %w", errors.ErrMsgFailedToLoadDotEnv, path, err)
	}
	return nil
}

// ApplyEnv overrides cfg with the JIG_* variables returned by getenv
func ApplyEnv(cfg Configuration, getenv func(string) string) (Configuration, []string) {
	cfg = cfg.Clone()
	var warnings []string

	if raw := strings.TrimSpace(getenv(EnvLocalPrefixes)); raw != "" {
		cfg.LocalPrefixes = dedupe(splitList(raw))
	}
	if raw := strings.TrimSpace(getenv(EnvTreatRelativeAsLocal)); raw != "" {
		if v, err := strconv.ParseBool(raw); err == nil {
			cfg.TreatRelativeAsLocal = v
		} else {
			warnings = append(warnings, fmt.Sprintf(errors.WarnMsgInvalidSetting, EnvTreatRelativeAsLocal, raw))
		}
	}
	if raw := strings.TrimSpace(getenv(EnvSortMethod)); raw != "" {
		if m, ok := ParseSortMethod(raw); ok {
			cfg.SortMethod = m
		} else {
			warnings = append(warnings, fmt.Sprintf(errors.WarnMsgUnknownSortMethod, raw, cfg.SortMethod))
		}
	}
	if raw := strings.TrimSpace(getenv(EnvKeepHeaderComments)); raw != "" {
		if v, err := strconv.ParseBool(raw); err == nil {
			cfg.KeepHeaderComments = v
		} else {
			warnings = append(warnings, fmt.Sprintf(errors.WarnMsgInvalidSetting, EnvKeepHeaderComments, raw))
		}
	}
	return cfg, warnings
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

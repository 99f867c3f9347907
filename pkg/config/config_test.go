package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	req := require.New(t)
	cfg := Default()

	req.Equal([]string{"@/", "./", "../", "~/", "#/", "*/", "src/"}, cfg.LocalPrefixes)
	req.True(cfg.TreatRelativeAsLocal)
	req.Equal(LengthDesc, cfg.SortMethod)
	req.False(cfg.KeepHeaderComments)

	// Callers cannot corrupt the package defaults
	cfg.LocalPrefixes[0] = "changed/"
	req.Equal("@/", Default().LocalPrefixes[0])
}

func TestParseSortMethod(t *testing.T) {
	req := require.New(t)

	tests := []struct {
		input  string
		want   SortMethod
		wantOK bool
	}{
		{"alphabetical", Alphabetical, true},
		{"length-asc", LengthAsc, true},
		{"length-desc", LengthDesc, true},
		{"length-then-alpha", LengthThenAlpha, true},
		{" length-asc ", LengthAsc, true},
		{"Alphabetical", LengthDesc, false},
		{"", LengthDesc, false},
		{"random", LengthDesc, false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := ParseSortMethod(tt.input)
			req.Equal(tt.want, got)
			req.Equal(tt.wantOK, ok)
		})
	}
}

func TestConfiguration_Normalized(t *testing.T) {
	req := require.New(t)
	cfg := Configuration{
		LocalPrefixes: []string{"@/", "./", "@/"},
		SortMethod:    "nope",
	}

	n := cfg.Normalized()
	req.Equal([]string{"@/", "./"}, n.LocalPrefixes)
	req.Equal(DefaultSortMethod, n.SortMethod)
	req.Equal([]string{"@/", "./", "@/"}, cfg.LocalPrefixes, "original is left untouched")
}

func TestFromSettings(t *testing.T) {
	req := require.New(t)

	t.Run("empty settings use defaults", func(t *testing.T) {
		cfg, warnings := FromSettings(map[string]any{})
		req.Equal(Default(), cfg)
		req.Empty(warnings)
	})

	t.Run("all keys", func(t *testing.T) {
		cfg, warnings := FromSettings(map[string]any{
			"localPrefixes":        []any{"@app/", "@lib/", "@app/"},
			"treatRelativeAsLocal": false,
			"sortMethod":           "alphabetical",
			"keepHeaderComments":   true,
			"somethingElse":        42,
		})
		req.Empty(warnings)
		req.Equal([]string{"@app/", "@lib/"}, cfg.LocalPrefixes)
		req.False(cfg.TreatRelativeAsLocal)
		req.Equal(Alphabetical, cfg.SortMethod)
		req.True(cfg.KeepHeaderComments)
	})

	t.Run("field by field fallback", func(t *testing.T) {
		cfg, warnings := FromSettings(map[string]any{
			"localPrefixes":        "@/",
			"treatRelativeAsLocal": "yes",
			"sortMethod":           "length-asc",
		})
		req.Len(warnings, 2)
		req.Equal(Default().LocalPrefixes, cfg.LocalPrefixes)
		req.True(cfg.TreatRelativeAsLocal)
		req.Equal(LengthAsc, cfg.SortMethod)
	})

	t.Run("unknown sort method", func(t *testing.T) {
		cfg, warnings := FromSettings(map[string]any{"sortMethod": "shortest"})
		req.Equal(DefaultSortMethod, cfg.SortMethod)
		req.Equal([]string{"unknown sort method shortest, using length-desc"}, warnings)
	})

	t.Run("list with a non-string element", func(t *testing.T) {
		cfg, warnings := FromSettings(map[string]any{"localPrefixes": []any{"@/", 3}})
		req.Len(warnings, 1)
		req.Equal(Default().LocalPrefixes, cfg.LocalPrefixes)
	})

	t.Run("empty prefix list is honored", func(t *testing.T) {
		cfg, warnings := FromSettings(map[string]any{"localPrefixes": []any{}})
		req.Empty(warnings)
		req.Empty(cfg.LocalPrefixes)
	})

	t.Run("host namespaced keys", func(t *testing.T) {
		cfg, _ := FromSettings(map[string]any{
			"importSorter.sortMethod": "length-then-alpha",
			"importSorter": map[string]any{
				"treatRelativeAsLocal": false,
			},
		})
		req.Equal(LengthThenAlpha, cfg.SortMethod)
		req.False(cfg.TreatRelativeAsLocal)
	})
}

func TestLoad(t *testing.T) {
	req := require.New(t)
	dir := t.TempDir()

	yamlPath := filepath.Join(dir, ".jigrc.yaml")
	req.NoError(os.WriteFile(yamlPath, []byte(`sortMethod: alphabetical
localPrefixes:
  - "@app/"
  - "./"
`), 0644))

	cfg, warnings, err := Load(yamlPath)
	req.NoError(err)
	req.Empty(warnings)
	req.Equal(Alphabetical, cfg.SortMethod)
	req.Equal([]string{"@app/", "./"}, cfg.LocalPrefixes)
	req.True(cfg.TreatRelativeAsLocal)

	jsonPath := filepath.Join(dir, "settings.json")
	req.NoError(os.WriteFile(jsonPath, []byte(`{"importSorter.sortMethod": "length-asc", "importSorter.keepHeaderComments": true}`), 0644))

	cfg, _, err = Load(jsonPath)
	req.NoError(err)
	req.Equal(LengthAsc, cfg.SortMethod)
	req.True(cfg.KeepHeaderComments)

	badPath := filepath.Join(dir, "bad.yaml")
	req.NoError(os.WriteFile(badPath, []byte("sortMethod: [unclosed"), 0644))
	_, _, err = Load(badPath)
	req.Error(err)

	_, _, err = Load(filepath.Join(dir, "missing.yaml"))
	req.Error(err)
}

func TestFindSettingsFile(t *testing.T) {
	req := require.New(t)
	dir := t.TempDir()

	settings := filepath.Join(dir, ".jigrc.json")
	req.NoError(os.WriteFile(settings, []byte(`{}`), 0644))

	sub := filepath.Join(dir, "src", "components")
	req.NoError(os.MkdirAll(sub, 0755))
	file := filepath.Join(sub, "Button.tsx")
	req.NoError(os.WriteFile(file, []byte(""), 0644))

	req.Equal(settings, FindSettingsFile(file))
	req.Equal(settings, FindSettingsFile(sub))
}

func TestApplyEnv(t *testing.T) {
	req := require.New(t)
	env := map[string]string{
		EnvLocalPrefixes:        " @app/, ./ ,,",
		EnvTreatRelativeAsLocal: "false",
		EnvSortMethod:           "alphabetical",
	}

	cfg, warnings := ApplyEnv(Default(), func(key string) string { return env[key] })
	req.Empty(warnings)
	req.Equal([]string{"@app/", "./"}, cfg.LocalPrefixes)
	req.False(cfg.TreatRelativeAsLocal)
	req.Equal(Alphabetical, cfg.SortMethod)

	env = map[string]string{EnvSortMethod: "bogus", EnvKeepHeaderComments: "maybe"}
	cfg, warnings = ApplyEnv(Default(), func(key string) string { return env[key] })
	req.Len(warnings, 2)
	req.Equal(LengthDesc, cfg.SortMethod)
	req.False(cfg.KeepHeaderComments)
}

func TestLoadDotEnv(t *testing.T) {
	req := require.New(t)
	dir := t.TempDir()

	req.NoError(LoadDotEnv(dir), "a missing .env is not an error")

	req.NoError(os.WriteFile(filepath.Join(dir, ".env"), []byte("JIG_TEST_DOTENV_VALUE=length-asc\n"), 0644))
	req.NoError(LoadDotEnv(dir))
	t.Cleanup(func() { os.Unsetenv("JIG_TEST_DOTENV_VALUE") })
	req.Equal("length-asc", os.Getenv("JIG_TEST_DOTENV_VALUE"))
}

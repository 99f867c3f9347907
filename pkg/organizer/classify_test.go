package organizer

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/siyuan-infoblox/js-imports-group/pkg/config"
)

func TestClassify(t *testing.T) {
	req := require.New(t)
	cfg := config.Default()

	tests := []struct {
		name       string
		modulePath string
		want       ImportGroup
	}{
		// Default local prefixes
		{"alias prefix", "@/components/ui/button", LocalGroup},
		{"relative", "./utils", LocalGroup},
		{"parent relative", "../lib/api", LocalGroup},
		{"home alias", "~/store", LocalGroup},
		{"hash alias", "#/config", LocalGroup},
		{"literal star prefix", "*/shared", LocalGroup},
		{"src prefix", "src/models/user", LocalGroup},

		// Third-party packages
		{"bare package", "react", ThirdPartyGroup},
		{"scoped package", "@tanstack/react-query", ThirdPartyGroup},
		{"node builtin", "node:fs", ThirdPartyGroup},
		{"subpath", "lodash/debounce", ThirdPartyGroup},

		// Edge cases
		{"empty path", "", ThirdPartyGroup},
		{"star is not a wildcard", "anything/shared", ThirdPartyGroup},
		{"case sensitive prefix", "SRC/models", ThirdPartyGroup},
		{"dot without slash", ".hidden", ThirdPartyGroup},
		{"at without slash", "@scope", ThirdPartyGroup},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Classify(tt.modulePath, cfg)
			req.Equal(tt.want, result, "Classify(%q)", tt.modulePath)
		})
	}
}

func TestClassify_treatRelativeAsLocal(t *testing.T) {
	req := require.New(t)

	cfg := config.Configuration{
		LocalPrefixes:        []string{"@app/"},
		TreatRelativeAsLocal: true,
		SortMethod:           config.LengthDesc,
	}
	req.Equal(LocalGroup, Classify("./a", cfg))
	req.Equal(LocalGroup, Classify("../a", cfg))
	req.Equal(LocalGroup, Classify("@app/x", cfg))
	req.Equal(ThirdPartyGroup, Classify("@/x", cfg))

	cfg.TreatRelativeAsLocal = false
	req.Equal(ThirdPartyGroup, Classify("./a", cfg))
	req.Equal(ThirdPartyGroup, Classify("../a", cfg))
	req.Equal(LocalGroup, Classify("@app/x", cfg))

	// A relative prefix listed explicitly still wins when relative handling is off
	cfg.LocalPrefixes = []string{"./"}
	req.Equal(LocalGroup, Classify("./a", cfg))
	req.Equal(ThirdPartyGroup, Classify("../a", cfg))
}

func TestClassify_totality(t *testing.T) {
	req := require.New(t)
	configs := []config.Configuration{
		config.Default(),
		{},
		{LocalPrefixes: []string{""}},
		{LocalPrefixes: []string{"x"}, TreatRelativeAsLocal: true},
	}
	paths := []string{"", " ", "./", "../", "@/", "react", "\x00", "日本/語", "x"}

	for _, cfg := range configs {
		for _, p := range paths {
			group := Classify(p, cfg)
			req.True(group == LocalGroup || group == ThirdPartyGroup, "Classify(%q) = %v", p, group)
		}
	}

	// The empty prefix matches every path
	req.Equal(LocalGroup, Classify("react", config.Configuration{LocalPrefixes: []string{""}}))
}

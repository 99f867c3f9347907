package organizer

import (
	"strings"

	"github.com/siyuan-infoblox/js-imports-group/pkg/config"
)

// isRelative checks if a module path is relative to the importing file
func isRelative(modulePath string) bool {
	return strings.HasPrefix(modulePath, "./") || strings.HasPrefix(modulePath, "../")
}

// Classify determines which group an import belongs to. Prefixes are matched
// literally and case-sensitively; "*/" is not a wildcard.
func Classify(modulePath string, cfg config.Configuration) ImportGroup {
	if cfg.TreatRelativeAsLocal && isRelative(modulePath) {
		return LocalGroup
	}

	for _, prefix := range cfg.LocalPrefixes {
		if strings.HasPrefix(modulePath, prefix) {
			return LocalGroup
		}
	}

	return ThirdPartyGroup
}

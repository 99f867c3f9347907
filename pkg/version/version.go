package version

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/siyuan-infoblox/js-imports-group/pkg/config"
)

var (
	// These variables are set at build time using ldflags
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// Info holds version information
type Info struct {
	Version     string   `json:"version"`
	GitCommit   string   `json:"gitCommit"`
	BuildDate   string   `json:"buildDate"`
	GoVersion   string   `json:"goVersion"`
	Platform    string   `json:"platform"`
	SortMethods []string `json:"sortMethods"`
}

// Get returns version information
func Get() Info {
	methods := make([]string, 0, len(config.SortMethods))
	for _, m := range config.SortMethods {
		methods = append(methods, string(m))
	}
	return Info{
		Version:     Version,
		GitCommit:   GitCommit,
		BuildDate:   BuildDate,
		GoVersion:   runtime.Version(),
		Platform:    fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH),
		SortMethods: methods,
	}
}

// String returns a human-readable version string
func (i Info) String() string {
	return fmt.Sprintf("jig version %s (%s, built %s)\n%s %s\nSort methods: %s",
		i.Version, i.GitCommit, i.BuildDate, i.GoVersion, i.Platform, strings.Join(i.SortMethods, ", "))
}

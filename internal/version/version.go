package version

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
)

// Version information for the lexiscope CLI.
// These variables can be overridden at build time via -ldflags.
var (
	// Version is the semantic version of the CLI.
	Version = "0.1.0-dev"

	// GitCommit is an optional git commit hash.
	GitCommit = ""

	// GitMessage is an optional git commit message.
	GitMessage = ""

	// BuildDate is an optional build date in ISO-8601.
	BuildDate = ""
)

// Info is the machine-readable form of the build metadata.
type Info struct {
	Version    string `json:"version"`
	GitCommit  string `json:"git_commit,omitempty"`
	GitMessage string `json:"git_message,omitempty"`
	BuildDate  string `json:"build_date,omitempty"`
}

// Current returns the build metadata.
func Current() Info {
	return Info{Version: Version, GitCommit: GitCommit, GitMessage: GitMessage, BuildDate: BuildDate}
}

// Colored renders Version with major, minor and patch in their own colors.
// Anything that does not look like x.y.z is returned unchanged.
func Colored(enabled bool) string {
	core, suffix, _ := strings.Cut(Version, "-")
	parts := strings.SplitN(core, ".", 3)
	if len(parts) != 3 {
		return Version
	}
	colors := []*color.Color{
		color.New(color.FgYellow, color.Bold),
		color.New(color.FgGreen, color.Bold),
		color.New(color.FgBlue, color.Bold),
	}
	for i, c := range colors {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
		parts[i] = c.Sprint(parts[i])
	}
	out := strings.Join(parts, ".")
	if suffix != "" {
		out += "-" + suffix
	}
	return out
}

// String is the one-line banner printed by `lexiscope version`.
func String(colored bool) string {
	var b strings.Builder
	fmt.Fprintf(&b, "lexiscope %s", Colored(colored))
	if GitCommit != "" {
		fmt.Fprintf(&b, " (%s", GitCommit)
		if BuildDate != "" {
			fmt.Fprintf(&b, ", %s", BuildDate)
		}
		b.WriteByte(')')
	} else if BuildDate != "" {
		fmt.Fprintf(&b, " (%s)", BuildDate)
	}
	if GitMessage != "" {
		fmt.Fprintf(&b, "\n%s", GitMessage)
	}
	return b.String()
}

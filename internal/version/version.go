// Package version holds build metadata for the exprlex CLI.
// These variables can be overridden at build time via -ldflags.
package version

import "github.com/fatih/color"

var (
	versionMajorColor = color.New(color.FgYellow, color.Bold)
	versionMinorColor = color.New(color.FgGreen, color.Bold)
	versionPatchColor = color.New(color.FgBlue, color.Bold)

	// Version is the semantic version of the CLI.
	Version = "0.1.0-dev"

	// GitCommit is an optional git commit hash.
	GitCommit = ""

	// GitMessage is an optional git commit message.
	GitMessage = ""

	// BuildDate is an optional build date in ISO-8601.
	BuildDate = ""
)

// Colored renders v with the major, minor and patch parts highlighted.
// Anything after the patch (pre-release, build metadata) is left plain.
func Colored(v string, enabled bool) string {
	parts := splitVersion(v)
	if parts == nil {
		return v
	}
	for _, c := range []*color.Color{versionMajorColor, versionMinorColor, versionPatchColor} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return versionMajorColor.Sprint(parts[0]) + "." +
		versionMinorColor.Sprint(parts[1]) + "." +
		versionPatchColor.Sprint(parts[2]) + parts[3]
}

// splitVersion splits "1.2.3-rc" into {"1", "2", "3", "-rc"}; nil if v is not semver-like.
func splitVersion(v string) []string {
	out := make([]string, 0, 4)
	rest := v
	for i := 0; i < 3; i++ {
		n := 0
		for n < len(rest) && rest[n] >= '0' && rest[n] <= '9' {
			n++
		}
		if n == 0 {
			return nil
		}
		out = append(out, rest[:n])
		rest = rest[n:]
		if i < 2 {
			if rest == "" || rest[0] != '.' {
				return nil
			}
			rest = rest[1:]
		}
	}
	return append(out, rest)
}

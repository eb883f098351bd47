package stack

import (
	"fmt"
	"regexp"
)

var (
	semanticVersionPattern = regexp.MustCompile(`^v?(\d+)\.(\d+)\.(\d+)(?:-(.+))?`)
	versionCleanPattern    = regexp.MustCompile(`[^a-zA-Z0-9.-]`)
)

// StackVersion derives the stack version label from a product version.
// Semantic inputs (v?MAJOR.MINOR.PATCH with optional -PRERELEASE) yield
// "stack-MAJOR.MINOR.PATCH[-PRERELEASE]"; anything else is cleaned of
// characters outside [A-Za-z0-9.-] and prefixed with "stack-".
func StackVersion(productVersion string) string {
	if m := semanticVersionPattern.FindStringSubmatch(productVersion); m != nil {
		if m[4] != "" {
			return fmt.Sprintf("stack-%s.%s.%s-%s", m[1], m[2], m[3], m[4])
		}
		return fmt.Sprintf("stack-%s.%s.%s", m[1], m[2], m[3])
	}
	return "stack-" + versionCleanPattern.ReplaceAllString(productVersion, "")
}

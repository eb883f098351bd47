package output

import "strings"

const imageRegistry = "neewee"

// DockerImage derives the image reference for a detected service and release
// version: the version loses any "v" characters and "-pre" marker, the
// service name loses underscores and casing.
func DockerImage(serviceName, version string) string {
	if version == "" {
		version = "latest"
	}
	version = strings.ReplaceAll(version, "v", "")
	version = strings.TrimSpace(strings.ReplaceAll(version, "-pre", ""))
	version = strings.TrimSuffix(version, ".")

	service := strings.ToLower(strings.ReplaceAll(serviceName, "_", ""))

	return imageRegistry + "/" + service + ":pre-release-v" + version
}

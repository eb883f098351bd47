package output

import (
	"errors"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/theshubhamgour/ReleaseFormulaTracker/pkg/tracker/models"
)

// ErrUnsuccessfulManifest indicates an attempt to export a failed synthesis.
var ErrUnsuccessfulManifest = errors.New("cannot export unsuccessful stack generation")

const composeFileVersion = "3.8"

// Compose renders a stack manifest as a Docker Compose document. Services
// appear in component order, so the output is deterministic for a given
// manifest. Two infrastructure components get fixed extra blocks: the load
// balancer its ports, the database its port and environment.
func Compose(manifest *models.StackManifest) ([]byte, error) {
	if manifest == nil || !manifest.Success {
		return nil, ErrUnsuccessfulManifest
	}

	services := mapping()
	for _, component := range manifest.Components {
		appendPair(services, strings.ReplaceAll(component.Name, "-", "_"), serviceNode(component))
	}

	root := mapping()
	appendPair(root, "version", quoted(composeFileVersion))
	appendPair(root, "services", services)

	return yaml.Marshal(root)
}

func serviceNode(component models.Component) *yaml.Node {
	deploy := mapping()
	appendPair(deploy, "replicas", integer(component.Replicas))

	service := mapping()
	appendPair(service, "image", scalar(component.Name+":"+component.Version))
	appendPair(service, "deploy", deploy)

	if component.Kind != models.ComponentInfrastructure {
		return service
	}
	switch component.Name {
	case "load-balancer":
		appendPair(service, "ports", sequence(quoted("80:80"), quoted("443:443")))
	case "database":
		appendPair(service, "ports", sequence(quoted("5432:5432")))
		appendPair(service, "environment", sequence(
			scalar("POSTGRES_DB=releasedb"),
			scalar("POSTGRES_USER=admin"),
			scalar("POSTGRES_PASSWORD=password"),
		))
	}
	return service
}

func mapping() *yaml.Node {
	return &yaml.Node{Kind: yaml.MappingNode}
}

func appendPair(m *yaml.Node, key string, value *yaml.Node) {
	m.Content = append(m.Content, scalar(key), value)
}

func scalar(v string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Value: v}
}

func quoted(v string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Style: yaml.SingleQuotedStyle, Value: v}
}

func integer(v int) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!int", Value: strconv.Itoa(v)}
}

func sequence(items ...*yaml.Node) *yaml.Node {
	return &yaml.Node{Kind: yaml.SequenceNode, Content: items}
}

package routing

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

type RouteClass string

const (
	RouteClassUI     RouteClass = "ui"
	RouteClassAPI    RouteClass = "api"
	RouteClassStatic RouteClass = "static"
	RouteClassOps    RouteClass = "ops"
)

//go:embed routes.yaml
var defaultRoutes []byte

type Rule struct {
	Prefix string     `yaml:"prefix"`
	Class  RouteClass `yaml:"class"`
}

type routesFile struct {
	Version     int               `yaml:"version"`
	Entrypoints map[string][]Rule `yaml:"entrypoints"`
}

// LoadRules reads the rules of entrypoint from path, or from the embedded
// routes.yaml when path is empty.
func LoadRules(path, entrypoint string) ([]Rule, error) {
	raw := defaultRoutes
	if strings.TrimSpace(path) != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		raw = b
	}
	return ParseRules(raw, entrypoint)
}

func ParseRules(raw []byte, entrypoint string) ([]Rule, error) {
	var file routesFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, err
	}
	if file.Version != 1 {
		return nil, fmt.Errorf("unsupported routes version: %d", file.Version)
	}
	if strings.TrimSpace(entrypoint) == "" {
		entrypoint = "server"
	}
	rules, ok := file.Entrypoints[entrypoint]
	if !ok {
		return nil, fmt.Errorf("entrypoint %q not found in routes", entrypoint)
	}

	for i := range rules {
		rules[i].Prefix = strings.TrimSpace(rules[i].Prefix)
		if !strings.HasPrefix(rules[i].Prefix, "/") {
			return nil, fmt.Errorf("route rule[%d]: prefix must start with '/': %q", i, rules[i].Prefix)
		}
		switch rules[i].Class {
		case RouteClassUI, RouteClassAPI, RouteClassStatic, RouteClassOps:
		default:
			return nil, fmt.Errorf("route rule[%d]: unknown class: %q", i, rules[i].Class)
		}
	}
	return rules, nil
}

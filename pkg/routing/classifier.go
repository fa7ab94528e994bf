package routing

import (
	"sort"
	"strings"
)

// Classifier resolves a request path to the longest matching rule.
type Classifier struct {
	rules []Rule
}

func NewClassifier(rules []Rule) *Classifier {
	sorted := append([]Rule(nil), rules...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return len(sorted[i].Prefix) > len(sorted[j].Prefix)
	})
	return &Classifier{rules: sorted}
}

// Match reports the class of the longest rule covering path.
func (c *Classifier) Match(path string) (RouteClass, bool) {
	for _, rule := range c.rules {
		if HasPathPrefixOnBoundary(path, rule.Prefix) {
			return rule.Class, true
		}
	}
	return "", false
}

// Classify falls back to RouteClassUI for paths no rule covers.
func (c *Classifier) Classify(path string) RouteClass {
	if class, ok := c.Match(path); ok {
		return class
	}
	return RouteClassUI
}

// WantsJSON reports whether errors for path should be rendered as JSON.
func (c *Classifier) WantsJSON(path string) bool {
	switch c.Classify(path) {
	case RouteClassAPI, RouteClassOps:
		return true
	default:
		return false
	}
}

// HasPathPrefixOnBoundary matches "/api" against "/api" and "/api/x" but not "/apix".
func HasPathPrefixOnBoundary(path, prefix string) bool {
	if prefix == "" || !strings.HasPrefix(path, prefix) {
		return false
	}
	if prefix == "/" || len(path) == len(prefix) || strings.HasSuffix(prefix, "/") {
		return true
	}
	return path[len(prefix)] == '/'
}

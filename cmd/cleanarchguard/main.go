package main

import (
	"errors"
	"flag"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/roblaszczak/go-cleanarch/cleanarch"
	"gopkg.in/yaml.v3"
)

type config struct {
	Version           int      `yaml:"version"`
	Root              string   `yaml:"root"`
	IgnoreTests       bool     `yaml:"ignore_tests"`
	IgnorePackages    []string `yaml:"ignore_packages"`
	AllowedViolations []string `yaml:"allow_violations"`
	Layers            struct {
		Domain         []string `yaml:"domain"`
		Application    []string `yaml:"application"`
		Interfaces     []string `yaml:"interfaces"`
		Infrastructure []string `yaml:"infrastructure"`
	} `yaml:"layers"`
}

// Directory names of the module layout: modules/<name>/{domain,services,presentation,infrastructure}.
var (
	defaultDomain         = []string{"domain"}
	defaultApplication    = []string{"services"}
	defaultInterfaces     = []string{"presentation"}
	defaultInfrastructure = []string{"infrastructure"}
)

func main() {
	configPath := flag.String("config", ".gocleanarch.yml", "path to the layering config")
	debug := flag.Bool("debug", false, "print go-cleanarch debug output")
	flag.Parse()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		log.Fatalf("failed to read config: %v", err)
	}
	root, err := resolveRoot(cfg.Root)
	if err != nil {
		log.Fatalf("failed to resolve root: %v", err)
	}
	if *debug {
		cleanarch.Log.SetOutput(os.Stderr)
	}

	validator := cleanarch.NewValidator(layerAliases(cfg))
	ok, errs, err := validator.Validate(root, cfg.IgnoreTests, cfg.IgnorePackages)
	if err != nil {
		log.Fatalf("go-cleanarch failed: %v", err)
	}

	var violations []string
	for _, validationErr := range errs {
		if msg := validationErr.Error(); !allowed(msg, cfg.AllowedViolations) {
			violations = append(violations, msg)
		}
	}
	if !ok && len(violations) > 0 {
		for _, v := range violations {
			log.Println(v)
		}
		log.Printf("layering check failed with %d violation(s)", len(violations))
		os.Exit(1)
	}
	log.Println("layering check passed")
}

func loadConfig(path string) (*config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := &config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	if cfg.Version != 1 {
		return nil, errors.New("unsupported config version")
	}
	if cfg.Root == "" {
		cfg.Root = "."
	}
	return cfg, nil
}

func resolveRoot(root string) (string, error) {
	if strings.TrimSpace(root) == "" {
		return "", errors.New("root must not be empty")
	}
	return filepath.Abs(root)
}

func layerAliases(cfg *config) map[string]cleanarch.Layer {
	aliases := map[string]cleanarch.Layer{}
	add := func(custom, defaults []string, layer cleanarch.Layer) {
		names := defaults
		if len(custom) > 0 {
			names = custom
		}
		for _, name := range names {
			if name != "" {
				aliases[name] = layer
			}
		}
	}
	add(cfg.Layers.Domain, defaultDomain, cleanarch.LayerDomain)
	add(cfg.Layers.Application, defaultApplication, cleanarch.LayerApplication)
	add(cfg.Layers.Interfaces, defaultInterfaces, cleanarch.LayerInterfaces)
	add(cfg.Layers.Infrastructure, defaultInfrastructure, cleanarch.LayerInfrastructure)
	return aliases
}

func allowed(msg string, patterns []string) bool {
	for _, pattern := range patterns {
		if pattern != "" && strings.Contains(msg, pattern) {
			return true
		}
	}
	return false
}

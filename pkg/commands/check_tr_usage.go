package commands

import (
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/iota-uz/go-i18n/v2/i18n"
	"github.com/sirupsen/logrus"
	"golang.org/x/text/language"

	"github.com/iota-uz/iota-actions/pkg/application"
	"github.com/iota-uz/iota-actions/pkg/configuration"
)

type trUsage struct {
	Key  string
	File string
	Line int
}

type missingKey struct {
	Locale string
	Key    string
	Source string
}

func defaultLanguages(allowed []string) []string {
	if len(allowed) == 0 {
		return []string{"en", "zh"}
	}
	return allowed
}

func bundleFor(mods ...application.Module) (application.Application, error) {
	conf := configuration.Use()
	app := application.New(&application.ApplicationOptions{
		Bundle: application.LoadBundle(),
		Logger: conf.Logger(),
	})
	for _, m := range mods {
		if err := m.Register(app); err != nil {
			return nil, err
		}
	}
	return app, nil
}

func allowedTags(messages map[language.Tag]map[string]*i18n.MessageTemplate, codes []string) (map[string]language.Tag, error) {
	allowed := make(map[string]language.Tag, len(codes))
	for _, code := range codes {
		tag, err := language.Parse(code)
		if err != nil {
			return nil, fmt.Errorf("invalid allowed language %q: %w", code, err)
		}
		if messages[tag] == nil {
			return nil, fmt.Errorf("allowed language %q (%s) not found in bundle", code, tag)
		}
		allowed[code] = tag
	}
	return allowed, nil
}

func reportMissing(logger *logrus.Logger, missing []missingKey, what string) error {
	for _, m := range missing {
		fields := logrus.Fields{"locale": m.Locale, "key": m.Key}
		if m.Source != "" {
			fields["source"] = m.Source
		}
		logger.WithFields(fields).Error(what)
	}
	return fmt.Errorf("%d translation keys are missing", len(missing))
}

// CheckTrUsage walks the working directory for translation keys referenced from Go code
// and verifies each one exists in every allowed locale.
func CheckTrUsage(allowedLanguages []string, mods ...application.Module) error {
	conf := configuration.Use()
	app, err := bundleFor(mods...)
	if err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}

	root, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get working directory: %w", err)
	}
	usages, err := collectTrUsages(root)
	if err != nil {
		return err
	}
	if len(usages) == 0 {
		return fmt.Errorf("no translation usages found")
	}

	messages := app.Bundle().Messages()
	allowed, err := allowedTags(messages, defaultLanguages(allowedLanguages))
	if err != nil {
		return err
	}

	if missing := missingUsages(usages, messages, allowed); len(missing) > 0 {
		return reportMissing(conf.Logger(), missing, "Translation key missing in allowed locales")
	}
	conf.Logger().WithField("allowed_locales", strings.Join(defaultLanguages(allowedLanguages), ", ")).
		Info("All translation usages are present in allowed locales")
	return nil
}

func missingUsages(usages []trUsage, messages map[language.Tag]map[string]*i18n.MessageTemplate, allowed map[string]language.Tag) []missingKey {
	var missing []missingKey
	seen := make(map[string]bool)
	for _, u := range usages {
		// first occurrence is the one reported
		if u.Key == "" || seen[u.Key] {
			continue
		}
		seen[u.Key] = true
		for locale, tag := range allowed {
			if messages[tag][u.Key] == nil {
				missing = append(missing, missingKey{
					Locale: locale,
					Key:    u.Key,
					Source: fmt.Sprintf("%s:%d", u.File, u.Line),
				})
			}
		}
	}
	return missing
}

func collectTrUsages(root string) ([]trUsage, error) {
	var usages []trUsage
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)

		if d.IsDir() {
			name := d.Name()
			if rel != "." && (strings.HasPrefix(name, ".") || strings.HasPrefix(name, "_") || name == "vendor" || name == "testdata") {
				return fs.SkipDir
			}
			return nil
		}
		if !strings.HasSuffix(rel, ".go") || strings.HasSuffix(rel, "_test.go") {
			return nil
		}
		fileUsages, err := collectTrUsagesFromGoFile(path, rel)
		if err != nil {
			return err
		}
		usages = append(usages, fileUsages...)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return usages, nil
}

// collectTrUsagesFromGoFile picks up x.T("Key", ...) calls, MessageID fields and
// navigation item names.
func collectTrUsagesFromGoFile(absPath, relPath string) ([]trUsage, error) {
	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, absPath, nil, 0)
	if err != nil {
		return nil, err
	}

	var usages []trUsage
	add := func(expr ast.Expr) {
		if key, ok := stringLiteral(expr); ok {
			usages = append(usages, trUsage{Key: key, File: relPath, Line: fset.Position(expr.Pos()).Line})
		}
	}

	ast.Inspect(file, func(n ast.Node) bool {
		switch node := n.(type) {
		case *ast.CallExpr:
			selector, ok := node.Fun.(*ast.SelectorExpr)
			if ok && selector.Sel.Name == "T" && len(node.Args) > 0 {
				add(node.Args[0])
			}
		case *ast.CompositeLit:
			navItem := isNavigationItem(node.Type)
			for _, elt := range node.Elts {
				kv, ok := elt.(*ast.KeyValueExpr)
				if !ok {
					continue
				}
				key, ok := kv.Key.(*ast.Ident)
				if !ok {
					continue
				}
				if key.Name == "MessageID" || (navItem && key.Name == "Name") {
					add(kv.Value)
				}
			}
		}
		return true
	})
	return usages, nil
}

func isNavigationItem(expr ast.Expr) bool {
	switch t := expr.(type) {
	case *ast.SelectorExpr:
		return t.Sel.Name == "NavigationItem"
	case *ast.Ident:
		return t.Name == "NavigationItem"
	}
	return false
}

func stringLiteral(expr ast.Expr) (string, bool) {
	lit, ok := expr.(*ast.BasicLit)
	if !ok || lit.Kind != token.STRING {
		return "", false
	}
	unquoted, err := strconv.Unquote(lit.Value)
	if err != nil {
		return "", false
	}
	return unquoted, true
}

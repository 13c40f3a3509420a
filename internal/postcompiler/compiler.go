// Package postcompiler turns post templates into dated markdown files.
//
// A posts directory holds one subdirectory per post. Each post directory may
// contain templates (*.tmpl) and snippet files (*.go, *.py, ...). Templates are
// rendered with text/template and can embed a snippet as a fenced code block
// with {{ snippet "calculations.go" }}. Every template must carry a
// "date: YYYY-MM-DD" line; the compiled file is written to
// <output>/<post>/<date>-<name>.md.
package postcompiler

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
	"text/template"
	"unicode"

	"github.com/sirupsen/logrus"
)

const (
	TemplateSuffix = ".tmpl"
	PostSuffix     = ".md"

	publishedDateGroup = "posted_date"
)

var publishedDatePattern = regexp.MustCompile(`date\: (?P<posted_date>[0-9]+\-[0-9]+\-[0-9]+)`)

// snippetLanguages maps snippet file extensions to fenced code block languages
var snippetLanguages = map[string]string{
	".go":  "go",
	".py":  "python",
	".sh":  "bash",
	".sql": "sql",
}

// ErrMissingPublishedDate is returned for a template without a "date: YYYY-MM-DD" line
var ErrMissingPublishedDate = errors.New("template has no published date")

// ErrOverlappingDirectories is returned when the output directory is, contains,
// or lies inside the posts directory
var ErrOverlappingDirectories = errors.New("posts and output directories must not overlap")

// Config holds the compiler directories
type Config struct {
	PostsDir  string
	OutputDir string
}

// Validate ensures the output directory can be wiped without touching any post.
// Paths are compared after filepath.Abs, so "posts", "posts/" and "./posts" are
// the same directory.
func (cfg Config) Validate() error {
	if cfg.PostsDir == "" {
		return errors.New("posts directory cannot be empty")
	}
	if cfg.OutputDir == "" {
		return errors.New("output directory cannot be empty")
	}

	posts, err := filepath.Abs(cfg.PostsDir)
	if err != nil {
		return fmt.Errorf("failed to resolve posts directory: %w", err)
	}
	output, err := filepath.Abs(cfg.OutputDir)
	if err != nil {
		return fmt.Errorf("failed to resolve output directory: %w", err)
	}

	if isWithin(output, posts) || isWithin(posts, output) {
		return fmt.Errorf("%w: posts=%s output=%s", ErrOverlappingDirectories, posts, output)
	}

	return nil
}

// isWithin reports whether path is dir itself or somewhere below it
func isWithin(dir, path string) bool {
	rel, err := filepath.Rel(dir, path)
	if err != nil {
		return false
	}
	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}

// Result lists the files written by a compile run
type Result struct {
	Compiled []string
	Skipped  []string
}

// Compiler compiles post templates into markdown
type Compiler struct {
	cfg Config
	log *logrus.Entry
}

// New creates a new Compiler instance
func New(cfg Config, log *logrus.Entry) *Compiler {
	return &Compiler{cfg: cfg, log: log}
}

// Compile recreates the output directory and compiles every post.
// Stale output is always removed first, so the output directory only ever
// holds the result of the latest run. An invalid Config is rejected before
// anything is removed.
func (c *Compiler) Compile(ctx context.Context) (Result, error) {
	var result Result

	if err := c.cfg.Validate(); err != nil {
		return result, err
	}

	c.log.WithField("dir", c.cfg.OutputDir).Info("Recreating compiled posts directory")
	if err := os.RemoveAll(c.cfg.OutputDir); err != nil {
		return result, fmt.Errorf("failed to remove compiled posts directory: %w", err)
	}
	if err := os.MkdirAll(c.cfg.OutputDir, 0o755); err != nil {
		return result, fmt.Errorf("failed to create compiled posts directory: %w", err)
	}

	entries, err := os.ReadDir(c.cfg.PostsDir)
	if err != nil {
		return result, fmt.Errorf("failed to read posts directory: %w", err)
	}

	for _, entry := range entries {
		if !entry.IsDir() || isHidden(entry.Name()) {
			continue
		}

		compiled, err := c.compilePost(ctx, entry.Name())
		if err != nil {
			return result, err
		}
		if len(compiled) == 0 {
			result.Skipped = append(result.Skipped, entry.Name())
			continue
		}
		result.Compiled = append(result.Compiled, compiled...)
	}

	return result, nil
}

// compilePost compiles all templates of a single post directory
func (c *Compiler) compilePost(ctx context.Context, post string) ([]string, error) {
	postDir := filepath.Join(c.cfg.PostsDir, post)
	log := c.log.WithField("post", post)

	entries, err := os.ReadDir(postDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read post directory %s: %w", postDir, err)
	}

	var templates []string
	snippets := make(map[string]string)
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		name := entry.Name()
		switch {
		case strings.HasSuffix(name, TemplateSuffix):
			templates = append(templates, name)
		case snippetLanguages[filepath.Ext(name)] != "":
			data, err := os.ReadFile(filepath.Join(postDir, name))
			if err != nil {
				return nil, fmt.Errorf("failed to read snippet %s: %w", name, err)
			}
			snippets[name] = string(data)
		}
	}

	if len(templates) == 0 {
		log.Info("No templates found, skipping")
		return nil, nil
	}
	sort.Strings(templates)

	outDir := filepath.Join(c.cfg.OutputDir, post)
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create output directory %s: %w", outDir, err)
	}

	compiled := make([]string, 0, len(templates))
	for _, name := range templates {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		source, err := os.ReadFile(filepath.Join(postDir, name))
		if err != nil {
			return nil, fmt.Errorf("failed to read template %s: %w", name, err)
		}

		date, err := PublishedDate(string(source))
		if err != nil {
			return nil, fmt.Errorf("%s/%s: %w", post, name, err)
		}

		rendered, err := Render(name, string(source), snippets)
		if err != nil {
			return nil, fmt.Errorf("%s/%s: %w", post, name, err)
		}

		outPath := filepath.Join(outDir, OutputName(date, name))
		if err := os.WriteFile(outPath, []byte(rendered), 0o644); err != nil {
			return nil, fmt.Errorf("failed to write compiled post: %w", err)
		}

		log.WithFields(logrus.Fields{
			"template": name,
			"output":   outPath,
		}).Info("Compiled post")
		compiled = append(compiled, outPath)
	}

	return compiled, nil
}

// PublishedDate extracts the first "date: YYYY-MM-DD" value from a template
func PublishedDate(source string) (string, error) {
	match := publishedDatePattern.FindStringSubmatch(source)
	if match == nil {
		return "", ErrMissingPublishedDate
	}
	return match[publishedDatePattern.SubexpIndex(publishedDateGroup)], nil
}

// OutputName returns the dated markdown file name for a template
func OutputName(date, templateName string) string {
	return date + "-" + strings.TrimSuffix(templateName, TemplateSuffix) + PostSuffix
}

// Render executes a template with the snippet function bound to snippets
func Render(name, source string, snippets map[string]string) (string, error) {
	tmpl, err := template.New(name).
		Option("missingkey=error").
		Funcs(template.FuncMap{
			"snippet": func(file string) (string, error) {
				return formatSnippet(file, snippets)
			},
		}).
		Parse(source)
	if err != nil {
		return "", fmt.Errorf("failed to parse template: %w", err)
	}

	var out strings.Builder
	if err := tmpl.Execute(&out, nil); err != nil {
		return "", fmt.Errorf("failed to render template: %w", err)
	}
	return out.String(), nil
}

// formatSnippet wraps a snippet in a fenced code block
func formatSnippet(file string, snippets map[string]string) (string, error) {
	code, ok := snippets[file]
	if !ok {
		return "", fmt.Errorf("snippet %q: %w", file, fs.ErrNotExist)
	}

	language := snippetLanguages[filepath.Ext(file)]
	return fmt.Sprintf("```%s\n%s\n```\n\n", language, strings.TrimRightFunc(code, unicode.IsSpace)), nil
}

// isHidden reports whether a post directory should be ignored
func isHidden(name string) bool {
	return strings.HasPrefix(name, ".") || strings.HasPrefix(name, "_")
}

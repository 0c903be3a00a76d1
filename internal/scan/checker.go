package scan

import (
	"context"
	"fmt"
	"go/parser"
	"go/token"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/Lzww0608/uuidlit"
	"github.com/Lzww0608/uuidlit/internal/config"
	"github.com/Lzww0608/uuidlit/internal/diag"
)

// Report is a diagnostic together with the source line it points into.
type Report struct {
	diag.Diagnostic
	Line string
}

// Result summarizes a check run.
type Result struct {
	Files    int
	Literals int
	Reports  []Report
}

// Checker checks UUID literals in Go files.
type Checker struct {
	cfg config.Config
	log *slog.Logger
}

// NewChecker creates a checker. A nil logger discards log output.
func NewChecker(cfg config.Config, log *slog.Logger) *Checker {
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Checker{cfg: cfg, log: log}
}

// Check walks every path, which may be a Go file, a directory, or a
// directory followed by "/..." (directories are always walked recursively),
// and checks each Go file found.
func (c *Checker) Check(ctx context.Context, paths ...string) (Result, error) {
	if len(paths) == 0 {
		paths = []string{"."}
	}

	var res Result
	for _, p := range paths {
		root := filepath.Clean(strings.TrimSuffix(p, "..."))
		info, err := os.Stat(root)
		if err != nil {
			return res, fmt.Errorf("scan: %w", err)
		}
		if !info.IsDir() {
			if err := c.checkPath(root, &res); err != nil {
				return res, err
			}
			continue
		}

		err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if err := ctx.Err(); err != nil {
				return err
			}
			if c.skip(root, path, d) {
				if d.IsDir() {
					return filepath.SkipDir
				}
				return nil
			}
			if d.IsDir() {
				return nil
			}
			return c.checkPath(path, &res)
		})
		if err != nil {
			return res, fmt.Errorf("scan: walk %s: %w", root, err)
		}
	}

	c.log.Info("check finished",
		slog.Int("files", res.Files),
		slog.Int("literals", res.Literals),
		slog.Int("invalid", len(res.Reports)),
	)
	return res, nil
}

func (c *Checker) checkPath(path string, res *Result) error {
	src, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("scan: %w", err)
	}
	reports, n, err := c.CheckFile(path, src)
	if err != nil {
		return err
	}
	res.Files++
	res.Literals += n
	res.Reports = append(res.Reports, reports...)
	return nil
}

// CheckFile checks a single Go source file. It returns the reports for
// invalid literals and the number of literals checked.
func (c *Checker) CheckFile(filename string, src []byte) ([]Report, int, error) {
	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, filename, src, parser.ParseComments|parser.SkipObjectResolution)
	if err != nil {
		return nil, 0, fmt.Errorf("scan: parse %s: %w", filename, err)
	}

	lits := Literals(fset, file, src, c.cfg.Funcs)
	c.log.Debug("checking file", slog.String("path", filename), slog.Int("literals", len(lits)))

	var reports []Report
	for _, l := range lits {
		err := l.Err
		if err == nil {
			_, err = uuidlit.TryParse(l.Value)
		}
		if err == nil {
			continue
		}
		d := diag.New(l.Pos, l.Raw, err)
		reports = append(reports, Report{Diagnostic: d, Line: diag.Line(src, d.Pos.Offset)})
	}
	return reports, len(lits), nil
}

func (c *Checker) skip(root, path string, d fs.DirEntry) bool {
	if path == root {
		return false
	}
	name := d.Name()
	if d.IsDir() && (strings.HasPrefix(name, ".") || strings.HasPrefix(name, "_")) {
		return true
	}
	if !d.IsDir() {
		if !strings.HasSuffix(name, ".go") {
			return true
		}
		if strings.HasSuffix(name, "_test.go") && !c.cfg.Tests {
			return true
		}
	}

	rel, err := filepath.Rel(root, path)
	if err != nil {
		return false
	}
	rel = filepath.ToSlash(rel)
	for _, ex := range c.cfg.Exclude {
		ex = strings.Trim(ex, "/")
		if rel == ex || strings.HasPrefix(rel, ex+"/") {
			return true
		}
	}
	return false
}

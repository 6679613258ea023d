// Package iopublish implements zookeeper.Publisher. It writes the text
// report, an optional JSON or YAML copy and an optional SQLite export.
// This is an impure I/O package.
package iopublish

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/gnames/gnsys"
	"github.com/gnames/gnzoo/internal/iofs"
	"github.com/gnames/gnzoo/pkg/config"
	"github.com/gnames/gnzoo/pkg/report"
	"github.com/gnames/gnzoo/pkg/zookeeper"
)

type publisher struct {
	cfg *config.Config
}

// New creates a Publisher that writes files set in the report section
// of the config.
func New(cfg *config.Config) zookeeper.Publisher {
	return &publisher{cfg: cfg}
}

// Publish writes the text report first. Structured copies and the SQLite
// export are written only after the text report succeeded.
func (p *publisher) Publish(
	ctx context.Context,
	idx *report.Index,
) ([]string, error) {
	path := p.cfg.Report.Path
	err := writeText(path, idx)
	if err != nil {
		return nil, err
	}
	res := []string{path}
	slog.Info("Report written", "path", path, "animals", idx.Len())

	f, _ := report.NewFormat(p.cfg.Report.Format)
	if f != report.Text {
		sPath := StructuredPath(path, f)
		if err = writeStructured(sPath, f, idx); err != nil {
			return nil, err
		}
		res = append(res, sPath)
		slog.Info("Structured copy written", "path", sPath, "format", f)
	}

	if dbPath := p.cfg.Report.SQLitePath; dbPath != "" {
		if err = exportSQLite(ctx, dbPath, idx); err != nil {
			return nil, err
		}
		res = append(res, dbPath)
		slog.Info("SQLite export written", "path", dbPath)
	}

	return res, nil
}

// StructuredPath replaces the extension of the text report with the
// extension of the format: zooPopulation.txt becomes zooPopulation.json.
func StructuredPath(path string, f report.Format) string {
	ext := filepath.Ext(path)
	if ext == f.Ext() {
		return path + f.Ext()
	}
	return strings.TrimSuffix(path, ext) + f.Ext()
}

func writeText(path string, idx *report.Index) error {
	if err := ensureParent(path); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return iofs.WriteFileError(path, err)
	}

	if err = idx.WriteText(f); err != nil {
		f.Close()
		return iofs.WriteFileError(path, err)
	}

	if err = f.Close(); err != nil {
		return iofs.WriteFileError(path, err)
	}
	return nil
}

func writeStructured(path string, f report.Format, idx *report.Index) error {
	bs, err := idx.Population().Encode(f)
	if err != nil {
		return EncodeReportError(f.String(), err)
	}

	if err = ensureParent(path); err != nil {
		return err
	}
	if err = os.WriteFile(path, bs, 0644); err != nil {
		return iofs.WriteFileError(path, err)
	}
	return nil
}

func ensureParent(path string) error {
	dir := filepath.Dir(path)
	if dir == "." {
		return nil
	}
	if err := gnsys.MakeDir(dir); err != nil {
		return iofs.CreateDirError(dir, err)
	}
	return nil
}

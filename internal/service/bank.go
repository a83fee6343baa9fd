package service

import (
	"context"
	"io"

	"github.com/wordboard/backend/internal/bankfile"
	"github.com/wordboard/backend/internal/domain/level"
	"github.com/wordboard/backend/internal/domain/questionbank"
)

// RebuildReport summarizes a rebuild of the aggregate bank.
type RebuildReport struct {
	Rows     int      `json:"rows"`
	Written  bool     `json:"written"`
	Warnings []string `json:"warnings,omitempty"`
}

// RebuildBank aggregates the level files into the aggregate and alias
// files. Unreadable level files are skipped and reported as warnings.
func (s *SessionService) RebuildBank(ctx context.Context) (RebuildReport, error) {
	_, report, err := s.rebuild(ctx)
	return report, err
}

func (s *SessionService) rebuild(ctx context.Context) ([]questionbank.Record, RebuildReport, error) {
	records, levelErrs, err := s.levels.Rebuild(s.paths.AllFile, s.paths.AliasFile)
	if err != nil {
		return nil, RebuildReport{}, err
	}

	report := RebuildReport{Rows: len(records), Written: len(records) > 0}
	for _, e := range levelErrs {
		s.logger.WarnContext(ctx, "level file skipped", "error", e)
		report.Warnings = append(report.Warnings, e.Error())
	}
	s.logger.InfoContext(ctx, "bank rebuilt", "rows", report.Rows, "written", report.Written)
	return records, report, nil
}

// UploadLevel replaces one level file. The aggregate is not rebuilt.
func (s *SessionService) UploadLevel(ctx context.Context, l level.Level, r io.Reader) (int, error) {
	n, err := s.levels.StoreLevel(l, r)
	if err != nil {
		return 0, err
	}
	s.logger.InfoContext(ctx, "level uploaded", "level", l, "rows", n)
	return n, nil
}

func (s *SessionService) Levels() []bankfile.LevelInfo {
	return s.levels.Levels()
}

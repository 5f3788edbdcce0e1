package service

import (
	"context"
	"encoding/base64"
	"time"

	"github.com/xuri/excelize/v2"

	perr "mathgate/internal/platform/errors"
	ptime "mathgate/internal/platform/time"
	"mathgate/internal/services/solve/domain"
	"mathgate/internal/services/solve/repo"
)

// History returns recorded attempts, newest first
func (s *Svc) History(ctx context.Context, in domain.HistoryInput) ([]domain.HistoryEntry, error) {
	rows, err := s.Repo.List(ctx, in.SessionID, in.Kind, in.Status, in.Limit, in.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]domain.HistoryEntry, 0, len(rows))
	for _, r := range rows {
		out = append(out, toEntry(r))
	}
	return out, nil
}

// Export renders the filtered history as an XLSX workbook
func (s *Svc) Export(ctx context.Context, in domain.HistoryInput) (domain.ExportResult, error) {
	rows, err := s.Repo.List(ctx, in.SessionID, in.Kind, in.Status, in.Limit, in.Offset)
	if err != nil {
		return domain.ExportResult{}, err
	}

	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	const sheet = "History"
	idx, err := f.NewSheet(sheet)
	if err != nil {
		return domain.ExportResult{}, perr.Wrapf(err, perr.ErrorCodeUnknown, "export new sheet")
	}
	f.SetActiveSheet(idx)
	_ = f.DeleteSheet("Sheet1")

	headers := []string{
		"Seq",
		"Raw Input",
		"Canonical",
		"Kind",
		"Angle Mode",
		"Status",
		"Result",
		"Error",
		"Source",
		"Created At",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	for i, r := range rows {
		write := func(col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, i+2)
			_ = f.SetCellValue(sheet, cell, v)
		}
		write(1, r.Seq)
		write(2, r.RawText)
		write(3, r.Canonical)
		write(4, r.Kind)
		write(5, r.AngleMode)
		write(6, r.Status)
		write(7, r.Result)
		write(8, r.ErrorMsg)
		write(9, r.Source)
		write(10, timestampCell(r.CreatedAt))
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return domain.ExportResult{}, perr.Wrapf(err, perr.ErrorCodeUnknown, "export write workbook")
	}
	return domain.ExportResult{
		Filename:   "mathgate-history.xlsx",
		ContentB64: base64.StdEncoding.EncodeToString(buf.Bytes()),
	}, nil
}

func toEntry(r repo.RowAttempt) domain.HistoryEntry {
	return domain.HistoryEntry{
		ID:        r.ID,
		SessionID: r.SessionID,
		Seq:       r.Seq,
		RawText:   r.RawText,
		Canonical: r.Canonical,
		Kind:      r.Kind,
		AngleMode: r.AngleMode,
		Status:    r.Status,
		Result:    r.Result,
		Error:     r.ErrorMsg,
		Source:    r.Source,
		CreatedAt: ptime.Ptr(r.CreatedAt),
	}
}

// timestampCell renders a created_at value for the workbook; rows written
// before the column existed carry the zero time and render blank
func timestampCell(t time.Time) string {
	v := ptime.Ptr(t)
	if v == nil {
		return ""
	}
	return v.UTC().Format(time.RFC3339)
}

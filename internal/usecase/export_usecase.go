package usecase

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strings"

	"workmatch/internal/domain/matching"
	"workmatch/internal/pkg/logger"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

const candidateSheet = "Candidates"

type ExportUsecase interface {
	ExportCandidates(ctx context.Context, jobID uuid.UUID) (*bytes.Buffer, string, error)
}

type Export struct {
	candidates CandidateUsecase
	log        *zap.Logger
}

func NewExportUsecase(candidates CandidateUsecase, log *zap.Logger) *Export {
	return &Export{candidates: candidates, log: logger.OrNop(log)}
}

// ExportCandidates renders a job's ranking as an xlsx workbook and returns it
// with a download file name.
func (u *Export) ExportCandidates(ctx context.Context, jobID uuid.UUID) (*bytes.Buffer, string, error) {
	list, err := u.candidates.RankCandidates(ctx, jobID)
	if err != nil {
		return nil, "", err
	}

	f := excelize.NewFile()
	defer f.Close()

	idx, err := f.NewSheet(candidateSheet)
	if err != nil {
		return nil, "", ErrInternal
	}
	f.SetActiveSheet(idx)
	_ = f.DeleteSheet("Sheet1")

	_ = f.SetColWidth(candidateSheet, "A", "A", 6)
	_ = f.SetColWidth(candidateSheet, "B", "B", 28)
	_ = f.SetColWidth(candidateSheet, "C", "E", 14)
	_ = f.SetColWidth(candidateSheet, "F", "G", 40)

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11, Color: "#FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	pctStyle, _ := f.NewStyle(&excelize.Style{NumFmt: 10})

	_ = f.SetCellValue(candidateSheet, "A1", fmt.Sprintf("Candidates for %s", list.JobTitle))
	_ = f.MergeCell(candidateSheet, "A1", "G1")
	_ = f.SetCellStyle(candidateSheet, "A1", "A1", headerStyle)

	header := []any{"Rank", "Worker", "Matched", "Required", "Score", "Matched skills", "Missing skills"}
	if err := f.SetSheetRow(candidateSheet, "A2", &header); err != nil {
		return nil, "", ErrInternal
	}
	_ = f.SetCellStyle(candidateSheet, "A2", "G2", headerStyle)

	for i, c := range list.Candidates {
		row := i + 3
		values := []any{
			i + 1,
			c.WorkerName,
			c.MatchedPoints,
			c.TotalRequired,
			c.Score,
			matchedSummary(c.MatchedSkills),
			missingSummary(c.MissingSkills),
		}
		start, _ := excelize.CoordinatesToCellName(1, row)
		if err := f.SetSheetRow(candidateSheet, start, &values); err != nil {
			return nil, "", ErrInternal
		}
		scoreCell, _ := excelize.CoordinatesToCellName(5, row)
		_ = f.SetCellStyle(candidateSheet, scoreCell, scoreCell, pctStyle)
	}

	buf := new(bytes.Buffer)
	if err := f.Write(buf); err != nil {
		u.log.Error("write candidates workbook failed", zap.String("job_id", jobID.String()), zap.Error(err))
		return nil, "", ErrInternal
	}

	return buf, exportFileName(list.JobTitle, jobID), nil
}

func matchedSummary(items []matching.MatchedSkill) string {
	parts := make([]string, 0, len(items))
	for _, m := range items {
		parts = append(parts, fmt.Sprintf("%s %d/%d", m.SkillName, m.Points, m.RequiredLevel))
	}
	return strings.Join(parts, ", ")
}

func missingSummary(items []matching.MissingSkill) string {
	parts := make([]string, 0, len(items))
	for _, m := range items {
		parts = append(parts, fmt.Sprintf("%s (%d)", m.SkillName, m.RequiredLevel))
	}
	return strings.Join(parts, ", ")
}

var unsafeFileChars = regexp.MustCompile(`[^a-zA-Z0-9]+`)

func exportFileName(title string, jobID uuid.UUID) string {
	slug := strings.Trim(unsafeFileChars.ReplaceAllString(strings.ToLower(title), "-"), "-")
	if slug == "" {
		slug = jobID.String()[:8]
	}
	return fmt.Sprintf("candidates_%s.xlsx", slug)
}

package services

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/sreeharir/resume-crm/internal/models"
)

// XLSXContentType is the media type of the exported workbook.
const XLSXContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// exportColumns is the header row; order matches the table schema.
var exportColumns = []string{
	"id",
	"telecall_date",
	"candidate_date",
	"mobile",
	"email",
	"location",
	"source",
	"position_interested",
	"qualification",
	"skills",
	"requirement_type",
	"offer_status",
	"joining_status",
	"registration_fee",
	"amount",
	"payment_mode",
	"remarks",
	"next_followup_date",
	"action_notes",
	"created_year",
}

// ExportService renders record sets as xlsx workbooks.
type ExportService struct{}

// NewExportService creates a new ExportService.
func NewExportService() *ExportService {
	return &ExportService{}
}

// Workbook serializes the given (already filtered) records into a
// single-sheet xlsx document: one header row, one row per record,
// input order preserved. Pure function of its input.
func (s *ExportService) Workbook(resumes []models.Resume) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)

	header := make([]interface{}, len(exportColumns))
	for i, col := range exportColumns {
		header[i] = col
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return nil, fmt.Errorf("failed to write header row: %w", err)
	}

	for i, r := range resumes {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, fmt.Errorf("failed to compute cell name: %w", err)
		}

		row := []interface{}{
			r.ID,
			r.TelecallDate,
			r.CandidateDate,
			r.Mobile,
			r.Email,
			r.Location,
			r.Source,
			r.PositionInterested,
			r.Qualification,
			r.Skills,
			string(r.RequirementType),
			string(r.OfferStatus),
			string(r.JoiningStatus),
			string(r.RegistrationFee),
			r.Amount,
			r.PaymentMode,
			r.Remarks,
			r.NextFollowupDate,
			r.ActionNotes,
			r.CreatedYear,
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return nil, fmt.Errorf("failed to write row %d: %w", i+2, err)
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("failed to serialize workbook: %w", err)
	}

	return buf.Bytes(), nil
}

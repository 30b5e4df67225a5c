package services

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/sreeharir/resume-crm/internal/models"
)

func TestExportService_Workbook(t *testing.T) {
	svc := NewExportService()

	records := []models.Resume{
		{
			ID:                 7,
			Mobile:             "9999999999",
			Email:              "dev@example.com",
			Skills:             "Java",
			PositionInterested: "Developer",
			RequirementType:    models.RequirementPermanent,
			OfferStatus:        models.OfferOffered,
			JoiningStatus:      models.JoiningJoined,
			RegistrationFee:    models.FeeCollected,
			Amount:             2500,
			CreatedYear:        2024,
		},
		{
			ID:                 3,
			Mobile:             "8888888888",
			Skills:             "Python",
			PositionInterested: "Analyst",
			CreatedYear:        2023,
		},
	}

	blob, err := svc.Workbook(records)
	require.NoError(t, err)
	require.NotEmpty(t, blob)

	f, err := excelize.OpenReader(bytes.NewReader(blob))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(f.GetSheetName(0))
	require.NoError(t, err)
	require.Len(t, rows, 3) // header + two records

	require.Equal(t, exportColumns, rows[0])

	// Input order is preserved.
	require.Equal(t, "7", rows[1][0])
	require.Equal(t, "9999999999", rows[1][3])
	require.Equal(t, "dev@example.com", rows[1][4])
	require.Equal(t, "Java", rows[1][9])
	require.Equal(t, "Permanent", rows[1][10])
	require.Equal(t, "2500", rows[1][14])
	require.Equal(t, "2024", rows[1][19])

	require.Equal(t, "3", rows[2][0])
	require.Equal(t, "8888888888", rows[2][3])
}

func TestExportService_WorkbookEmpty(t *testing.T) {
	svc := NewExportService()

	blob, err := svc.Workbook(nil)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(blob))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(f.GetSheetName(0))
	require.NoError(t, err)
	require.Len(t, rows, 1)
	require.Equal(t, exportColumns, rows[0])
}

package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/sreeharir/resume-crm/internal/models"
	"github.com/sreeharir/resume-crm/internal/repository"
)

func setupResumeService(t *testing.T) *ResumeService {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(&models.Resume{}))

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	return NewResumeService(repository.NewResumeRepository(db))
}

func TestResumeService_CreateStampsYear(t *testing.T) {
	svc := setupResumeService(t)
	svc.now = func() time.Time {
		return time.Date(2023, time.March, 14, 12, 0, 0, 0, time.UTC)
	}

	fields := ResumeFields{
		Mobile:             "9999999999",
		Skills:             "Java",
		PositionInterested: "Developer",
		RequirementType:    models.RequirementPermanent,
		OfferStatus:        models.OfferPending,
		JoiningStatus:      models.JoiningPending,
		RegistrationFee:    models.FeeNotCollected,
		Amount:             1500,
	}

	created, err := svc.Create(fields)
	require.NoError(t, err)
	require.Equal(t, 2023, created.CreatedYear)

	list, err := svc.List()
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.Equal(t, created.ID, list[0].ID)
	require.Equal(t, "9999999999", list[0].Mobile)
	require.Equal(t, "Java", list[0].Skills)
	require.Equal(t, "Developer", list[0].PositionInterested)
	require.Equal(t, 1500.0, list[0].Amount)
}

func TestResumeService_ListNewestFirst(t *testing.T) {
	svc := setupResumeService(t)

	first, err := svc.Create(ResumeFields{Mobile: "111"})
	require.NoError(t, err)
	second, err := svc.Create(ResumeFields{Mobile: "222"})
	require.NoError(t, err)

	list, err := svc.List()
	require.NoError(t, err)
	require.Len(t, list, 2)
	require.Equal(t, second.ID, list[0].ID)
	require.Equal(t, first.ID, list[1].ID)
}

func TestResumeService_UpdateKeepsCreatedYear(t *testing.T) {
	svc := setupResumeService(t)
	svc.now = func() time.Time {
		return time.Date(2022, time.June, 1, 0, 0, 0, 0, time.UTC)
	}

	created, err := svc.Create(ResumeFields{Mobile: "111", Skills: "Go"})
	require.NoError(t, err)
	require.Equal(t, 2022, created.CreatedYear)

	// The clock moving on must not change the stamped year.
	svc.now = func() time.Time {
		return time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)
	}

	updated, err := svc.Update(created.ID, ResumeFields{Mobile: "222", Skills: "Rust"})
	require.NoError(t, err)
	require.Equal(t, "222", updated.Mobile)
	require.Equal(t, "Rust", updated.Skills)
	require.Equal(t, 2022, updated.CreatedYear)

	list, err := svc.List()
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.Equal(t, "222", list[0].Mobile)
	require.Equal(t, 2022, list[0].CreatedYear)
}

func TestResumeService_UpdateMissingRecord(t *testing.T) {
	svc := setupResumeService(t)

	_, err := svc.Update(12345, ResumeFields{Mobile: "222"})
	require.ErrorIs(t, err, ErrResumeNotFound)
}

func TestResumeService_CreateRejectsBadInput(t *testing.T) {
	svc := setupResumeService(t)

	_, err := svc.Create(ResumeFields{Amount: -1})
	require.ErrorIs(t, err, ErrNegativeAmount)

	_, err = svc.Create(ResumeFields{RequirementType: "Freelance"})
	require.ErrorIs(t, err, ErrInvalidRequirementType)

	_, err = svc.Create(ResumeFields{OfferStatus: "Maybe"})
	require.ErrorIs(t, err, ErrInvalidOfferStatus)

	_, err = svc.Create(ResumeFields{JoiningStatus: "Soon"})
	require.ErrorIs(t, err, ErrInvalidJoiningStatus)

	_, err = svc.Create(ResumeFields{RegistrationFee: "Partial"})
	require.ErrorIs(t, err, ErrInvalidRegistrationFee)
}

func TestResumeService_DeleteRequiresAdmin(t *testing.T) {
	svc := setupResumeService(t)

	created, err := svc.Create(ResumeFields{Mobile: "111"})
	require.NoError(t, err)

	err = svc.Delete(created.ID, models.RoleStaff)
	require.ErrorIs(t, err, ErrPermissionDenied)

	list, err := svc.List()
	require.NoError(t, err)
	require.Len(t, list, 1)

	require.NoError(t, svc.Delete(created.ID, models.RoleAdmin))

	list, err = svc.List()
	require.NoError(t, err)
	require.Empty(t, list)

	err = svc.Delete(created.ID, models.RoleAdmin)
	require.ErrorIs(t, err, ErrResumeNotFound)
}

func TestResumeService_StatsAndYears(t *testing.T) {
	svc := setupResumeService(t)

	svc.now = func() time.Time {
		return time.Date(2023, time.January, 1, 0, 0, 0, 0, time.UTC)
	}
	_, err := svc.Create(ResumeFields{JoiningStatus: models.JoiningJoined})
	require.NoError(t, err)
	_, err = svc.Create(ResumeFields{JoiningStatus: models.JoiningPending})
	require.NoError(t, err)

	svc.now = func() time.Time {
		return time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	}
	_, err = svc.Create(ResumeFields{JoiningStatus: models.JoiningPending})
	require.NoError(t, err)

	stats, err := svc.GetStats()
	require.NoError(t, err)
	require.Equal(t, 3, stats.Total)
	require.Equal(t, 1, stats.ThisYear)
	require.Equal(t, 1, stats.Joined)
	require.Equal(t, 2, stats.Pending)

	years, err := svc.Years()
	require.NoError(t, err)
	require.Equal(t, []int{2023, 2024}, years)
}

func TestFilterByYear(t *testing.T) {
	records := []models.Resume{
		{ID: 3, CreatedYear: 2024},
		{ID: 2, CreatedYear: 2023},
		{ID: 1, CreatedYear: 2023},
	}

	// nil year is the identity filter
	require.Equal(t, records, FilterByYear(records, nil))

	year := 2023
	filtered := FilterByYear(records, &year)
	require.Len(t, filtered, 2)
	require.Equal(t, uint64(2), filtered[0].ID)
	require.Equal(t, uint64(1), filtered[1].ID)

	year = 1999
	require.Empty(t, FilterByYear(records, &year))
}

func TestSearch(t *testing.T) {
	records := []models.Resume{
		{ID: 3, Mobile: "9999999999", Skills: "Java", PositionInterested: "Developer"},
		{ID: 2, Mobile: "8888888888", Skills: "Python", PositionInterested: "Analyst"},
		{ID: 1, Mobile: "7777777777", Skills: "JavaScript", PositionInterested: "Frontend Developer"},
	}

	// empty query is the identity filter
	require.Equal(t, records, Search(records, ""))

	// case-insensitive: "ABC" and "abc" behave identically
	require.Equal(t, Search(records, "JAVA"), Search(records, "java"))

	byMobile := Search(records, "8888")
	require.Len(t, byMobile, 1)
	require.Equal(t, uint64(2), byMobile[0].ID)

	byPosition := Search(records, "developer")
	require.Len(t, byPosition, 2)
	require.Equal(t, uint64(3), byPosition[0].ID)
	require.Equal(t, uint64(1), byPosition[1].ID)
}

func TestSearch_ScenarioJavaDeveloper(t *testing.T) {
	svc := setupResumeService(t)

	created, err := svc.Create(ResumeFields{
		Mobile:             "9999999999",
		Skills:             "Java",
		PositionInterested: "Developer",
	})
	require.NoError(t, err)
	_, err = svc.Create(ResumeFields{
		Mobile:             "1234567890",
		Skills:             "Python",
		PositionInterested: "Analyst",
	})
	require.NoError(t, err)

	list, err := svc.List()
	require.NoError(t, err)

	matches := Search(list, "java")
	require.Len(t, matches, 1)
	require.Equal(t, created.ID, matches[0].ID)
}

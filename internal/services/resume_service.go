package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/sreeharir/resume-crm/internal/models"
	"github.com/sreeharir/resume-crm/internal/repository"
)

var (
	ErrResumeNotFound         = errors.New("resume record not found")
	ErrNegativeAmount         = errors.New("amount must not be negative")
	ErrInvalidRequirementType = errors.New("invalid requirement type")
	ErrInvalidOfferStatus     = errors.New("invalid offer status")
	ErrInvalidJoiningStatus   = errors.New("invalid joining status")
	ErrInvalidRegistrationFee = errors.New("invalid registration fee value")
)

// ResumeService handles the candidate follow-up record lifecycle.
type ResumeService struct {
	resumeRepo repository.ResumeRepository
	now        func() time.Time
}

// NewResumeService creates a new ResumeService.
func NewResumeService(resumeRepo repository.ResumeRepository) *ResumeService {
	return &ResumeService{
		resumeRepo: resumeRepo,
		now:        time.Now,
	}
}

// ResumeFields carries every mutable field of a record. Dates, phone
// numbers and emails are stored verbatim; only the enums and the
// amount are validated.
type ResumeFields struct {
	TelecallDate       string
	CandidateDate      string
	Mobile             string
	Email              string
	Location           string
	Source             string
	PositionInterested string
	Qualification      string
	Skills             string
	RequirementType    models.RequirementType
	OfferStatus        models.OfferStatus
	JoiningStatus      models.JoiningStatus
	RegistrationFee    models.RegistrationFee
	Amount             float64
	PaymentMode        string
	Remarks            string
	NextFollowupDate   string
	ActionNotes        string
}

func (f ResumeFields) validate() error {
	if f.Amount < 0 {
		return ErrNegativeAmount
	}
	switch f.RequirementType {
	case "", models.RequirementPermanent, models.RequirementContract, models.RequirementIntern:
	default:
		return ErrInvalidRequirementType
	}
	switch f.OfferStatus {
	case "", models.OfferPending, models.OfferOffered, models.OfferRejected:
	default:
		return ErrInvalidOfferStatus
	}
	switch f.JoiningStatus {
	case "", models.JoiningPending, models.JoiningJoined, models.JoiningNotJoined:
	default:
		return ErrInvalidJoiningStatus
	}
	switch f.RegistrationFee {
	case "", models.FeeCollected, models.FeeNotCollected:
	default:
		return ErrInvalidRegistrationFee
	}
	return nil
}

func (f ResumeFields) apply(resume *models.Resume) {
	resume.TelecallDate = f.TelecallDate
	resume.CandidateDate = f.CandidateDate
	resume.Mobile = f.Mobile
	resume.Email = f.Email
	resume.Location = f.Location
	resume.Source = f.Source
	resume.PositionInterested = f.PositionInterested
	resume.Qualification = f.Qualification
	resume.Skills = f.Skills
	resume.RequirementType = f.RequirementType
	resume.OfferStatus = f.OfferStatus
	resume.JoiningStatus = f.JoiningStatus
	resume.RegistrationFee = f.RegistrationFee
	resume.Amount = f.Amount
	resume.PaymentMode = f.PaymentMode
	resume.Remarks = f.Remarks
	resume.NextFollowupDate = f.NextFollowupDate
	resume.ActionNotes = f.ActionNotes
}

// Create stores a new record, stamping created_year from the clock.
func (s *ResumeService) Create(fields ResumeFields) (*models.Resume, error) {
	if err := fields.validate(); err != nil {
		return nil, err
	}

	resume := &models.Resume{
		CreatedYear: s.now().Year(),
	}
	fields.apply(resume)

	if err := s.resumeRepo.Create(resume); err != nil {
		return nil, fmt.Errorf("failed to create resume record: %w", err)
	}

	return resume, nil
}

// List returns all records, most recently created first.
func (s *ResumeService) List() ([]models.Resume, error) {
	resumes, err := s.resumeRepo.List()
	if err != nil {
		return nil, fmt.Errorf("failed to list resume records: %w", err)
	}
	return resumes, nil
}

// Get returns one record by id.
func (s *ResumeService) Get(id uint64) (*models.Resume, error) {
	resume, err := s.resumeRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrResumeNotFound
		}
		return nil, fmt.Errorf("failed to find resume record: %w", err)
	}
	return resume, nil
}

// Update overwrites every mutable field of an existing record. The id
// and created_year are never touched, so year filters keep reflecting
// creation time.
func (s *ResumeService) Update(id uint64, fields ResumeFields) (*models.Resume, error) {
	if err := fields.validate(); err != nil {
		return nil, err
	}

	resume, err := s.resumeRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrResumeNotFound
		}
		return nil, fmt.Errorf("failed to find resume record: %w", err)
	}

	fields.apply(resume)

	if err := s.resumeRepo.Update(resume); err != nil {
		return nil, fmt.Errorf("failed to update resume record: %w", err)
	}

	return resume, nil
}

// Delete removes a record. Only admins may delete; the check lives
// here rather than in the HTTP layer.
func (s *ResumeService) Delete(id uint64, actorRole models.UserRole) error {
	if actorRole != models.RoleAdmin {
		return ErrPermissionDenied
	}

	if _, err := s.resumeRepo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrResumeNotFound
		}
		return fmt.Errorf("failed to find resume record: %w", err)
	}

	if err := s.resumeRepo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete resume record: %w", err)
	}

	return nil
}

// Years returns the distinct creation years present in the store.
func (s *ResumeService) Years() ([]int, error) {
	years, err := s.resumeRepo.Years()
	if err != nil {
		return nil, fmt.Errorf("failed to list years: %w", err)
	}
	return years, nil
}

// Stats holds the dashboard counters.
type Stats struct {
	Total    int `json:"total"`
	ThisYear int `json:"this_year"`
	Joined   int `json:"joined"`
	Pending  int `json:"pending"`
}

// GetStats computes the dashboard counters over the full record set.
func (s *ResumeService) GetStats() (*Stats, error) {
	resumes, err := s.resumeRepo.List()
	if err != nil {
		return nil, fmt.Errorf("failed to load resume records: %w", err)
	}

	stats := &Stats{Total: len(resumes)}
	currentYear := s.now().Year()
	for _, r := range resumes {
		if r.CreatedYear == currentYear {
			stats.ThisYear++
		}
		switch r.JoiningStatus {
		case models.JoiningJoined:
			stats.Joined++
		case models.JoiningPending:
			stats.Pending++
		}
	}

	return stats, nil
}

// FilterByYear keeps the records created in the given year. A nil year
// means "All" and is the identity filter. Pure function; input order
// is preserved.
func FilterByYear(resumes []models.Resume, year *int) []models.Resume {
	if year == nil {
		return resumes
	}

	filtered := make([]models.Resume, 0, len(resumes))
	for _, r := range resumes {
		if r.CreatedYear == *year {
			filtered = append(filtered, r)
		}
	}
	return filtered
}

// Search keeps the records whose mobile, skills or position contain
// the query, case-insensitively. An empty query is the identity
// filter. Pure function; input order is preserved.
func Search(resumes []models.Resume, query string) []models.Resume {
	if query == "" {
		return resumes
	}

	q := strings.ToLower(query)
	filtered := make([]models.Resume, 0, len(resumes))
	for _, r := range resumes {
		if strings.Contains(strings.ToLower(r.Mobile), q) ||
			strings.Contains(strings.ToLower(r.Skills), q) ||
			strings.Contains(strings.ToLower(r.PositionInterested), q) {
			filtered = append(filtered, r)
		}
	}
	return filtered
}

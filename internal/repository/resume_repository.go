package repository

import (
	"gorm.io/gorm"

	"github.com/sreeharir/resume-crm/internal/models"
)

// GormResumeRepository is a GORM implementation of ResumeRepository
type GormResumeRepository struct {
	db *gorm.DB
}

// NewResumeRepository creates a new ResumeRepository
func NewResumeRepository(db *gorm.DB) ResumeRepository {
	return &GormResumeRepository{db: db}
}

// Create creates a new resume record
func (r *GormResumeRepository) Create(resume *models.Resume) error {
	return r.db.Create(resume).Error
}

// FindByID finds a resume record by ID
func (r *GormResumeRepository) FindByID(id uint64) (*models.Resume, error) {
	var resume models.Resume
	if err := r.db.First(&resume, id).Error; err != nil {
		return nil, err
	}
	return &resume, nil
}

// List returns all resume records ordered by id descending
func (r *GormResumeRepository) List() ([]models.Resume, error) {
	var resumes []models.Resume
	if err := r.db.Order("id DESC").Find(&resumes).Error; err != nil {
		return nil, err
	}
	return resumes, nil
}

// Update persists every mutable field of an existing record
func (r *GormResumeRepository) Update(resume *models.Resume) error {
	return r.db.Save(resume).Error
}

// Delete removes a record
func (r *GormResumeRepository) Delete(id uint64) error {
	return r.db.Delete(&models.Resume{}, id).Error
}

// Years returns the distinct created_year values, ascending
func (r *GormResumeRepository) Years() ([]int, error) {
	var years []int
	err := r.db.Model(&models.Resume{}).
		Distinct("created_year").
		Order("created_year ASC").
		Pluck("created_year", &years).Error
	if err != nil {
		return nil, err
	}
	return years, nil
}

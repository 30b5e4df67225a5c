package repository

import "github.com/sreeharir/resume-crm/internal/models"

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create creates a new user
	Create(user *models.User) error

	// FindByID finds a user by ID
	FindByID(id uint64) (*models.User, error)

	// FindByUsername finds a user by username
	FindByUsername(username string) (*models.User, error)
}

// ResumeRepository defines the interface for resume record data access
type ResumeRepository interface {
	// Create creates a new resume record
	Create(resume *models.Resume) error

	// FindByID finds a resume record by ID
	FindByID(id uint64) (*models.Resume, error)

	// List returns all resume records, most recently created first
	// (id descending). The whole desk fits in memory; no pagination.
	List() ([]models.Resume, error)

	// Update persists every mutable field of an existing record
	Update(resume *models.Resume) error

	// Delete removes a record
	Delete(id uint64) error

	// Years returns the distinct created_year values, ascending
	Years() ([]int, error)
}

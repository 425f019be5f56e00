package services

import (
	"errors"

	"recipebox/internal/models"
	"recipebox/pkg/utils"

	"gorm.io/gorm"
)

type AccountService struct {
	db           *gorm.DB
	auditService *AuditService
}

func NewAccountService(db *gorm.DB, auditService *AuditService) *AccountService {
	return &AccountService{
		db:           db,
		auditService: auditService,
	}
}

// Register creates a new account. The password policy is checked before
// anything touches the database; uniqueness of username and email is left
// to the database constraints, and the resulting violation is classified
// after the insert fails.
func (s *AccountService) Register(username, email, password, ipAddress string) (*models.User, error) {
	if rule := utils.ValidatePassword(password); rule != "" {
		return nil, &WeakPasswordError{Rule: rule}
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := models.User{
		Username:     username,
		Email:        email,
		PasswordHash: hash,
		APIKey:       utils.GenerateAPIKey(),
	}

	if err := s.db.Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, s.classifyDuplicate(username)
		}
		return nil, err
	}

	s.auditService.LogAction(&user.ID, "REGISTER", user.Username, nil, ipAddress)

	return &user, nil
}

// classifyDuplicate decides which uniqueness constraint an insert tripped.
// The driver-translated error no longer carries the column, so a follow-up
// read settles it: if the username is taken it wins, otherwise the email was.
func (s *AccountService) classifyDuplicate(username string) error {
	var count int64
	s.db.Model(&models.User{}).Where("username = ?", username).Count(&count)
	if count > 0 {
		return ErrDuplicateUsername
	}
	return ErrDuplicateEmail
}

// Verify checks credentials by email. A missing account and a wrong
// password are indistinguishable to the caller.
func (s *AccountService) Verify(email, password string) (*models.User, error) {
	var user models.User
	if err := s.db.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAuthFailure
		}
		return nil, err
	}

	if !utils.CheckPasswordHash(password, user.PasswordHash) {
		return nil, ErrAuthFailure
	}

	return &user, nil
}

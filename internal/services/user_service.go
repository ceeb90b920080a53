package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/InternPulse/property-hive-backend/internal/dtos"
	"github.com/InternPulse/property-hive-backend/internal/models"
	"github.com/InternPulse/property-hive-backend/internal/repositories"
	"github.com/InternPulse/property-hive-backend/internal/utils"
)

type UserService interface {
	GetUser(ctx context.Context, id uuid.UUID) (*dtos.UserDetailResponse, error)
	UpdateUser(ctx context.Context, id uuid.UUID, req *dtos.UpdateUserRequest) (*models.User, error)
	SetProfilePicture(ctx context.Context, id uuid.UUID, filePath string) error

	CreateProfile(ctx context.Context, userID uuid.UUID, req *dtos.CreateProfileRequest) (*models.Profile, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, req *dtos.UpdateProfileRequest) (*models.Profile, error)

	AttachKycDocument(ctx context.Context, userID uuid.UUID, documentType, filePath string) (*models.KycDocument, error)
	ListKycDocuments(ctx context.Context, userID uuid.UUID) ([]*models.KycDocument, error)
}

type userService struct {
	users    repositories.UserRepository
	profiles repositories.ProfileRepository
	kyc      repositories.KycDocumentRepository
}

func NewUserService(
	users repositories.UserRepository,
	profiles repositories.ProfileRepository,
	kyc repositories.KycDocumentRepository,
) UserService {
	return &userService{users: users, profiles: profiles, kyc: kyc}
}

func (s *userService) GetUser(ctx context.Context, id uuid.UUID) (*dtos.UserDetailResponse, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, utils.ErrNotFound
	}

	profile, err := s.profiles.GetByUserID(ctx, id)
	if err != nil {
		return nil, err
	}

	return &dtos.UserDetailResponse{User: user, Profile: profile}, nil
}

func (s *userService) UpdateUser(ctx context.Context, id uuid.UUID, req *dtos.UpdateUserRequest) (*models.User, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, utils.ErrNotFound
	}

	if req.FirstName != "" {
		user.FirstName = req.FirstName
	}
	if req.LastName != "" {
		user.LastName = req.LastName
	}
	if req.PhoneNumber != "" {
		user.PhoneNumber = &req.PhoneNumber
	}

	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *userService) SetProfilePicture(ctx context.Context, id uuid.UUID, filePath string) error {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if user == nil {
		return utils.ErrNotFound
	}
	user.ProfilePicture = &filePath
	return s.users.Update(ctx, user)
}

func (s *userService) CreateProfile(ctx context.Context, userID uuid.UUID, req *dtos.CreateProfileRequest) (*models.Profile, error) {
	profile := &models.Profile{
		ID:     uuid.New(),
		UserID: userID,
	}
	applyProfileFields(profile, req.DOB, req.Gender, req.Address, req.Occupation)

	if err := s.profiles.Create(ctx, profile); err != nil {
		return nil, err
	}
	return profile, nil
}

func (s *userService) UpdateProfile(ctx context.Context, userID uuid.UUID, req *dtos.UpdateProfileRequest) (*models.Profile, error) {
	profile, err := s.profiles.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, utils.ErrNotFound
	}
	applyProfileFields(profile, req.DOB, req.Gender, req.Address, req.Occupation)

	if err := s.profiles.Update(ctx, profile); err != nil {
		return nil, err
	}
	return profile, nil
}

func applyProfileFields(p *models.Profile, dob, gender, address, occupation string) {
	if dob != "" {
		if parsed, err := time.Parse("2006-01-02", dob); err == nil {
			p.DOB = &parsed
		}
	}
	if gender != "" {
		p.Gender = &gender
	}
	if address != "" {
		p.Address = &address
	}
	if occupation != "" {
		p.Occupation = &occupation
	}
}

func (s *userService) AttachKycDocument(ctx context.Context, userID uuid.UUID, documentType, filePath string) (*models.KycDocument, error) {
	doc := &models.KycDocument{
		ID:           uuid.New(),
		UserID:       userID,
		DocumentType: documentType,
		FilePath:     filePath,
		Status:       models.KycStatusPending,
	}
	if err := s.kyc.Create(ctx, doc); err != nil {
		return nil, err
	}
	return doc, nil
}

func (s *userService) ListKycDocuments(ctx context.Context, userID uuid.UUID) ([]*models.KycDocument, error) {
	return s.kyc.ListByUserID(ctx, userID)
}

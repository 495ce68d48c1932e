package service

import (
	"errors"

	"campus-core/internal/dto/request"
	"campus-core/internal/dto/response"
	"campus-core/internal/models"
	"campus-core/internal/repository"
	"campus-core/internal/utils"

	"github.com/google/uuid"
)

// UserService handles user management business logic
type UserService struct {
	repo        *repository.UserRepository
	instRepo    *repository.InstitutionRepository
	authService *AuthService // registration logic, password hashing, response mapping
}

// NewUserService creates a new user service
func NewUserService(repo *repository.UserRepository, instRepo *repository.InstitutionRepository, authService *AuthService) *UserService {
	return &UserService{
		repo:        repo,
		instRepo:    instRepo,
		authService: authService,
	}
}

// CreateUser creates a new user. Super admins may create users for any
// institution; institution admins only for their own, and never super admins.
func (s *UserService) CreateUser(req *request.RegisterRequest, creatorRole string, creatorInstitutionID string) (*response.UserResponse, error) {
	targetInstitutionID := req.InstitutionID
	if targetInstitutionID == "" && creatorRole != models.RoleSuperAdmin {
		targetInstitutionID = creatorInstitutionID
	}

	if creatorRole != models.RoleSuperAdmin {
		if targetInstitutionID != creatorInstitutionID {
			return nil, utils.ErrActionNotPermitted
		}
		if req.Role == models.RoleSuperAdmin {
			return nil, utils.ErrActionNotPermitted
		}
	}

	if targetInstitutionID != "" {
		id, err := uuid.Parse(targetInstitutionID)
		if err != nil {
			return nil, utils.ErrInvalidUUID
		}
		if _, err := s.instRepo.FindByID(id); err != nil {
			return nil, utils.ErrInstitutionNotFound
		}
	} else if req.Role != models.RoleSuperAdmin {
		return nil, errors.New("institution_id is required")
	}

	return s.authService.Register(req)
}

// GetUser gets a user by ID
func (s *UserService) GetUser(id uuid.UUID) (*response.UserResponse, error) {
	user, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	resp := s.authService.toUserResponse(user)
	return &resp, nil
}

// GetAllUsers lists users with filters
func (s *UserService) GetAllUsers(filter repository.UserFilter, params utils.PaginationParams) ([]response.UserResponse, utils.Pagination, error) {
	users, total, err := s.repo.FindAll(filter, params)
	if err != nil {
		return nil, utils.Pagination{}, utils.ErrInternalServer.Wrap(err)
	}

	var userResponses []response.UserResponse
	for _, user := range users {
		userResponses = append(userResponses, s.authService.toUserResponse(&user))
	}

	pagination := utils.NewPagination(params.Page, params.PerPage, total)
	return userResponses, pagination, nil
}

// UpdateUser applies whitelisted profile fields to a user. Email and phone
// changes go through dedicated flows with uniqueness checks, not here.
func (s *UserService) UpdateUser(id uuid.UUID, req *request.UpdateUserRequest) (*response.UserResponse, error) {
	user, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}

	if user.Profile == nil {
		user.Profile = &models.UserProfile{UserID: id}
	}
	if req.FirstName != "" {
		user.Profile.FirstName = req.FirstName
	}
	if req.LastName != "" {
		user.Profile.LastName = req.LastName
	}
	if req.Address != "" {
		user.Profile.Address = req.Address
	}
	if req.IsActive != nil {
		user.IsActive = *req.IsActive
	}

	if err := s.repo.Update(user); err != nil {
		return nil, utils.ErrInternalServer.Wrap(err)
	}

	resp := s.authService.toUserResponse(user)
	return &resp, nil
}

// DeleteUser soft-deletes a user.
func (s *UserService) DeleteUser(id uuid.UUID) error {
	if _, err := s.repo.FindByID(id); err != nil {
		return err
	}
	return s.repo.Delete(id)
}

// ToggleStatus changes user active status
func (s *UserService) ToggleStatus(id uuid.UUID, isActive bool) error {
	if _, err := s.repo.FindByID(id); err != nil {
		return err
	}
	return s.repo.UpdateStatus(id, isActive)
}

// UpdateProfile updates the user's own profile
func (s *UserService) UpdateProfile(userID uuid.UUID, firstName, lastName string) (*response.UserResponse, error) {
	user, err := s.repo.FindByID(userID)
	if err != nil {
		return nil, err
	}

	if user.Profile == nil {
		user.Profile = &models.UserProfile{UserID: userID}
	}

	user.Profile.FirstName = firstName
	user.Profile.LastName = lastName

	if err := s.repo.Update(user); err != nil {
		return nil, err
	}

	resp := s.authService.toUserResponse(user)
	return &resp, nil
}

// UpdateAvatar stores the user's profile image URL.
func (s *UserService) UpdateAvatar(userID uuid.UUID, imageURL string) error {
	user, err := s.repo.FindByID(userID)
	if err != nil {
		return err
	}
	if user.Profile == nil {
		user.Profile = &models.UserProfile{UserID: userID}
	}
	user.Profile.ProfileImageURL = imageURL
	return s.repo.Update(user)
}

// UpdatePassword changes the user's own password after verifying the old one.
func (s *UserService) UpdatePassword(userID uuid.UUID, req *request.ChangePasswordRequest) error {
	return s.authService.ChangePassword(userID, req)
}

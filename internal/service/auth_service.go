package service

import (
	"campus-core/internal/dto/request"
	"campus-core/internal/dto/response"
	"campus-core/internal/middleware"
	"campus-core/internal/models"
	"campus-core/internal/repository"
	"campus-core/internal/utils"
	"campus-core/pkg/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// AuthService handles authentication business logic
type AuthService struct {
	userRepo   *repository.UserRepository
	jwtManager *utils.JWTManager
}

// NewAuthService creates a new auth service
func NewAuthService(userRepo *repository.UserRepository, jwtManager *utils.JWTManager) *AuthService {
	return &AuthService{
		userRepo:   userRepo,
		jwtManager: jwtManager,
	}
}

// issueTokens generates an access/refresh token pair for user and persists
// the refresh token. The access token carries the user's institution and
// role permissions, which the tenant and RBAC middleware read on every
// timetable request.
func (s *AuthService) issueTokens(user *models.User) (*response.TokenResponse, error) {
	institutionID := ""
	if user.Profile != nil && user.Profile.InstitutionID != nil {
		institutionID = user.Profile.InstitutionID.String()
	}
	permissions := middleware.GetPermissionsForRole(user.Role)

	accessToken, expiresAt, err := s.jwtManager.GenerateAccessToken(
		user.ID,
		user.Email,
		user.Role,
		institutionID,
		permissions,
	)
	if err != nil {
		return nil, utils.ErrInternalServer.Wrap(err)
	}

	refreshToken, _, err := s.jwtManager.GenerateRefreshToken(user.ID)
	if err != nil {
		return nil, utils.ErrInternalServer.Wrap(err)
	}

	if err := s.userRepo.SaveRefreshToken(user.ID, refreshToken); err != nil {
		logger.Error("Failed to save refresh token", zap.Error(err))
	}

	return &response.TokenResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		TokenType:    "Bearer",
		ExpiresAt:    expiresAt,
	}, nil
}

// Login authenticates a user by email or phone and returns a token pair.
func (s *AuthService) Login(req *request.LoginRequest) (*response.LoginResponse, error) {
	var user *models.User
	var err error

	switch {
	case req.Email != "":
		user, err = s.userRepo.FindByEmail(req.Email)
	case req.Phone != "":
		user, err = s.userRepo.FindByPhone(req.Phone)
	default:
		return nil, utils.ErrInvalidCredentials
	}
	if err != nil {
		logger.Debug("User not found during login", zap.String("email", req.Email))
		return nil, utils.ErrInvalidCredentials
	}

	if !user.IsActive {
		return nil, utils.ErrAccountDisabled
	}
	if !utils.CheckPassword(req.Password, user.PasswordHash) {
		return nil, utils.ErrInvalidCredentials
	}

	tokens, err := s.issueTokens(user)
	if err != nil {
		return nil, err
	}

	if err := s.userRepo.UpdateLastLogin(user.ID); err != nil {
		logger.Error("Failed to update last login", zap.Error(err))
	}

	return &response.LoginResponse{
		AccessToken:  tokens.AccessToken,
		RefreshToken: tokens.RefreshToken,
		TokenType:    tokens.TokenType,
		ExpiresAt:    tokens.ExpiresAt,
		User:         s.toUserResponse(user),
	}, nil
}

// Register creates a new user (admin only)
func (s *AuthService) Register(req *request.RegisterRequest) (*response.UserResponse, error) {
	exists, err := s.userRepo.EmailExists(req.Email)
	if err != nil {
		return nil, utils.ErrInternalServer.Wrap(err)
	}
	if exists {
		return nil, utils.ErrEmailAlreadyExists
	}

	if req.Phone != "" {
		exists, err = s.userRepo.PhoneExists(req.Phone)
		if err != nil {
			return nil, utils.ErrInternalServer.Wrap(err)
		}
		if exists {
			return nil, utils.ErrPhoneAlreadyExists
		}
	}

	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, utils.ErrInternalServer.Wrap(err)
	}

	user := &models.User{
		BaseModel: models.BaseModel{
			ID: uuid.New(),
		},
		Email:        req.Email,
		Phone:        req.Phone,
		PasswordHash: hashedPassword,
		Role:         req.Role,
		IsActive:     true,
	}

	profile := &models.UserProfile{
		BaseModel: models.BaseModel{
			ID: uuid.New(),
		},
		FirstName: req.FirstName,
		LastName:  req.LastName,
	}

	if req.InstitutionID != "" {
		instID, err := uuid.Parse(req.InstitutionID)
		if err != nil {
			return nil, utils.ErrInvalidUUID
		}
		profile.InstitutionID = &instID
	}

	if err := s.userRepo.CreateWithProfile(user, profile); err != nil {
		logger.Error("Failed to create user", zap.Error(err))
		return nil, utils.ErrInternalServer.Wrap(err)
	}

	user.Profile = profile
	resp := s.toUserResponse(user)
	return &resp, nil
}

// RefreshToken rotates the token pair after verifying the presented refresh
// token is the one on record for the user.
func (s *AuthService) RefreshToken(req *request.RefreshTokenRequest) (*response.TokenResponse, error) {
	userID, err := s.jwtManager.ValidateRefreshToken(req.RefreshToken)
	if err != nil {
		return nil, err
	}

	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		return nil, utils.ErrInvalidCredentials
	}

	if user.RefreshToken != req.RefreshToken {
		return nil, utils.ErrRefreshTokenInvalid
	}
	if !user.IsActive {
		return nil, utils.ErrAccountDisabled
	}

	return s.issueTokens(user)
}

// Logout invalidates the user's refresh token
func (s *AuthService) Logout(userID uuid.UUID) error {
	return s.userRepo.InvalidateRefreshToken(userID)
}

// ForgotPassword initiates the password reset process. The outcome is the
// same whether or not the email exists, so the endpoint cannot be used to
// enumerate accounts.
func (s *AuthService) ForgotPassword(req *request.ForgotPasswordRequest) error {
	user, err := s.userRepo.FindByEmail(req.Email)
	if err != nil {
		logger.Debug("Forgot password for non-existent email", zap.String("email", req.Email))
		return nil
	}

	resetToken, expiry, err := s.jwtManager.GenerateResetToken(user.ID, user.Email)
	if err != nil {
		return utils.ErrInternalServer.Wrap(err)
	}

	if err := s.userRepo.SaveResetToken(user.ID, resetToken, expiry); err != nil {
		return utils.ErrInternalServer.Wrap(err)
	}

	// Delivery is out of band; the token is logged for operators until a
	// mail integration is wired up.
	logger.Info("Password reset token generated",
		zap.String("email", user.Email),
		zap.String("token", resetToken),
		zap.Time("expiry", expiry),
	)

	return nil
}

// ResetPassword resets the user's password using a reset token
func (s *AuthService) ResetPassword(req *request.ResetPasswordRequest) error {
	userID, err := s.jwtManager.ValidateResetToken(req.Token)
	if err != nil {
		return err
	}

	user, err := s.userRepo.FindByResetToken(req.Token)
	if err != nil {
		return err
	}
	if user.ID != userID {
		return utils.ErrResetTokenInvalid
	}

	hashedPassword, err := utils.HashPassword(req.NewPassword)
	if err != nil {
		return utils.ErrInternalServer.Wrap(err)
	}

	if err := s.userRepo.UpdatePassword(user.ID, hashedPassword); err != nil {
		return utils.ErrInternalServer.Wrap(err)
	}

	if err := s.userRepo.ClearResetToken(user.ID); err != nil {
		logger.Error("Failed to clear reset token", zap.Error(err))
	}

	// A password reset logs the user out everywhere.
	if err := s.userRepo.InvalidateRefreshToken(user.ID); err != nil {
		logger.Error("Failed to invalidate refresh token", zap.Error(err))
	}

	return nil
}

// ChangePassword changes the user's password
func (s *AuthService) ChangePassword(userID uuid.UUID, req *request.ChangePasswordRequest) error {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		return err
	}

	if !utils.CheckPassword(req.OldPassword, user.PasswordHash) {
		return utils.ErrInvalidCredentials
	}

	hashedPassword, err := utils.HashPassword(req.NewPassword)
	if err != nil {
		return utils.ErrInternalServer.Wrap(err)
	}

	return s.userRepo.UpdatePassword(userID, hashedPassword)
}

// GetCurrentUser returns the current user's information
func (s *AuthService) GetCurrentUser(userID uuid.UUID) (*response.UserResponse, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		return nil, err
	}

	resp := s.toUserResponse(user)
	return &resp, nil
}

// toUserResponse converts a user model to response DTO
func (s *AuthService) toUserResponse(user *models.User) response.UserResponse {
	resp := response.UserResponse{
		ID:          user.ID,
		Email:       user.Email,
		Phone:       user.Phone,
		Role:        user.Role,
		IsActive:    user.IsActive,
		LastLoginAt: user.LastLoginAt,
	}

	if user.Profile != nil {
		resp.Profile = &response.ProfileResponse{
			ID:              user.Profile.ID,
			FirstName:       user.Profile.FirstName,
			LastName:        user.Profile.LastName,
			FullName:        user.Profile.FullName(),
			DateOfBirth:     user.Profile.DateOfBirth,
			Gender:          user.Profile.Gender,
			Address:         user.Profile.Address,
			ProfileImageURL: user.Profile.ProfileImageURL,
			InstitutionID:   user.Profile.InstitutionID,
		}
	}

	return resp
}

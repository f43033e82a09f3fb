package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/karobar/karobar_backend/internal/apperrors"
	"github.com/karobar/karobar_backend/internal/core/domain"
	portssvc "github.com/karobar/karobar_backend/internal/core/ports/services"
	"github.com/karobar/karobar_backend/internal/core/services"
	"github.com/karobar/karobar_backend/internal/utils"
	"github.com/karobar/karobar_backend/pkg/config"
)

// --- Mock UserRepository ---
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) UpdateUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

// --- Mock OTPRepository ---
type MockOTPRepository struct {
	mock.Mock
}

func (m *MockOTPRepository) SaveOTP(ctx context.Context, otp domain.OTP) error {
	args := m.Called(ctx, otp)
	return args.Error(0)
}

func (m *MockOTPRepository) FindLatestOTP(ctx context.Context, email string, purpose domain.OTPPurpose) (*domain.OTP, error) {
	args := m.Called(ctx, email, purpose)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.OTP), args.Error(1)
}

func (m *MockOTPRepository) MarkOTPVerified(ctx context.Context, otpID string) error {
	args := m.Called(ctx, otpID)
	return args.Error(0)
}

// --- Mock TokenService ---
type MockTokenService struct {
	mock.Mock
}

func (m *MockTokenService) GenerateToken(userID string) (string, error) {
	args := m.Called(userID)
	return args.String(0), args.Error(1)
}

// --- Test Suite ---
type AuthServiceTestSuite struct {
	suite.Suite
	mockUsers *MockUserRepository
	mockOTPs  *MockOTPRepository
	mockToken *MockTokenService
	service   portssvc.AuthService
}

func (suite *AuthServiceTestSuite) SetupTest() {
	suite.mockUsers = new(MockUserRepository)
	suite.mockOTPs = new(MockOTPRepository)
	suite.mockToken = new(MockTokenService)
	cfg := &config.Config{
		OTPExpiryDuration: 10 * time.Minute,
		OTPDigits:         6,
	}
	suite.service = services.NewAuthService(suite.mockUsers, suite.mockOTPs, suite.mockToken, cfg)
}

// --- Test Cases ---

func (suite *AuthServiceTestSuite) TestRegister_Success() {
	ctx := context.Background()

	suite.mockUsers.On("FindUserByEmail", ctx, "asha@example.com").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockUsers.On("SaveUser", ctx, mock.MatchedBy(func(u domain.User) bool {
		return u.UserID != "" && u.Email == "asha@example.com" && !u.IsActive && !u.IsVerified &&
			u.PasswordHash != "" && u.PasswordHash != "secret-password"
	})).Return(nil).Once()
	suite.mockOTPs.On("SaveOTP", ctx, mock.MatchedBy(func(o domain.OTP) bool {
		return o.Email == "asha@example.com" && o.Purpose == domain.OTPPurposeRegister &&
			len(o.Code) == 6 && o.ExpiresAt.After(o.CreatedAt)
	})).Return(nil).Once()

	user, err := suite.service.Register(ctx, domain.User{Email: " Asha@Example.com ", FirstName: "Asha"}, "secret-password")

	suite.Require().NoError(err)
	suite.Require().NotNil(user)
	suite.Equal("asha@example.com", user.Email)
	suite.False(user.IsActive)
	suite.mockUsers.AssertExpectations(suite.T())
	suite.mockOTPs.AssertExpectations(suite.T())
}

func (suite *AuthServiceTestSuite) TestRegister_DuplicateEmail() {
	ctx := context.Background()
	existing := &domain.User{UserID: "u1", Email: "asha@example.com"}

	suite.mockUsers.On("FindUserByEmail", ctx, "asha@example.com").Return(existing, nil).Once()

	user, err := suite.service.Register(ctx, domain.User{Email: "asha@example.com"}, "secret-password")

	suite.Require().Error(err)
	suite.Nil(user)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.mockUsers.AssertNotCalled(suite.T(), "SaveUser", mock.Anything, mock.Anything)
}

func (suite *AuthServiceTestSuite) TestRegister_RequiresEmailAndPassword() {
	ctx := context.Background()

	user, err := suite.service.Register(ctx, domain.User{Email: "asha@example.com"}, "")

	suite.Require().Error(err)
	suite.Nil(user)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *AuthServiceTestSuite) TestVerifyRegistration_ActivatesUser() {
	ctx := context.Background()
	now := time.Now().UTC()
	otp := &domain.OTP{
		OTPID:     "otp-1",
		Email:     "asha@example.com",
		Code:      "123456",
		Purpose:   domain.OTPPurposeRegister,
		CreatedAt: now,
		ExpiresAt: now.Add(10 * time.Minute),
	}
	user := &domain.User{UserID: "u1", Email: "asha@example.com"}

	suite.mockOTPs.On("FindLatestOTP", ctx, "asha@example.com", domain.OTPPurposeRegister).Return(otp, nil).Once()
	suite.mockOTPs.On("MarkOTPVerified", ctx, "otp-1").Return(nil).Once()
	suite.mockUsers.On("FindUserByEmail", ctx, "asha@example.com").Return(user, nil).Once()
	suite.mockUsers.On("UpdateUser", ctx, mock.MatchedBy(func(u domain.User) bool {
		return u.IsActive && u.IsVerified
	})).Return(nil).Once()

	err := suite.service.VerifyRegistration(ctx, "asha@example.com", "123456")

	suite.Require().NoError(err)
	suite.mockOTPs.AssertExpectations(suite.T())
	suite.mockUsers.AssertExpectations(suite.T())
}

func (suite *AuthServiceTestSuite) TestVerifyRegistration_WrongCode() {
	ctx := context.Background()
	now := time.Now().UTC()
	otp := &domain.OTP{
		OTPID:     "otp-1",
		Email:     "asha@example.com",
		Code:      "123456",
		Purpose:   domain.OTPPurposeRegister,
		CreatedAt: now,
		ExpiresAt: now.Add(10 * time.Minute),
	}

	suite.mockOTPs.On("FindLatestOTP", ctx, "asha@example.com", domain.OTPPurposeRegister).Return(otp, nil).Once()

	err := suite.service.VerifyRegistration(ctx, "asha@example.com", "000000")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockOTPs.AssertNotCalled(suite.T(), "MarkOTPVerified", mock.Anything, mock.Anything)
}

func (suite *AuthServiceTestSuite) TestVerifyRegistration_ExpiredOTP() {
	ctx := context.Background()
	now := time.Now().UTC()
	otp := &domain.OTP{
		OTPID:     "otp-1",
		Email:     "asha@example.com",
		Code:      "123456",
		Purpose:   domain.OTPPurposeRegister,
		CreatedAt: now.Add(-time.Hour),
		ExpiresAt: now.Add(-50 * time.Minute),
	}

	suite.mockOTPs.On("FindLatestOTP", ctx, "asha@example.com", domain.OTPPurposeRegister).Return(otp, nil).Once()

	err := suite.service.VerifyRegistration(ctx, "asha@example.com", "123456")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *AuthServiceTestSuite) TestLogin_Success() {
	ctx := context.Background()
	hash, hashErr := utils.HashPassword("secret-password")
	suite.Require().NoError(hashErr)
	user := &domain.User{
		UserID:       "u1",
		Email:        "asha@example.com",
		PasswordHash: hash,
		IsActive:     true,
		IsVerified:   true,
	}

	suite.mockUsers.On("FindUserByEmail", ctx, "asha@example.com").Return(user, nil).Once()
	suite.mockToken.On("GenerateToken", "u1").Return("signed.jwt.token", nil).Once()

	loggedIn, token, err := suite.service.Login(ctx, "Asha@Example.com", "secret-password")

	suite.Require().NoError(err)
	suite.Equal("u1", loggedIn.UserID)
	suite.Equal("signed.jwt.token", token)
	suite.mockToken.AssertExpectations(suite.T())
}

func (suite *AuthServiceTestSuite) TestLogin_WrongPassword() {
	ctx := context.Background()
	hash, hashErr := utils.HashPassword("secret-password")
	suite.Require().NoError(hashErr)
	user := &domain.User{UserID: "u1", Email: "asha@example.com", PasswordHash: hash, IsActive: true, IsVerified: true}

	suite.mockUsers.On("FindUserByEmail", ctx, "asha@example.com").Return(user, nil).Once()

	_, token, err := suite.service.Login(ctx, "asha@example.com", "wrong-password")

	suite.Require().Error(err)
	suite.Empty(token)
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
	suite.mockToken.AssertNotCalled(suite.T(), "GenerateToken", mock.Anything)
}

func (suite *AuthServiceTestSuite) TestLogin_UnknownEmailMapsToUnauthorized() {
	ctx := context.Background()

	suite.mockUsers.On("FindUserByEmail", ctx, "ghost@example.com").Return(nil, apperrors.ErrNotFound).Once()

	_, _, err := suite.service.Login(ctx, "ghost@example.com", "whatever")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
}

func (suite *AuthServiceTestSuite) TestLogin_UnverifiedAccountForbidden() {
	ctx := context.Background()
	hash, hashErr := utils.HashPassword("secret-password")
	suite.Require().NoError(hashErr)
	user := &domain.User{UserID: "u1", Email: "asha@example.com", PasswordHash: hash}

	suite.mockUsers.On("FindUserByEmail", ctx, "asha@example.com").Return(user, nil).Once()

	_, _, err := suite.service.Login(ctx, "asha@example.com", "secret-password")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.mockToken.AssertNotCalled(suite.T(), "GenerateToken", mock.Anything)
}

func (suite *AuthServiceTestSuite) TestResetPassword_UpdatesHash() {
	ctx := context.Background()
	now := time.Now().UTC()
	otp := &domain.OTP{
		OTPID:     "otp-9",
		Email:     "asha@example.com",
		Code:      "654321",
		Purpose:   domain.OTPPurposePasswordReset,
		CreatedAt: now,
		ExpiresAt: now.Add(10 * time.Minute),
	}
	oldHash, hashErr := utils.HashPassword("old-password")
	suite.Require().NoError(hashErr)
	user := &domain.User{UserID: "u1", Email: "asha@example.com", PasswordHash: oldHash, IsActive: true, IsVerified: true}

	suite.mockOTPs.On("FindLatestOTP", ctx, "asha@example.com", domain.OTPPurposePasswordReset).Return(otp, nil).Once()
	suite.mockOTPs.On("MarkOTPVerified", ctx, "otp-9").Return(nil).Once()
	suite.mockUsers.On("FindUserByEmail", ctx, "asha@example.com").Return(user, nil).Once()
	suite.mockUsers.On("UpdateUser", ctx, mock.MatchedBy(func(u domain.User) bool {
		return u.PasswordHash != oldHash && utils.CheckPassword(u.PasswordHash, "new-password")
	})).Return(nil).Once()

	err := suite.service.ResetPassword(ctx, "asha@example.com", "654321", "new-password")

	suite.Require().NoError(err)
	suite.mockUsers.AssertExpectations(suite.T())
	suite.mockOTPs.AssertExpectations(suite.T())
}

func TestAuthServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AuthServiceTestSuite))
}

package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"speechcraft-server/internal/config"
	"speechcraft-server/internal/messaging"
	"speechcraft-server/internal/mocks"
	"speechcraft-server/internal/models"
)

func testAuthConfig() *config.Config {
	return &config.Config{
		JWTSecret:       "test-jwt-secret",
		PasswordPepper:  "test-pepper",
		AccessTokenTTL:  15 * time.Minute,
		RefreshTokenTTL: 7 * 24 * time.Hour,
	}
}

type authFixture struct {
	userRepo  *mocks.MockUserRepository
	subRepo   *mocks.MockSubscriptionRepository
	tokenRepo *mocks.MockTokenRepository
	publisher *mocks.MockEventPublisher
	svc       AuthService
}

func newAuthFixture(t *testing.T) *authFixture {
	userRepo := mocks.NewMockUserRepository(t)
	subRepo := mocks.NewMockSubscriptionRepository(t)
	tokenRepo := mocks.NewMockTokenRepository(t)
	publisher := mocks.NewMockEventPublisher(t)

	return &authFixture{
		userRepo:  userRepo,
		subRepo:   subRepo,
		tokenRepo: tokenRepo,
		publisher: publisher,
		svc:       NewAuthService(userRepo, subRepo, tokenRepo, publisher, testAuthConfig(), zap.NewNop()),
	}
}

func TestHashAndCheckPassword(t *testing.T) {
	password := "correct horse battery staple"
	pepper := "pepper"

	hash, err := hashPassword(password, pepper)
	require.NoError(t, err)
	require.NotEmpty(t, hash)
	assert.NotEqual(t, password, hash)

	assert.True(t, checkPasswordHash(password, hash, pepper))
	assert.False(t, checkPasswordHash("wrong password", hash, pepper))
	// Без правильного перца хеш не сходится.
	assert.False(t, checkPasswordHash(password, hash, "other-pepper"))
}

func TestRegister_Success(t *testing.T) {
	f := newAuthFixture(t)

	f.userRepo.On("GetUserByUsername", mock.Anything, "newuser").Return(nil, models.ErrUserNotFound).Once()
	f.userRepo.On("GetUserByEmail", mock.Anything, "new@example.com").Return(nil, models.ErrUserNotFound).Once()
	f.userRepo.On("CreateUser", mock.Anything, mock.AnythingOfType("*models.User")).
		Run(func(args mock.Arguments) {
			args.Get(1).(*models.User).ID = uuid.New()
		}).
		Return(nil).Once()
	f.subRepo.On("Create", mock.Anything, mock.AnythingOfType("*models.Subscription")).Return(nil).Once()
	f.publisher.On("Publish", mock.Anything, messaging.RoutingKeyUserRegistered, mock.Anything).Return(nil).Once()

	user, err := f.svc.Register(context.Background(), "newuser", "New User", "  NEW@example.com ", "Password1")
	require.NoError(t, err)

	// Email нормализуется, пароль хешируется.
	assert.Equal(t, "new@example.com", user.Email)
	assert.NotEqual(t, "Password1", user.PasswordHash)
	assert.True(t, checkPasswordHash("Password1", user.PasswordHash, "test-pepper"))
	assert.Equal(t, []string{models.RoleUser}, user.Roles)

	f.userRepo.AssertExpectations(t)
	f.subRepo.AssertExpectations(t)
	f.publisher.AssertExpectations(t)
}

func TestRegister_DuplicateUsername(t *testing.T) {
	f := newAuthFixture(t)

	f.userRepo.On("GetUserByUsername", mock.Anything, "taken").
		Return(&models.User{ID: uuid.New(), Username: "taken"}, nil).Once()

	_, err := f.svc.Register(context.Background(), "taken", "", "a@example.com", "Password1")
	assert.ErrorIs(t, err, models.ErrUserAlreadyExists)
	f.userRepo.AssertNotCalled(t, "CreateUser")
}

func TestRegister_DuplicateEmail(t *testing.T) {
	f := newAuthFixture(t)

	f.userRepo.On("GetUserByUsername", mock.Anything, "newuser").Return(nil, models.ErrUserNotFound).Once()
	f.userRepo.On("GetUserByEmail", mock.Anything, "taken@example.com").
		Return(&models.User{ID: uuid.New()}, nil).Once()

	_, err := f.svc.Register(context.Background(), "newuser", "", "taken@example.com", "Password1")
	assert.ErrorIs(t, err, models.ErrEmailAlreadyExists)
	f.userRepo.AssertNotCalled(t, "CreateUser")
}

func TestRegister_InvalidEmail(t *testing.T) {
	f := newAuthFixture(t)

	_, err := f.svc.Register(context.Background(), "newuser", "", "not-an-email", "Password1")
	assert.ErrorIs(t, err, models.ErrInvalidCredentials)
	f.userRepo.AssertNotCalled(t, "GetUserByUsername")
}

func loginReadyUser(t *testing.T, username, password string) *models.User {
	t.Helper()
	hash, err := hashPassword(password, "test-pepper")
	require.NoError(t, err)
	return &models.User{
		ID:           uuid.New(),
		Username:     username,
		Email:        username + "@example.com",
		PasswordHash: hash,
		Roles:        []string{models.RoleUser},
	}
}

func TestLogin_Success(t *testing.T) {
	f := newAuthFixture(t)
	user := loginReadyUser(t, "alex", "Password1")

	f.userRepo.On("GetUserByUsername", mock.Anything, "alex").Return(user, nil).Once()
	f.tokenRepo.On("SetToken", mock.Anything, user.ID, mock.AnythingOfType("*models.TokenDetails")).Return(nil).Once()

	td, err := f.svc.Login(context.Background(), "alex", "Password1")
	require.NoError(t, err)
	assert.NotEmpty(t, td.AccessToken)
	assert.NotEmpty(t, td.RefreshToken)
	assert.NotEqual(t, td.AccessUUID, td.RefreshUUID)
	f.tokenRepo.AssertExpectations(t)
}

func TestLogin_WrongPassword(t *testing.T) {
	f := newAuthFixture(t)
	user := loginReadyUser(t, "alex", "Password1")

	f.userRepo.On("GetUserByUsername", mock.Anything, "alex").Return(user, nil).Once()

	_, err := f.svc.Login(context.Background(), "alex", "wrong")
	assert.ErrorIs(t, err, models.ErrInvalidCredentials)
	f.tokenRepo.AssertNotCalled(t, "SetToken")
}

func TestLogin_BannedUserGetsGenericError(t *testing.T) {
	f := newAuthFixture(t)
	user := loginReadyUser(t, "alex", "Password1")
	user.IsBanned = true

	f.userRepo.On("GetUserByUsername", mock.Anything, "alex").Return(user, nil).Once()

	// Причина отказа не раскрывается.
	_, err := f.svc.Login(context.Background(), "alex", "Password1")
	assert.ErrorIs(t, err, models.ErrInvalidCredentials)
}

func TestLogin_UnknownUser(t *testing.T) {
	f := newAuthFixture(t)

	f.userRepo.On("GetUserByUsername", mock.Anything, "ghost").Return(nil, models.ErrUserNotFound).Once()

	_, err := f.svc.Login(context.Background(), "ghost", "Password1")
	assert.ErrorIs(t, err, models.ErrInvalidCredentials)
}

func TestRefresh_FullCycle(t *testing.T) {
	f := newAuthFixture(t)
	user := loginReadyUser(t, "alex", "Password1")

	f.userRepo.On("GetUserByUsername", mock.Anything, "alex").Return(user, nil).Once()
	f.tokenRepo.On("SetToken", mock.Anything, user.ID, mock.Anything).Return(nil).Twice()

	td, err := f.svc.Login(context.Background(), "alex", "Password1")
	require.NoError(t, err)

	f.tokenRepo.On("GetUserIDByRefreshUUID", mock.Anything, td.RefreshUUID).Return(user.ID, nil).Once()
	f.userRepo.On("GetUserByID", mock.Anything, user.ID).Return(user, nil).Once()
	// Старый refresh токен отзывается.
	f.tokenRepo.On("DeleteTokens", mock.Anything, "", td.RefreshUUID).Return(int64(1), nil).Once()

	newTd, err := f.svc.Refresh(context.Background(), td.RefreshToken)
	require.NoError(t, err)
	assert.NotEqual(t, td.RefreshUUID, newTd.RefreshUUID)
	f.tokenRepo.AssertExpectations(t)
}

func TestRefresh_RevokedTokenRejected(t *testing.T) {
	f := newAuthFixture(t)
	user := loginReadyUser(t, "alex", "Password1")

	f.userRepo.On("GetUserByUsername", mock.Anything, "alex").Return(user, nil).Once()
	f.tokenRepo.On("SetToken", mock.Anything, user.ID, mock.Anything).Return(nil).Once()

	td, err := f.svc.Login(context.Background(), "alex", "Password1")
	require.NoError(t, err)

	f.tokenRepo.On("GetUserIDByRefreshUUID", mock.Anything, td.RefreshUUID).
		Return(uuid.Nil, models.ErrTokenNotFound).Once()

	_, err = f.svc.Refresh(context.Background(), td.RefreshToken)
	assert.ErrorIs(t, err, models.ErrTokenNotFound)
}

func TestRefresh_MalformedToken(t *testing.T) {
	f := newAuthFixture(t)

	_, err := f.svc.Refresh(context.Background(), "not-a-jwt")
	assert.ErrorIs(t, err, models.ErrTokenMalformed)
}

func TestVerifyAccessToken_RevokedInStore(t *testing.T) {
	f := newAuthFixture(t)
	user := loginReadyUser(t, "alex", "Password1")

	f.userRepo.On("GetUserByUsername", mock.Anything, "alex").Return(user, nil).Once()
	f.tokenRepo.On("SetToken", mock.Anything, user.ID, mock.Anything).Return(nil).Once()

	td, err := f.svc.Login(context.Background(), "alex", "Password1")
	require.NoError(t, err)

	// Подпись валидна, но токен отозван (удален из хранилища).
	f.tokenRepo.On("GetUserIDByAccessUUID", mock.Anything, td.AccessUUID).
		Return(uuid.Nil, models.ErrTokenNotFound).Once()

	_, err = f.svc.VerifyAccessToken(context.Background(), td.AccessToken)
	assert.ErrorIs(t, err, models.ErrTokenInvalid)
}

func TestValidateAndGetClaims_BannedUserRejected(t *testing.T) {
	f := newAuthFixture(t)
	user := loginReadyUser(t, "alex", "Password1")

	f.userRepo.On("GetUserByUsername", mock.Anything, "alex").Return(user, nil).Once()
	f.tokenRepo.On("SetToken", mock.Anything, user.ID, mock.Anything).Return(nil).Once()

	td, err := f.svc.Login(context.Background(), "alex", "Password1")
	require.NoError(t, err)

	f.tokenRepo.On("GetUserIDByAccessUUID", mock.Anything, td.AccessUUID).Return(user.ID, nil).Twice()

	// Пока пользователь не забанен, токен проходит.
	banned := *user
	f.userRepo.On("GetUserByID", mock.Anything, user.ID).Return(user, nil).Once()
	claims, err := f.svc.ValidateAndGetClaims(context.Background(), td.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)

	// Бан действует немедленно, без ожидания истечения токена.
	banned.IsBanned = true
	f.userRepo.On("GetUserByID", mock.Anything, user.ID).Return(&banned, nil).Once()
	_, err = f.svc.ValidateAndGetClaims(context.Background(), td.AccessToken)
	assert.ErrorIs(t, err, models.ErrTokenInvalid)
}

func TestBanUnbanUser(t *testing.T) {
	f := newAuthFixture(t)
	userID := uuid.New()

	f.userRepo.On("SetBanned", mock.Anything, userID, true).Return(nil).Once()
	require.NoError(t, f.svc.BanUser(context.Background(), userID))

	f.userRepo.On("SetBanned", mock.Anything, userID, false).Return(nil).Once()
	require.NoError(t, f.svc.UnbanUser(context.Background(), userID))

	f.userRepo.AssertExpectations(t)
}

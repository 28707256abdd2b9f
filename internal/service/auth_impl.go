package service

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"speechcraft-server/internal/config"
	"speechcraft-server/internal/interfaces"
	"speechcraft-server/internal/messaging"
	"speechcraft-server/internal/models"
)

// Compile-time check to ensure authServiceImpl implements AuthService
var _ AuthService = (*authServiceImpl)(nil)

// authServiceImpl implements the AuthService interface.
type authServiceImpl struct {
	userRepo  interfaces.UserRepository
	subRepo   interfaces.SubscriptionRepository
	tokenRepo interfaces.TokenRepository
	publisher interfaces.EventPublisher
	cfg       *config.Config
	logger    *zap.Logger
}

// NewAuthService creates a new instance of authServiceImpl.
func NewAuthService(
	userRepo interfaces.UserRepository,
	subRepo interfaces.SubscriptionRepository,
	tokenRepo interfaces.TokenRepository,
	publisher interfaces.EventPublisher,
	cfg *config.Config,
	logger *zap.Logger,
) AuthService {
	return &authServiceImpl{
		userRepo:  userRepo,
		subRepo:   subRepo,
		tokenRepo: tokenRepo,
		publisher: publisher,
		cfg:       cfg,
		logger:    logger.Named("AuthService"),
	}
}

// Register creates a new user with a free subscription.
func (s *authServiceImpl) Register(ctx context.Context, username, displayName, email, password string) (*models.User, error) {
	// Приводим email к нижнему регистру и убираем пробелы
	email = strings.ToLower(strings.TrimSpace(email))
	username = strings.TrimSpace(username)
	displayName = strings.TrimSpace(displayName)

	logFields := []zap.Field{zap.String("username", username), zap.String("email", email)}
	s.logger.Info("Registering new user", logFields...)

	if _, err := mail.ParseAddress(email); err != nil {
		s.logger.Warn("Registration attempt with invalid email format", append(logFields, zap.Error(err))...)
		return nil, fmt.Errorf("invalid email format: %w", models.ErrInvalidCredentials)
	}
	if username == "" || password == "" {
		s.logger.Warn("Registration attempt with empty username or password", logFields...)
		return nil, models.ErrInvalidCredentials
	}

	// Проверка существования пользователя по username
	existingUser, err := s.userRepo.GetUserByUsername(ctx, username)
	if err != nil && !errors.Is(err, models.ErrUserNotFound) {
		s.logger.Error("Error checking existing username during registration", append(logFields, zap.Error(err))...)
		return nil, fmt.Errorf("error checking existing username: %w", err)
	}
	if existingUser != nil {
		s.logger.Warn("Registration attempt for existing username", logFields...)
		return nil, models.ErrUserAlreadyExists
	}

	// Проверка существования пользователя по email
	existingUser, err = s.userRepo.GetUserByEmail(ctx, email)
	if err != nil && !errors.Is(err, models.ErrUserNotFound) {
		s.logger.Error("Error checking existing email during registration", append(logFields, zap.Error(err))...)
		return nil, fmt.Errorf("error checking existing email: %w", err)
	}
	if existingUser != nil {
		s.logger.Warn("Registration attempt for existing email", logFields...)
		return nil, models.ErrEmailAlreadyExists
	}

	// Используем перец перед хешированием
	hashedPassword, err := hashPassword(password, s.cfg.PasswordPepper)
	if err != nil {
		s.logger.Error("Failed to hash password during registration", append(logFields, zap.Error(err))...)
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Username:     username,
		DisplayName:  displayName,
		Email:        email,
		PasswordHash: hashedPassword,
		Roles:        []string{models.RoleUser},
	}

	if err := s.userRepo.CreateUser(ctx, user); err != nil {
		if !errors.Is(err, models.ErrUserAlreadyExists) && !errors.Is(err, models.ErrEmailAlreadyExists) {
			s.logger.Error("Failed to create user via repository", append(logFields, zap.Error(err))...)
		}
		return nil, err
	}

	// Каждый новый пользователь начинает с бесплатного плана.
	sub := &models.Subscription{
		UserID:      user.ID,
		Plan:        models.PlanFree,
		PeriodStart: time.Now(),
	}
	if err := s.subRepo.Create(ctx, sub); err != nil {
		// Пользователь уже создан, подписку можно будет создать лениво
		// при первом обращении, поэтому регистрацию не откатываем.
		s.logger.Error("Failed to create free subscription for new user", zap.Error(err), zap.String("userID", user.ID.String()))
	}

	if s.publisher != nil {
		event := messaging.UserRegisteredPayload{
			UserID:       user.ID,
			Username:     user.Username,
			Email:        user.Email,
			RegisteredAt: time.Now(),
		}
		if pubErr := s.publisher.Publish(ctx, messaging.RoutingKeyUserRegistered, event); pubErr != nil {
			s.logger.Error("Failed to publish user.registered event", zap.Error(pubErr), zap.String("userID", user.ID.String()))
		}
	}

	s.logger.Info("User registered successfully", zap.String("userID", user.ID.String()), zap.String("username", user.Username))
	return user, nil
}

// Login authenticates a user and returns token details.
func (s *authServiceImpl) Login(ctx context.Context, username, password string) (*models.TokenDetails, error) {
	s.logger.Info("Login attempt", zap.String("username", username))
	user, err := s.userRepo.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, models.ErrUserNotFound) {
			s.logger.Warn("Login failed: user not found", zap.String("username", username))
			return nil, models.ErrInvalidCredentials
		}
		s.logger.Error("Login failed: error getting user from repository", zap.Error(err), zap.String("username", username))
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	// Используем перец при проверке
	if !checkPasswordHash(password, user.PasswordHash, s.cfg.PasswordPepper) {
		s.logger.Warn("Login failed: invalid password", zap.String("username", username), zap.String("userID", user.ID.String()))
		return nil, models.ErrInvalidCredentials
	}

	if user.IsBanned {
		s.logger.Warn("Login failed: user is banned", zap.String("username", username), zap.String("userID", user.ID.String()))
		// Возвращаем стандартную ошибку, чтобы не раскрывать причину
		return nil, models.ErrInvalidCredentials
	}

	td, err := s.createTokens(ctx, user)
	if err != nil {
		s.logger.Error("Failed to create tokens during login", zap.Error(err), zap.String("userID", user.ID.String()))
		return nil, fmt.Errorf("failed to create tokens: %w", err)
	}

	if err := s.tokenRepo.SetToken(ctx, user.ID, td); err != nil {
		s.logger.Error("Failed to save token details during login", zap.Error(err), zap.String("userID", user.ID.String()))
		return nil, fmt.Errorf("failed to save token details: %w", err)
	}

	s.logger.Info("User logged in successfully", zap.String("userID", user.ID.String()))
	return td, nil
}

// Logout removes the access and refresh tokens from the store.
func (s *authServiceImpl) Logout(ctx context.Context, accessUUID, refreshUUID string) error {
	log := s.logger.With(zap.String("accessUUID", accessUUID), zap.String("refreshUUID", refreshUUID))
	log.Debug("Attempting to logout user by deleting tokens")

	deletedCount, err := s.tokenRepo.DeleteTokens(ctx, accessUUID, refreshUUID)
	if err != nil {
		// Логируем ошибку, но не возвращаем ее клиенту, т.к. токены могли уже быть удалены.
		log.Error("Failed to delete tokens during logout", zap.Error(err))
	}

	if deletedCount > 0 {
		log.Info("Tokens deleted successfully during logout", zap.Int64("deletedCount", deletedCount))
	} else {
		log.Info("No tokens found to delete during logout (already expired or logged out)")
	}
	return nil
}

// Refresh issues new access and refresh tokens based on a valid refresh token.
func (s *authServiceImpl) Refresh(ctx context.Context, refreshTokenString string) (*models.TokenDetails, error) {
	s.logger.Info("Token refresh attempt") // Не логируем сам токен
	token, err := jwt.ParseWithClaims(refreshTokenString, &models.Claims{}, s.keyFunc)
	if err != nil {
		return nil, s.mapParseError(err, "refresh")
	}

	claims, ok := token.Claims.(*models.Claims)
	if !ok || !token.Valid {
		s.logger.Warn("Refresh attempt with invalid token structure or signature")
		return nil, models.ErrTokenInvalid
	}

	refreshUUID := claims.ID
	log := s.logger.With(zap.String("userID", claims.UserID.String()), zap.String("refreshUUID", refreshUUID))
	log.Debug("Refresh token parsed successfully")

	userID, err := s.tokenRepo.GetUserIDByRefreshUUID(ctx, refreshUUID)
	if err != nil {
		if errors.Is(err, models.ErrTokenNotFound) {
			log.Warn("Refresh attempt with invalid/revoked token in store")
			return nil, models.ErrTokenNotFound
		}
		log.Error("Error checking refresh token existence via repository", zap.Error(err))
		return nil, fmt.Errorf("error checking refresh token existence: %w", err)
	}

	if userID != claims.UserID {
		log.Error("Refresh token user ID mismatch", zap.String("repoUserID", userID.String()))
		return nil, models.ErrTokenInvalid
	}

	user, err := s.userRepo.GetUserByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, models.ErrUserNotFound) {
			log.Warn("User from valid refresh token not found in DB")
			return nil, models.ErrTokenInvalid
		}
		return nil, fmt.Errorf("failed to get user during refresh: %w", err)
	}
	if user.IsBanned {
		log.Warn("Refresh attempt by banned user")
		_, _ = s.tokenRepo.DeleteTokens(ctx, "", refreshUUID)
		return nil, models.ErrTokenInvalid
	}

	newTd, err := s.createTokens(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("failed to create new tokens during refresh: %w", err)
	}

	// Старый refresh токен отзываем; ошибка некритична для пользователя.
	if _, delErr := s.tokenRepo.DeleteTokens(ctx, "", refreshUUID); delErr != nil {
		log.Error("Non-critical: Failed to delete old refresh token during refresh process", zap.Error(delErr))
	}

	if err := s.tokenRepo.SetToken(ctx, user.ID, newTd); err != nil {
		log.Error("Failed to save new token details during refresh", zap.Error(err))
		return nil, fmt.Errorf("failed to save new token details: %w", err)
	}

	log.Info("Token refreshed successfully")
	return newTd, nil
}

// VerifyAccessToken parses and validates an access token string.
func (s *authServiceImpl) VerifyAccessToken(ctx context.Context, tokenString string) (*models.Claims, error) {
	s.logger.Debug("Verifying access token") // Не логируем сам токен
	token, err := jwt.ParseWithClaims(tokenString, &models.Claims{}, s.keyFunc)
	if err != nil {
		return nil, s.mapParseError(err, "access")
	}

	claims, ok := token.Claims.(*models.Claims)
	if !ok || !token.Valid {
		s.logger.Warn("Access token verification failed (invalid claims type or signature)")
		return nil, models.ErrTokenInvalid
	}

	accessUUID := claims.ID
	if _, err := s.tokenRepo.GetUserIDByAccessUUID(ctx, accessUUID); err != nil {
		if errors.Is(err, models.ErrTokenNotFound) {
			s.logger.Debug("Access token not found in store (revoked/logged out)", zap.String("accessUUID", accessUUID))
			return nil, models.ErrTokenInvalid
		}
		s.logger.Error("Error checking access token existence via repository", zap.Error(err), zap.String("accessUUID", accessUUID))
		return nil, fmt.Errorf("error checking access token existence: %w", err)
	}
	s.logger.Debug("Access token verified successfully against store", zap.String("userID", claims.UserID.String()))
	return claims, nil
}

// ValidateAndGetClaims проверяет токен и статус пользователя.
func (s *authServiceImpl) ValidateAndGetClaims(ctx context.Context, tokenString string) (*models.Claims, error) {
	claims, err := s.VerifyAccessToken(ctx, tokenString)
	if err != nil {
		return nil, err
	}

	log := s.logger.With(zap.String("userID", claims.UserID.String()))
	user, err := s.userRepo.GetUserByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, models.ErrUserNotFound) {
			log.Warn("User from valid token not found in DB")
			return nil, models.ErrTokenInvalid
		}
		log.Error("Failed to get user by ID during token validation", zap.Error(err))
		return nil, fmt.Errorf("failed to get user for validation: %w", err)
	}

	if user.IsBanned {
		log.Warn("Token validation failed: user is banned")
		return nil, models.ErrTokenInvalid
	}
	return claims, nil
}

// BanUser sets the user's status to banned.
func (s *authServiceImpl) BanUser(ctx context.Context, userID uuid.UUID) error {
	log := s.logger.With(zap.String("userID", userID.String()))
	log.Info("Attempting to ban user")
	if err := s.userRepo.SetBanned(ctx, userID, true); err != nil {
		log.Error("Failed to set user ban status", zap.Error(err), zap.Bool("isBanned", true))
		return err
	}
	log.Info("User banned successfully")
	return nil
}

// UnbanUser sets the user's status to not banned.
func (s *authServiceImpl) UnbanUser(ctx context.Context, userID uuid.UUID) error {
	log := s.logger.With(zap.String("userID", userID.String()))
	log.Info("Attempting to unban user")
	if err := s.userRepo.SetBanned(ctx, userID, false); err != nil {
		log.Error("Failed to set user ban status", zap.Error(err), zap.Bool("isBanned", false))
		return err
	}
	log.Info("User unbanned successfully")
	return nil
}

// --- Helper Functions ---

func (s *authServiceImpl) keyFunc(token *jwt.Token) (interface{}, error) {
	if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
		return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
	}
	return []byte(s.cfg.JWTSecret), nil
}

func (s *authServiceImpl) mapParseError(err error, kind string) error {
	if errors.Is(err, jwt.ErrTokenExpired) {
		s.logger.Debug("Token verification failed: expired", zap.String("kind", kind))
		return models.ErrTokenExpired
	}
	if errors.Is(err, jwt.ErrTokenMalformed) {
		s.logger.Warn("Token verification failed: malformed", zap.String("kind", kind))
		return models.ErrTokenMalformed
	}
	s.logger.Error("Failed to parse token", zap.Error(err), zap.String("kind", kind))
	return models.ErrTokenInvalid
}

// applyPepper applies HMAC-SHA256 using the pepper as the key.
func applyPepper(password, pepper string) []byte {
	h := hmac.New(sha256.New, []byte(pepper))
	h.Write([]byte(password))
	return h.Sum(nil)
}

// hashPassword generates a bcrypt hash of the password after applying the pepper.
func hashPassword(password, pepper string) (string, error) {
	pepperedPassword := applyPepper(password, pepper)
	bytes, err := bcrypt.GenerateFromPassword(pepperedPassword, bcrypt.DefaultCost)
	return string(bytes), err
}

// checkPasswordHash compares a plain text password (after applying pepper) with a stored hash.
func checkPasswordHash(password, hash, pepper string) bool {
	pepperedPassword := applyPepper(password, pepper)
	err := bcrypt.CompareHashAndPassword([]byte(hash), pepperedPassword)
	return err == nil
}

// createTokens generates new access and refresh tokens for a user.
func (s *authServiceImpl) createTokens(_ context.Context, user *models.User) (*models.TokenDetails, error) {
	s.logger.Debug("Creating new token pair", zap.String("userID", user.ID.String()))

	td := &models.TokenDetails{}
	td.AtExpires = time.Now().Add(s.cfg.AccessTokenTTL).Unix()
	td.AccessUUID = uuid.New().String()
	td.RtExpires = time.Now().Add(s.cfg.RefreshTokenTTL).Unix()
	td.RefreshUUID = uuid.New().String()

	var err error
	td.AccessToken, err = s.signToken(user, td.AccessUUID, td.AtExpires)
	if err != nil {
		s.logger.Error("Failed to sign access token", zap.Error(err), zap.String("userID", user.ID.String()))
		return nil, fmt.Errorf("failed to sign access token: %w", err)
	}
	td.RefreshToken, err = s.signToken(user, td.RefreshUUID, td.RtExpires)
	if err != nil {
		s.logger.Error("Failed to sign refresh token", zap.Error(err), zap.String("userID", user.ID.String()))
		return nil, fmt.Errorf("failed to sign refresh token: %w", err)
	}
	return td, nil
}

func (s *authServiceImpl) signToken(user *models.User, jti string, expiresAt int64) (string, error) {
	claims := &models.Claims{
		UserID: user.ID,
		Roles:  user.Roles,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        jti,
			ExpiresAt: jwt.NewNumericDate(time.Unix(expiresAt, 0)),
			Subject:   user.ID.String(),
			Issuer:    "speechcraft-server",
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.JWTSecret))
}

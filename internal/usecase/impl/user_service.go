// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	"chirp/config"
	deliverycontext "chirp/internal/delivery/context"
	"chirp/internal/domain/entity"
	domainerrors "chirp/internal/domain/errors"
	"chirp/internal/domain/repository"
	"chirp/internal/domain/service"
	"chirp/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// userService implements the UserUsecase interface.
type userService struct {
	txManager      repository.TransactionManager
	userRepo       repository.UserRepository
	hasher         service.PasswordHasher
	tokenService   service.TokenService
	mailer         service.Mailer
	confirmBaseURL string
	logger         *slog.Logger
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	UserRepo     repository.UserRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Mailer       service.Mailer
	Config       *config.Config
	Logger       *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	confirmBaseURL := ""
	if params.Config != nil && params.Config.Auth != nil {
		confirmBaseURL = params.Config.Auth.ConfirmationBaseURL
	}

	return &userService{
		txManager:      params.TxManager,
		userRepo:       params.UserRepo,
		hasher:         params.Hasher,
		tokenService:   params.TokenService,
		mailer:         params.Mailer,
		confirmBaseURL: confirmBaseURL,
		logger:         params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register orchestrates the complete user registration process.
func (srv *userService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	srv.log(ctx).Info("Starting registration", slog.String("email", input.Email))

	if err := srv.hasher.ValidatePasswordStrength(input.Password); err != nil {
		return nil, err
	}

	// Hash outside the transaction, bcrypt is CPU-bound.
	passwordHash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash password")
	}

	var registeredUser *entity.User
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		_, err := userRepo.FindByEmail(ctx, input.Email)
		if err == nil {
			return domainerrors.ErrUserAlreadyExists.WrapMessage("email is already registered")
		}
		if !errors.Is(err, repository.ErrUserNotFound) {
			return errors.Wrap(err, "failed to check for existing user")
		}

		newUser := &entity.User{
			Email:        input.Email,
			PasswordHash: passwordHash,
		}
		if err := userRepo.Create(ctx, newUser); err != nil {
			return err
		}
		registeredUser = newUser

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Registration failed", slog.String("email", input.Email), slog.Any("error", err))

		return nil, err
	}

	srv.sendConfirmationEmail(ctx, registeredUser.Email)

	srv.log(ctx).Info("Registration completed", slog.String("email", registeredUser.Email))

	return &usecase.RegisterOutput{User: registeredUser}, nil
}

// sendConfirmationEmail issues a confirmation token and mails the link.
// Delivery failures are logged but never fail the registration; the user can
// be re-sent a link later while the account already exists.
func (srv *userService) sendConfirmationEmail(ctx context.Context, email string) {
	confirmToken, err := srv.tokenService.Issue(email, service.TokenPurposeConfirmation)
	if err != nil {
		srv.log(ctx).Error("Failed to issue confirmation token", slog.String("email", email), slog.Any("error", err))

		return
	}

	link := srv.confirmBaseURL + confirmToken
	if err := srv.mailer.SendConfirmationEmail(ctx, email, link); err != nil {
		srv.log(ctx).Error("Failed to send confirmation email", slog.String("email", email), slog.Any("error", err))

		return
	}

	srv.log(ctx).Info("Confirmation email sent",
		slog.String("email", email),
		slog.Duration("validFor", srv.tokenService.GetConfirmationTokenDuration()),
	)
}

// ConfirmEmail validates the emailed token and flips the account's confirmed flag.
func (srv *userService) ConfirmEmail(ctx context.Context, token string) error {
	email, err := srv.tokenService.Verify(token, service.TokenPurposeConfirmation)
	if err != nil {
		srv.log(ctx).Warn("Email confirmation failed", slog.Any("error", err))

		return err
	}

	if err := srv.userRepo.MarkConfirmed(ctx, email); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return domainerrors.ErrUserNotFound.WrapMessage("no account exists for the confirmed email")
		}

		return errors.Wrap(err, "failed to mark user confirmed")
	}

	srv.log(ctx).Info("Email confirmed", slog.String("email", email))

	return nil
}

// Login validates the credentials and issues a fresh access token.
func (srv *userService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	srv.log(ctx).Debug("Starting user login", slog.String("email", input.Email))

	user, err := srv.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		srv.log(ctx).Warn("Login failed", slog.String("email", input.Email), slog.Any("error", err))

		// An unknown email must be indistinguishable from a wrong password.
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
		}

		return nil, errors.Wrap(err, "failed to load user for login")
	}

	// Check password outside transaction (bcrypt is CPU-bound).
	ok, err := srv.hasher.Check(input.Password, user.PasswordHash)
	if err != nil {
		srv.log(ctx).Error("Login failed", slog.String("email", input.Email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to check password")
	}
	if !ok {
		srv.log(ctx).Warn("Login failed", slog.String("email", input.Email), slog.Any("error", domainerrors.ErrInvalidCredentials))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
	}

	if !user.Confirmed {
		srv.log(ctx).Warn("Login rejected for unconfirmed email", slog.String("email", input.Email))

		return nil, domainerrors.ErrEmailNotConfirmed.WrapMessage("email has not been confirmed")
	}

	accessToken, err := srv.tokenService.Issue(user.Email, service.TokenPurposeAccess)
	if err != nil {
		srv.log(ctx).Error("Login failed", slog.String("email", input.Email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to issue access token")
	}

	srv.log(ctx).Info("User logged in", slog.String("email", user.Email))

	return &usecase.LoginOutput{
		AccessToken: accessToken,
		User:        user,
	}, nil
}

// CurrentUser resolves an access token to the account it was issued for.
func (srv *userService) CurrentUser(ctx context.Context, token string) (*entity.User, error) {
	email, err := srv.tokenService.Verify(token, service.TokenPurposeAccess)
	if err != nil {
		return nil, err
	}

	user, err := srv.userRepo.FindByEmail(ctx, email)
	if err != nil {
		// The token outlived the account.
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound.WrapMessage("token subject no longer exists")
		}

		return nil, errors.Wrap(err, "failed to load current user")
	}

	return user, nil
}

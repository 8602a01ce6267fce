package user

import (
	"context"
	"sync"

	"fooddash-be/internal/logger"
	"fooddash-be/internal/validate"

	"go.uber.org/zap"
)

type SignupInput struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}

type Service interface {
	// Restore rehydrates the session from the store at process start.
	Restore(ctx context.Context) error
	Signup(ctx context.Context, input SignupInput) (string, *Session, error)
	Login(ctx context.Context, email, password string) (string, *Session, error)
	Logout(ctx context.Context) error
	// Current returns nil when nobody is logged in.
	Current(ctx context.Context) *Session
	// Verify parses a bearer token back into a session identity.
	Verify(tokenStr string) (*Session, error)
}

type service struct {
	repo        Repository
	sessionRepo SessionRepository
	jwtSecret   string

	mu      sync.Mutex
	current *Session
}

func NewService(repo Repository, sessionRepo SessionRepository, jwtSecret string) Service {
	return &service{repo: repo, sessionRepo: sessionRepo, jwtSecret: jwtSecret}
}

func (s *service) Restore(ctx context.Context) error {
	sess, err := s.sessionRepo.Get(ctx)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.current = sess
	s.mu.Unlock()

	if sess != nil {
		logger.FromCtx(ctx).Info("session restored", zap.String("email", sess.Email))
	}
	return nil
}

func (s *service) Signup(ctx context.Context, input SignupInput) (string, *Session, error) {
	log := logger.FromCtx(ctx)

	if errs := validateSignup(input); len(errs) > 0 {
		return "", nil, errs
	}

	existing, err := s.repo.FindByEmail(ctx, input.Email)
	if err != nil {
		log.Error("failed to look up account", zap.Error(err))
		return "", nil, err
	}
	if existing != nil {
		return "", nil, ErrEmailExists
	}

	hashed, err := HashPassword(input.Password)
	if err != nil {
		log.Error("failed to hash password", zap.Error(err))
		return "", nil, err
	}

	u := User{Name: input.Name, Email: input.Email, PasswordHash: hashed}
	if err := s.repo.Create(ctx, u); err != nil {
		log.Error("failed to create account", zap.String("email", input.Email), zap.Error(err))
		return "", nil, err
	}

	log.Info("account created", zap.String("email", input.Email))

	return s.establish(ctx, u)
}

func (s *service) Login(ctx context.Context, email, password string) (string, *Session, error) {
	log := logger.FromCtx(ctx)

	if errs := validateLogin(email, password); len(errs) > 0 {
		return "", nil, errs
	}

	u, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		log.Error("failed to look up account", zap.Error(err))
		return "", nil, err
	}
	if u == nil || !CheckPasswordHash(password, u.PasswordHash) {
		return "", nil, ErrInvalidCredentials
	}

	log.Info("login succeeded", zap.String("email", email))

	return s.establish(ctx, *u)
}

// establish sets the current session, mirrors it to the store, and
// issues a bearer token for the HTTP surface.
func (s *service) establish(ctx context.Context, u User) (string, *Session, error) {
	sess := Session{Name: u.Name, Email: u.Email}

	s.mu.Lock()
	s.current = &sess
	s.mu.Unlock()

	if err := s.sessionRepo.Put(ctx, sess); err != nil {
		logger.FromCtx(ctx).Warn("failed to persist session", zap.Error(err))
	}

	token, err := GenerateJWT(s.jwtSecret, u.Name, u.Email)
	if err != nil {
		return "", nil, err
	}
	return token, &sess, nil
}

func (s *service) Logout(ctx context.Context) error {
	s.mu.Lock()
	s.current = nil
	s.mu.Unlock()

	return s.sessionRepo.Delete(ctx)
}

func (s *service) Current(ctx context.Context) *Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == nil {
		return nil
	}
	sess := *s.current
	return &sess
}

func (s *service) Verify(tokenStr string) (*Session, error) {
	claims, err := ParseJWT(s.jwtSecret, tokenStr)
	if err != nil {
		return nil, err
	}
	return &Session{Name: claims.Name, Email: claims.Email}, nil
}

func validateSignup(input SignupInput) validate.FieldErrors {
	errs := validate.FieldErrors{}

	if validate.Blank(input.Name) {
		errs["name"] = "Name is required"
	}
	if validate.Blank(input.Email) {
		errs["email"] = "Email is required"
	} else if !validate.Email(input.Email) {
		errs["email"] = "Please enter a valid email address"
	}
	if input.Password == "" {
		errs["password"] = "Password is required"
	} else if len(input.Password) < 6 {
		errs["password"] = "Password must be at least 6 characters"
	}
	if input.ConfirmPassword == "" {
		errs["confirmPassword"] = "Please confirm your password"
	} else if input.ConfirmPassword != input.Password {
		errs["confirmPassword"] = "Passwords do not match"
	}

	return errs
}

func validateLogin(email, password string) validate.FieldErrors {
	errs := validate.FieldErrors{}

	if validate.Blank(email) {
		errs["email"] = "Email is required"
	} else if !validate.Email(email) {
		errs["email"] = "Please enter a valid email address"
	}
	if password == "" {
		errs["password"] = "Password is required"
	} else if len(password) < 6 {
		errs["password"] = "Password must be at least 6 characters"
	}

	return errs
}

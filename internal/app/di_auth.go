package app

import (
	"fmt"

	authHTTP "github.com/allisson/moviecatalog/internal/auth/http"
	authService "github.com/allisson/moviecatalog/internal/auth/service"
	authUseCase "github.com/allisson/moviecatalog/internal/auth/usecase"
	userHTTP "github.com/allisson/moviecatalog/internal/user/http"
	userRepository "github.com/allisson/moviecatalog/internal/user/repository"
	userUseCase "github.com/allisson/moviecatalog/internal/user/usecase"
)

// PasswordHasher returns the PBKDF2 password hasher.
func (c *Container) PasswordHasher() *authService.PasswordHasher {
	c.passwordHasherInit.Do(func() {
		c.passwordHasher = authService.NewPasswordHasher(
			c.config.AuthPasswordSalt,
			c.config.AuthPasswordIterations,
		)
	})
	return c.passwordHasher
}

// TokenCodec returns the HS256 token codec. An empty AUTH_SECRET is an init error.
func (c *Container) TokenCodec() (*authService.TokenCodec, error) {
	c.tokenCodecInit.Do(func() {
		if c.config.AuthSecret == "" {
			c.initErrors["tokenCodec"] = authService.ErrEmptySecret
			return
		}
		c.tokenCodec = authService.NewTokenCodec(c.config.AuthSecret)
	})
	if storedErr, exists := c.initErrors["tokenCodec"]; exists {
		return nil, storedErr
	}
	return c.tokenCodec, nil
}

// UserRepository returns the user repository based on database driver.
func (c *Container) UserRepository() (userUseCase.UserRepository, error) {
	var err error
	c.userRepositoryInit.Do(func() {
		c.userRepository, err = c.initUserRepository()
		if err != nil {
			c.initErrors["userRepository"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["userRepository"]; exists {
		return nil, storedErr
	}
	return c.userRepository, nil
}

// UserUseCase returns the user use case.
func (c *Container) UserUseCase() (userUseCase.UseCase, error) {
	var err error
	c.userUseCaseInit.Do(func() {
		c.userUseCase, err = c.initUserUseCase()
		if err != nil {
			c.initErrors["userUseCase"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["userUseCase"]; exists {
		return nil, storedErr
	}
	return c.userUseCase, nil
}

// UserHandler returns the user HTTP handler.
func (c *Container) UserHandler() (*userHTTP.UserHandler, error) {
	var err error
	c.userHandlerInit.Do(func() {
		c.userHandler, err = c.initUserHandler()
		if err != nil {
			c.initErrors["userHandler"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["userHandler"]; exists {
		return nil, storedErr
	}
	return c.userHandler, nil
}

// AuthUseCase returns the login and refresh use case.
func (c *Container) AuthUseCase() (authUseCase.AuthUseCase, error) {
	var err error
	c.authUseCaseInit.Do(func() {
		c.authUseCase, err = c.initAuthUseCase()
		if err != nil {
			c.initErrors["authUseCase"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["authUseCase"]; exists {
		return nil, storedErr
	}
	return c.authUseCase, nil
}

// AuthHandler returns the auth HTTP handler.
func (c *Container) AuthHandler() (*authHTTP.AuthHandler, error) {
	var err error
	c.authHandlerInit.Do(func() {
		c.authHandler, err = c.initAuthHandler()
		if err != nil {
			c.initErrors["authHandler"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["authHandler"]; exists {
		return nil, storedErr
	}
	return c.authHandler, nil
}

// initUserRepository creates the user repository based on the database driver.
func (c *Container) initUserRepository() (userUseCase.UserRepository, error) {
	db, err := c.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database for user repository: %w", err)
	}

	postgres, err := c.usesPostgres()
	if err != nil {
		return nil, err
	}
	if postgres {
		return userRepository.NewPostgreSQLUserRepository(db), nil
	}
	return userRepository.NewMySQLUserRepository(db), nil
}

// initUserUseCase creates the user use case with all its dependencies.
func (c *Container) initUserUseCase() (userUseCase.UseCase, error) {
	txManager, err := c.TxManager()
	if err != nil {
		return nil, fmt.Errorf("failed to get tx manager for user use case: %w", err)
	}

	repo, err := c.UserRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get user repository for user use case: %w", err)
	}

	baseUseCase := userUseCase.NewUserUseCase(txManager, repo, c.PasswordHasher())

	if c.config.MetricsEnabled {
		businessMetrics, err := c.BusinessMetrics()
		if err != nil {
			return nil, fmt.Errorf("failed to get business metrics for user use case: %w", err)
		}
		return userUseCase.NewUserUseCaseWithMetrics(baseUseCase, businessMetrics), nil
	}

	return baseUseCase, nil
}

func (c *Container) initUserHandler() (*userHTTP.UserHandler, error) {
	useCase, err := c.UserUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get user use case for user handler: %w", err)
	}
	return userHTTP.NewUserHandler(useCase, c.Logger()), nil
}

// initAuthUseCase creates the auth use case. Users are looked up through the
// user use case so lookups share its metrics.
func (c *Container) initAuthUseCase() (authUseCase.AuthUseCase, error) {
	users, err := c.UserUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get user use case for auth use case: %w", err)
	}

	codec, err := c.TokenCodec()
	if err != nil {
		return nil, fmt.Errorf("failed to get token codec for auth use case: %w", err)
	}

	baseUseCase := authUseCase.NewAuthUseCase(
		users,
		c.PasswordHasher(),
		codec,
		c.config.AuthAccessTokenTTL,
		c.config.AuthRefreshTokenTTL,
	)

	if c.config.MetricsEnabled {
		businessMetrics, err := c.BusinessMetrics()
		if err != nil {
			return nil, fmt.Errorf("failed to get business metrics for auth use case: %w", err)
		}
		return authUseCase.NewAuthUseCaseWithMetrics(baseUseCase, businessMetrics), nil
	}

	return baseUseCase, nil
}

func (c *Container) initAuthHandler() (*authHTTP.AuthHandler, error) {
	useCase, err := c.AuthUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get auth use case for auth handler: %w", err)
	}
	return authHTTP.NewAuthHandler(useCase, c.Logger()), nil
}

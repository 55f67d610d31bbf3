package commands

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	apperrors "github.com/allisson/moviecatalog/internal/errors"
	userDomain "github.com/allisson/moviecatalog/internal/user/domain"
	userUseCase "github.com/allisson/moviecatalog/internal/user/usecase"
)

type createAdminOutput struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Action   string `json:"action"`
}

// RunCreateAdmin creates an admin account, or promotes an existing user to admin
// and resets its password. This is the only way to obtain the first admin, since
// registering with role "admin" already requires an admin token.
func RunCreateAdmin(
	ctx context.Context,
	users userUseCase.UseCase,
	logger *slog.Logger,
	username string,
	password string,
	format string,
	io IOTuple,
) error {
	if err := validateFormat(format); err != nil {
		return err
	}
	if username == "" || password == "" {
		return errors.New("username and password are required")
	}

	admin := userDomain.RoleAdmin
	output := createAdminOutput{Username: username}

	existing, err := users.GetByUsername(ctx, username)
	switch {
	case err == nil:
		if err := users.Update(ctx, existing.ID, userUseCase.UpdateUserInput{
			Password: &password,
			Role:     &admin,
		}); err != nil {
			return fmt.Errorf("failed to promote user: %w", err)
		}
		output.ID = existing.ID
		output.Action = "promoted"
	case apperrors.Is(err, apperrors.ErrNotFound):
		created, err := users.Create(ctx, userUseCase.CreateUserInput{
			Username: username,
			Password: password,
			Role:     admin,
		})
		if err != nil {
			return fmt.Errorf("failed to create admin: %w", err)
		}
		output.ID = created.ID
		output.Action = "created"
	default:
		return fmt.Errorf("failed to look up user: %w", err)
	}

	logger.Info("admin user ready",
		slog.Int64("id", output.ID),
		slog.String("username", output.Username),
		slog.String("action", output.Action),
	)

	if format == "json" {
		return json.NewEncoder(io.Writer).Encode(output)
	}

	_, err = fmt.Fprintf(io.Writer, "Admin %s (id %d) %s\n", output.Username, output.ID, output.Action)
	return err
}

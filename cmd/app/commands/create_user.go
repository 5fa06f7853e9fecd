package commands

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	userDomain "github.com/poketrade/pokecards/internal/user/domain"
	userUseCase "github.com/poketrade/pokecards/internal/user/usecase"
)

// RunCreateUser registers a new user account from the command line.
// Supports both interactive mode (when email or password is empty) and
// non-interactive mode. Outputs the user ID and first session token in either
// text or JSON format.
//
// Requirements: Database must be migrated and accessible.
func RunCreateUser(
	ctx context.Context,
	useCase userUseCase.UserUseCase,
	logger *slog.Logger,
	email string,
	password string,
	format string,
	io IOTuple,
) error {
	var err error

	if email == "" || password == "" {
		// Interactive mode
		email, password, err = promptForCredentials(io, email, password)
		if err != nil {
			return fmt.Errorf("failed to get credentials: %w", err)
		}
	}

	logger.Info("creating new user", slog.String("email", email))

	input := &userDomain.RegisterInput{
		Email:    email,
		Password: password,
	}

	output, err := useCase.Register(ctx, input)
	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}

	// Output result based on format
	if format == "json" {
		outputUserJSON(output, io.Writer)
	} else {
		outputUserText(output, io.Writer)
	}

	logger.Info("user created successfully",
		slog.String("user_id", output.User.ID.String()),
		slog.String("email", output.User.Email),
	)

	return nil
}

// promptForCredentials interactively prompts for the missing credentials.
func promptForCredentials(io IOTuple, email, password string) (string, string, error) {
	reader := bufio.NewReader(io.Reader)
	writer := io.Writer

	if email == "" {
		_, _ = fmt.Fprint(writer, "Enter email: ")
		line, err := reader.ReadString('\n')
		if err != nil {
			return "", "", fmt.Errorf("failed to read email: %w", err)
		}
		email = strings.TrimSpace(line)
	}

	if email == "" {
		return "", "", fmt.Errorf("email cannot be empty")
	}

	if password == "" {
		_, _ = fmt.Fprint(writer, "Enter password: ")
		line, err := reader.ReadString('\n')
		if err != nil {
			return "", "", fmt.Errorf("failed to read password: %w", err)
		}
		password = strings.TrimSpace(line)
	}

	if password == "" {
		return "", "", fmt.Errorf("password cannot be empty")
	}

	return email, password, nil
}

// outputUserText outputs the result in human-readable text format.
func outputUserText(output *userDomain.RegisterOutput, writer io.Writer) {
	_, _ = fmt.Fprintln(writer, "\nUser created successfully!")
	_, _ = fmt.Fprintf(writer, "User ID: %s\n", output.User.ID.String())
	_, _ = fmt.Fprintf(writer, "Email: %s\n", output.User.Email)
	_, _ = fmt.Fprintf(writer, "Token: %s\n", output.Token)
	_, _ = fmt.Fprintf(writer, "Token expires at: %s\n", output.TokenExpiresAt.Format("2006-01-02 15:04:05 MST"))
}

// outputUserJSON outputs the result in JSON format for machine consumption.
func outputUserJSON(output *userDomain.RegisterOutput, writer io.Writer) {
	result := map[string]string{
		"user_id":          output.User.ID.String(),
		"email":            output.User.Email,
		"token":            output.Token,
		"token_expires_at": output.TokenExpiresAt.Format("2006-01-02T15:04:05Z07:00"),
	}

	jsonBytes, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "failed to marshal JSON: %v\n", err)
		return
	}

	_, _ = fmt.Fprintln(writer, string(jsonBytes))
}

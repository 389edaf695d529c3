// Package main provides a command that creates an administrator account.
package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/term"

	"github.com/trackify/backend/config"
	"github.com/trackify/backend/internal/application/usecase/auth"
	"github.com/trackify/backend/internal/application/usecase/category"
	"github.com/trackify/backend/internal/infra/db"
	"github.com/trackify/backend/internal/integration/adapters"
	"github.com/trackify/backend/internal/integration/persistence"
	"github.com/trackify/backend/internal/integration/persistence/model"
)

func main() {
	_ = godotenv.Load()

	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	cfg := config.Load()

	fs := flag.NewFlagSet("admin", flag.ContinueOnError)
	fs.SetOutput(stderr)

	email := fs.String("email", "", "Administrator email")
	name := fs.String("name", "Administrator", "Display name")
	passwordFlag := fs.String("password", "", "Password (optional, will prompt if omitted)")
	driver := fs.String("driver", cfg.Database.Driver, "Database driver (postgres or sqlite)")
	dsn := fs.String("db", cfg.Database.URL, "Database URL or sqlite file path")

	if err := fs.Parse(args); err != nil {
		return err
	}

	if *email == "" {
		fmt.Fprintln(stdout, "Usage: admin -email <email> [-name <name>] [-password <password>] [-driver <driver>] [-db <url>]")
		fs.PrintDefaults()
		return fmt.Errorf("missing required flags: email")
	}

	password := *passwordFlag
	if password == "" {
		fmt.Fprint(stdout, "Password: ")
		var err error
		password, err = readPassword(stdin)
		if err != nil {
			return fmt.Errorf("failed to read password: %w", err)
		}
		fmt.Fprintln(stdout)
	}

	if strings.TrimSpace(password) == "" {
		return fmt.Errorf("password cannot be empty")
	}

	dbCfg := cfg.Database
	dbCfg.Driver = *driver
	dbCfg.URL = *dsn

	database, err := db.NewConnection(&dbCfg)
	if err != nil {
		return err
	}
	defer database.Close()

	if err := database.AutoMigrate(model.AllModels()...); err != nil {
		return err
	}

	accountRepo := persistence.NewAccountRepository(database.DB())
	categoryRepo := persistence.NewCategoryRepository(database.DB())
	ensureAdmin := auth.NewEnsureAdminUseCase(
		accountRepo,
		adapters.NewPasswordService(cfg.Auth.BcryptCost),
		category.NewEnsureDefaultCategoriesUseCase(categoryRepo),
	)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	output, err := ensureAdmin.Execute(ctx, auth.EnsureAdminInput{
		Name:     *name,
		Email:    *email,
		Password: password,
	})
	if err != nil {
		return err
	}

	if !output.Created {
		return fmt.Errorf("account %s already exists", output.Account.Email)
	}

	fmt.Fprintf(stdout, "Administrator %s created with ID %s\n", output.Account.Email, output.Account.ID)
	return nil
}

func readPassword(stdin io.Reader) (string, error) {
	if f, ok := stdin.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		bytePassword, err := term.ReadPassword(int(f.Fd()))
		if err != nil {
			return "", err
		}
		return string(bytePassword), nil
	}

	// Fallback for pipes and tests
	scanner := bufio.NewScanner(stdin)
	if scanner.Scan() {
		return scanner.Text(), nil
	}
	if err := scanner.Err(); err != nil {
		return "", err
	}
	return "", io.EOF
}

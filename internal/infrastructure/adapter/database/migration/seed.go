package migration

import (
	"context"
	"errors"

	errs "github.com/bazaarhq/marketplace/internal/domain/error"
	coreport "github.com/bazaarhq/marketplace/internal/domain/port/core"
	authUseCase "github.com/bazaarhq/marketplace/internal/domain/usecase/auth"
	itemUseCase "github.com/bazaarhq/marketplace/internal/domain/usecase/item"
	walletUseCase "github.com/bazaarhq/marketplace/internal/domain/usecase/wallet"
)

// demoUser seeds a development account with a starting balance and listings
type demoUser struct {
	username string
	email    string
	password string
	balance  string
	items    []itemUseCase.CreateRequest
}

var demoUsers = []demoUser{
	{
		username: "alice",
		email:    "alice@example.com",
		password: "password123",
		balance:  "500.00",
		items: []itemUseCase.CreateRequest{
			{Name: "Vintage Camera", Description: "35mm film camera, fully working", Category: "Electronics", Price: "120.00", Quantity: 1},
			{Name: "Mechanical Keyboard", Description: "Tenkeyless, brown switches", Category: "Electronics", Price: "75.50", Quantity: 3},
		},
	},
	{
		username: "bob",
		email:    "bob@example.com",
		password: "password123",
		balance:  "250.00",
		items: []itemUseCase.CreateRequest{
			{Name: "Hiking Backpack", Description: "45L, barely used", Category: "Outdoors", Price: "60.00", Quantity: 2},
		},
	},
	{
		username: "carol",
		email:    "carol@example.com",
		password: "password123",
		balance:  "100.00",
	},
}

// SeedDemoData creates demo accounts, balances and listings for development
// environments. Existing accounts are left untouched.
func SeedDemoData(
	ctx context.Context,
	authService *authUseCase.Service,
	walletService *walletUseCase.Service,
	itemManager *itemUseCase.Manager,
	logger coreport.Logger,
) error {
	for _, demo := range demoUsers {
		user, err := authService.Register(ctx, demo.username, demo.email, demo.password)
		if err != nil {
			if errors.Is(err, errs.ErrDuplicateUser) {
				continue
			}
			return err
		}

		if demo.balance != "" {
			if _, err := walletService.Deposit(ctx, user.ID, demo.balance); err != nil {
				return err
			}
		}

		for _, req := range demo.items {
			if _, err := itemManager.Create(ctx, user.ID, req); err != nil {
				return err
			}
		}

		logger.Info("Seeded demo user", map[string]any{
			"username": demo.username,
			"items":    len(demo.items),
		})
	}

	return nil
}

// Package seeder loads a small demo roster so a local registry has data to
// poke at: a handful of banks with voting rights and a few customers in
// different verification states.
package seeder

import (
	"context"
	"fmt"
	"log/slog"

	"kycnet/internal/registry/models"
)

// Registrar is the subset of the bank lifecycle the seeder drives.
type Registrar interface {
	AddBank(ctx context.Context, caller, name, identity, regNumber string) (*models.Bank, error)
	SetVotingEligibility(ctx context.Context, caller, identity string, eligible bool) (*models.Bank, error)
}

// Engine is the subset of the verification engine the seeder drives.
type Engine interface {
	RegisterCustomer(ctx context.Context, caller, userName, data string) (*models.Customer, error)
	Upvote(ctx context.Context, caller, userName string) (*models.Customer, error)
	FileRequest(ctx context.Context, caller, userName, data string) (*models.KycRequest, error)
}

type bankSeed struct {
	identity  string
	name      string
	regNumber string
}

var demoBanks = []bankSeed{
	{identity: "hsbk", name: "Halyk Savings Bank", regNumber: "KZ-0001"},
	{identity: "kaspi", name: "Kaspi Bank", regNumber: "KZ-0002"},
	{identity: "forte", name: "ForteBank", regNumber: "KZ-0003"},
	{identity: "jusan", name: "Jusan Bank", regNumber: "KZ-0004"},
}

// Seed onboards the demo banks and customers through the same service paths
// production callers use, so seeded state obeys every registry rule.
func Seed(ctx context.Context, admin string, registrar Registrar, engine Engine, logger *slog.Logger) error {
	for _, b := range demoBanks {
		if _, err := registrar.AddBank(ctx, admin, b.name, b.identity, b.regNumber); err != nil {
			return fmt.Errorf("seed bank %s: %w", b.identity, err)
		}
		if _, err := registrar.SetVotingEligibility(ctx, admin, b.identity, true); err != nil {
			return fmt.Errorf("seed eligibility %s: %w", b.identity, err)
		}
	}

	if _, err := engine.RegisterCustomer(ctx, "hsbk", "alice", "passport:KZ1234567"); err != nil {
		return fmt.Errorf("seed customer alice: %w", err)
	}
	if _, err := engine.Upvote(ctx, "kaspi", "alice"); err != nil {
		return fmt.Errorf("seed upvote alice: %w", err)
	}
	if _, err := engine.Upvote(ctx, "forte", "alice"); err != nil {
		return fmt.Errorf("seed upvote alice: %w", err)
	}

	if _, err := engine.RegisterCustomer(ctx, "kaspi", "bob", "id-card:KZ7654321"); err != nil {
		return fmt.Errorf("seed customer bob: %w", err)
	}

	if _, err := engine.FileRequest(ctx, "jusan", "carol", "passport:KZ1111111"); err != nil {
		return fmt.Errorf("seed request carol: %w", err)
	}

	logger.InfoContext(ctx, "demo data seeded",
		"banks", len(demoBanks),
		"customers", 2,
		"pending_requests", 1,
	)
	return nil
}

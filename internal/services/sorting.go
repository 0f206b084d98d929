package services

import (
	"context"
	"fmt"

	"magicalc/internal/common"
	"magicalc/internal/logging"
	"magicalc/internal/models"
	"magicalc/internal/storage"
)

// SortingBonus is the one-time magic-point grant for going through the
// sorting ceremony.
const SortingBonus = 50

// SortingResult is the outcome of a sorting ceremony.
type SortingResult struct {
	House   models.House
	Info    HouseInfo
	Message string
}

// SortingService performs the one-time, irreversible house assignment.
type SortingService interface {
	// Sort assigns the account a house chosen uniformly at random, marks
	// it sorted, grants the sorting bonus, and returns the chosen house
	// with a flavor message. A second call fails with
	// common.ErrAlreadySorted and mutates nothing.
	Sort(ctx context.Context, username string) (SortingResult, error)
}

type sortingService struct {
	store *storage.AccountStore
	intn  func(n int) int
	log   logging.Logger
}

// NewSortingService wires the sorting state machine. intn must return a
// uniform value in [0, n); injecting it keeps ceremony outcomes seedable.
func NewSortingService(store *storage.AccountStore, intn func(n int) int, log logging.Logger) SortingService {
	return &sortingService{store: store, intn: intn, log: log}
}

func (s *sortingService) Sort(ctx context.Context, username string) (SortingResult, error) {
	house := models.Houses[s.intn(len(models.Houses))]
	messages := houseMessages[house]
	message := messages[s.intn(len(messages))]

	err := s.store.Update(ctx, func(accounts map[string]models.Account) error {
		acc, ok := accounts[username]
		if !ok {
			return fmt.Errorf("account %q: %w", username, common.ErrNotFound)
		}
		if acc.HasBeenSorted {
			return common.ErrAlreadySorted
		}

		acc.House = house
		acc.HasBeenSorted = true
		creditPoints(&acc, SortingBonus)
		accounts[username] = acc
		return nil
	})
	if err != nil {
		return SortingResult{}, err
	}

	s.log.Info(ctx, "user sorted", "username", username, "house", house)
	return SortingResult{House: house, Info: houseCatalog[house], Message: message}, nil
}

// Package localstore is the blob-file record store. Each collection lives in
// one JSON file under the store directory; every mutation rewrites the whole
// file. A single mutex serializes mutations, so each operation observes and
// produces a consistent snapshot without database transactions.
package localstore

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/smartcedi/cedis-tracker/internal/apperrors"
	portsrepo "github.com/smartcedi/cedis-tracker/internal/core/ports/repositories"
)

const (
	transactionsFile = "transactions.json"
	budgetsFile      = "budgets.json"
	savingsGoalsFile = "savings_goals.json"
	loansFile        = "loans.json"
	usersFile        = "users.json"
)

// Store owns the blob directory and the mutation lock shared by all
// collection repositories.
type Store struct {
	dir string
	mu  sync.Mutex
}

// NewStore opens (creating if needed) a blob store rooted at dir.
func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("%w: failed to create store directory %s: %v", apperrors.ErrStorage, dir, err)
	}
	return &Store{dir: dir}, nil
}

// NewRepositoryProvider wires all blob-backed repositories over one store.
func NewRepositoryProvider(store *Store) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		TransactionRepo: &TransactionRepository{store: store},
		BudgetRepo:      &BudgetRepository{store: store},
		SavingsRepo:     &SavingsRepository{store: store},
		LoanRepo:        &LoanRepository{store: store},
		UserRepo:        &UserRepository{store: store},
	}
}

// readCollection decodes a collection blob. A missing or unreadable blob
// yields the empty collection so the app keeps operating on fresh or
// corrupted state instead of failing to start.
func readCollection[T any](s *Store, file string) []T {
	data, err := os.ReadFile(filepath.Join(s.dir, file))
	if err != nil {
		return []T{}
	}
	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		return []T{}
	}
	if items == nil {
		return []T{}
	}
	return items
}

// writeCollection rewrites a collection blob. Failures surface as ErrStorage;
// the in-memory view the caller built is not rolled back.
func writeCollection[T any](s *Store, file string, items []T) error {
	data, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: failed to encode %s: %v", apperrors.ErrStorage, file, err)
	}
	if err := os.WriteFile(filepath.Join(s.dir, file), data, 0o644); err != nil {
		return fmt.Errorf("%w: failed to write %s: %v", apperrors.ErrStorage, file, err)
	}
	return nil
}

// errNotFound narrows a lookup miss to the shared sentinel.
func errNotFound(kind, id string) error {
	return fmt.Errorf("%w: %s %s", apperrors.ErrNotFound, kind, id)
}

package infrastructure

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/oklog/ulid/v2"
	"gorm.io/gorm"

	"github.com/personalfinancemanagentdashboard/babu/internal/domain/bill"
	"github.com/personalfinancemanagentdashboard/babu/internal/domain/budget"
	"github.com/personalfinancemanagentdashboard/babu/internal/domain/goal"
	"github.com/personalfinancemanagentdashboard/babu/internal/domain/preferences"
	"github.com/personalfinancemanagentdashboard/babu/internal/domain/transaction"
	"github.com/personalfinancemanagentdashboard/babu/internal/domain/user"
	"github.com/personalfinancemanagentdashboard/babu/internal/pkg"
)

// In-memory repositories back the demo mode used when no DATABASE_URL is
// configured. They return gorm.ErrRecordNotFound for missing rows so the
// services behave identically on both storage backends. Data does not survive
// a restart.

type MemoryUserRepository struct {
	mu    sync.RWMutex
	users map[string]user.User
}

var _ user.Repository = (*MemoryUserRepository)(nil)

func NewMemoryUserRepository() *MemoryUserRepository {
	return &MemoryUserRepository{users: make(map[string]user.User)}
}

func (r *MemoryUserRepository) Create(ctx context.Context, u *user.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.users[u.Id.String()] = *u
	return nil
}

func (r *MemoryUserRepository) Update(ctx context.Context, u *user.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[u.Id.String()]; !ok {
		return gorm.ErrRecordNotFound
	}
	r.users[u.Id.String()] = *u
	return nil
}

func (r *MemoryUserRepository) GetByID(ctx context.Context, id ulid.ULID) (*user.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	u, ok := r.users[id.String()]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &u, nil
}

func (r *MemoryUserRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, u := range r.users {
		if strings.EqualFold(u.Email, email) {
			u := u
			return &u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

type MemoryTransactionRepository struct {
	mu           sync.RWMutex
	transactions map[string]transaction.Transaction
}

var _ transaction.Repository = (*MemoryTransactionRepository)(nil)

func NewMemoryTransactionRepository() *MemoryTransactionRepository {
	return &MemoryTransactionRepository{transactions: make(map[string]transaction.Transaction)}
}

func (r *MemoryTransactionRepository) Create(ctx context.Context, t *transaction.Transaction) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.transactions[t.Id.String()] = *t
	return nil
}

func (r *MemoryTransactionRepository) Update(ctx context.Context, t *transaction.Transaction) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.transactions[t.Id.String()]; !ok {
		return gorm.ErrRecordNotFound
	}
	r.transactions[t.Id.String()] = *t
	return nil
}

func (r *MemoryTransactionRepository) Delete(ctx context.Context, transactionID, userID ulid.ULID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.transactions[transactionID.String()]
	if !ok || t.UserId != userID {
		return gorm.ErrRecordNotFound
	}
	delete(r.transactions, transactionID.String())
	return nil
}

func (r *MemoryTransactionRepository) GetByIDAndUser(ctx context.Context, transactionID, userID ulid.ULID) (*transaction.Transaction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	t, ok := r.transactions[transactionID.String()]
	if !ok || t.UserId != userID {
		return nil, gorm.ErrRecordNotFound
	}
	return &t, nil
}

func (r *MemoryTransactionRepository) GetAllByUser(ctx context.Context, userID ulid.ULID) ([]*transaction.Transaction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.collect(userID, nil), nil
}

func (r *MemoryTransactionRepository) List(ctx context.Context, userID ulid.ULID, filters *transaction.Filters, pagination *pkg.PaginationParams) ([]*transaction.Transaction, int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	matched := r.collect(userID, filters)
	total := int64(len(matched))

	pagination = pkg.NormalizePagination(pagination)
	start := pagination.Offset()
	if start >= len(matched) {
		return []*transaction.Transaction{}, total, nil
	}
	end := start + pagination.Limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[start:end], total, nil
}

func (r *MemoryTransactionRepository) BulkCreate(ctx context.Context, transactions []*transaction.Transaction) (int, int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	seen := make(map[string]bool)
	for _, t := range r.transactions {
		if t.ExternalId != "" {
			seen[t.UserId.String()+"|"+t.ExternalId] = true
		}
	}

	created, skipped := 0, 0
	for _, t := range transactions {
		if t.ExternalId != "" {
			key := t.UserId.String() + "|" + t.ExternalId
			if seen[key] {
				skipped++
				continue
			}
			seen[key] = true
		}
		r.transactions[t.Id.String()] = *t
		created++
	}
	return created, skipped, nil
}

// collect returns the user's transactions matching filters, newest first.
// Callers must hold the read lock.
func (r *MemoryTransactionRepository) collect(userID ulid.ULID, filters *transaction.Filters) []*transaction.Transaction {
	out := make([]*transaction.Transaction, 0)
	for _, t := range r.transactions {
		if t.UserId != userID {
			continue
		}
		if filters != nil {
			if filters.Month != "" && t.Date.Format(budget.MonthLayout) != filters.Month {
				continue
			}
			if filters.Category != "" && t.Category != filters.Category {
				continue
			}
			if filters.Type != "" && t.Type != filters.Type {
				continue
			}
		}
		t := t
		out = append(out, &t)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Date.Equal(out[j].Date) {
			return out[i].Date.After(out[j].Date)
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}

type MemoryBudgetRepository struct {
	mu      sync.RWMutex
	budgets map[string]budget.Budget
}

var _ budget.Repository = (*MemoryBudgetRepository)(nil)

func NewMemoryBudgetRepository() *MemoryBudgetRepository {
	return &MemoryBudgetRepository{budgets: make(map[string]budget.Budget)}
}

func (r *MemoryBudgetRepository) Create(ctx context.Context, b *budget.Budget) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.budgets[b.Id.String()] = *b
	return nil
}

func (r *MemoryBudgetRepository) Update(ctx context.Context, b *budget.Budget) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.budgets[b.Id.String()]; !ok {
		return gorm.ErrRecordNotFound
	}
	r.budgets[b.Id.String()] = *b
	return nil
}

func (r *MemoryBudgetRepository) Delete(ctx context.Context, budgetID, userID ulid.ULID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.budgets[budgetID.String()]
	if !ok || b.UserId != userID {
		return gorm.ErrRecordNotFound
	}
	delete(r.budgets, budgetID.String())
	return nil
}

func (r *MemoryBudgetRepository) GetByIDAndUser(ctx context.Context, budgetID, userID ulid.ULID) (*budget.Budget, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	b, ok := r.budgets[budgetID.String()]
	if !ok || b.UserId != userID {
		return nil, gorm.ErrRecordNotFound
	}
	return &b, nil
}

func (r *MemoryBudgetRepository) GetAllByUser(ctx context.Context, userID ulid.ULID) ([]*budget.Budget, error) {
	return r.filter(userID, ""), nil
}

func (r *MemoryBudgetRepository) GetByUserAndMonth(ctx context.Context, userID ulid.ULID, month string) ([]*budget.Budget, error) {
	return r.filter(userID, month), nil
}

func (r *MemoryBudgetRepository) filter(userID ulid.ULID, month string) []*budget.Budget {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*budget.Budget, 0)
	for _, b := range r.budgets {
		if b.UserId != userID {
			continue
		}
		if month != "" && b.Month != month {
			continue
		}
		b := b
		out = append(out, &b)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Month != out[j].Month {
			return out[i].Month > out[j].Month
		}
		return out[i].Category < out[j].Category
	})
	return out
}

type MemoryGoalRepository struct {
	mu    sync.RWMutex
	goals map[string]goal.Goal
}

var _ goal.Repository = (*MemoryGoalRepository)(nil)

func NewMemoryGoalRepository() *MemoryGoalRepository {
	return &MemoryGoalRepository{goals: make(map[string]goal.Goal)}
}

func (r *MemoryGoalRepository) Create(ctx context.Context, g *goal.Goal) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.goals[g.Id.String()] = *g
	return nil
}

func (r *MemoryGoalRepository) Update(ctx context.Context, g *goal.Goal) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.goals[g.Id.String()]; !ok {
		return gorm.ErrRecordNotFound
	}
	r.goals[g.Id.String()] = *g
	return nil
}

func (r *MemoryGoalRepository) Delete(ctx context.Context, goalID, userID ulid.ULID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	g, ok := r.goals[goalID.String()]
	if !ok || g.UserId != userID {
		return gorm.ErrRecordNotFound
	}
	delete(r.goals, goalID.String())
	return nil
}

func (r *MemoryGoalRepository) GetByIDAndUser(ctx context.Context, goalID, userID ulid.ULID) (*goal.Goal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	g, ok := r.goals[goalID.String()]
	if !ok || g.UserId != userID {
		return nil, gorm.ErrRecordNotFound
	}
	return &g, nil
}

func (r *MemoryGoalRepository) GetAllByUser(ctx context.Context, userID ulid.ULID) ([]*goal.Goal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*goal.Goal, 0)
	for _, g := range r.goals {
		if g.UserId != userID {
			continue
		}
		g := g
		out = append(out, &g)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}

type MemoryBillRepository struct {
	mu    sync.RWMutex
	bills map[string]bill.Bill
}

var _ bill.Repository = (*MemoryBillRepository)(nil)

func NewMemoryBillRepository() *MemoryBillRepository {
	return &MemoryBillRepository{bills: make(map[string]bill.Bill)}
}

func (r *MemoryBillRepository) Create(ctx context.Context, b *bill.Bill) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.bills[b.Id.String()] = *b
	return nil
}

func (r *MemoryBillRepository) Update(ctx context.Context, b *bill.Bill) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.bills[b.Id.String()]; !ok {
		return gorm.ErrRecordNotFound
	}
	r.bills[b.Id.String()] = *b
	return nil
}

func (r *MemoryBillRepository) Delete(ctx context.Context, billID, userID ulid.ULID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.bills[billID.String()]
	if !ok || b.UserId != userID {
		return gorm.ErrRecordNotFound
	}
	delete(r.bills, billID.String())
	return nil
}

func (r *MemoryBillRepository) GetByIDAndUser(ctx context.Context, billID, userID ulid.ULID) (*bill.Bill, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	b, ok := r.bills[billID.String()]
	if !ok || b.UserId != userID {
		return nil, gorm.ErrRecordNotFound
	}
	return &b, nil
}

func (r *MemoryBillRepository) GetAllByUser(ctx context.Context, userID ulid.ULID) ([]*bill.Bill, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*bill.Bill, 0)
	for _, b := range r.bills {
		if b.UserId != userID {
			continue
		}
		b := b
		out = append(out, &b)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].DueDate.Before(out[j].DueDate)
	})
	return out, nil
}

type MemoryPreferenceRepository struct {
	mu    sync.RWMutex
	prefs map[string]preferences.Preference
}

var _ preferences.Repository = (*MemoryPreferenceRepository)(nil)

func NewMemoryPreferenceRepository() *MemoryPreferenceRepository {
	return &MemoryPreferenceRepository{prefs: make(map[string]preferences.Preference)}
}

func (r *MemoryPreferenceRepository) Get(ctx context.Context, userID ulid.ULID) (*preferences.Preference, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.prefs[userID.String()]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	p.CustomCategories = append([]string(nil), p.CustomCategories...)
	return &p, nil
}

func (r *MemoryPreferenceRepository) Upsert(ctx context.Context, p *preferences.Preference) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored := *p
	stored.CustomCategories = append([]string(nil), p.CustomCategories...)
	r.prefs[p.UserId.String()] = stored
	return nil
}

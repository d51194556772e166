package service

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/nutriblendai/nutriblend-backend/internal/domain"
	"github.com/nutriblendai/nutriblend-backend/internal/repository"
)

type fakeUserRepo struct {
	mu    sync.Mutex
	users map[string]*domain.User // keyed by ID
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*domain.User)}
}

func (r *fakeUserRepo) Create(_ context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.users {
		if u.Email == user.Email {
			return repository.ErrDuplicateEmail
		}
	}

	if user.ID == "" {
		user.ID = uuid.New().String()
	}
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt
	clone := *user
	r.users[user.ID] = &clone
	return nil
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.users {
		if u.Email == email {
			clone := *u
			return &clone, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *fakeUserRepo) GetByID(_ context.Context, id string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	clone := *u
	return &clone, nil
}

func (r *fakeUserRepo) UpdatePassword(_ context.Context, userID, passwordHash string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.users[userID]
	if !ok {
		return repository.ErrNotFound
	}
	u.PasswordHash = passwordHash
	u.UpdatedAt = time.Now()
	return nil
}

type fakeTokenRepo struct {
	mu     sync.Mutex
	tokens map[string]*domain.RefreshToken // keyed by token hash
}

func newFakeTokenRepo() *fakeTokenRepo {
	return &fakeTokenRepo{tokens: make(map[string]*domain.RefreshToken)}
}

func (r *fakeTokenRepo) Create(_ context.Context, token *domain.RefreshToken) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.tokens[token.TokenHash]; ok {
		return repository.ErrDuplicateToken
	}
	if token.ID == "" {
		token.ID = uuid.New().String()
	}
	clone := *token
	r.tokens[token.TokenHash] = &clone
	return nil
}

func (r *fakeTokenRepo) Consume(_ context.Context, tokenHash string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	tok, ok := r.tokens[tokenHash]
	if !ok || tok.ExpiresAt.Before(time.Now()) {
		return repository.ErrNotFound
	}
	delete(r.tokens, tokenHash)
	return nil
}

func (r *fakeTokenRepo) Delete(_ context.Context, tokenHash string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.tokens, tokenHash)
	return nil
}

func (r *fakeTokenRepo) DeleteExpired(_ context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for hash, tok := range r.tokens {
		if tok.ExpiresAt.Before(time.Now()) {
			delete(r.tokens, hash)
		}
	}
	return nil
}

func (r *fakeTokenRepo) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.tokens)
}

type fakeBlacklist struct {
	mu     sync.Mutex
	tokens map[string]bool
}

func newFakeBlacklist() *fakeBlacklist {
	return &fakeBlacklist{tokens: make(map[string]bool)}
}

func (b *fakeBlacklist) AddToken(_ context.Context, token string, _ time.Duration) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.tokens[token] = true
	return nil
}

func (b *fakeBlacklist) IsTokenBlacklisted(_ context.Context, token string) (bool, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.tokens[token], nil
}

type fakeIntakeRepo struct {
	mu      sync.Mutex
	intakes []*domain.Intake
}

func newFakeIntakeRepo() *fakeIntakeRepo {
	return &fakeIntakeRepo{}
}

func (r *fakeIntakeRepo) Create(_ context.Context, intake *domain.Intake) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if intake.ID == "" {
		intake.ID = uuid.New().String()
	}
	if intake.CreatedAt.IsZero() {
		intake.CreatedAt = time.Now()
	}
	clone := *intake
	r.intakes = append(r.intakes, &clone)
	return nil
}

func (r *fakeIntakeRepo) List(_ context.Context, userID string, date *string) ([]*domain.Intake, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []*domain.Intake
	for _, in := range r.intakes {
		if in.UserID != userID {
			continue
		}
		if date != nil && in.Date != *date {
			continue
		}
		clone := *in
		out = append(out, &clone)
	}
	// newest first
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (r *fakeIntakeRepo) Stats(ctx context.Context, userID string, date *string) (*domain.IntakeStats, error) {
	intakes, err := r.List(ctx, userID, date)
	if err != nil {
		return nil, err
	}

	stats := &domain.IntakeStats{}
	for _, in := range intakes {
		stats.TotalMeals++
		stats.TotalCalories += in.Calories
	}
	return stats, nil
}

func (r *fakeIntakeRepo) SumByDate(_ context.Context, userID, from, to string) ([]domain.DailyMacroTotals, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	byDate := make(map[string]*domain.DailyMacroTotals)
	for _, in := range r.intakes {
		if in.UserID != userID || in.Date < from || in.Date > to {
			continue
		}
		agg, ok := byDate[in.Date]
		if !ok {
			agg = &domain.DailyMacroTotals{Date: in.Date}
			byDate[in.Date] = agg
		}
		agg.TotalCalories += in.Calories
		agg.TotalCarbs += in.Macros.Carbs
		agg.TotalProtein += in.Macros.Protein
		agg.TotalFats += in.Macros.Fats
	}

	var out []domain.DailyMacroTotals
	for _, agg := range byDate {
		out = append(out, *agg)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out, nil
}

func (r *fakeIntakeRepo) SumByMonth(_ context.Context, userID string, year int) ([]domain.MonthlyMacroTotals, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	prefix := fmt.Sprintf("%04d-", year)
	byMonth := make(map[string]*domain.MonthlyMacroTotals)
	for _, in := range r.intakes {
		if in.UserID != userID || !strings.HasPrefix(in.Date, prefix) {
			continue
		}
		month := in.Date[:7]
		agg, ok := byMonth[month]
		if !ok {
			agg = &domain.MonthlyMacroTotals{Month: month}
			byMonth[month] = agg
		}
		agg.TotalCalories += in.Calories
		agg.TotalCarbs += in.Macros.Carbs
		agg.TotalProtein += in.Macros.Protein
		agg.TotalFats += in.Macros.Fats
	}

	var out []domain.MonthlyMacroTotals
	for _, agg := range byMonth {
		out = append(out, *agg)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Month < out[j].Month })
	return out, nil
}

type fakeGoalRepo struct {
	mu    sync.Mutex
	goals map[string]*domain.Goal // active goal keyed by user ID
}

func newFakeGoalRepo() *fakeGoalRepo {
	return &fakeGoalRepo{goals: make(map[string]*domain.Goal)}
}

func (r *fakeGoalRepo) SetActive(_ context.Context, goal *domain.Goal) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if goal.ID == "" {
		goal.ID = uuid.New().String()
	}
	if goal.CreatedAt.IsZero() {
		goal.CreatedAt = time.Now()
	}
	goal.IsActive = true
	clone := *goal
	r.goals[goal.UserID] = &clone
	return nil
}

func (r *fakeGoalRepo) GetActive(_ context.Context, userID string) (*domain.Goal, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	goal, ok := r.goals[userID]
	if !ok {
		return nil, repository.ErrNotFound
	}
	clone := *goal
	return &clone, nil
}

type fakeWeightLogRepo struct {
	mu   sync.Mutex
	logs []*domain.WeightLog
}

func newFakeWeightLogRepo() *fakeWeightLogRepo {
	return &fakeWeightLogRepo{}
}

func (r *fakeWeightLogRepo) Create(_ context.Context, log *domain.WeightLog) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if log.ID == "" {
		log.ID = uuid.New().String()
	}
	if log.CreatedAt.IsZero() {
		log.CreatedAt = time.Now()
	}
	clone := *log
	r.logs = append(r.logs, &clone)
	return nil
}

func (r *fakeWeightLogRepo) ListRange(_ context.Context, userID, from, to string) ([]*domain.WeightLog, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []*domain.WeightLog
	for _, l := range r.logs {
		if l.UserID != userID || l.Date < from || l.Date > to {
			continue
		}
		clone := *l
		out = append(out, &clone)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out, nil
}

func (r *fakeWeightLogRepo) ListAll(_ context.Context, userID string) ([]*domain.WeightLog, error) {
	return r.ListRange(context.Background(), userID, "0000-00-00", "9999-99-99")
}

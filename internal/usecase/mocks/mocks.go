package mocks

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/accountability/internal/domain"
)

// MockCardioRepository is an in-memory CardioRepository. Set a Func
// field to override a single method.
type MockCardioRepository struct {
	mu          sync.RWMutex
	assignments map[string]*domain.CardioAssignment
	nextID      int

	CreateFunc            func(ctx context.Context, assignment *domain.CardioAssignment) error
	SetCompletedFunc      func(ctx context.Context, id string, completedOn time.Time) error
	SetMissedFunc         func(ctx context.Context, id string) error
	ListPendingFunc       func(ctx context.Context) ([]*domain.CardioAssignment, error)
	ListOverdueFunc       func(ctx context.Context, before time.Time) ([]*domain.CardioAssignment, error)
	ListAssignedSinceFunc func(ctx context.Context, since time.Time) ([]*domain.CardioAssignment, error)
}

func NewMockCardioRepository() *MockCardioRepository {
	return &MockCardioRepository{
		assignments: make(map[string]*domain.CardioAssignment),
	}
}

func (m *MockCardioRepository) Create(ctx context.Context, assignment *domain.CardioAssignment) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, assignment)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if assignment.ID == "" {
		m.nextID++
		assignment.ID = fmt.Sprintf("cardio-%d", m.nextID)
	}
	m.assignments[assignment.ID] = assignment
	return nil
}

func (m *MockCardioRepository) SetCompleted(ctx context.Context, id string, completedOn time.Time) error {
	if m.SetCompletedFunc != nil {
		return m.SetCompletedFunc(ctx, id, completedOn)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	a, ok := m.assignments[id]
	if !ok {
		return domain.ErrCardioNotFound
	}
	a.Status = domain.CardioCompleted
	a.DateCompleted = &completedOn
	return nil
}

func (m *MockCardioRepository) SetMissed(ctx context.Context, id string) error {
	if m.SetMissedFunc != nil {
		return m.SetMissedFunc(ctx, id)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	a, ok := m.assignments[id]
	if !ok {
		return domain.ErrCardioNotFound
	}
	a.Status = domain.CardioMissed
	return nil
}

func (m *MockCardioRepository) ListPending(ctx context.Context) ([]*domain.CardioAssignment, error) {
	if m.ListPendingFunc != nil {
		return m.ListPendingFunc(ctx)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []*domain.CardioAssignment
	for _, a := range m.assignments {
		if a.Status == domain.CardioPending {
			out = append(out, a)
		}
	}
	sortCardioByDate(out)
	return out, nil
}

func (m *MockCardioRepository) ListOverdue(ctx context.Context, before time.Time) ([]*domain.CardioAssignment, error) {
	if m.ListOverdueFunc != nil {
		return m.ListOverdueFunc(ctx, before)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []*domain.CardioAssignment
	for _, a := range m.assignments {
		if a.Status == domain.CardioPending && a.DateAssigned.Before(before) {
			out = append(out, a)
		}
	}
	sortCardioByDate(out)
	return out, nil
}

func (m *MockCardioRepository) ListAssignedSince(ctx context.Context, since time.Time) ([]*domain.CardioAssignment, error) {
	if m.ListAssignedSinceFunc != nil {
		return m.ListAssignedSinceFunc(ctx, since)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []*domain.CardioAssignment
	for _, a := range m.assignments {
		if !a.DateAssigned.Before(since) {
			out = append(out, a)
		}
	}
	sortCardioByDate(out)
	return out, nil
}

func (m *MockCardioRepository) Get(id string) *domain.CardioAssignment {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.assignments[id]
}

func sortCardioByDate(items []*domain.CardioAssignment) {
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].DateAssigned.Before(items[j].DateAssigned)
	})
}

// MockDebtRepository is an in-memory DebtRepository.
type MockDebtRepository struct {
	mu     sync.RWMutex
	debts  map[string]*domain.Debt
	nextID int

	CreateFunc              func(ctx context.Context, debt *domain.Debt) error
	GetByIDFunc             func(ctx context.Context, id string) (*domain.Debt, error)
	ListActiveFunc          func(ctx context.Context) ([]*domain.Debt, error)
	ListAssignedSinceFunc   func(ctx context.Context, since time.Time) ([]*domain.Debt, error)
	UpdateCurrentAmountFunc func(ctx context.Context, id string, amount decimal.Decimal) error
	MarkPaidFunc            func(ctx context.Context, id string, amount decimal.Decimal) error
}

func NewMockDebtRepository() *MockDebtRepository {
	return &MockDebtRepository{
		debts: make(map[string]*domain.Debt),
	}
}

func (m *MockDebtRepository) Create(ctx context.Context, debt *domain.Debt) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, debt)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if debt.ID == "" {
		m.nextID++
		debt.ID = fmt.Sprintf("debt-%d", m.nextID)
	}
	m.debts[debt.ID] = debt
	return nil
}

func (m *MockDebtRepository) GetByID(ctx context.Context, id string) (*domain.Debt, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if d, ok := m.debts[id]; ok {
		return d, nil
	}
	return nil, domain.ErrDebtNotFound
}

func (m *MockDebtRepository) ListActive(ctx context.Context) ([]*domain.Debt, error) {
	if m.ListActiveFunc != nil {
		return m.ListActiveFunc(ctx)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []*domain.Debt
	for _, d := range m.debts {
		if d.Status == domain.DebtActive {
			out = append(out, d)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].DateAssigned.Equal(out[j].DateAssigned) {
			return out[i].ID < out[j].ID
		}
		return out[i].DateAssigned.Before(out[j].DateAssigned)
	})
	return out, nil
}

func (m *MockDebtRepository) ListAssignedSince(ctx context.Context, since time.Time) ([]*domain.Debt, error) {
	if m.ListAssignedSinceFunc != nil {
		return m.ListAssignedSinceFunc(ctx, since)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []*domain.Debt
	for _, d := range m.debts {
		if !d.DateAssigned.Before(since) {
			out = append(out, d)
		}
	}
	return out, nil
}

func (m *MockDebtRepository) UpdateCurrentAmount(ctx context.Context, id string, amount decimal.Decimal) error {
	if m.UpdateCurrentAmountFunc != nil {
		return m.UpdateCurrentAmountFunc(ctx, id, amount)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	d, ok := m.debts[id]
	if !ok {
		return domain.ErrDebtNotFound
	}
	d.CurrentAmount = amount
	return nil
}

func (m *MockDebtRepository) MarkPaid(ctx context.Context, id string, amount decimal.Decimal) error {
	if m.MarkPaidFunc != nil {
		return m.MarkPaidFunc(ctx, id, amount)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	d, ok := m.debts[id]
	if !ok {
		return domain.ErrDebtNotFound
	}
	d.CurrentAmount = amount
	d.Status = domain.DebtPaid
	return nil
}

func (m *MockDebtRepository) Get(id string) *domain.Debt {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.debts[id]
}

// MockWorkoutRepository is an in-memory WorkoutRepository.
type MockWorkoutRepository struct {
	mu       sync.RWMutex
	workouts []*domain.WorkoutLog
	nextID   int

	CreateFunc      func(ctx context.Context, workout *domain.WorkoutLog) error
	ListForDayFunc  func(ctx context.Context, day time.Time) ([]*domain.WorkoutLog, error)
	ListBetweenFunc func(ctx context.Context, start, end time.Time) ([]*domain.WorkoutLog, error)
	ListSinceFunc   func(ctx context.Context, since time.Time) ([]*domain.WorkoutLog, error)
}

func NewMockWorkoutRepository() *MockWorkoutRepository {
	return &MockWorkoutRepository{}
}

func (m *MockWorkoutRepository) Create(ctx context.Context, workout *domain.WorkoutLog) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, workout)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if workout.ID == "" {
		m.nextID++
		workout.ID = fmt.Sprintf("workout-%d", m.nextID)
	}
	m.workouts = append(m.workouts, workout)
	return nil
}

func (m *MockWorkoutRepository) ListForDay(ctx context.Context, day time.Time) ([]*domain.WorkoutLog, error) {
	if m.ListForDayFunc != nil {
		return m.ListForDayFunc(ctx, day)
	}
	return m.ListBetween(ctx, day, day)
}

func (m *MockWorkoutRepository) ListBetween(ctx context.Context, start, end time.Time) ([]*domain.WorkoutLog, error) {
	if m.ListBetweenFunc != nil {
		return m.ListBetweenFunc(ctx, start, end)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []*domain.WorkoutLog
	for _, w := range m.workouts {
		if !w.Date.Before(start) && !w.Date.After(end) {
			out = append(out, w)
		}
	}
	return out, nil
}

func (m *MockWorkoutRepository) ListSince(ctx context.Context, since time.Time) ([]*domain.WorkoutLog, error) {
	if m.ListSinceFunc != nil {
		return m.ListSinceFunc(ctx, since)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []*domain.WorkoutLog
	for _, w := range m.workouts {
		if !w.Date.Before(since) {
			out = append(out, w)
		}
	}
	return out, nil
}

// MockBonusRepository is an in-memory BonusRepository.
type MockBonusRepository struct {
	mu      sync.RWMutex
	bonuses map[string]*domain.Bonus
	nextID  int

	CreateFunc      func(ctx context.Context, bonus *domain.Bonus) error
	MarkPaidFunc    func(ctx context.Context, id string) error
	ListPendingFunc func(ctx context.Context, weekOf *time.Time) ([]*domain.Bonus, error)
	ListSinceFunc   func(ctx context.Context, since time.Time) ([]*domain.Bonus, error)
}

func NewMockBonusRepository() *MockBonusRepository {
	return &MockBonusRepository{
		bonuses: make(map[string]*domain.Bonus),
	}
}

func (m *MockBonusRepository) Create(ctx context.Context, bonus *domain.Bonus) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, bonus)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if bonus.ID == "" {
		m.nextID++
		bonus.ID = fmt.Sprintf("bonus-%d", m.nextID)
	}
	m.bonuses[bonus.ID] = bonus
	return nil
}

func (m *MockBonusRepository) MarkPaid(ctx context.Context, id string) error {
	if m.MarkPaidFunc != nil {
		return m.MarkPaidFunc(ctx, id)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	b, ok := m.bonuses[id]
	if !ok {
		return domain.ErrBonusNotFound
	}
	b.Status = domain.BonusPaid
	return nil
}

func (m *MockBonusRepository) ListPending(ctx context.Context, weekOf *time.Time) ([]*domain.Bonus, error) {
	if m.ListPendingFunc != nil {
		return m.ListPendingFunc(ctx, weekOf)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []*domain.Bonus
	for _, b := range m.bonuses {
		if b.Status != domain.BonusPending {
			continue
		}
		if weekOf != nil && !b.WeekOf.Equal(*weekOf) {
			continue
		}
		out = append(out, b)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].WeekOf.After(out[j].WeekOf)
	})
	return out, nil
}

func (m *MockBonusRepository) ListSince(ctx context.Context, since time.Time) ([]*domain.Bonus, error) {
	if m.ListSinceFunc != nil {
		return m.ListSinceFunc(ctx, since)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []*domain.Bonus
	for _, b := range m.bonuses {
		if !b.WeekOf.Before(since) {
			out = append(out, b)
		}
	}
	return out, nil
}

// MockBalanceRepository is an in-memory BalanceRepository.
type MockBalanceRepository struct {
	mu        sync.RWMutex
	snapshots []*domain.BalanceSnapshot
	nextID    int

	CreateFunc    func(ctx context.Context, snapshot *domain.BalanceSnapshot) error
	LatestFunc    func(ctx context.Context) (*domain.BalanceSnapshot, error)
	ListSinceFunc func(ctx context.Context, since time.Time) ([]*domain.BalanceSnapshot, error)
}

func NewMockBalanceRepository() *MockBalanceRepository {
	return &MockBalanceRepository{}
}

func (m *MockBalanceRepository) Create(ctx context.Context, snapshot *domain.BalanceSnapshot) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, snapshot)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if snapshot.ID == "" {
		m.nextID++
		snapshot.ID = fmt.Sprintf("balance-%d", m.nextID)
	}
	m.snapshots = append(m.snapshots, snapshot)
	return nil
}

func (m *MockBalanceRepository) Latest(ctx context.Context) (*domain.BalanceSnapshot, error) {
	if m.LatestFunc != nil {
		return m.LatestFunc(ctx)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var latest *domain.BalanceSnapshot
	for _, s := range m.snapshots {
		if latest == nil || s.Date.After(latest.Date) {
			latest = s
		}
	}
	return latest, nil
}

func (m *MockBalanceRepository) ListSince(ctx context.Context, since time.Time) ([]*domain.BalanceSnapshot, error) {
	if m.ListSinceFunc != nil {
		return m.ListSinceFunc(ctx, since)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []*domain.BalanceSnapshot
	for _, s := range m.snapshots {
		if !s.Date.Before(since) {
			out = append(out, s)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date.After(out[j].Date)
	})
	return out, nil
}

// FixedClock returns a preset time.
type FixedClock struct {
	Time time.Time
}

func (c *FixedClock) Now() time.Time { return c.Time }

// MockIDGenerator returns sequential IDs.
type MockIDGenerator struct {
	mu     sync.Mutex
	nextID int

	GenerateFunc func() string
}

func NewMockIDGenerator() *MockIDGenerator {
	return &MockIDGenerator{}
}

func (m *MockIDGenerator) Generate() string {
	if m.GenerateFunc != nil {
		return m.GenerateFunc()
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextID++
	return fmt.Sprintf("run-%d", m.nextID)
}

// MockAccrualGuard remembers which days accrued.
type MockAccrualGuard struct {
	mu   sync.Mutex
	seen map[string]bool

	MarkAppliedFunc func(ctx context.Context, day string) (bool, error)
}

func NewMockAccrualGuard() *MockAccrualGuard {
	return &MockAccrualGuard{seen: make(map[string]bool)}
}

func (m *MockAccrualGuard) MarkApplied(ctx context.Context, day string) (bool, error) {
	if m.MarkAppliedFunc != nil {
		return m.MarkAppliedFunc(ctx, day)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.seen[day] {
		return false, nil
	}
	m.seen[day] = true
	return true, nil
}

// MockNotifier records sent messages.
type MockNotifier struct {
	mu       sync.Mutex
	Messages []string

	SendFunc func(ctx context.Context, content string) error
}

func NewMockNotifier() *MockNotifier {
	return &MockNotifier{}
}

func (m *MockNotifier) Send(ctx context.Context, content string) error {
	if m.SendFunc != nil {
		return m.SendFunc(ctx, content)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Messages = append(m.Messages, content)
	return nil
}

func (m *MockNotifier) Sent() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, len(m.Messages))
	copy(out, m.Messages)
	return out
}

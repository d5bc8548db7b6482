//go:build unit || e2e

// Package memstore is an in-memory shared.UnitOfWork for usecase tests.
// Each Within call holds the store lock for its whole duration and rolls
// back every change when fn returns an error.
package memstore

import (
	"context"
	"sync"
	"time"

	"employee-discount/internal/domain/discountcode"
	"employee-discount/internal/domain/ledger"
	"employee-discount/internal/domain/limit"
	"employee-discount/internal/infra"
	"employee-discount/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CodeRow struct {
	ID         uuid.UUID
	EmployeeID uuid.UUID
	DivisionID uuid.UUID
	Percentage decimal.Decimal
	ManualCode string
	QRPayload  string
	Status     discountcode.Status
	ExpiresAt  time.Time
	CreatedAt  time.Time
	UsedAt     *time.Time
}

func (r CodeRow) domain() *discountcode.DiscountCode {
	return discountcode.Reconstruct(r.ID, r.EmployeeID, r.DivisionID, r.Percentage,
		discountcode.ManualCode(r.ManualCode), r.Status, r.ExpiresAt, r.CreatedAt, r.UsedAt)
}

type idempotencyKey struct {
	key    uuid.UUID
	userID uuid.UUID
}

type state struct {
	employees    map[uuid.UUID]shared.EmployeeSnapshot
	divisions    map[uuid.UUID]shared.DivisionSnapshot
	codes        map[uuid.UUID]CodeRow
	transactions []*ledger.Transaction
	idempotency  map[idempotencyKey]shared.IdempotencyRecord
}

func (s state) clone() state {
	c := state{
		employees:    make(map[uuid.UUID]shared.EmployeeSnapshot, len(s.employees)),
		divisions:    make(map[uuid.UUID]shared.DivisionSnapshot, len(s.divisions)),
		codes:        make(map[uuid.UUID]CodeRow, len(s.codes)),
		transactions: append([]*ledger.Transaction(nil), s.transactions...),
		idempotency:  make(map[idempotencyKey]shared.IdempotencyRecord, len(s.idempotency)),
	}
	for k, v := range s.employees {
		c.employees[k] = v
	}
	for k, v := range s.divisions {
		c.divisions[k] = v
	}
	for k, v := range s.codes {
		c.codes[k] = v
	}
	for k, v := range s.idempotency {
		c.idempotency[k] = v
	}
	return c
}

type Store struct {
	mu    sync.Mutex
	st    state
	clock func() time.Time

	// FailOn makes the named repository operation return an error, to
	// exercise rollback paths.
	FailOn map[string]error

	// BeforeMarkUsed rewrites the code row right before MarkUsed inspects
	// it, standing in for another transaction that committed in between.
	BeforeMarkUsed func(CodeRow) CodeRow
}

func New(now func() time.Time) *Store {
	return &Store{
		st: state{
			employees:   map[uuid.UUID]shared.EmployeeSnapshot{},
			divisions:   map[uuid.UUID]shared.DivisionSnapshot{},
			codes:       map[uuid.UUID]CodeRow{},
			idempotency: map[idempotencyKey]shared.IdempotencyRecord{},
		},
		clock:  now,
		FailOn: map[string]error{},
	}
}

func (s *Store) PutEmployee(e shared.EmployeeSnapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.st.employees[e.ID] = e
}

func (s *Store) PutDivision(d shared.DivisionSnapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.st.divisions[d.ID] = d
}

func (s *Store) PutCode(r CodeRow) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.st.codes[r.ID] = r
}

func (s *Store) PutTransaction(t *ledger.Transaction) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.st.transactions = append(s.st.transactions, t)
}

func (s *Store) Code(id uuid.UUID) (CodeRow, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.st.codes[id]
	return r, ok
}

func (s *Store) Codes() []CodeRow {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]CodeRow, 0, len(s.st.codes))
	for _, r := range s.st.codes {
		out = append(out, r)
	}
	return out
}

func (s *Store) Transactions() []*ledger.Transaction {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]*ledger.Transaction(nil), s.st.transactions...)
}

func (s *Store) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	saved := s.st.clone()
	if err := fn(ctx, &memTx{s: s}); err != nil {
		s.st = saved
		return err
	}
	return nil
}

// CommandReads outside a transaction takes the lock per call.
func (s *Store) CommandReads() shared.CommandReads {
	return lockedReads{s: s}
}

func (s *Store) fail(op string) error {
	return s.FailOn[op]
}

type memTx struct {
	s *Store
}

func (t *memTx) DiscountCodes() shared.DiscountCodeRepository { return codeRepo{s: t.s} }
func (t *memTx) Transactions() shared.TransactionRepository   { return txnRepo{s: t.s} }
func (t *memTx) Idempotency() shared.IdempotencyRepository    { return idemRepo{s: t.s} }
func (t *memTx) Reads() shared.CommandReads                   { return reads{s: t.s} }

type reads struct {
	s *Store
}

func notFound(msg string) error {
	return infra.WrapRepoErr(msg, nil, infra.KindNotFound)
}

func (r reads) EmployeeByID(_ context.Context, id uuid.UUID) (*shared.EmployeeSnapshot, error) {
	if err := r.s.fail("EmployeeByID"); err != nil {
		return nil, err
	}
	e, ok := r.s.st.employees[id]
	if !ok {
		return nil, notFound("employee not found")
	}
	return &e, nil
}

func (r reads) EmployeeForUpdate(ctx context.Context, id uuid.UUID) (*shared.EmployeeSnapshot, error) {
	return r.EmployeeByID(ctx, id)
}

func (r reads) DivisionRule(_ context.Context, divisionID uuid.UUID) (*shared.DivisionSnapshot, error) {
	d, ok := r.s.st.divisions[divisionID]
	if !ok {
		return nil, notFound("division not found")
	}
	return &d, nil
}

func (r reads) DiscountCodeByID(_ context.Context, id uuid.UUID) (*discountcode.DiscountCode, error) {
	row, ok := r.s.st.codes[id]
	if !ok {
		return nil, notFound("discount code not found")
	}
	return row.domain(), nil
}

func (r reads) DiscountCodeByManual(_ context.Context, code discountcode.ManualCode) (*discountcode.DiscountCode, error) {
	var best *CodeRow
	for _, row := range r.s.st.codes {
		if row.ManualCode != code.String() {
			continue
		}
		if best == nil || better(row, *best) {
			candidate := row
			best = &candidate
		}
	}
	if best == nil {
		return nil, notFound("discount code not found")
	}
	return best.domain(), nil
}

// better mirrors ORDER BY (status = 'active') DESC, created_at DESC.
func better(a, b CodeRow) bool {
	aActive, bActive := a.Status == discountcode.StatusActive, b.Status == discountcode.StatusActive
	if aActive != bActive {
		return aActive
	}
	return a.CreatedAt.After(b.CreatedAt)
}

func (r reads) SpendingTotals(_ context.Context, employeeID uuid.UUID, period limit.Period) (limit.Totals, error) {
	if err := r.s.fail("SpendingTotals"); err != nil {
		return limit.Totals{}, err
	}
	totals := limit.Totals{Original: decimal.Zero, Final: decimal.Zero}
	for _, t := range r.s.st.transactions {
		if t.EmployeeID() != employeeID || !period.Contains(t.CreatedAt()) {
			continue
		}
		b := t.Breakdown()
		totals.Original = totals.Original.Add(b.Original)
		totals.Final = totals.Final.Add(b.Final)
		totals.Count++
	}
	return totals, nil
}

func (r reads) IdempotencyByKey(_ context.Context, key, userID uuid.UUID) (*shared.IdempotencyRecord, error) {
	rec, ok := r.s.st.idempotency[idempotencyKey{key, userID}]
	if !ok {
		return nil, notFound("idempotency key not found")
	}
	return &rec, nil
}

type lockedReads struct {
	s *Store
}

func (l lockedReads) with() (reads, func()) {
	l.s.mu.Lock()
	return reads{s: l.s}, l.s.mu.Unlock
}

func (l lockedReads) EmployeeByID(ctx context.Context, id uuid.UUID) (*shared.EmployeeSnapshot, error) {
	r, unlock := l.with()
	defer unlock()
	return r.EmployeeByID(ctx, id)
}

func (l lockedReads) EmployeeForUpdate(ctx context.Context, id uuid.UUID) (*shared.EmployeeSnapshot, error) {
	return l.EmployeeByID(ctx, id)
}

func (l lockedReads) DivisionRule(ctx context.Context, id uuid.UUID) (*shared.DivisionSnapshot, error) {
	r, unlock := l.with()
	defer unlock()
	return r.DivisionRule(ctx, id)
}

func (l lockedReads) DiscountCodeByID(ctx context.Context, id uuid.UUID) (*discountcode.DiscountCode, error) {
	r, unlock := l.with()
	defer unlock()
	return r.DiscountCodeByID(ctx, id)
}

func (l lockedReads) DiscountCodeByManual(ctx context.Context, code discountcode.ManualCode) (*discountcode.DiscountCode, error) {
	r, unlock := l.with()
	defer unlock()
	return r.DiscountCodeByManual(ctx, code)
}

func (l lockedReads) SpendingTotals(ctx context.Context, employeeID uuid.UUID, period limit.Period) (limit.Totals, error) {
	r, unlock := l.with()
	defer unlock()
	return r.SpendingTotals(ctx, employeeID, period)
}

func (l lockedReads) IdempotencyByKey(ctx context.Context, key, userID uuid.UUID) (*shared.IdempotencyRecord, error) {
	r, unlock := l.with()
	defer unlock()
	return r.IdempotencyByKey(ctx, key, userID)
}

type codeRepo struct {
	s *Store
}

func (c codeRepo) Create(_ context.Context, code *discountcode.DiscountCode, qrPayload string) (bool, error) {
	if err := c.s.fail("CreateCode"); err != nil {
		return false, err
	}
	for _, row := range c.s.st.codes {
		if row.Status != discountcode.StatusActive {
			continue
		}
		if row.ManualCode == code.ManualCode().String() {
			return false, nil
		}
		if row.EmployeeID == code.EmployeeID() {
			return false, infra.WrapRepoErr("active code conflict", nil, infra.KindDuplicateKey)
		}
	}
	c.s.st.codes[code.ID()] = CodeRow{
		ID:         code.ID(),
		EmployeeID: code.EmployeeID(),
		DivisionID: code.DivisionID(),
		Percentage: code.Percentage(),
		ManualCode: code.ManualCode().String(),
		QRPayload:  qrPayload,
		Status:     code.Status(),
		ExpiresAt:  code.ExpiresAt(),
		CreatedAt:  code.CreatedAt(),
	}
	return true, nil
}

func (c codeRepo) ExpireActiveForEmployee(_ context.Context, employeeID uuid.UUID) (int64, error) {
	var n int64
	for id, row := range c.s.st.codes {
		if row.EmployeeID == employeeID && row.Status == discountcode.StatusActive {
			row.Status = discountcode.StatusExpired
			c.s.st.codes[id] = row
			n++
		}
	}
	return n, nil
}

func (c codeRepo) MarkUsed(_ context.Context, id uuid.UUID, usedAt time.Time) (bool, error) {
	row, ok := c.s.st.codes[id]
	if ok && c.s.BeforeMarkUsed != nil {
		row = c.s.BeforeMarkUsed(row)
		c.s.st.codes[id] = row
	}
	if !ok || row.Status != discountcode.StatusActive {
		return false, nil
	}
	row.Status = discountcode.StatusUsed
	row.UsedAt = &usedAt
	c.s.st.codes[id] = row
	return true, nil
}

func (c codeRepo) MarkExpired(_ context.Context, id uuid.UUID) (bool, error) {
	row, ok := c.s.st.codes[id]
	if !ok || row.Status != discountcode.StatusActive {
		return false, nil
	}
	row.Status = discountcode.StatusExpired
	c.s.st.codes[id] = row
	return true, nil
}

type txnRepo struct {
	s *Store
}

func (t txnRepo) Create(_ context.Context, txn *ledger.Transaction) error {
	if err := t.s.fail("CreateTransaction"); err != nil {
		return err
	}
	for _, existing := range t.s.st.transactions {
		if existing.DiscountCodeID() == txn.DiscountCodeID() {
			return infra.WrapRepoErr("code already redeemed", nil, infra.KindDuplicateKey)
		}
	}
	t.s.st.transactions = append(t.s.st.transactions, txn)
	return nil
}

type idemRepo struct {
	s *Store
}

func (i idemRepo) TryInsert(_ context.Context, claim shared.IdempotencyClaim) (bool, error) {
	k := idempotencyKey{claim.Key, claim.UserID}
	if _, exists := i.s.st.idempotency[k]; exists {
		return false, nil
	}
	i.s.st.idempotency[k] = recordFromClaim(claim)
	return true, nil
}

func (i idemRepo) ClaimExpired(_ context.Context, claim shared.IdempotencyClaim) (bool, error) {
	k := idempotencyKey{claim.Key, claim.UserID}
	existing, ok := i.s.st.idempotency[k]
	if !ok || !existing.IsExpiredAt(i.s.clock()) {
		return false, nil
	}
	i.s.st.idempotency[k] = recordFromClaim(claim)
	return true, nil
}

func (i idemRepo) Complete(_ context.Context, key, userID uuid.UUID, responseBody []byte) error {
	k := idempotencyKey{key, userID}
	rec, ok := i.s.st.idempotency[k]
	if !ok {
		return notFound("idempotency key not found")
	}
	rec.Status = shared.IdempotencyStatusCompleted
	rec.ResponseBody = append([]byte(nil), responseBody...)
	i.s.st.idempotency[k] = rec
	return nil
}

func recordFromClaim(c shared.IdempotencyClaim) shared.IdempotencyRecord {
	return shared.IdempotencyRecord{
		Key:         c.Key,
		UserID:      c.UserID,
		Endpoint:    c.Endpoint,
		Status:      shared.IdempotencyStatusProcessing,
		RequestHash: c.RequestHash,
		ExpiresAt:   c.ExpiresAt,
	}
}

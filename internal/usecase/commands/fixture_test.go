//go:build unit

package commands_test

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"employee-discount/internal/domain/discountcode"
	"employee-discount/internal/domain/ledger"
	"employee-discount/internal/domain/limit"
	"employee-discount/internal/pkg/clock"
	"employee-discount/internal/usecase/commands"
	"employee-discount/internal/usecase/shared"
	"employee-discount/tests/common/builder"
	"employee-discount/tests/common/memstore"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

const testSigningKey = "test-qr-signing-key"

var fixtureNow = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

type fixture struct {
	clock    *clock.MockClock
	store    *memstore.Store
	format   discountcode.Format
	qr       *discountcode.QRCodec
	issue    commands.CodeCommands
	validate commands.ValidationCommands

	employee shared.EmployeeSnapshot
	division shared.DivisionSnapshot
}

func newFixture(t *testing.T, basis limit.SpentBasis) *fixture {
	return newFixtureWithGenerator(t, basis, nil)
}

// newFixtureWithGenerator wires both usecases over a fresh memstore holding
// one active employee and one division with a 10% rule. A nil generator
// uses the configured format.
func newFixtureWithGenerator(t *testing.T, basis limit.SpentBasis, gen commands.CodeGenerator) *fixture {
	t.Helper()

	clk := clock.NewMockClock(fixtureNow)
	store := memstore.New(clk.Now)
	format := discountcode.DefaultFormat()
	qr := discountcode.NewQRCodec(testSigningKey, format)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	policy, err := limit.NewPolicy(decimal.NewFromInt(500), basis, time.UTC)
	require.NoError(t, err)

	if gen == nil {
		gen = format
	}

	employee := builder.NewEmployeeBuilder().BuildSnapshot()
	division := builder.NewDivisionBuilder().BuildSnapshot()
	store.PutEmployee(employee)
	store.PutDivision(division)

	return &fixture{
		clock:  clk,
		store:  store,
		format: format,
		qr:     qr,
		issue: commands.NewCodeUseCase(store, policy, gen, qr,
			commands.CodeSettings{Format: format, TTL: 5 * time.Minute}, clk, logger),
		validate: commands.NewValidationUseCase(store, policy, qr,
			commands.ValidationSettings{
				Amounts:        ledger.AmountRule{Max: decimal.NewFromInt(100000)},
				IdempotencyTTL: 24 * time.Hour,
			}, clk, logger),
		employee: employee,
		division: division,
	}
}

// spend records a past redemption of original at 10% for the fixture employee.
func (f *fixture) spend(original string) {
	f.store.PutTransaction(builder.NewTransactionBuilder().With(func(b *builder.TransactionBuilder) {
		b.EmployeeID = f.employee.ID
		b.DivisionID = f.division.ID
		b.Original = decimal.RequireFromString(original)
		b.CreatedAt = fixtureNow.Add(-24 * time.Hour)
	}).BuildDomain())
}

func (f *fixture) validation(code, amount string) commands.ValidateCodeRequest {
	return builder.NewValidationBuilder().With(func(b *builder.ValidationBuilder) {
		b.Code = code
		b.Amount = amount
	}).BuildCommand()
}

// sequenceGenerator returns the given codes in order, repeating the last one.
type sequenceGenerator struct {
	codes []discountcode.ManualCode
	calls int
}

func (g *sequenceGenerator) Generate() (discountcode.ManualCode, error) {
	i := g.calls
	if i >= len(g.codes) {
		i = len(g.codes) - 1
	}
	g.calls++
	return g.codes[i], nil
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func assertDecimal(t *testing.T, want string, got decimal.Decimal, msgAndArgs ...any) {
	t.Helper()
	require.Truef(t, dec(want).Equal(got), "want %s, got %s %v", want, got.String(), msgAndArgs)
}

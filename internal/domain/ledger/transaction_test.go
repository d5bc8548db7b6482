//go:build unit

package ledger_test

import (
	"testing"
	"time"

	"employee-discount/internal/domain/ledger"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestCalculateDiscount(t *testing.T) {
	testCases := []struct {
		original   string
		percentage string
		discount   string
		final      string
	}{
		{original: "100", percentage: "10", discount: "10.00", final: "90.00"},
		{original: "60", percentage: "15", discount: "9.00", final: "51.00"},
		{original: "19.99", percentage: "12.5", discount: "2.50", final: "17.49"},
		{original: "0.05", percentage: "10", discount: "0.01", final: "0.04"},
		{original: "0.01", percentage: "10", discount: "0.00", final: "0.01"},
		{original: "250", percentage: "100", discount: "250.00", final: "0.00"},
	}

	for _, tc := range testCases {
		t.Run(tc.original+" at "+tc.percentage+"%", func(t *testing.T) {
			b := ledger.CalculateDiscount(dec(tc.original), dec(tc.percentage))

			assert.True(t, dec(tc.discount).Equal(b.Discount), "discount %s", b.Discount)
			assert.True(t, dec(tc.final).Equal(b.Final), "final %s", b.Final)
			assert.True(t, b.Discount.Add(b.Final).Equal(b.Original))
		})
	}
}

func TestAmountRule_Check(t *testing.T) {
	rule := ledger.AmountRule{Max: dec("1000")}

	testCases := []struct {
		amount string
		valid  bool
	}{
		{amount: "0.01", valid: true},
		{amount: "1000", valid: true},
		{amount: "999.99", valid: true},
		{amount: "10.10", valid: true},
		{amount: "0", valid: false},
		{amount: "-1", valid: false},
		{amount: "1000.01", valid: false},
		{amount: "10.005", valid: false},
		{amount: "100.000", valid: true},
		{amount: "1e2", valid: true},
		{amount: "1e-50000000", valid: false},
		{amount: "1e1000000000", valid: false},
		{amount: "-1e-50000000", valid: false},
		{amount: "123456789012345678901234567890e-28", valid: false},
	}

	for _, tc := range testCases {
		t.Run(tc.amount, func(t *testing.T) {
			err := rule.Check(dec(tc.amount))
			if tc.valid {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, ledger.ErrInvalidAmount)
		})
	}
}

func TestNewTransaction(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	codeID, employeeID, divisionID, cashier := uuid.New(), uuid.New(), uuid.New(), uuid.New()
	b := ledger.CalculateDiscount(dec("100"), dec("10"))

	t.Run("blank location is dropped", func(t *testing.T) {
		blank := "   "
		txn := ledger.NewTransaction(codeID, employeeID, divisionID, b, &blank, cashier, now)
		assert.Nil(t, txn.Location())
	})

	t.Run("location is trimmed", func(t *testing.T) {
		loc := "  Store 12 "
		txn := ledger.NewTransaction(codeID, employeeID, divisionID, b, &loc, cashier, now)
		require.NotNil(t, txn.Location())
		assert.Equal(t, "Store 12", *txn.Location())
	})

	t.Run("fields are carried", func(t *testing.T) {
		txn := ledger.NewTransaction(codeID, employeeID, divisionID, b, nil, cashier, now)
		assert.NotEqual(t, uuid.Nil, txn.ID())
		assert.Equal(t, codeID, txn.DiscountCodeID())
		assert.Equal(t, employeeID, txn.EmployeeID())
		assert.Equal(t, divisionID, txn.DivisionID())
		assert.Equal(t, cashier, txn.ValidatedBy())
		assert.Equal(t, now, txn.CreatedAt())
		assert.Equal(t, b, txn.Breakdown())
	})
}

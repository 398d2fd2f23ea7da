package summary

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tally-dev/tally/internal/model"
)

var checkerAccounts = model.AccountIndex{
	"money":     model.AccountTypeAsset,
	"income":    model.AccountTypeIncome,
	"groceries": model.AccountTypeExpense,
}

func TestValidateTransaction_Valid(t *testing.T) {
	err := ValidateTransaction(
		txn("salary", date(2023, 1, 25), 0, leg("money", "100"), leg("income", "-100")),
		checkerAccounts,
	)
	assert.NoError(t, err)
}

func TestValidateTransaction_MultiLeg(t *testing.T) {
	err := ValidateTransaction(
		txn("split", date(2023, 1, 25), 0,
			leg("money", "-100"), leg("groceries", "60.50"), leg("groceries", "39.50")),
		checkerAccounts,
	)
	assert.NoError(t, err)
}

func TestValidateTransaction_Unbalanced(t *testing.T) {
	err := ValidateTransaction(
		txn("off by one", date(2023, 1, 25), 0, leg("money", "100"), leg("income", "-99")),
		checkerAccounts,
	)

	var unbalanced *UnbalancedTransactionError
	require.ErrorAs(t, err, &unbalanced)
	assert.Equal(t, "off by one", unbalanced.Transaction)
	assert.True(t, unbalanced.Sum.Equal(dec("1")))
}

func TestValidateTransaction_ExactDecimals(t *testing.T) {
	// 0.1 + 0.2 - 0.3 must be exactly zero; floats would fail this.
	err := ValidateTransaction(
		txn("cents", date(2023, 1, 25), 0,
			leg("money", "0.1"), leg("money", "0.2"), leg("income", "-0.3")),
		checkerAccounts,
	)
	assert.NoError(t, err)
}

func TestValidateTransaction_UndeclaredAccount(t *testing.T) {
	err := ValidateTransaction(
		txn("mystery", date(2023, 1, 25), 0, leg("nowhere", "100"), leg("income", "-100")),
		checkerAccounts,
	)

	var undeclared *UndeclaredAccountError
	require.ErrorAs(t, err, &undeclared)
	assert.Equal(t, "mystery", undeclared.Transaction)
	assert.Equal(t, "nowhere", undeclared.Account)
}

func TestValidateTransaction_UndeclaredBeforeUnbalanced(t *testing.T) {
	// A transaction that is both undeclared and unbalanced reports the
	// undeclared account, matching leg scan order.
	err := ValidateTransaction(
		txn("doubly broken", date(2023, 1, 25), 0, leg("nowhere", "5")),
		checkerAccounts,
	)

	var undeclared *UndeclaredAccountError
	assert.ErrorAs(t, err, &undeclared)
}

func TestValidateTransaction_NoLegs(t *testing.T) {
	err := ValidateTransaction(txn("empty", date(2023, 1, 25), 0), checkerAccounts)
	assert.NoError(t, err, "zero legs sum to zero")
}

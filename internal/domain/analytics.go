package domain

import "github.com/shopspring/decimal"

// AccountAnalytics holds per-request aggregates for an account. It is never persisted.
type AccountAnalytics struct {
	AccountID      string
	TotalInflow    decimal.Decimal
	TotalOutflow   decimal.Decimal
	AvgTransaction decimal.Decimal
}

// ComputeAnalytics aggregates txs for accountID.
//
// TotalInflow sums INCOME amounts and TotalOutflow sums EXPENSE amounts, both keeping
// the stored sign. AvgTransaction is the mean absolute amount over every transaction.
// Transactions that belong to another account are ignored. With no transactions all
// three values are zero.
func ComputeAnalytics(accountID string, txs []*Transaction) *AccountAnalytics {
	result := &AccountAnalytics{
		AccountID:      accountID,
		TotalInflow:    decimal.Zero,
		TotalOutflow:   decimal.Zero,
		AvgTransaction: decimal.Zero,
	}

	absTotal := decimal.Zero
	count := int64(0)

	for _, tx := range txs {
		if tx == nil || tx.AccountID != accountID {
			continue
		}

		switch tx.Kind {
		case TransactionKindIncome:
			result.TotalInflow = result.TotalInflow.Add(tx.Amount)
		case TransactionKindExpense:
			result.TotalOutflow = result.TotalOutflow.Add(tx.Amount)
		}

		absTotal = absTotal.Add(tx.Amount.Abs())
		count++
	}

	if count > 0 {
		result.AvgTransaction = absTotal.Div(decimal.NewFromInt(count))
	}

	return result
}

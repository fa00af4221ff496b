package finance

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Overview is the dashboard aggregate: the account position, the debt
// position, and transaction statistics for one period.
type Overview struct {
	Accounts   AccountSummary
	Contacts   ContactSummary
	Statistics TransactionStatistics
}

// FetchOverview loads the three dashboard aggregates concurrently and fails
// fast on the first error.
func FetchOverview(
	ctx context.Context,
	accounts *AccountsClient,
	contacts *ContactsClient,
	transactions *TransactionsClient,
	period string,
) (*Overview, error) {
	var overview Overview

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		summary, err := accounts.Summary(ctx)
		if err != nil {
			return err
		}
		overview.Accounts = *summary
		return nil
	})
	g.Go(func() error {
		summary, err := contacts.Summary(ctx)
		if err != nil {
			return err
		}
		overview.Contacts = *summary
		return nil
	})
	g.Go(func() error {
		stats, err := transactions.Statistics(ctx, period)
		if err != nil {
			return err
		}
		overview.Statistics = *stats
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &overview, nil
}

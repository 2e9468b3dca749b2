package console

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/go-petr/pet-ledger/internal/domain"
	"github.com/go-petr/pet-ledger/pkg/moneypkg"
)

func (c *Console) table() *tabwriter.Writer {
	return tabwriter.NewWriter(c.out, 0, 0, 2, ' ', 0)
}

func (c *Console) renderAccounts(accounts []domain.Account) {
	w := c.table()

	fmt.Fprintln(w, "ID\tVARIANT\tBALANCE\tTERMS")

	for _, a := range accounts {
		terms := "fee " + moneypkg.Format(a.MonthlyFee)
		if a.Variant == domain.Savings {
			terms = "rate " + a.InterestRate.String()
		}

		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", a.ID, a.Variant, moneypkg.Format(a.Balance), terms)
	}

	w.Flush()
}

func (c *Console) renderTransactions(transactions []domain.Transaction) {
	w := c.table()

	fmt.Fprintln(w, "TIME\tAMOUNT")

	for _, t := range transactions {
		fmt.Fprintf(w, "%s\t%s\n", t.CreatedAt.Local().Format(time.DateTime), moneypkg.Format(t.Amount))
	}

	w.Flush()
}

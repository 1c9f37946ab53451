package dto

import (
	"fmt"
	"sort"
	"strings"

	"microfinance-ledger/internal/core/domain"
	"microfinance-ledger/internal/core/ports"
	"microfinance-ledger/pkg/apperror"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const dateLayout = "2006-01-02"

func idPtr(id *uuid.UUID) *string {
	if id == nil {
		return nil
	}
	s := id.String()
	return &s
}

// ParseRate reads an optional decimal string.
func ParseRate(s *string) (*decimal.Decimal, error) {
	if s == nil || strings.TrimSpace(*s) == "" {
		return nil, nil
	}
	d, err := decimal.NewFromString(strings.TrimSpace(*s))
	if err != nil {
		return nil, apperror.Validation(fmt.Sprintf("invalid rate %q", *s))
	}
	return &d, nil
}

// ParseBalances reads a currency → amount map. Zero amounts are allowed.
func ParseBalances(in map[string]string) (domain.Balances, error) {
	out := make(domain.Balances, len(in))
	for code, amount := range in {
		c, err := domain.ParseCurrency(code)
		if err != nil {
			return nil, err
		}
		m, err := domain.ParseMoney(amount, c)
		if err != nil {
			return nil, err
		}
		if m.Amount < 0 {
			return nil, apperror.ErrInvalidAmount()
		}
		out[c] = m.Amount
	}
	return out, nil
}

func formatBalances(in domain.Balances) map[string]string {
	if in == nil {
		return nil
	}
	out := make(map[string]string, len(in))
	for c, v := range in {
		out[string(c)] = domain.FormatMinor(v)
	}
	return out
}

func ToAccountResponse(a *domain.Account) AccountResponse {
	return AccountResponse{
		ID:               a.ID.String(),
		Number:           a.Number,
		CustomerID:       a.CustomerID,
		Type:             string(a.Type),
		Currency:         string(a.Currency),
		Balance:          domain.FormatMinor(a.Balance),
		BlockedBalance:   domain.FormatMinor(a.BlockedBalance),
		AvailableBalance: domain.FormatMinor(a.AvailableBalance()),
		Status:           string(a.Status),
		OpenedAt:         a.OpenedAt,
		ClosedAt:         a.ClosedAt,
	}
}

func ToEntryResponse(e *domain.Entry) EntryResponse {
	resp := EntryResponse{
		ID:                    e.ID.String(),
		AccountID:             e.AccountID.String(),
		Type:                  string(e.Type),
		Amount:                domain.FormatMinor(e.Amount),
		Currency:              string(e.Currency),
		BalanceBefore:         domain.FormatMinor(e.BalanceBefore),
		BalanceAfter:          domain.FormatMinor(e.BalanceAfter),
		BlockedBefore:         domain.FormatMinor(e.BlockedBefore),
		BlockedAfter:          domain.FormatMinor(e.BlockedAfter),
		CounterpartyAccountID: idPtr(e.CounterpartyAccountID),
		RelatedEntryID:        idPtr(e.RelatedEntryID),
		CorrelationID:         idPtr(e.CorrelationID),
		SessionID:             idPtr(e.SessionID),
		Reference:             e.Reference,
		Description:           e.Description,
		ProcessedBy:           e.ProcessedBy,
		Status:                string(e.Status),
		CreatedAt:             e.CreatedAt,
	}
	if e.ExchangeRate != nil {
		r := e.ExchangeRate.String()
		resp.ExchangeRate = &r
	}
	return resp
}

func ToEntryList(entries []domain.Entry) []EntryResponse {
	out := make([]EntryResponse, 0, len(entries))
	for i := range entries {
		out = append(out, ToEntryResponse(&entries[i]))
	}
	return out
}

func ToAccountReconciliation(r *ports.AccountReconciliation) AccountReconciliationResponse {
	return AccountReconciliationResponse{
		AccountID:     r.AccountID.String(),
		Balance:       domain.FormatMinor(r.Balance),
		FoldedBalance: domain.FormatMinor(r.FoldedBalance),
		Blocked:       domain.FormatMinor(r.Blocked),
		FoldedBlocked: domain.FormatMinor(r.FoldedBlocked),
		Entries:       r.Entries,
	}
}

func ToTransferResponse(r *ports.TransferResult) TransferResponse {
	resp := TransferResponse{Out: ToEntryResponse(r.Out), In: ToEntryResponse(r.In)}
	if r.Rate != nil {
		s := r.Rate.String()
		resp.ExchangeRate = &s
	}
	return resp
}

func ToCancelResponse(r *ports.CancelResult) CancelResponse {
	resp := CancelResponse{Reversal: ToEntryResponse(r.Reversal)}
	if r.Counterpart != nil {
		cp := ToEntryResponse(r.Counterpart)
		resp.Counterpart = &cp
	}
	return resp
}

func ToGuaranteeResponse(g *domain.Guarantee) GuaranteeResponse {
	return GuaranteeResponse{
		LoanApplicationID: g.LoanApplicationID,
		AccountID:         g.AccountID.String(),
		LoanType:          string(g.LoanType),
		BlockedAmount:     domain.FormatMinor(g.BlockedAmount),
		Currency:          string(g.Currency),
		CreatedAt:         g.CreatedAt,
		UpdatedAt:         g.UpdatedAt,
	}
}

func ToTermDepositResponse(v *ports.TermDepositView) TermDepositResponse {
	d := v.Deposit
	return TermDepositResponse{
		Account:         ToAccountResponse(v.Account),
		TermMonths:      d.TermMonths,
		AnnualRate:      d.AnnualRate.String(),
		MonthlyPercent:  d.MonthlyPercent().StringFixed(4),
		OpenedAt:        d.OpenedAt,
		MaturityDate:    d.MaturityDate,
		AccruedInterest: domain.FormatMinor(d.AccruedInterest),
		LastAccrualAt:   d.LastAccrualAt,
		Status:          string(d.Status),
	}
}

func ToTermCloseResponse(r *ports.TermCloseResult) TermCloseResponse {
	resp := TermCloseResponse{
		Account: ToAccountResponse(r.Account),
		Payout:  ToEntryResponse(r.Payout),
	}
	if r.Penalty != nil {
		p := ToEntryResponse(r.Penalty)
		resp.Penalty = &p
	}
	return resp
}

func ToLoanQuoteResponse(q *ports.LoanQuote, currency domain.Currency) LoanQuoteResponse {
	schedule := make([]InstallmentResponse, 0, len(q.Schedule))
	for _, in := range q.Schedule {
		schedule = append(schedule, InstallmentResponse{
			Number:    in.Number,
			DueDate:   in.DueDate.Format(dateLayout),
			Principal: domain.FormatMinor(in.Principal),
			Interest:  domain.FormatMinor(in.Interest),
			Total:     domain.FormatMinor(in.Total),
			Remaining: domain.FormatMinor(in.Remaining),
		})
	}
	return LoanQuoteResponse{
		Currency:              string(currency),
		MonthlyPayment:        domain.FormatMinor(q.MonthlyPayment),
		MonthlyPaymentWithFee: domain.FormatMinor(q.MonthlyPaymentWithFee),
		TotalInterest:         domain.FormatMinor(q.TotalInterest),
		Schedule:              schedule,
	}
}

func ToSessionResponse(s *domain.CashSession) SessionResponse {
	return SessionResponse{
		ID:              s.ID.String(),
		CashierID:       s.CashierID,
		Status:          string(s.Status),
		OpenedAt:        s.OpenedAt,
		ClosedAt:        s.ClosedAt,
		OpeningBalances: formatBalances(s.OpeningBalances),
		ClosingBalances: formatBalances(s.ClosingBalances),
	}
}

func ToSessionReconciliation(r *domain.Reconciliation) SessionReconciliationResponse {
	lines := make([]ReconciliationLineResponse, 0, len(r.Lines))
	for _, l := range r.Lines {
		lines = append(lines, ReconciliationLineResponse{
			Currency:    string(l.Currency),
			Opening:     domain.FormatMinor(l.Opening),
			Credits:     domain.FormatMinor(l.Credits),
			Debits:      domain.FormatMinor(l.Debits),
			Expected:    domain.FormatMinor(l.Expected),
			Declared:    domain.FormatMinor(l.Declared),
			Discrepancy: domain.FormatMinor(l.Discrepancy),
		})
	}
	sort.Slice(lines, func(i, j int) bool { return lines[i].Currency < lines[j].Currency })
	return SessionReconciliationResponse{
		SessionID: r.SessionID.String(),
		Balanced:  r.Balanced,
		Lines:     lines,
	}
}

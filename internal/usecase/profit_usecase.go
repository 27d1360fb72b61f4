package usecase

import (
	"context"
	"strings"

	"gemtrade_backoffice/internal/domain/entities"
	"gemtrade_backoffice/internal/usecase/interfaces"
	"gemtrade_backoffice/pkg/money"

	"go.uber.org/zap"
)

// IProfitUseCase rolls payments up into per-order profitability reports.
// Both operations are pure reads over storage state.

type IProfitUseCase interface {
	OrderSummary(ctx context.Context, orderID string) (entities.OrderProfitSummary, error)
	BulkOrderSummary(ctx context.Context, orderIDs []string) (map[string]entities.OrderPaymentSummary, error)
}

type ProfitUseCase struct {
	paymentRepo interfaces.IPaymentRepository
	orderRepo   interfaces.IOrderRepository
	log         *zap.SugaredLogger
}

var _ IProfitUseCase = (*ProfitUseCase)(nil)

func NewProfitUseCase(paymentRepo interfaces.IPaymentRepository, orderRepo interfaces.IOrderRepository, log *zap.SugaredLogger) *ProfitUseCase {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &ProfitUseCase{paymentRepo: paymentRepo, orderRepo: orderRepo, log: log}
}

// orderAggregates carries the raw (unrounded) running sums over one order's
// non-deleted payments. Totals are rounded exactly once, when the summary is
// assembled.
type orderAggregates struct {
	settledGrossUSD   float64
	settledNetUSD     float64
	settledExpected   float64
	settledActual     float64
	settledExchange   float64
	settledCommission float64
	settledCount      int

	allExpected float64
	allGrossUSD float64
	allCount    int
}

func (a *orderAggregates) add(p entities.Payment) {
	// The repositories filter deleted payments already; this guard keeps the
	// exclusion rule local to the aggregation as well.
	if p.IsDeleted {
		return
	}
	a.allCount++
	a.allExpected += p.ExpectedAmountINR
	a.allGrossUSD += p.GrossAmountUSD

	if p.PaymentStatus != entities.PaymentStatusCreditedToBank {
		return
	}
	a.settledCount++
	a.settledGrossUSD += p.GrossAmountUSD
	a.settledNetUSD += p.NetAmountUSD
	a.settledExpected += p.ExpectedAmountINR
	if p.ActualBankCreditINR != nil {
		a.settledActual += *p.ActualBankCreditINR
	}
	if p.ExchangeDifference != nil {
		a.settledExchange += *p.ExchangeDifference
	}
	// Commission converts at the payment's own recorded rate; with no rate
	// yet there is nothing to convert.
	if p.ConversionRate > 0 {
		a.settledCommission += p.MediatorCommissionAmount * p.ConversionRate
	}
}

// expenses computes the order's total cost base including settled mediator
// commissions, rounded once.
func (a *orderAggregates) expenses(order entities.Order) float64 {
	return money.Round2(order.PurchasePriceTotal() +
		order.SupplierCost +
		order.ShippingCost +
		order.PackagingCost +
		a.settledCommission +
		order.OtherExpenses)
}

// OrderSummary computes the single-order profitability report: settled
// totals, the full expense base, and net profit against the bank-credited
// amount.
func (u *ProfitUseCase) OrderSummary(ctx context.Context, orderID string) (entities.OrderProfitSummary, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return entities.OrderProfitSummary{}, ErrInvalidOrderID
	}

	order, err := u.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return entities.OrderProfitSummary{}, err
	}
	if order.ID == "" {
		return entities.OrderProfitSummary{}, ErrOrderNotFound
	}

	payments, err := u.paymentRepo.ListByOrderID(ctx, orderID)
	if err != nil {
		return entities.OrderProfitSummary{}, err
	}

	var agg orderAggregates
	for _, p := range payments {
		agg.add(p)
	}

	totalExpenses := agg.expenses(order)
	totalActual := money.Round2(agg.settledActual)
	netProfit := money.Round2(totalActual - totalExpenses)
	sellingTotal := order.SellingTotal()

	profitPercent := 0.0
	if sellingTotal > 0 {
		profitPercent = money.Round2(netProfit / sellingTotal * 100)
	}

	return entities.OrderProfitSummary{
		OrderID: orderID,

		TotalGrossUSD:           money.Round2(agg.settledGrossUSD),
		TotalNetUSD:             money.Round2(agg.settledNetUSD),
		TotalExpectedINR:        money.Round2(agg.settledExpected),
		TotalFinalBankCreditINR: totalActual,
		TotalExchangeDifference: money.Round2(agg.settledExchange),
		TotalCommissionINR:      money.Round2(agg.settledCommission),

		TotalExpectedINRAllPayments: money.Round2(agg.allExpected),

		PurchasePrice: order.PurchasePriceTotal(),
		SupplierCost:  money.Round2(order.SupplierCost),
		ShippingCost:  money.Round2(order.ShippingCost),
		PackagingCost: money.Round2(order.PackagingCost),
		OtherExpenses: money.Round2(order.OtherExpenses),

		TotalExpenses: totalExpenses,
		NetProfit:     netProfit,
		SellingTotal:  sellingTotal,
		ProfitPercent: profitPercent,

		SettledPaymentsCount: agg.settledCount,
	}, nil
}

// BulkOrderSummary computes profit and payment completeness for many orders
// at once. Storage is hit a fixed number of times (one bulk payment load,
// one batched order load) and grouping happens in memory, so cost stays
// linear in distinct orders. Ids are deduplicated; blank ids and ids with
// no stored order are discarded.
func (u *ProfitUseCase) BulkOrderSummary(ctx context.Context, orderIDs []string) (map[string]entities.OrderPaymentSummary, error) {
	seen := make(map[string]struct{}, len(orderIDs))
	ids := make([]string, 0, len(orderIDs))
	for _, id := range orderIDs {
		id = strings.TrimSpace(id)
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}

	result := make(map[string]entities.OrderPaymentSummary, len(ids))
	if len(ids) == 0 {
		return result, nil
	}

	orders, err := u.orderRepo.GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	payments, err := u.paymentRepo.ListByOrderIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	byOrder := make(map[string]*orderAggregates, len(ids))
	for _, p := range payments {
		agg, ok := byOrder[p.OrderID]
		if !ok {
			agg = &orderAggregates{}
			byOrder[p.OrderID] = agg
		}
		agg.add(p)
	}

	for _, order := range orders {
		agg := byOrder[order.ID]
		if agg == nil {
			agg = &orderAggregates{}
		}

		totalExpenses := agg.expenses(order)
		totalActual := money.Round2(agg.settledActual)
		totalExpectedAll := money.Round2(agg.allExpected)
		totalGrossAll := money.Round2(agg.allGrossUSD)

		result[order.ID] = entities.OrderPaymentSummary{
			OrderID:          order.ID,
			NetProfit:        money.Round2(totalActual - totalExpenses),
			TotalActualINR:   totalActual,
			TotalExpenses:    totalExpenses,
			TotalExpectedINR: totalExpectedAll,
			EstimatedProfit:  money.Round2(totalExpectedAll - totalExpenses),
			PaymentStatus:    classifyPaymentState(order, agg, totalGrossAll, totalExpectedAll),
		}
	}

	u.log.Debugw("bulk order summary computed", "requested", len(orderIDs), "distinct", len(ids), "resolved", len(result))
	return result, nil
}

// classifyPaymentState derives the three-way Paid/Partial/Unpaid verdict.
//
// An order is Paid when every recorded payment has been credited, or when
// the money already in flight covers the selling price in both currency
// buckets (USD coverage against gross USD, INR coverage against expected
// INR) within the fixed tolerance. The buckets are checked independently;
// no cross-currency conversion happens here.
func classifyPaymentState(order entities.Order, agg *orderAggregates, totalGrossUSD, totalExpectedINR float64) entities.OrderPaymentState {
	sellingUSD, sellingINR := order.SellingTotalsByCurrency()

	allCredited := agg.allCount > 0 && agg.settledCount == agg.allCount
	usdCovered := sellingUSD <= 0 || totalGrossUSD >= sellingUSD-entities.CoverageTolerance
	inrCovered := sellingINR <= 0 || totalExpectedINR >= sellingINR-entities.CoverageTolerance
	fullPaidInTransit := agg.allCount > 0 && usdCovered && inrCovered

	switch {
	case allCredited || fullPaidInTransit:
		return entities.OrderPaymentStatePaid
	case agg.settledCount > 0 || totalGrossUSD > 0 || totalExpectedINR > 0:
		return entities.OrderPaymentStatePartial
	default:
		return entities.OrderPaymentStateUnpaid
	}
}

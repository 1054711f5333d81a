package impl

import (
	"cmp"
	"context"
	"log/slog"

	deliverycontext "haatbazar/internal/delivery/context"
	"haatbazar/internal/domain/entity"
	"haatbazar/internal/domain/pipeline"
	"haatbazar/internal/domain/repository"
	"haatbazar/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

type (
	txOrder      = pipeline.Pair[*entity.Transaction, *entity.Order]
	txOrderBuyer = pipeline.Pair[txOrder, *entity.Buyer]
)

type reportService struct {
	orderRepo   repository.OrderRepository
	paymentRepo repository.PaymentRepository
	productRepo repository.ProductRepository
	buyerRepo   repository.BuyerRepository
	logger      *slog.Logger
}

// ReportServiceParams holds dependencies for ReportService, injected by Fx.
type ReportServiceParams struct {
	fx.In

	OrderRepo   repository.OrderRepository
	PaymentRepo repository.PaymentRepository
	ProductRepo repository.ProductRepository
	BuyerRepo   repository.BuyerRepository
	Logger      *slog.Logger
}

// NewReportService is the constructor for reportService.
func NewReportService(params ReportServiceParams) usecase.ReportUsecase {
	return &reportService{
		orderRepo:   params.OrderRepo,
		paymentRepo: params.PaymentRepo,
		productRepo: params.ProductRepo,
		buyerRepo:   params.BuyerRepo,
		logger:      params.Logger,
	}
}

func (srv *reportService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// BuyerReport joins the buyer's transactions with their orders and ordered products.
func (srv *reportService) BuyerReport(ctx context.Context, buyerID uuid.UUID) (*usecase.BuyerReport, error) {
	orders, err := srv.orderRepo.FindByBuyer(ctx, buyerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load buyer orders")
	}

	txs, err := srv.transactionsFor(ctx, orders)
	if err != nil {
		return nil, err
	}

	pairs := pipeline.Run(
		pipeline.Join(txs, orders, txOrderKey, orderKey),
		pipeline.Where(func(p txOrder) bool { return p.Right.BuyerID == buyerID }),
		pipeline.OrderBy(func(a, b txOrder) int { return newestTransactionFirst(a.Left, b.Left) }),
	)

	products, err := srv.productsFor(ctx, orders)
	if err != nil {
		return nil, err
	}

	rows := pipeline.Project(
		pipeline.JoinMany(pairs, products, func(p txOrder) []uuid.UUID { return p.Right.ProductIDs() }, productKey),
		buyerReportRow,
	)

	summary := pipeline.Reduce(rows, usecase.BuyerReportSummary{TotalAmount: decimal.Zero}, addToBuyerSummary)

	srv.log(ctx).Debug("Buyer report built", slog.Any("buyer_id", buyerID), slog.Int("rows", len(rows)))

	return &usecase.BuyerReport{Transactions: rows, Summary: summary}, nil
}

// SellerReport joins the transactions on the seller's orders with the ordering buyers.
func (srv *reportService) SellerReport(ctx context.Context, sellerID uuid.UUID) (*usecase.SellerReport, error) {
	orders, err := srv.orderRepo.FindBySeller(ctx, sellerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load seller orders")
	}

	txs, err := srv.transactionsFor(ctx, orders)
	if err != nil {
		return nil, err
	}

	buyers, err := srv.buyersFor(ctx, orders)
	if err != nil {
		return nil, err
	}

	pairs := pipeline.Filter(
		pipeline.Join(txs, orders, txOrderKey, orderKey),
		func(p txOrder) bool { return p.Right.SellerID == sellerID },
	)

	joined := pipeline.SortBy(
		pipeline.Join(pairs, buyers, func(p txOrder) uuid.UUID { return p.Right.BuyerID }, buyerKey),
		func(a, b txOrderBuyer) int { return newestTransactionFirst(a.Left.Left, b.Left.Left) },
	)

	rows := pipeline.Project(joined, sellerReportRow)

	summary := pipeline.Reduce(rows, usecase.SellerReportSummary{TotalAmount: decimal.Zero}, addToSellerSummary)

	srv.log(ctx).Debug("Seller report built", slog.Any("seller_id", sellerID), slog.Int("rows", len(rows)))

	return &usecase.SellerReport{Transactions: rows, Summary: summary}, nil
}

func (srv *reportService) transactionsFor(ctx context.Context, orders []*entity.Order) ([]*entity.Transaction, error) {
	if len(orders) == 0 {
		return nil, nil
	}

	ids := pipeline.Project(orders, orderKey)
	txs, err := srv.paymentRepo.FindByOrderIDs(ctx, ids)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load transactions")
	}

	return txs, nil
}

func (srv *reportService) productsFor(ctx context.Context, orders []*entity.Order) ([]*entity.Product, error) {
	ids := uniqueIDs(orders, func(o *entity.Order) []uuid.UUID { return o.ProductIDs() })
	if len(ids) == 0 {
		return nil, nil
	}

	products, err := srv.productRepo.FindByIDs(ctx, ids)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load ordered products")
	}

	return products, nil
}

func (srv *reportService) buyersFor(ctx context.Context, orders []*entity.Order) ([]*entity.Buyer, error) {
	ids := uniqueIDs(orders, func(o *entity.Order) []uuid.UUID { return []uuid.UUID{o.BuyerID} })
	if len(ids) == 0 {
		return nil, nil
	}

	buyers, err := srv.buyerRepo.FindByIDs(ctx, ids)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load buyers")
	}

	return buyers, nil
}

func buyerReportRow(g pipeline.Group[txOrder, *entity.Product]) usecase.BuyerReportRow {
	tx, order := g.Left.Left, g.Left.Right
	byID := make(map[uuid.UUID]*entity.Product, len(g.Matches))
	for _, p := range g.Matches {
		byID[p.ID] = p
	}

	// Lines whose product has since been deleted have nothing to join and are left out.
	products := make([]usecase.ReportProduct, 0, len(order.OrderedProducts))
	for _, item := range order.OrderedProducts {
		product, ok := byID[item.ProductID]
		if !ok {
			continue
		}
		products = append(products, usecase.ReportProduct{
			Product:  product,
			Quantity: item.Quantity,
			Subtotal: item.Subtotal,
		})
	}

	return usecase.BuyerReportRow{
		TransactionID:   tx.ID,
		OrderID:         order.ID,
		Amount:          tx.Amount,
		PaymentType:     tx.PaymentType,
		Status:          tx.Status,
		OrderStatus:     order.Status,
		OrderDate:       order.CreatedAt,
		Products:        products,
		ShippingAddress: order.ShippingAddress,
		BillingAddress:  order.BillingAddress,
		CreatedAt:       tx.CreatedAt,
	}
}

func sellerReportRow(p txOrderBuyer) usecase.SellerReportRow {
	tx, order, buyer := p.Left.Left, p.Left.Right, p.Right

	return usecase.SellerReportRow{
		TransactionID:   tx.ID,
		OrderID:         order.ID,
		Amount:          tx.Amount,
		PaymentType:     tx.PaymentType,
		Status:          tx.Status,
		OrderStatus:     order.Status,
		OrderDate:       order.CreatedAt,
		BuyerName:       buyer.Name,
		BuyerPhone:      buyer.Phone,
		ShippingAddress: order.ShippingAddress,
		CreatedAt:       tx.CreatedAt,
	}
}

func addToBuyerSummary(s usecase.BuyerReportSummary, row usecase.BuyerReportRow) usecase.BuyerReportSummary {
	s.TotalTransactions++
	s.TotalAmount = s.TotalAmount.Add(row.Amount)

	switch row.Status {
	case entity.TransactionStatusSuccess:
		s.SuccessfulTransactions++
	case entity.TransactionStatusPending:
		s.PendingTransactions++
	case entity.TransactionStatusFailed:
		s.FailedTransactions++
	}

	return s
}

func addToSellerSummary(s usecase.SellerReportSummary, row usecase.SellerReportRow) usecase.SellerReportSummary {
	s.TotalTransactions++
	s.TotalAmount = s.TotalAmount.Add(row.Amount)

	switch row.Status {
	case entity.TransactionStatusSuccess:
		s.ByStatus.Successful++
	case entity.TransactionStatusPending:
		s.ByStatus.Pending++
	case entity.TransactionStatusFailed:
		s.ByStatus.Failed++
	}

	switch row.PaymentType {
	case entity.PaymentTypeCash:
		s.ByPaymentType.Cash++
	case entity.PaymentTypeCard:
		s.ByPaymentType.Card++
	}

	return s
}

func newestTransactionFirst(a, b *entity.Transaction) int {
	if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
		return c
	}

	return cmp.Compare(b.ID.String(), a.ID.String())
}

func uniqueIDs[T any](in []T, keys func(T) []uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{})
	var ids []uuid.UUID
	for _, v := range in {
		for _, id := range keys(v) {
			if _, ok := seen[id]; ok {
				continue
			}
			seen[id] = struct{}{}
			ids = append(ids, id)
		}
	}

	return ids
}

func txOrderKey(tx *entity.Transaction) uuid.UUID { return tx.OrderID }
func orderKey(o *entity.Order) uuid.UUID          { return o.ID }
func productKey(p *entity.Product) uuid.UUID      { return p.ID }
func buyerKey(b *entity.Buyer) uuid.UUID          { return b.ID }

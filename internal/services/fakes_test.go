package services

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"bordados-backend/internal/entities"
	"bordados-backend/internal/repositories"
	"bordados-backend/pkg/constants"
	apperrors "bordados-backend/pkg/errors"
	"bordados-backend/pkg/types"
)

// Implementaciones en memoria de los repositorios para los tests de
// servicios. La transacción es un no-op: acá se prueban las reglas de
// negocio, no la atomicidad de Postgres.

type fakeTxManager struct {
	beginErr error
}

func (m *fakeTxManager) RunInTransaction(ctx context.Context, fn func(tx pgx.Tx) error) error {
	if m.beginErr != nil {
		return m.beginErr
	}
	return fn(nil)
}

type fakeOrderRepo struct {
	orders map[uint64]*entities.Order
	nextID uint64
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{orders: make(map[uint64]*entities.Order), nextID: 1}
}

func (r *fakeOrderRepo) CreateOrderInTx(ctx context.Context, tx pgx.Tx, order *entities.Order) (uint64, error) {
	order.ID = r.nextID
	order.OrderNumber = 1000 + r.nextID
	order.CreatedAt = time.Now()
	r.nextID++
	clone := *order
	r.orders[order.ID] = &clone
	return order.ID, nil
}

func (r *fakeOrderRepo) FindOrder(ctx context.Context, id uint64) (*entities.Order, error) {
	o, ok := r.orders[id]
	if !ok || o.DeletedAt != nil {
		return nil, apperrors.ErrOrderNotFound
	}
	clone := *o
	return &clone, nil
}

func (r *fakeOrderRepo) FindOrderForUpdateInTx(ctx context.Context, tx pgx.Tx, id uint64) (*entities.Order, error) {
	return r.FindOrder(ctx, id)
}

func (r *fakeOrderRepo) UpdateStatusInTx(ctx context.Context, tx pgx.Tx, id uint64, status constants.OrderStatus) error {
	o, ok := r.orders[id]
	if !ok {
		return apperrors.ErrOrderNotFound
	}
	now := time.Now()
	o.Status = status
	o.UpdatedAt = &now
	return nil
}

func (r *fakeOrderRepo) UpdateOrderFields(ctx context.Context, order *entities.Order) error {
	o, ok := r.orders[order.ID]
	if !ok {
		return apperrors.ErrOrderNotFound
	}
	clone := *order
	clone.Status = o.Status
	r.orders[order.ID] = &clone
	return nil
}

func (r *fakeOrderRepo) SoftDeleteOrder(ctx context.Context, id uint64) error {
	o, ok := r.orders[id]
	if !ok || o.DeletedAt != nil {
		return apperrors.ErrOrderNotFound
	}
	now := time.Now()
	o.DeletedAt = &now
	return nil
}

func (r *fakeOrderRepo) GetOrders(ctx context.Context, filter types.Filter) ([]repositories.OrderListRow, uint64, error) {
	rows := make([]repositories.OrderListRow, 0)
	for _, o := range r.orders {
		if o.DeletedAt != nil {
			continue
		}
		if filter.ClientID != 0 && o.ClientID != filter.ClientID {
			continue
		}
		rows = append(rows, repositories.OrderListRow{Order: *o, ClientName: "cliente", TotalPaid: decimal.Zero})
	}
	return rows, uint64(len(rows)), nil
}

type fakeHistoryRepo struct {
	entries []entities.OrderStatusHistory
	nextID  uint64
}

func newFakeHistoryRepo() *fakeHistoryRepo {
	return &fakeHistoryRepo{nextID: 1}
}

func (r *fakeHistoryRepo) CreateInTx(ctx context.Context, tx pgx.Tx, entry *entities.OrderStatusHistory) (uint64, error) {
	entry.ID = r.nextID
	entry.ChangedAt = time.Now()
	r.nextID++
	r.entries = append(r.entries, *entry)
	return entry.ID, nil
}

func (r *fakeHistoryRepo) FindByOrderID(ctx context.Context, orderID uint64) ([]entities.OrderStatusHistory, error) {
	var out []entities.OrderStatusHistory
	for _, e := range r.entries {
		if e.OrderID == orderID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (r *fakeHistoryRepo) SumDeliveredInTx(ctx context.Context, tx pgx.Tx, orderID uint64) (int, error) {
	sum := 0
	for _, e := range r.entries {
		if e.OrderID == orderID && e.Status == constants.StatusEntregaParcial && e.QuantityDelivered != nil {
			sum += *e.QuantityDelivered
		}
	}
	return sum, nil
}

func (r *fakeHistoryRepo) LatestStatusByOrderID(ctx context.Context, orderID uint64) (string, error) {
	for i := len(r.entries) - 1; i >= 0; i-- {
		if r.entries[i].OrderID == orderID {
			return string(r.entries[i].Status), nil
		}
	}
	return "", fmt.Errorf("sin historial para el pedido %d", orderID)
}

type fakePaymentRepo struct {
	payments []entities.Payment
	nextID   uint64
}

func newFakePaymentRepo() *fakePaymentRepo {
	return &fakePaymentRepo{nextID: 1}
}

func (r *fakePaymentRepo) CreateInTx(ctx context.Context, tx pgx.Tx, payment *entities.Payment) (uint64, error) {
	payment.ID = r.nextID
	payment.PaidAt = time.Now()
	r.nextID++
	r.payments = append(r.payments, *payment)
	return payment.ID, nil
}

func (r *fakePaymentRepo) FindByOrderID(ctx context.Context, orderID uint64) ([]entities.Payment, error) {
	var out []entities.Payment
	for _, p := range r.payments {
		if p.OrderID == orderID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *fakePaymentRepo) sum(orderID uint64) decimal.Decimal {
	sum := decimal.Zero
	for _, p := range r.payments {
		if p.OrderID == orderID {
			sum = sum.Add(p.Amount)
		}
	}
	return sum
}

func (r *fakePaymentRepo) SumPaidInTx(ctx context.Context, tx pgx.Tx, orderID uint64) (decimal.Decimal, error) {
	return r.sum(orderID), nil
}

func (r *fakePaymentRepo) SumPaid(ctx context.Context, orderID uint64) (decimal.Decimal, error) {
	return r.sum(orderID), nil
}

type fakeClientRepo struct {
	clients map[uint64]*entities.Client
}

func newFakeClientRepo() *fakeClientRepo {
	return &fakeClientRepo{clients: map[uint64]*entities.Client{
		1: {ID: 1, Name: "Colegio San Martín", CreatedAt: time.Now()},
	}}
}

func (r *fakeClientRepo) FindClient(ctx context.Context, id uint64) (*entities.Client, error) {
	c, ok := r.clients[id]
	if !ok {
		return nil, apperrors.ErrClientNotFound
	}
	return c, nil
}

func (r *fakeClientRepo) GetClients(ctx context.Context, filter types.Filter) ([]entities.Client, uint64, error) {
	var out []entities.Client
	for _, c := range r.clients {
		out = append(out, *c)
	}
	return out, uint64(len(out)), nil
}

type fakeFileStorage struct {
	saved   []string
	failing bool
}

func (s *fakeFileStorage) Save(file io.Reader, originalFileName string, prefix string) (string, error) {
	if s.failing {
		return "", fmt.Errorf("disco lleno")
	}
	url := "/uploads/" + prefix + "/" + originalFileName
	s.saved = append(s.saved, url)
	return url, nil
}

func (s *fakeFileStorage) Delete(fileURL string) error { return nil }

func photoFixture(name string) EvidenceFile {
	return EvidenceFile{Reader: strings.NewReader("jpegdata"), Filename: name}
}

package services

import (
	"math/rand"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"bordados-backend/internal/dto"
	"bordados-backend/pkg/constants"
	apperrors "bordados-backend/pkg/errors"
	"bordados-backend/pkg/eventbus"
)

type paymentServiceFixture struct {
	service     PaymentServiceInterface
	orderSvc    OrderServiceInterface
	orderRepo   *fakeOrderRepo
	paymentRepo *fakePaymentRepo
	storage     *fakeFileStorage
}

func newPaymentServiceFixture() *paymentServiceFixture {
	orderRepo := newFakeOrderRepo()
	historyRepo := newFakeHistoryRepo()
	paymentRepo := newFakePaymentRepo()
	storage := &fakeFileStorage{}
	logger := zap.NewNop()
	bus := eventbus.New(logger)

	return &paymentServiceFixture{
		service: NewPaymentService(orderRepo, paymentRepo, &fakeTxManager{}, storage, bus, logger),
		orderSvc: NewOrderService(
			orderRepo, historyRepo, paymentRepo, newFakeClientRepo(),
			&fakeTxManager{}, storage, bus, logger),
		orderRepo:   orderRepo,
		paymentRepo: paymentRepo,
		storage:     storage,
	}
}

func (f *paymentServiceFixture) newOrder(t *testing.T) uint64 {
	t.Helper()
	agg, err := f.orderSvc.CreateOrder(actorCtx(), createOrderDTO())
	require.NoError(t, err)
	return agg.ID
}

func payment(amount int64) dto.RecordPaymentDTO {
	return dto.RecordPaymentDTO{
		Amount: decimal.NewFromInt(amount),
		Method: constants.PaymentEfectivo,
	}
}

func TestRecordPayment_AbonoSimple(t *testing.T) {
	f := newPaymentServiceFixture()
	orderID := f.newOrder(t) // total 500

	res, err := f.service.RecordPayment(actorCtx(), orderID, payment(200), nil)
	require.NoError(t, err)

	assert.True(t, res.AmountApplied.Equal(decimal.NewFromInt(200)))
	assert.True(t, res.TotalPaid.Equal(decimal.NewFromInt(200)))
	assert.True(t, res.RemainingBalance.Equal(decimal.NewFromInt(300)))
	assert.Equal(t, float64(40), res.PaymentProgress)
}

func TestRecordPayment_SobrepagoSeRecorta(t *testing.T) {
	f := newPaymentServiceFixture()
	orderID := f.newOrder(t)

	_, err := f.service.RecordPayment(actorCtx(), orderID, payment(450), nil)
	require.NoError(t, err)

	// Quedan 50; un abono de 200 aplica solo 50 y el recorte queda visible.
	res, err := f.service.RecordPayment(actorCtx(), orderID, payment(200), nil)
	require.NoError(t, err)

	assert.True(t, res.AmountApplied.Equal(decimal.NewFromInt(50)))
	assert.True(t, res.TotalPaid.Equal(decimal.NewFromInt(500)))
	assert.True(t, res.RemainingBalance.IsZero())
	assert.Equal(t, float64(100), res.PaymentProgress)
}

func TestRecordPayment_PedidoYaPagado(t *testing.T) {
	f := newPaymentServiceFixture()
	orderID := f.newOrder(t)

	_, err := f.service.RecordPayment(actorCtx(), orderID, payment(500), nil)
	require.NoError(t, err)

	_, err = f.service.RecordPayment(actorCtx(), orderID, payment(10), nil)
	assert.ErrorIs(t, err, apperrors.ErrOrderFullyPaid)
}

func TestRecordPayment_MontoInvalido(t *testing.T) {
	f := newPaymentServiceFixture()
	orderID := f.newOrder(t)

	_, err := f.service.RecordPayment(actorCtx(), orderID, payment(0), nil)
	assert.ErrorIs(t, err, apperrors.ErrInvalidAmount)

	_, err = f.service.RecordPayment(actorCtx(), orderID, payment(-50), nil)
	assert.ErrorIs(t, err, apperrors.ErrInvalidAmount)
}

func TestRecordPayment_MetodoInvalido(t *testing.T) {
	f := newPaymentServiceFixture()
	orderID := f.newOrder(t)

	p := payment(100)
	p.Method = "CHEQUE"
	_, err := f.service.RecordPayment(actorCtx(), orderID, p, nil)
	assert.ErrorIs(t, err, apperrors.ErrInvalidPayMethod)
}

// La cobranza no depende del avance del trabajo: un pedido cancelado con
// saldo pendiente sigue aceptando abonos hasta saldarse.
func TestRecordPayment_PedidoCanceladoConSaldoSigueCobrando(t *testing.T) {
	f := newPaymentServiceFixture()
	orderID := f.newOrder(t) // total 500, nada cobrado

	_, err := f.orderSvc.TransitionStatus(actorCtx(), orderID, transition(constants.StatusCancelado, nil), nil)
	require.NoError(t, err)

	res, err := f.service.RecordPayment(actorCtx(), orderID, payment(100), nil)
	require.NoError(t, err)
	assert.True(t, res.AmountApplied.Equal(decimal.NewFromInt(100)))
	assert.True(t, res.RemainingBalance.Equal(decimal.NewFromInt(400)))

	// Saldado el pedido, aplica la misma regla de siempre.
	_, err = f.service.RecordPayment(actorCtx(), orderID, payment(400), nil)
	require.NoError(t, err)
	_, err = f.service.RecordPayment(actorCtx(), orderID, payment(10), nil)
	assert.ErrorIs(t, err, apperrors.ErrOrderFullyPaid)
}

func TestRecordPayment_PedidoInexistente(t *testing.T) {
	f := newPaymentServiceFixture()

	_, err := f.service.RecordPayment(actorCtx(), 999, payment(100), nil)
	assert.ErrorIs(t, err, apperrors.ErrOrderNotFound)
}

// Propiedad: sea cual sea la secuencia de abonos, lo cobrado nunca supera
// el total del pedido y el saldo nunca es negativo.
func TestRecordPayment_ElAcumuladoNuncaSuperaElTotal(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	total := decimal.NewFromInt(500)

	for round := 0; round < 20; round++ {
		f := newPaymentServiceFixture()
		orderID := f.newOrder(t)

		for i := 0; i < 15; i++ {
			amount := int64(rng.Intn(200) + 1)
			res, err := f.service.RecordPayment(actorCtx(), orderID, payment(amount), nil)
			if err != nil {
				assert.ErrorIs(t, err, apperrors.ErrOrderFullyPaid)
				break
			}
			assert.True(t, res.TotalPaid.LessThanOrEqual(total),
				"cobrado %s supera el total %s", res.TotalPaid, total)
			assert.True(t, res.RemainingBalance.GreaterThanOrEqual(decimal.Zero),
				"saldo negativo: %s", res.RemainingBalance)
		}

		sum, err := f.paymentRepo.SumPaid(actorCtx(), orderID)
		require.NoError(t, err)
		assert.True(t, sum.LessThanOrEqual(total))
	}
}

func TestListPayments(t *testing.T) {
	f := newPaymentServiceFixture()
	orderID := f.newOrder(t)

	_, err := f.service.RecordPayment(actorCtx(), orderID, payment(150), nil)
	require.NoError(t, err)
	_, err = f.service.RecordPayment(actorCtx(), orderID, payment(100), nil)
	require.NoError(t, err)

	list, err := f.service.ListPayments(actorCtx(), orderID)
	require.NoError(t, err)

	assert.Len(t, list.Payments, 2)
	assert.True(t, list.TotalPaid.Equal(decimal.NewFromInt(250)))
	assert.True(t, list.RemainingBalance.Equal(decimal.NewFromInt(250)))
	assert.Equal(t, float64(50), list.PaymentProgress)
}

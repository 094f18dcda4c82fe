package create_order

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mulelash/MB-BeautyService/internal/domain"
	catalogRepo "github.com/mulelash/MB-BeautyService/internal/infra/storage/catalog"
)

type fakeOrders struct {
	created []*domain.Order
}

func (f *fakeOrders) Create(_ context.Context, o *domain.Order) (*domain.Order, error) {
	o.ID = int64(len(f.created) + 1)
	o.CreatedAt = time.Now()
	f.created = append(f.created, o)
	return o, nil
}

type fakeCatalog struct {
	products map[int64]*domain.Product
}

func (f *fakeCatalog) GetProductByID(_ context.Context, id int64) (*domain.Product, error) {
	p, ok := f.products[id]
	if !ok {
		return nil, catalogRepo.ErrProductNotFound
	}
	return p, nil
}

type fakePublisher struct {
	published []string
}

func (f *fakePublisher) Publish(_ context.Context, collection string) {
	f.published = append(f.published, collection)
}

type passthroughTx struct{}

func (passthroughTx) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type testLogger struct{}

func (testLogger) Info(string, ...interface{})  {}
func (testLogger) Warn(string, ...interface{})  {}
func (testLogger) Error(string, ...interface{}) {}

func fixtures() (*UseCase, *fakeOrders) {
	orders := &fakeOrders{}
	catalog := &fakeCatalog{products: map[int64]*domain.Product{
		1: {ID: 1, Name: "Lash serum", Price: 880, InStock: true},
		2: {ID: 2, Name: "Cleansing foam", Price: 420, InStock: true},
		3: {ID: 3, Name: "Discontinued balm", Price: 300, InStock: false},
	}}
	uc := NewUseCase(orders, catalog, passthroughTx{}, &fakePublisher{}, testLogger{})
	return uc, orders
}

func checkoutRequest(items ...RequestItem) *Request {
	return &Request{
		Items:          items,
		CustomerName:   "Alice",
		CustomerPhone:  "0912345678",
		CustomerEmail:  "alice@example.com",
		DeliveryMethod: "home_delivery",
		Address:        "No. 1, Lane 2, Sec. 3",
		PaymentMethod:  "line_pay",
	}
}

func TestExecute_PricesComeFromCatalog(t *testing.T) {
	uc, orders := fixtures()

	resp, err := uc.Execute(context.Background(), checkoutRequest(
		RequestItem{ProductID: 1, Quantity: 2},
		RequestItem{ProductID: 2, Quantity: 1},
	))
	require.NoError(t, err)

	assert.Equal(t, 880*2+420.0, resp.TotalAmount)
	assert.Equal(t, string(domain.OrderPending), resp.Status)
	require.Len(t, resp.Items, 2)
	assert.Equal(t, "Lash serum", resp.Items[0].Name)
	assert.Equal(t, 880.0, resp.Items[0].UnitPrice)
	require.Len(t, orders.created, 1)
}

func TestExecute_PublicCodeShape(t *testing.T) {
	uc, _ := fixtures()

	resp, err := uc.Execute(context.Background(), checkoutRequest(RequestItem{ProductID: 1, Quantity: 1}))
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(resp.PublicCode, "ord_"))
	assert.Len(t, resp.PublicCode, len("ord_")+12)
}

func TestExecute_EmptyCartRejected(t *testing.T) {
	uc, orders := fixtures()

	_, err := uc.Execute(context.Background(), checkoutRequest())
	assert.ErrorIs(t, err, ErrEmptyOrder)
	assert.Empty(t, orders.created)
}

func TestExecute_NonPositiveQuantityRejected(t *testing.T) {
	uc, _ := fixtures()

	_, err := uc.Execute(context.Background(), checkoutRequest(RequestItem{ProductID: 1, Quantity: 0}))
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), checkoutRequest(RequestItem{ProductID: 1, Quantity: -2}))
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_UnknownProductRejected(t *testing.T) {
	uc, _ := fixtures()

	_, err := uc.Execute(context.Background(), checkoutRequest(RequestItem{ProductID: 99, Quantity: 1}))
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestExecute_OutOfStockRejected(t *testing.T) {
	uc, orders := fixtures()

	_, err := uc.Execute(context.Background(), checkoutRequest(
		RequestItem{ProductID: 1, Quantity: 1},
		RequestItem{ProductID: 3, Quantity: 1},
	))
	assert.ErrorIs(t, err, ErrProductOutOfStock)
	assert.Empty(t, orders.created)
}

func TestExecute_UnknownMethodsRejected(t *testing.T) {
	uc, _ := fixtures()

	req := checkoutRequest(RequestItem{ProductID: 1, Quantity: 1})
	req.DeliveryMethod = "pigeon"
	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidInput)

	req = checkoutRequest(RequestItem{ProductID: 1, Quantity: 1})
	req.PaymentMethod = "barter"
	_, err = uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

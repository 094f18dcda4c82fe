package orders

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mulelash/MB-BeautyService/internal/domain"
	orderRepo "github.com/mulelash/MB-BeautyService/internal/infra/storage/order"
	"github.com/mulelash/MB-BeautyService/pkg/ptr"
)

type fakeOrders struct {
	byID map[int64]*domain.Order
}

func (f *fakeOrders) GetByID(_ context.Context, id int64) (*domain.Order, error) {
	o, ok := f.byID[id]
	if !ok {
		return nil, orderRepo.ErrOrderNotFound
	}
	return o, nil
}

func (f *fakeOrders) List(_ context.Context, filter domain.OrdersFilter) ([]*domain.Order, error) {
	out := make([]*domain.Order, 0)
	for _, o := range f.byID {
		if filter.Status != nil && o.Status != *filter.Status {
			continue
		}
		out = append(out, o)
	}
	return out, nil
}

func (f *fakeOrders) SetStatus(_ context.Context, id int64, status domain.OrderStatus, trackingNumber *string) error {
	o, ok := f.byID[id]
	if !ok {
		return orderRepo.ErrOrderNotFound
	}
	o.Status = status
	if trackingNumber != nil {
		o.Delivery.TrackingNumber = trackingNumber
	}
	if status == domain.OrderPaid {
		o.Payment.IsPaid = true
	}
	return nil
}

func (f *fakeOrders) UpdateContact(_ context.Context, id int64, customer domain.OrderCustomer, deliveryAddress string) error {
	o, ok := f.byID[id]
	if !ok {
		return orderRepo.ErrOrderNotFound
	}
	o.Customer = customer
	o.Delivery.Address = deliveryAddress
	return nil
}

type fakePublisher struct {
	published []string
}

func (f *fakePublisher) Publish(_ context.Context, collection string) {
	f.published = append(f.published, collection)
}

type testLogger struct{}

func (testLogger) Info(string, ...interface{})  {}
func (testLogger) Warn(string, ...interface{})  {}
func (testLogger) Error(string, ...interface{}) {}

func fixtures() (*Service, *fakeOrders, *fakePublisher) {
	repo := &fakeOrders{byID: map[int64]*domain.Order{
		1: {
			ID:         1,
			PublicCode: "ord_abc123def456",
			Status:     domain.OrderPending,
			Customer:   domain.OrderCustomer{Name: "Alice", Phone: "0912345678"},
			Delivery:   domain.OrderDelivery{Method: domain.DeliveryHome, Address: "somewhere"},
		},
	}}
	publisher := &fakePublisher{}
	return NewService(repo, publisher, testLogger{}), repo, publisher
}

func TestSetStatus_AnyKnownStatusFromAnyOther(t *testing.T) {
	svc, repo, _ := fixtures()

	// pending straight to completed, skipping paid and shipped
	order, err := svc.SetStatus(context.Background(), 1, "completed", nil)
	require.NoError(t, err)
	assert.Equal(t, domain.OrderCompleted, order.Status)

	// and back again, manual correction
	order, err = svc.SetStatus(context.Background(), 1, "pending", nil)
	require.NoError(t, err)
	assert.Equal(t, domain.OrderPending, repo.byID[1].Status)
	assert.Equal(t, domain.OrderPending, order.Status)
}

func TestSetStatus_UnknownStatusRejected(t *testing.T) {
	svc, repo, publisher := fixtures()

	_, err := svc.SetStatus(context.Background(), 1, "refunded", nil)
	assert.ErrorIs(t, err, ErrInvalidStatus)
	assert.Equal(t, domain.OrderPending, repo.byID[1].Status, "rejected set must not mutate")
	assert.Empty(t, publisher.published)
}

func TestSetStatus_ShippedWithTracking(t *testing.T) {
	svc, repo, publisher := fixtures()

	order, err := svc.SetStatus(context.Background(), 1, "shipped", ptr.Ptr("TW123456789"))
	require.NoError(t, err)

	require.NotNil(t, order.Delivery.TrackingNumber)
	assert.Equal(t, "TW123456789", *order.Delivery.TrackingNumber)
	assert.Equal(t, domain.OrderShipped, repo.byID[1].Status)
	assert.Equal(t, []string{domain.CollectionOrders}, publisher.published)
}

func TestSetStatus_MissingOrder(t *testing.T) {
	svc, _, _ := fixtures()

	_, err := svc.SetStatus(context.Background(), 42, "paid", nil)
	assert.ErrorIs(t, err, ErrOrderNotFound)
}

func TestUpdateContact_EditsContactOnly(t *testing.T) {
	svc, repo, publisher := fixtures()

	order, err := svc.UpdateContact(context.Background(), 1,
		domain.OrderCustomer{Name: "Alice Chen", Phone: "0987654321"}, "new address")
	require.NoError(t, err)

	assert.Equal(t, "Alice Chen", order.Customer.Name)
	assert.Equal(t, "new address", order.Delivery.Address)
	assert.Equal(t, domain.OrderPending, repo.byID[1].Status, "contact edits never touch status")
	assert.Equal(t, []string{domain.CollectionOrders}, publisher.published)
}

func TestList_FilterByStatus(t *testing.T) {
	svc, repo, _ := fixtures()
	repo.byID[2] = &domain.Order{ID: 2, Status: domain.OrderPaid}

	paid, err := svc.List(context.Background(), ptr.Ptr("paid"), domain.OrdersFilter{})
	require.NoError(t, err)
	require.Len(t, paid, 1)
	assert.Equal(t, int64(2), paid[0].ID)

	_, err = svc.List(context.Background(), ptr.Ptr("bogus"), domain.OrdersFilter{})
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"checkout_core/internal/domain/entities"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeDynamo keeps items keyed by id and answers order_id index queries.
type fakeDynamo struct {
	items   map[string]map[string]types.AttributeValue
	failPut bool
}

func newFakeDynamo() *fakeDynamo {
	return &fakeDynamo{items: map[string]map[string]types.AttributeValue{}}
}

func (f *fakeDynamo) PutItem(_ context.Context, in *dynamodb.PutItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	if f.failPut {
		return nil, errors.New("throttled")
	}
	id := in.Item["id"].(*types.AttributeValueMemberS).Value
	f.items[id] = in.Item
	return &dynamodb.PutItemOutput{}, nil
}

func (f *fakeDynamo) GetItem(_ context.Context, in *dynamodb.GetItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	id := in.Key["id"].(*types.AttributeValueMemberS).Value
	return &dynamodb.GetItemOutput{Item: f.items[id]}, nil
}

func (f *fakeDynamo) Query(_ context.Context, in *dynamodb.QueryInput, _ ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error) {
	if aws.ToString(in.IndexName) != checkoutAttemptsOrderIndex {
		return nil, errors.New("unexpected index")
	}
	want := in.ExpressionAttributeValues[":oid"].(*types.AttributeValueMemberS).Value
	out := &dynamodb.QueryOutput{}
	for _, it := range f.items {
		if v, ok := it["order_id"].(*types.AttributeValueMemberS); ok && v.Value == want {
			out.Items = append(out.Items, it)
		}
	}
	return out, nil
}

func sampleAttempt(id, orderID string) entities.CheckoutAttempt {
	t0 := time.Date(2026, 10, 1, 8, 0, 0, 0, time.UTC)
	a := entities.NewCheckoutAttempt(id, "c1", t0)
	a.Method = entities.PaymentMethodPSE
	a.Amount = 169_700
	_ = a.Advance(entities.StageOrderCreating, t0.Add(time.Second))
	if orderID != "" {
		_ = a.Advance(entities.StageOrderCreated, t0.Add(2*time.Second))
		a.OrderID = orderID
		_ = a.Advance(entities.StagePaymentProcessing, t0.Add(3*time.Second))
		_ = a.Advance(entities.StagePending, t0.Add(4*time.Second))
		a.Result = &entities.PaymentResult{Success: true, OrderID: orderID, TransactionID: "tx", Status: entities.PaymentStatusPending, RedirectURL: "https://pse"}
	} else {
		_ = a.Advance(entities.StageError, t0.Add(2*time.Second))
		a.Result = &entities.PaymentResult{Status: entities.PaymentStatusError, Message: "fallo", Errors: map[string]string{"p1": "agotado"}}
	}
	return *a
}

func TestCheckoutAttemptDynamoRepository_SaveGet(t *testing.T) {
	ddb := newFakeDynamo()
	repo := NewCheckoutAttemptDynamoRepository(ddb, "")
	ctx := context.Background()

	want := sampleAttempt("a1", "o-1")
	require.NoError(t, repo.Save(ctx, want))

	got, err := repo.GetByID(ctx, "a1")
	require.NoError(t, err)
	assert.Equal(t, want, got)

	missing, err := repo.GetByID(ctx, "nope")
	require.NoError(t, err)
	assert.Empty(t, missing.ID)
}

func TestCheckoutAttemptDynamoRepository_OmitsEmptyOrderID(t *testing.T) {
	ddb := newFakeDynamo()
	repo := NewCheckoutAttemptDynamoRepository(ddb, "attempts")
	ctx := context.Background()

	failed := sampleAttempt("a2", "")
	require.NoError(t, repo.Save(ctx, failed))
	_, hasOrder := ddb.items["a2"]["order_id"]
	assert.False(t, hasOrder, "index key must be absent, not empty")

	got, err := repo.GetByID(ctx, "a2")
	require.NoError(t, err)
	assert.Equal(t, failed, got)
}

func TestCheckoutAttemptDynamoRepository_ListByOrderID(t *testing.T) {
	ddb := newFakeDynamo()
	repo := NewCheckoutAttemptDynamoRepository(ddb, "")
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, sampleAttempt("a1", "o-1")))
	require.NoError(t, repo.Save(ctx, sampleAttempt("a2", "o-2")))
	require.NoError(t, repo.Save(ctx, sampleAttempt("a3", "")))

	got, err := repo.ListByOrderID(ctx, "o-1")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "a1", got[0].ID)
}

func TestCheckoutAttemptDynamoRepository_Errors(t *testing.T) {
	ddb := newFakeDynamo()
	repo := NewCheckoutAttemptDynamoRepository(ddb, "")

	assert.ErrorIs(t, repo.Save(context.Background(), entities.CheckoutAttempt{}), errMissingAttemptID)

	ddb.failPut = true
	assert.Error(t, repo.Save(context.Background(), sampleAttempt("a1", "o-1")))
}

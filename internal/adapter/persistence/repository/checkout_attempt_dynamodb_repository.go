package repository

import (
	"context"
	"errors"
	"strings"

	"checkout_core/internal/domain/entities"
	"checkout_core/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	DefaultCheckoutAttemptsTable = "checkout_attempts"
	checkoutAttemptsOrderIndex   = "order_id-index"
)

var errMissingAttemptID = errors.New("checkout attempt without id")

// dynamoAPI is the subset of *dynamodb.Client used by the ledger.
type dynamoAPI interface {
	PutItem(ctx context.Context, in *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	GetItem(ctx context.Context, in *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	Query(ctx context.Context, in *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error)
}

type stageTransitionItem struct {
	Stage string `dynamodbav:"stage"`
	At    string `dynamodbav:"at"`
}

type paymentResultItem struct {
	Success       bool              `dynamodbav:"success"`
	OrderNumber   string            `dynamodbav:"order_number,omitempty"`
	TransactionID string            `dynamodbav:"transaction_id,omitempty"`
	RedirectURL   string            `dynamodbav:"redirect_url,omitempty"`
	Status        string            `dynamodbav:"status"`
	Message       string            `dynamodbav:"message,omitempty"`
	Errors        map[string]string `dynamodbav:"errors,omitempty"`
}

type checkoutAttemptItem struct {
	ID        string                `dynamodbav:"id"`
	CartID    string                `dynamodbav:"cart_id,omitempty"`
	OrderID   string                `dynamodbav:"order_id,omitempty"`
	Method    string                `dynamodbav:"payment_method,omitempty"`
	Amount    int64                 `dynamodbav:"amount"`
	Stage     string                `dynamodbav:"stage"`
	History   []stageTransitionItem `dynamodbav:"history"`
	Result    *paymentResultItem    `dynamodbav:"result,omitempty"`
	CreatedAt string                `dynamodbav:"created_at"`
	UpdatedAt string                `dynamodbav:"updated_at"`
}

// CheckoutAttemptDynamoRepository persists the checkout attempt ledger in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: order_id-index (PK: order_id). Attempts that never created an order carry
//     no order_id and stay out of the index.

type CheckoutAttemptDynamoRepository struct {
	ddb       dynamoAPI
	tableName string
}

var _ interfaces.ICheckoutAttemptRepository = (*CheckoutAttemptDynamoRepository)(nil)

func NewCheckoutAttemptDynamoRepository(ddb dynamoAPI, tableName string) *CheckoutAttemptDynamoRepository {
	if strings.TrimSpace(tableName) == "" {
		tableName = DefaultCheckoutAttemptsTable
	}
	return &CheckoutAttemptDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *CheckoutAttemptDynamoRepository) Save(ctx context.Context, a entities.CheckoutAttempt) error {
	if a.ID == "" {
		return errMissingAttemptID
	}
	av, err := attributevalue.MarshalMap(toCheckoutAttemptItem(a))
	if err != nil {
		return err
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	return err
}

func (r *CheckoutAttemptDynamoRepository) GetByID(ctx context.Context, id string) (entities.CheckoutAttempt, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.CheckoutAttempt{}, err
	}
	if len(out.Item) == 0 {
		return entities.CheckoutAttempt{}, nil
	}

	var it checkoutAttemptItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.CheckoutAttempt{}, err
	}
	return fromCheckoutAttemptItem(it), nil
}

func (r *CheckoutAttemptDynamoRepository) ListByOrderID(ctx context.Context, orderID string) ([]entities.CheckoutAttempt, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(checkoutAttemptsOrderIndex),
		KeyConditionExpression: aws.String("order_id = :oid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":oid": &types.AttributeValueMemberS{Value: orderID},
		},
	})
	if err != nil {
		return nil, err
	}

	attempts := make([]entities.CheckoutAttempt, 0, len(out.Items))
	for _, raw := range out.Items {
		var it checkoutAttemptItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		attempts = append(attempts, fromCheckoutAttemptItem(it))
	}
	return attempts, nil
}

func toCheckoutAttemptItem(a entities.CheckoutAttempt) checkoutAttemptItem {
	it := checkoutAttemptItem{
		ID:        a.ID,
		CartID:    a.CartID,
		OrderID:   a.OrderID,
		Method:    string(a.Method),
		Amount:    a.Amount,
		Stage:     string(a.Stage),
		History:   make([]stageTransitionItem, 0, len(a.History)),
		CreatedAt: formatTime(a.CreatedAt),
		UpdatedAt: formatTime(a.UpdatedAt),
	}
	for _, h := range a.History {
		it.History = append(it.History, stageTransitionItem{Stage: string(h.Stage), At: formatTime(h.At)})
	}
	if a.Result != nil {
		it.Result = &paymentResultItem{
			Success:       a.Result.Success,
			OrderNumber:   a.Result.OrderNumber,
			TransactionID: a.Result.TransactionID,
			RedirectURL:   a.Result.RedirectURL,
			Status:        string(a.Result.Status),
			Message:       a.Result.Message,
			Errors:        a.Result.Errors,
		}
	}
	return it
}

func fromCheckoutAttemptItem(it checkoutAttemptItem) entities.CheckoutAttempt {
	a := entities.CheckoutAttempt{
		ID:        it.ID,
		CartID:    it.CartID,
		OrderID:   it.OrderID,
		Method:    entities.PaymentMethod(it.Method),
		Amount:    it.Amount,
		Stage:     entities.CheckoutStage(it.Stage),
		History:   make([]entities.StageTransition, 0, len(it.History)),
		CreatedAt: parseTime(it.CreatedAt),
		UpdatedAt: parseTime(it.UpdatedAt),
	}
	for _, h := range it.History {
		a.History = append(a.History, entities.StageTransition{Stage: entities.CheckoutStage(h.Stage), At: parseTime(h.At)})
	}
	if it.Result != nil {
		a.Result = &entities.PaymentResult{
			Success:       it.Result.Success,
			OrderID:       it.OrderID,
			OrderNumber:   it.Result.OrderNumber,
			TransactionID: it.Result.TransactionID,
			RedirectURL:   it.Result.RedirectURL,
			Status:        entities.PaymentStatus(it.Result.Status),
			Message:       it.Result.Message,
			Errors:        it.Result.Errors,
		}
	}
	return a
}

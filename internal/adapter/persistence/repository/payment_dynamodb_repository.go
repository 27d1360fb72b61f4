package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gemtrade_backoffice/internal/domain/entities"
	"gemtrade_backoffice/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultPaymentsTableName = "payments"
	paymentsOrderIDIndex     = "order_id-index"

	// DynamoDB caps IN-operator operands at 100; bulk loads chunk at that.
	scanINChunkSize = 100
)

type paymentItem struct {
	ID           string `dynamodbav:"id"`
	OrderID      string `dynamodbav:"order_id"`
	ProductIndex *int   `dynamodbav:"product_index,omitempty"`
	MediatorID   string `dynamodbav:"mediator_id"`
	BankID       string `dynamodbav:"bank_id,omitempty"`

	GrossAmountUSD           float64 `dynamodbav:"gross_amount_usd"`
	MediatorCommissionType   string  `dynamodbav:"mediator_commission_type"`
	MediatorCommissionValue  float64 `dynamodbav:"mediator_commission_value"`
	MediatorCommissionAmount float64 `dynamodbav:"mediator_commission_amount"`
	NetAmountUSD             float64 `dynamodbav:"net_amount_usd"`

	ConversionRate      float64  `dynamodbav:"conversion_rate"`
	ExpectedAmountINR   float64  `dynamodbav:"expected_amount_inr"`
	ActualBankCreditINR *float64 `dynamodbav:"actual_bank_credit_inr,omitempty"`
	ExchangeDifference  *float64 `dynamodbav:"exchange_difference,omitempty"`

	PaymentStatus string `dynamodbav:"payment_status"`
	Notes         string `dynamodbav:"notes,omitempty"`

	IsDeleted bool   `dynamodbav:"is_deleted"`
	DeletedAt string `dynamodbav:"deleted_at,omitempty"`
	CreatedAt string `dynamodbav:"created_at"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

// PaymentDynamoRepository persists Payment entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: order_id-index (PK: order_id)
//
// Soft-deleted payments stay in the table; the list methods filter them out
// so every aggregate upstream only ever sees live rows.

type PaymentDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IPaymentRepository = (*PaymentDynamoRepository)(nil)

func NewPaymentDynamoRepository(ddb *dynamodb.Client) *PaymentDynamoRepository {
	return &PaymentDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PAYMENTS_TABLE", defaultPaymentsTableName),
	}
}

func (r *PaymentDynamoRepository) Create(ctx context.Context, p entities.Payment) (entities.Payment, error) {
	av, err := attributevalue.MarshalMap(toPaymentItem(p))
	if err != nil {
		return entities.Payment{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.Payment{}, err
	}
	return p, nil
}

func (r *PaymentDynamoRepository) GetByID(ctx context.Context, id string) (entities.Payment, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Payment{}, err
	}
	if len(out.Item) == 0 {
		return entities.Payment{}, nil
	}

	var it paymentItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Payment{}, err
	}
	return fromPaymentItem(it), nil
}

// Update replaces the whole item. Callers always run the derived-field
// recomputation first, so a full put is what keeps stored state consistent.
func (r *PaymentDynamoRepository) Update(ctx context.Context, p entities.Payment) (entities.Payment, error) {
	av, err := attributevalue.MarshalMap(toPaymentItem(p))
	if err != nil {
		return entities.Payment{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Payment{}, nil
		}
		return entities.Payment{}, err
	}
	return p, nil
}

func (r *PaymentDynamoRepository) ListByOrderID(ctx context.Context, orderID string) ([]entities.Payment, error) {
	payments := make([]entities.Payment, 0)

	var startKey map[string]types.AttributeValue
	for {
		out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
			TableName:              aws.String(r.tableName),
			IndexName:              aws.String(paymentsOrderIDIndex),
			KeyConditionExpression: aws.String("order_id = :oid"),
			FilterExpression:       aws.String("#is_deleted = :false"),
			ExpressionAttributeNames: map[string]string{
				"#is_deleted": "is_deleted",
			},
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":oid":   &types.AttributeValueMemberS{Value: orderID},
				":false": &types.AttributeValueMemberBOOL{Value: false},
			},
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}

		for _, raw := range out.Items {
			var it paymentItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			payments = append(payments, fromPaymentItem(it))
		}

		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		startKey = out.LastEvaluatedKey
	}

	return payments, nil
}

// ListByOrderIDs loads every live payment for the given orders with one
// filtered scan per 100-id chunk, so the bulk profit computation issues a
// constant number of storage reads instead of one query per order.
func (r *PaymentDynamoRepository) ListByOrderIDs(ctx context.Context, orderIDs []string) ([]entities.Payment, error) {
	payments := make([]entities.Payment, 0)

	for start := 0; start < len(orderIDs); start += scanINChunkSize {
		end := start + scanINChunkSize
		if end > len(orderIDs) {
			end = len(orderIDs)
		}
		chunk := orderIDs[start:end]

		values := map[string]types.AttributeValue{
			":false": &types.AttributeValueMemberBOOL{Value: false},
		}
		placeholders := make([]string, 0, len(chunk))
		for i, id := range chunk {
			ph := fmt.Sprintf(":oid%d", i)
			placeholders = append(placeholders, ph)
			values[ph] = &types.AttributeValueMemberS{Value: id}
		}
		filter := fmt.Sprintf("#order_id IN (%s) AND #is_deleted = :false", strings.Join(placeholders, ", "))

		var startKey map[string]types.AttributeValue
		for {
			out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
				TableName:        aws.String(r.tableName),
				FilterExpression: aws.String(filter),
				ExpressionAttributeNames: map[string]string{
					"#order_id":   "order_id",
					"#is_deleted": "is_deleted",
				},
				ExpressionAttributeValues: values,
				ExclusiveStartKey:         startKey,
			})
			if err != nil {
				return nil, err
			}

			for _, raw := range out.Items {
				var it paymentItem
				if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
					return nil, err
				}
				payments = append(payments, fromPaymentItem(it))
			}

			if len(out.LastEvaluatedKey) == 0 {
				break
			}
			startKey = out.LastEvaluatedKey
		}
	}

	return payments, nil
}

func toPaymentItem(p entities.Payment) paymentItem {
	return paymentItem{
		ID:           p.ID,
		OrderID:      p.OrderID,
		ProductIndex: p.ProductIndex,
		MediatorID:   p.MediatorID,
		BankID:       p.BankID,

		GrossAmountUSD:           p.GrossAmountUSD,
		MediatorCommissionType:   string(p.MediatorCommissionType),
		MediatorCommissionValue:  p.MediatorCommissionValue,
		MediatorCommissionAmount: p.MediatorCommissionAmount,
		NetAmountUSD:             p.NetAmountUSD,

		ConversionRate:      p.ConversionRate,
		ExpectedAmountINR:   p.ExpectedAmountINR,
		ActualBankCreditINR: p.ActualBankCreditINR,
		ExchangeDifference:  p.ExchangeDifference,

		PaymentStatus: string(p.PaymentStatus),
		Notes:         p.Notes,

		IsDeleted: p.IsDeleted,
		DeletedAt: timePtrToString(p.DeletedAt),
		CreatedAt: timeToString(p.CreatedAt),
		UpdatedAt: timeToString(p.UpdatedAt),
	}
}

func fromPaymentItem(it paymentItem) entities.Payment {
	return entities.Payment{
		ID:           it.ID,
		OrderID:      it.OrderID,
		ProductIndex: it.ProductIndex,
		MediatorID:   it.MediatorID,
		BankID:       it.BankID,

		GrossAmountUSD:           it.GrossAmountUSD,
		MediatorCommissionType:   entities.CommissionType(it.MediatorCommissionType),
		MediatorCommissionValue:  it.MediatorCommissionValue,
		MediatorCommissionAmount: it.MediatorCommissionAmount,
		NetAmountUSD:             it.NetAmountUSD,

		ConversionRate:      it.ConversionRate,
		ExpectedAmountINR:   it.ExpectedAmountINR,
		ActualBankCreditINR: it.ActualBankCreditINR,
		ExchangeDifference:  it.ExchangeDifference,

		PaymentStatus: entities.PaymentStatus(it.PaymentStatus),
		Notes:         it.Notes,

		IsDeleted: it.IsDeleted,
		DeletedAt: timePtrFromString(it.DeletedAt),
		CreatedAt: timeFromString(it.CreatedAt),
		UpdatedAt: timeFromString(it.UpdatedAt),
	}
}

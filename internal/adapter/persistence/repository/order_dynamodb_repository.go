package repository

import (
	"context"

	"gemtrade_backoffice/internal/domain/entities"
	"gemtrade_backoffice/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultOrdersTableName = "orders"

	// BatchGetItem accepts at most 100 keys per request.
	batchGetChunkSize = 100
)

type orderProductItem struct {
	Name            string  `dynamodbav:"name,omitempty"`
	SellingPrice    float64 `dynamodbav:"selling_price"`
	PurchasePrice   float64 `dynamodbav:"purchase_price"`
	PaymentCurrency string  `dynamodbav:"payment_currency,omitempty"`
}

type orderItem struct {
	ID       string             `dynamodbav:"id"`
	Products []orderProductItem `dynamodbav:"products"`

	SupplierCost  float64 `dynamodbav:"supplier_cost"`
	ShippingCost  float64 `dynamodbav:"shipping_cost"`
	PackagingCost float64 `dynamodbav:"packaging_cost"`
	OtherExpenses float64 `dynamodbav:"other_expenses"`

	CreatedAt string `dynamodbav:"created_at"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

// OrderDynamoRepository reads Orders from DynamoDB. Order CRUD belongs to
// the order controllers elsewhere in the back office; this service only
// needs cost fields and product lines.
//
// Table requirements:
//   - PK: id (string)

type OrderDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IOrderRepository = (*OrderDynamoRepository)(nil)

func NewOrderDynamoRepository(ddb *dynamodb.Client) *OrderDynamoRepository {
	return &OrderDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("ORDERS_TABLE", defaultOrdersTableName),
	}
}

func (r *OrderDynamoRepository) GetByID(ctx context.Context, id string) (entities.Order, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Order{}, err
	}
	if len(out.Item) == 0 {
		return entities.Order{}, nil
	}

	var it orderItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Order{}, err
	}
	return fromOrderItem(it), nil
}

// GetByIDs batch-loads orders in 100-key chunks, retrying unprocessed keys
// until DynamoDB has answered for every requested id. Missing orders are
// simply absent from the result.
func (r *OrderDynamoRepository) GetByIDs(ctx context.Context, ids []string) ([]entities.Order, error) {
	orders := make([]entities.Order, 0, len(ids))

	for start := 0; start < len(ids); start += batchGetChunkSize {
		end := start + batchGetChunkSize
		if end > len(ids) {
			end = len(ids)
		}

		keys := make([]map[string]types.AttributeValue, 0, end-start)
		for _, id := range ids[start:end] {
			keys = append(keys, map[string]types.AttributeValue{
				"id": &types.AttributeValueMemberS{Value: id},
			})
		}

		for len(keys) > 0 {
			out, err := r.ddb.BatchGetItem(ctx, &dynamodb.BatchGetItemInput{
				RequestItems: map[string]types.KeysAndAttributes{
					r.tableName: {Keys: keys},
				},
			})
			if err != nil {
				return nil, err
			}

			for _, raw := range out.Responses[r.tableName] {
				var it orderItem
				if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
					return nil, err
				}
				orders = append(orders, fromOrderItem(it))
			}

			keys = nil
			if unprocessed, ok := out.UnprocessedKeys[r.tableName]; ok {
				keys = unprocessed.Keys
			}
		}
	}

	return orders, nil
}

func fromOrderItem(it orderItem) entities.Order {
	products := make([]entities.Product, 0, len(it.Products))
	for _, p := range it.Products {
		products = append(products, entities.Product{
			Name:            p.Name,
			SellingPrice:    p.SellingPrice,
			PurchasePrice:   p.PurchasePrice,
			PaymentCurrency: entities.Currency(p.PaymentCurrency),
		})
	}
	return entities.Order{
		ID:            it.ID,
		Products:      products,
		SupplierCost:  it.SupplierCost,
		ShippingCost:  it.ShippingCost,
		PackagingCost: it.PackagingCost,
		OtherExpenses: it.OtherExpenses,
		CreatedAt:     timeFromString(it.CreatedAt),
		UpdatedAt:     timeFromString(it.UpdatedAt),
	}
}

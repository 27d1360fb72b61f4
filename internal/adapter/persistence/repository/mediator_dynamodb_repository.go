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

const defaultMediatorsTableName = "mediators"

type mediatorItem struct {
	ID                  string  `dynamodbav:"id"`
	Name                string  `dynamodbav:"name"`
	CommissionType      string  `dynamodbav:"commission_type"`
	CommissionValue     float64 `dynamodbav:"commission_value"`
	SettlementDelayDays int     `dynamodbav:"settlement_delay_days"`
	CreatedAt           string  `dynamodbav:"created_at"`
	UpdatedAt           string  `dynamodbav:"updated_at"`
}

// MediatorDynamoRepository reads Mediators from DynamoDB. Read once per
// payment creation to snapshot commission terms.
//
// Table requirements:
//   - PK: id (string)

type MediatorDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IMediatorRepository = (*MediatorDynamoRepository)(nil)

func NewMediatorDynamoRepository(ddb *dynamodb.Client) *MediatorDynamoRepository {
	return &MediatorDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("MEDIATORS_TABLE", defaultMediatorsTableName),
	}
}

func (r *MediatorDynamoRepository) GetByID(ctx context.Context, id string) (entities.Mediator, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Mediator{}, err
	}
	if len(out.Item) == 0 {
		return entities.Mediator{}, nil
	}

	var it mediatorItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Mediator{}, err
	}
	return entities.Mediator{
		ID:                  it.ID,
		Name:                it.Name,
		CommissionType:      entities.CommissionType(it.CommissionType),
		CommissionValue:     it.CommissionValue,
		SettlementDelayDays: it.SettlementDelayDays,
		CreatedAt:           timeFromString(it.CreatedAt),
		UpdatedAt:           timeFromString(it.UpdatedAt),
	}, nil
}

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

const defaultBanksTableName = "banks"

type bankItem struct {
	ID            string `dynamodbav:"id"`
	Name          string `dynamodbav:"name"`
	AccountNumber string `dynamodbav:"account_number,omitempty"`
	CreatedAt     string `dynamodbav:"created_at"`
	UpdatedAt     string `dynamodbav:"updated_at"`
}

// BankDynamoRepository reads Banks from DynamoDB, for validating a
// payment's optional bank link.
//
// Table requirements:
//   - PK: id (string)

type BankDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IBankRepository = (*BankDynamoRepository)(nil)

func NewBankDynamoRepository(ddb *dynamodb.Client) *BankDynamoRepository {
	return &BankDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("BANKS_TABLE", defaultBanksTableName),
	}
}

func (r *BankDynamoRepository) GetByID(ctx context.Context, id string) (entities.Bank, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Bank{}, err
	}
	if len(out.Item) == 0 {
		return entities.Bank{}, nil
	}

	var it bankItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Bank{}, err
	}
	return entities.Bank{
		ID:            it.ID,
		Name:          it.Name,
		AccountNumber: it.AccountNumber,
		CreatedAt:     timeFromString(it.CreatedAt),
		UpdatedAt:     timeFromString(it.UpdatedAt),
	}, nil
}

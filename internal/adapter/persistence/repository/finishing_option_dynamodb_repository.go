package repository

import (
	"context"

	"github.com/yonubear/New-printshop/internal/domain/entities"
	"github.com/yonubear/New-printshop/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultFinishingOptionsTableName = "finishing_options"

type finishingOptionItem struct {
	ID            string `dynamodbav:"id"`
	Name          string `dynamodbav:"name"`
	Description   string `dynamodbav:"description,omitempty"`
	Category      string `dynamodbav:"category"`
	BasePrice     string `dynamodbav:"base_price"`
	PricePerPiece string `dynamodbav:"price_per_piece"`
	PricePerSqft  string `dynamodbav:"price_per_sqft"`
	MinimumPrice  string `dynamodbav:"minimum_price"`
}

// FinishingOptionDynamoRepository persists FinishingOption entities in
// DynamoDB.
//
// Table requirements:
//   - PK: id (string)

type FinishingOptionDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IFinishingOptionRepository = (*FinishingOptionDynamoRepository)(nil)

func NewFinishingOptionDynamoRepository(ddb *dynamodb.Client) *FinishingOptionDynamoRepository {
	return &FinishingOptionDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("FINISHING_OPTIONS_TABLE", defaultFinishingOptionsTableName),
	}
}

func (r *FinishingOptionDynamoRepository) List(ctx context.Context, filter entities.FinishingOptionFilter) ([]entities.FinishingOption, error) {
	var fe filterExpression
	fe.equals("category", filter.Category)

	input := &dynamodb.ScanInput{TableName: aws.String(r.tableName)}
	if !fe.empty() {
		input.FilterExpression = aws.String(fe.expression())
		input.ExpressionAttributeNames = fe.names
		input.ExpressionAttributeValues = fe.values
	}

	options := make([]entities.FinishingOption, 0)
	paginator := dynamodb.NewScanPaginator(r.ddb, input)
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, raw := range page.Items {
			var it finishingOptionItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			options = append(options, fromFinishingOptionItem(it))
		}
	}
	return options, nil
}

func (r *FinishingOptionDynamoRepository) GetByID(ctx context.Context, id string) (entities.FinishingOption, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	if err != nil {
		return entities.FinishingOption{}, err
	}
	if len(out.Item) == 0 {
		return entities.FinishingOption{}, nil
	}

	var it finishingOptionItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.FinishingOption{}, err
	}
	return fromFinishingOptionItem(it), nil
}

func fromFinishingOptionItem(it finishingOptionItem) entities.FinishingOption {
	return entities.FinishingOption{
		ID:            it.ID,
		Name:          it.Name,
		Description:   it.Description,
		Category:      it.Category,
		BasePrice:     stringToFloat(it.BasePrice),
		PricePerPiece: stringToFloat(it.PricePerPiece),
		PricePerSqft:  stringToFloat(it.PricePerSqft),
		MinimumPrice:  stringToFloat(it.MinimumPrice),
	}
}

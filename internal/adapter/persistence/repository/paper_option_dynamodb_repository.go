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

const defaultPaperOptionsTableName = "paper_options"

type paperOptionItem struct {
	ID            string `dynamodbav:"id"`
	Name          string `dynamodbav:"name"`
	Description   string `dynamodbav:"description,omitempty"`
	Category      string `dynamodbav:"category"`
	Weight        string `dynamodbav:"weight"`
	Size          string `dynamodbav:"size"`
	Color         string `dynamodbav:"color"`
	PricingMethod string `dynamodbav:"pricing_method"`
	PricePerSheet string `dynamodbav:"price_per_sheet"`
	PricePerSqft  string `dynamodbav:"price_per_sqft"`
	CostPerSheet  string `dynamodbav:"cost_per_sheet"`
	CostPerSqft   string `dynamodbav:"cost_per_sqft"`
	Width         string `dynamodbav:"width"`
	Height        string `dynamodbav:"height"`
	IsRoll        bool   `dynamodbav:"is_roll"`
}

// PaperOptionDynamoRepository persists PaperOption entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// The catalog is small (hundreds of stocks at most), so List uses a Scan
// with an optional filter expression rather than a GSI per filter field.

type PaperOptionDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IPaperOptionRepository = (*PaperOptionDynamoRepository)(nil)

func NewPaperOptionDynamoRepository(ddb *dynamodb.Client) *PaperOptionDynamoRepository {
	return &PaperOptionDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PAPER_OPTIONS_TABLE", defaultPaperOptionsTableName),
	}
}

func (r *PaperOptionDynamoRepository) List(ctx context.Context, filter entities.PaperOptionFilter) ([]entities.PaperOption, error) {
	var fe filterExpression
	fe.equals("size", filter.Size)
	fe.equals("weight", filter.Weight)
	fe.equals("category", filter.Category)

	input := &dynamodb.ScanInput{TableName: aws.String(r.tableName)}
	if !fe.empty() {
		input.FilterExpression = aws.String(fe.expression())
		input.ExpressionAttributeNames = fe.names
		input.ExpressionAttributeValues = fe.values
	}

	options := make([]entities.PaperOption, 0)
	paginator := dynamodb.NewScanPaginator(r.ddb, input)
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, raw := range page.Items {
			var it paperOptionItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			options = append(options, fromPaperOptionItem(it))
		}
	}
	return options, nil
}

func (r *PaperOptionDynamoRepository) GetByID(ctx context.Context, id string) (entities.PaperOption, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	if err != nil {
		return entities.PaperOption{}, err
	}
	if len(out.Item) == 0 {
		return entities.PaperOption{}, nil
	}

	var it paperOptionItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.PaperOption{}, err
	}
	return fromPaperOptionItem(it), nil
}

func fromPaperOptionItem(it paperOptionItem) entities.PaperOption {
	return entities.PaperOption{
		ID:            it.ID,
		Name:          it.Name,
		Description:   it.Description,
		Category:      it.Category,
		Weight:        it.Weight,
		Size:          it.Size,
		Color:         it.Color,
		PricingMethod: entities.PricingMethod(it.PricingMethod),
		PricePerSheet: stringToFloat(it.PricePerSheet),
		PricePerSqft:  stringToFloat(it.PricePerSqft),
		CostPerSheet:  stringToFloat(it.CostPerSheet),
		CostPerSqft:   stringToFloat(it.CostPerSqft),
		Width:         stringToFloat(it.Width),
		Height:        stringToFloat(it.Height),
		IsRoll:        it.IsRoll,
	}
}

package repository

import (
	"context"
	"time"

	"github.com/yonubear/New-printshop/internal/domain/entities"
	"github.com/yonubear/New-printshop/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultPrintPricingTableName = "print_pricing"

type printPricingItem struct {
	ID            string `dynamodbav:"id"`
	Name          string `dynamodbav:"name"`
	PaperSize     string `dynamodbav:"paper_size"`
	PaperCategory string `dynamodbav:"paper_category"`
	ColorType     string `dynamodbav:"color_type"`
	PricingMethod string `dynamodbav:"pricing_method"`
	BasePrice     string `dynamodbav:"base_price"`
	PricePerSide  string `dynamodbav:"price_per_side"`
	CostPerSide   string `dynamodbav:"cost_per_side"`
	PricePerSqft  string `dynamodbav:"price_per_sqft"`
	Notes         string `dynamodbav:"notes,omitempty"`
	CreatedAt     string `dynamodbav:"created_at"`
	UpdatedAt     string `dynamodbav:"updated_at"`
}

// PrintPricingDynamoRepository persists PrintPricing entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)

type PrintPricingDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IPrintPricingRepository = (*PrintPricingDynamoRepository)(nil)

func NewPrintPricingDynamoRepository(ddb *dynamodb.Client) *PrintPricingDynamoRepository {
	return &PrintPricingDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PRINT_PRICING_TABLE", defaultPrintPricingTableName),
	}
}

func (r *PrintPricingDynamoRepository) List(ctx context.Context, filter entities.PrintPricingFilter) ([]entities.PrintPricing, error) {
	var fe filterExpression
	fe.equals("paper_size", filter.PaperSize)
	fe.equals("color_type", string(filter.ColorType))

	input := &dynamodb.ScanInput{TableName: aws.String(r.tableName)}
	if !fe.empty() {
		input.FilterExpression = aws.String(fe.expression())
		input.ExpressionAttributeNames = fe.names
		input.ExpressionAttributeValues = fe.values
	}

	records := make([]entities.PrintPricing, 0)
	paginator := dynamodb.NewScanPaginator(r.ddb, input)
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, raw := range page.Items {
			var it printPricingItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			records = append(records, fromPrintPricingItem(it))
		}
	}
	return records, nil
}

func (r *PrintPricingDynamoRepository) GetByID(ctx context.Context, id string) (entities.PrintPricing, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	if err != nil {
		return entities.PrintPricing{}, err
	}
	if len(out.Item) == 0 {
		return entities.PrintPricing{}, nil
	}

	var it printPricingItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.PrintPricing{}, err
	}
	return fromPrintPricingItem(it), nil
}

func fromPrintPricingItem(it printPricingItem) entities.PrintPricing {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return entities.PrintPricing{
		ID:            it.ID,
		Name:          it.Name,
		PaperSize:     it.PaperSize,
		PaperCategory: it.PaperCategory,
		ColorType:     entities.ColorType(it.ColorType),
		PricingMethod: entities.PricingMethod(it.PricingMethod),
		BasePrice:     stringToFloat(it.BasePrice),
		PricePerSide:  stringToFloat(it.PricePerSide),
		CostPerSide:   stringToFloat(it.CostPerSide),
		PricePerSqft:  stringToFloat(it.PricePerSqft),
		Notes:         it.Notes,
		CreatedAt:     createdAt,
		UpdatedAt:     updatedAt,
	}
}

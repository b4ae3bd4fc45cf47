package repository

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/yonubear/New-printshop/internal/domain/entities"
	"github.com/yonubear/New-printshop/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultQuotesTableName = "quotes"
	quotesNumberIndex      = "quote_number-index"
)

type quoteItemRecord struct {
	ID          string `dynamodbav:"id"`
	QuoteNumber string `dynamodbav:"quote_number"`
	Customer    string `dynamodbav:"customer"`
	Title       string `dynamodbav:"title"`
	Description string `dynamodbav:"description,omitempty"`
	Status      string `dynamodbav:"status"`
	Items       string `dynamodbav:"items"`
	TotalPrice  string `dynamodbav:"total_price"`
	ValidUntil  string `dynamodbav:"valid_until"`
	CreatedAt   string `dynamodbav:"created_at"`
	UpdatedAt   string `dynamodbav:"updated_at"`
}

// QuoteDynamoRepository persists Quote entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: quote_number-index (PK: quote_number)
//
// Line items carry the full price breakdown each, so they are stored as a
// single JSON document attribute rather than a DynamoDB list. Nothing
// queries inside an item; the table only ever reads or replaces the set
// as a whole.

type QuoteDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IQuoteRepository = (*QuoteDynamoRepository)(nil)

func NewQuoteDynamoRepository(ddb *dynamodb.Client) *QuoteDynamoRepository {
	return &QuoteDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("QUOTES_TABLE", defaultQuotesTableName),
	}
}

func (r *QuoteDynamoRepository) Create(ctx context.Context, q entities.Quote) (entities.Quote, error) {
	it, err := toQuoteItemRecord(q)
	if err != nil {
		return entities.Quote{}, err
	}
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Quote{}, err
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
		return entities.Quote{}, err
	}
	return q, nil
}

func (r *QuoteDynamoRepository) GetByID(ctx context.Context, id string) (entities.Quote, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Quote{}, err
	}
	if len(out.Item) == 0 {
		return entities.Quote{}, nil
	}

	var it quoteItemRecord
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Quote{}, err
	}
	return fromQuoteItemRecord(it)
}

func (r *QuoteDynamoRepository) GetByNumber(ctx context.Context, quoteNumber string) (entities.Quote, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(quotesNumberIndex),
		KeyConditionExpression: aws.String("quote_number = :qn"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":qn": &types.AttributeValueMemberS{Value: quoteNumber},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return entities.Quote{}, err
	}
	if len(out.Items) == 0 {
		return entities.Quote{}, nil
	}

	var it quoteItemRecord
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.Quote{}, err
	}
	// GSI projections are eventually consistent; re-read by PK for the
	// authoritative record.
	return r.GetByID(ctx, it.ID)
}

func (r *QuoteDynamoRepository) UpdateStatusByNumber(ctx context.Context, quoteNumber string, status entities.QuoteStatus) (entities.Quote, error) {
	quote, err := r.GetByNumber(ctx, quoteNumber)
	if err != nil {
		return entities.Quote{}, err
	}
	if quote.ID == "" {
		return entities.Quote{}, nil
	}

	return r.update(ctx, quote.ID, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #status = :status, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":status":     &types.AttributeValueMemberS{Value: string(status)},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#status":     "status",
			"#updated_at": "updated_at",
		}
		return expr, vals, names
	})
}

func (r *QuoteDynamoRepository) UpdateTotalByID(ctx context.Context, id string, items []entities.QuoteItem, total float64) (entities.Quote, error) {
	itemsJSON, err := json.Marshal(items)
	if err != nil {
		return entities.Quote{}, err
	}

	return r.update(ctx, id, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #items = :items, #total_price = :total_price, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":items":       &types.AttributeValueMemberS{Value: string(itemsJSON)},
			":total_price": &types.AttributeValueMemberS{Value: floatToString(total)},
			":updated_at":  &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#items":       "items",
			"#total_price": "total_price",
			"#updated_at":  "updated_at",
		}
		return expr, vals, names
	})
}

func (r *QuoteDynamoRepository) update(
	ctx context.Context,
	id string,
	build func(now string) (updateExpr string, values map[string]types.AttributeValue, names map[string]string),
) (entities.Quote, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)
	updateExpr, values, names := build(now)

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:       aws.String("attribute_exists(#id)"),
		UpdateExpression:          aws.String(updateExpr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#id": "id"}),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Quote{}, nil
		}
		return entities.Quote{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Quote{}, nil
	}
	var it quoteItemRecord
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Quote{}, err
	}
	return fromQuoteItemRecord(it)
}

func toQuoteItemRecord(q entities.Quote) (quoteItemRecord, error) {
	items := q.Items
	if items == nil {
		items = []entities.QuoteItem{}
	}
	itemsJSON, err := json.Marshal(items)
	if err != nil {
		return quoteItemRecord{}, err
	}
	return quoteItemRecord{
		ID:          q.ID,
		QuoteNumber: q.QuoteNumber,
		Customer:    q.Customer,
		Title:       q.Title,
		Description: q.Description,
		Status:      string(q.Status),
		Items:       string(itemsJSON),
		TotalPrice:  floatToString(q.TotalPrice),
		ValidUntil:  q.ValidUntil.UTC().Format(time.RFC3339Nano),
		CreatedAt:   q.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:   q.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}, nil
}

func fromQuoteItemRecord(it quoteItemRecord) (entities.Quote, error) {
	validUntil, _ := time.Parse(time.RFC3339Nano, it.ValidUntil)
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)

	var items []entities.QuoteItem
	if it.Items != "" {
		if err := json.Unmarshal([]byte(it.Items), &items); err != nil {
			return entities.Quote{}, err
		}
	}

	return entities.Quote{
		ID:          it.ID,
		QuoteNumber: it.QuoteNumber,
		Customer:    it.Customer,
		Title:       it.Title,
		Description: it.Description,
		Status:      entities.QuoteStatus(it.Status),
		Items:       items,
		TotalPrice:  stringToFloat(it.TotalPrice),
		ValidUntil:  validUntil,
		CreatedAt:   createdAt,
		UpdatedAt:   updatedAt,
	}, nil
}

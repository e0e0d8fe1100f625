package note

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"
)

const (
	attrID        = "id"
	attrCreatedAt = "created_at"

	conditionExists    = "attribute_exists(id)"
	conditionNotExists = "attribute_not_exists(id)"
)

// dynamodbAPI is the part of *dynamodb.Client used by DynamoRepository.
type dynamodbAPI interface {
	GetItem(ctx context.Context, in *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	PutItem(ctx context.Context, in *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	UpdateItem(ctx context.Context, in *dynamodb.UpdateItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error)
	DeleteItem(ctx context.Context, in *dynamodb.DeleteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error)
	Scan(ctx context.Context, in *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error)
}

// DynamoRepository stores notes in a DynamoDB table keyed by the string attribute "id".
type DynamoRepository struct {
	api   dynamodbAPI
	table string
	now   func() time.Time
}

var _ Repository = (*DynamoRepository)(nil)

func NewDynamoRepository(api dynamodbAPI, table string) (*DynamoRepository, error) {
	if api == nil {
		return nil, errors.New("note repository: dynamodb api must not be nil")
	}
	if strings.TrimSpace(table) == "" {
		return nil, errors.New("note repository: table name must not be empty")
	}
	return &DynamoRepository{api: api, table: table, now: time.Now}, nil
}

func keyOf(id string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		attrID: &types.AttributeValueMemberS{Value: id},
	}
}

func stringAttr(item map[string]types.AttributeValue, name string) string {
	if v, ok := item[name].(*types.AttributeValueMemberS); ok {
		return v.Value
	}
	return ""
}

func createdAt(item map[string]types.AttributeValue) int64 {
	v, ok := item[attrCreatedAt].(*types.AttributeValueMemberN)
	if !ok {
		return 0
	}
	n, err := strconv.ParseInt(v.Value, 10, 64)
	if err != nil {
		return 0
	}
	return n
}

func itemToNote(item map[string]types.AttributeValue) Note {
	return Note{
		ID:    stringAttr(item, attrID),
		Title: stringAttr(item, FieldTitle),
		Body:  stringAttr(item, FieldBody),
	}
}

func isConditionFailed(err error) bool {
	var ccf *types.ConditionalCheckFailedException
	return errors.As(err, &ccf)
}

// List scans the whole table and returns the notes in creation order.
func (r *DynamoRepository) List(ctx context.Context) ([]Note, error) {
	var items []map[string]types.AttributeValue
	var startKey map[string]types.AttributeValue
	for {
		out, err := r.api.Scan(ctx, &dynamodb.ScanInput{
			TableName:         aws.String(r.table),
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, fmt.Errorf("%w: scan notes: %w", ErrQueryFailed, err)
		}
		items = append(items, out.Items...)
		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		startKey = out.LastEvaluatedKey
	}

	slices.SortStableFunc(items, func(a, b map[string]types.AttributeValue) int {
		ta, tb := createdAt(a), createdAt(b)
		switch {
		case ta < tb:
			return -1
		case ta > tb:
			return 1
		}
		return 0
	})

	notes := make([]Note, 0, len(items))
	for _, item := range items {
		notes = append(notes, itemToNote(item))
	}
	return notes, nil
}

func (r *DynamoRepository) Create(ctx context.Context, params CreateParams) (Note, error) {
	n := Note{
		ID:    uuid.NewString(),
		Title: params.Title,
		Body:  params.Body,
	}

	_, err := r.api.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.table),
		Item: map[string]types.AttributeValue{
			attrID:        &types.AttributeValueMemberS{Value: n.ID},
			FieldTitle:    &types.AttributeValueMemberS{Value: n.Title},
			FieldBody:     &types.AttributeValueMemberS{Value: n.Body},
			attrCreatedAt: &types.AttributeValueMemberN{Value: strconv.FormatInt(r.now().UnixNano(), 10)},
		},
		ConditionExpression: aws.String(conditionNotExists),
	})
	if err != nil {
		return Note{}, fmt.Errorf("%w: put note: %w", ErrQueryFailed, err)
	}
	return n, nil
}

func (r *DynamoRepository) Find(ctx context.Context, id string) (Note, error) {
	id, valid := canonicalID(id)
	if !valid {
		return Note{}, ErrNotFound
	}

	out, err := r.api.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.table),
		Key:            keyOf(id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return Note{}, fmt.Errorf("%w: get note %s: %w", ErrQueryFailed, id, err)
	}
	if out == nil || len(out.Item) == 0 {
		return Note{}, ErrNotFound
	}
	return itemToNote(out.Item), nil
}

func (r *DynamoRepository) Update(ctx context.Context, id string, params UpdateParams) (Note, error) {
	id, valid := canonicalID(id)
	if !valid {
		return Note{}, ErrNotFound
	}

	var sets []string
	names := make(map[string]string, 2)
	values := make(map[string]types.AttributeValue, 2)
	if params.Title != nil {
		sets = append(sets, "#t = :t")
		names["#t"] = FieldTitle
		values[":t"] = &types.AttributeValueMemberS{Value: *params.Title}
	}
	if params.Body != nil {
		sets = append(sets, "#b = :b")
		names["#b"] = FieldBody
		values[":b"] = &types.AttributeValueMemberS{Value: *params.Body}
	}
	if len(sets) == 0 {
		return r.Find(ctx, id)
	}

	out, err := r.api.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                 aws.String(r.table),
		Key:                       keyOf(id),
		UpdateExpression:          aws.String("SET " + strings.Join(sets, ", ")),
		ConditionExpression:       aws.String(conditionExists),
		ExpressionAttributeNames:  names,
		ExpressionAttributeValues: values,
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		if isConditionFailed(err) {
			return Note{}, ErrNotFound
		}
		return Note{}, fmt.Errorf("%w: update note %s: %w", ErrQueryFailed, id, err)
	}
	return itemToNote(out.Attributes), nil
}

func (r *DynamoRepository) Delete(ctx context.Context, id string) error {
	id, valid := canonicalID(id)
	if !valid {
		return ErrNotFound
	}

	_, err := r.api.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName:           aws.String(r.table),
		Key:                 keyOf(id),
		ConditionExpression: aws.String(conditionExists),
	})
	if err != nil {
		if isConditionFailed(err) {
			return ErrNotFound
		}
		return fmt.Errorf("%w: delete note %s: %w", ErrQueryFailed, id, err)
	}
	return nil
}

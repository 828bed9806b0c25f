package repository

import (
	"context"
	"errors"

	"construtora_xyz/internal/domain/entities"
	"construtora_xyz/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// attributevalue reuses the entity json tags, so entities need no parallel
// item structs.
var marshalTag = func(o *attributevalue.EncoderOptions) { o.TagKey = "json" }
var unmarshalTag = func(o *attributevalue.DecoderOptions) { o.TagKey = "json" }

// Colecao persists one entity type in one DynamoDB table.
//
// Table requirements:
//   - PK: id (string)
//
// Semantics:
//   - GetByID of a missing id returns the zero value with a nil error.
//   - Create is conditional on the id not existing and returns ErrJaExiste
//     otherwise, which makes deterministic-id derived records retry-safe.
//   - Update of a Versionado entity is conditional on the stored version
//     matching the version the caller read; a mismatch returns
//     ErrConflitoVersao and the stored record is left untouched.

type Colecao[T entities.Registro] struct {
	ddb       *dynamodb.Client
	tableName string
}

func NewColecao[T entities.Registro](ddb *dynamodb.Client, tableEnvKey, defaultTable string) *Colecao[T] {
	return &Colecao[T]{
		ddb:       ddb,
		tableName: getenvDefault(tableEnvKey, defaultTable),
	}
}

func (c *Colecao[T]) List(ctx context.Context) ([]T, error) {
	var out []T
	var startKey map[string]types.AttributeValue

	for {
		page, err := c.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:         aws.String(c.tableName),
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}

		batch := make([]T, 0, len(page.Items))
		if err := attributevalue.UnmarshalListOfMapsWithOptions(page.Items, &batch, unmarshalTag); err != nil {
			return nil, err
		}
		out = append(out, batch...)

		if len(page.LastEvaluatedKey) == 0 {
			return out, nil
		}
		startKey = page.LastEvaluatedKey
	}
}

func (c *Colecao[T]) GetByID(ctx context.Context, id string) (T, error) {
	var zero T
	out, err := c.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(c.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return zero, err
	}
	if len(out.Item) == 0 {
		return zero, nil
	}

	var rec T
	if err := attributevalue.UnmarshalMapWithOptions(out.Item, &rec, unmarshalTag); err != nil {
		return zero, err
	}
	return rec, nil
}

func (c *Colecao[T]) Create(ctx context.Context, rec T) (T, error) {
	var zero T
	av, err := attributevalue.MarshalMapWithOptions(rec, marshalTag)
	if err != nil {
		return zero, err
	}

	_, err = c.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(c.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		if isConditionalCheckFailed(err) {
			return zero, interfaces.ErrJaExiste
		}
		return zero, err
	}
	return rec, nil
}

func (c *Colecao[T]) Update(ctx context.Context, rec T) (T, error) {
	var zero T
	av, err := attributevalue.MarshalMapWithOptions(rec, marshalTag)
	if err != nil {
		return zero, err
	}

	input := &dynamodb.PutItemInput{
		TableName:           aws.String(c.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	}

	versioned := false
	if v, ok := any(rec).(entities.Versionado); ok {
		versioned = true
		cur := v.RegistroVersion()
		av["version"] = &types.AttributeValueMemberN{Value: int64ToString(cur + 1)}
		input.ConditionExpression = aws.String("attribute_exists(#id) AND #version = :cur")
		input.ExpressionAttributeNames["#version"] = "version"
		input.ExpressionAttributeValues = map[string]types.AttributeValue{
			":cur": &types.AttributeValueMemberN{Value: int64ToString(cur)},
		}
	}

	if _, err := c.ddb.PutItem(ctx, input); err != nil {
		if isConditionalCheckFailed(err) {
			if versioned {
				return zero, interfaces.ErrConflitoVersao
			}
			// Missing record: mirror the GetByID convention.
			return zero, nil
		}
		return zero, err
	}

	var stored T
	if err := attributevalue.UnmarshalMapWithOptions(av, &stored, unmarshalTag); err != nil {
		return zero, err
	}
	return stored, nil
}

func (c *Colecao[T]) Delete(ctx context.Context, id string) error {
	_, err := c.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(c.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

func isConditionalCheckFailed(err error) bool {
	var ccf *types.ConditionalCheckFailedException
	return errors.As(err, &ccf)
}

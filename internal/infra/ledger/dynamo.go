package ledger

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"olive-mill/internal/pkg/errs"
	"olive-mill/internal/usecase/shared"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// dynamoAPI is the subset of *dynamodb.Client the ledger calls.
type dynamoAPI interface {
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
}

type movementItem struct {
	ID         string `dynamodbav:"id"`
	TankID     string `dynamodbav:"tank_id"`
	OwnerID    string `dynamodbav:"owner_id"`
	Product    int64  `dynamodbav:"product"`
	QuantityKg string `dynamodbav:"quantity_kg"`
	RecordedAt string `dynamodbav:"recorded_at"`
}

func toMovementItem(m shared.Movement) movementItem {
	return movementItem{
		ID:         m.ID.String(),
		TankID:     m.TankID.String(),
		OwnerID:    m.OwnerID.String(),
		Product:    int64(m.Product),
		QuantityKg: m.QuantityKg.String(),
		RecordedAt: m.RecordedAt.UTC().Format(time.RFC3339Nano),
	}
}

// DynamoLedger appends stock movements to a DynamoDB table.
//
// Table requirements:
//   - PK: id (string), the batch id
//
// A movement is written at most once per batch. Replaying an append for a
// batch that is already recorded succeeds without a second item.
type DynamoLedger struct {
	ddb       dynamoAPI
	tableName string
}

var _ shared.MovementLedger = (*DynamoLedger)(nil)

func NewDynamoLedger(ddb *dynamodb.Client, tableName string) *DynamoLedger {
	return &DynamoLedger{ddb: ddb, tableName: tableName}
}

func (l *DynamoLedger) Append(ctx context.Context, m shared.Movement) error {
	av, err := attributevalue.MarshalMap(toMovementItem(m))
	if err != nil {
		return errs.Wrap(err, "failed to marshal movement")
	}

	_, err = l.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(l.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		var ccf *types.ConditionalCheckFailedException
		if errors.As(err, &ccf) {
			slog.Info("movement already recorded", "batch_id", m.ID.String())
			return nil
		}
		return errs.Wrap(err, "failed to append movement")
	}
	return nil
}

// NopLedger is used when no ledger table is configured.
type NopLedger struct{}

func (NopLedger) Append(context.Context, shared.Movement) error {
	return nil
}

package store

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/dynamodb"
	"github.com/aws/aws-sdk-go/service/dynamodb/dynamodbattribute"
	"github.com/aws/aws-sdk-go/service/dynamodb/dynamodbiface"
	"github.com/fatih/structs"
	"go.smartmachine.io/facedata/pkg/facedata"
	"go.smartmachine.io/facedata/pkg/util"
	"go.uber.org/zap"
)

type FaceStore struct {
	DB        dynamodbiface.DynamoDBAPI
	TableName string
	Log       *zap.SugaredLogger
}

// Put writes record unconditionally, replacing any item with the same FaceID.
func (s *FaceStore) Put(ctx context.Context, record *facedata.FaceRecord) error {
	item, err := dynamodbattribute.MarshalMap(record)
	if err != nil {
		return util.WrapError(err, "unable to marshal face record", util.OutcomeServiceFailure)
	}

	putItemRequest := &dynamodb.PutItemInput{
		Item:      item,
		TableName: aws.String(s.TableName),
	}

	s.Log.Infow("DynamoDB PutItem Request", "Table", s.TableName, "Item", structs.Map(record))

	_, err = s.DB.PutItemWithContext(ctx, putItemRequest)
	if err != nil {
		util.LogAWSError(s.Log, "DynamoDB PutItem Error", err, "Table", s.TableName, "FaceID", record.FaceID)
		return util.WrapError(err, fmt.Sprintf("unable to write face record %q", record.FaceID), util.OutcomeServiceFailure)
	}

	return nil
}

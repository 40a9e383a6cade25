package store

import (
	"context"
	"testing"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/awserr"
	"github.com/aws/aws-sdk-go/aws/request"
	"github.com/aws/aws-sdk-go/service/dynamodb"
	"github.com/aws/aws-sdk-go/service/dynamodb/dynamodbiface"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.smartmachine.io/facedata/pkg/facedata"
	"go.smartmachine.io/facedata/pkg/util"
	"go.uber.org/zap"
)

type mockDynamoDB struct {
	dynamodbiface.DynamoDBAPI
	mock.Mock
}

func (m *mockDynamoDB) PutItemWithContext(ctx aws.Context, in *dynamodb.PutItemInput, opts ...request.Option) (*dynamodb.PutItemOutput, error) {
	args := m.Called(in)
	out, _ := args.Get(0).(*dynamodb.PutItemOutput)
	return out, args.Error(1)
}

func TestFaceStore_Put(t *testing.T) {
	db := &mockDynamoDB{}
	db.On("PutItemWithContext", mock.MatchedBy(func(in *dynamodb.PutItemInput) bool {
		return aws.StringValue(in.TableName) == "FaceData" &&
			in.ConditionExpression == nil &&
			aws.StringValue(in.Item["FaceID"].S) == "img1.jpg" &&
			aws.StringValue(in.Item["Age"].N) == "25" &&
			aws.StringValue(in.Item["Emotion"].S) == "HAPPY"
	})).Return(&dynamodb.PutItemOutput{}, nil).Once()

	s := &FaceStore{DB: db, TableName: "FaceData", Log: zap.NewNop().Sugar()}
	err := s.Put(context.Background(), &facedata.FaceRecord{FaceID: "img1.jpg", Age: 25, Emotion: "HAPPY"})
	require.NoError(t, err)
	db.AssertExpectations(t)
}

func TestFaceStore_PutError(t *testing.T) {
	db := &mockDynamoDB{}
	db.On("PutItemWithContext", mock.Anything).
		Return(nil, awserr.New(dynamodb.ErrCodeProvisionedThroughputExceededException, "slow down", nil))

	s := &FaceStore{DB: db, TableName: "FaceData", Log: zap.NewNop().Sugar()}
	err := s.Put(context.Background(), &facedata.FaceRecord{FaceID: "img1.jpg", Age: 25, Emotion: "HAPPY"})
	require.Error(t, err)
	assert.Equal(t, util.OutcomeServiceFailure, util.OutcomeOf(err))
	db.AssertNumberOfCalls(t, "PutItemWithContext", 1)
}

package main

import (
	"log"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/aws/aws-sdk-go/service/dynamodb"
	"github.com/aws/aws-sdk-go/service/rekognition"
	"github.com/aws/aws-sdk-go/service/s3"
	"go.smartmachine.io/facedata/pkg/config"
	"go.smartmachine.io/facedata/pkg/handler"
	"go.uber.org/zap"
)

func main() {
	// Setup structured logging
	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("unable to create logger: %+v", err)
	}
	defer logger.Sync()

	sess, err := config.NewSession()
	if err != nil {
		logger.Sugar().Fatalw("AWS Session Error", "Error", err)
	}

	h := handler.New(
		s3.New(sess),
		rekognition.New(sess),
		dynamodb.New(sess),
		config.TableName,
		logger.Sugar(),
	)

	lambda.Start(h.Handle)
}

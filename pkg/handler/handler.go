// Package handler reacts to an S3 upload notification: it confirms the
// object exists, runs face detection on it and stores a FaceRecord keyed by
// the object key.
//
// Every failure is reported through the returned status code rather than the
// Lambda error, so the trigger never retries an invocation.
package handler

import (
	"context"
	"fmt"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambdacontext"
	"github.com/aws/aws-sdk-go/service/dynamodb/dynamodbiface"
	"github.com/aws/aws-sdk-go/service/rekognition/rekognitioniface"
	"github.com/aws/aws-sdk-go/service/s3/s3iface"
	uuid "github.com/satori/go.uuid"
	"go.smartmachine.io/facedata/pkg/detection"
	"go.smartmachine.io/facedata/pkg/facedata"
	"go.smartmachine.io/facedata/pkg/objects"
	"go.smartmachine.io/facedata/pkg/store"
	"go.smartmachine.io/facedata/pkg/util"
	"go.uber.org/zap"
)

type Response struct {
	StatusCode int `json:"statusCode"`
}

type Handler struct {
	objects  *objects.Checker
	detector *detection.Detector
	store    *store.FaceStore
	log      *zap.SugaredLogger
}

func New(s3Svc s3iface.S3API, rekognitionSvc rekognitioniface.RekognitionAPI, db dynamodbiface.DynamoDBAPI, tableName string, log *zap.SugaredLogger) *Handler {
	return &Handler{
		objects:  &objects.Checker{S3: s3Svc, Log: log},
		detector: &detection.Detector{Rekognition: rekognitionSvc, Log: log},
		store:    &store.FaceStore{DB: db, TableName: tableName, Log: log},
		log:      log,
	}
}

// Handle processes Records[0] of event and returns 200 when a record was
// written, 400 when no face was found and 500 for anything else.
func (h *Handler) Handle(ctx context.Context, event events.S3Event) (response Response, err error) {
	log := h.log.With("RequestID", requestID(ctx))

	defer func() {
		if r := recover(); r != nil {
			log.Errorw("UploadEvent panic", "Panic", fmt.Sprint(r), "Outcome", util.OutcomeServiceFailure)
			response = Response{StatusCode: util.OutcomeServiceFailure.Status()}
			err = nil
		}
	}()

	notification, outcome := h.process(ctx, log, event)
	if notification != nil {
		log = log.With("Bucket", notification.Bucket, "Key", notification.Key)
	}

	switch outcome {
	case util.OutcomeOK:
		log.Infow("face record written", "Outcome", outcome)
	case util.OutcomeNoFaceDetected:
		log.Warnw("no face found", "Outcome", outcome)
	default:
		log.Errorw("upload event failed", "Outcome", outcome)
	}

	return Response{StatusCode: outcome.Status()}, nil
}

func (h *Handler) process(ctx context.Context, log *zap.SugaredLogger, event events.S3Event) (*facedata.UploadNotification, util.Outcome) {
	notification, err := facedata.ParseNotification(event)
	if err != nil {
		log.Errorw("invalid upload event", "Error", err, "Records", len(event.Records))
		return nil, util.OutcomeOf(err)
	}
	if len(event.Records) > 1 {
		log.Warnw("ignoring extra records", "Records", len(event.Records))
	}

	log.Infow("processing upload", "Object", fmt.Sprintf("s3://%s/%s", notification.Bucket, notification.Key))

	if err := h.objects.Check(ctx, notification.Bucket, notification.Key); err != nil {
		return notification, util.OutcomeOf(err)
	}

	faces, err := h.detector.DetectFaces(ctx, notification.Bucket, notification.Key)
	if err != nil {
		return notification, util.OutcomeOf(err)
	}

	record, err := facedata.NewFaceRecord(notification.Key, faces)
	if err != nil {
		log.Errorw("unable to derive face record", "Error", err)
		return notification, util.OutcomeOf(err)
	}

	if err := h.store.Put(ctx, record); err != nil {
		return notification, util.OutcomeOf(err)
	}

	return notification, util.OutcomeOK
}

func requestID(ctx context.Context) string {
	if lc, ok := lambdacontext.FromContext(ctx); ok && lc.AwsRequestID != "" {
		return lc.AwsRequestID
	}
	return uuid.NewV4().String()
}

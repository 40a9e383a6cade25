// Package facedata holds the upload notification and the face record derived
// from a Rekognition detection.
package facedata

import (
	"fmt"
	"net/url"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-sdk-go/service/rekognition"
	"go.smartmachine.io/facedata/pkg/util"
)

type UploadNotification struct {
	Bucket string `json:"bucket"`
	Key    string `json:"key"`
}

// FaceRecord is the item written to the FaceData table, one per object key.
type FaceRecord struct {
	FaceID  string `json:"FaceID"`
	Age     int64  `json:"Age"`
	Emotion string `json:"Emotion"`
}

// ParseNotification reads the first record of the event. Any further records
// are ignored.
func ParseNotification(event events.S3Event) (*UploadNotification, error) {
	if len(event.Records) == 0 {
		return nil, util.NewError("event has no records", util.OutcomeInvalidEvent)
	}

	entity := event.Records[0].S3
	if entity.Bucket.Name == "" {
		return nil, util.NewError("record has no bucket name", util.OutcomeInvalidEvent)
	}
	if entity.Object.Key == "" {
		return nil, util.NewError("record has no object key", util.OutcomeInvalidEvent)
	}

	key, err := url.QueryUnescape(entity.Object.Key)
	if err != nil {
		return nil, util.WrapError(err, fmt.Sprintf("unable to decode object key %q", entity.Object.Key), util.OutcomeInvalidEvent)
	}
	if key == "" {
		return nil, util.NewError("decoded object key is empty", util.OutcomeInvalidEvent)
	}

	return &UploadNotification{Bucket: entity.Bucket.Name, Key: key}, nil
}

// NewFaceRecord builds the record for key from the first detected face.
// Emotion is the first entry of that face's emotion list as returned by
// Rekognition, not the one with the highest confidence.
func NewFaceRecord(key string, faces []*rekognition.FaceDetail) (*FaceRecord, error) {
	if len(faces) == 0 {
		return nil, util.NewError("no face found", util.OutcomeNoFaceDetected)
	}

	face := faces[0]
	if face == nil || face.AgeRange == nil || face.AgeRange.Low == nil {
		return nil, util.NewError("face detail has no age range", util.OutcomeServiceFailure)
	}
	if len(face.Emotions) == 0 || face.Emotions[0] == nil || face.Emotions[0].Type == nil {
		return nil, util.NewError("face detail has no emotions", util.OutcomeServiceFailure)
	}

	return &FaceRecord{
		FaceID:  key,
		Age:     *face.AgeRange.Low,
		Emotion: *face.Emotions[0].Type,
	}, nil
}

package config

import (
	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
)

const (
	// Region must match the region of the upload bucket; Rekognition reads
	// the image from S3 in place.
	Region = "us-east-2"

	TableName = "FaceData"
)

func NewSession() (*session.Session, error) {
	return session.NewSessionWithOptions(session.Options{
		Config:            aws.Config{Region: aws.String(Region)},
		SharedConfigState: session.SharedConfigEnable,
	})
}

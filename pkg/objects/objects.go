package objects

import (
	"context"
	"fmt"
	"net/http"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/awserr"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3iface"
	"github.com/fatih/structs"
	"go.smartmachine.io/facedata/pkg/util"
	"go.uber.org/zap"
)

// HeadObject answers 404 with a bare "NotFound" code since it has no body.
const errCodeNotFound = "NotFound"

type Checker struct {
	S3  s3iface.S3API
	Log *zap.SugaredLogger
}

// Check confirms the object is visible before any detection is paid for.
func (c *Checker) Check(ctx context.Context, bucket, key string) error {
	headObjectRequest := &s3.HeadObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	}

	c.Log.Infow("S3 HeadObject Request", "Request", structs.Map(headObjectRequest))

	headObjectResponse, err := c.S3.HeadObjectWithContext(ctx, headObjectRequest)
	if err != nil {
		util.LogAWSError(c.Log, "S3 HeadObject Error", err, "Bucket", bucket, "Key", key)
		if isNotFound(err) {
			return util.WrapError(err, fmt.Sprintf("object s3://%s/%s not found", bucket, key), util.OutcomeNotFound)
		}
		return util.WrapError(err, fmt.Sprintf("object s3://%s/%s is not accessible", bucket, key), util.OutcomeServiceFailure)
	}

	c.Log.Infow("S3 HeadObject Response", "ContentLength", aws.Int64Value(headObjectResponse.ContentLength),
		"ContentType", aws.StringValue(headObjectResponse.ContentType))

	return nil
}

func isNotFound(err error) bool {
	if rerr, ok := err.(awserr.RequestFailure); ok && rerr.StatusCode() == http.StatusNotFound {
		return true
	}
	if aerr, ok := err.(awserr.Error); ok {
		switch aerr.Code() {
		case errCodeNotFound, s3.ErrCodeNoSuchKey, s3.ErrCodeNoSuchBucket:
			return true
		}
	}
	return false
}

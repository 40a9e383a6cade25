package objects

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/awserr"
	"github.com/aws/aws-sdk-go/aws/request"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3iface"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.smartmachine.io/facedata/pkg/util"
	"go.uber.org/zap"
)

type stubS3 struct {
	s3iface.S3API
	input *s3.HeadObjectInput
	err   error
}

func (s *stubS3) HeadObjectWithContext(ctx aws.Context, in *s3.HeadObjectInput, opts ...request.Option) (*s3.HeadObjectOutput, error) {
	s.input = in
	if s.err != nil {
		return nil, s.err
	}
	return &s3.HeadObjectOutput{ContentLength: aws.Int64(2048), ContentType: aws.String("image/jpeg")}, nil
}

func TestChecker_Check(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		outcome util.Outcome
	}{
		{"exists", nil, util.OutcomeOK},
		{"404", awserr.NewRequestFailure(awserr.New("NotFound", "Not Found", nil), http.StatusNotFound, "r1"), util.OutcomeNotFound},
		{"no such key", awserr.New(s3.ErrCodeNoSuchKey, "missing", nil), util.OutcomeNotFound},
		{"no such bucket", awserr.New(s3.ErrCodeNoSuchBucket, "missing", nil), util.OutcomeNotFound},
		{"forbidden", awserr.NewRequestFailure(awserr.New("Forbidden", "Forbidden", nil), http.StatusForbidden, "r2"), util.OutcomeServiceFailure},
		{"transport", errors.New("dial tcp: i/o timeout"), util.OutcomeServiceFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stub := &stubS3{err: tt.err}
			checker := &Checker{S3: stub, Log: zap.NewNop().Sugar()}

			err := checker.Check(context.Background(), "photos", "img1.jpg")
			assert.Equal(t, tt.outcome, util.OutcomeOf(err))

			require.NotNil(t, stub.input)
			assert.Equal(t, "photos", aws.StringValue(stub.input.Bucket))
			assert.Equal(t, "img1.jpg", aws.StringValue(stub.input.Key))
		})
	}
}

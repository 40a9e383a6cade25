package detection

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/rekognition"
	"github.com/aws/aws-sdk-go/service/rekognition/rekognitioniface"
	"github.com/fatih/structs"
	"go.smartmachine.io/facedata/pkg/util"
	"go.uber.org/zap"
)

type Detector struct {
	Rekognition rekognitioniface.RekognitionAPI
	Log         *zap.SugaredLogger
}

// DetectFaces asks Rekognition for the full attribute set of every face in
// the image stored at bucket/key.
func (d *Detector) DetectFaces(ctx context.Context, bucket, key string) ([]*rekognition.FaceDetail, error) {
	detectFacesRequest := &rekognition.DetectFacesInput{
		Image: &rekognition.Image{
			S3Object: &rekognition.S3Object{
				Bucket: aws.String(bucket),
				Name:   aws.String(key),
			},
		},
		Attributes: []*string{aws.String(rekognition.AttributeAll)},
	}

	d.Log.Infow("Rekognition DetectFaces Request", "Request", structs.Map(detectFacesRequest))

	detectFacesResponse, err := d.Rekognition.DetectFacesWithContext(ctx, detectFacesRequest)
	if err != nil {
		util.LogAWSError(d.Log, "Rekognition DetectFaces Error", err, "Bucket", bucket, "Key", key)
		return nil, util.WrapError(err, fmt.Sprintf("face detection failed for s3://%s/%s", bucket, key), util.OutcomeServiceFailure)
	}
	if detectFacesResponse == nil {
		return nil, util.NewError("face detection returned no response", util.OutcomeServiceFailure)
	}

	d.Log.Infow("Rekognition DetectFaces Response", "Faces", len(detectFacesResponse.FaceDetails))

	return detectFacesResponse.FaceDetails, nil
}

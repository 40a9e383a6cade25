package util

import (
	"errors"
	"net/http"

	"github.com/aws/aws-sdk-go/aws/awserr"
	"go.uber.org/zap"
)

// Outcome tags the result of one invocation. It is only turned into a
// status code at the Lambda boundary.
type Outcome string

const (
	OutcomeOK             Outcome = "OK"
	OutcomeNotFound       Outcome = "NOT_FOUND"
	OutcomeNoFaceDetected Outcome = "NO_FACE_DETECTED"
	OutcomeInvalidEvent   Outcome = "INVALID_EVENT"
	OutcomeServiceFailure Outcome = "SERVICE_FAILURE"
)

func (o Outcome) String() string {
	return string(o)
}

// Status maps the outcome onto the status code returned to the trigger.
func (o Outcome) Status() int {
	switch o {
	case OutcomeOK:
		return http.StatusOK
	case OutcomeNoFaceDetected:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

type LambdaError struct {
	Message string  `json:"message"`
	Outcome Outcome `json:"outcome"`
	Status  int     `json:"status"`
	Err     error   `json:"-"`
}

func NewError(message string, outcome Outcome) error {
	return &LambdaError{Message: message, Outcome: outcome, Status: outcome.Status()}
}

func WrapError(err error, message string, outcome Outcome) error {
	return &LambdaError{Message: message, Outcome: outcome, Status: outcome.Status(), Err: err}
}

func (le *LambdaError) Error() string {
	if le.Err != nil {
		return le.Message + ": " + le.Err.Error()
	}
	return le.Message
}

func (le *LambdaError) Unwrap() error {
	return le.Err
}

// OutcomeOf reports the outcome carried by err. Untagged errors count as
// service failures.
func OutcomeOf(err error) Outcome {
	if err == nil {
		return OutcomeOK
	}
	var le *LambdaError
	if errors.As(err, &le) {
		return le.Outcome
	}
	return OutcomeServiceFailure
}

func LogAWSError(log *zap.SugaredLogger, msg string, err error, keysAndValues ...interface{}) {
	if aerr, ok := err.(awserr.Error); ok {
		fields := append([]interface{}{"Code", aerr.Code(), "Message", aerr.Message()}, keysAndValues...)
		if rerr, ok := err.(awserr.RequestFailure); ok {
			fields = append(fields, "StatusCode", rerr.StatusCode(), "RequestID", rerr.RequestID())
		}
		log.Errorw(msg, fields...)
		return
	}
	log.Errorw(msg, append([]interface{}{"Error", err}, keysAndValues...)...)
}

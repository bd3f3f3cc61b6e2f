package errors

import (
	"strings"

	"github.com/muhammadheryan/storefront/constant"
)

type CustomError struct {
	errType constant.ErrorType
	details []string
}

func (c CustomError) Error() string {
	msg := constant.ErrorTypeMessage[c.errType]
	if len(c.details) == 0 {
		return msg
	}
	return msg + ": " + strings.Join(c.details, ", ")
}

func (c CustomError) ErrorCode() string {
	return constant.ErrorTypeCode[c.errType]
}

func (c CustomError) ErrorHTTPCode() int {
	return constant.ErrorTypeHTTPCode[c.errType]
}

func (c CustomError) ErrorType() constant.ErrorType {
	return c.errType
}

// Details lists the fields or steps that caused the error, if any.
func (c CustomError) Details() []string {
	return c.details
}

func SetCustomError(errorType constant.ErrorType) CustomError {
	return CustomError{
		errType: errorType,
	}
}

// SetCustomErrorWithDetails attaches the violating fields to the error.
func SetCustomErrorWithDetails(errorType constant.ErrorType, details ...string) CustomError {
	return CustomError{
		errType: errorType,
		details: details,
	}
}

// TypeOf reports the ErrorType carried by err, or ErrInternal for foreign errors.
func TypeOf(err error) constant.ErrorType {
	if ce, ok := err.(CustomError); ok {
		return ce.errType
	}
	return constant.ErrInternal
}

// Normalize passes a CustomError through and turns any other error into ErrInternal.
func Normalize(err error) error {
	if err == nil {
		return nil
	}
	if _, ok := err.(CustomError); ok {
		return err
	}
	return SetCustomError(constant.ErrInternal)
}

package resp

import "errors"

var (
	ErrHeadersSent         = errors.New("headers already sent")
	ErrInvalidRedirect     = errors.New("invalid redirect target")
	ErrInvalidStatusCode   = errors.New("invalid status code")
	ErrResourceNotFound    = errors.New("resource not found")
	ErrResourceOpenFailed  = errors.New("resource open failed")
	ErrResourceReadFailed  = errors.New("resource read failed")
	ErrResourceSizeUnknown = errors.New("resource size unknown")
)

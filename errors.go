package twocaptcha

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// errCodeRe matches the service's error payload marker. The code part is
// optional: "ERROR:" with no digits yields code 0.
var errCodeRe = regexp.MustCompile(`(?i)ERROR:(\d{0,4})`)

// ServiceError is an error reported by the remote service, as opposed to a
// transport failure. Code is the service-defined numeric code (0 when the
// payload carried none).
type ServiceError struct {
	Code    int
	Message string
}

func (e *ServiceError) Error() string {
	if e.Code == 0 {
		return fmt.Sprintf("captcha service error: %s", e.Message)
	}
	return fmt.Sprintf("captcha service error %d: %s", e.Code, e.Message)
}

// TimeoutError is returned by Solve when the wall-clock deadline expires
// before the service reports a terminal result.
type TimeoutError struct {
	JobID string
	After time.Duration
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("captcha %s not solved within %s", e.JobID, e.After)
}

// BulkCountError is returned when a bulk status response carries a different
// number of fields than ids were requested. Positional pairing would silently
// misalign results, so this is a hard error.
type BulkCountError struct {
	Want int
	Got  int
}

func (e *BulkCountError) Error() string {
	return fmt.Sprintf("bulk result count mismatch: requested %d ids, response has %d fields", e.Want, e.Got)
}

// serviceErrorFromBody decodes an error payload. It scans case-insensitively
// for "ERROR:" followed by up to four digits; missing digits or a missing
// marker both yield code 0 with the raw body as the message.
func serviceErrorFromBody(body string) *ServiceError {
	code := 0
	if m := errCodeRe.FindStringSubmatch(body); m != nil && m[1] != "" {
		code, _ = strconv.Atoi(m[1])
	}
	return &ServiceError{Code: code, Message: strings.TrimSpace(body)}
}

// isErrorBody reports whether a response body carries the error marker.
func isErrorBody(body string) bool {
	return errCodeRe.MatchString(body)
}

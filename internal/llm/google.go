package llm

import (
	"errors"
	"net/http"
	"strings"

	"github.com/googleapis/gax-go/v2/apierror"
	"google.golang.org/api/googleapi"
	"google.golang.org/grpc/codes"

	"jurisflow/internal/domain"
)

// NewGoogleUpstreamError wraps a Google SDK failure, carrying the HTTP status
// the API answered with when one can be recovered from err.
func NewGoogleUpstreamError(service string, err error) *domain.UpstreamError {
	return &domain.UpstreamError{Service: service, StatusCode: GoogleStatus(err), Err: err}
}

// GoogleStatus returns the HTTP status behind a Google API error, or 0.
// Errors from gRPC transports are translated from their status code.
func GoogleStatus(err error) int {
	if err == nil {
		return 0
	}
	var gerr *googleapi.Error
	if errors.As(err, &gerr) {
		return gerr.Code
	}
	apiErr, ok := apierror.FromError(err)
	if !ok {
		return 0
	}
	if code := apiErr.HTTPCode(); code > 0 {
		return code
	}
	if st := apiErr.GRPCStatus(); st != nil {
		return httpFromCode(st.Code())
	}
	return 0
}

func httpFromCode(c codes.Code) int {
	switch c {
	case codes.OK:
		return 0
	case codes.InvalidArgument, codes.FailedPrecondition, codes.OutOfRange:
		return http.StatusBadRequest
	case codes.Unauthenticated:
		return http.StatusUnauthorized
	case codes.PermissionDenied:
		return http.StatusForbidden
	case codes.NotFound:
		return http.StatusNotFound
	case codes.AlreadyExists, codes.Aborted:
		return http.StatusConflict
	case codes.ResourceExhausted:
		return http.StatusTooManyRequests
	case codes.Canceled:
		return 499
	case codes.Unimplemented:
		return http.StatusNotImplemented
	case codes.Unavailable:
		return http.StatusServiceUnavailable
	case codes.DeadlineExceeded:
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}

// Candidate is the SDK-neutral view of the first candidate in a Gemini
// response. Texts holds its text parts; PartCount counts every part.
type Candidate struct {
	Truncated bool
	PartCount int
	Texts     []string
}

// CandidateText joins the text of c. A nil c means the response had no
// candidates.
func CandidateText(c *Candidate) (string, error) {
	if c == nil {
		return "", errors.New("empty response from API: no candidates")
	}
	if c.Truncated {
		return "", errors.New("output truncated (finish_reason: MAX_TOKENS): response exceeded output token limit")
	}
	if c.PartCount == 0 {
		return "", errors.New("empty response from API: no parts")
	}
	text := strings.Join(c.Texts, "")
	if strings.TrimSpace(text) == "" {
		return "", domain.ErrEmptyGeneration
	}
	return text, nil
}

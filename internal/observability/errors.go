package observability

import (
	"context"
	"encoding/json"
	"errors"
	"io/fs"
	"net/http"
	"strings"

	"github.com/baxromumarov/quiz-tools/internal/httpx"
	"github.com/baxromumarov/quiz-tools/internal/questions"
)

const (
	ErrorNotFound = "not_found"
	ErrorIO       = "io"
	ErrorParsing  = "parsing"
	ErrorSchema   = "schema"
	ErrorCanceled = "canceled"
	ErrorUnknown  = "unknown"
)

// ClassifyError maps a run failure to one of the Error* categories.
func ClassifyError(err error) string {
	if err == nil {
		return ErrorUnknown
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return ErrorCanceled
	}
	if errors.Is(err, fs.ErrNotExist) {
		return ErrorNotFound
	}
	var fe *httpx.FetchError
	if errors.As(err, &fe) {
		if fe.Status == http.StatusNotFound {
			return ErrorNotFound
		}
		return ErrorIO
	}
	var notArray *questions.NotArrayError
	if errors.As(err, &notArray) {
		return ErrorSchema
	}
	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &syntaxErr) || errors.As(err, &typeErr) {
		return ErrorParsing
	}
	var pathErr *fs.PathError
	if errors.As(err, &pathErr) {
		return ErrorIO
	}
	msg := strings.ToLower(err.Error())
	if strings.Contains(msg, "parse failed") ||
		strings.Contains(msg, "decode failed") ||
		strings.Contains(msg, "unexpected eof") {
		return ErrorParsing
	}
	return ErrorUnknown
}

package observability

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/baxromumarov/quiz-tools/internal/httpx"
	"github.com/baxromumarov/quiz-tools/internal/questions"
)

func TestClassifyError(t *testing.T) {
	_, statErr := os.Stat("/definitely/not/here.json")
	var syntaxErr error = &json.SyntaxError{Offset: 3}

	cases := []struct {
		name string
		err  error
		want string
	}{
		{"nil", nil, ErrorUnknown},
		{"canceled", fmt.Errorf("wrap: %w", context.Canceled), ErrorCanceled},
		{"missing file", fmt.Errorf("questions read failed: %w", statErr), ErrorNotFound},
		{"fetch 404", &httpx.FetchError{Status: http.StatusNotFound, Path: "x"}, ErrorNotFound},
		{"fetch other", &httpx.FetchError{Status: http.StatusBadRequest, Path: "x"}, ErrorIO},
		{"not array", fmt.Errorf("merge: %w", &questions.NotArrayError{Path: "p"}), ErrorSchema},
		{"syntax", fmt.Errorf("questions decode failed for p: %w", syntaxErr), ErrorParsing},
		{"permission", &os.PathError{Op: "open", Path: "p", Err: os.ErrPermission}, ErrorIO},
		{"parse message", errors.New("wiki parse failed: bad"), ErrorParsing},
		{"other", errors.New("boom"), ErrorUnknown},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ClassifyError(tc.err))
		})
	}
}

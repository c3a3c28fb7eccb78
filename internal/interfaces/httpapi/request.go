package httpapi

import (
	"fmt"
	"io"
	"net/http"

	sonic "github.com/bytedance/sonic"
	"github.com/riskibarqy/league-api/internal/platform/validation"
	"github.com/riskibarqy/league-api/internal/usecase"
	"github.com/valyala/bytebufferpool"
)

const maxBodyBytes = 1 << 20

// bodyShape lists the fields whose JSON type is checked before decoding, so
// a wrong type is reported per field instead of as malformed JSON.
type bodyShape struct {
	strings []string
	numbers []string
}

var (
	teamBodyShape = bodyShape{strings: usecase.TeamStringFields}
	gameBodyShape = bodyShape{strings: usecase.GameStringFields, numbers: usecase.GameNumberFields}
)

func errInvalidJSON(err error) error {
	return fmt.Errorf("%w: invalid json: %v", usecase.ErrInvalidInput, err)
}

// decodeBody reads a JSON object into dst. An empty body decodes as {}.
func decodeBody(w http.ResponseWriter, r *http.Request, shape bodyShape, dst any) error {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	if _, err := buf.ReadFrom(http.MaxBytesReader(w, r.Body, maxBodyBytes)); err != nil && err != io.EOF {
		return errInvalidJSON(err)
	}
	if len(buf.B) == 0 {
		return nil
	}

	var raw map[string]any
	if err := sonic.Unmarshal(buf.B, &raw); err != nil {
		return errInvalidJSON(err)
	}

	var fieldErrors validation.Errors
	fieldErrors = append(fieldErrors, validation.StringFields(raw, shape.strings...)...)
	fieldErrors = append(fieldErrors, validation.NumberFields(raw, shape.numbers...)...)
	if len(fieldErrors) > 0 {
		return fieldErrors
	}

	if err := sonic.Unmarshal(buf.B, dst); err != nil {
		return errInvalidJSON(err)
	}
	return nil
}

// Package httpjson provides the JSON request/response helpers used by all
// feature handlers: body decoding with a size cap, success rendering, and
// error rendering driven by the apierr taxonomy.
package httpjson

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"go.uber.org/zap"
	"lifelink/internal/app/system/apierr"
)

// maxBodyBytes caps request bodies; no legitimate payload here comes close.
const maxBodyBytes = 1 << 20

// Decode reads the request body as JSON into dst.
// Malformed or oversized bodies come back as InvalidInput.
func Decode(r *http.Request, dst any) error {
	body := http.MaxBytesReader(nil, r.Body, maxBodyBytes)
	dec := json.NewDecoder(body)
	if err := dec.Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return apierr.New(apierr.InvalidInput, "request body is empty")
		}
		return apierr.Wrap(apierr.InvalidInput, "malformed JSON body", err)
	}
	return nil
}

// Respond writes v as JSON with the given status.
func Respond(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// errorBody is the wire shape for all failures.
type errorBody struct {
	Error string `json:"error"`
}

// Error writes err using its apierr classification. Internal (unclassified)
// errors are logged at error level with the request path; classified errors
// are the caller's fault and only logged at debug.
func Error(w http.ResponseWriter, r *http.Request, log *zap.Logger, err error) {
	kind := apierr.KindOf(err)
	if log != nil {
		if kind == apierr.Internal || kind == apierr.Upstream {
			log.Error("request failed",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Error(err))
		} else {
			log.Debug("request rejected",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Error(err))
		}
	}
	Respond(w, apierr.HTTPStatus(kind), errorBody{Error: apierr.Message(err)})
}

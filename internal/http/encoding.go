package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/Flarenzy/subnetter/internal/codec"
)

// encode writes v in the format the client asked for through Accept.
func encode[T any](w http.ResponseWriter, r *http.Request, status int, v T) error {
	format := codec.FromContentType(r.Header.Get("Accept"))
	w.Header().Set("Content-Type", format.ContentType())
	w.WriteHeader(status)
	if err := codec.Encode(w, format, v); err != nil {
		return fmt.Errorf("encode %s: %w", format, err)
	}
	return nil
}

func decode[T any](r *http.Request) (T, error) {
	var v T
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&v); err != nil {
		return v, fmt.Errorf("decode json: %w", err)
	}
	return v, nil
}

func (a *API) respond(w http.ResponseWriter, r *http.Request, status int, v any) {
	if err := encode(w, r, status, v); err != nil {
		a.Logger.ErrorContext(r.Context(), "responding to client", "err", err.Error())
	}
}

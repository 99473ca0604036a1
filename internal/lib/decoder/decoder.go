// Package decoder maps URL query values onto tagged structs.
package decoder

import (
	"errors"
	"fmt"
	"net/url"
	"reflect"

	"github.com/google/uuid"
	"github.com/gorilla/schema"
)

type URLDecoder struct {
	dec *schema.Decoder
}

func New() *URLDecoder {
	dec := schema.NewDecoder()
	dec.IgnoreUnknownKeys(true)
	dec.SetAliasTag("schema")
	dec.RegisterConverter(uuid.UUID{}, func(s string) reflect.Value {
		id, err := uuid.Parse(s)
		if err != nil {
			return reflect.Value{}
		}
		return reflect.ValueOf(id)
	})
	return &URLDecoder{dec: dec}
}

// IgnoreUnknownKeys controls whether unexpected query keys are an error.
func (d *URLDecoder) IgnoreUnknownKeys(i bool) {
	d.dec.IgnoreUnknownKeys(i)
}

// Decode fills dst, a pointer to struct, from src. Conversion failures are
// reported per key as "<key>: invalid value".
func (d *URLDecoder) Decode(dst any, src url.Values) error {
	err := d.dec.Decode(dst, src)
	if err == nil {
		return nil
	}
	var multi schema.MultiError
	if errors.As(err, &multi) {
		for key, keyErr := range multi {
			var conv schema.ConversionError
			if errors.As(keyErr, &conv) {
				return fmt.Errorf("%s: invalid value", key)
			}
			var unknown schema.UnknownKeyError
			if errors.As(keyErr, &unknown) {
				return fmt.Errorf("%s: unknown query parameter", key)
			}
			return keyErr
		}
	}
	return err
}

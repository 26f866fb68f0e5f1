package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// call invokes ep and decodes its payload into T.
func call[T any](ctx context.Context, c *Client, ep Endpoint, req Request) (T, error) {
	var out T
	_, err := c.instrument(ctx, ep, func(ctx context.Context) (json.RawMessage, error) {
		raw, err := c.invoke(ctx, ep, req)
		if err != nil {
			return nil, err
		}
		if err := c.decode(ep, raw, &out); err != nil {
			return nil, asMalformed(ep.Name, err)
		}
		return raw, nil
	})
	if err != nil {
		var zero T
		return zero, err
	}
	return out, nil
}

// callPtr is call for single-object payloads.
func callPtr[T any](ctx context.Context, c *Client, ep Endpoint, req Request) (*T, error) {
	out, err := call[T](ctx, c, ep, req)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// exec invokes an endpoint whose response carries no result.
func exec(ctx context.Context, c *Client, ep Endpoint, req Request) error {
	_, err := c.Invoke(ctx, ep, req)
	return err
}

// decode extracts ep's payload from raw into out and validates it.
func (c *Client) decode(ep Endpoint, raw json.RawMessage, out any) error {
	if len(raw) == 0 {
		return errors.New("empty response body")
	}

	payload := raw
	if ep.PayloadKey != "" {
		var envelope map[string]json.RawMessage
		if err := json.Unmarshal(raw, &envelope); err != nil {
			return fmt.Errorf("decoding response envelope: %w", err)
		}
		value, ok := envelope[ep.PayloadKey]
		if !ok {
			return fmt.Errorf("response has no %q field", ep.PayloadKey)
		}
		payload = value
	}

	if err := json.Unmarshal(payload, out); err != nil {
		return fmt.Errorf("decoding %s payload: %w", ep.Name, err)
	}

	return c.validatePayload(out)
}

// validatePayload checks required fields on a decoded struct or on each
// element of a decoded slice.
func (c *Client) validatePayload(out any) error {
	v := reflect.ValueOf(out)
	for v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return nil
		}
		v = v.Elem()
	}

	switch v.Kind() {
	case reflect.Struct:
		return humanizeValidation(c.validate.Struct(v.Interface()))
	case reflect.Slice:
		for i := range v.Len() {
			elem := v.Index(i)
			if elem.Kind() != reflect.Struct {
				continue
			}
			if err := humanizeValidation(c.validate.Struct(elem.Interface())); err != nil {
				return fmt.Errorf("item %d: %w", i, err)
			}
		}
	}
	return nil
}

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Report JSON field names so messages match the wire format.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		if name == "" {
			return fld.Name
		}
		return name
	})
	return v
}

// humanizeValidation flattens validator errors into one readable line.
func humanizeValidation(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		switch fe.Tag() {
		case "required":
			parts = append(parts, fe.Field()+" is required")
		case "email":
			parts = append(parts, fe.Field()+" must be a valid email address")
		case "oneof":
			parts = append(parts, fmt.Sprintf("%s must be one of [%s]", fe.Field(), fe.Param()))
		default:
			if fe.Param() != "" {
				parts = append(parts, fmt.Sprintf("%s failed %s=%s", fe.Field(), fe.Tag(), fe.Param()))
			} else {
				parts = append(parts, fmt.Sprintf("%s failed %s", fe.Field(), fe.Tag()))
			}
		}
	}
	return fmt.Errorf("%s: %w", strings.Join(parts, "; "), err)
}

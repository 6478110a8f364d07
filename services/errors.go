package services

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var (
	// ErrItemExists is returned by conditional writes when the key is already taken.
	ErrItemExists = errors.New("item already exists")

	// ErrAnnouncementConflict means another announcement in the same community was created in
	// the same millisecond and the collision guard refused to overwrite it.
	ErrAnnouncementConflict = errors.New("an announcement with the same creation time already exists")

	// ErrRecordType means a stored item does not hold the kind of record that was asked for.
	ErrRecordType = errors.New("record type mismatch")

	// ErrBlobStorageDisabled is returned by upload helpers when avatars are stored inline.
	ErrBlobStorageDisabled = errors.New("blob storage is disabled")
)

// ValidationError reports required input fields that were missing or unusable. The store is
// never touched when one is returned.
type ValidationError struct {
	Fields  []string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return "missing required fields: " + strings.Join(e.Fields, ", ")
}

// StoreError wraps a failure of the record store.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("store %s failed: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

// BlobUploadError wraps a failure to move an avatar to blob storage. Profile updates log it
// and carry on.
type BlobUploadError struct {
	Key string
	Err error
}

func (e *BlobUploadError) Error() string {
	if e.Key == "" {
		return fmt.Sprintf("avatar upload failed: %v", e.Err)
	}
	return fmt.Sprintf("avatar upload to %s failed: %v", e.Key, e.Err)
}

func (e *BlobUploadError) Unwrap() error {
	return e.Err
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Report fields by their JSON names so clients see the names they sent.
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return field.Name
		}
		return name
	})
	return v
}

// ValidateStruct checks `validate` tags and converts failures into a *ValidationError.
func ValidateStruct(s any) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, fe.Field())
	}
	return &ValidationError{Fields: fields}
}

// requireFields builds a *ValidationError for every empty value, in argument order.
func requireFields(pairs ...string) error {
	var missing []string
	for i := 0; i+1 < len(pairs); i += 2 {
		if pairs[i+1] == "" {
			missing = append(missing, pairs[i])
		}
	}
	if len(missing) == 0 {
		return nil
	}
	return &ValidationError{Fields: missing}
}

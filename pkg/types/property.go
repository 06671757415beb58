package types

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Zip code bounds for five-digit postal codes.
const (
	ZipCodeMin = 10000
	ZipCodeMax = 99999
)

// ErrInvalidRecord wraps every validation failure reported by Validate.
var ErrInvalidRecord = errors.New("invalid property record")

// PropertyRecord represents a single real-estate property.
// ID is assigned by the store on creation and never mutated or reused.
// Name must be unique across all records; uniqueness is enforced by the
// store at write time, not here.
type PropertyRecord struct {
	ID        int64   `json:"id"`
	Name      string  `json:"name" validate:"required"`
	Address   string  `json:"address" validate:"required"`
	ZipCode   int64   `json:"zip_code" validate:"omitempty,min=10000,max=99999"`
	Price     float64 `json:"price" validate:"gt=0"`
	RoomCount int     `json:"room_count" validate:"gt=0"`
	Owner     string  `json:"owner" validate:"required"`
}

// validate holds the shared validator instance for PropertyRecord.
var validate = validator.New()

// Validate checks the record's field constraints. It returns an error
// wrapping ErrInvalidRecord with a one-line human-readable reason for the
// first violated constraint, or nil if the record is well-formed.
// Validation runs before any store call; a record that fails here must
// never reach the store.
func (r PropertyRecord) Validate() error {
	err := validate.Struct(r)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidRecord, constraintMessage(fieldErrs[0]))
	}
	return err
}

// constraintMessage maps a field error to the user-facing reason shown in
// validation alerts.
func constraintMessage(fe validator.FieldError) string {
	switch fe.Field() {
	case "Name":
		return "property name cannot be blank"
	case "Address":
		return "address cannot be blank"
	case "Owner":
		return "owner cannot be blank"
	case "ZipCode":
		return "zip code must be a five-digit number"
	case "Price":
		return "price must be a positive number"
	case "RoomCount":
		return "number of rooms must be a positive number"
	}
	return fe.Error()
}

// String renders the record for log lines and debug output.
func (r PropertyRecord) String() string {
	return fmt.Sprintf("PropertyRecord{id=%d, name=%q, address=%q, zipCode=%d, price=%g, roomCount=%d, owner=%q}",
		r.ID, r.Name, r.Address, r.ZipCode, r.Price, r.RoomCount, r.Owner)
}

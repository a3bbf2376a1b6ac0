package parcel

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidParcelID       = errors.New("invalid parcel id")
	ErrInvalidEmail          = errors.New("invalid email")
	ErrInvalidParcelType     = errors.New("invalid parcel type")
	ErrInvalidPaymentType    = errors.New("invalid payment type")
	ErrInvalidStatus         = errors.New("invalid status")

	ErrInvalidAddress    = errors.New("address could not be geocoded")
	ErrInvalidTransition = errors.New("status transition not permitted")
	ErrAgentRequired     = errors.New("assignment requires an agent reference")
	ErrAgentNotAllowed   = errors.New("agent reference may only be set on assignment")
	ErrParcelNotFound    = errors.New("parcel not found")
)

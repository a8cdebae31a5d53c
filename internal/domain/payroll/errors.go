package payroll

import "errors"

var (
	ErrRecordNotFound      = errors.New("payroll record not found")
	ErrRecordAlreadyExists = errors.New("payroll record already exists for this period")
	ErrAlreadyPaid         = errors.New("payroll is already Paid")
	ErrBlankStatus         = errors.New("status cannot be blank")
	ErrUnknownStatus       = errors.New("unknown payroll status")
)

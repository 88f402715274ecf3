package commons

import "errors"

var ErrRecordNotFound = errors.New("Record not found")
var ErrInsufficientBalance = errors.New("Insufficient balance")
var ErrAccountExists = errors.New("Account number already exists")
var ErrAmountTooLarge = errors.New("amount is too large")

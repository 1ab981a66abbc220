package service

import "context"

// SMSSender delivers a one-time passcode to a phone number.
type SMSSender interface {
	SendOTP(ctx context.Context, phoneNumber, code string) error
}

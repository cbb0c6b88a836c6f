package domain

import "errors"

// Login flow errors. Each is surfaced to the client as a 400 with its message.
var ErrCodeMissing = errors.New("code is missing")
var ErrTokenExchange = errors.New("token exchange failed")
var ErrUserInfoFetch = errors.New("failed to fetch user info")

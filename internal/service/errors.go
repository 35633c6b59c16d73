// SPDX-License-Identifier: Apache-2.0

package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrWrongPassword       = errors.New("wrong password")

	// Token verification failures. The three modes are distinct so that the
	// transport layer can log them separately, even though all of them are
	// surfaced to the client as 401.
	ErrTokenMalformed        = errors.New("token is malformed")
	ErrTokenSignatureInvalid = errors.New("token signature is invalid")
	ErrTokenExpired          = errors.New("token is expired")
	ErrTokenInvalid          = errors.New("token is invalid")

	ErrTokenCreationFailed = errors.New("token creation failed")

	// ErrNotPostOwner is returned when an authenticated user attempts to
	// mutate a post that belongs to somebody else.
	ErrNotPostOwner = errors.New("post belongs to another user")
)

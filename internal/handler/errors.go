package handler

import "errors"

var errNoHandlersAreCreated = errors.New("no handlers are created: check server address configs")

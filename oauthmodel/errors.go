package oauthmodel

import "errors"

var ErrMissingClientID = errors.New("client id is required")

package handlers

import "errors"

var errMissingName = errors.New("missing required arguments: name")

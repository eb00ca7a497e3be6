package polls

import "errors"

var ErrIndexOutOfRange = errors.New("feed index out of range")
var ErrLoginRequired = errors.New("login required")
var ErrNoSelection = errors.New("no choice selected")
var ErrUnauthorized = errors.New("session is no longer authorized")
var ErrInvalidRecord = errors.New("invalid poll record")
var ErrInvalidScope = errors.New("invalid feed scope")
var ErrFeedClosed = errors.New("feed is closed")
var ErrInvalidPoll = errors.New("invalid poll")

package feed

import "errors"

// ErrFrameTooLarge reports a feed frame exceeding the configured buffer.
// The connection is dropped and redialed; the feed restates state on connect.
var ErrFrameTooLarge = errors.New("feed frame exceeds buffer")

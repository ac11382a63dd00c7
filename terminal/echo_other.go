//go:build !linux && !darwin && !dragonfly && !freebsd && !netbsd && !openbsd

package terminal

import "errors"

var errEchoUnsupported = errors.New("echo suppression not supported")

func disableEcho(int) (func(), error) {
	return nil, errEchoUnsupported
}

/*
NAME
  assert.go

DESCRIPTION
  assert.go replaces the reference design's externally-linked
  assertion-failure symbol with a plain panic carrying the failed
  expression, file, and line, per spec.md SS9 ("Assertion hooks").

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package same

import (
	"fmt"
	"runtime"
)

// assertf panics with a message identifying the calling file/line if ok is
// false. Every assertf call site in this package documents a caller bug
// (spec.md SS4.7/SS7); the one call site is Generate, guarding against a call
// on a terminal Context. Nil descriptors and descriptor fields of the wrong
// length are reported as errors by NewContext instead. There is no recovery
// path.
func assertf(ok bool, format string, args ...interface{}) {
	if ok {
		return
	}
	_, file, line, _ := runtime.Caller(1)
	panic(fmt.Sprintf("same: assertion failed at %s:%d: %s", file, line, fmt.Sprintf(format, args...)))
}

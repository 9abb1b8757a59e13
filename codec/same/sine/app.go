/*
NAME
  app.go

DESCRIPTION
  app.go implements the APP sine oracle variant: delegation to a
  caller-supplied function and opaque userdata.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package sine

// AppOracle delegates every sample request to a caller-supplied function.
// The caller is responsible for any state the function needs; this package
// treats userdata as opaque.
type AppOracle struct {
	fn       Func
	userdata interface{}
}

// NewApp returns an Oracle that calls fn(userdata, t, f) for every sample.
// fn must not be nil.
func NewApp(fn Func, userdata interface{}) *AppOracle {
	if fn == nil {
		panic("sine: App variant requires a non-nil Func")
	}
	return &AppOracle{fn: fn, userdata: userdata}
}

func (o *AppOracle) Sample(t, f float32) int16 {
	return o.fn(o.userdata, t, f)
}

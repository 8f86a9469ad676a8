package mock

import "github.com/fwojciec/margins"

var _ margins.SeenFilter = (*SeenFilter)(nil)

type SeenFilter struct {
	AddFn  func(key string)
	TestFn func(key string) bool
}

func (f *SeenFilter) Add(key string) {
	f.AddFn(key)
}

func (f *SeenFilter) Test(key string) bool {
	return f.TestFn(key)
}

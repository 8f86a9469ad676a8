package mock

import "github.com/fwojciec/margins"

var _ margins.Converter = (*Converter)(nil)

type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}

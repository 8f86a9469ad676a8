package mock

import "github.com/fwojciec/margins"

var _ margins.TemplateDetector = (*TemplateDetector)(nil)

type TemplateDetector struct {
	DetectFn func(html string) margins.Template
}

func (d *TemplateDetector) Detect(html string) margins.Template {
	return d.DetectFn(html)
}

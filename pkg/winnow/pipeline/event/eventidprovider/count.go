package eventidprovider

import (
	"strconv"
	"sync/atomic"

	"github.com/constraint-foundry/winnow/pkg/winnow/pipeline"
)

var _ pipeline.EventIDProvider = &IncreasingEventIDProvider{}

// MonotonicallyIncreasingEventIDProvider returns a provider issuing
// sequential ids, useful in tests where id stability matters.
func MonotonicallyIncreasingEventIDProvider() *IncreasingEventIDProvider {
	return &IncreasingEventIDProvider{}
}

type IncreasingEventIDProvider struct {
	id int64
}

func (i *IncreasingEventIDProvider) NextEventID() pipeline.EventID {
	return pipeline.EventID(strconv.FormatInt(atomic.AddInt64(&i.id, 1), 10))
}

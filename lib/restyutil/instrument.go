package restyutil

import (
	"fmt"
	"strconv"
	"strings"
	"sync/atomic"

	"github.com/go-resty/resty/v2"
)

type instrumentCtx struct {
	output    InstrumentOutput
	idcounter *uint64
}

// DumpTraffic writes every request/response pair seen by the client to
// `output`, one file per exchange. `output` can be nil, if it is, then
// the function is a no-op.
func DumpTraffic(client *resty.Client, output InstrumentOutput) {
	if output == nil {
		return
	}

	var idcounter uint64
	i := instrumentCtx{output: output, idcounter: &idcounter}
	client.OnAfterResponse(i.onAfterResponse)
}

func (i instrumentCtx) onAfterResponse(_ *resty.Client, res *resty.Response) error {
	id := strconv.FormatUint(atomic.AddUint64(i.idcounter, 1), 10)

	var b strings.Builder
	fmt.Fprintf(&b, "%s %s\n", res.Request.Method, res.Request.URL)
	fmt.Fprintf(&b, "status: %s\n", res.Status())
	for header, values := range res.Header() {
		for _, v := range values {
			fmt.Fprintf(&b, "%s: %s\n", header, v)
		}
	}
	b.WriteString("\n")
	b.Write(res.Body())

	i.output.Write(id, b.String())
	return nil
}

package settle

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/ib-77/outcome/pkg/outcome"
	"github.com/ib-77/outcome/pkg/outcome/rpc"
)

// ErrNoResponse reports a computation that returned neither a response nor
// an error.
var ErrNoResponse = errors.New("settle: no response")

// Response settles an HTTP call. happy's failures classify like TryCtx.
// On a response, the body is read, closed and classified: a JSON-RPC error
// reply takes the failure path carrying its *rpc.ErrorObject; a success
// reply and any other body settle as Ok with the raw bytes. HTTP status is
// not inspected; only the body shape decides.
func Response(ctx context.Context,
	happy func(ctx context.Context) (*http.Response, error),
	onError Handler[json.RawMessage]) (res outcome.Result[json.RawMessage]) {

	defer func() {
		if pv := recover(); pv != nil {
			res = recoverSettled(pv, onError)
		}
	}()

	resp, err := happy(ctx)
	if err != nil {
		return classifyFailure(err, onError)
	}
	if resp == nil {
		return classifyFailure(ErrNoResponse, onError)
	}

	raw, err := readBody(resp)
	if err != nil {
		return classifyFailure(err, onError)
	}

	if shape, env := rpc.ClassifyBytes(raw); shape == rpc.ShapeError {
		return fail(env.Error, onError)
	}
	return outcome.Ok(json.RawMessage(raw))
}

func readBody(resp *http.Response) ([]byte, error) {
	if resp.Body == nil {
		return nil, nil
	}
	defer resp.Body.Close()
	return io.ReadAll(resp.Body)
}

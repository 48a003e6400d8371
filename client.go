package ldap

import (
	"context"
	"errors"

	"github.com/hashicorp/go-hclog"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "LDAP"

// Client validates requests and hands them to an Executor, tracing and
// logging each operation. It is safe for concurrent use when the Executor
// is; the requests themselves are not.
type Client struct {
	executor Executor
	logger   hclog.Logger
	tracer   trace.Tracer
}

func NewClient(executor Executor, opt ...Option) (*Client, error) {
	if executor == nil {
		return nil, errors.New("ldap: missing executor")
	}
	opts, err := getOpts(opt...)
	if err != nil {
		return nil, err
	}
	return &Client{
		executor: executor,
		logger:   opts.withLogger,
		tracer:   opts.withTracerProvider.Tracer(tracerName),
	}, nil
}

// Do runs any request. A result with a failing result code is returned
// together with an *Error.
func (c *Client) Do(ctx context.Context, req Request) (*Result, error) {
	if err := Validate(req); err != nil {
		c.logger.Error("rejected request", "error", err)
		return nil, err
	}
	op := req.OperationName()
	ctx, span := c.tracer.Start(ctx, op, trace.WithSpanKind(trace.SpanKindClient))
	defer span.End()
	span.SetAttributes(requestAttributes(req)...)

	logger := c.logger.With("op", op)
	if r, ok := req.(DNRequest); ok {
		logger = logger.With("dn", r.DN())
	}
	logger.Debug("sending request", "controls", len(req.Controls()))

	res, err := c.executor.Execute(ctx, req)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		logger.Error("request failed", "error", err)
		return nil, err
	}
	if res == nil {
		err := NewError(ErrorUnexpectedMessage, errors.New("ldap: executor returned no result"))
		span.SetStatus(codes.Error, err.Error())
		logger.Error("request failed", "error", err)
		return nil, err
	}
	span.SetAttributes(attribute.Int("ldap.result_code", int(res.Code)))
	if err := res.Err(); err != nil {
		span.SetStatus(codes.Error, err.Error())
		logger.Debug("server returned error", "code", res.Code.String(), "message", res.Message)
		return res, err
	}
	logger.Debug("request completed", "code", res.Code.String())
	return res, nil
}

func requestAttributes(req Request) []attribute.KeyValue {
	attrs := []attribute.KeyValue{
		attribute.String("ldap.operation", req.OperationName()),
		attribute.Int("ldap.controls", len(req.Controls())),
	}
	if r, ok := req.(DNRequest); ok {
		attrs = append(attrs, attribute.String("ldap.dn", r.DN()))
	}
	switch r := req.(type) {
	case *SearchRequest:
		attrs = append(attrs,
			attribute.String("ldap.search.scope", r.Scope().String()),
			attribute.String("ldap.search.filter", r.Filter),
			attribute.Int("ldap.search.size_limit", r.SizeLimit()),
			attribute.Int("ldap.search.time_limit", int(r.TimeLimitSeconds())),
			attribute.StringSlice("ldap.search.attributes", r.Attributes),
		)
	case *ExtendedRequest:
		attrs = append(attrs, attribute.String("ldap.extended.name", r.Name))
	case *ModifyDNRequest:
		attrs = append(attrs,
			attribute.String("ldap.modify_dn.new_rdn", r.NewRDN),
			attribute.Bool("ldap.modify_dn.delete_old_rdn", r.DeleteOldRDN),
		)
	}
	return attrs
}

func (c *Client) Add(ctx context.Context, req *AddRequest) (*Result, error) {
	return c.Do(ctx, req)
}

func (c *Client) Delete(ctx context.Context, req *DeleteRequest) (*Result, error) {
	return c.Do(ctx, req)
}

func (c *Client) Modify(ctx context.Context, req *ModifyRequest) (*Result, error) {
	return c.Do(ctx, req)
}

func (c *Client) ModifyDN(ctx context.Context, req *ModifyDNRequest) (*Result, error) {
	return c.Do(ctx, req)
}

func (c *Client) Search(ctx context.Context, req *SearchRequest) (*Result, error) {
	return c.Do(ctx, req)
}

func (c *Client) Extended(ctx context.Context, req *ExtendedRequest) (*Result, error) {
	return c.Do(ctx, req)
}

// Compare reports whether the entry holds the asserted value.
func (c *Client) Compare(ctx context.Context, req *CompareRequest) (bool, error) {
	res, err := c.Do(ctx, req)
	if err != nil {
		return false, err
	}
	switch res.Code {
	case LDAPResultCompareTrue:
		return true, nil
	case LDAPResultCompareFalse:
		return false, nil
	}
	return false, NewError(ErrorUnexpectedMessage, errors.New("ldap: compare returned "+res.Code.String()))
}

// SearchWithPaging repeats the search with a paging control until the
// server stops returning a cookie, and merges the pages. The paging control
// is added to the request if it does not carry one already. Each call starts
// from the first page, and the control's cookie is cleared again on return
// so the request can be run once more.
func (c *Client) SearchWithPaging(ctx context.Context, req *SearchRequest, pagingSize uint32) (*Result, error) {
	if req == nil {
		return nil, nilRequest(req)
	}
	pagingControl, _ := FindControl(req.Controls(), ControlTypePaging).(*ControlPaging)
	if pagingControl == nil {
		pagingControl = NewControlPaging(pagingSize)
		req.AddControl(pagingControl)
	}
	pagingControl.PagingSize = pagingSize
	pagingControl.SetCookie(nil)
	defer pagingControl.SetCookie(nil)

	searchResult := &Result{
		Entries:   []*Entry{},
		Referrals: []string{},
		Controls:  []Control{},
	}
	for {
		if err := ctx.Err(); err != nil {
			return searchResult, err
		}
		result, err := c.Search(ctx, req)
		if err != nil {
			return searchResult, err
		}
		searchResult.Code = result.Code
		searchResult.Entries = append(searchResult.Entries, result.Entries...)
		searchResult.Referrals = append(searchResult.Referrals, result.Referrals...)
		searchResult.Controls = append(searchResult.Controls, result.Controls...)

		pagingResult, _ := FindControl(result.Controls, ControlTypePaging).(*ControlPaging)
		if pagingResult == nil {
			c.logger.Debug("could not find paging control, stopping")
			break
		}
		if len(pagingResult.Cookie) == 0 {
			c.logger.Debug("could not find cookie, stopping")
			break
		}
		pagingControl.SetCookie(pagingResult.Cookie)
	}
	return searchResult, nil
}

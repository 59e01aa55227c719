// Package httpclient provides the resilient request executor shared by the
// Triton service clients. A Client is bound to one service endpoint and
// applies authentication, per-attempt classification, capped exponential
// backoff, and an optional circuit breaker to every request.
//
//	client, err := httpclient.New(httpclient.Config{
//	    Service: triton.ServiceVMAPI,
//	    BaseURL: "http://vmapi.coal.example.com",
//	    Auth:    httpclient.APIKeyAuth("secret"),
//	})
//	resp, err := client.Do(ctx, httpclient.Request{
//	    Method: http.MethodGet,
//	    Path:   "/vms",
//	})
//
// Typed JSON helpers live alongside the raw executor:
//
//	vms, err := httpclient.GetJSON[[]vmapi.VM](ctx, client, "/vms", query)
package httpclient

// Package feature defines the contract shared by camera feature modules.
// Each feature owns one platform-independent setting and knows how to apply
// it to the per-frame capture request.
package feature

// Feature is implemented by every camera feature module.
type Feature interface {
	// DebugName identifies the feature in logs.
	DebugName() string

	// CheckIsSupported reports whether the current camera can use this
	// feature at all.
	CheckIsSupported() bool

	// UpdateBuilder applies the feature's setting to a capture request.
	// Features that configure at session setup time instead leave this
	// a no-op.
	UpdateBuilder(b *RequestBuilder)
}

// RequestBuilder accumulates capture-request parameters before a frame
// request is issued. Not safe for concurrent use.
type RequestBuilder struct {
	params map[string]any
}

// NewRequestBuilder creates an empty capture-request builder.
func NewRequestBuilder() *RequestBuilder {
	return &RequestBuilder{params: make(map[string]any)}
}

// Set stores a request parameter.
func (b *RequestBuilder) Set(key string, value any) {
	b.params[key] = value
}

// Get returns a previously set parameter.
func (b *RequestBuilder) Get(key string) (any, bool) {
	v, ok := b.params[key]
	return v, ok
}

// Params returns a copy of all parameters set so far.
func (b *RequestBuilder) Params() map[string]any {
	out := make(map[string]any, len(b.params))
	for k, v := range b.params {
		out[k] = v
	}
	return out
}

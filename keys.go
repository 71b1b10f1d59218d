package response

// A Key stashes values in a context.Context without colliding
// with keys owned by other packages.
type Key string

const (
	// RequestIDKey stashes a unique UUID for each HTTP request.
	RequestIDKey Key = "RequestIDKey"

	// ResponderKey stashes the shared *resp.Responder for handlers to pull out.
	ResponderKey Key = "ResponderKey"
)

// String formats the stringified key with additional contextual information.
func (k Key) String() string {
	return "response context key: " + string(k)
}

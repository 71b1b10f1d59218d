/*

The middleware package provides http.Handler adapters complementing the
resp package: chaining, request IDs, HTTPS enforcement, cache suppression
and stashing a shared *resp.Responder in the request context.

*/
package middleware

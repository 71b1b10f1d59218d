/*

The resp package builds a single outgoing HTTP response:
a status code, an ordered set of headers and an optional body,
emitted to the underlying transport exactly once.

A Responder holds application-wide configuration (logging, charset,
chunk sizing) and mints a *Response per request.
A *Response exposes fluent mutators and the terminal operations
Send, Json, Redirect, Download and Stream.

*/
package resp

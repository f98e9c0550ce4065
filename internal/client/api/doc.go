// Package api is the single outbound gateway to the back-office REST API.
//
// Every request leaving the console goes through Client, which attaches the
// bearer token, the tenant header and a request id, serializes JSON or
// multipart bodies, and translates every failure into the one error shape
// the rest of the program consumes: *Error{Message, Status}.
//
// A 401 from any endpoint tears the session down: the credential source is
// cleared and the registered unauthorized hook runs, returning the console
// to the login screen. Nothing is retried automatically.
package api

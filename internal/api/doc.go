// Package api is the gigshift marketplace client.
//
// Every backend operation is an Endpoint in a manifest (method, URI template,
// auth flag, success codes, payload key). One generic pipeline turns an
// Endpoint plus a Request into an HTTP call and normalizes the response into
// either a decoded payload or an *Error:
//
//  1. The body is read in full. HTML bodies or text/html responses fail with
//     KindBackendUnavailable, whatever the status code.
//  2. Status codes outside the endpoint's success set fail. 401 on an
//     authenticated endpoint is KindUnauthorized; anything else is
//     KindApplication with the message taken from the body's "error",
//     "message" or "msg" field, in that order, else a fixed fallback.
//  3. Success bodies must be JSON. Typed operations extract the payload key,
//     decode into the DTO and validate required fields; any fault here is
//     KindMalformedResponse.
//
// Session tokens are read from the token store on every authenticated call.
// Login and Register persist the issued token; Logout deletes it.
package api

// Package errors provides the coded error type used across the viewer.
//
// Every error that can reach the status line carries a Code and a
// user-facing Message. The message is what the viewer shows; the code lets
// callers branch without string matching.
//
// # Basic Usage
//
//	err := errors.NotFound("Not found (try another name/ID).")
//	err := errors.HTTPStatus(503)
//
// Wrapping a transport failure while keeping its text visible:
//
//	if err != nil {
//	    return errors.Network(err)
//	}
//
// # Error Checking
//
//	if errors.IsNotFound(err) {
//	    // ask for another name
//	}
//	msg := errors.GetMessage(err)
package errors

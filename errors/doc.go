/*
Package errors provides the error values returned by the admin list contract
and its host.

Every error returned to a client wraps one of the root errors declared with
Register. The root error code is sent to the client as the ABCI code, so it
can tell apart an unauthorized call from a malformed message. Errors that do
not wrap a root error are internal and their message is hidden unless the
host runs in debug mode.

Create errors at the point of failure with Wrap or Wrapf, which attach a
stack trace on the first wrap:

	return errors.Wrapf(errors.ErrUnauthorized, "sender %s", caller)

Validation that reports many problems at once combines them with Append and
Field. The first appended error decides the ABCI code.

Formatting verbs:
	%s  the error message
	%v  the message and the location of the first wrap
	%+v the message and the full stack trace
*/
package errors

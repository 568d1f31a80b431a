package errors

// Code represents an error code
type Code string

// Error codes
const (
	CodeOK              Code = "OK"
	CodeInvalidArgument Code = "INVALID_ARGUMENT"
	CodeNotFound        Code = "NOT_FOUND"
	CodeHTTPError       Code = "HTTP_ERROR"
	CodeNetwork         Code = "NETWORK"
	CodeImageDecode     Code = "IMAGE_DECODE"
	CodeCanceled        Code = "CANCELED"
	CodeInternal        Code = "INTERNAL"
)

// String returns the string representation of the code
func (c Code) String() string {
	return string(c)
}

// IsFatalToQuery reports whether an error with this code fails the whole
// query. Image decode failures only drop the sprite.
func (c Code) IsFatalToQuery() bool {
	return c != CodeOK && c != CodeImageDecode
}

package errors_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/pokeview/pokedex/internal/errors"
)

type ErrorsTestSuite struct {
	suite.Suite
}

func TestErrorsSuite(t *testing.T) {
	suite.Run(t, new(ErrorsTestSuite))
}

func (s *ErrorsTestSuite) TestNewError() {
	testCases := []struct {
		name     string
		code     errors.Code
		message  string
		expected string
	}{
		{
			name:     "not found error",
			code:     errors.CodeNotFound,
			message:  errors.NotFoundMessage,
			expected: "NOT_FOUND: Not found (try another name/ID).",
		},
		{
			name:     "invalid argument error",
			code:     errors.CodeInvalidArgument,
			message:  "empty query",
			expected: "INVALID_ARGUMENT: empty query",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			err := errors.New(tc.code, tc.message)
			s.Assert().Equal(tc.expected, err.Error())
			s.Assert().Equal(tc.code, err.Code)
			s.Assert().Equal(tc.message, err.Message)
		})
	}
}

func (s *ErrorsTestSuite) TestHTTPStatus() {
	err := errors.HTTPStatus(503)

	s.Assert().Equal("HTTP 503", errors.GetMessage(err))
	s.Assert().True(errors.IsHTTPError(err))
	s.Assert().Equal(503, err.Meta["status"])
}

func (s *ErrorsTestSuite) TestNetworkKeepsUnderlyingMessage() {
	cause := fmt.Errorf("dial tcp: connection refused")
	err := errors.Network(cause)

	s.Assert().Equal("dial tcp: connection refused", errors.GetMessage(err))
	s.Assert().True(errors.IsNetwork(err))
	s.Assert().ErrorIs(err, cause)
	s.Assert().Nil(errors.Network(nil))
}

func (s *ErrorsTestSuite) TestWrapPreservesCode() {
	base := errors.NotFound(errors.NotFoundMessage)
	wrapped := errors.Wrap(base, "lookup failed")

	s.Assert().Equal(errors.CodeNotFound, wrapped.Code)
	s.Assert().True(errors.IsNotFound(wrapped))
	s.Assert().Equal("lookup failed", errors.GetMessage(wrapped))
}

func (s *ErrorsTestSuite) TestWrapPlainErrorIsInternal() {
	wrapped := errors.Wrap(fmt.Errorf("boom"), "unexpected")
	s.Assert().Equal(errors.CodeInternal, wrapped.Code)
	s.Assert().Nil(errors.Wrap(nil, "ignored"))
}

func (s *ErrorsTestSuite) TestGetCode() {
	s.Assert().Equal(errors.CodeOK, errors.GetCode(nil))
	s.Assert().Equal(errors.CodeCanceled, errors.GetCode(context.Canceled))
	s.Assert().Equal(errors.CodeInternal, errors.GetCode(fmt.Errorf("plain")))
	s.Assert().Equal(errors.CodeImageDecode, errors.GetCode(errors.ImageDecode(nil, "bad sprite")))
}

func (s *ErrorsTestSuite) TestGetMessagePlainError() {
	s.Assert().Equal("", errors.GetMessage(nil))
	s.Assert().Equal("plain", errors.GetMessage(fmt.Errorf("plain")))
}

func (s *ErrorsTestSuite) TestIsFatalToQuery() {
	s.Assert().True(errors.CodeNotFound.IsFatalToQuery())
	s.Assert().True(errors.CodeNetwork.IsFatalToQuery())
	s.Assert().False(errors.CodeImageDecode.IsFatalToQuery())
	s.Assert().False(errors.CodeOK.IsFatalToQuery())
}

func (s *ErrorsTestSuite) TestIs() {
	a := errors.NotFound("a")
	b := errors.NotFound("b")
	s.Assert().True(errors.Is(a, b))
	s.Assert().False(errors.Is(a, errors.Internal("c")))
}

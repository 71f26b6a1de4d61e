package ptr

import (
	"testing"

	"github.com/stretchr/testify/suite"
)

type pointerSuite struct {
	suite.Suite
}

func (s *pointerSuite) TestString() {
	s.Equal("ads/1.png", *String("ads/1.png"))
	s.Nil(StringOrNil(""))
	s.Equal("x", *StringOrNil("x"))
	s.Equal("", Deref(nil))
	s.Equal("x", Deref(String("x")))
}

func TestPointerSuite(t *testing.T) {
	suite.Run(t, new(pointerSuite))
}

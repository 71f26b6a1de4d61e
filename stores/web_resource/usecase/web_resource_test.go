package usecase

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	bCtx "github.com/gaslex/goapi/base/ctx"
	"github.com/gaslex/goapi/domain"
	"github.com/gaslex/goapi/domain/mocks"
)

var (
	pngContent = append([]byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR"), make([]byte, 32)...)
	mp4Content = append([]byte("\x00\x00\x00\x18ftypisom\x00\x00\x02\x00isomiso2"), make([]byte, 32)...)
)

type webResourceTestSuite struct {
	suite.Suite
	writer *mocks.WebResourceWriterRepository
	im     *webResourceUseCase
}

func (s *webResourceTestSuite) SetupTest() {
	s.writer = &mocks.WebResourceWriterRepository{}
	s.im = NewWebResourceUseCase(&WebResourceUseCaseCfg{
		Writer:          s.writer,
		MaxContentBytes: 1024,
	}).(*webResourceUseCase)
	s.im.newId = func() string { return "fixed-id" }
}

func (s *webResourceTestSuite) TearDownTest() {
	s.writer.AssertExpectations(s.T())
}

func TestWebResourceUseCase(t *testing.T) {
	suite.Run(t, new(webResourceTestSuite))
}

func (s *webResourceTestSuite) TestStoreImage() {
	c := bCtx.Background()
	s.writer.On("Store", mock.Anything, "ads/fixed-id.png", pngContent, "image/png").
		Return("https://cdn.example/ads/fixed-id.png", nil).Once()

	res, err := s.im.StoreAdContent(c, "image", pngContent)
	s.Require().NoError(err)
	s.Equal("https://cdn.example/ads/fixed-id.png", res.Url)
	s.Equal("ads/fixed-id.png", res.Path)
	s.Equal("image/png", res.ContentType)
	s.Equal(len(pngContent), res.Size)
}

func (s *webResourceTestSuite) TestStoreVideo() {
	c := bCtx.Background()
	s.writer.On("Store", mock.Anything, "ads/fixed-id.mp4", mp4Content, "video/mp4").
		Return("https://cdn.example/ads/fixed-id.mp4", nil).Once()

	res, err := s.im.StoreAdContent(c, "video", mp4Content)
	s.Require().NoError(err)
	s.Equal("video/mp4", res.ContentType)
}

func (s *webResourceTestSuite) TestFamilyMismatch() {
	c := bCtx.Background()
	_, err := s.im.StoreAdContent(c, "video", pngContent)
	s.ErrorIs(err, domain.ErrContentMismatch)

	_, err = s.im.StoreAdContent(c, "image", []byte("just some text"))
	s.ErrorIs(err, domain.ErrContentMismatch)
}

func (s *webResourceTestSuite) TestValidateDoesNotStore() {
	c := bCtx.Background()
	s.NoError(s.im.ValidateAdContent(c, "image", pngContent))
	s.ErrorIs(s.im.ValidateAdContent(c, "video", pngContent), domain.ErrContentMismatch)
}

func (s *webResourceTestSuite) TestEmptyContent() {
	_, err := s.im.StoreAdContent(bCtx.Background(), "image", nil)
	s.ErrorIs(err, domain.ErrContentMismatch)
}

func (s *webResourceTestSuite) TestTooLarge() {
	big := append(append([]byte{}, pngContent...), make([]byte, 2048)...)
	_, err := s.im.StoreAdContent(bCtx.Background(), "image", big)
	s.ErrorIs(err, domain.ErrContentTooLarge)
}

func (s *webResourceTestSuite) TestWriterFailure() {
	s.writer.On("Store", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return("", errors.New("bucket gone")).Once()

	_, err := s.im.StoreAdContent(bCtx.Background(), "image", pngContent)
	s.ErrorIs(err, domain.ErrUploadFailed)
}

func Test_familyOf(t *testing.T) {
	tests := map[string]string{
		"image/png":                 "image",
		"video/mp4":                 "video",
		"text/plain; charset=utf-8": "text",
		"application":               "application",
	}
	for in, want := range tests {
		if got := familyOf(in); got != want {
			t.Errorf("familyOf(%q) = %q, want %q", in, got, want)
		}
	}
}

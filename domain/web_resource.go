package domain

import (
	"github.com/gaslex/goapi/base/ctx"
)

// WebResourceWriterRepository stores a blob at path and returns its public url
type WebResourceWriterRepository interface {
	Store(c ctx.Ctx, path string, body []byte, contentType string) (string, error)
}

// WebResource is a stored upload
type WebResource struct {
	Url         string
	Path        string
	ContentType string
	Size        int
}

type WebResourceUseCase interface {
	// ValidateAdContent checks size and detected media family without storing
	ValidateAdContent(c ctx.Ctx, family string, content []byte) error
	// StoreAdContent checks that content matches family ("image" or
	// "video") and stores it under a generated unique path
	StoreAdContent(c ctx.Ctx, family string, content []byte) (*WebResource, error)
}

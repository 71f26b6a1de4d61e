package usecase

import (
	"path"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
	"golang.org/x/xerrors"

	bCtx "github.com/gaslex/goapi/base/ctx"
	"github.com/gaslex/goapi/base/log"
	"github.com/gaslex/goapi/domain"
)

const adContentFolder = "ads"

type WebResourceUseCaseCfg struct {
	Writer domain.WebResourceWriterRepository
	// MaxContentBytes caps a single upload, zero disables the check
	MaxContentBytes int
}

type webResourceUseCase struct {
	writer   domain.WebResourceWriterRepository
	maxBytes int
	newId    func() string
}

func NewWebResourceUseCase(cfg *WebResourceUseCaseCfg) domain.WebResourceUseCase {
	return &webResourceUseCase{
		writer:   cfg.Writer,
		maxBytes: cfg.MaxContentBytes,
		newId:    func() string { return uuid.New().String() },
	}
}

func (u *webResourceUseCase) ValidateAdContent(c bCtx.Ctx, family string, content []byte) error {
	_, err := u.detect(c, family, content)
	return err
}

func (u *webResourceUseCase) StoreAdContent(c bCtx.Ctx, family string, content []byte) (*domain.WebResource, error) {
	mime, err := u.detect(c, family, content)
	if err != nil {
		return nil, err
	}

	p := path.Join(adContentFolder, u.newId()+mime.Extension())
	url, err := u.writer.Store(c, p, content, mime.String())
	if err != nil {
		c.WithFields(log.Fields{
			"path": p,
			"err":  err,
		}).Error("writer.Store failed")
		return nil, xerrors.Errorf("%v: %w", err, domain.ErrUploadFailed)
	}
	return &domain.WebResource{
		Url:         url,
		Path:        p,
		ContentType: mime.String(),
		Size:        len(content),
	}, nil
}

func (u *webResourceUseCase) detect(c bCtx.Ctx, family string, content []byte) (*mimetype.MIME, error) {
	if len(content) == 0 {
		return nil, xerrors.Errorf("empty content: %w", domain.ErrContentMismatch)
	}
	if u.maxBytes > 0 && len(content) > u.maxBytes {
		c.WithFields(log.Fields{
			"size": len(content),
			"max":  u.maxBytes,
		}).Warn("content too large")
		return nil, xerrors.Errorf("%d bytes: %w", len(content), domain.ErrContentTooLarge)
	}

	mime := mimetype.Detect(content)
	if detected := familyOf(mime.String()); detected != family {
		c.WithFields(log.Fields{
			"family": family,
			"mime":   mime.String(),
		}).Warn("content family mismatch")
		return nil, xerrors.Errorf("detected %s, want %s: %w", mime.String(), family, domain.ErrContentMismatch)
	}
	return mime, nil
}

// familyOf returns the top-level media type, "image" for "image/png"
func familyOf(contentType string) string {
	if i := strings.IndexByte(contentType, '/'); i >= 0 {
		return contentType[:i]
	}
	return contentType
}

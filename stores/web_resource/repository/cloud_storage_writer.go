package repository

import (
	"bytes"
	"io"
	"net/url"
	"time"

	"cloud.google.com/go/storage"
	bCtx "github.com/gaslex/goapi/base/ctx"
	"github.com/gaslex/goapi/base/log"
	"github.com/gaslex/goapi/domain"
)

type CloudStorageWriterRepoCfg struct {
	Timeout    time.Duration
	Client     *storage.Client
	BucketName string
	// Url is the public base url the bucket is served from
	Url string
	// CacheControl is set on every written object when not empty
	CacheControl string
}

type cloudStorageWriterRepo struct {
	client       *storage.Client
	bucketName   string
	ctxTimeout   time.Duration
	baseUrl      *url.URL
	cacheControl string
}

func NewCloudStorageWriterRepo(cfg *CloudStorageWriterRepoCfg) (domain.WebResourceWriterRepository, error) {
	baseUrl, err := url.Parse(cfg.Url)
	if err != nil {
		return nil, err
	}
	if len(baseUrl.Path) == 0 || baseUrl.Path[len(baseUrl.Path)-1] != '/' {
		baseUrl.Path += "/"
	}
	return &cloudStorageWriterRepo{
		client:       cfg.Client,
		bucketName:   cfg.BucketName,
		ctxTimeout:   cfg.Timeout,
		baseUrl:      baseUrl,
		cacheControl: cfg.CacheControl,
	}, nil
}

func (r *cloudStorageWriterRepo) Store(c bCtx.Ctx, path string, body []byte, contentType string) (string, error) {
	contentPath, err := url.Parse(path)
	if err != nil {
		c.WithFields(log.Fields{
			"path": path,
			"err":  err,
		}).Error("url.Parse failed")
		return "", err
	}

	ctx, cancel := bCtx.WithTimeout(c, r.ctxTimeout)
	defer cancel()
	w := r.client.Bucket(r.bucketName).Object(path).NewWriter(ctx)
	if len(contentType) > 0 {
		w.ObjectAttrs.ContentType = contentType
	}
	if len(r.cacheControl) > 0 {
		w.ObjectAttrs.CacheControl = r.cacheControl
	}
	if _, err := io.Copy(w, bytes.NewReader(body)); err != nil {
		ctx.WithFields(log.Fields{
			"path": path,
			"err":  err,
		}).Error("io.Copy failed")
		w.Close()
		return "", err
	}
	if err := w.Close(); err != nil {
		ctx.WithFields(log.Fields{
			"path": path,
			"err":  err,
		}).Error("w.Close failed")
		return "", err
	}
	return r.baseUrl.ResolveReference(contentPath).String(), nil
}

package repository

import (
	"bytes"
	"io"
	"strings"
	"time"

	"github.com/gaslex/goapi/base/ctx"
	"github.com/gaslex/goapi/base/log"
	"github.com/gaslex/goapi/domain"
	ipfsapi "github.com/ipfs/go-ipfs-api"
)

// ipfsAdder is the subset of *ipfsapi.Shell used for writes
type ipfsAdder interface {
	Add(r io.Reader, options ...ipfsapi.AddOpts) (string, error)
}

type ipfsNodeWriterRepo struct {
	shell      ipfsAdder
	gatewayUrl string
}

// NewIpfsNodeWriterRepo pins content on the node behind nodeUrl. Returned urls
// point at gatewayUrl, the path argument of Store is only logged since ipfs
// content is addressed by cid.
func NewIpfsNodeWriterRepo(nodeUrl, gatewayUrl string, timeout time.Duration) domain.WebResourceWriterRepository {
	s := ipfsapi.NewShell(nodeUrl)
	s.SetTimeout(timeout)
	return newIpfsNodeWriterRepo(s, gatewayUrl)
}

func newIpfsNodeWriterRepo(s ipfsAdder, gatewayUrl string) *ipfsNodeWriterRepo {
	return &ipfsNodeWriterRepo{shell: s, gatewayUrl: strings.TrimSuffix(gatewayUrl, "/")}
}

func (r *ipfsNodeWriterRepo) Store(c ctx.Ctx, path string, body []byte, contentType string) (string, error) {
	cid, err := r.shell.Add(bytes.NewReader(body), ipfsapi.Pin(true))
	if err != nil {
		c.WithFields(log.Fields{
			"path": path,
			"err":  err,
		}).Error("shell.Add failed")
		return "", err
	}
	c.WithFields(log.Fields{
		"path":        path,
		"cid":         cid,
		"contentType": contentType,
	}).Info("pinned")
	return r.gatewayUrl + "/ipfs/" + cid, nil
}

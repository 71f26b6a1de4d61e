package repository

import (
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/gaslex/goapi/base/ctx"
	"github.com/gaslex/goapi/base/database/mongoclient"
	hcdomain "github.com/gaslex/goapi/domain/healthcheck"
)

type mongoPinger struct {
	client *mongoclient.Client
}

// NewMongoPinger pings the primary of client
func NewMongoPinger(client *mongoclient.Client) hcdomain.Pinger {
	return &mongoPinger{client: client}
}

func (p *mongoPinger) Name() string {
	return "mongo"
}

func (p *mongoPinger) Ping(c ctx.Ctx) error {
	if err := p.client.Ping(c, readpref.Primary()); err != nil {
		c.WithField("err", err).Error("ping mongo error")
		return err
	}
	return nil
}

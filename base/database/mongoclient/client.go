package mongoclient

import (
	"context"
	"crypto/tls"
	"runtime"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.mongodb.org/mongo-driver/mongo/writeconcern"
	"go.mongodb.org/mongo-driver/x/mongo/driver/connstring"

	"github.com/gaslex/goapi/base/ctx"
	"github.com/gaslex/goapi/base/log"
)

const (
	mgSocketTimeout = 60 * time.Second
	connectTimeout  = 10 * time.Second
)

// Config of a mongo connection
type Config struct {
	Uri                string
	AuthDBName         string
	DBName             string
	Ssl                bool
	SetSafe            bool
	PoolSizeMultiplier float64
}

// Client wraps mongo.Client
type Client struct {
	DbName string
	*mongo.Client
}

// MustConnectMongoClient returns MongoDB connection client if connected successfully, or it will trigger panic
func MustConnectMongoClient(cfg Config) *Client {
	cli, err := ConnectMongoClient(cfg)
	if err != nil {
		log.Log().WithFields(log.Fields{"mongoURI": cfg.Uri, "err": err}).Panic("fail to dial Mongo")
	}
	return cli
}

// ConnectMongoClient returns mongo driver client
func ConnectMongoClient(cfg Config) (*Client, error) {
	connSetting, err := connstring.Parse(cfg.Uri)
	if err != nil {
		log.Log().WithFields(log.Fields{"dbName": cfg.DBName, "err": err}).Error("fail to parse connstring")
		return nil, err
	}
	logger := log.Log().WithFields(log.Fields{"mongoHosts": connSetting.Hosts, "dbName": cfg.DBName})

	clientOpts := options.Client().ApplyURI(cfg.Uri).SetSocketTimeout(mgSocketTimeout)

	// If AuthSource is not set in connstring, set it to AuthDBName
	if connSetting.Username != "" && connSetting.AuthSource == "" && cfg.AuthDBName != "" {
		clientOpts.SetAuth(options.Credential{
			AuthMechanism:           connSetting.AuthMechanism,
			AuthMechanismProperties: connSetting.AuthMechanismProperties,
			Username:                connSetting.Username,
			Password:                connSetting.Password,
			PasswordSet:             connSetting.PasswordSet,
			AuthSource:              cfg.AuthDBName,
		})
	}

	if cfg.PoolSizeMultiplier > 0 {
		// each host has its own pool, so split the total between hosts
		poolSize := int(float64(runtime.NumCPU()) * cfg.PoolSizeMultiplier)
		poolSize = (poolSize + len(connSetting.Hosts) - 1) / len(connSetting.Hosts)
		clientOpts.SetMinPoolSize(uint64(poolSize / 4))
		clientOpts.SetMaxPoolSize(uint64(poolSize))
		logger.WithField("poolSize", poolSize).Info("mongo driver pool size")
	}

	if cfg.Ssl {
		clientOpts.SetTLSConfig(&tls.Config{})
	}

	if cfg.SetSafe {
		// Force the server to wait for a majority of members of a replica set to return
		clientOpts.SetWriteConcern(writeconcern.New(writeconcern.WMajority()))
	}
	clientOpts.SetRetryWrites(true)

	c, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()

	client, err := mongo.Connect(c, clientOpts)
	if err != nil {
		logger.WithField("err", err).Error("fail to connect mongo db")
		return nil, err
	}

	// Test if DBName is valid
	if _, err := client.Database(cfg.DBName).ListCollectionNames(c, bson.D{}); err != nil {
		logger.WithField("err", err).Error("fail to test mongo db")
		return nil, err
	}

	logger.Info("mongo connected")
	return &Client{
		Client: client,
		DbName: cfg.DBName,
	}, nil
}

func (cli *Client) Name() string {
	return "mongo"
}

// Ping checks the primary is reachable
func (cli *Client) Ping(c ctx.Ctx) error {
	return cli.Client.Ping(c, readpref.Primary())
}

package metrics

import (
	"fmt"
	"sync"

	"github.com/DataDog/datadog-go/statsd"
	"github.com/spf13/viper"

	"github.com/gaslex/goapi/base/log"
)

const (
	ddPort = 8125
	// buffer 10 metrics before sending to statsd
	bufferMetrics = 10
)

type statsCli interface {
	Gauge(name string, value float64, tags []string, rate float64) error
	Count(name string, value int64, tags []string, rate float64) error
	Histogram(name string, value float64, tags []string, rate float64) error
	TimeInMilliseconds(name string, value float64, tags []string, rate float64) error
}

var (
	initOnce = sync.Once{}
	cli      statsCli
)

func client() statsCli {
	initOnce.Do(func() {
		host := viper.GetString("datadog_host")
		if host == "" {
			cli = &LogClient{}
			return
		}
		addr := fmt.Sprintf("%s:%d", host, ddPort)
		c, err := statsd.NewBuffered(addr, bufferMetrics)
		if err != nil {
			log.Log().WithFields(log.Fields{"addr": addr, "err": err}).Error("can't talk to datadog agent, fallback to log")
			cli = &LogClient{}
			return
		}
		log.Log().WithField("addr", addr).Info("connected to datadog agent")
		cli = c
	})
	return cli
}

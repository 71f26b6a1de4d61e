/*Package metrics wraps datadog-go to faciliate metric recording
Following are naming convention of metric:
- Internal process time: *.time
- External latency: *.latency
- Error: *.err
*/
package metrics

import (
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/gaslex/goapi/base/env"
	"github.com/gaslex/goapi/base/log"
)

// Ender provides interface for BumpTime
type Ender interface {
	End()
}

// Service provides interface for metrics
type Service interface {
	BumpAvg(key string, val float64, tags ...string)
	BumpSum(key string, val float64, tags ...string)
	BumpHistogram(key string, val float64, tags ...string)

	BumpTime(key string, tags ...string) Ender
}

// New creates a metric client with package name as prefix. Metrics go to the
// datadog agent at datadog_host, or to the debug log when it is unset.
func New(pkgName string) Service {
	return &Metrics{
		pkgName: pkgName,
		tags: []string{
			// using host removes all tags associated with host
			// ref: https://docs.datadoghq.com/developers/dogstatsd/data_types/#host-tag-key
			"host:",
			"pod:" + env.PodName(),
			"env:" + viper.GetString("env_name"),
			"app:" + viper.GetString("app_name"),
		},
	}
}

type Metrics struct {
	pkgName string
	tags    []string
}

func (mt *Metrics) key(key string) string {
	return mt.pkgName + "." + key
}

func (mt *Metrics) tagsOf(tags []string) []string {
	return append(append([]string{}, mt.tags...), parseTag(tags)...)
}

func (mt *Metrics) report(fn string, key string, err error) {
	if err != nil {
		log.Log().WithFields(log.Fields{"err": err, "key": key, "func": fn}).Error("Bump fail")
	}
}

// BumpAvg bumps the average for the given key.
func (mt *Metrics) BumpAvg(key string, val float64, tags ...string) {
	mt.report("BumpAvg", key, client().Gauge(mt.key(key), val, mt.tagsOf(tags), 1))
}

// BumpSum bumps the sum for the given key.
func (mt *Metrics) BumpSum(key string, val float64, tags ...string) {
	mt.report("BumpSum", key, client().Count(mt.key(key), int64(val), mt.tagsOf(tags), 1))
}

// BumpHistogram bumps the histogram for the given key.
func (mt *Metrics) BumpHistogram(key string, val float64, tags ...string) {
	mt.report("BumpHistogram", key, client().Histogram(mt.key(key), val, mt.tagsOf(tags), 1))
}

// BumpTime starts a timer which is recorded on End:
//
//     defer s.BumpTime("transfer.time").End()
func (mt *Metrics) BumpTime(key string, tags ...string) Ender {
	return &timeTracker{
		start: time.Now(),
		end: func(d time.Duration) {
			ms := float64(d) / float64(time.Millisecond)
			mt.report("BumpTime", key, client().TimeInMilliseconds(mt.key(key), ms, mt.tagsOf(tags), 1))
		},
	}
}

type timeTracker struct {
	start time.Time
	end   func(time.Duration)
}

func (t *timeTracker) End() {
	t.end(time.Since(t.start))
}

// parseTag turns key/value pairs into datadog "key:value" tags
func parseTag(tags []string) []string {
	if len(tags)%2 != 0 {
		log.Log().WithField("tags", strings.Join(tags, ",")).Error("tag length needs to be multiple of 2")
		tags = tags[:len(tags)-1]
	}
	arr := make([]string, len(tags)/2)
	for i := 0; i < len(tags); i += 2 {
		arr[i/2] = tags[i] + ":" + tags[i+1]
	}
	return arr
}

package stats

import (
	"github.com/klokik/avdecc/pkg/entitymodel"
	"github.com/prometheus/client_golang/prometheus"
)

// Collector exposes one entity's Statistics as Prometheus metrics. It
// is additive: nothing in spec.md requires Prometheus, but §4.6's
// counters are a natural fit for prometheus.Collector's pull model,
// and every counter it already tracks maps onto a metric one-to-one.
type Collector struct {
	eid   entitymodel.EID
	stats *Statistics

	aecpRetry             *prometheus.Desc
	aecpTimeout           *prometheus.Desc
	aecpUnexpectedResp    *prometheus.Desc
	aemAecpUnsolicited    *prometheus.Desc
	aecpResponseAvgTimeMs *prometheus.Desc
	enumerationTimeMs     *prometheus.Desc
}

// NewCollector returns a Collector reporting stats under entity eid's
// label. Register it with a prometheus.Registerer to expose it.
func NewCollector(eid entitymodel.EID, stats *Statistics) *Collector {
	labels := prometheus.Labels{"entity_id": entityIDLabel(eid)}
	return &Collector{
		eid:   eid,
		stats: stats,
		aecpRetry: prometheus.NewDesc(
			"avdecc_aecp_retry_total", "Total AECP command retries issued.", nil, labels),
		aecpTimeout: prometheus.NewDesc(
			"avdecc_aecp_timeout_total", "Total AECP commands that timed out.", nil, labels),
		aecpUnexpectedResp: prometheus.NewDesc(
			"avdecc_aecp_unexpected_response_total", "Total AECP responses matching no outstanding expectation.", nil, labels),
		aemAecpUnsolicited: prometheus.NewDesc(
			"avdecc_aem_aecp_unsolicited_total", "Total unsolicited AEM notifications received.", nil, labels),
		aecpResponseAvgTimeMs: prometheus.NewDesc(
			"avdecc_aecp_response_average_time_ms", "Rolling average AECP response time, in milliseconds.", nil, labels),
		enumerationTimeMs: prometheus.NewDesc(
			"avdecc_enumeration_time_ms", "Duration of the last completed enumeration, in milliseconds.", nil, labels),
	}
}

// Describe implements prometheus.Collector.
func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.aecpRetry
	ch <- c.aecpTimeout
	ch <- c.aecpUnexpectedResp
	ch <- c.aemAecpUnsolicited
	ch <- c.aecpResponseAvgTimeMs
	ch <- c.enumerationTimeMs
}

// Collect implements prometheus.Collector.
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	ch <- prometheus.MustNewConstMetric(c.aecpRetry, prometheus.CounterValue, float64(c.stats.AecpRetryCounter()))
	ch <- prometheus.MustNewConstMetric(c.aecpTimeout, prometheus.CounterValue, float64(c.stats.AecpTimeoutCounter()))
	ch <- prometheus.MustNewConstMetric(c.aecpUnexpectedResp, prometheus.CounterValue, float64(c.stats.AecpUnexpectedResponseCounter()))
	ch <- prometheus.MustNewConstMetric(c.aemAecpUnsolicited, prometheus.CounterValue, float64(c.stats.AemAecpUnsolicitedCounter()))
	ch <- prometheus.MustNewConstMetric(c.aecpResponseAvgTimeMs, prometheus.GaugeValue, float64(c.stats.AecpResponseAverageTime().Milliseconds()))
	ch <- prometheus.MustNewConstMetric(c.enumerationTimeMs, prometheus.GaugeValue, float64(c.stats.EnumerationTime().Milliseconds()))
}

func entityIDLabel(eid entitymodel.EID) string {
	const hexDigits = "0123456789abcdef"
	buf := make([]byte, 16)
	for i := 15; i >= 0; i-- {
		buf[i] = hexDigits[eid&0xf]
		eid >>= 4
	}
	return "0x" + string(buf)
}

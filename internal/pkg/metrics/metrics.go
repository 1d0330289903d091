// Package metrics collects and exposes Prometheus metrics.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector counts the domain events worth watching in production.
type Collector struct {
	registry       *prometheus.Registry
	clockIns       prometheus.Counter
	clockOuts      prometheus.Counter
	importRows     *prometheus.CounterVec
	payrollReports prometheus.Counter
}

func NewCollector() *Collector {
	c := &Collector{
		registry: prometheus.NewRegistry(),
		clockIns: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "timeclock_clock_in_total",
			Help: "Number of shifts opened by clock-in.",
		}),
		clockOuts: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "timeclock_clock_out_total",
			Help: "Number of shifts closed by clock-out.",
		}),
		importRows: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "timeclock_import_rows_total",
			Help: "Bulk import rows by outcome.",
		}, []string{"outcome"}),
		payrollReports: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "timeclock_payroll_reports_total",
			Help: "Number of payroll report exports generated.",
		}),
	}

	c.registry.MustRegister(
		c.clockIns,
		c.clockOuts,
		c.importRows,
		c.payrollReports,
	)

	return c
}

func (c *Collector) RecordClockIn()  { c.clockIns.Inc() }
func (c *Collector) RecordClockOut() { c.clockOuts.Inc() }

// RecordImportRow tallies one bulk import row. outcome is one of
// "created", "unresolved_name", "invalid".
func (c *Collector) RecordImportRow(outcome string) {
	c.importRows.WithLabelValues(outcome).Inc()
}

func (c *Collector) RecordPayrollReport() { c.payrollReports.Inc() }

// Handler serves the /metrics endpoint for this collector's registry.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}

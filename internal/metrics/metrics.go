package metrics

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog/log"

	"symptomcheck/internal/history"
)

// OtherKeyword labels recorded keywords that are not catalog keywords.
const OtherKeyword = "other"

var (
	searchCountDesc = prometheus.NewDesc(
		"symptoms_keyword_searches",
		"Current search count of each catalog keyword, summed over all history owners",
		[]string{"keyword"},
		nil,
	)
)

// HistoryCollector is a custom Prometheus collector that reads search
// history from the store on each scrape. Owners never become labels, and
// keywords outside the catalog are folded into OtherKeyword.
type HistoryCollector struct {
	store    history.Store
	keywords []string
	known    map[string]bool
}

// NewHistoryCollector creates a collector over store that labels the given
// catalog keywords.
func NewHistoryCollector(store history.Store, keywords []string) *HistoryCollector {
	known := make(map[string]bool, len(keywords))
	for _, k := range keywords {
		known[k] = true
	}
	return &HistoryCollector{store: store, keywords: keywords, known: known}
}

// Describe sends the metric descriptor to the channel.
func (c *HistoryCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- searchCountDesc
}

// Collect sums every owner's search counts per catalog keyword.
func (c *HistoryCollector) Collect(ch chan<- prometheus.Metric) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	owners, err := c.store.Owners(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to collect search history metrics")
		return
	}

	totals := make(map[string]int64, len(c.keywords)+1)
	for _, owner := range owners {
		records, err := c.store.List(ctx, owner)
		if err != nil {
			log.Error().Err(err).Msg("failed to collect search history metrics")
			return
		}
		for _, r := range records {
			keyword := r.Keyword
			if !c.known[keyword] {
				keyword = OtherKeyword
			}
			totals[keyword] += r.SearchCount
		}
	}

	for keyword, total := range totals {
		ch <- prometheus.MustNewConstMetric(
			searchCountDesc,
			prometheus.GaugeValue,
			float64(total),
			keyword,
		)
	}
}

// Recorder counts search outcomes and tracks recurring complaints.
type Recorder struct {
	searches          *prometheus.CounterVec
	recurringOwners   prometheus.Gauge
	recurringKeywords prometheus.Gauge
}

// NewRecorder registers the search metrics and the history collector with reg.
// keywords are the catalog keywords the history collector may use as labels.
func NewRecorder(reg prometheus.Registerer, store history.Store, keywords []string) *Recorder {
	r := &Recorder{
		searches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "symptoms_searches_total",
			Help: "Total symptom searches by outcome",
		}, []string{"outcome"}),
		recurringOwners: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "symptoms_recurring_owners",
			Help: "Number of history owners with at least one recurring keyword",
		}),
		recurringKeywords: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "symptoms_recurring_keywords",
			Help: "Number of recurring keywords across all history owners",
		}),
	}
	reg.MustRegister(r.searches, r.recurringOwners, r.recurringKeywords, NewHistoryCollector(store, keywords))
	return r
}

// ObserveSearch records a search outcome.
func (r *Recorder) ObserveSearch(outcome string) {
	r.searches.WithLabelValues(outcome).Inc()
}

// SetRecurring publishes the totals of one advisory scan.
func (r *Recorder) SetRecurring(owners, keywords int) {
	r.recurringOwners.Set(float64(owners))
	r.recurringKeywords.Set(float64(keywords))
}

package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// DatabaseQueryLatency records database query latency by operation and table.
	DatabaseQueryLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "blog_database_query_latency_seconds",
		Help:    "Database query latency in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"operation", "table"})

	// PostsCreated counts successfully created posts.
	PostsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "blog_posts_created_total",
		Help: "Total number of posts created",
	})

	// ImagesUploaded counts stored post images.
	ImagesUploaded = promauto.NewCounter(prometheus.CounterOpts{
		Name: "blog_images_uploaded_total",
		Help: "Total number of post images uploaded",
	})

	// ImageBytesUploaded sums the size of stored post images.
	ImageBytesUploaded = promauto.NewCounter(prometheus.CounterOpts{
		Name: "blog_image_bytes_uploaded_total",
		Help: "Total bytes of post images uploaded",
	})
)

// ObserveQuery records the latency of a database query.
func ObserveQuery(operation, table string, start time.Time) {
	DatabaseQueryLatency.WithLabelValues(operation, table).Observe(time.Since(start).Seconds())
}

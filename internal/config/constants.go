package config

import "time"

const (
	envPort          = "PORT"
	envFeedAddr      = "FEED_ADDR"
	envFeedDialTO    = "FEED_DIAL_TIMEOUT"
	envFeedBackoff   = "FEED_RECONNECT_BACKOFF"
	envFeedMaxFrame  = "FEED_MAX_FRAME_BYTES"
	envFeedTypes     = "FEED_SUBSCRIBE_TYPES"
	envFeedPBPOnConn = "FEED_PBP_ON_CONNECT"
	envDebug         = "DEBUG"
	envLogLevel      = "LOG_LEVEL"
	envLogFormat     = "LOG_FORMAT"
	envMetricsPort   = "METRICS_PORT"
	envMetricsOn     = "METRICS_ENABLED"
	envOtelEndpoint  = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService   = "OTEL_SERVICE_NAME"
	envOtelInsecure  = "OTEL_EXPORTER_OTLP_INSECURE"

	defaultPort     = "4000"
	defaultFeedAddr = "127.0.0.1:7677"
	// The feed host answers slowly while a venue link is warming up.
	defaultFeedDialTimeout = 10 * Duration(time.Second)
	defaultFeedBackoff     = 2 * Duration(time.Second)
	// Largest frame observed in practice is a full play-by-play backfill;
	// 2 MiB matches the upstream client's buffer.
	defaultFeedMaxFrame = 2 << 20
	// Subscription codes: setup, actions, match info, teams, score, play-by-play.
	defaultFeedTypes   = "se,ac,mi,te,sc,pbp"
	defaultMetricsPort = "9090"
)

package config

// FeedConfig holds settings for the upstream live-stats connection.
type FeedConfig struct {
	Addr                string
	DialTimeout         Duration
	ReconnectBackoff    Duration
	MaxFrameBytes       int
	SubscribeTypes      string
	PlayByPlayOnConnect bool
}

func loadFeed() FeedConfig {
	return FeedConfig{
		Addr:                envOrDefault(envFeedAddr, defaultFeedAddr),
		DialTimeout:         durationEnvOrDefault(envFeedDialTO, defaultFeedDialTimeout),
		ReconnectBackoff:    durationEnvOrDefault(envFeedBackoff, defaultFeedBackoff),
		MaxFrameBytes:       intEnvOrDefault(envFeedMaxFrame, defaultFeedMaxFrame),
		SubscribeTypes:      envOrDefault(envFeedTypes, defaultFeedTypes),
		PlayByPlayOnConnect: boolEnvOrDefault(envFeedPBPOnConn, true),
	}
}

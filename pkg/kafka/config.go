package kafka

import (
	"strings"
	"time"
)

// Config holds Kafka producer parameters.
type Config struct {
	Brokers      []string
	ClientID     string
	BatchTimeout time.Duration
	// Async makes WriteMessages return before the broker acknowledges.
	Async bool
}

// ParseBrokers splits a comma-separated broker list, dropping blanks.
func ParseBrokers(raw string) []string {
	var brokers []string
	for _, b := range strings.Split(raw, ",") {
		if b = strings.TrimSpace(b); b != "" {
			brokers = append(brokers, b)
		}
	}
	return brokers
}

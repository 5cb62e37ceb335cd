// Package broker fans cache invalidations out to every API instance over Kafka.
package broker

import (
	"encoding/json"

	"lifepass-admin/internal/pkg/errs"

	"github.com/segmentio/kafka-go"
)

const originHeader = "origin"

var ErrMalformedMessage = errs.New("malformed invalidation message")

// Invalidation is the payload published on the invalidation topic.
type Invalidation struct {
	Tags []string `json:"tags"`
}

func encode(origin string, inv Invalidation) (kafka.Message, error) {
	value, err := json.Marshal(inv)
	if err != nil {
		return kafka.Message{}, errs.Wrap(err, "encode invalidation")
	}
	return kafka.Message{
		Key:     []byte("invalidation"),
		Value:   value,
		Headers: []kafka.Header{{Key: originHeader, Value: []byte(origin)}},
	}, nil
}

func decode(m kafka.Message) (Invalidation, string, error) {
	var inv Invalidation
	if err := json.Unmarshal(m.Value, &inv); err != nil {
		return inv, "", errs.Mark(errs.Wrap(err, "decode invalidation"), ErrMalformedMessage)
	}
	var origin string
	for _, h := range m.Headers {
		if h.Key == originHeader {
			origin = string(h.Value)
		}
	}
	return inv, origin, nil
}

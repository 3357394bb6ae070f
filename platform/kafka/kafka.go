package kafka

import (
	"context"
)

// Header is attached to every record a producer sends.
type Header struct {
	Key   string
	Value string
}

type Producer interface {
	Send(ctx context.Context, key, value []byte) error
}

package pubsub

import (
	"context"

	"granitereply/infrastructure/logger"

	"cloud.google.com/go/pubsub"
)

// ISyncEvents publishes sync lifecycle events for downstream consumers
// (analytics, notifications). Publishing is best effort.
type ISyncEvents interface {
	Publish(ctx context.Context, topic string, payload []byte) (string, error)
}

type SyncEvents struct {
	PubSubClient *pubsub.Client
}

func NewSyncEvents(pubSubClient *pubsub.Client) ISyncEvents {
	return &SyncEvents{
		PubSubClient: pubSubClient,
	}
}

func (s *SyncEvents) Publish(
	ctx context.Context,
	topicName string,
	payload []byte,
) (string, error) {
	msg := &pubsub.Message{
		Data: payload,
	}

	topic := s.PubSubClient.Topic(topicName)

	// Create the topic if it doesn't exist.
	exists, err := topic.Exists(ctx)
	if err != nil {
		return "", err
	}
	if !exists {
		logger.GetLogger().WithField("topic", topicName).Info("Topic doesn't exist - creating it")
		_, err = s.PubSubClient.CreateTopic(ctx, topicName)
		if err != nil {
			return "", err
		}
	}

	serverId, err := topic.Publish(ctx, msg).Get(ctx)
	if err != nil {
		return "", err
	}

	logger.GetLogger().WithField("server ID", serverId).Info("Message published")
	return serverId, nil
}

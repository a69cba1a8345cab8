package servicebus

import (
	"context"

	"granitereply/infrastructure/logger"

	"github.com/Azure/azure-sdk-for-go/sdk/messaging/azservicebus"
)

// ILeadQueue enqueues lead submissions for the CRM import worker.
type ILeadQueue interface {
	SendMessage(message []byte) error
}

type LeadQueue struct {
	AzservicebusClient *azservicebus.Client
	queue              string
}

func NewLeadQueue(azServiceBusClient *azservicebus.Client, queue string) ILeadQueue {
	if queue == "" {
		queue = "leads"
	}
	return &LeadQueue{AzservicebusClient: azServiceBusClient, queue: queue}
}

func (q *LeadQueue) SendMessage(message []byte) error {
	sender, err := q.AzservicebusClient.NewSender(q.queue, nil)
	if err != nil {
		logger.GetLogger().
			WithField("error", err).
			Error("Error while making new sender service bus.")
		return err
	}
	defer func(sender *azservicebus.Sender, ctx context.Context) {
		err := sender.Close(ctx)
		if err != nil {
			logger.GetLogger().
				WithField("error", err).
				Error("Error while closing sender.")
		}
	}(sender, context.Background())

	sbMessage := &azservicebus.Message{
		Body: message,
	}
	err = sender.SendMessage(context.Background(), sbMessage, nil)
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("Error while sending message.")
		return err
	}

	return nil
}

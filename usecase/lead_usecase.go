package usecase

import (
	"context"
	"encoding/json"

	"granitereply/domain/dto"
	"granitereply/domain/model"
	"granitereply/domain/repository"
	"granitereply/infrastructure/logger"
	"granitereply/infrastructure/servicebus"
)

// ILeadMailer sends the sales notification for a new lead.
type ILeadMailer interface {
	SendLeadNotification(ctx context.Context, lead *model.Lead) error
}

type ILeadUsecase interface {
	Submit(ctx context.Context, req *dto.LeadRequest) (*model.Lead, error)
}

type leadUsecase struct {
	leadRepo repository.ILead
	mailer   ILeadMailer           // optional
	queue    servicebus.ILeadQueue // optional
}

func NewLeadUsecase(leadRepo repository.ILead, mailer ILeadMailer, queue servicebus.ILeadQueue) ILeadUsecase {
	return &leadUsecase{leadRepo: leadRepo, mailer: mailer, queue: queue}
}

// Submit stores the lead, then notifies sales and enqueues a CRM import.
// Notification and queueing are best effort; the stored lead is the source of
// truth.
func (u *leadUsecase) Submit(ctx context.Context, req *dto.LeadRequest) (*model.Lead, error) {
	lead := &model.Lead{
		FullName:     req.FullName,
		Email:        req.Email,
		BusinessName: req.BusinessName,
		Plan:         req.Plan,
	}
	stored, err := u.leadRepo.Insert(ctx, lead)
	if err != nil {
		return nil, err
	}

	if u.mailer != nil {
		if err := u.mailer.SendLeadNotification(ctx, stored); err != nil {
			logger.GetLogger().WithField("error", err).Warn("Failed to send lead notification email")
		}
	}
	if u.queue != nil {
		if payload, err := json.Marshal(stored); err == nil {
			if err := u.queue.SendMessage(payload); err != nil {
				logger.GetLogger().WithField("error", err).Warn("Failed to enqueue lead for CRM import")
			}
		}
	}
	return stored, nil
}

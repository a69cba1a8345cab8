package repository

import (
	"context"

	"granitereply/domain/model"
)

type IUser interface {
	GetById(ctx context.Context, id int64) (model.User, error)
	GetByUserName(ctx context.Context, userName string) (model.User, error)
	CreateUser(ctx context.Context, user model.User) error
}

type ILead interface {
	Insert(ctx context.Context, lead *model.Lead) (*model.Lead, error)
}

// IChatLog stores widget transcripts. Saving is best effort; callers log and
// continue on error.
type IChatLog interface {
	SaveTranscript(ctx context.Context, transcript *model.ChatTranscript) error
}

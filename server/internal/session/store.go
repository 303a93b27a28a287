package session

import (
	"context"

	"learn-path/server/internal/model"
)

// Store 会话快照存储。核心逻辑在调用间无状态，会话状态全部由这里持有。
type Store interface {
	Get(ctx context.Context, id string) (*model.ConversationState, error)
	Save(ctx context.Context, s *model.ConversationState) error
}

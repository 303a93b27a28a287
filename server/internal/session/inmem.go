package session

import (
	"context"
	"errors"
	"sync"

	"learn-path/server/internal/model"
)

var ErrNotFound = errors.New("session not found")

// InMemoryStore 是一个基于内存的会话存储实现。
type InMemoryStore struct {
	mu   sync.RWMutex
	data map[string]*model.ConversationState
}

func NewInMemoryStore() *InMemoryStore {
	// 内存 store：实现简单、调试方便。
	// 注意：重启即丢数据；按设计本服务不带持久层，这是有意取舍。
	return &InMemoryStore{data: make(map[string]*model.ConversationState)}
}

// Get 根据 SessionID 获取会话快照。
func (s *InMemoryStore) Get(_ context.Context, id string) (*model.ConversationState, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	state, ok := s.data[id]
	if !ok {
		return nil, ErrNotFound
	}
	return state, nil
}

// Save 保存或更新会话快照。
func (s *InMemoryStore) Save(_ context.Context, state *model.ConversationState) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.data[state.SessionID] = state
	return nil
}

package fetcher

import (
	"context"
	"errors"
	"fmt"
)

// ErrNoLLMClient 请求的提供方没有注册客户端，属于配置错误
var ErrNoLLMClient = errors.New("no llm client registered")

// LLMFunc 用普通函数实现 LLMClient，方便测试和组合
type LLMFunc struct {
	Name LLMProvider
	Fn   func(ctx context.Context, model, prompt string) (string, error)
}

func (f LLMFunc) Provider() LLMProvider { return f.Name }

func (f LLMFunc) Generate(ctx context.Context, model, prompt string) (string, error) {
	return f.Fn(ctx, model, prompt)
}

// LLMRegistry 按提供方查找客户端
type LLMRegistry struct {
	clients map[LLMProvider]LLMClient
}

// NewLLMRegistry 注册客户端，同一提供方后注册的覆盖先注册的
func NewLLMRegistry(clients ...LLMClient) *LLMRegistry {
	r := &LLMRegistry{clients: make(map[LLMProvider]LLMClient, len(clients))}
	for _, c := range clients {
		r.clients[c.Provider()] = c
	}
	return r
}

// Client 获取客户端
func (r *LLMRegistry) Client(p LLMProvider) (LLMClient, error) {
	if r != nil {
		if c, ok := r.clients[p]; ok {
			return c, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrNoLLMClient, p)
}

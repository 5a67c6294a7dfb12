package requestid

import (
	"context"

	"github.com/danielgtaylor/huma/v2"
	"github.com/google/uuid"
)

// Header - заголовок с идентификатором запроса, его же шлет клиент
const Header = "X-Request-Id"

type contextKey string

const requestIDKey contextKey = "requestID"

// Middleware берет id из заголовка или генерирует новый и кладет его в контекст и ответ
func Middleware() func(huma.Context, func(huma.Context)) {
	return func(ctx huma.Context, next func(huma.Context)) {
		id := ctx.Header(Header)
		if id == "" {
			id = uuid.NewString()
		}
		ctx.SetHeader(Header, id)
		next(huma.WithValue(ctx, requestIDKey, id))
	}
}

// FromContext возвращает id текущего запроса
func FromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(requestIDKey).(string)
	return id, ok
}

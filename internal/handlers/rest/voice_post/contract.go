//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=voice_post_test
package voice_post

import (
	"context"

	"service/internal/service/voice"
	"service/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type DialogMachine interface {
	Turn(ctx context.Context, input voice.Input) ([]voice.Directive, error)
}

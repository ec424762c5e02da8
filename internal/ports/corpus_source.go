package ports

import (
	"context"

	"github.com/bnema/verbtrainer/internal/domain"
)

type CorpusSource interface {
	Load(ctx context.Context) (domain.CorpusData, error)
}

package usecase

import (
	"context"

	"github.com/rs/zerolog/log"
	"github.com/sobadon/epgd/domain/repository"
)

type ucPipeline struct {
	guideSource repository.GuideSource
	catalog     repository.Catalog
	identity    repository.IdentityStore
	cache       repository.DetailCache
}

func NewPipeline(
	guideSource repository.GuideSource,
	cat repository.Catalog,
	identity repository.IdentityStore,
	cache repository.DetailCache,
) *ucPipeline {
	return &ucPipeline{
		guideSource: guideSource,
		catalog:     cat,
		identity:    identity,
		cache:       cache,
	}
}

// 取得 → 突合 → 補完 → 書き出し の 1 サイクル
func (p *ucPipeline) Run(ctx context.Context, localURL string, refURL string, outputPath string) error {
	log.Ctx(ctx).Info().Msgf("fetching reference guide (url = %s)", refURL)
	ref, err := p.guideSource.Fetch(ctx, refURL)
	if err != nil {
		return err
	}

	log.Ctx(ctx).Info().Msgf("fetching local guide (url = %s)", localURL)
	local, err := p.guideSource.Fetch(ctx, localURL)
	if err != nil {
		return err
	}

	local.TransferChannelIDs(ref)
	log.Ctx(ctx).Info().Msgf("transferred channel ids (channels = %d)", len(local.Channels))

	reconciled, reconciledCount := NewReconciler().Reconcile(ctx, local.Programs, ref, nil)
	log.Ctx(ctx).Info().Msgf("reconciled programs (matched = %d, total = %d)", reconciledCount, len(reconciled))

	enricher := NewEnricher(p.catalog, p.identity, p.cache)
	enriched, successes := enricher.EnrichAll(ctx, reconciled)
	log.Ctx(ctx).Info().Msgf("enriched programs (successes = %d, total = %d)", successes, len(enriched))

	local.Programs = enriched

	err = p.guideSource.Write(local, outputPath)
	if err != nil {
		return err
	}
	log.Ctx(ctx).Info().Msgf("wrote guide (path = %s)", outputPath)
	return nil
}

package run

import (
	"context"
	"os"
	"os/signal"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/go-co-op/gocron"
	"github.com/pkg/errors"
	zlog "github.com/rs/zerolog/log"
	"github.com/sobadon/epgd/domain/repository"
	"github.com/sobadon/epgd/infrastructures/cachefile"
	"github.com/sobadon/epgd/infrastructures/sqlite"
	"github.com/sobadon/epgd/infrastructures/tmdb"
	"github.com/sobadon/epgd/infrastructures/tvmaze"
	"github.com/sobadon/epgd/infrastructures/xmltv"
	"github.com/sobadon/epgd/internal/errutil"
	"github.com/sobadon/epgd/internal/logutil"
	"github.com/sobadon/epgd/usecase"
	"github.com/spf13/cobra"
)

var (
	log = logutil.NewLogger()
)

func Command() *cobra.Command {
	var once bool
	rootCmd := &cobra.Command{
		Use:   "run",
		Short: "run pipeline",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(once)
		},
	}
	rootCmd.Flags().BoolVar(&once, "once", false, "run a single pass and exit")
	return rootCmd
}

func run(once bool) error {
	log.Info().Msg("start")

	var config config
	err := env.Parse(&config, env.Options{
		Prefix: "EPGD_",
		OnSet: func(tag string, value interface{}, isDefault bool) {
			log.Info().Msgf("Set %s to %v (default? %v)\n", tag, value, isDefault)
		},
	})
	if err != nil {
		return err
	}

	db, err := sqlite.NewDB(config.SqlitePath)
	if err != nil {
		return err
	}

	err = sqlite.Setup(db)
	if err != nil {
		return err
	}
	log.Info().Msg("setup done")

	infraIdentity := sqlite.New(db)

	infraCache, err := cachefile.New(config.CacheDir)
	if err != nil {
		return err
	}

	var infraCatalog repository.Catalog
	switch config.Catalog {
	case "tmdb":
		if config.TMDBAPIKey == "" {
			return errors.Wrap(errutil.ErrInternal, "EPGD_TMDB_API_KEY is required when catalog is tmdb")
		}
		infraCatalog = tmdb.New(config.TMDBAPIKey)
	case "tvmaze":
		infraCatalog = tvmaze.New()
	default:
		return errors.Wrapf(errutil.ErrInternal, "unknown catalog: %s", config.Catalog)
	}

	infraGuide := xmltv.New()
	ucPipeline := usecase.NewPipeline(infraGuide, infraCatalog, infraIdentity, infraCache)

	ctx := context.Background()

	if once {
		ctx = logutil.NewLogger().With().
			Str("job", "pipeline").
			Logger().WithContext(ctx)
		err = ucPipeline.Run(ctx, config.LocalGuideURL, config.ReferenceGuideURL, config.OutputPath)
		if err != nil {
			return err
		}
		defer db.Close()
		return nil
	}

	scheduler := gocron.NewScheduler(time.Local)

	jobPipeline := func(ctx context.Context, job gocron.Job) {
		ctx = logutil.NewLogger().With().
			Int("job_count", job.RunCount()).
			Str("job", "pipeline").
			Logger().WithContext(ctx)
		zlog.Ctx(ctx).Info().Msg("job start")
		err := ucPipeline.Run(ctx, config.LocalGuideURL, config.ReferenceGuideURL, config.OutputPath)
		if err != nil {
			zlog.Ctx(ctx).Error().Msgf("%+v", err)
		}
	}
	_, err = scheduler.Every(config.Interval).DoWithJobDetails(jobPipeline, ctx)
	if err != nil {
		return errors.Wrap(errutil.ErrScheduler, err.Error())
	}

	scheduler.StartAsync()
	scheduler.RunAllWithDelay(10 * time.Second)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt)
	<-quit
	log.Info().Msg("Interrupt")
	defer db.Close()

	return nil
}

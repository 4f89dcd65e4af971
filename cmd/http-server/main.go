package main

import (
	"context"

	"go.uber.org/fx"

	adapterHealth "registration/internal/adapters/health"
	httpAdapter "registration/internal/adapters/http"
	formHandler "registration/internal/adapters/http/form"
	healthHttp "registration/internal/adapters/http/health"
	adapterMetrics "registration/internal/adapters/metrics"
	"registration/internal/adapters/repository/memory"
	"registration/internal/adapters/validator"
	"registration/internal/config"
	"registration/internal/core/domain/form"
	"registration/internal/core/ports"
	formUseCase "registration/internal/core/usecase/form"
	platformHealth "registration/internal/platform/health"
	"registration/internal/platform/logger"
	"registration/internal/platform/metrics"
	validatorPlatform "registration/internal/platform/validator"
	"registration/internal/version"
)

func main() {
	fx.New(appModule).Run()
}

var appModule = fx.Options(
	// Platform
	fx.Provide(config.LoadBase),
	fx.Provide(config.LoadHttp),
	fx.Provide(config.LoadForm),
	fx.Provide(func(cfg *config.BaseConfig) logger.Config {
		return logger.Config{
			Environment: cfg.Environment,
			Level:       cfg.Logger.Level,
			Format:      cfg.Logger.Format,
		}
	}),
	fx.Provide(logger.NewZapLogger),
	fx.Provide(validator.NewPlaygroundAdapter),
	fx.Provide(metrics.NewProvider),

	// Health Checks
	fx.Provide(fx.Annotate(
		func(repo ports.SessionRepository, cfg *config.FormConfig) *adapterHealth.SessionStoreChecker {
			return adapterHealth.NewSessionStoreChecker(repo, cfg.Form.MaxSessions)
		},
		fx.As(new(platformHealth.Checker)),
		fx.ResultTags(`group:"health_checkers"`),
	)),
	fx.Provide(fx.Annotate(
		func(checkers []platformHealth.Checker) *platformHealth.Manager {
			return platformHealth.NewManager(checkers...)
		},
		fx.ParamTags(`group:"health_checkers"`),
		fx.As(new(platformHealth.ManagerInterface)),
	)),

	// HTTP Server
	fx.Provide(httpAdapter.NewServer),
	fx.Provide(httpAdapter.NewRouter),
	fx.Provide(formHandler.NewHandler),
	fx.Provide(func() *healthHttp.LivenessHandler {
		return healthHttp.NewLivenessHandler(version.Info())
	}),
	fx.Provide(func(hm platformHealth.ManagerInterface) *healthHttp.ReadinessHandler {
		return healthHttp.NewReadinessHandler(version.Get(), hm)
	}),
	fx.Provide(func(cfg *config.HttpConfig, log logger.Logger, forms *formHandler.Handler, liveness *healthHttp.LivenessHandler, readiness *healthHttp.ReadinessHandler, metrics *metrics.Provider) httpAdapter.RouterDependencies {
		return httpAdapter.RouterDependencies{
			Config:           cfg,
			Logger:           log,
			FormHandler:      forms,
			LivenessHandler:  liveness,
			ReadinessHandler: readiness,
			MetricsProvider:  metrics,
		}
	}),

	// Domain
	fx.Provide(func(cfg *config.FormConfig, v validatorPlatform.Validator) *form.RuleSet {
		return form.RegistrationRules(
			form.WithEmailChecker(validator.EmailChecker(v)),
			form.WithPasswordMinLength(cfg.Form.PasswordMinLength),
			form.WithPhonePattern(cfg.Form.PhonePattern.Regexp),
			form.WithPhoneMessage(cfg.Form.PhoneMessage),
		)
	}),
	fx.Provide(fx.Annotate(memory.NewSessionRepository, fx.As(new(ports.SessionRepository)))),
	fx.Provide(fx.Annotate(adapterMetrics.NewFormRecorder, fx.As(new(formUseCase.ValidationRecorder)))),
	fx.Provide(
		func(repo ports.SessionRepository, rules *form.RuleSet, recorder formUseCase.ValidationRecorder, cfg *config.FormConfig) *formUseCase.Usecase {
			return formUseCase.NewUsecase(repo, rules, recorder, formUseCase.Config{
				MaxSessions: cfg.Form.MaxSessions,
				SessionTTL:  cfg.Form.SessionTTL,
			})
		},
	),
	fx.Provide(func(uc *formUseCase.Usecase) formHandler.Manager { return uc }),

	// Lifecycle Hooks
	fx.Invoke(func(lc fx.Lifecycle, log logger.Logger, uc *formUseCase.Usecase, cfg *config.FormConfig) {
		if cfg.Form.SessionTTL <= 0 {
			return
		}
		ctx, cancel := context.WithCancel(logger.WithLogger(context.Background(), log))
		done := make(chan struct{})
		lc.Append(fx.Hook{
			OnStart: func(context.Context) error {
				go func() {
					defer close(done)
					uc.RunExpiry(ctx, cfg.Form.ExpiryInterval)
				}()
				return nil
			},
			OnStop: func(stopCtx context.Context) error {
				cancel()
				select {
				case <-done:
					return nil
				case <-stopCtx.Done():
					return stopCtx.Err()
				}
			},
		})
	}),
	fx.Invoke(func(lc fx.Lifecycle, log logger.Logger, srv *httpAdapter.Server) {
		log.Info("Starting registration form service", logger.String("version", version.Info().String()))
		lc.Append(fx.Hook{
			OnStart: srv.Start,
			OnStop:  srv.Stop,
		})
		if syncer, ok := log.(interface{ Sync() error }); ok {
			lc.Append(fx.StopHook(func() {
				_ = syncer.Sync()
			}))
		}
	}),
)

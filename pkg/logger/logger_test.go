package logger_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"ascvd/pkg/logger"
)

func TestSetup(t *testing.T) {
	for _, env := range []string{logger.DevelopmentEnvironment, logger.ProductionEnvironment} {
		t.Run(env, func(t *testing.T) {
			require.NotPanics(t, func() {
				logger.Setup(env)
			})
			require.NotNil(t, logger.Get(context.Background()))
		})
	}
}

func TestGetFallsBackToDefault(t *testing.T) {
	logger.Setup(logger.DevelopmentEnvironment)

	l := logger.Get(context.Background())
	require.NotNil(t, l, "empty context should yield the default logger")
}

func TestWithLogger(t *testing.T) {
	logger.Setup(logger.DevelopmentEnvironment)

	custom, _ := zap.NewDevelopment()
	ctx := logger.WithLogger(context.Background(), custom)
	require.Equal(t, custom, logger.Get(ctx))
}

func TestWithFields(t *testing.T) {
	logger.Setup(logger.DevelopmentEnvironment)

	base := logger.Get(context.Background())
	ctx := logger.WithFields(context.Background(), zap.String("request_id", "abc"))
	require.NotEqual(t, base, logger.Get(ctx), "WithFields should attach a derived logger")

	// logging through the helpers should not panic
	require.NotPanics(t, func() {
		logger.Debug(ctx, "debug line")
		logger.Info(ctx, "info line")
		logger.Warn(ctx, "warn line")
		logger.Error(ctx, "error line")
	})
}

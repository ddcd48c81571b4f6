package observability

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObserveGatewayCallLabelsOutcome(t *testing.T) {
	before := testutil.CollectAndCount(PaymentGatewayLatency)

	ObserveGatewayCall("khalti", "lookup", time.Now(), nil)
	ObserveGatewayCall("khalti", "lookup", time.Now(), errors.New("timeout"))

	assert.Equal(t, before+2, testutil.CollectAndCount(PaymentGatewayLatency))
}

func TestPaymentEventsCounter(t *testing.T) {
	c := PaymentEvents.WithLabelValues("esewa", "completed")
	before := testutil.ToFloat64(c)
	c.Inc()
	assert.Equal(t, before+1, testutil.ToFloat64(c))
}

func TestInitTracingDisabled(t *testing.T) {
	shutdown, err := InitTracing(TracingConfig{ServiceName: "nhaf-test"})
	require.NoError(t, err)
	require.NotNil(t, shutdown)
	assert.NoError(t, shutdown(context.Background()))

	ctx, span := GetTraceLayer().TracePromotion(context.Background(), "volunteer", 7)
	assert.NotNil(t, ctx)
	EndSpan(span, errors.New("recorded"))
}

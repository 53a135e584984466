package domain

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	decimalpb "google.golang.org/genproto/googleapis/type/decimal"

	"github.com/xKoRx/gridmarket/pb"
)

func TestNewDeliveryPeriod(t *testing.T) {
	start := time.Date(2023, 1, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		start    time.Time
		duration time.Duration
		wantErr  bool
	}{
		{name: "fifteen minutes", start: start, duration: 15 * time.Minute, wantErr: false},
		{name: "five minute bucket", start: start, duration: 5 * time.Minute, wantErr: false},
		{name: "hour bucket", start: start, duration: time.Hour, wantErr: false},
		{name: "ten minutes rejected", start: start, duration: 10 * time.Minute, wantErr: true},
		{name: "zero duration rejected", start: start, duration: 0, wantErr: true},
		{name: "zero start rejected", start: time.Time{}, duration: 15 * time.Minute, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewDeliveryPeriod(tt.start, tt.duration)
			if (err != nil) != tt.wantErr {
				t.Fatalf("expected error=%t, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestNewDeliveryPeriodNormalizesToUTC(t *testing.T) {
	plusOne := time.FixedZone("UTC+1", 3600)
	local := time.Date(2023, 1, 1, 12, 0, 0, 0, plusOne)

	period, err := NewDeliveryPeriod(local, 15*time.Minute)
	require.NoError(t, err)

	assert.Equal(t, time.UTC, period.Start.Location(), "el inicio debería quedar en UTC")
	assert.Equal(t, 11, period.Start.Hour(), "12:00+01:00 es 11:00 UTC")
	assert.True(t, period.Start.Equal(local), "el instante absoluto no debe cambiar")
}

func TestPriceProtoRoundTrip(t *testing.T) {
	price := Price{
		Amount:   decimal.RequireFromString("100.00"),
		Currency: CurrencyUSD,
	}

	msg := price.ToProto()
	require.NotNil(t, msg.Amount)
	assert.Equal(t, "100", msg.Amount.Value, "el decimal serializa en forma canónica")
	assert.Equal(t, pb.CurrencyUSD, msg.Currency)

	back, err := PriceFromProto(msg)
	require.NoError(t, err)
	assert.True(t, price.Amount.Equal(back.Amount))
	assert.Equal(t, price.Currency, back.Currency)
}

func TestPriceFromProtoMissingAmount(t *testing.T) {
	_, err := PriceFromProto(&pb.Price{Currency: pb.CurrencyEUR})
	assert.Error(t, err)

	_, err = PriceFromProto(nil)
	assert.Error(t, err)
}

func TestEnergyFromProtoRejectsGarbage(t *testing.T) {
	_, err := EnergyFromProto(&pb.Energy{MWh: &decimalpb.Decimal{Value: "NaN"}})
	assert.Error(t, err, "NaN no es representable en el dominio")

	energy, err := EnergyFromProto(&pb.Energy{MWh: &decimalpb.Decimal{Value: "5.00"}})
	require.NoError(t, err)
	assert.Equal(t, "5 MWh", energy.String(), "String() usa la forma canónica sin ceros finales")
}

func TestNewDeliveryArea(t *testing.T) {
	area, err := NewDeliveryArea("10YDE-EON------1", EnergyMarketCodeTypeEuropeEIC)
	require.NoError(t, err)
	assert.Equal(t, "10YDE-EON------1", area.Code)

	_, err = NewDeliveryArea("", EnergyMarketCodeTypeEuropeEIC)
	assert.Error(t, err, "código vacío con esquema especificado es inválido")
}

func TestDeliveryDurationMapping(t *testing.T) {
	tests := []struct {
		duration time.Duration
		bucket   pb.DeliveryDuration
	}{
		{5 * time.Minute, pb.DeliveryDuration5Min},
		{15 * time.Minute, pb.DeliveryDuration15Min},
		{30 * time.Minute, pb.DeliveryDuration30Min},
		{time.Hour, pb.DeliveryDuration60Min},
	}
	for _, tt := range tests {
		if got := DeliveryDurationToProto(tt.duration); got != tt.bucket {
			t.Fatalf("expected bucket %d for %v, got %d", tt.bucket, tt.duration, got)
		}
		if got := DeliveryDurationFromProto(tt.bucket); got != tt.duration {
			t.Fatalf("expected duration %v for bucket %d, got %v", tt.duration, tt.bucket, got)
		}
	}

	// Fuera de bucket: UNSPECIFIED hacia wire, cero hacia dominio.
	if got := DeliveryDurationToProto(10 * time.Minute); got != pb.DeliveryDurationUnspecified {
		t.Fatalf("expected UNSPECIFIED for non-bucket duration, got %d", got)
	}
	if got := DeliveryDurationFromProto(pb.DeliveryDuration(99)); got != 0 {
		t.Fatalf("expected zero duration for unknown bucket, got %v", got)
	}
}

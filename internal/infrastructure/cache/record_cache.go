// Package cache implementa la caché de lectura de la consulta de comisiones.
//
// La clave depende solo del rango de fechas: el filtrado por vendedor ocurre
// después de la consulta, así que una misma entrada sirve a todos los vendedores.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/zerograu/comisiones-api/internal/domain/entity"
	"github.com/zerograu/comisiones-api/internal/domain/repository"
	"github.com/zerograu/comisiones-api/pkg/logger"
)

const keyPrefix = "comisiones:records:v1"

// ErrMiss la clave no existe en la caché.
var ErrMiss = errors.New("cache: miss")

// Store almacenamiento clave/valor con expiración.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error) // ErrMiss si no existe
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

var _ repository.CommissionRecordSource = (*CachedRecordSource)(nil)

// CachedRecordSource decora un CommissionRecordSource con caché de lectura.
// Un fallo de la caché nunca falla la consulta: se registra y se consulta el origen.
type CachedRecordSource struct {
	inner repository.CommissionRecordSource
	store Store
	ttl   time.Duration
	loc   *time.Location
	log   *logger.Logger
}

// NewCachedRecordSource construye el decorador. loc es la zona en que el origen
// entrega las fechas; las entradas leídas de la caché se devuelven en esa misma zona.
func NewCachedRecordSource(inner repository.CommissionRecordSource, store Store, ttl time.Duration, loc *time.Location, log *logger.Logger) *CachedRecordSource {
	if loc == nil {
		loc = time.Local
	}
	if log == nil {
		log = logger.Nop()
	}
	return &CachedRecordSource{inner: inner, store: store, ttl: ttl, loc: loc, log: log}
}

// FindByDueRange devuelve la entrada en caché para [start, end] o consulta el origen y la guarda.
func (c *CachedRecordSource) FindByDueRange(ctx context.Context, start, end time.Time) ([]entity.CommissionRecord, error) {
	key := RangeKey(start, end)

	payload, err := c.store.Get(ctx, key)
	switch {
	case err == nil:
		records, decErr := decodeRecords(payload, c.loc)
		if decErr == nil {
			c.log.Debug().Str("key", key).Int("records", len(records)).Msg("caché de comisiones: hit")
			return records, nil
		}
		c.log.Warn().Err(decErr).Str("key", key).Msg("caché de comisiones: entrada ilegible, se ignora")
	case errors.Is(err, ErrMiss):
		c.log.Debug().Str("key", key).Msg("caché de comisiones: miss")
	default:
		c.log.Warn().Err(err).Str("key", key).Msg("caché de comisiones: lectura fallida")
	}

	records, err := c.inner.FindByDueRange(ctx, start, end)
	if err != nil {
		return nil, err
	}

	if payload, err := encodeRecords(records); err != nil {
		c.log.Warn().Err(err).Str("key", key).Msg("caché de comisiones: no se pudo serializar")
	} else if err := c.store.Set(ctx, key, payload, c.ttl); err != nil {
		c.log.Warn().Err(err).Str("key", key).Msg("caché de comisiones: escritura fallida")
	}
	return records, nil
}

// RangeKey clave de caché para un rango. Los instantes se normalizan a UTC.
func RangeKey(start, end time.Time) string {
	return fmt.Sprintf("%s:%s:%s", keyPrefix,
		start.UTC().Format(time.RFC3339Nano), end.UTC().Format(time.RFC3339Nano))
}

// cachedRecord forma serializada; los montos viajan como texto para no perder precisión.
type cachedRecord struct {
	SellerCode string `json:"seller_code"`
	DueAt      string `json:"due_at"`
	VoucherID  string `json:"voucher_id"`
	GrossValue string `json:"gross_value"`
	NetValue   string `json:"net_value"`
}

func encodeRecords(records []entity.CommissionRecord) ([]byte, error) {
	out := make([]cachedRecord, 0, len(records))
	for _, r := range records {
		out = append(out, cachedRecord{
			SellerCode: r.SellerCode,
			DueAt:      r.DueAt.Format(time.RFC3339Nano),
			VoucherID:  r.VoucherID,
			GrossValue: r.GrossValue.String(),
			NetValue:   r.NetValue.String(),
		})
	}
	return json.Marshal(out)
}

package cache

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/zerograu/comisiones-api/internal/domain/entity"
)

func decodeRecords(payload []byte, loc *time.Location) ([]entity.CommissionRecord, error) {
	var in []cachedRecord
	if err := json.Unmarshal(payload, &in); err != nil {
		return nil, fmt.Errorf("decodificar entrada: %w", err)
	}
	records := make([]entity.CommissionRecord, 0, len(in))
	for i, c := range in {
		due, err := time.Parse(time.RFC3339Nano, c.DueAt)
		if err != nil {
			return nil, fmt.Errorf("registro %d: fecha: %w", i, err)
		}
		gross, err := decimal.NewFromString(c.GrossValue)
		if err != nil {
			return nil, fmt.Errorf("registro %d: valor: %w", i, err)
		}
		net, err := decimal.NewFromString(c.NetValue)
		if err != nil {
			return nil, fmt.Errorf("registro %d: valor líquido: %w", i, err)
		}
		records = append(records, entity.CommissionRecord{
			SellerCode: c.SellerCode,
			DueAt:      due.In(loc),
			VoucherID:  c.VoucherID,
			GrossValue: gross,
			NetValue:   net,
		})
	}
	return records, nil
}

package oracle

import (
	"context"
	"fmt"

	"cdp/core"
	"cdp/pkg/resthttp"

	"github.com/fox-one/pkg/logger"
	"github.com/shopspring/decimal"
)

// PriceService price oracle adapter. One synchronous pull per call, no
// retry and no caching; the quote must be fresh for every operation.
type PriceService struct {
	endpoint string
}

// New new price oracle service
func New(cfg *core.Config) core.PriceOracle {
	return &PriceService{
		endpoint: cfg.Oracle.EndPoint,
	}
}

// LatestPrice pull the latest quote for the asset. A zero or negative
// price aborts the caller before any mutation.
func (s *PriceService) LatestPrice(ctx context.Context, assetID string) (decimal.Decimal, error) {
	url := fmt.Sprintf("%s/api/v1/prices/%s", s.endpoint, assetID)

	resp, err := resthttp.Request(ctx).Get(url)
	if err != nil {
		logger.FromContext(ctx).WithError(err).Errorln("pull price failed:", url)
		return decimal.Zero, err
	}

	var quote core.PriceQuote
	if err := resthttp.ParseResponse(resp, &quote); err != nil {
		return decimal.Zero, err
	}

	if quote.Price.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero, core.ErrInvalidPrice
	}

	return quote.Price, nil
}

package orders

import (
	"context"

	"github.com/eakarsu/go_deli/internal/checkout"
)

// LocalPlacer feeds checkout submissions straight into the acceptance
// service. Used when the storefront and acceptance run in one process;
// remote deployments use the HTTP placer instead.
type LocalPlacer struct {
	service *Service
}

func NewLocalPlacer(service *Service) *LocalPlacer {
	return &LocalPlacer{service: service}
}

func (p *LocalPlacer) PlaceOrder(ctx context.Context, order *checkout.Order) (*checkout.Receipt, error) {
	accepted, err := p.service.Accept(ctx, order)
	if err != nil {
		return nil, err
	}
	return &checkout.Receipt{
		OrderID: accepted.ID.String(),
		Status:  string(accepted.Status),
	}, nil
}

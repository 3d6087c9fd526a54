package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/giftcert-api/internal/application/dto"
	"github.com/jhoicas/giftcert-api/internal/domain"
	"github.com/jhoicas/giftcert-api/internal/domain/entity"
	"github.com/jhoicas/giftcert-api/internal/domain/repository"
	"github.com/jhoicas/giftcert-api/internal/domain/search"
)

// OrderUseCase casos de uso de órdenes.
type OrderUseCase struct {
	repo       repository.OrderRepository
	users      repository.UserRepository
	search     repository.Searcher[*entity.Order]
	certSearch repository.Searcher[*entity.GiftCertificate]
	tx         TxRunner
	engine     *SearchEngine
}

// NewOrderUseCase construye el caso de uso.
func NewOrderUseCase(
	repo repository.OrderRepository,
	users repository.UserRepository,
	orderSearch repository.Searcher[*entity.Order],
	certSearch repository.Searcher[*entity.GiftCertificate],
	tx TxRunner,
	engine *SearchEngine,
) *OrderUseCase {
	return &OrderUseCase{repo: repo, users: users, search: orderSearch, certSearch: certSearch, tx: tx, engine: engine}
}

// Search busca órdenes.
func (uc *OrderUseCase) Search(ctx context.Context, raw search.RawParams) (*dto.PageDataResponse[dto.OrderResponse], error) {
	resp, err := runSearch(ctx, uc.engine, uc.search, raw, entity.OrderType, entity.OrderDefaults, nil)
	if err != nil {
		return nil, err
	}
	return dto.NewPageData(resp, toOrderResponse), nil
}

// SearchCertificates busca entre los certificados de una orden existente.
func (uc *OrderUseCase) SearchCertificates(ctx context.Context, id string, raw search.RawParams) (*dto.PageDataResponse[dto.GiftCertificateResponse], error) {
	if _, err := uc.get(ctx, id); err != nil {
		return nil, err
	}
	scope := search.Join{Path: entity.PathOrders, Expr: search.Eq{Column: "id", Values: []string{id}}}
	resp, err := runSearch(ctx, uc.engine, uc.certSearch, raw, entity.GiftCertificateType, entity.GiftCertificateDefaults, scope)
	if err != nil {
		return nil, err
	}
	return dto.NewPageData(resp, toGiftCertificateResponse), nil
}

// GetByID obtiene una orden con sus certificados.
func (uc *OrderUseCase) GetByID(ctx context.Context, id string) (*dto.OrderResponse, error) {
	o, err := uc.get(ctx, id)
	if err != nil {
		return nil, err
	}
	out := toOrderResponse(o)
	return &out, nil
}

// Create registra la compra de los certificados indicados por nombre. El costo es la suma de sus
// precios y la fecha de compra es la actual.
func (uc *OrderUseCase) Create(ctx context.Context, userID string, in dto.CreateOrderRequest) (*dto.OrderResponse, error) {
	names := uniqueNames(in.Certificates)
	if len(names) == 0 {
		return nil, domain.ErrEmptyOrder
	}
	user, err := uc.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, fmt.Errorf("%w: usuario %s", domain.ErrNotFound, userID)
	}

	order := &entity.Order{
		ID:           uuid.New().String(),
		UserID:       user.ID,
		PurchaseDate: time.Now().UTC(),
	}
	err = uc.tx.Run(ctx, func(repos TxRepos) error {
		certs, err := repos.Certificates.GetByNames(ctx, names)
		if err != nil {
			return err
		}
		if missing := missingNames(names, certs); len(missing) > 0 {
			return fmt.Errorf("%w: certificados %s", domain.ErrNotFound, strings.Join(missing, ", "))
		}
		cost := decimal.Zero
		order.Certificates = make([]entity.GiftCertificate, 0, len(certs))
		for _, c := range certs {
			cost = cost.Add(c.Price)
			order.Certificates = append(order.Certificates, *c)
		}
		order.Cost = cost
		return repos.Orders.Create(ctx, order)
	})
	if err != nil {
		return nil, err
	}
	out := toOrderResponse(order)
	return &out, nil
}

// Delete elimina una orden.
func (uc *OrderUseCase) Delete(ctx context.Context, id string) error {
	return uc.repo.Delete(ctx, id)
}

func (uc *OrderUseCase) get(ctx context.Context, id string) (*entity.Order, error) {
	o, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, fmt.Errorf("%w: orden %s", domain.ErrNotFound, id)
	}
	return o, nil
}

func uniqueNames(names []string) []string {
	seen := make(map[string]bool, len(names))
	out := make([]string, 0, len(names))
	for _, n := range names {
		n = strings.TrimSpace(n)
		if n == "" || seen[n] {
			continue
		}
		seen[n] = true
		out = append(out, n)
	}
	return out
}

func missingNames(names []string, found []*entity.GiftCertificate) []string {
	have := make(map[string]bool, len(found))
	for _, c := range found {
		have[c.Name] = true
	}
	var missing []string
	for _, n := range names {
		if !have[n] {
			missing = append(missing, n)
		}
	}
	return missing
}

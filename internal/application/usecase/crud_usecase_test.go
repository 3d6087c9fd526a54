package usecase_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/giftcert-api/internal/application/dto"
	"github.com/jhoicas/giftcert-api/internal/application/usecase"
	"github.com/jhoicas/giftcert-api/internal/domain"
	"github.com/jhoicas/giftcert-api/internal/domain/entity"
	"github.com/jhoicas/giftcert-api/internal/domain/search"
)

// ──────────────────────────────────────────────────────────────────────────────
// Certificados
// ──────────────────────────────────────────────────────────────────────────────

func TestCreateCertificate_CreaEtiquetasFaltantes(t *testing.T) {
	repo := newMemCertificates()
	tags := newMemTags(&entity.Tag{ID: "t-spa", Name: "spa"})
	tx := &fakeTx{repos: usecase.TxRepos{Certificates: repo, Tags: tags}}
	uc := usecase.NewGiftCertificateUseCase(repo, &fakeSearcher[*entity.GiftCertificate]{}, &fakeSearcher[*entity.Tag]{}, tx, newEngine(t, nil))

	out, err := uc.Create(context.Background(), dto.CreateGiftCertificateRequest{
		Name:     "  Masaje  ",
		Price:    decimal.RequireFromString("49.90"),
		Duration: 30,
		Tags:     []string{"spa", "relax", "spa", " "},
	})
	require.NoError(t, err)

	assert.Equal(t, "Masaje", out.Name)
	require.Len(t, out.Tags, 2)
	assert.Equal(t, "t-spa", out.Tags[0].ID, "la etiqueta existente se reutiliza")
	assert.Equal(t, "relax", out.Tags[1].Name)
	assert.Len(t, tags.byID, 2)
	assert.Len(t, repo.tags[out.ID], 2)
	assert.Equal(t, 1, tx.runs)
	assert.False(t, out.CreateDate.IsZero())
}

func TestCreateCertificate_EntradaInvalida(t *testing.T) {
	uc, _, _ := newCertificateUseCase(t, &fakeSearcher[*entity.GiftCertificate]{}, nil)

	cases := []dto.CreateGiftCertificateRequest{
		{Name: "", Price: decimal.NewFromInt(1), Duration: 1},
		{Name: "x", Price: decimal.NewFromInt(-1), Duration: 1},
		{Name: "x", Price: decimal.NewFromInt(1), Duration: 0},
	}
	for _, in := range cases {
		_, err := uc.Create(context.Background(), in)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	}
}

func TestUpdateCertificate_Parcial(t *testing.T) {
	uc, repo, _ := newCertificateUseCase(t, &fakeSearcher[*entity.GiftCertificate]{}, nil)
	repo.byID["c-1"].Description = "antes"
	price := decimal.NewFromInt(80)

	out, err := uc.Update(context.Background(), "c-1", dto.UpdateGiftCertificateRequest{Price: &price, Tags: []string{"nuevo"}})
	require.NoError(t, err)

	assert.Equal(t, "Spa", out.Name, "los campos nulos no cambian")
	assert.Equal(t, "antes", out.Description)
	assert.True(t, price.Equal(out.Price))
	assert.Len(t, out.Tags, 1)
	assert.False(t, out.LastUpdateDate.IsZero())
}

func TestUpdateCertificate_Inexistente(t *testing.T) {
	uc, _, _ := newCertificateUseCase(t, &fakeSearcher[*entity.GiftCertificate]{}, nil)

	_, err := uc.Update(context.Background(), "nope", dto.UpdateGiftCertificateRequest{})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestGetCertificate_Inexistente(t *testing.T) {
	uc, _, _ := newCertificateUseCase(t, &fakeSearcher[*entity.GiftCertificate]{}, nil)

	_, err := uc.GetByID(context.Background(), "nope")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.ErrorIs(t, uc.Delete(context.Background(), "nope"), domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Órdenes
// ──────────────────────────────────────────────────────────────────────────────

func newOrderUseCase(t *testing.T) (*usecase.OrderUseCase, *memOrders, *fakeSearcher[*entity.GiftCertificate]) {
	t.Helper()
	certRepo := newMemCertificates(
		&entity.GiftCertificate{ID: "c-1", Name: "Spa", Price: decimal.RequireFromString("10.50")},
		&entity.GiftCertificate{ID: "c-2", Name: "Cena", Price: decimal.RequireFromString("20.25")},
	)
	orders := &memOrders{byID: map[string]*entity.Order{}}
	users := &memUsers{byID: map[string]*entity.User{"u-1": {ID: "u-1", Username: "ana"}}}
	certSearch := &fakeSearcher[*entity.GiftCertificate]{items: certs(2), total: 2}
	tx := &fakeTx{repos: usecase.TxRepos{Certificates: certRepo, Tags: newMemTags(), Orders: orders}}
	uc := usecase.NewOrderUseCase(orders, users, &fakeSearcher[*entity.Order]{}, certSearch, tx, newEngine(t, nil))
	return uc, orders, certSearch
}

func TestCreateOrder_CostoEsSumaDePrecios(t *testing.T) {
	uc, orders, _ := newOrderUseCase(t)

	out, err := uc.Create(context.Background(), "u-1", dto.CreateOrderRequest{Certificates: []string{"Spa", "Cena", "Spa"}})
	require.NoError(t, err)

	assert.Equal(t, "30.75", out.Cost.StringFixed(2))
	assert.Equal(t, "u-1", out.UserID)
	assert.Len(t, out.Certificates, 2)
	assert.False(t, out.PurchaseDate.IsZero())
	assert.Contains(t, orders.byID, out.ID)
}

func TestCreateOrder_Errores(t *testing.T) {
	uc, orders, _ := newOrderUseCase(t)

	_, err := uc.Create(context.Background(), "u-1", dto.CreateOrderRequest{})
	assert.ErrorIs(t, err, domain.ErrEmptyOrder)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Create(context.Background(), "u-1", dto.CreateOrderRequest{Certificates: []string{"Spa", "Yate"}})
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Contains(t, err.Error(), "Yate")

	_, err = uc.Create(context.Background(), "u-x", dto.CreateOrderRequest{Certificates: []string{"Spa"}})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	assert.Empty(t, orders.byID)
}

func TestSearchOrderCertificates_Alcance(t *testing.T) {
	uc, orders, certSearch := newOrderUseCase(t)
	orders.byID["o-1"] = &entity.Order{ID: "o-1", UserID: "u-1"}

	page, err := uc.SearchCertificates(context.Background(), "o-1", search.ParseQueryString("p:gcName=S"))
	require.NoError(t, err)
	assert.Equal(t, 2, page.ItemsShown)

	require.Len(t, certSearch.calls, 1)
	assert.Equal(t, search.And{
		search.Join{Path: entity.PathOrders, Expr: search.Eq{Column: "id", Values: []string{"o-1"}}},
		search.Like{Column: "name", Pattern: "%S%"},
	}, certSearch.calls[0].Query.Where)

	_, err = uc.SearchCertificates(context.Background(), "o-x", nil)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Usuarios y etiquetas
// ──────────────────────────────────────────────────────────────────────────────

func TestUser_OrdenesYEtiquetasPopulares(t *testing.T) {
	users := &memUsers{
		byID:  map[string]*entity.User{"u-1": {ID: "u-1", Username: "ana"}},
		stats: []entity.TagStat{{Tag: entity.Tag{ID: "t-1", Name: "spa"}, OrderCount: 3, MaxCost: decimal.NewFromInt(90)}},
	}
	orderSearch := &fakeSearcher[*entity.Order]{items: []*entity.Order{{ID: "o-1", UserID: "u-1"}}, total: 1}
	uc := usecase.NewUserUseCase(users, &fakeSearcher[*entity.User]{}, orderSearch, newEngine(t, nil))

	page, err := uc.SearchOrders(context.Background(), "u-1", search.ParseQueryString("s:cost=desc"))
	require.NoError(t, err)
	assert.Equal(t, 1, page.ItemsFound)
	assert.Equal(t, search.Eq{Column: "user_id", Values: []string{"u-1"}}, orderSearch.calls[0].Query.Where)
	assert.Equal(t, []search.Ordering{{Column: "cost", Desc: true}}, orderSearch.calls[0].Query.OrderBy)

	stats, err := uc.PopularTags(context.Background(), "u-1", 0)
	require.NoError(t, err)
	require.Len(t, stats, 1)
	assert.Equal(t, 3, stats[0].OrderCount)
	assert.Equal(t, 10, users.limit, "límite fuera de rango usa el valor por defecto")

	_, err = uc.PopularTags(context.Background(), "u-x", 5)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = uc.SearchOrders(context.Background(), "u-x", nil)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestUser_Create(t *testing.T) {
	users := &memUsers{byID: map[string]*entity.User{}}
	uc := usecase.NewUserUseCase(users, &fakeSearcher[*entity.User]{}, &fakeSearcher[*entity.Order]{}, newEngine(t, nil))

	out, err := uc.Create(context.Background(), dto.CreateUserRequest{Username: " ana "})
	require.NoError(t, err)
	assert.Equal(t, "ana", out.Username)

	_, err = uc.Create(context.Background(), dto.CreateUserRequest{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestTag_CreateYCertificados(t *testing.T) {
	tags := newMemTags(&entity.Tag{ID: "t-1", Name: "spa"})
	certSearch := &fakeSearcher[*entity.GiftCertificate]{items: certs(1), total: 1}
	uc := usecase.NewTagUseCase(tags, &fakeSearcher[*entity.Tag]{}, certSearch, newEngine(t, nil))

	_, err := uc.Create(context.Background(), dto.CreateTagRequest{Name: "spa"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)

	page, err := uc.SearchCertificates(context.Background(), "t-1", nil)
	require.NoError(t, err)
	assert.Equal(t, 1, page.ItemsShown)
	assert.Equal(t,
		search.Join{Path: entity.PathTags, Expr: search.Eq{Column: "id", Values: []string{"t-1"}}},
		certSearch.calls[0].Query.Where)

	_, err = uc.GetByID(context.Background(), "t-x")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

package usecase

import (
	"context"

	"github.com/jhoicas/giftcert-api/internal/domain/repository"
	"github.com/jhoicas/giftcert-api/internal/domain/search"
)

// TxRepos repositorios atados a una misma transacción.
type TxRepos struct {
	Certificates repository.GiftCertificateRepository
	Tags         repository.TagRepository
	Orders       repository.OrderRepository
}

// TxRunner ejecuta fn dentro de una transacción; un error en fn revierte todo.
type TxRunner interface {
	Run(ctx context.Context, fn func(repos TxRepos) error) error
}

// SearchObserver recibe el resultado de cada búsqueda (métricas). err no nulo si falló.
type SearchObserver interface {
	ObserveSearch(entity search.EntityType, found int, err error)
}

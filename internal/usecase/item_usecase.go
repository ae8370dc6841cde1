package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"bookshop_billing/internal/domain/entities"
	"bookshop_billing/internal/usecase/interfaces"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// IItemUseCase exposes Item Catalog management.
type IItemUseCase interface {
	Create(ctx context.Context, it entities.Item) (entities.Item, error)
	Update(ctx context.Context, id string, it entities.Item) (entities.Item, error)
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (entities.Item, error)
	GetByCode(ctx context.Context, code string) (entities.Item, error)
	List(ctx context.Context) ([]entities.Item, error)
	Search(ctx context.Context, term string, category entities.ItemCategory) ([]entities.Item, error)
	InStock(ctx context.Context) ([]entities.Item, error)
	LowStock(ctx context.Context) ([]entities.Item, error)
	AdjustStock(ctx context.Context, id string, delta int) (entities.Item, error)
}

type ItemUseCase struct {
	repo   interfaces.IItemRepository
	logger *zap.Logger
}

var _ IItemUseCase = (*ItemUseCase)(nil)

func NewItemUseCase(repo interfaces.IItemRepository, logger *zap.Logger) *ItemUseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ItemUseCase{repo: repo, logger: logger.Named("item")}
}

// Create adds it to the catalog under a fresh id. The code lookup is only
// atomic with the insert when the repository enforces ErrDuplicateKey; the
// DynamoDB backend does not, so two concurrent creates may both succeed there.
func (u *ItemUseCase) Create(ctx context.Context, it entities.Item) (entities.Item, error) {
	it = normalizeItem(it)
	if err := validateEntity(it); err != nil {
		return entities.Item{}, err
	}

	existing, err := u.repo.GetByCode(ctx, it.Code)
	if err != nil {
		return entities.Item{}, err
	}
	if existing.ID != "" {
		return entities.Item{}, &ConflictError{Entity: "item", Field: "code", Value: it.Code}
	}

	now := time.Now().UTC()
	it.ID = uuid.NewString()
	it.CreatedAt = now
	it.UpdatedAt = now
	created, err := u.repo.Create(ctx, it)
	if errors.Is(err, interfaces.ErrDuplicateKey) {
		return entities.Item{}, &ConflictError{Entity: "item", Field: "code", Value: it.Code}
	}
	if err != nil {
		return entities.Item{}, err
	}
	u.logger.Info("item created", zap.String("item_id", created.ID), zap.String("code", created.Code))
	return created, nil
}

func (u *ItemUseCase) Update(ctx context.Context, id string, it entities.Item) (entities.Item, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Item{}, ErrInvalidID
	}
	current, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Item{}, err
	}

	it = normalizeItem(it)
	if err := validateEntity(it); err != nil {
		return entities.Item{}, err
	}

	existing, err := u.repo.GetByCode(ctx, it.Code)
	if err != nil {
		return entities.Item{}, err
	}
	if existing.ID != "" && existing.ID != id {
		return entities.Item{}, &ConflictError{Entity: "item", Field: "code", Value: it.Code}
	}

	it.ID = id
	it.CreatedAt = current.CreatedAt
	it.UpdatedAt = time.Now().UTC()
	updated, err := u.repo.Update(ctx, it)
	if err != nil {
		return entities.Item{}, err
	}
	if updated.ID == "" {
		return entities.Item{}, newNotFound("item", id)
	}
	return updated, nil
}

func (u *ItemUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidID
	}
	deleted, err := u.repo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("delete item %s: %w", id, err)
	}
	if !deleted {
		return newNotFound("item", id)
	}
	u.logger.Info("item deleted", zap.String("item_id", id))
	return nil
}

func (u *ItemUseCase) GetByID(ctx context.Context, id string) (entities.Item, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Item{}, ErrInvalidID
	}
	it, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Item{}, err
	}
	if it.ID == "" {
		return entities.Item{}, newNotFound("item", id)
	}
	return it, nil
}

func (u *ItemUseCase) GetByCode(ctx context.Context, code string) (entities.Item, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return entities.Item{}, &ValidationError{Field: "code", Message: "is required"}
	}
	it, err := u.repo.GetByCode(ctx, code)
	if err != nil {
		return entities.Item{}, err
	}
	if it.ID == "" {
		return entities.Item{}, newNotFound("item", code)
	}
	return it, nil
}

func (u *ItemUseCase) List(ctx context.Context) ([]entities.Item, error) {
	return u.repo.List(ctx)
}

// Search filters by term (name, code or description, case-insensitive) and,
// when category is set, by category.
func (u *ItemUseCase) Search(ctx context.Context, term string, category entities.ItemCategory) ([]entities.Item, error) {
	return u.filter(ctx, func(it entities.Item) bool {
		if category != "" && it.Category != category {
			return false
		}
		t := strings.ToLower(strings.TrimSpace(term))
		if t == "" {
			return true
		}
		return strings.Contains(strings.ToLower(it.Name), t) ||
			strings.Contains(strings.ToLower(it.Code), t) ||
			strings.Contains(strings.ToLower(it.Description), t)
	})
}

func (u *ItemUseCase) InStock(ctx context.Context) ([]entities.Item, error) {
	return u.filter(ctx, func(it entities.Item) bool { return it.StockQuantity > 0 })
}

func (u *ItemUseCase) LowStock(ctx context.Context) ([]entities.Item, error) {
	return u.filter(ctx, entities.Item.IsLowStock)
}

// AdjustStock adds delta (possibly negative) to the item's stock.
func (u *ItemUseCase) AdjustStock(ctx context.Context, id string, delta int) (entities.Item, error) {
	current, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Item{}, err
	}

	updated, err := u.repo.AdjustStock(ctx, current.ID, delta)
	if errors.Is(err, interfaces.ErrNegativeStock) {
		return entities.Item{}, &InsufficientStockError{
			ItemID:    current.ID,
			Requested: -delta,
			Available: current.StockQuantity,
		}
	}
	if err != nil {
		return entities.Item{}, fmt.Errorf("adjust stock %s: %w", current.ID, err)
	}
	if updated.ID == "" {
		return entities.Item{}, newNotFound("item", current.ID)
	}
	u.logger.Info("stock adjusted", zap.String("item_id", updated.ID), zap.Int("delta", delta), zap.Int("stock", updated.StockQuantity))
	return updated, nil
}

func (u *ItemUseCase) filter(ctx context.Context, keep func(entities.Item) bool) ([]entities.Item, error) {
	all, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]entities.Item, 0, len(all))
	for _, it := range all {
		if keep(it) {
			out = append(out, it)
		}
	}
	return out, nil
}

func normalizeItem(it entities.Item) entities.Item {
	it.Code = strings.TrimSpace(it.Code)
	it.Name = strings.TrimSpace(it.Name)
	it.Description = strings.TrimSpace(it.Description)
	it.Category = entities.ItemCategory(strings.ToLower(strings.TrimSpace(string(it.Category))))
	return it
}

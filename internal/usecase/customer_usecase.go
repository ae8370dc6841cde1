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

// ICustomerUseCase exposes Customer Directory management.
type ICustomerUseCase interface {
	Create(ctx context.Context, c entities.Customer) (entities.Customer, error)
	Update(ctx context.Context, id string, c entities.Customer) (entities.Customer, error)
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (entities.Customer, error)
	List(ctx context.Context) ([]entities.Customer, error)
	Search(ctx context.Context, term string) ([]entities.Customer, error)
}

type CustomerUseCase struct {
	repo   interfaces.ICustomerRepository
	logger *zap.Logger
}

var _ ICustomerUseCase = (*CustomerUseCase)(nil)

func NewCustomerUseCase(repo interfaces.ICustomerRepository, logger *zap.Logger) *CustomerUseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CustomerUseCase{repo: repo, logger: logger.Named("customer")}
}

// Create registers c under a fresh id. Account number uniqueness has the same
// caveat as ItemUseCase.Create on DynamoDB.
func (u *CustomerUseCase) Create(ctx context.Context, c entities.Customer) (entities.Customer, error) {
	c = normalizeCustomer(c)
	now := time.Now().UTC()
	if c.RegistrationDate == "" {
		c.RegistrationDate = now.Format(entities.BillDateLayout)
	}
	if err := validateEntity(c); err != nil {
		return entities.Customer{}, err
	}

	existing, err := u.repo.GetByAccountNumber(ctx, c.AccountNumber)
	if err != nil {
		return entities.Customer{}, err
	}
	if existing.ID != "" {
		return entities.Customer{}, &ConflictError{Entity: "customer", Field: "account_number", Value: c.AccountNumber}
	}

	c.ID = uuid.NewString()
	c.CreatedAt = now
	c.UpdatedAt = now
	created, err := u.repo.Create(ctx, c)
	if errors.Is(err, interfaces.ErrDuplicateKey) {
		return entities.Customer{}, &ConflictError{Entity: "customer", Field: "account_number", Value: c.AccountNumber}
	}
	if err != nil {
		return entities.Customer{}, err
	}
	u.logger.Info("customer created", zap.String("customer_id", created.ID), zap.String("account_number", created.AccountNumber))
	return created, nil
}

func (u *CustomerUseCase) Update(ctx context.Context, id string, c entities.Customer) (entities.Customer, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Customer{}, ErrInvalidID
	}
	current, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Customer{}, err
	}

	c = normalizeCustomer(c)
	if c.RegistrationDate == "" {
		c.RegistrationDate = current.RegistrationDate
	}
	if err := validateEntity(c); err != nil {
		return entities.Customer{}, err
	}

	existing, err := u.repo.GetByAccountNumber(ctx, c.AccountNumber)
	if err != nil {
		return entities.Customer{}, err
	}
	if existing.ID != "" && existing.ID != id {
		return entities.Customer{}, &ConflictError{Entity: "customer", Field: "account_number", Value: c.AccountNumber}
	}

	c.ID = id
	c.CreatedAt = current.CreatedAt
	c.UpdatedAt = time.Now().UTC()
	updated, err := u.repo.Update(ctx, c)
	if err != nil {
		return entities.Customer{}, err
	}
	if updated.ID == "" {
		return entities.Customer{}, newNotFound("customer", id)
	}
	return updated, nil
}

func (u *CustomerUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidID
	}
	deleted, err := u.repo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("delete customer %s: %w", id, err)
	}
	if !deleted {
		return newNotFound("customer", id)
	}
	u.logger.Info("customer deleted", zap.String("customer_id", id))
	return nil
}

func (u *CustomerUseCase) GetByID(ctx context.Context, id string) (entities.Customer, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Customer{}, ErrInvalidID
	}
	c, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Customer{}, err
	}
	if c.ID == "" {
		return entities.Customer{}, newNotFound("customer", id)
	}
	return c, nil
}

func (u *CustomerUseCase) List(ctx context.Context) ([]entities.Customer, error) {
	return u.repo.List(ctx)
}

// Search matches term case-insensitively against name, account number,
// phone and e-mail. A blank term lists everything.
func (u *CustomerUseCase) Search(ctx context.Context, term string) ([]entities.Customer, error) {
	all, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return all, nil
	}

	out := make([]entities.Customer, 0, len(all))
	for _, c := range all {
		if strings.Contains(strings.ToLower(c.Name), term) ||
			strings.Contains(strings.ToLower(c.AccountNumber), term) ||
			strings.Contains(c.Phone, term) ||
			strings.Contains(strings.ToLower(c.Email), term) {
			out = append(out, c)
		}
	}
	return out, nil
}

func normalizeCustomer(c entities.Customer) entities.Customer {
	c.AccountNumber = strings.TrimSpace(c.AccountNumber)
	c.Name = strings.TrimSpace(c.Name)
	c.Address = strings.TrimSpace(c.Address)
	c.Phone = strings.TrimSpace(c.Phone)
	c.Email = strings.TrimSpace(c.Email)
	c.RegistrationDate = strings.TrimSpace(c.RegistrationDate)
	return c
}

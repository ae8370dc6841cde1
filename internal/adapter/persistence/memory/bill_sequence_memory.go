package memory

import (
	"context"
	"errors"
	"sync/atomic"

	"bookshop_billing/internal/usecase/interfaces"
)

// ErrDuplicateID is returned when an entity with the same id is already stored.
var ErrDuplicateID = errors.New("duplicate id")

// BillSequence is a process-local bill id counter starting at 1.
type BillSequence struct {
	last atomic.Int64
}

var _ interfaces.IBillSequence = (*BillSequence)(nil)

func NewBillSequence() *BillSequence {
	return &BillSequence{}
}

// NewBillSequenceFrom continues numbering after last.
func NewBillSequenceFrom(last int64) *BillSequence {
	s := &BillSequence{}
	s.last.Store(last)
	return s
}

func (s *BillSequence) Next(_ context.Context) (int64, error) {
	return s.last.Add(1), nil
}

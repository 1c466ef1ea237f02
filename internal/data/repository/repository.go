package repository

import (
	"errors"

	"salon-booking/pkg/database"

	"github.com/Masterminds/squirrel"
	"go.uber.org/zap"
)

var ErrNotFound = errors.New("record not found")

// psql builds queries with $n placeholders
var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

type Repository struct {
	Service ServiceRepository
	Staff   StaffRepository
	Booking BookingRepository
	Tx      database.TxRunner
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		Service: NewServiceRepository(db, log),
		Staff:   NewStaffRepository(db, log),
		Booking: NewBookingRepository(db, log),
		Tx:      database.NewTxRunner(db),
	}
}

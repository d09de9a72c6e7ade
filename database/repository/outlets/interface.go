// File: database/repository/outlets/interface.go
package outletsRepo

import (
	"context"
	"errors"

	"fieldtrack/models"
)

var ErrOutletNotFound = errors.New("outlet not found")

type OutletRepository interface {
	GetByID(ctx context.Context, id string) (*models.Outlet, error)
}

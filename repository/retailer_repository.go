package repository

import (
	"context"
	"fmt"

	"gametool/database"
	"gametool/models"
)

// RetailerRepository records the sales channel of each retailer location
type RetailerRepository struct {
	q Queryable
}

// NewRetailerRepository creates a new retailer repository
func NewRetailerRepository(db *database.DB) *RetailerRepository {
	return &RetailerRepository{q: db.Pool}
}

func newRetailerRepositoryWithTx(tx Queryable) *RetailerRepository {
	return &RetailerRepository{q: tx}
}

// Register stores a retailer the first time it is seen; later types are ignored
func (r *RetailerRepository) Register(ctx context.Context, retailer models.Retailer) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO retailer (retailer_loc_no, retailer_type)
		VALUES ($1, $2)
		ON CONFLICT (retailer_loc_no) DO NOTHING
	`, retailer.Number, string(retailer.Type))
	if err != nil {
		return fmt.Errorf("failed to register retailer %s: %w", retailer, err)
	}
	return nil
}

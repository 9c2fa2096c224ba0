package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"atlasrent-backend/internal/domain"
	"atlasrent-backend/internal/repository"
)

type promotionRepository struct {
	db *sql.DB
}

func NewPromotionRepository(db *sql.DB) repository.PromotionRepository {
	return &promotionRepository{db: db}
}

func (r *promotionRepository) ListFreeDaysTiers(ctx context.Context) ([]domain.FreeDaysTier, error) {
	query := `SELECT id, min_days, free_days FROM free_days_tiers ORDER BY min_days ASC`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tiers []domain.FreeDaysTier
	for rows.Next() {
		var tier domain.FreeDaysTier
		if err := rows.Scan(&tier.ID, &tier.MinRentalDays, &tier.FreeDays); err != nil {
			return nil, err
		}
		tiers = append(tiers, tier)
	}
	return tiers, rows.Err()
}

// ReplaceFreeDaysTiers swaps the whole tier table in one transaction, the way
// the promotions editor saves: the set is small and always edited as a unit.
func (r *promotionRepository) ReplaceFreeDaysTiers(ctx context.Context, tiers []domain.FreeDaysTier) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM free_days_tiers`); err != nil {
		return fmt.Errorf("failed to clear tiers: %w", err)
	}
	for i := range tiers {
		err := tx.QueryRowContext(ctx,
			`INSERT INTO free_days_tiers (min_days, free_days) VALUES ($1, $2) RETURNING id`,
			tiers[i].MinRentalDays, tiers[i].FreeDays,
		).Scan(&tiers[i].ID)
		if err != nil {
			return fmt.Errorf("failed to insert tier: %w", err)
		}
	}
	return tx.Commit()
}

func (r *promotionRepository) ListInsuranceOptions(ctx context.Context) ([]domain.InsuranceOption, error) {
	query := `SELECT id, name, description, price_per_day FROM insurance_options ORDER BY price_per_day ASC`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var options []domain.InsuranceOption
	for rows.Next() {
		var opt domain.InsuranceOption
		if err := rows.Scan(&opt.ID, &opt.Name, &opt.Description, &opt.PricePerDay); err != nil {
			return nil, err
		}
		options = append(options, opt)
	}
	return options, rows.Err()
}

func (r *promotionRepository) GetInsuranceOption(ctx context.Context, id int32) (*domain.InsuranceOption, error) {
	opt := &domain.InsuranceOption{}
	query := `SELECT id, name, description, price_per_day FROM insurance_options WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&opt.ID, &opt.Name, &opt.Description, &opt.PricePerDay)
	if err != nil {
		return nil, err
	}
	return opt, nil
}

func (r *promotionRepository) CreateInsuranceOption(ctx context.Context, opt *domain.InsuranceOption) error {
	query := `INSERT INTO insurance_options (name, description, price_per_day) VALUES ($1, $2, $3) RETURNING id`
	return r.db.QueryRowContext(ctx, query, opt.Name, opt.Description, opt.PricePerDay).Scan(&opt.ID)
}

func (r *promotionRepository) UpdateInsuranceOption(ctx context.Context, opt *domain.InsuranceOption) error {
	query := `UPDATE insurance_options SET name=$1, description=$2, price_per_day=$3 WHERE id=$4`
	_, err := r.db.ExecContext(ctx, query, opt.Name, opt.Description, opt.PricePerDay, opt.ID)
	return err
}

func (r *promotionRepository) DeleteInsuranceOption(ctx context.Context, id int32) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM insurance_options WHERE id = $1`, id)
	return err
}

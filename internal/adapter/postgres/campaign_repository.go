package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"campaign-lens/internal/core/domain"
	"campaign-lens/internal/core/port"
)

// CampaignRepository implements port.CampaignRepository on PostgreSQL.
// A campaign spans three tables: the campaign row with its summary as
// JSONB, one JSONB row per offer, and one row per daily record.
type CampaignRepository struct {
	pool *pgxpool.Pool
}

// NewCampaignRepository returns a new repository instance.
func NewCampaignRepository(pool *pgxpool.Pool) *CampaignRepository {
	return &CampaignRepository{pool: pool}
}

// Save upserts the campaign row and replaces its offers and daily records
// in one transaction. The original insertion position survives a replace.
func (r *CampaignRepository) Save(ctx context.Context, c domain.Campaign) error {
	summary, err := json.Marshal(c.Summary)
	if err != nil {
		return fmt.Errorf("marshal summary: %w", err)
	}

	return pgx.BeginFunc(ctx, r.pool, func(tx pgx.Tx) error {
		_, err := tx.Exec(ctx, `
            INSERT INTO campaigns (source_id, name, campaign_group, summary, uploaded_at)
            VALUES ($1, $2, $3, $4, $5)
            ON CONFLICT (source_id) DO UPDATE
               SET name = EXCLUDED.name,
                   campaign_group = EXCLUDED.campaign_group,
                   summary = EXCLUDED.summary,
                   uploaded_at = EXCLUDED.uploaded_at`,
			c.SourceID, c.Name, c.Group, summary, c.UploadedAt)
		if err != nil {
			return fmt.Errorf("upsert campaign: %w", err)
		}
		if _, err = tx.Exec(ctx, `DELETE FROM campaign_offers WHERE source_id = $1`, c.SourceID); err != nil {
			return fmt.Errorf("clear offers: %w", err)
		}
		if _, err = tx.Exec(ctx, `DELETE FROM campaign_daily WHERE source_id = $1`, c.SourceID); err != nil {
			return fmt.Errorf("clear daily: %w", err)
		}

		offerRows := make([][]any, 0, len(c.Offers))
		for i, o := range c.Offers {
			data, err := json.Marshal(o)
			if err != nil {
				return fmt.Errorf("marshal offer %d: %w", i, err)
			}
			offerRows = append(offerRows, []any{c.SourceID, i, data})
		}
		if _, err = tx.CopyFrom(ctx,
			pgx.Identifier{"campaign_offers"},
			[]string{"source_id", "position", "data"},
			pgx.CopyFromRows(offerRows),
		); err != nil {
			return fmt.Errorf("copy offers: %w", err)
		}

		if _, err = tx.CopyFrom(ctx,
			pgx.Identifier{"campaign_daily"},
			[]string{"source_id", "position", "date", "day", "sales", "units", "trips", "buyers", "cost"},
			pgx.CopyFromSlice(len(c.Daily), func(i int) ([]any, error) {
				d := c.Daily[i]
				var day *time.Time
				if !d.Day.IsZero() {
					day = &d.Day
				}
				return []any{c.SourceID, i, d.Date, day, d.Sales, d.Units, d.Trips, d.Buyers, d.Cost}, nil
			}),
		); err != nil {
			return fmt.Errorf("copy daily: %w", err)
		}
		return nil
	})
}

// Get returns one campaign with its offers and daily records.
func (r *CampaignRepository) Get(ctx context.Context, sourceID string) (*domain.Campaign, error) {
	rows, err := r.pool.Query(ctx, `
        SELECT source_id, name, campaign_group, summary, uploaded_at
          FROM campaigns
         WHERE source_id = $1`, sourceID)
	if err != nil {
		return nil, err
	}
	c, err := pgx.CollectExactlyOneRow(rows, scanCampaign)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, port.ErrCampaignNotFound
	}
	if err != nil {
		return nil, err
	}

	byID := map[string]*domain.Campaign{c.SourceID: &c}
	if err = r.loadChildren(ctx, byID, []string{sourceID}); err != nil {
		return nil, err
	}
	return &c, nil
}

// List returns every campaign in first-upload order.
func (r *CampaignRepository) List(ctx context.Context) ([]domain.Campaign, error) {
	rows, err := r.pool.Query(ctx, `
        SELECT source_id, name, campaign_group, summary, uploaded_at
          FROM campaigns
         ORDER BY seq`)
	if err != nil {
		return nil, err
	}
	list, err := pgx.CollectRows(rows, scanCampaign)
	if err != nil {
		return nil, err
	}

	byID := make(map[string]*domain.Campaign, len(list))
	ids := make([]string, 0, len(list))
	for i := range list {
		byID[list[i].SourceID] = &list[i]
		ids = append(ids, list[i].SourceID)
	}
	if err = r.loadChildren(ctx, byID, ids); err != nil {
		return nil, err
	}
	return list, nil
}

// Delete removes a campaign; offers and daily rows cascade.
func (r *CampaignRepository) Delete(ctx context.Context, sourceID string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM campaigns WHERE source_id = $1`, sourceID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return port.ErrCampaignNotFound
	}
	return nil
}

func (r *CampaignRepository) loadChildren(ctx context.Context, byID map[string]*domain.Campaign, ids []string) error {
	if len(ids) == 0 {
		return nil
	}

	rows, err := r.pool.Query(ctx, `
        SELECT source_id, data
          FROM campaign_offers
         WHERE source_id = ANY($1)
         ORDER BY source_id, position`, ids)
	if err != nil {
		return err
	}
	type offerRow struct {
		SourceID string
		Data     []byte
	}
	offers, err := pgx.CollectRows(rows, pgx.RowToStructByPos[offerRow])
	if err != nil {
		return err
	}
	for _, row := range offers {
		var o domain.Offer
		if err = json.Unmarshal(row.Data, &o); err != nil {
			return fmt.Errorf("decode offer of %q: %w", row.SourceID, err)
		}
		c := byID[row.SourceID]
		c.Offers = append(c.Offers, o)
	}

	rows, err = r.pool.Query(ctx, `
        SELECT source_id, date, day, sales, units, trips, buyers, cost
          FROM campaign_daily
         WHERE source_id = ANY($1)
         ORDER BY source_id, position`, ids)
	if err != nil {
		return err
	}
	type dailyRow struct {
		SourceID string
		Record   domain.DailyRecord
	}
	daily, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (dailyRow, error) {
		var dr dailyRow
		var day *time.Time
		err := row.Scan(
			&dr.SourceID,
			&dr.Record.Date,
			&day,
			&dr.Record.Sales,
			&dr.Record.Units,
			&dr.Record.Trips,
			&dr.Record.Buyers,
			&dr.Record.Cost,
		)
		if day != nil {
			dr.Record.Day = day.UTC()
		}
		return dr, err
	})
	if err != nil {
		return err
	}
	for _, row := range daily {
		row.Record.Derive()
		c := byID[row.SourceID]
		c.Daily = append(c.Daily, row.Record)
	}
	return nil
}

func scanCampaign(row pgx.CollectableRow) (domain.Campaign, error) {
	var (
		c       domain.Campaign
		summary []byte
	)
	if err := row.Scan(&c.SourceID, &c.Name, &c.Group, &summary, &c.UploadedAt); err != nil {
		return c, err
	}
	if len(summary) > 0 && string(summary) != "null" {
		c.Summary = &domain.Summary{}
		if err := json.Unmarshal(summary, c.Summary); err != nil {
			return c, fmt.Errorf("decode summary of %q: %w", c.SourceID, err)
		}
	}
	c.Offers = []domain.Offer{}
	c.Daily = []domain.DailyRecord{}
	return c, nil
}

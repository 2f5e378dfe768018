package catalog_controller

import (
	"context"
	"encoding/json"
	"log"

	catalog_cache "github.com/Davedaz23/Phoenix-Tour-sub000/cache"
	"github.com/Davedaz23/Phoenix-Tour-sub000/config"
	"github.com/Davedaz23/Phoenix-Tour-sub000/models"
)

// loadTourSummaries returns the full active tour list for the storefront,
// serving from the in-process cache and refreshing it from Postgres over
// the pgx pool on a miss. The filter engine runs in memory against this
// list, so this is the only storefront read that hits the tours table.
func loadTourSummaries(ctx context.Context) ([]models.TourSummary, error) {
	if tours, ok := catalog_cache.GetTours(); ok {
		return tours, nil
	}

	query := `
		SELECT
			id::text,
			title,
			short_description,
			description,
			category,
			region,
			difficulty,
			duration,
			price::float8,
			rating::float8,
			tags,
			COALESCE(media->'primary'->>'url', '') AS image
		FROM tours
		WHERE status = 'Active'
		ORDER BY created_at DESC
	`

	rows, err := config.DB.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tours := make([]models.TourSummary, 0, 32)
	for rows.Next() {
		var t models.TourSummary
		var tagsJSON []byte
		if err := rows.Scan(
			&t.ID,
			&t.Title,
			&t.ShortDescription,
			&t.Description,
			&t.Category,
			&t.Region,
			&t.Difficulty,
			&t.Duration,
			&t.Price,
			&t.Rating,
			&tagsJSON,
			&t.Image,
		); err != nil {
			return nil, err
		}
		if len(tagsJSON) > 0 {
			if err := json.Unmarshal(tagsJSON, &t.Tags); err != nil {
				log.Printf("⚠️ [store.catalog] bad tags jsonb for tour %s: %v", t.ID, err)
			}
		}
		tours = append(tours, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	catalog_cache.SetTours(tours)
	log.Printf("✅ [store.catalog] cache refreshed: %d active tours", len(tours))
	return tours, nil
}

// loadAvailableTours returns the bookable tour list (active tours with at
// least one departure date), cached the same way as the summary list.
func loadAvailableTours(ctx context.Context) ([]models.AvailableTour, error) {
	if tours, ok := catalog_cache.GetAvailable(); ok {
		return tours, nil
	}

	query := `
		SELECT
			id::text,
			title,
			duration,
			price::float8,
			max_participants,
			available_dates
		FROM tours
		WHERE status = 'Active'
		  AND jsonb_array_length(available_dates) > 0
		ORDER BY created_at DESC
	`

	rows, err := config.DB.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tours := make([]models.AvailableTour, 0, 32)
	for rows.Next() {
		var t models.AvailableTour
		var datesJSON []byte
		if err := rows.Scan(
			&t.ID,
			&t.Name,
			&t.Duration,
			&t.Price,
			&t.MaxParticipants,
			&datesJSON,
		); err != nil {
			return nil, err
		}
		if len(datesJSON) > 0 {
			if err := json.Unmarshal(datesJSON, &t.AvailableDates); err != nil {
				log.Printf("⚠️ [store.catalog] bad available_dates jsonb for tour %s: %v", t.ID, err)
			}
		}
		tours = append(tours, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	catalog_cache.SetAvailable(tours)
	return tours, nil
}

// LoadAvailableTours is the cross-controller entry point (the booking
// controller prices drafts against the same cached list the wizard sees).
func LoadAvailableTours(ctx context.Context) ([]models.AvailableTour, error) {
	return loadAvailableTours(ctx)
}

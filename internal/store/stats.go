package store

import "database/sql"

type RegistryStats struct {
	TotalGifts    int
	ReservedGifts int
	TotalValue    float64
	ReservedValue float64
}

func (s *Store) GetRegistryStats() (*RegistryStats, error) {
	stats := &RegistryStats{}

	err := s.DB.QueryRow(`
		SELECT COUNT(*),
		       COALESCE(SUM(is_selected), 0),
		       COALESCE(SUM(price), 0),
		       COALESCE(SUM(CASE WHEN is_selected = 1 THEN price ELSE 0 END), 0)
		FROM gifts
	`).Scan(&stats.TotalGifts, &stats.ReservedGifts, &stats.TotalValue, &stats.ReservedValue)
	if err != nil && err != sql.ErrNoRows {
		return nil, err
	}

	return stats, nil
}

package postgres

// PostgreSQL Error Codes
const (
	// PgErrorCodeUniqueViolation is the PostgreSQL error code for unique constraint violations
	PgErrorCodeUniqueViolation = "23505"
)

const playerColumns = `id, name, class, level, xp, gold, crystals, energy, max_energy, energy_updated_at,
	arena_rating, arena_wins, arena_losses, arena_fights_today, arena_reset_date,
	tower_floor, tower_attempts_today, tower_reset_date,
	login_streak, last_login_date, last_wheel_date,
	total_hunts, total_kills, created_at`

const itemColumns = `id, player_id, name, type, rarity, attack, defense, hp, crit, equipped, created_at`

const listingColumns = `id, seller_id, seller_name, item_name, item_type, rarity, attack, defense, hp, crit, price, created_at`

const expeditionColumns = `id, player_id, type_id, started_at, duration_ms,
	reward_gold, reward_xp, reward_crystals, reward_item_rarity, collected`

const questColumns = `id, player_id, day, type, description, target, progress, completed, claimed,
	reward_gold, reward_crystals, reward_xp`

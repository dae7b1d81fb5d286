package db

import (
	"fmt"

	"gorm.io/gorm"
)

// InitSchema creates every table and index the application reads or writes.
// It runs before the HTTP server accepts traffic and is idempotent, with one
// exception: when resetPhotos is set the album_photos table is dropped and
// recreated, discarding its rows. That reproduces the original deployment
// policy of guaranteeing photo-table schema correctness over preserving data;
// set DB_RESET_PHOTOS=false to keep photos across restarts.
func InitSchema(db *gorm.DB, resetPhotos bool) error {
	if resetPhotos {
		if err := db.Exec("DROP TABLE IF EXISTS album_photos").Error; err != nil {
			return fmt.Errorf("drop album_photos: %w", err)
		}
	}

	for _, stmt := range schemaStatements {
		if err := db.Exec(stmt).Error; err != nil {
			return fmt.Errorf("init schema: %w", err)
		}
	}
	return nil
}

var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS albums (
		id CHAR(36) PRIMARY KEY,
		user_id VARCHAR(64) NOT NULL,
		title VARCHAR(500) NOT NULL,
		description TEXT,
		journey_id CHAR(36),
		visibility VARCHAR(20) DEFAULT 'public',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_albums_user ON albums (user_id)`,
	`CREATE INDEX IF NOT EXISTS idx_albums_journey ON albums (journey_id)`,

	`CREATE TABLE IF NOT EXISTS album_photos (
		id CHAR(36) PRIMARY KEY,
		album_id CHAR(36) NOT NULL,
		user_id VARCHAR(64) NOT NULL,
		image_url TEXT NOT NULL,
		caption VARCHAR(500),
		page_number INT DEFAULT 1,
		meta TEXT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_album_photos_album ON album_photos (album_id)`,
	`CREATE INDEX IF NOT EXISTS idx_album_photos_page ON album_photos (album_id, page_number)`,

	`CREATE TABLE IF NOT EXISTS album_pages (
		id CHAR(36) PRIMARY KEY,
		album_id CHAR(36) NOT NULL,
		page_number INT NOT NULL,
		content TEXT,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		CONSTRAINT uniq_album_page UNIQUE (album_id, page_number)
	)`,

	`CREATE TABLE IF NOT EXISTS future_plans (
		id CHAR(36) PRIMARY KEY,
		user_id VARCHAR(64) NOT NULL,
		destination VARCHAR(255) NOT NULL,
		start_date DATE,
		end_date DATE,
		reason TEXT,
		notes TEXT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_future_plans_user ON future_plans (user_id)`,
	`CREATE INDEX IF NOT EXISTS idx_future_plans_dates ON future_plans (start_date, end_date)`,

	`CREATE TABLE IF NOT EXISTS journeys (
		id CHAR(36) PRIMARY KEY,
		user_id VARCHAR(64) NOT NULL,
		title VARCHAR(500) NOT NULL,
		description TEXT,
		journey_type VARCHAR(50) DEFAULT 'solo',
		departure_date DATE,
		return_date DATE,
		legs JSONB NOT NULL,
		keywords JSONB,
		ai_story TEXT,
		similarity_score FLOAT DEFAULT 0,
		rarity_score FLOAT DEFAULT 50,
		cultural_insights JSONB,
		visibility VARCHAR(20) DEFAULT 'public',
		likes_count INT DEFAULT 0,
		views_count INT DEFAULT 0,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_journeys_user ON journeys (user_id)`,
	`CREATE INDEX IF NOT EXISTS idx_journeys_visibility ON journeys (visibility)`,
	`CREATE INDEX IF NOT EXISTS idx_journeys_type ON journeys (journey_type)`,
	`CREATE INDEX IF NOT EXISTS idx_journeys_created ON journeys (created_at DESC)`,
	`CREATE INDEX IF NOT EXISTS idx_journeys_likes ON journeys (likes_count DESC)`,

	`CREATE TABLE IF NOT EXISTS journey_likes (
		id CHAR(36) PRIMARY KEY,
		journey_id CHAR(36) NOT NULL,
		user_id VARCHAR(64) NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		CONSTRAINT uniq_journey_user_like UNIQUE (journey_id, user_id)
	)`,
	`CREATE INDEX IF NOT EXISTS idx_journey_likes_journey ON journey_likes (journey_id)`,
	`CREATE INDEX IF NOT EXISTS idx_journey_likes_user ON journey_likes (user_id)`,

	`CREATE TABLE IF NOT EXISTS memory_circles (
		id CHAR(36) PRIMARY KEY,
		name VARCHAR(255) NOT NULL,
		description TEXT,
		owner_id VARCHAR(64) NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_memory_circles_owner ON memory_circles (owner_id)`,

	`CREATE TABLE IF NOT EXISTS memory_circle_members (
		id CHAR(36) PRIMARY KEY,
		circle_id CHAR(36) NOT NULL,
		user_id VARCHAR(64) NOT NULL,
		role VARCHAR(20) DEFAULT 'member',
		joined_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_circle_members_circle ON memory_circle_members (circle_id)`,
	`CREATE INDEX IF NOT EXISTS idx_circle_members_user ON memory_circle_members (user_id)`,

	`CREATE TABLE IF NOT EXISTS memory_circle_journeys (
		id CHAR(36) PRIMARY KEY,
		circle_id CHAR(36) NOT NULL,
		journey_id CHAR(36) NOT NULL,
		shared_by VARCHAR(64) NOT NULL,
		shared_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_circle_journeys_circle ON memory_circle_journeys (circle_id)`,

	`CREATE TABLE IF NOT EXISTS collaborative_journals (
		id CHAR(36) PRIMARY KEY,
		title VARCHAR(500) NOT NULL,
		description TEXT,
		created_by VARCHAR(64) NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_journals_creator ON collaborative_journals (created_by)`,

	`CREATE TABLE IF NOT EXISTS journal_members (
		id CHAR(36) PRIMARY KEY,
		journal_id CHAR(36) NOT NULL,
		user_id VARCHAR(64) NOT NULL,
		user_name VARCHAR(255),
		role VARCHAR(20) DEFAULT 'contributor',
		joined_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_journal_members_journal ON journal_members (journal_id)`,
	`CREATE INDEX IF NOT EXISTS idx_journal_members_user ON journal_members (user_id)`,

	`CREATE TABLE IF NOT EXISTS journal_entries (
		id CHAR(36) PRIMARY KEY,
		journal_id CHAR(36) NOT NULL,
		user_id VARCHAR(64) NOT NULL,
		user_name VARCHAR(255),
		content TEXT NOT NULL,
		entry_type VARCHAR(20) DEFAULT 'text',
		image_url TEXT,
		location VARCHAR(255),
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_journal_entries_journal ON journal_entries (journal_id)`,
	`CREATE INDEX IF NOT EXISTS idx_journal_entries_created ON journal_entries (created_at DESC)`,

	`CREATE TABLE IF NOT EXISTS anonymous_memories (
		id CHAR(36) PRIMARY KEY,
		journey_id CHAR(36) NOT NULL,
		original_user_id VARCHAR(64) NOT NULL,
		title VARCHAR(500) NOT NULL,
		story TEXT NOT NULL,
		location VARCHAR(255),
		travel_type VARCHAR(50) DEFAULT 'solo',
		keywords JSONB,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_anon_memories_type ON anonymous_memories (travel_type)`,
	`CREATE INDEX IF NOT EXISTS idx_anon_memories_created ON anonymous_memories (created_at DESC)`,

	`CREATE TABLE IF NOT EXISTS memory_exchanges (
		id CHAR(36) PRIMARY KEY,
		user1_id VARCHAR(64) NOT NULL,
		user2_id VARCHAR(64) NOT NULL,
		memory1_id CHAR(36) NOT NULL,
		memory2_id CHAR(36) NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_exchanges_user1 ON memory_exchanges (user1_id)`,
	`CREATE INDEX IF NOT EXISTS idx_exchanges_user2 ON memory_exchanges (user2_id)`,

	`CREATE TABLE IF NOT EXISTS user_friends (
		id CHAR(36) PRIMARY KEY,
		user_id VARCHAR(64) NOT NULL,
		friend_id VARCHAR(64) NOT NULL,
		friend_name VARCHAR(255),
		friend_email VARCHAR(255),
		friend_avatar TEXT,
		status VARCHAR(20) DEFAULT 'active',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		CONSTRAINT uniq_user_friend UNIQUE (user_id, friend_id)
	)`,
	`CREATE INDEX IF NOT EXISTS idx_user_friends_user ON user_friends (user_id)`,
}

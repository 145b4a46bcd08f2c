package seeds

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Setup inserts demo accounts plus a little search history so a fresh
// instance has something to show. Production deployments start with a
// non-empty users table and never reach this.
func Setup(ctx context.Context, pool *pgxpool.Pool) error {
	rng := rand.New(rand.NewSource(42))

	// Truncate existing data before insert
	log.Println("[seed] truncating existing data")
	if _, err := pool.Exec(ctx, `
		TRUNCATE search_history, users RESTART IDENTITY CASCADE
	`); err != nil {
		return fmt.Errorf("truncate: %w", err)
	}

	log.Println("[seed] inserting users")
	if err := seedUsers(ctx, pool, 5); err != nil {
		return fmt.Errorf("seed users: %w", err)
	}

	log.Println("[seed] inserting search history")
	if err := seedSearchHistory(ctx, pool, rng); err != nil {
		return fmt.Errorf("seed search history: %w", err)
	}

	log.Println("[seed] seeding complete")
	return nil
}

func seedUsers(ctx context.Context, pool *pgxpool.Pool, n int) error {
	rows := []string{}
	args := []any{}

	for i := 0; i < n; i++ {
		username := fmt.Sprintf("demo%d", i+1)
		email := fmt.Sprintf("demo%d@example.com", i+1)

		base := i * 2
		rows = append(rows, fmt.Sprintf("($%d, $%d)", base+1, base+2))
		args = append(args, username, email)
	}

	if len(rows) == 0 {
		return nil
	}

	query := "INSERT INTO users (username, email) VALUES " + strings.Join(rows, ", ")

	_, err := pool.Exec(ctx, query, args...)
	return err
}

// seedEntry mirrors what a real search would have recorded: the top hit of a
// popular query, with the provider's id and poster path.
type seedEntry struct {
	externalID int64
	category   string
	title      string
	imagePath  string
}

var seedEntries = []seedEntry{
	{27205, "movie", "Inception", "/oYuLEt3zVCKq57qu2F8dT7NIa6f.jpg"},
	{157336, "movie", "Interstellar", "/gEU2QniE6E77NI6lCU6MxlNBvIx.jpg"},
	{603, "movie", "The Matrix", "/f89U3ADr1oiB1s9GkdPOEpXUk5H.jpg"},
	{1396, "tv", "Breaking Bad", "/ztkUQFLlC19CCMYHW9o1zWhJRNq.jpg"},
	{1399, "tv", "Game of Thrones", "/1XS1oqL89opfnbLl8WnZY1O1uJx.jpg"},
	{66732, "tv", "Stranger Things", "/uOOtwVbSr4QDjAGIifLDwpb2Pdl.jpg"},
	{6193, "person", "Leonardo DiCaprio", "/wo2hJpn04vbtmh0B9utCFdsQhxM.jpg"},
	{17419, "person", "Bryan Cranston", "/7Jahy5LZX2Fo8fGJltMreAI49hC.jpg"},
}

func seedSearchHistory(ctx context.Context, pool *pgxpool.Pool, rng *rand.Rand) error {
	rows := []string{}
	args := []any{}

	// each demo user remembers a random prefix of the sample searches
	for userID := int64(1); userID <= 5; userID++ {
		count := 1 + rng.Intn(len(seedEntries))
		for _, e := range seedEntries[:count] {
			createdAt := time.Now().AddDate(0, 0, -rng.Intn(30))

			base := len(args)
			rows = append(rows, fmt.Sprintf("($%d, $%d, $%d, $%d, $%d, $%d)",
				base+1, base+2, base+3, base+4, base+5, base+6))
			args = append(args, userID, e.externalID, e.category, e.title, e.imagePath, createdAt)
		}
	}

	if len(rows) == 0 {
		return nil
	}

	query := "INSERT INTO search_history (user_id, external_id, category, title, image_path, created_at) VALUES " +
		strings.Join(rows, ", ") + " ON CONFLICT (user_id, external_id, category) DO NOTHING"

	_, err := pool.Exec(ctx, query, args...)
	return err
}
